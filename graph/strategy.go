package graph

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Strategy is a node's current choice in the game. The zero value is
// Defect, matching the tie-break rule of the update step.
type Strategy uint8

const (
	// Defect gains 1+r from each cooperating neighbor.
	Defect Strategy = iota
	// Cooperate gains 1 from each cooperating neighbor and 1-r from each
	// defecting one.
	Cooperate
)

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	if s == Cooperate {
		return "cooperate"
	}
	return "defect"
}

// UnmarshalYAML parses "cooperate" or "defect".
func (s *Strategy) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "cooperate":
		*s = Cooperate
	case "defect":
		*s = Defect
	default:
		return fmt.Errorf("graph: unknown strategy %q (want cooperate or defect)", value.Value)
	}
	return nil
}

// MarshalYAML emits the strategy name.
func (s Strategy) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
