package graph

import (
	"errors"
	"fmt"
	"math/rand"
)

// Configuration construction errors.
var (
	ErrMissingStrategy = errors.New("graph: node has no strategy")
	ErrStrayStrategy   = errors.New("graph: strategy for node outside topology")
)

// Configuration binds a topology to exactly one strategy per node. The
// topology is shared across epochs; the strategy map belongs to this
// configuration alone and is never mutated once built. Update steps read
// one configuration and write a fresh one.
type Configuration struct {
	topo       *Topology
	strategies map[Node]Strategy
}

// NewConfiguration builds a configuration from an explicit assignment.
// Every topology node must have a strategy, and no strategy may reference
// a node outside the topology. The map is copied.
func NewConfiguration(topo *Topology, strategies map[Node]Strategy) (*Configuration, error) {
	for n := range strategies {
		if !topo.Has(n) {
			return nil, fmt.Errorf("%w: %d", ErrStrayStrategy, n)
		}
	}
	own := make(map[Node]Strategy, topo.NumNodes())
	for _, n := range topo.Nodes() {
		s, ok := strategies[n]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrMissingStrategy, n)
		}
		own[n] = s
	}
	return &Configuration{topo: topo, strategies: own}, nil
}

// RandomConfiguration assigns each node a uniformly random strategy drawn
// from rng. The core never seeds randomness itself; the caller owns the
// source.
func RandomConfiguration(topo *Topology, rng *rand.Rand) *Configuration {
	strategies := make(map[Node]Strategy, topo.NumNodes())
	for _, n := range topo.Nodes() {
		if rng.Intn(2) == 0 {
			strategies[n] = Cooperate
		} else {
			strategies[n] = Defect
		}
	}
	return &Configuration{topo: topo, strategies: strategies}
}

// WithStrategies returns a configuration sharing this one's topology but
// holding the given strategy map. The map must be complete and is owned by
// the returned configuration; the update step uses this to publish each
// epoch's snapshot without copying the topology.
func (c *Configuration) WithStrategies(strategies map[Node]Strategy) *Configuration {
	return &Configuration{topo: c.topo, strategies: strategies}
}

// Topology returns the shared, immutable topology.
func (c *Configuration) Topology() *Topology { return c.topo }

// Strategy returns the current strategy of n.
func (c *Configuration) Strategy(n Node) Strategy { return c.strategies[n] }

// Strategies returns a copy of the full assignment.
func (c *Configuration) Strategies() map[Node]Strategy {
	out := make(map[Node]Strategy, len(c.strategies))
	for n, s := range c.strategies {
		out[n] = s
	}
	return out
}

// Clone returns a configuration with an independent strategy map.
func (c *Configuration) Clone() *Configuration {
	return &Configuration{topo: c.topo, strategies: c.Strategies()}
}

// Cooperators returns the number of cooperating nodes.
func (c *Configuration) Cooperators() int {
	count := 0
	for _, s := range c.strategies {
		if s == Cooperate {
			count++
		}
	}
	return count
}
