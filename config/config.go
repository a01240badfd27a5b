// Package config provides configuration loading and access for the
// simulator. Defaults are embedded; a user file merges over them.
package config

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bwcd-123/snowdrift/graph"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation parameters.
type Config struct {
	Graph  GraphConfig  `yaml:"graph"`
	Game   GameConfig   `yaml:"game"`
	Layout LayoutConfig `yaml:"layout"`
	Render RenderConfig `yaml:"render"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// GraphConfig describes the topology and the initial strategy assignment.
type GraphConfig struct {
	Nodes []int   `yaml:"nodes"`
	Edges [][]int `yaml:"edges"` // two endpoints per entry

	// Initial pins strategies for specific nodes. Nodes absent from the
	// map are assigned randomly from the run seed.
	Initial map[int]graph.Strategy `yaml:"initial"`
}

// GameConfig holds the dynamics parameters.
type GameConfig struct {
	RList    []float64 `yaml:"r_list"`    // cooperation costs, one run each
	MaxEpoch int       `yaml:"max_epoch"` // epoch budget after the first step
}

// LayoutConfig holds spring-layout parameters.
type LayoutConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Iterations int     `yaml:"iterations"`
	Padding    float64 `yaml:"padding"`
}

// RenderConfig holds snapshot rendering parameters.
type RenderConfig struct {
	WidthCm  float64 `yaml:"width_cm"`
	HeightCm float64 `yaml:"height_cm"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	Topology *graph.Topology // validated topology, built at load time
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used. The
// topology is validated here, so a malformed graph fails at load, not
// mid-simulation.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived builds and validates the topology and checks that pinned
// initial strategies reference known nodes.
func (c *Config) computeDerived() error {
	nodes := make([]graph.Node, len(c.Graph.Nodes))
	for i, n := range c.Graph.Nodes {
		nodes[i] = graph.Node(n)
	}

	edges := make([]graph.Edge, 0, len(c.Graph.Edges))
	for _, pair := range c.Graph.Edges {
		if len(pair) != 2 {
			return fmt.Errorf("config: edge %v: want exactly two endpoints", pair)
		}
		edges = append(edges, graph.Edge{U: graph.Node(pair[0]), V: graph.Node(pair[1])})
	}

	topo, err := graph.NewTopology(nodes, edges)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	for n := range c.Graph.Initial {
		if !topo.Has(graph.Node(n)) {
			return fmt.Errorf("config: initial strategy for unknown node %d", n)
		}
	}

	c.Derived.Topology = topo
	return nil
}

// InitialConfiguration builds the starting configuration: strategies
// pinned in the config win, every other node draws from rng. Node order is
// the topology's construction order, so the result is deterministic for a
// fixed config and seed.
func (c *Config) InitialConfiguration(rng *rand.Rand) *graph.Configuration {
	topo := c.Derived.Topology
	strategies := make(map[graph.Node]graph.Strategy, topo.NumNodes())
	for _, n := range topo.Nodes() {
		if s, ok := c.Graph.Initial[int(n)]; ok {
			strategies[n] = s
			continue
		}
		if rng.Intn(2) == 0 {
			strategies[n] = graph.Cooperate
		} else {
			strategies[n] = graph.Defect
		}
	}
	cfg, err := graph.NewConfiguration(topo, strategies)
	if err != nil {
		// Unreachable: the map covers exactly the topology's nodes.
		panic(fmt.Sprintf("config: building initial configuration: %v", err))
	}
	return cfg
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
