package config

import (
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bwcd-123/snowdrift/graph"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	topo := cfg.Derived.Topology
	if topo == nil {
		t.Fatal("defaults should produce a derived topology")
	}
	if topo.NumNodes() != 10 {
		t.Errorf("NumNodes() = %d, want 10", topo.NumNodes())
	}
	if topo.NumEdges() != 15 {
		t.Errorf("NumEdges() = %d, want 15", topo.NumEdges())
	}
	// Every node of the two-pentagon graph has degree 3.
	for _, n := range topo.Nodes() {
		if topo.Degree(n) != 3 {
			t.Errorf("Degree(%d) = %d, want 3", n, topo.Degree(n))
		}
	}

	if len(cfg.Game.RList) == 0 {
		t.Error("defaults should carry a non-empty r list")
	}
	if cfg.Game.MaxEpoch <= 0 {
		t.Errorf("MaxEpoch = %d, want positive", cfg.Game.MaxEpoch)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

func TestLoadUserOverride(t *testing.T) {
	path := writeConfig(t, `
graph:
  nodes: [1, 2, 3]
  edges:
    - [1, 2]
    - [2, 3]
  initial:
    1: cooperate
    2: defect
game:
  r_list: [0.5]
  max_epoch: 7
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Derived.Topology.NumNodes() != 3 {
		t.Errorf("NumNodes() = %d, want 3", cfg.Derived.Topology.NumNodes())
	}
	if cfg.Game.MaxEpoch != 7 {
		t.Errorf("MaxEpoch = %d, want 7", cfg.Game.MaxEpoch)
	}
	if !reflect.DeepEqual(cfg.Game.RList, []float64{0.5}) {
		t.Errorf("RList = %v, want [0.5]", cfg.Game.RList)
	}
	// Layout defaults survive a partial override.
	if cfg.Layout.Width <= 0 || cfg.Layout.Iterations <= 0 {
		t.Errorf("layout defaults lost: %+v", cfg.Layout)
	}
}

func TestLoadRejectsMalformedTopology(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown endpoint", "graph:\n  nodes: [1, 2]\n  edges:\n    - [1, 3]\n"},
		{"self loop", "graph:\n  nodes: [1, 2]\n  edges:\n    - [1, 1]\n"},
		{"three endpoints", "graph:\n  nodes: [1, 2, 3]\n  edges:\n    - [1, 2, 3]\n"},
		{"initial for unknown node", "graph:\n  nodes: [1, 2]\n  edges:\n    - [1, 2]\n  initial:\n    9: cooperate\n"},
		{"bad strategy name", "graph:\n  nodes: [1, 2]\n  edges:\n    - [1, 2]\n  initial:\n    1: betray\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Load() should fail fast on malformed input")
			}
		})
	}
}

func TestInitialConfiguration(t *testing.T) {
	path := writeConfig(t, `
graph:
  nodes: [1, 2, 3, 4]
  edges:
    - [1, 2]
    - [3, 4]
  initial:
    1: cooperate
    2: defect
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	a := cfg.InitialConfiguration(rand.New(rand.NewSource(11)))
	if a.Strategy(1) != graph.Cooperate || a.Strategy(2) != graph.Defect {
		t.Error("pinned strategies must win over random assignment")
	}

	b := cfg.InitialConfiguration(rand.New(rand.NewSource(11)))
	if !reflect.DeepEqual(a.Strategies(), b.Strategies()) {
		t.Error("same seed should reproduce the initial configuration")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of written config error = %v", err)
	}
	if !reflect.DeepEqual(reloaded.Game, cfg.Game) {
		t.Errorf("game config changed across round trip: %+v vs %+v", reloaded.Game, cfg.Game)
	}
	if reloaded.Derived.Topology.NumEdges() != cfg.Derived.Topology.NumEdges() {
		t.Error("topology changed across round trip")
	}
}
