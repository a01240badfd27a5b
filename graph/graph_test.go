package graph

import (
	"errors"
	"testing"
)

func TestNewTopologyValidation(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		edges   []Edge
		wantErr error
	}{
		{"no nodes", nil, nil, ErrNoNodes},
		{"duplicate node", []Node{1, 2, 1}, nil, ErrDuplicateNode},
		{"self loop", []Node{1, 2}, []Edge{{1, 1}}, ErrSelfLoop},
		{"unknown endpoint", []Node{1, 2}, []Edge{{1, 3}}, ErrUnknownNode},
		{"duplicate edge", []Node{1, 2}, []Edge{{1, 2}, {2, 1}}, ErrDuplicateEdge},
		{"valid", []Node{1, 2, 3}, []Edge{{1, 2}, {2, 3}}, nil},
		{"valid no edges", []Node{1}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTopology(tt.nodes, tt.edges)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTopology() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTopologyAccessors(t *testing.T) {
	topo, err := NewTopology([]Node{1, 2, 3, 4}, []Edge{{1, 2}, {2, 3}})
	if err != nil {
		t.Fatalf("NewTopology() error = %v", err)
	}

	if topo.NumNodes() != 4 {
		t.Errorf("NumNodes() = %d, want 4", topo.NumNodes())
	}
	if topo.NumEdges() != 2 {
		t.Errorf("NumEdges() = %d, want 2", topo.NumEdges())
	}
	if topo.Degree(2) != 2 {
		t.Errorf("Degree(2) = %d, want 2", topo.Degree(2))
	}
	if topo.Degree(4) != 0 {
		t.Errorf("Degree(4) = %d, want 0 for isolated node", topo.Degree(4))
	}
	if !topo.Has(4) || topo.Has(5) {
		t.Error("Has() should report membership of 4 but not 5")
	}

	neighbors := topo.Neighbors(2)
	if len(neighbors) != 2 {
		t.Fatalf("Neighbors(2) = %v, want two entries", neighbors)
	}
}

func TestTopologyCopiesInput(t *testing.T) {
	nodes := []Node{1, 2}
	edges := []Edge{{1, 2}}
	topo, err := NewTopology(nodes, edges)
	if err != nil {
		t.Fatalf("NewTopology() error = %v", err)
	}

	nodes[0] = 99
	edges[0] = Edge{99, 98}

	if topo.Nodes()[0] != 1 {
		t.Error("topology node set aliased the caller's slice")
	}
	if topo.Edges()[0] != (Edge{1, 2}) {
		t.Error("topology edge set aliased the caller's slice")
	}
}
