// Package graph holds the labeled-graph state the simulation reads and
// rewrites: an immutable topology together with a per-node strategy
// assignment.
package graph

import (
	"errors"
	"fmt"
)

// Node identifies a vertex in the topology.
type Node int

// Edge is an unordered pair of distinct nodes. Edges carry no weight and
// no direction.
type Edge struct {
	U, V Node
}

// Topology construction errors.
var (
	ErrNoNodes       = errors.New("graph: topology has no nodes")
	ErrDuplicateNode = errors.New("graph: duplicate node")
	ErrDuplicateEdge = errors.New("graph: duplicate edge")
	ErrSelfLoop      = errors.New("graph: self-loop edge")
	ErrUnknownNode   = errors.New("graph: edge references unknown node")
)

// Topology is the node set and edge set of one simulation run. It is
// immutable after construction; only strategies change between epochs.
type Topology struct {
	nodes []Node
	edges []Edge
	adj   map[Node][]Node
}

// NewTopology validates and indexes the given node and edge sets.
// Malformed input (no nodes, duplicate nodes or edges, self-loops, edges
// referencing unknown nodes) fails here, never during simulation.
func NewTopology(nodes []Node, edges []Edge) (*Topology, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	adj := make(map[Node][]Node, len(nodes))
	for _, n := range nodes {
		if _, ok := adj[n]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, n)
		}
		adj[n] = nil
	}

	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrSelfLoop, e.U, e.V)
		}
		if _, ok := adj[e.U]; !ok {
			return nil, fmt.Errorf("%w: %d in edge (%d, %d)", ErrUnknownNode, e.U, e.U, e.V)
		}
		if _, ok := adj[e.V]; !ok {
			return nil, fmt.Errorf("%w: %d in edge (%d, %d)", ErrUnknownNode, e.V, e.U, e.V)
		}
		key := e
		if key.V < key.U {
			key.U, key.V = key.V, key.U
		}
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrDuplicateEdge, e.U, e.V)
		}
		seen[key] = struct{}{}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	t := &Topology{
		nodes: make([]Node, len(nodes)),
		edges: make([]Edge, len(edges)),
		adj:   adj,
	}
	copy(t.nodes, nodes)
	copy(t.edges, edges)
	return t, nil
}

// Nodes returns the node set in construction order. The slice is shared;
// callers must not modify it.
func (t *Topology) Nodes() []Node { return t.nodes }

// Edges returns the edge set in construction order. The slice is shared;
// callers must not modify it.
func (t *Topology) Edges() []Edge { return t.edges }

// Neighbors returns the nodes adjacent to n, or nil for an unknown or
// isolated node. The slice is shared; callers must not modify it.
func (t *Topology) Neighbors(n Node) []Node { return t.adj[n] }

// Has reports whether n is part of the node set.
func (t *Topology) Has(n Node) bool {
	_, ok := t.adj[n]
	return ok
}

// Degree returns the number of neighbors of n.
func (t *Topology) Degree(n Node) int { return len(t.adj[n]) }

// NumNodes returns the size of the node set.
func (t *Topology) NumNodes() int { return len(t.nodes) }

// NumEdges returns the size of the edge set.
func (t *Topology) NumEdges() int { return len(t.edges) }
