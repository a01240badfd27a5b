package game

import (
	"github.com/bwcd-123/snowdrift/graph"
)

// IsVertexCover reports whether the cooperating nodes of cfg cover every
// edge, i.e. each edge has at least one cooperating endpoint. Single pass
// over the edge set, short-circuiting on the first uncovered edge.
//
// The original model called this a "minimum node cover" check; only the
// covering property is tested, never minimality.
func IsVertexCover(cfg *graph.Configuration) bool {
	for _, e := range cfg.Topology().Edges() {
		if cfg.Strategy(e.U) == graph.Defect && cfg.Strategy(e.V) == graph.Defect {
			return false
		}
	}
	return true
}
