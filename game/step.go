package game

import (
	"github.com/bwcd-123/snowdrift/graph"
)

// Step applies one synchronous best-response update to every node and
// returns the next configuration together with a stability flag that is
// true iff no node changed strategy.
//
// Neighbor counts are always read from the input configuration, never from
// the map being built, so the result is invariant to node visitation
// order. Ties, including the 0-vs-0 payoff of an isolated node, resolve to
// Defect: cooperation requires a strictly greater payoff.
func Step(cfg *graph.Configuration, r float64) (*graph.Configuration, bool) {
	topo := cfg.Topology()
	next := make(map[graph.Node]graph.Strategy, topo.NumNodes())
	stable := true

	for _, u := range topo.Nodes() {
		var c, d int
		for _, v := range topo.Neighbors(u) {
			if cfg.Strategy(v) == graph.Cooperate {
				c++
			} else {
				d++
			}
		}

		cooperate, defect := Payoffs(c, d, r)
		s := graph.Defect
		if cooperate > defect {
			s = graph.Cooperate
		}

		if s != cfg.Strategy(u) {
			stable = false
		}
		next[u] = s
	}

	return cfg.WithStrategies(next), stable
}
