// Package game implements the best-response dynamics of the multi-player
// snowdrift game on a fixed network and the vertex-cover classification of
// its terminal configurations.
package game

// Payoffs returns the payoff a node would receive under each candidate
// strategy, given c cooperating and d defecting neighbors and cooperation
// cost r.
//
// A cooperator earns 1 from each cooperating neighbor and 1-r from each
// defecting one. A defector earns 1+r from each cooperating neighbor and
// nothing from defectors. A degree-0 node scores 0 either way; the tie is
// resolved by the update step, not here.
func Payoffs(c, d int, r float64) (cooperate, defect float64) {
	cooperate = float64(c) + (1-r)*float64(d)
	defect = (1 + r) * float64(c)
	return cooperate, defect
}
