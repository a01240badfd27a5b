// Package telemetry collects per-sweep results and writes them as CSV
// records and structured logs.
package telemetry

import (
	"log/slog"

	"github.com/bwcd-123/snowdrift/game"
)

// RunRecord is one sweep entry: the observable outcome of a convergence
// run for a single cost value.
type RunRecord struct {
	R            float64 `csv:"r"`
	Epochs       int     `csv:"epochs"`
	Converged    bool    `csv:"converged"`
	Cooperators  int     `csv:"cooperators"`
	Defectors    int     `csv:"defectors"`
	CoopFraction float64 `csv:"coop_fraction"`
	VertexCover  bool    `csv:"vertex_cover"`
}

// NewRunRecord derives a record from a run result and its cover verdict.
func NewRunRecord(res game.Result) RunRecord {
	n := res.Final.Topology().NumNodes()
	coop := res.Final.Cooperators()

	var fraction float64
	if n > 0 {
		fraction = float64(coop) / float64(n)
	}

	return RunRecord{
		R:            res.R,
		Epochs:       res.Epochs,
		Converged:    res.Converged,
		Cooperators:  coop,
		Defectors:    n - coop,
		CoopFraction: fraction,
		VertexCover:  game.IsVertexCover(res.Final),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (r RunRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("r", r.R),
		slog.Int("epochs", r.Epochs),
		slog.Bool("converged", r.Converged),
		slog.Int("cooperators", r.Cooperators),
		slog.Int("defectors", r.Defectors),
		slog.Float64("coop_fraction", r.CoopFraction),
		slog.Bool("vertex_cover", r.VertexCover),
	)
}
