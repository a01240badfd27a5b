package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// SweepStats aggregates a full sweep.
type SweepStats struct {
	Runs             int
	Converged        int
	VertexCovers     int
	CoopFractionMean float64
	CoopFractionStd  float64
}

// ComputeSweepStats summarizes the per-run records of one sweep. The
// cooperation-fraction spread is the sample standard deviation; fewer than
// two runs report 0.
func ComputeSweepStats(records []RunRecord) SweepStats {
	s := SweepStats{Runs: len(records)}
	if len(records) == 0 {
		return s
	}

	fractions := make([]float64, len(records))
	for i, r := range records {
		fractions[i] = r.CoopFraction
		if r.Converged {
			s.Converged++
		}
		if r.VertexCover {
			s.VertexCovers++
		}
	}

	s.CoopFractionMean = stat.Mean(fractions, nil)
	if len(fractions) > 1 {
		s.CoopFractionStd = stat.StdDev(fractions, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s SweepStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("runs", s.Runs),
		slog.Int("converged", s.Converged),
		slog.Int("vertex_covers", s.VertexCovers),
		slog.Float64("coop_fraction_mean", s.CoopFractionMean),
		slog.Float64("coop_fraction_std", s.CoopFractionStd),
	)
}
