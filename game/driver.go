package game

import (
	"log/slog"

	"github.com/bwcd-123/snowdrift/graph"
)

// Params configure a convergence run. Explicit configuration replaces the
// module-level defaults of earlier revisions; a Driver carries no other
// state between runs.
type Params struct {
	// MaxEpoch bounds the number of update steps performed after the
	// mandatory first one. Zero or negative means the run consists of the
	// first step alone.
	MaxEpoch int
}

// Result is the terminal state of one convergence run.
type Result struct {
	// R is the cooperation cost this run was played at.
	R float64
	// Final is the last configuration produced. When Converged is false it
	// is not a fixed point, only where the epoch budget ran out.
	Final *graph.Configuration
	// Epochs counts update steps actually performed, always at least 1.
	Epochs int
	// Converged reports whether a fixed point was reached within budget.
	// Non-convergence is an outcome, not an error.
	Converged bool
}

// Driver drives repeated update steps to a fixed point or an epoch budget,
// and sweeps that over a list of cost values.
type Driver struct {
	params Params
	log    *slog.Logger
}

// NewDriver builds a driver. A nil logger falls back to slog.Default.
func NewDriver(params Params, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{params: params, log: log}
}

// Run applies update steps at cost r until a step reports stability or the
// epoch budget is exhausted. The first step is unconditional; only the
// following up-to-MaxEpoch steps are counted against the budget. On early
// exit the configuration returned is the one the stable step produced.
func (d *Driver) Run(initial *graph.Configuration, r float64) Result {
	current, stable := Step(initial, r)
	epochs := 1

	for i := 0; i < d.params.MaxEpoch && !stable; i++ {
		current, stable = Step(current, r)
		epochs++
	}

	if stable {
		d.log.Debug("fixed point reached", "r", r, "epochs", epochs)
	} else {
		d.log.Warn("not stable", "r", r, "epochs", epochs)
	}

	return Result{R: r, Final: current, Epochs: epochs, Converged: stable}
}
