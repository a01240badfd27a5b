// Command snowdrift runs the multi-player snowdrift game on a fixed
// network: every node simultaneously best-responds to its neighbors each
// epoch until a fixed point or an epoch budget, once per cooperation cost
// in the configured sweep. Each terminal configuration is classified by
// whether its cooperators form a vertex cover, and optionally rendered to
// a PNG snapshot.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bwcd-123/snowdrift/config"
	"github.com/bwcd-123/snowdrift/game"
	"github.com/bwcd-123/snowdrift/graph"
	"github.com/bwcd-123/snowdrift/layout"
	"github.com/bwcd-123/snowdrift/render"
	"github.com/bwcd-123/snowdrift/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed for initial strategies and layout (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for results.csv and config snapshot")
	renderDir := flag.String("render-dir", "", "Directory for terminal-configuration PNGs (empty = no rendering)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	initial := cfg.InitialConfiguration(rng)
	topo := initial.Topology()

	slog.Info("starting sweep",
		"seed", rngSeed,
		"nodes", topo.NumNodes(),
		"edges", topo.NumEdges(),
		"r_values", len(cfg.Game.RList),
		"max_epoch", cfg.Game.MaxEpoch,
	)

	driver := game.NewDriver(game.Params{MaxEpoch: cfg.Game.MaxEpoch}, logger)
	results := driver.Sweep(initial, cfg.Game.RList)

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	// One layout per sweep; positions are shared by all snapshots so the
	// per-r images stay comparable.
	var pos map[graph.Node]r2.Vec
	if *renderDir != "" {
		if err := os.MkdirAll(*renderDir, 0755); err != nil {
			slog.Error("failed to create render directory", "error", err)
			os.Exit(1)
		}
		pos = layout.Spring(topo, layout.Config{
			Width:      cfg.Layout.Width,
			Height:     cfg.Layout.Height,
			Iterations: cfg.Layout.Iterations,
			Padding:    cfg.Layout.Padding,
		}, rng)
	}

	records := make([]telemetry.RunRecord, 0, len(results))
	for _, res := range results {
		rec := telemetry.NewRunRecord(res)
		records = append(records, rec)

		slog.Info("run finished", "result", rec)

		if err := om.WriteRecord(rec); err != nil {
			slog.Error("failed to write record", "error", err)
			os.Exit(1)
		}

		if *renderDir != "" {
			p, err := render.Snapshot(res.Final, pos, fmt.Sprintf("r = %.2f", res.R))
			if err != nil {
				slog.Error("failed to build snapshot", "r", res.R, "error", err)
				os.Exit(1)
			}
			path := filepath.Join(*renderDir, fmt.Sprintf("final_r%.2f.png", res.R))
			if err := render.SavePNG(p, path, cfg.Render.WidthCm, cfg.Render.HeightCm); err != nil {
				slog.Error("failed to save snapshot", "r", res.R, "error", err)
				os.Exit(1)
			}
		}
	}

	slog.Info("sweep finished", "stats", telemetry.ComputeSweepStats(records))
}
