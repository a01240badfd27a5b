// Package layout places topology nodes on a 2D canvas using a
// Fruchterman-Reingold force-directed (spring) layout, for rendering
// terminal-configuration snapshots.
package layout

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/bwcd-123/snowdrift/graph"
)

// minSeparation guards the force terms against coincident nodes.
const minSeparation = 1e-9

// Config bounds the canvas and the iteration effort.
type Config struct {
	Width      float64
	Height     float64
	Iterations int
	Padding    float64
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 10
	}
	if c.Height <= 0 {
		c.Height = 10
	}
	if c.Iterations <= 0 {
		c.Iterations = 50
	}
	return c
}

// Spring computes a position per node. Initial placement is drawn from
// rng, so layouts are deterministic for a fixed seed. Positions are
// clamped to the padded canvas every iteration.
func Spring(topo *graph.Topology, cfg Config, rng *rand.Rand) map[graph.Node]r2.Vec {
	cfg = cfg.withDefaults()
	nodes := topo.Nodes()

	pos := make(map[graph.Node]r2.Vec, len(nodes))
	for _, n := range nodes {
		pos[n] = r2.Vec{
			X: cfg.Padding + rng.Float64()*(cfg.Width-2*cfg.Padding),
			Y: cfg.Padding + rng.Float64()*(cfg.Height-2*cfg.Padding),
		}
	}

	// Ideal spring length for the canvas area.
	k := math.Sqrt(cfg.Width * cfg.Height / float64(len(nodes)))
	temp := cfg.Width / 10
	cool := temp / float64(cfg.Iterations+1)

	disp := make(map[graph.Node]r2.Vec, len(nodes))
	for iter := 0; iter < cfg.Iterations; iter++ {
		for _, n := range nodes {
			disp[n] = r2.Vec{}
		}

		// Repulsion between every pair of nodes.
		for i, u := range nodes {
			for _, v := range nodes[i+1:] {
				delta := r2.Sub(pos[u], pos[v])
				dist := math.Max(r2.Norm(delta), minSeparation)
				push := r2.Scale(k*k/(dist*dist), delta)
				disp[u] = r2.Add(disp[u], push)
				disp[v] = r2.Sub(disp[v], push)
			}
		}

		// Attraction along edges.
		for _, e := range topo.Edges() {
			delta := r2.Sub(pos[e.U], pos[e.V])
			dist := math.Max(r2.Norm(delta), minSeparation)
			pull := r2.Scale(dist/k, delta)
			disp[e.U] = r2.Sub(disp[e.U], pull)
			disp[e.V] = r2.Add(disp[e.V], pull)
		}

		// Move, capped by the cooling temperature, and clamp to canvas.
		for _, n := range nodes {
			d := disp[n]
			dist := r2.Norm(d)
			if dist > 0 {
				step := math.Min(dist, temp)
				pos[n] = r2.Add(pos[n], r2.Scale(step/dist, d))
			}
			pos[n] = r2.Vec{
				X: clamp(pos[n].X, cfg.Padding, cfg.Width-cfg.Padding),
				Y: clamp(pos[n].Y, cfg.Padding, cfg.Height-cfg.Padding),
			}
		}
		temp -= cool
	}

	return pos
}

func clamp(x, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
