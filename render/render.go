// Package render draws a labeled configuration as a static PNG snapshot:
// cooperators red, defectors blue, edges gray.
package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/bwcd-123/snowdrift/graph"
)

// Display colors, matching the original red/blue convention.
var (
	CooperatorColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	DefectorColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	edgeColor       = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// Color maps a strategy to its display color.
func Color(s graph.Strategy) color.Color {
	if s == graph.Cooperate {
		return CooperatorColor
	}
	return DefectorColor
}

// Snapshot builds a plot of cfg with nodes at the given positions. Every
// node and edge endpoint must be placed.
func Snapshot(cfg *graph.Configuration, pos map[graph.Node]r2.Vec, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	for _, e := range cfg.Topology().Edges() {
		pu, okU := pos[e.U]
		pv, okV := pos[e.V]
		if !okU || !okV {
			return nil, fmt.Errorf("render: edge (%d, %d) has an unplaced endpoint", e.U, e.V)
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: pu.X, Y: pu.Y},
			{X: pv.X, Y: pv.Y},
		})
		if err != nil {
			return nil, fmt.Errorf("render: edge (%d, %d): %w", e.U, e.V, err)
		}
		line.LineStyle.Color = edgeColor
		p.Add(line)
	}

	var coop, defect plotter.XYs
	for _, n := range cfg.Topology().Nodes() {
		v, ok := pos[n]
		if !ok {
			return nil, fmt.Errorf("render: node %d has no position", n)
		}
		xy := plotter.XY{X: v.X, Y: v.Y}
		if cfg.Strategy(n) == graph.Cooperate {
			coop = append(coop, xy)
		} else {
			defect = append(defect, xy)
		}
	}

	if len(coop) > 0 {
		s, err := nodeScatter(coop, CooperatorColor)
		if err != nil {
			return nil, err
		}
		p.Add(s)
		p.Legend.Add("cooperator", s)
	}
	if len(defect) > 0 {
		s, err := nodeScatter(defect, DefectorColor)
		if err != nil {
			return nil, err
		}
		p.Add(s)
		p.Legend.Add("defector", s)
	}
	p.Legend.Top = true

	return p, nil
}

func nodeScatter(xys plotter.XYs, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("render: building scatter: %w", err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(5)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	return s, nil
}

// WritePNG renders the snapshot into w at the given size in centimeters.
func WritePNG(p *plot.Plot, w io.Writer, widthCm, heightCm float64) error {
	wt, err := p.WriterTo(vg.Length(widthCm)*vg.Centimeter, vg.Length(heightCm)*vg.Centimeter, "png")
	if err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: writing png: %w", err)
	}
	return nil
}

// SavePNG renders the snapshot to a file at path.
func SavePNG(p *plot.Plot, path string, widthCm, heightCm float64) error {
	if err := p.Save(vg.Length(widthCm)*vg.Centimeter, vg.Length(heightCm)*vg.Centimeter, path); err != nil {
		return fmt.Errorf("render: saving %s: %w", path, err)
	}
	return nil
}
