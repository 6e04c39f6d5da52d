//go:build pathbool_debug

package arrange

import (
	"github.com/tdewolff/pathbool/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotMajorGraph rasterizes every major edge to a PNG for debugging the
// arrangement pipeline. It samples each segment at a fixed resolution
// rather than drawing true curves, since the goal is a quick visual sanity
// check, not publication output. Only built with -tags pathbool_debug.
func PlotMajorGraph(g *MajorGraph, path string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "major graph"

	for _, e := range g.Edges {
		if e.Reversed {
			continue
		}
		var pts plotter.XYs
		const samples = 16
		for i := 0; i <= samples; i++ {
			v := geom.Sample(e.Seg, float64(i)/samples)
			pts = append(pts, plotter.XY{X: v.X, Y: v.Y})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		p.Add(line)
	}

	return p.Save(20*vg.Centimeter, 20*vg.Centimeter, path)
}
