package render

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// stems draws a vertical line from zero to each point, capped by a glyph.
type stems struct {
	plotter.XYs
	draw.LineStyle
	draw.GlyphStyle
}

func newStems(y []float64) *stems {
	xys := make(plotter.XYs, len(y))
	for i, v := range y {
		xys[i].X = float64(i)
		xys[i].Y = v
	}
	glyph := plotter.DefaultGlyphStyle
	glyph.Shape = draw.CircleGlyph{}
	return &stems{
		XYs:        xys,
		LineStyle:  plotter.DefaultLineStyle,
		GlyphStyle: glyph,
	}
}

// Plot implements plot.Plotter.
func (s *stems) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	base := trY(0)
	for _, p := range s.XYs {
		x, y := trX(p.X), trY(p.Y)
		c.StrokeLine2(s.LineStyle, x, base, x, y)
		c.DrawGlyph(s.GlyphStyle, vg.Point{X: x, Y: y})
	}
}

// DataRange implements plot.DataRanger. The y range always includes zero.
func (s *stems) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(s.XYs) == 0 {
		return 0, 0, 0, 0
	}
	xmin, xmax, ymin, ymax = plotter.XYRange(s.XYs)
	return xmin, xmax, math.Min(ymin, 0), math.Max(ymax, 0)
}
