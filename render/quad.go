package render

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/cwbudde/algo-arma/arma"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default size of a quad figure.
const (
	QuadWidth  = 12 * vg.Inch
	QuadHeight = 8 * vg.Inch
)

// Figure is a grid of plots rendered into a single image.
type Figure struct {
	plots  [][]*plot.Plot
	width  vg.Length
	height vg.Length
}

// Quad builds the 2x2 overview of p: impulse response and spectral density
// on the top row, autocovariance and a simulated path drawn from src on the
// bottom row. Default lengths and resolution of the arma package are used.
func Quad(p *arma.Process, src rand.Source) (*Figure, error) {
	impulse, err := ImpulseResponse(p, arma.DefaultImpulseLength)
	if err != nil {
		return nil, err
	}
	density, err := SpectralDensity(p, arma.DefaultResolution)
	if err != nil {
		return nil, err
	}
	acov, err := Autocovariance(p, arma.DefaultNumLags)
	if err != nil {
		return nil, err
	}
	path, err := Simulation(p, arma.DefaultSimulationLength, src)
	if err != nil {
		return nil, err
	}

	return &Figure{
		plots: [][]*plot.Plot{
			{impulse, density},
			{acov, path},
		},
		width:  QuadWidth,
		height: QuadHeight,
	}, nil
}

// Plots returns the plot grid, row by row. Modifying the plots changes the
// rendered figure.
func (f *Figure) Plots() [][]*plot.Plot {
	return f.plots
}

// WriteTo renders the figure as PNG into w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	img := vgimg.New(f.width, f.height)
	dc := draw.New(img)

	rows := len(f.plots)
	cols := 0
	if rows > 0 {
		cols = len(f.plots[0])
	}
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(f.plots, tiles, dc)
	for j := range rows {
		for i := range cols {
			if f.plots[j][i] != nil {
				f.plots[j][i].Draw(canvases[j][i])
			}
		}
	}

	n, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("render: encode figure: %w", err)
	}
	return n, nil
}

// Save writes the figure as PNG to path.
func (f *Figure) Save(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()

	_, err = f.WriteTo(file)
	return err
}
