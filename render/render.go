package render

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-arma/arma"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Default size of a single saved plot.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// logFloor bounds the dynamic range of log-scaled spectra relative to their
// maximum, so spectral zeros stay drawable. Non-finite values are skipped.
const logFloor = 1e-12

// ImpulseResponse plots the first length values of the impulse response as
// stems.
func ImpulseResponse(p *arma.Process, length int) (*plot.Plot, error) {
	psi, err := p.ImpulseResponse(length)
	if err != nil {
		return nil, fmt.Errorf("render: impulse response: %w", err)
	}

	plt := plot.New()
	plt.Title.Text = "Impulse response"
	plt.X.Label.Text = "time"
	plt.Y.Label.Text = "response"
	plt.Add(newStems(psi))
	plt.X.Min = -0.5
	if len(psi) > 0 {
		plt.X.Max = float64(len(psi)) - 0.5
		plt.Y.Min = floats.Min(psi) - 0.1
		plt.Y.Max = floats.Max(psi) + 0.1
	}
	return plt, nil
}

// SpectralDensity plots the spectral density over [0, pi) on a logarithmic
// y axis, evaluated on resolution points.
func SpectralDensity(p *arma.Process, resolution int) (*plot.Plot, error) {
	w, spect, err := p.SpectralDensity(arma.WithFullCircle(false), arma.WithResolution(resolution))
	if err != nil {
		return nil, fmt.Errorf("render: spectral density: %w", err)
	}

	xys := make(plotter.XYs, 0, len(w))
	peak := 0.0
	for i, v := range spect {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		xys = append(xys, plotter.XY{X: w[i], Y: v})
		peak = math.Max(peak, v)
	}
	if len(xys) == 0 {
		return nil, errors.New("render: spectral density has no finite values")
	}
	floor := peak * logFloor
	if !(floor > 0) {
		floor = math.SmallestNonzeroFloat64
	}
	for i := range xys {
		xys[i].Y = math.Max(xys[i].Y, floor)
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("render: spectral density: %w", err)
	}

	plt := plot.New()
	plt.Title.Text = "Spectral density"
	plt.X.Label.Text = "frequency"
	plt.Y.Label.Text = "spectrum"
	plt.Y.Scale = plot.LogScale{}
	plt.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	plt.Add(line)
	plt.X.Min = 0
	plt.X.Max = math.Pi
	return plt, nil
}

// Autocovariance plots gamma(0..numLags-1) as stems.
func Autocovariance(p *arma.Process, numLags int) (*plot.Plot, error) {
	acov, err := p.Autocovariance(numLags)
	if err != nil {
		return nil, fmt.Errorf("render: autocovariance: %w", err)
	}

	plt := plot.New()
	plt.Title.Text = "Autocovariance"
	plt.X.Label.Text = "time"
	plt.Y.Label.Text = "autocovariance"
	plt.Add(newStems(acov))
	plt.X.Min = -0.5
	plt.X.Max = float64(len(acov)) - 0.5
	return plt, nil
}

// Simulation plots one sample path of the given length drawn from src.
func Simulation(p *arma.Process, length int, src rand.Source) (*plot.Plot, error) {
	x, err := p.Simulate(length, src)
	if err != nil {
		return nil, fmt.Errorf("render: simulation: %w", err)
	}

	xys := make(plotter.XYs, len(x))
	for i, v := range x {
		xys[i].X = float64(i)
		xys[i].Y = v
	}

	plt := plot.New()
	plt.Title.Text = "Sample path"
	plt.X.Label.Text = "time"
	plt.Y.Label.Text = "state space"
	if len(xys) > 0 {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("render: simulation: %w", err)
		}
		plt.Add(line)
	}
	return plt, nil
}

// Save renders plt at the default size to path. The image format follows
// the file extension.
func Save(plt *plot.Plot, path string) error {
	if err := plt.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
