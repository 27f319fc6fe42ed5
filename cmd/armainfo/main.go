// Command armainfo prints the derived quantities of a scalar ARMA process.
//
// Usage:
//
//	armainfo [flags]
//
// It reports the lag polynomials, stationarity and invertibility, the
// impulse response and autocovariance, and compares simulated sample paths
// against the theoretical variance. With -plot it also writes the 2x2
// overview figure as PNG.
//
// Examples:
//
//	armainfo -phi 0.9
//	armainfo -phi 0.5,-0.2 -theta 0.4 -sigma 2 -lags 24
//	armainfo -phi 0.5 -theta 0.3 -reps 500 -length 1000
//	armainfo -phi 0.5 -plot arma.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-arma/arma"
	"github.com/cwbudde/algo-arma/render"
	"github.com/cwbudde/algo-arma/stats/path"
	"go.uber.org/zap"
)

type options struct {
	phi     []float64
	theta   []float64
	sigma   float64
	impulse int
	lags    int
	res     int
	length  int
	reps    int
	seed    uint64
	plot    string
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	err = run(os.Args[1:], os.Stdout, logger)
	_ = logger.Sync()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Error("armainfo failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, logger *zap.Logger) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	p, err := arma.New(opts.phi, arma.WithTheta(opts.theta...), arma.WithSigma(opts.sigma))
	if err != nil {
		return err
	}
	logger.Debug("model constructed", zap.Stringer("process", p))

	if err := printModel(stdout, p); err != nil {
		return err
	}
	if err := printResponses(stdout, p, opts.impulse, opts.lags); err != nil {
		return err
	}
	if err := printSpectrumSummary(stdout, p, opts.res); err != nil {
		return err
	}
	if err := printSimulation(stdout, p, opts); err != nil {
		return err
	}

	if opts.plot != "" {
		fig, err := render.Quad(p, rand.NewPCG(opts.seed, opts.seed+1))
		if err != nil {
			return err
		}
		if err := fig.Save(opts.plot); err != nil {
			return err
		}
		logger.Info("figure written", zap.String("path", opts.plot))
	}
	return nil
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("armainfo", flag.ContinueOnError)
	phi := fs.String("phi", "0.5", "comma separated AR coefficients phi_1..phi_p")
	theta := fs.String("theta", "0", "comma separated MA coefficients theta_1..theta_q")
	sigma := fs.Float64("sigma", 1, "white-noise standard deviation")
	impulse := fs.Int("impulse", arma.DefaultImpulseLength, "impulse response length")
	lags := fs.Int("lags", arma.DefaultNumLags, "number of autocovariance lags")
	res := fs.Int("res", arma.DefaultResolution, "spectral density resolution")
	length := fs.Int("length", arma.DefaultSimulationLength, "simulated path length")
	reps := fs.Int("reps", 1, "number of simulated paths")
	seed := fs.Uint64("seed", 1, "random seed")
	plotPath := fs.String("plot", "", "write the quad figure as PNG to this file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: armainfo [flags]\n\n")
		fmt.Fprintf(fs.Output(), "Prints impulse response, spectral density, autocovariance and\n")
		fmt.Fprintf(fs.Output(), "simulation statistics of a scalar ARMA process.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		sigma:   *sigma,
		impulse: *impulse,
		lags:    *lags,
		res:     *res,
		length:  *length,
		reps:    *reps,
		seed:    *seed,
		plot:    *plotPath,
	}
	var err error
	if opts.phi, err = parseCoefficients(*phi); err != nil {
		return options{}, fmt.Errorf("-phi: %w", err)
	}
	if opts.theta, err = parseCoefficients(*theta); err != nil {
		return options{}, fmt.Errorf("-theta: %w", err)
	}
	if opts.reps < 1 {
		return options{}, fmt.Errorf("-reps must be >= 1: %d", opts.reps)
	}
	return opts, nil
}

func parseCoefficients(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func printModel(w io.Writer, p *arma.Process) error {
	stationary, err := p.IsStationary()
	if err != nil {
		return err
	}
	invertible, err := p.IsInvertible()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Model\t%s\n", p)
	fmt.Fprintf(tw, "AR poly\t%v\n", p.ARPoly())
	fmt.Fprintf(tw, "MA poly\t%v\n", p.MAPoly())
	fmt.Fprintf(tw, "Stationary\t%t\n", stationary)
	fmt.Fprintf(tw, "Invertible\t%t\n", invertible)
	fmt.Fprintln(tw)
	return tw.Flush()
}

func printResponses(w io.Writer, p *arma.Process, impulseLen, numLags int) error {
	psi, err := p.ImpulseResponse(impulseLen)
	if err != nil {
		return err
	}
	acov, err := p.Autocovariance(numLags)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Lag\tImpulse\tAutocovariance\t\n")
	fmt.Fprintf(tw, "---\t-------\t--------------\t\n")
	for k := range max(len(psi), len(acov)) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", k, cell(psi, k), cell(acov, k))
	}
	fmt.Fprintln(tw)
	return tw.Flush()
}

func printSpectrumSummary(w io.Writer, p *arma.Process, res int) error {
	freqs, spect, err := p.SpectralDensity(arma.WithFullCircle(false), arma.WithResolution(res))
	if err != nil {
		return err
	}
	peak := 0
	for i := range spect {
		if spect[i] > spect[peak] {
			peak = i
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Spectral density at w=0\t%.6f\n", spect[0])
	fmt.Fprintf(tw, "Spectral peak\t%.6f at w=%.4f\n", spect[peak], freqs[peak])
	fmt.Fprintln(tw)
	return tw.Flush()
}

func printSimulation(w io.Writer, p *arma.Process, opts options) error {
	gamma, err := p.Autocovariance(2)
	if err != nil {
		return err
	}

	src := rand.NewPCG(opts.seed, opts.seed)
	var acc path.Accumulator
	var lag1 float64
	for range opts.reps {
		x, err := p.Simulate(opts.length, src)
		if err != nil {
			return err
		}
		acc.Update(x)
		c, err := path.Autocovariance(x, 2)
		if err != nil {
			return err
		}
		lag1 += c[1]
	}
	lag1 /= float64(opts.reps)
	s := acc.Result()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Simulation\t%d path(s) x %d periods, seed %d\n", opts.reps, opts.length, opts.seed)
	fmt.Fprintf(tw, "Sample mean\t%.6f\n", s.Mean)
	fmt.Fprintf(tw, "Sample variance\t%.6f (theory %.6f)\n", s.Variance, gamma[0])
	fmt.Fprintf(tw, "Sample lag-1 autocovariance\t%.6f (theory %.6f)\n", lag1, gamma[1])
	fmt.Fprintf(tw, "Range\t[%.4f, %.4f]\n", s.Min, s.Max)
	return tw.Flush()
}

func cell(v []float64, k int) string {
	if k >= len(v) {
		return ""
	}
	return strconv.FormatFloat(v[k], 'f', 6, 64)
}
