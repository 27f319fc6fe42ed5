package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-arma/arma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseCoefficients(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"0.5", []float64{0.5}},
		{"0.5,-0.2", []float64{0.5, -0.2}},
		{" 0.5 , 0.25 ,", []float64{0.5, 0.25}},
		{"", []float64{}},
	}
	for _, tc := range tests {
		got, err := parseCoefficients(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := parseCoefficients("0.5,abc")
	require.Error(t, err)
}

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5}, opts.phi)
	assert.Equal(t, []float64{0}, opts.theta)
	assert.Equal(t, 1.0, opts.sigma)
	assert.Equal(t, arma.DefaultImpulseLength, opts.impulse)
	assert.Equal(t, arma.DefaultNumLags, opts.lags)
	assert.Equal(t, arma.DefaultResolution, opts.res)
	assert.Equal(t, arma.DefaultSimulationLength, opts.length)
	assert.Equal(t, 1, opts.reps)
	assert.Equal(t, uint64(1), opts.seed)
	assert.Empty(t, opts.plot)
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := parseFlags([]string{"-phi", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-phi")

	_, err = parseFlags([]string{"-theta", "0.1,,y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-theta")

	_, err = parseFlags([]string{"-reps", "0"})
	require.Error(t, err)

	_, err = parseFlags([]string{"-unknown"})
	require.Error(t, err)
}

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-h"}, &out, zap.NewNop())
	require.True(t, errors.Is(err, flag.ErrHelp))
}

func TestRunReport(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-phi", "0.9", "-impulse", "5", "-lags", "3", "-length", "200"}, &out, zap.NewNop())
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "ARMA(1,1)")
	assert.Contains(t, report, "[1 -0.9]")
	assert.Contains(t, report, "Stationary  true")
	assert.Contains(t, report, "Invertible  true")
	assert.Contains(t, report, "0.810000")
	assert.Contains(t, report, "0.656100")
	assert.Contains(t, report, "Sample variance")
	assert.Contains(t, report, "200 periods")

	// One row per lag up to the longer of the two tables.
	var rows int
	for _, line := range strings.Split(report, "\n") {
		if strings.HasSuffix(strings.TrimSpace(line), "0.656100") {
			rows++
		}
	}
	assert.Equal(t, 1, rows)
}

func TestRunNonStationary(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-phi", "1.2", "-theta", "2", "-impulse", "3", "-lags", "2", "-length", "10"}, &out, zap.NewNop())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Stationary  false")
	assert.Contains(t, out.String(), "Invertible  false")
}

func TestRunInvalidModel(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"-sigma", "0"}, &out, zap.NewNop())
	require.ErrorIs(t, err, arma.ErrInvalidParameter)

	err = run([]string{"-phi", ""}, &out, zap.NewNop())
	require.ErrorIs(t, err, arma.ErrInvalidParameter)

	err = run([]string{"-impulse", "-1"}, &out, zap.NewNop())
	require.ErrorIs(t, err, arma.ErrInvalidArgument)
}

func TestRunDeterministic(t *testing.T) {
	args := []string{"-phi", "0.5,-0.2", "-theta", "0.4", "-reps", "3", "-seed", "7"}

	var a, b bytes.Buffer
	require.NoError(t, run(args, &a, zap.NewNop()))
	require.NoError(t, run(args, &b, zap.NewNop()))
	assert.Equal(t, a.String(), b.String())
}

func TestRunPlot(t *testing.T) {
	if testing.Short() {
		t.Skip("rendering is slow")
	}
	dst := filepath.Join(t.TempDir(), "arma.png")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-phi", "0.5", "-plot", dst}, &out, zap.NewNop()))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}
