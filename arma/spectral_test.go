package arma

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-arma/internal/testutil"
)

func TestSpectralDensity_WhiteNoise(t *testing.T) {
	p := mustNew(t, []float64{0}, WithSigma(2))
	w, spect, err := p.SpectralDensity()
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != DefaultResolution || len(spect) != DefaultResolution {
		t.Fatalf("lengths: w=%d spect=%d, want %d", len(w), len(spect), DefaultResolution)
	}
	for i, v := range spect {
		if math.Abs(v-4) > 1e-12 {
			t.Fatalf("spect[%d]: got %v, want 4", i, v)
		}
	}
}

func TestSpectralDensity_AR1ClosedForm(t *testing.T) {
	// f(w) = sigma^2 / (1 - 2 phi cos w + phi^2)
	phi, sigma := 0.7, 1.5
	p := mustNew(t, []float64{phi}, WithSigma(sigma))
	w, spect, err := p.SpectralDensity(WithResolution(64))
	if err != nil {
		t.Fatal(err)
	}
	for i := range w {
		want := sigma * sigma / (1 - 2*phi*math.Cos(w[i]) + phi*phi)
		if math.Abs(spect[i]-want) > 1e-10*want {
			t.Errorf("w=%v: got %v, want %v", w[i], spect[i], want)
		}
	}
}

func TestSpectralDensity_ARMA11ClosedForm(t *testing.T) {
	phi, theta := 0.5, 0.3
	p := mustNew(t, []float64{phi}, WithTheta(theta))
	w, spect, err := p.SpectralDensity(WithFullCircle(false), WithResolution(50))
	if err != nil {
		t.Fatal(err)
	}
	for i := range w {
		num := 1 + 2*theta*math.Cos(w[i]) + theta*theta
		den := 1 - 2*phi*math.Cos(w[i]) + phi*phi
		if math.Abs(spect[i]-num/den) > 1e-12 {
			t.Errorf("w=%v: got %v, want %v", w[i], spect[i], num/den)
		}
	}
}

func TestSpectralDensity_Grid(t *testing.T) {
	p := mustNew(t, []float64{0.5})

	full, _, err := p.SpectralDensity(WithResolution(8))
	if err != nil {
		t.Fatal(err)
	}
	half, _, err := p.SpectralDensity(WithResolution(8), WithFullCircle(false))
	if err != nil {
		t.Fatal(err)
	}
	for k := range 8 {
		if math.Abs(full[k]-2*math.Pi*float64(k)/8) > 1e-15 {
			t.Errorf("full[%d]=%v", k, full[k])
		}
		if math.Abs(half[k]-math.Pi*float64(k)/8) > 1e-15 {
			t.Errorf("half[%d]=%v", k, half[k])
		}
	}
}

func TestSpectralDensity_Symmetric(t *testing.T) {
	// A real process has f(w) = f(2 pi - w).
	p := mustNew(t, []float64{0.5, -0.3}, WithTheta(0.4, 0.1))
	_, spect, err := p.SpectralDensity(WithResolution(100))
	if err != nil {
		t.Fatal(err)
	}
	for k := 1; k < 50; k++ {
		if math.Abs(spect[k]-spect[100-k]) > 1e-10 {
			t.Errorf("k=%d: %v != %v", k, spect[k], spect[100-k])
		}
	}
}

func TestSpectralDensity_ExplicitFrequencies(t *testing.T) {
	p := mustNew(t, []float64{0.7})
	freqs := []float64{0, math.Pi / 2, math.Pi}
	w, spect, err := p.SpectralDensity(WithFrequencies(freqs), WithResolution(-5))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, w, freqs, 0)
	want := []float64{1 / 0.09, 1 / 1.49, 1 / 2.89}
	testutil.RequireSliceNearlyEqual(t, spect, want, 1e-10)

	freqs[0] = 42
	if w[0] != 0 {
		t.Error("returned frequencies alias the caller's slice")
	}
}

func TestSpectralDensity_NonNegative(t *testing.T) {
	models := []*Process{
		mustNew(t, []float64{0.99}),
		mustNew(t, []float64{-0.95}, WithTheta(-1)),
		mustNew(t, []float64{0}, WithTheta(1)),
		mustNew(t, []float64{0.5, 0.3, -0.2}, WithTheta(-0.9, 0.4), WithSigma(0.1)),
	}
	for _, p := range models {
		_, spect, err := p.SpectralDensity(WithResolution(2048))
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireFinite(t, spect)
		testutil.RequireNonNegative(t, spect, 0)
	}
}

func TestSpectralDensity_Errors(t *testing.T) {
	p := mustNew(t, []float64{0.5})
	tests := []struct {
		name string
		opts []SpectralOption
	}{
		{"zero resolution", []SpectralOption{WithResolution(0)}},
		{"negative resolution", []SpectralOption{WithResolution(-10)}},
		{"empty frequencies", []SpectralOption{WithFrequencies(nil)}},
		{"nan frequency", []SpectralOption{WithFrequencies([]float64{0, math.NaN()})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := p.SpectralDensity(tt.opts...); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("got %v, want ErrInvalidArgument", err)
			}
		})
	}
}
