package arma

// Default query sizes.
const (
	DefaultImpulseLength    = 30
	DefaultResolution       = 1200
	DefaultNumLags          = 16
	DefaultSimulationLength = 90
)

type config struct {
	theta []float64
	sigma float64
}

// Option configures a Process at construction.
type Option func(*config)

func defaultConfig() config {
	return config{
		theta: []float64{0},
		sigma: 1,
	}
}

// WithTheta sets the moving-average coefficients theta_1..theta_q.
// The default is a single zero coefficient, i.e. a pure AR process.
func WithTheta(theta ...float64) Option {
	return func(cfg *config) {
		cfg.theta = append([]float64(nil), theta...)
	}
}

// WithSigma sets the white-noise standard deviation. The default is 1.
func WithSigma(sigma float64) Option {
	return func(cfg *config) {
		cfg.sigma = sigma
	}
}

type spectralConfig struct {
	fullCircle  bool
	resolution  int
	frequencies []float64
}

// SpectralOption configures [Process.SpectralDensity].
type SpectralOption func(*spectralConfig)

func defaultSpectralConfig() spectralConfig {
	return spectralConfig{
		fullCircle: true,
		resolution: DefaultResolution,
	}
}

// WithFullCircle selects the grid over [0, 2*pi) when true (the default) or
// over [0, pi) when false.
func WithFullCircle(full bool) SpectralOption {
	return func(cfg *spectralConfig) {
		cfg.fullCircle = full
	}
}

// WithResolution sets the number of evenly spaced grid points.
func WithResolution(n int) SpectralOption {
	return func(cfg *spectralConfig) {
		cfg.resolution = n
	}
}

// WithFrequencies evaluates the density at the given normalised angular
// frequencies instead of an evenly spaced grid. It overrides
// [WithResolution] and [WithFullCircle].
func WithFrequencies(w []float64) SpectralOption {
	return func(cfg *spectralConfig) {
		cfg.frequencies = append(make([]float64, 0, len(w)), w...)
	}
}
