// Package arma models scalar ARMA(p, q) processes
//
//	X_t = phi_1 X_{t-1} + ... + phi_p X_{t-p} + eps_t + theta_1 eps_{t-1} + ... + theta_q eps_{t-q}
//
// where eps_t is Gaussian white noise with standard deviation sigma.
//
// A [Process] holds the coefficients together with their lag polynomial
// form
//
//	ar_poly = (1, -phi_1, ..., -phi_p)   (zero padded to len(ma_poly))
//	ma_poly = (1, theta_1, ..., theta_q)
//
// so that ar_poly(L) X_t = ma_poly(L) eps_t. The process is treated as the
// rational transfer function ma_poly/ar_poly driven by white noise, from
// which the package derives:
//
//   - [Process.ImpulseResponse]: the response to a unit shock at t = 0
//   - [Process.SpectralDensity]: |H(w)|^2 * sigma^2 on a frequency grid
//   - [Process.Autocovariance]: the inverse DFT of the spectral density
//   - [Process.Simulate]: a sample path driven by a caller supplied source
//
// # Usage
//
//	p, err := arma.New([]float64{0.5}, arma.WithTheta(0.3), arma.WithSigma(1))
//	psi, err := p.ImpulseResponse(arma.DefaultImpulseLength)
//	w, spect, err := p.SpectralDensity(arma.WithFullCircle(false))
//	acov, err := p.Autocovariance(arma.DefaultNumLags)
//	path, err := p.Simulate(90, rand.NewPCG(1, 2))
//
// # Mutation
//
// Coefficients are changed only through [Process.SetParams],
// [Process.SetPhi] and [Process.SetTheta]. Each call validates its input
// and then replaces the raw coefficients and both lag polynomials in one
// step, so a failed update leaves the process untouched and no caller can
// observe polynomials that disagree with the coefficients.
//
// A Process has no internal locking. Concurrent queries are safe as long as
// no mutation runs at the same time.
//
// # Stationarity
//
// Non-stationary or non-invertible coefficients are accepted; derived
// quantities may then diverge. [Process.IsStationary] and
// [Process.IsInvertible] report the position of the lag polynomial roots
// for callers that want to check.
package arma
