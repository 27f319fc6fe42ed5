// Package render draws the derived quantities of an [arma.Process] with
// gonum/plot.
//
// Each rendering function computes its quantity through the arma package
// and returns a *plot.Plot. Callers can add to it, save it on its own with
// [Save], or compose several plots into one image. [Quad] composes the four
// standard views (impulse response, spectral density, autocovariance and a
// simulated sample path) into a 2x2 [Figure].
package render
