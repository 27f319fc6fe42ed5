// Package spectrum provides spectrum-domain utilities for rational transfer
// functions and power spectra.
//
// It builds normalised frequency grids on the unit circle, converts complex
// frequency responses into power values using SIMD-accelerated kernels and
// maps a sampled power spectrum back to the lag domain with an inverse FFT.
package spectrum
