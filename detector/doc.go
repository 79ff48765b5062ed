// Package detector models gravitational-wave detectors and detector
// networks, and supplies the three noise-facing collaborators consumed by
// the fisher package:
//
//   - Project       — antenna-pattern response of one detector to a pair of
//     waveform polarizations, including the Earth-rotation
//     dependence taken from the time-of-frequency track and
//     the geocenter time-delay phase.
//   - ScalarProduct — per-bin noise-weighted inner product
//     4·Re(a·conj(b))/S_n(f)·Δf.
//   - SNR           — per-bin signal-to-noise contributions of a projected
//     signal, with optional duty-cycle dropout.
//
// A Detector carries its identity, an ordered frequency grid, the
// one-sided noise power spectral density sampled on that grid, and a
// minimal site geometry (latitude, longitude, arm azimuth). The package
// deliberately does not model analytic noise curves: the PSD is caller
// data, loaded from YAML configuration or set directly.
//
// A Network is an ordered collection of Detectors plus the detection
// threshold pair (individual-detector SNR, network SNR). Partial returns
// an arbitrary sub-network.
//
// Errors (sentinel):
//
//	– ErrBadGrid        if a frequency grid is too short or not strictly increasing.
//	– ErrBadPSD         if PSD values are missing, non-positive, or misaligned.
//	– ErrLengthMismatch if an array is not aligned to the detector grid.
//	– ErrEmptyNetwork   if a network holds no detectors.
//	– ErrBadIndex       if Partial receives an out-of-range detector index.
package detector
