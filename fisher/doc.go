// Package fisher estimates the statistical precision with which a network
// of gravitational-wave detectors can measure the parameters of a signal,
// under the Fisher-information (linearized-likelihood, Gaussian-noise)
// approximation.
//
// Pipeline, leaf to root:
//
//   - Derivative      — ∂(projected signal)/∂θ for one parameter at a time:
//     analytic for luminosity_distance, geocent_time and
//     phase; central finite differences of the projection
//     alone for ra/dec/psi; full waveform regeneration with
//     a coalescence-time precision trick for the rest.
//   - Matrix          — symmetric information matrix for one detector and
//     one signal, built lazily from noise-weighted inner
//     products of derivative pairs.
//   - InvertSVD       — SVD pseudo-inverse with diagonal normalization and
//     truncation of singular values below a threshold.
//     Truncation is a documented approximation, never an
//     error: inspect the returned singular values.
//   - ComputeDetectorFisher — waveform, projection, per-bin SNR and Fisher
//     matrix for one detector/signal pair.
//   - ComputeNetworkErrors  — per-signal aggregation across a network:
//     SNR² summed over all detectors, Fisher matrices summed
//     over detectors above the individual threshold, SVD
//     inversion, 1-sigma errors, sky-localization area when
//     both ra and dec are requested, and strict network-SNR
//     detection selection.
//
// Numeric policy is configurable through functional options with
// documented defaults: DefaultEps (finite-difference step scale,
// cube-root-of-double-precision heuristic) and DefaultSVDThreshold
// (singular-value cutoff on the normalized matrix).
//
// Collaborators (waveform factory, projection, scalar product, SNR) are
// injectable; the defaults are waveform.NewTaylorF2, detector.Project,
// detector.ScalarProduct and detector.SNR.
//
// Errors (sentinel):
//
//	– ErrNoParameters if the Fisher parameter list is empty.
//	– ErrNoSignals    if the signal catalog is empty.
//	– ErrBadMatrix    if a matrix cannot be normalized or decomposed.
//	– ErrBadSkyIndex  if sky-area indices fall outside the matrix.
package fisher
