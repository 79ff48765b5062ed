// Package waveform defines the frequency-domain waveform collaborator
// consumed by the fisher package, and two concrete models.
//
// A Model produces, for the current parameter values:
//
//   - a pair of complex polarization arrays (plus, cross) aligned to the
//     detector frequency grid it was constructed with, and
//   - a real time-of-frequency track of the same length, giving the time
//     at which each frequency is emitted (used by projections for
//     Earth-rotation and time-delay corrections).
//
// Models are stateful: UpdateParameters replaces the stored parameter
// values and invalidates any cached evaluation. A derivative engine
// perturbs parameters, evaluates, and then restores the central values so
// that repeated calls stay consistent.
//
// Concrete variants:
//
//   - TaylorF2 — restricted stationary-phase-approximation compact-binary
//     inspiral: Newtonian amplitude ∝ Mc^(5/6)·f^(−7/6)/d, post-Newtonian
//     phase through 2PN, plus/cross inclination factors, and the Newtonian
//     chirp-time track t(f).
//   - External — an adapter around a caller-supplied generator function,
//     the integration point for library-backed waveforms.
//
// New resolves a registered model name to a Factory, mirroring the usual
// select-a-model-by-string configuration surface.
package waveform
