// Package gwfisher estimates gravitational-wave parameter uncertainties
// with the Fisher information formalism — from a detector network and a
// signal catalog down to per-parameter errors and sky-localization areas.
//
// 🚀 What is gwfisher?
//
//	A linearized-likelihood forecasting engine that brings together:
//		• Signal parameters: immutable named parameter sets
//		• Detectors: frequency grids, noise curves, geometry, YAML configs
//		• Waveforms: TaylorF2 frequency-domain model + external adapters
//		• Derivatives: analytic rules where they exist, central finite
//		  differences everywhere else
//		• Fisher matrices: noise-weighted derivative inner products
//		• Inversion: diagonally normalized truncated-SVD pseudo-inverse
//		• Networks: SNR aggregation, detection thresholds, sky areas
//		• Catalogs & reports: CSV/synthetic populations, text result tables
//
// ✨ Why choose gwfisher?
//
//   - Deterministic – seeded populations, reproducible runs end to end
//   - Honest numerics – singular values returned, degenerate directions
//     truncated instead of amplified
//   - Extensible – waveform, projection, scalar product and SNR are all
//     injectable collaborators
//
// Under the hood, everything is organized under six subpackages:
//
//	signal/   — parameter names & immutable parameter sets
//	detector/ — detectors, networks, YAML configuration, projection & SNR
//	waveform/ — frequency-domain models & the external-generator adapter
//	fisher/   — derivatives, matrices, SVD inversion, network aggregation
//	catalog/  — CSV loading & deterministic synthetic populations
//	report/   — result file naming & text table output
//
// Quick sketch of one analysis:
//
//	network ──▶ per-detector Fisher + SNR ──▶ sum ──▶ SVD⁻¹ ──▶ errors
//
// Dive into the subpackage docs for the derivative rules, the threshold
// semantics and the output format.
//
//	go get github.com/gravwave/gwfisher
package gwfisher
