// Package catalog loads and generates signal populations for Fisher
// analysis.
//
// Two sources are supported:
//
//   - FromCSV parses a headed CSV stream: the header names the
//     parameters, every following row is one signal. This is the
//     interchange format for externally sampled populations.
//   - Synthetic draws a deterministic random population of compact-binary
//     signals. The draw is fully seeded: the same seed produces the same
//     catalog on every platform, which keeps analysis runs reproducible.
//
// Sky positions and orientation angles are drawn uniformly on the sphere
// (declination through its sine, inclination through its cosine), not
// uniformly in the coordinates themselves. Component masses are ordered
// so that mass_1 ≥ mass_2.
//
// Complexity: FromCSV is O(rows·columns); Synthetic is O(n·parameters).
//
// Errors: all failures are sentinel-based (ErrEmptyCatalog,
// ErrBadRecord) and wrap the offending row number where applicable.
package catalog
