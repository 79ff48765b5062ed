package catalog

import (
	"errors"
	"math"
)

// Sentinel errors returned by the catalog package.
var (
	// ErrEmptyCatalog indicates a source with no signals: a CSV stream
	// without data rows, or a non-positive synthetic population size.
	ErrEmptyCatalog = errors.New("catalog: catalog holds no signals")

	// ErrBadRecord indicates a malformed CSV record: a non-numeric cell, a
	// duplicate or empty header name, or a row width mismatch.
	ErrBadRecord = errors.New("catalog: malformed record")
)

// DefaultSeed is the fixed seed used when callers pass seed==0. The value
// is arbitrary but stable, so default populations are reproducible.
const DefaultSeed int64 = 1

// Panic messages for option constructors (programmer error only).
const (
	panicBadRange = "catalog: WithRange: bounds must be finite with lo <= hi"
	panicBadName  = "catalog: WithRange: parameter name must be non-empty"
)

// Options is the resolved configuration for Synthetic. Fields are
// unexported; Synthetic accepts ...Option.
type Options struct {
	seed   int64
	ranges map[string][2]float64
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// WithSeed fixes the population seed. Zero selects DefaultSeed, matching
// the "seed==0 means the stable default stream" policy.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRange overrides the sampling interval of one parameter. Unknown
// names extend the population: the parameter is drawn uniformly from
// [lo, hi] and attached to every signal.
// Panics if the name is empty or the bounds are not finite with lo <= hi.
func WithRange(name string, lo, hi float64) Option {
	if name == "" {
		panic(panicBadName)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		panic(panicBadRange)
	}

	return func(o *Options) {
		if o.ranges == nil {
			o.ranges = make(map[string][2]float64)
		}
		o.ranges[name] = [2]float64{lo, hi}
	}
}

// DefaultOptions returns the documented defaults: the stable seed and the
// standard compact-binary sampling ranges.
func DefaultOptions() Options {
	return Options{seed: DefaultSeed}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
