package fisher

import (
	"errors"

	"github.com/gravwave/gwfisher/detector"
	"github.com/gravwave/gwfisher/signal"
	"github.com/gravwave/gwfisher/waveform"
)

// Sentinel errors returned by the fisher package.
var (
	// ErrNoParameters indicates an empty Fisher parameter list — a caller
	// programming error, not a data condition.
	ErrNoParameters = errors.New("fisher: fisher parameter list is empty")

	// ErrNoSignals indicates an empty signal catalog.
	ErrNoSignals = errors.New("fisher: signal catalog is empty")

	// ErrBadMatrix indicates a matrix that cannot be normalized (zero or
	// negative diagonal) or whose SVD factorization failed.
	ErrBadMatrix = errors.New("fisher: matrix cannot be inverted")

	// ErrBadSkyIndex indicates ra/dec indices outside the covariance matrix.
	ErrBadSkyIndex = errors.New("fisher: sky indices out of range")
)

// Numeric defaults — single source of truth, exposed so callers can
// document deviations.
const (
	// DefaultEps is the relative finite-difference step. 1e-5 follows the
	// cube-root-of-double-precision heuristic (ε_machine ≈ 1e-16).
	DefaultEps = 1e-5

	// DefaultSVDThreshold is the absolute cutoff on singular values of the
	// diagonally normalized information matrix. Directions below it are
	// discarded rather than inverted.
	DefaultSVDThreshold = 1e-10

	// DefaultFRef is the waveform reference frequency in Hz.
	DefaultFRef = 50.0
)

// Panic messages for option constructors (programmer error only).
const (
	panicBadEps       = "fisher: WithEps: eps must be finite and positive"
	panicBadThreshold = "fisher: WithSVDThreshold: threshold must be finite and positive"
	panicNilFactory   = "fisher: WithModel: factory must be non-nil"
)

// ProgressFunc observes the per-signal loop of ComputeNetworkErrors.
// It is called after each signal with (done, total). Purely observational;
// nil disables reporting.
type ProgressFunc func(done, total int)

// Options is the resolved configuration shared by the derivative engine,
// the per-detector evaluator and the network aggregator. Fields are
// unexported; public entry points accept ...Option.
type Options struct {
	eps          float64
	svdThreshold float64
	fRef         float64
	useDutyCycle bool

	factory    waveform.Factory
	projection detector.ProjectionFunc
	scalar     detector.ScalarProductFunc
	snr        detector.SNRFunc

	progress ProgressFunc
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// WithEps sets the relative finite-difference step scale.
// Panics if eps is non-positive or non-finite.
func WithEps(eps float64) Option {
	if !(eps > 0) || eps != eps {
		panic(panicBadEps)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSVDThreshold sets the singular-value cutoff used by InvertSVD.
// Panics if threshold is non-positive or non-finite.
func WithSVDThreshold(threshold float64) Option {
	if !(threshold > 0) || threshold != threshold {
		panic(panicBadThreshold)
	}

	return func(o *Options) { o.svdThreshold = threshold }
}

// WithFRef sets the waveform reference frequency in Hz.
func WithFRef(fRef float64) Option {
	return func(o *Options) { o.fRef = fRef }
}

// WithModel sets the waveform factory used to build central and perturbed
// waveform models. Panics on nil.
func WithModel(factory waveform.Factory) Option {
	if factory == nil {
		panic(panicNilFactory)
	}

	return func(o *Options) { o.factory = factory }
}

// WithModelName resolves a registered waveform model name to a factory.
// Unknown names surface as waveform.ErrUnknownModel at evaluation time.
func WithModelName(name string) Option {
	return WithModel(func(params signal.ParameterSet, data waveform.Data) (waveform.Model, error) {
		return waveform.New(name, params, data)
	})
}

// WithProjection replaces the detector projection collaborator.
func WithProjection(p detector.ProjectionFunc) Option {
	return func(o *Options) { o.projection = p }
}

// WithScalarProduct replaces the noise-weighted inner product collaborator.
func WithScalarProduct(s detector.ScalarProductFunc) Option {
	return func(o *Options) { o.scalar = s }
}

// WithSNR replaces the per-bin SNR collaborator.
func WithSNR(s detector.SNRFunc) Option {
	return func(o *Options) { o.snr = s }
}

// WithDutyCycle enables duty-cycle dropout in SNR evaluation.
func WithDutyCycle() Option {
	return func(o *Options) { o.useDutyCycle = true }
}

// WithProgress installs an observational per-signal progress callback.
func WithProgress(p ProgressFunc) Option {
	return func(o *Options) { o.progress = p }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		eps:          DefaultEps,
		svdThreshold: DefaultSVDThreshold,
		fRef:         DefaultFRef,
		factory:      waveform.NewTaylorF2,
		projection:   detector.Project,
		scalar:       detector.ScalarProduct,
		snr:          detector.SNR,
	}
}

// gatherOptions applies user setters on top of the defaults,
// last-writer-wins.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
