package waveform

import (
	"errors"

	"github.com/gravwave/gwfisher/signal"
)

// Sentinel errors returned by the waveform package.
var (
	// ErrUnknownModel indicates a model name with no registered factory.
	ErrUnknownModel = errors.New("waveform: unknown model name")

	// ErrBadData indicates an unusable frequency grid in Data.
	ErrBadData = errors.New("waveform: frequency grid must be non-empty with positive frequencies")

	// ErrBadParameters indicates physically impossible parameter values
	// (non-positive masses or distance).
	ErrBadParameters = errors.New("waveform: invalid physical parameters")

	// ErrNilGenerator indicates an External model built without a generator.
	ErrNilGenerator = errors.New("waveform: generator function is nil")
)

// DefaultFRef is the default reference frequency, in Hz.
const DefaultFRef = 50.0

// Data carries the auxiliary, parameter-independent inputs a model needs:
// the detector frequency grid the output must align to, and a reference
// frequency. A zero FRef means DefaultFRef.
type Data struct {
	FrequencyGrid []float64
	FRef          float64
}

// Validate checks that the grid is usable.
func (d Data) Validate() error {
	if len(d.FrequencyGrid) == 0 {
		return ErrBadData
	}
	for _, f := range d.FrequencyGrid {
		if f <= 0 {
			return ErrBadData
		}
	}

	return nil
}

// Model is the waveform capability consumed by the derivative engine:
// produce polarizations, expose the time-of-frequency track, and accept a
// parameter update that resets internal state.
type Model interface {
	// Polarizations returns the plus and cross strain arrays for the
	// current parameters, aligned to the construction-time grid.
	Polarizations() (plus, cross []complex128, err error)

	// TimeOfFrequency returns the emission time per frequency bin for the
	// current parameters. Same length as the grid.
	TimeOfFrequency() ([]float64, error)

	// UpdateParameters replaces the stored parameter values and discards
	// any cached evaluation.
	UpdateParameters(params signal.ParameterSet) error
}

// Factory builds a Model at the given point in parameter space.
type Factory func(params signal.ParameterSet, data Data) (Model, error)

// ModelTaylorF2 is the name resolved by New to the TaylorF2 factory.
const ModelTaylorF2 = "TaylorF2"

// New resolves a model name and constructs the model. External models have
// no name: build them directly with NewExternal.
func New(name string, params signal.ParameterSet, data Data) (Model, error) {
	switch name {
	case ModelTaylorF2:
		return NewTaylorF2(params, data)
	default:
		return nil, ErrUnknownModel
	}
}
