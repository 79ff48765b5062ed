package waveform

import "github.com/gravwave/gwfisher/signal"

// GeneratorFunc produces polarizations and a time-of-frequency track at a
// point in parameter space. It is the integration contract for
// library-backed waveform generators: the adapter owns caching and
// parameter bookkeeping, the generator owns the physics.
type GeneratorFunc func(params signal.ParameterSet, data Data) (plus, cross []complex128, tOfF []float64, err error)

// External adapts a GeneratorFunc to the Model interface. The generator is
// invoked lazily, once per parameter update; Polarizations and
// TimeOfFrequency share the cached result.
type External struct {
	gen    GeneratorFunc
	params signal.ParameterSet
	data   Data

	plus  []complex128
	cross []complex128
	track []float64
	fresh bool
}

// NewExternal wraps gen as a Model at the given parameters.
func NewExternal(gen GeneratorFunc, params signal.ParameterSet, data Data) (Model, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if data.FRef == 0 {
		data.FRef = DefaultFRef
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	return &External{gen: gen, params: params, data: data}, nil
}

// FactoryFrom turns a GeneratorFunc into a Factory, so external models can
// be plugged anywhere a registered model fits.
func FactoryFrom(gen GeneratorFunc) Factory {
	return func(params signal.ParameterSet, data Data) (Model, error) {
		return NewExternal(gen, params, data)
	}
}

// UpdateParameters replaces the stored parameters and invalidates the
// cached generator output.
func (m *External) UpdateParameters(params signal.ParameterSet) error {
	m.params = params
	m.fresh = false
	m.plus, m.cross, m.track = nil, nil, nil

	return nil
}

// Polarizations returns the generator output for the current parameters.
func (m *External) Polarizations() ([]complex128, []complex128, error) {
	if err := m.ensure(); err != nil {
		return nil, nil, err
	}

	return m.plus, m.cross, nil
}

// TimeOfFrequency returns the generator's emission-time track for the
// current parameters.
func (m *External) TimeOfFrequency() ([]float64, error) {
	if err := m.ensure(); err != nil {
		return nil, err
	}

	return m.track, nil
}

// ensure runs the generator once per parameter update.
func (m *External) ensure() error {
	if m.fresh {
		return nil
	}
	plus, cross, track, err := m.gen(m.params, m.data)
	if err != nil {
		return err
	}
	m.plus, m.cross, m.track = plus, cross, track
	m.fresh = true

	return nil
}
