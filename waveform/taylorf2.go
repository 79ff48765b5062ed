package waveform

import (
	"math"
	"math/cmplx"

	"github.com/gravwave/gwfisher/signal"
)

// Physical constants (SI).
const (
	gravConstant = 6.674e-11             // m^3 kg^-1 s^-2
	speedOfLight = 299792458.0           // m/s
	solarMassKg  = 1.98892e30            // kg
	megaparsecM  = 3.0856775814913673e22 // m
	solarMassSec = gravConstant * solarMassKg / (speedOfLight * speedOfLight * speedOfLight)
)

// TaylorF2 is the restricted stationary-phase-approximation inspiral
// waveform for a quasi-circular compact binary:
//
//	h₊(f) = A·f^(−7/6)·(1+cos²ι)/2·exp(iΨ(f))
//	h×(f) = i·A·f^(−7/6)·cosι·exp(iΨ(f))
//
// with Newtonian amplitude A ∝ Mc^(5/6)/d and post-Newtonian phase
//
//	Ψ(f) = 2πf·tc − φc − π/4 + 3/(128·η·v⁵)·[1 + ψ₂v² + ψ₃v³ + ψ₄v⁴]
//
// where v = (πMf)^(1/3) in geometric units. The time-of-frequency track is
// the Newtonian chirp time t(f) = tc − 5/(256η)·M·(πMf)^(−8/3).
//
// Evaluation is memoized per parameter update: repeated Polarizations or
// TimeOfFrequency calls reuse the cached arrays until UpdateParameters.
type TaylorF2 struct {
	params signal.ParameterSet
	data   Data

	plus  []complex128
	cross []complex128
	track []float64
}

// NewTaylorF2 constructs a TaylorF2 model. It is a Factory.
func NewTaylorF2(params signal.ParameterSet, data Data) (Model, error) {
	if data.FRef == 0 {
		data.FRef = DefaultFRef
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	m := &TaylorF2{data: data}
	if err := m.UpdateParameters(params); err != nil {
		return nil, err
	}

	return m, nil
}

// UpdateParameters replaces the stored parameter values and discards the
// cached evaluation.
func (m *TaylorF2) UpdateParameters(params signal.ParameterSet) error {
	m1 := params.Value(signal.Mass1)
	m2 := params.Value(signal.Mass2)
	d := params.Value(signal.LuminosityDistance)
	if m1 <= 0 || m2 <= 0 || d <= 0 {
		return ErrBadParameters
	}

	m.params = params
	m.plus, m.cross, m.track = nil, nil, nil

	return nil
}

// Polarizations returns the cached plus/cross arrays, computing them on
// first access after a parameter update.
func (m *TaylorF2) Polarizations() ([]complex128, []complex128, error) {
	if m.plus == nil {
		m.evaluate()
	}

	return m.plus, m.cross, nil
}

// TimeOfFrequency returns the cached emission-time track, computing it on
// first access after a parameter update.
func (m *TaylorF2) TimeOfFrequency() ([]float64, error) {
	if m.track == nil {
		m.evaluate()
	}

	return m.track, nil
}

// evaluate fills the polarization and track caches for the current
// parameters.
func (m *TaylorF2) evaluate() {
	m1 := m.params.Value(signal.Mass1)
	m2 := m.params.Value(signal.Mass2)
	dist := m.params.Value(signal.LuminosityDistance) * megaparsecM
	tc := m.params.Value(signal.GeocentTime)
	phic := m.params.Value(signal.Phase)
	iota := m.params.Value(signal.Inclination)

	// Total and chirp mass in seconds (geometric units).
	mTot := (m1 + m2) * solarMassSec
	eta := m1 * m2 / ((m1 + m2) * (m1 + m2))
	mChirp := math.Pow(eta, 0.6) * mTot

	// Newtonian amplitude prefactor (strain·Hz^(7/6)).
	amp := math.Sqrt(5.0/24.0) * math.Pow(math.Pi, -2.0/3.0) *
		speedOfLight / dist * math.Pow(mChirp, 5.0/6.0)

	// PN phase coefficients.
	psi2 := 3715.0/756.0 + 55.0*eta/9.0
	psi3 := -16.0 * math.Pi
	psi4 := 15293365.0/508032.0 + 27145.0*eta/504.0 + 3085.0*eta*eta/72.0

	cosIota := math.Cos(iota)
	plusFac := (1 + cosIota*cosIota) / 2
	crossFac := cosIota

	n := len(m.data.FrequencyGrid)
	m.plus = make([]complex128, n)
	m.cross = make([]complex128, n)
	m.track = make([]float64, n)

	for i, f := range m.data.FrequencyGrid {
		v := math.Cbrt(math.Pi * mTot * f)
		v2 := v * v
		v5 := v2 * v2 * v

		psi := 2*math.Pi*f*tc - phic - math.Pi/4 +
			3.0/(128.0*eta*v5)*(1+psi2*v2+psi3*v2*v+psi4*v2*v2)

		a := amp * math.Pow(f, -7.0/6.0)
		h := complex(a, 0) * cmplx.Exp(complex(0, psi))

		m.plus[i] = complex(plusFac, 0) * h
		m.cross[i] = complex(0, crossFac) * h

		// Newtonian chirp time before coalescence at this frequency.
		m.track[i] = tc - 5.0/(256.0*eta)*mTot*math.Pow(math.Pi*mTot*f, -8.0/3.0)
	}
}
