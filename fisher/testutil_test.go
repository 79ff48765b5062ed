package fisher_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/gravwave/gwfisher/detector"
	"github.com/gravwave/gwfisher/signal"
	"github.com/gravwave/gwfisher/waveform"
	"github.com/stretchr/testify/require"
)

// flatDetector returns a detector with unit-spaced grid starting at 10 Hz
// and flat unit PSD: the scalar product reduces to 4·Σ Re(a·conj(b)).
func flatDetector(t *testing.T, name string, bins int) *detector.Detector {
	t.Helper()

	grid := make([]float64, bins)
	psd := make([]float64, bins)
	for i := range grid {
		grid[i] = 10 + float64(i)
		psd[i] = 1.0
	}
	det := &detector.Detector{Name: name, FrequencyGrid: grid, PSD: psd}
	require.NoError(t, det.Validate())

	return det
}

// constantGenerator produces a frequency-independent strain of the given
// amplitude, scaled by 1/luminosity_distance relative to refDistance so
// the analytic distance derivative stays exact, and carrying the
// exp(2πi·f·tc) coalescence-time phase.
func constantGenerator(amp float64, refDistance float64) waveform.GeneratorFunc {
	return func(params signal.ParameterSet, data waveform.Data) ([]complex128, []complex128, []float64, error) {
		n := len(data.FrequencyGrid)
		plus := make([]complex128, n)
		cross := make([]complex128, n)
		track := make([]float64, n)

		d := params.Value(signal.LuminosityDistance)
		tc := params.Value(signal.GeocentTime)
		phic := params.Value(signal.Phase)
		scale := amp * refDistance / d

		for i, f := range data.FrequencyGrid {
			plus[i] = complex(scale, 0) * cmplx.Exp(complex(0, 2*math.Pi*f*tc-phic))
			track[i] = tc
		}

		return plus, cross, track, nil
	}
}

// identityProjection passes the plus polarization through untouched,
// removing antenna-pattern effects from waveform-focused tests.
func identityProjection(_ signal.ParameterSet, det *detector.Detector, plus, _ []complex128, _ []float64) ([]complex128, error) {
	if len(plus) != det.Bins() {
		return nil, detector.ErrLengthMismatch
	}

	return append([]complex128(nil), plus...), nil
}

// skyPhaseProjection depends smoothly on ra, dec and psi, so extrinsic
// finite differences have a closed form: the plus polarization times
// exp(i·(0.3·ra + 0.5·dec))·(1 + 0.2·sin(psi)).
func skyPhaseProjection(params signal.ParameterSet, det *detector.Detector, plus, _ []complex128, _ []float64) ([]complex128, error) {
	if len(plus) != det.Bins() {
		return nil, detector.ErrLengthMismatch
	}
	ra := params.Value(signal.RightAscension)
	dec := params.Value(signal.Declination)
	psi := params.Value(signal.Polarization)

	factor := cmplx.Exp(complex(0, 0.3*ra+0.5*dec)) * complex(1+0.2*math.Sin(psi), 0)
	out := make([]complex128, len(plus))
	for i, p := range plus {
		out[i] = factor * p
	}

	return out, nil
}

// centralParams is a convenient central point shared by the tests.
func centralParams() signal.ParameterSet {
	return signal.NewParameterSet(map[string]float64{
		signal.Mass1:              36,
		signal.Mass2:              29,
		signal.LuminosityDistance: 410,
		signal.GeocentTime:        100,
		signal.Phase:              1.3,
		signal.RightAscension:     1.1,
		signal.Declination:        -0.4,
		signal.Polarization:       0.7,
		signal.Inclination:        0.4,
	})
}
