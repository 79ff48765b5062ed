package fisher

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/gravwave/gwfisher/detector"
	"github.com/gravwave/gwfisher/signal"
	"github.com/gravwave/gwfisher/waveform"
)

// Derivative computes ∂(projected signal)/∂θ at a fixed central point in
// parameter space, one parameter at a time.
//
// Rule order, highest priority first:
//
//  1. luminosity_distance — analytic: −(1/d)·projection.
//  2. geocent_time        — analytic: 2πi·f·projection, per frequency bin.
//  3. phase               — analytic: −i·projection.
//  4. ra, dec, psi        — extrinsic: central finite difference of the
//     projection alone, waveform held fixed.
//  5. everything else     — intrinsic: central finite difference with full
//     waveform regeneration. The perturbed waveforms
//     are generated with geocent_time forced to zero
//     to avoid precision loss from the large absolute
//     coalescence time; the true tc is restored in
//     the projection inputs and the raw difference is
//     multiplied by exp(2πi·f·tc).
//
// The central waveform and its projection are memoized across calls, so
// building an n-parameter Fisher matrix evaluates the central model once.
// Every call leaves the waveform model reset to the central parameters.
type Derivative struct {
	model   waveform.Model
	factory waveform.Factory
	det     *detector.Detector
	data    waveform.Data

	central    signal.ParameterSet
	tc         float64
	eps        float64
	projection detector.ProjectionFunc

	// Memoized central evaluation; nil until first use, cleared by Reset.
	wavePlus  []complex128
	waveCross []complex128
	waveTrack []float64
	proj      []complex128
}

// NewDerivative builds a derivative engine at the given central parameters
// for one detector. The central values are captured immutably; perturbed
// copies never alias them.
func NewDerivative(params signal.ParameterSet, det *detector.Detector, opts ...Option) (*Derivative, error) {
	o := gatherOptions(opts...)

	return newDerivative(params, det, &o)
}

// newDerivative is the shared constructor used by Matrix and the
// per-detector evaluator, which have already resolved options.
func newDerivative(params signal.ParameterSet, det *detector.Detector, o *Options) (*Derivative, error) {
	if err := det.Validate(); err != nil {
		return nil, err
	}

	data := waveform.Data{FrequencyGrid: det.FrequencyGrid, FRef: o.fRef}
	model, err := o.factory(params, data)
	if err != nil {
		return nil, fmt.Errorf("fisher: building central waveform model: %w", err)
	}

	return &Derivative{
		model:      model,
		factory:    o.factory,
		det:        det,
		data:       data,
		central:    params,
		tc:         params.Value(signal.GeocentTime),
		eps:        o.eps,
		projection: o.projection,
	}, nil
}

// WaveformAtParameters returns the memoized central polarizations and
// time-of-frequency track, computing them on first access.
func (d *Derivative) WaveformAtParameters() (plus, cross []complex128, track []float64, err error) {
	if d.wavePlus == nil {
		if d.wavePlus, d.waveCross, err = d.model.Polarizations(); err != nil {
			return nil, nil, nil, err
		}
		if d.waveTrack, err = d.model.TimeOfFrequency(); err != nil {
			return nil, nil, nil, err
		}
	}

	return d.wavePlus, d.waveCross, d.waveTrack, nil
}

// ProjectionAtParameters returns the memoized central detector projection,
// computing it on first access.
func (d *Derivative) ProjectionAtParameters() ([]complex128, error) {
	if d.proj == nil {
		plus, cross, track, err := d.WaveformAtParameters()
		if err != nil {
			return nil, err
		}
		if d.proj, err = d.projection(d.central, d.det, plus, cross, track); err != nil {
			return nil, err
		}
	}

	return d.proj, nil
}

// Reset drops the memoized central waveform and projection. The next
// accessor call recomputes them.
func (d *Derivative) Reset() {
	d.wavePlus, d.waveCross, d.waveTrack, d.proj = nil, nil, nil, nil
}

// WithRespectTo returns the derivative of the projected signal with
// respect to the named parameter, aligned to the detector grid.
func (d *Derivative) WithRespectTo(name string) ([]complex128, error) {
	out, err := d.derive(name)

	// The model must end every call holding the central parameters, even
	// after an intrinsic perturbation or an error mid-difference.
	if resetErr := d.model.UpdateParameters(d.central); resetErr != nil && err == nil {
		err = resetErr
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (d *Derivative) derive(name string) ([]complex128, error) {
	switch name {
	case signal.LuminosityDistance:
		return d.distanceDerivative()
	case signal.GeocentTime:
		return d.timeDerivative()
	case signal.Phase:
		return d.phaseDerivative()
	case signal.RightAscension, signal.Declination, signal.Polarization:
		return d.extrinsicDerivative(name)
	default:
		return d.intrinsicDerivative(name)
	}
}

// distanceDerivative: strain amplitude scales as 1/d, so the derivative is
// −projection/d.
func (d *Derivative) distanceDerivative() ([]complex128, error) {
	proj, err := d.ProjectionAtParameters()
	if err != nil {
		return nil, err
	}
	dist, err := d.central.Get(signal.LuminosityDistance)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(proj))
	inv := complex(-1/dist, 0)
	for i, p := range proj {
		out[i] = inv * p
	}

	return out, nil
}

// timeDerivative: a coalescence-time shift multiplies each bin by
// exp(2πi·f·dt), so the derivative is 2πi·f·projection.
func (d *Derivative) timeDerivative() ([]complex128, error) {
	proj, err := d.ProjectionAtParameters()
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(proj))
	for i, p := range proj {
		out[i] = complex(0, 2*math.Pi*d.det.FrequencyGrid[i]) * p
	}

	return out, nil
}

// phaseDerivative: the strain carries exp(−iφc), so the derivative is
// −i·projection.
func (d *Derivative) phaseDerivative() ([]complex128, error) {
	proj, err := d.ProjectionAtParameters()
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(proj))
	for i, p := range proj {
		out[i] = complex(0, -1) * p
	}

	return out, nil
}

// step returns the central value and finite-difference step for name:
// dθ = max(eps, eps·|θ|).
func (d *Derivative) step(name string) (pv, dp float64, err error) {
	if pv, err = d.central.Get(name); err != nil {
		return 0, 0, err
	}
	dp = math.Max(d.eps, d.eps*math.Abs(pv))

	return pv, dp, nil
}

// extrinsicDerivative differences the projection alone: ra, dec and psi do
// not affect the waveform, only how it lands on the detector.
func (d *Derivative) extrinsicDerivative(name string) ([]complex128, error) {
	pv, dp, err := d.step(name)
	if err != nil {
		return nil, err
	}
	plus, cross, track, err := d.WaveformAtParameters()
	if err != nil {
		return nil, err
	}

	lo := d.central.With(name, pv-dp/2)
	hi := d.central.With(name, pv+dp/2)

	sigLo, err := d.projection(lo, d.det, plus, cross, track)
	if err != nil {
		return nil, err
	}
	sigHi, err := d.projection(hi, d.det, plus, cross, track)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(sigLo))
	inv := complex(1/dp, 0)
	for i := range out {
		out[i] = (sigHi[i] - sigLo[i]) * inv
	}

	return out, nil
}

// intrinsicDerivative regenerates the waveform at both perturbed points.
// Generation happens with geocent_time set to zero so the oscillatory
// exp(2πi·f·tc) factor, whose argument can reach 1e11 radians for GPS
// epochs, does not swamp the O(dθ) difference; the factor is restored
// exactly after projecting.
func (d *Derivative) intrinsicDerivative(name string) ([]complex128, error) {
	pv, dp, err := d.step(name)
	if err != nil {
		return nil, err
	}

	lo := d.central.With(name, pv-dp/2).With(signal.GeocentTime, 0)
	hi := d.central.With(name, pv+dp/2).With(signal.GeocentTime, 0)

	plusLo, crossLo, trackLo, err := d.perturbedWaveform(lo)
	if err != nil {
		return nil, err
	}
	plusHi, crossHi, trackHi, err := d.perturbedWaveform(hi)
	if err != nil {
		return nil, err
	}

	// Restore the true coalescence time before projecting: the projection
	// sees the physical arrival times, only the waveform generation ran
	// around zero.
	shiftedLo := shiftTrack(trackLo, d.tc)
	shiftedHi := shiftTrack(trackHi, d.tc)

	sigLo, err := d.projection(d.central.With(name, pv-dp/2), d.det, plusLo, crossLo, shiftedLo)
	if err != nil {
		return nil, err
	}
	sigHi, err := d.projection(d.central.With(name, pv+dp/2), d.det, plusHi, crossHi, shiftedHi)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(sigLo))
	for i := range out {
		phase := cmplx.Exp(complex(0, 2*math.Pi*d.det.FrequencyGrid[i]*d.tc))
		out[i] = phase * (sigHi[i] - sigLo[i]) / complex(dp, 0)
	}

	return out, nil
}

// perturbedWaveform builds a fresh model at params and evaluates it.
func (d *Derivative) perturbedWaveform(params signal.ParameterSet) (plus, cross []complex128, track []float64, err error) {
	model, err := d.factory(params, d.data)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fisher: building perturbed waveform model: %w", err)
	}
	if plus, cross, err = model.Polarizations(); err != nil {
		return nil, nil, nil, err
	}
	if track, err = model.TimeOfFrequency(); err != nil {
		return nil, nil, nil, err
	}

	return plus, cross, track, nil
}

func shiftTrack(track []float64, tc float64) []float64 {
	out := make([]float64, len(track))
	for i, t := range track {
		out[i] = t + tc
	}

	return out
}
