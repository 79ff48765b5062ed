package detector

import (
	"math"
	"math/cmplx"

	"github.com/gravwave/gwfisher/signal"
)

// ProjectionFunc maps a pair of waveform polarizations and their
// time-of-frequency track to the complex signal seen by one detector.
// Implementations must return an array aligned to the detector grid.
//
// The fisher package consumes this as an injectable collaborator; Project
// is the reference implementation.
type ProjectionFunc func(params signal.ParameterSet, det *Detector, plus, cross []complex128, tOfF []float64) ([]complex128, error)

// Project is the reference detector response:
//
//	s(f) = [F₊(t(f))·h₊(f) + F×(t(f))·h×(f)] · exp(−2πi·f·τ(t(f)))
//
// where F₊/F× are the quadrupole antenna patterns of an L-shaped detector
// evaluated at the sky position (ra, dec) with polarization angle psi, and
// τ is the geocenter-to-detector light travel time along the line of
// sight. Both depend on time through Earth rotation, sampled per bin from
// the time-of-frequency track.
func Project(params signal.ParameterSet, det *Detector, plus, cross []complex128, tOfF []float64) ([]complex128, error) {
	n := det.Bins()
	if len(plus) != n || len(cross) != n || len(tOfF) != n {
		return nil, ErrLengthMismatch
	}

	ra, err := params.Get(signal.RightAscension)
	if err != nil {
		return nil, err
	}
	dec, err := params.Get(signal.Declination)
	if err != nil {
		return nil, err
	}
	psi := params.Value(signal.Polarization)

	// Direction to the source in equatorial coordinates.
	sinDec, cosDec := math.Sincos(dec)

	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		// Greenwich hour angle of the source at this bin's arrival time.
		gha := EarthAngularRate*tOfF[i] - ra

		sinGha, cosGha := math.Sincos(gha)
		src := [3]float64{cosDec * cosGha, -cosDec * sinGha, sinDec}

		fp, fc := det.antennaPatterns(src, psi)

		// Light travel time from geocenter, projected on the line of sight.
		pos := det.position()
		tau := -(pos[0]*src[0] + pos[1]*src[1] + pos[2]*src[2]) / SpeedOfLight

		phase := cmplx.Exp(complex(0, -2*math.Pi*det.FrequencyGrid[i]*tau))
		out[i] = (complex(fp, 0)*plus[i] + complex(fc, 0)*cross[i]) * phase
	}

	return out, nil
}

// position returns the detector location in the Earth-fixed frame, in
// meters. The frame co-rotates with the source hour angle, so longitude
// enters here and Earth rotation enters through gha in Project.
func (d *Detector) position() [3]float64 {
	sinLat, cosLat := math.Sincos(d.Latitude)
	sinLon, cosLon := math.Sincos(d.Longitude)

	return [3]float64{
		EarthRadius * cosLat * cosLon,
		EarthRadius * cosLat * sinLon,
		EarthRadius * sinLat,
	}
}

// antennaPatterns evaluates F₊ and F× by contracting the detector tensor
// D = (x̂⊗x̂ − ŷ⊗ŷ)/2 with the wave polarization tensors built from the
// source direction and polarization angle.
func (d *Detector) antennaPatterns(src [3]float64, psi float64) (fp, fc float64) {
	sinLat, cosLat := math.Sincos(d.Latitude)
	sinLon, cosLon := math.Sincos(d.Longitude)

	// Local basis at the site: east and north, Earth-fixed frame.
	east := [3]float64{-sinLon, cosLon, 0}
	north := [3]float64{-sinLat * cosLon, -sinLat * sinLon, cosLat}

	sinAz, cosAz := math.Sincos(d.ArmAzimuth)
	armX := [3]float64{}
	armY := [3]float64{}
	for k := 0; k < 3; k++ {
		armX[k] = cosAz*north[k] + sinAz*east[k]
		armY[k] = -sinAz*north[k] + cosAz*east[k]
	}

	// Wave-frame basis orthogonal to the propagation direction. The hour
	// angle already carries the Earth-rotation dependence, so the basis is
	// built in the same co-rotating frame as src.
	sinDec := src[2]
	cosDec := math.Sqrt(src[0]*src[0] + src[1]*src[1])
	var cosGha, sinGha float64
	if cosDec > 0 {
		cosGha = src[0] / cosDec
		sinGha = -src[1] / cosDec
	} else {
		cosGha, sinGha = 1, 0
	}

	eRA := [3]float64{-sinGha, -cosGha, 0}
	eDec := [3]float64{-sinDec * cosGha, sinDec * sinGha, cosDec}

	sinPsi, cosPsi := math.Sincos(psi)
	waveX := [3]float64{}
	waveY := [3]float64{}
	for k := 0; k < 3; k++ {
		waveX[k] = cosPsi*eRA[k] + sinPsi*eDec[k]
		waveY[k] = -sinPsi*eRA[k] + cosPsi*eDec[k]
	}

	for j := 0; j < 3; j++ {
		for k := 0; k < 3; k++ {
			dTensor := 0.5 * (armX[j]*armX[k] - armY[j]*armY[k])
			ePlus := waveX[j]*waveX[k] - waveY[j]*waveY[k]
			eCross := waveX[j]*waveY[k] + waveY[j]*waveX[k]
			fp += dTensor * ePlus
			fc += dTensor * eCross
		}
	}

	return fp, fc
}
