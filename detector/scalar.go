package detector

import "math"

// ScalarProductFunc is the noise-weighted inner product collaborator
// consumed by the fisher package. It returns the per-bin real integrand;
// the caller sums over frequency.
type ScalarProductFunc func(a, b []complex128, det *Detector) ([]float64, error)

// SNRFunc is the per-bin SNR collaborator. The squares of the returned
// bins sum to the detector SNR².
type SNRFunc func(det *Detector, sig []complex128, useDutyCycle bool) ([]float64, error)

// ScalarProduct is the reference noise-weighted inner product:
//
//	out[i] = 4 · Re(a[i]·conj(b[i])) / S_n(f[i]) · Δf[i]
//
// with Δf the local grid step (the last bin inherits the step before it).
// Summing out over all bins gives the usual matched-filter inner product
// 4·Re ∫ a(f)·b*(f)/S_n(f) df on the detector band.
func ScalarProduct(a, b []complex128, det *Detector) ([]float64, error) {
	n := det.Bins()
	if len(a) != n || len(b) != n {
		return nil, ErrLengthMismatch
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		re := real(a[i])*real(b[i]) + imag(a[i])*imag(b[i])
		out[i] = 4 * re / det.PSD[i] * det.binWidth(i)
	}

	return out, nil
}

// SNR returns the per-bin SNR contributions of a projected signal:
// sqrt of the per-bin self scalar product, so that the squares sum to the
// detector SNR².
//
// When useDutyCycle is set and the detector declares a DutyCycle below 1,
// one uniform draw from the detector's deterministic stream decides
// whether the detector was observing; if not, every bin is zero.
func SNR(det *Detector, sig []complex128, useDutyCycle bool) ([]float64, error) {
	bins, err := ScalarProduct(sig, sig, det)
	if err != nil {
		return nil, err
	}

	if useDutyCycle && det.DutyCycle > 0 && det.DutyCycle < 1 {
		if det.dutyDraw() > det.DutyCycle {
			return make([]float64, len(bins)), nil
		}
	}

	for i, v := range bins {
		// Guard against tiny negative round-off in the self product.
		if v < 0 {
			v = 0
		}
		bins[i] = math.Sqrt(v)
	}

	return bins, nil
}
