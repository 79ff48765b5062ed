package fisher

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SkyArea computes the 1-sigma sky-localization ellipse area, in
// steradians, from a network covariance matrix (the InvertSVD output) and
// the signal declination:
//
//	area = π·|cos(dec)|·sqrt(Σ_ra,ra·Σ_dec,dec − Σ_ra,dec²)
//
// where Σ is the covariance restricted to the ra/dec indices. The cosine
// factor converts the right-ascension coordinate width into a proper
// angular extent at that declination.
func SkyArea(cov mat.Matrix, dec float64, iRA, iDec int) (float64, error) {
	r, c := cov.Dims()
	if iRA < 0 || iDec < 0 || iRA >= r || iDec >= c || iRA >= c || iDec >= r {
		return 0, ErrBadSkyIndex
	}

	det := cov.At(iRA, iRA)*cov.At(iDec, iDec) - cov.At(iRA, iDec)*cov.At(iRA, iDec)
	if det < 0 {
		// Round-off can push a degenerate block marginally negative.
		det = 0
	}

	return math.Pi * math.Abs(math.Cos(dec)) * math.Sqrt(det), nil
}

// PercentileFactor converts a 1-sigma steradian sky area into the p%
// confidence contour in square degrees: multiply the SkyArea output by
// the returned factor.
//
//	factor(p) = −2·ln(1 − p/100)·(180/π)²
func PercentileFactor(p float64) float64 {
	const radToDeg = 180 / math.Pi

	return -2 * math.Log(1-p/100) * radToDeg * radToDeg
}
