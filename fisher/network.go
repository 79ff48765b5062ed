package fisher

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gravwave/gwfisher/detector"
	"github.com/gravwave/gwfisher/signal"
)

// NetworkResult holds the detected subset of a catalog after network
// aggregation. All slices are parallel: entry k describes the k-th
// detected signal.
type NetworkResult struct {
	// Parameters is the Fisher parameter order indexing Errors columns.
	Parameters []string

	// Indices are the positions of the detected signals in the input
	// catalog.
	Indices []int

	// SNR is the combined network SNR per detected signal.
	SNR []float64

	// Errors holds the 1-sigma uncertainty per detected signal and Fisher
	// parameter: the square roots of the covariance diagonal.
	Errors [][]float64

	// SkyAreas holds the 1-sigma sky-localization area in steradians per
	// detected signal. Nil — not empty — when the Fisher parameters do not
	// include both ra and dec: absence of sky localization is signaled by
	// absence, never by zero.
	SkyAreas []float64
}

// HasSky reports whether sky localization was computed.
func (r *NetworkResult) HasSky() bool { return r.SkyAreas != nil }

// ComputeNetworkErrors runs the full aggregation for a catalog of signals
// against a detector network.
//
// Per signal: every detector is evaluated with ComputeDetectorFisher; its
// squared SNR always enters the network SNR² accumulator, but its Fisher
// matrix joins the network sum only if the detector's own SNR exceeds the
// individual threshold DetectionSNR[0]. The summed matrix is inverted with
// InvertSVD, per-parameter errors are the square roots of the covariance
// diagonal, and — when both ra and dec are among the Fisher parameters —
// the sky-localization area is derived from the ra/dec covariance block.
//
// Only signals whose network SNR strictly exceeds DetectionSNR[1] appear
// in the result; errors and sky areas are filtered to match.
//
// Any evaluation or inversion failure aborts the run: per-signal results
// are never silently dropped.
func ComputeNetworkErrors(net *detector.Network, catalog []signal.ParameterSet, fisherParameters []string, opts ...Option) (*NetworkResult, error) {
	o := gatherOptions(opts...)

	if len(fisherParameters) == 0 {
		return nil, ErrNoParameters
	}
	if len(catalog) == 0 {
		return nil, ErrNoSignals
	}
	if net == nil || len(net.Detectors) == 0 {
		return nil, detector.ErrEmptyNetwork
	}

	nParams := len(fisherParameters)

	// Sky localization applies only when both coordinates are estimated.
	iRA, iDec := -1, -1
	for i, name := range fisherParameters {
		switch name {
		case signal.RightAscension:
			iRA = i
		case signal.Declination:
			iDec = i
		}
	}
	haveSky := iRA >= 0 && iDec >= 0

	detectorThr := net.DetectionSNR[0]
	networkThr := net.DetectionSNR[1]

	result := &NetworkResult{Parameters: append([]string(nil), fisherParameters...)}
	if haveSky {
		result.SkyAreas = []float64{}
	}

	total := len(catalog)
	for k, params := range catalog {
		networkFisher := mat.NewSymDense(nParams, nil)
		var networkSNRSquare float64

		for _, det := range net.Detectors {
			detFisher, detSNRSquare, err := computeDetectorFisher(det, params, fisherParameters, &o)
			if err != nil {
				return nil, fmt.Errorf("signal %d: %w", k, err)
			}

			// SNR accumulates from every detector; the Fisher matrix only
			// from detectors that individually cross the threshold.
			networkSNRSquare += detSNRSquare
			if math.Sqrt(detSNRSquare) > detectorThr {
				networkFisher.AddSym(networkFisher, detFisher)
			}
		}

		networkInverse, _, err := invertSVD(networkFisher, o.svdThreshold)
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", k, err)
		}

		networkSNR := math.Sqrt(networkSNRSquare)

		if o.progress != nil {
			o.progress(k+1, total)
		}

		// Strict comparison: a signal exactly at the threshold is not
		// detected.
		if !(networkSNR > networkThr) {
			continue
		}

		errs := make([]float64, nParams)
		for j := 0; j < nParams; j++ {
			errs[j] = math.Sqrt(networkInverse.At(j, j))
		}

		result.Indices = append(result.Indices, k)
		result.SNR = append(result.SNR, networkSNR)
		result.Errors = append(result.Errors, errs)

		if haveSky {
			dec, err := params.Get(signal.Declination)
			if err != nil {
				return nil, fmt.Errorf("signal %d: %w", k, err)
			}
			area, err := SkyArea(networkInverse, dec, iRA, iDec)
			if err != nil {
				return nil, fmt.Errorf("signal %d: %w", k, err)
			}
			result.SkyAreas = append(result.SkyAreas, area)
		}
	}

	return result, nil
}
