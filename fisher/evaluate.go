package fisher

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gravwave/gwfisher/detector"
	"github.com/gravwave/gwfisher/signal"
	"github.com/gravwave/gwfisher/waveform"
)

// ComputeDetectorFisher evaluates one detector/signal pair: generate the
// waveform and its time-of-frequency track, project onto the detector,
// compute the per-bin SNR contributions, and assemble the Fisher matrix.
// Returns the matrix and the summed squared SNR.
//
// The evaluation is side-effect-free beyond the memoization inside the
// Derivative it creates; every call works on fresh state.
func ComputeDetectorFisher(det *detector.Detector, params signal.ParameterSet, fisherParameters []string, opts ...Option) (*mat.SymDense, float64, error) {
	o := gatherOptions(opts...)

	return computeDetectorFisher(det, params, fisherParameters, &o)
}

func computeDetectorFisher(det *detector.Detector, params signal.ParameterSet, fisherParameters []string, o *Options) (*mat.SymDense, float64, error) {
	data := waveform.Data{FrequencyGrid: det.FrequencyGrid, FRef: o.fRef}
	model, err := o.factory(params, data)
	if err != nil {
		return nil, 0, fmt.Errorf("fisher: detector %q: %w", det.Name, err)
	}

	plus, cross, err := model.Polarizations()
	if err != nil {
		return nil, 0, fmt.Errorf("fisher: detector %q: %w", det.Name, err)
	}
	track, err := model.TimeOfFrequency()
	if err != nil {
		return nil, 0, fmt.Errorf("fisher: detector %q: %w", det.Name, err)
	}

	sig, err := o.projection(params, det, plus, cross, track)
	if err != nil {
		return nil, 0, fmt.Errorf("fisher: detector %q: %w", det.Name, err)
	}

	snrBins, err := o.snr(det, sig, o.useDutyCycle)
	if err != nil {
		return nil, 0, fmt.Errorf("fisher: detector %q: %w", det.Name, err)
	}
	var snrSquare float64
	for _, s := range snrBins {
		snrSquare += s * s
	}

	fmObj, err := newMatrix(params, fisherParameters, det, o)
	if err != nil {
		return nil, 0, err
	}
	fm, err := fmObj.Matrix()
	if err != nil {
		return nil, 0, err
	}

	return fm, snrSquare, nil
}
