package detector

import "fmt"

// Network is an ordered collection of detectors plus the detection
// threshold pair. DetectionSNR[0] is the individual-detector threshold: a
// detector's Fisher matrix enters the network sum only if its own SNR
// exceeds it. DetectionSNR[1] is the network threshold: a signal counts as
// detected only if the combined network SNR exceeds it (strictly).
type Network struct {
	Detectors    []*Detector
	DetectionSNR [2]float64
}

// NewNetwork validates every detector and returns the assembled network.
func NewNetwork(dets []*Detector, individualSNR, networkSNR float64) (*Network, error) {
	if len(dets) == 0 {
		return nil, ErrEmptyNetwork
	}
	for _, d := range dets {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("detector %q: %w", d.Name, err)
		}
	}

	return &Network{
		Detectors:    dets,
		DetectionSNR: [2]float64{individualSNR, networkSNR},
	}, nil
}

// Partial returns a sub-network holding the detectors selected by indices,
// in the given order, sharing the same threshold pair. Detector values are
// shared, not copied: detectors are read-only during evaluation.
func (n *Network) Partial(indices []int) (*Network, error) {
	if len(indices) == 0 {
		return nil, ErrEmptyNetwork
	}
	sub := make([]*Detector, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(n.Detectors) {
			return nil, fmt.Errorf("%w: %d (network size %d)", ErrBadIndex, idx, len(n.Detectors))
		}
		sub = append(sub, n.Detectors[idx])
	}

	return &Network{Detectors: sub, DetectionSNR: n.DetectionSNR}, nil
}
