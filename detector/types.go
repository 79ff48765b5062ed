package detector

import (
	"errors"
	"math"
	"math/rand"
)

// Sentinel errors returned by the detector package.
var (
	// ErrBadGrid indicates a frequency grid with fewer than two samples or
	// one that is not strictly increasing.
	ErrBadGrid = errors.New("detector: frequency grid must be strictly increasing with at least two samples")

	// ErrBadPSD indicates missing, non-positive, or misaligned noise PSD values.
	ErrBadPSD = errors.New("detector: PSD must be positive and aligned to the frequency grid")

	// ErrLengthMismatch indicates an input array not aligned to the detector
	// frequency grid.
	ErrLengthMismatch = errors.New("detector: array length does not match frequency grid")

	// ErrEmptyNetwork indicates a network without detectors.
	ErrEmptyNetwork = errors.New("detector: network has no detectors")

	// ErrBadIndex indicates an out-of-range detector index in Partial.
	ErrBadIndex = errors.New("detector: detector index out of range")
)

// Physical constants used by the reference projection.
const (
	// SpeedOfLight in m/s.
	SpeedOfLight = 299792458.0

	// EarthRadius in m (mean).
	EarthRadius = 6.371e6

	// EarthAngularRate is the sidereal rotation rate in rad/s.
	EarthAngularRate = 7.2921150e-5
)

// Detector describes one interferometric detector: identity, frequency
// grid, sampled noise PSD, and the minimal site geometry needed by the
// reference antenna-pattern projection.
//
// FrequencyGrid must be strictly increasing; PSD must be positive and the
// same length as the grid. Geometry angles are radians; ArmAzimuth is the
// bearing of the first arm, measured from local north toward east. The
// second arm is perpendicular.
type Detector struct {
	Name string

	FrequencyGrid []float64
	PSD           []float64

	Latitude   float64
	Longitude  float64
	ArmAzimuth float64

	// DutyCycle is the fraction of time the detector is observing, in
	// [0, 1]. Zero means "not set" and is treated as always on.
	DutyCycle float64

	dutyRNG *rand.Rand
}

// Validate checks the grid/PSD invariants. Geometry is not validated:
// every real angle is a legal site.
func (d *Detector) Validate() error {
	if len(d.FrequencyGrid) < 2 {
		return ErrBadGrid
	}
	for i := 1; i < len(d.FrequencyGrid); i++ {
		if d.FrequencyGrid[i] <= d.FrequencyGrid[i-1] {
			return ErrBadGrid
		}
	}
	if len(d.PSD) != len(d.FrequencyGrid) {
		return ErrBadPSD
	}
	for _, s := range d.PSD {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return ErrBadPSD
		}
	}

	return nil
}

// Bins reports the number of frequency samples.
func (d *Detector) Bins() int { return len(d.FrequencyGrid) }

// binWidth returns the integration width assigned to bin i: the forward
// grid step, with the last bin inheriting the step before it.
func (d *Detector) binWidth(i int) float64 {
	n := len(d.FrequencyGrid)
	if i < n-1 {
		return d.FrequencyGrid[i+1] - d.FrequencyGrid[i]
	}

	return d.FrequencyGrid[n-1] - d.FrequencyGrid[n-2]
}

// dutyDraw returns one uniform draw from the detector's private duty-cycle
// stream. The stream is seeded deterministically from the detector name so
// repeated runs are reproducible.
func (d *Detector) dutyDraw() float64 {
	if d.dutyRNG == nil {
		var seed int64 = 1
		for _, r := range d.Name {
			seed = seed*31 + int64(r)
		}
		d.dutyRNG = rand.New(rand.NewSource(seed))
	}

	return d.dutyRNG.Float64()
}
