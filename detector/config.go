package detector

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig indicates a network configuration that cannot be turned
// into a valid Network.
var ErrBadConfig = errors.New("detector: invalid network configuration")

// Grid spacing modes accepted by the YAML configuration.
const (
	// SpacingLinear samples the band [FMin, FMax] with equal steps.
	SpacingLinear = "linear"

	// SpacingLog samples the band [FMin, FMax] with logarithmic steps.
	SpacingLog = "log"
)

// DetectorConfig is the YAML shape of one detector entry.
//
// The frequency grid is described by (FMin, FMax, Bins, Spacing). The PSD
// is either an explicit array aligned to the grid, or a flat PSDLevel
// applied to every bin — noise-curve modeling is out of scope, so anything
// richer must be precomputed by the caller.
type DetectorConfig struct {
	Name         string    `yaml:"name"`
	LatitudeDeg  float64   `yaml:"latitude_deg"`
	LongitudeDeg float64   `yaml:"longitude_deg"`
	AzimuthDeg   float64   `yaml:"azimuth_deg"`
	FMin         float64   `yaml:"fmin"`
	FMax         float64   `yaml:"fmax"`
	Bins         int       `yaml:"bins"`
	Spacing      string    `yaml:"spacing"`
	PSDLevel     float64   `yaml:"psd_level"`
	PSD          []float64 `yaml:"psd"`
	DutyCycle    float64   `yaml:"duty_cycle"`
}

// NetworkConfig is the YAML shape of a full network file.
type NetworkConfig struct {
	// DetectionSNR is the (individual, network) threshold pair.
	DetectionSNR [2]float64       `yaml:"detection_snr"`
	Detectors    []DetectorConfig `yaml:"detectors"`
}

// LoadNetwork parses a YAML network configuration and builds a validated
// Network.
func LoadNetwork(data []byte) (*Network, error) {
	var cfg NetworkConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	return BuildNetwork(cfg)
}

// LoadNetworkFile reads path and delegates to LoadNetwork.
func LoadNetworkFile(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	return LoadNetwork(data)
}

// BuildNetwork assembles a Network from an in-memory configuration.
func BuildNetwork(cfg NetworkConfig) (*Network, error) {
	if len(cfg.Detectors) == 0 {
		return nil, ErrEmptyNetwork
	}

	dets := make([]*Detector, 0, len(cfg.Detectors))
	for _, dc := range cfg.Detectors {
		det, err := buildDetector(dc)
		if err != nil {
			return nil, fmt.Errorf("detector %q: %w", dc.Name, err)
		}
		dets = append(dets, det)
	}

	return NewNetwork(dets, cfg.DetectionSNR[0], cfg.DetectionSNR[1])
}

func buildDetector(dc DetectorConfig) (*Detector, error) {
	if dc.Bins < 2 || dc.FMin <= 0 || dc.FMax <= dc.FMin {
		return nil, ErrBadGrid
	}

	grid := make([]float64, dc.Bins)
	switch dc.Spacing {
	case SpacingLog:
		step := math.Pow(dc.FMax/dc.FMin, 1/float64(dc.Bins-1))
		f := dc.FMin
		for i := range grid {
			grid[i] = f
			f *= step
		}
		// Pin the endpoint: repeated multiplication drifts.
		grid[dc.Bins-1] = dc.FMax
	case SpacingLinear, "":
		step := (dc.FMax - dc.FMin) / float64(dc.Bins-1)
		for i := range grid {
			grid[i] = dc.FMin + float64(i)*step
		}
	default:
		return nil, fmt.Errorf("%w: unknown spacing %q", ErrBadConfig, dc.Spacing)
	}

	var psd []float64
	switch {
	case len(dc.PSD) > 0:
		if len(dc.PSD) != dc.Bins {
			return nil, ErrBadPSD
		}
		psd = append([]float64(nil), dc.PSD...)
	case dc.PSDLevel > 0:
		psd = make([]float64, dc.Bins)
		for i := range psd {
			psd[i] = dc.PSDLevel
		}
	default:
		return nil, ErrBadPSD
	}

	const degToRad = math.Pi / 180

	det := &Detector{
		Name:          dc.Name,
		FrequencyGrid: grid,
		PSD:           psd,
		Latitude:      dc.LatitudeDeg * degToRad,
		Longitude:     dc.LongitudeDeg * degToRad,
		ArmAzimuth:    dc.AzimuthDeg * degToRad,
		DutyCycle:     dc.DutyCycle,
	}
	if err := det.Validate(); err != nil {
		return nil, err
	}

	return det, nil
}
