// Package signal defines the parameter-space value types shared by the
// waveform, detector and fisher packages.
//
// A ParameterSet is an immutable mapping from parameter name to value.
// Perturbation (With) produces an independent copy, so two half-step
// parameter sets used by a central finite difference can never alias.
//
// Errors (sentinel):
//
//	– ErrUnknownParameter if a requested parameter is absent from the set.
package signal

import "errors"

// Canonical parameter names. Catalogs and Fisher parameter lists use these
// strings; nothing prevents a caller from adding custom names on top.
const (
	// Mass1 is the primary component mass, in solar masses.
	Mass1 = "mass_1"

	// Mass2 is the secondary component mass, in solar masses.
	Mass2 = "mass_2"

	// LuminosityDistance is the source luminosity distance, in Mpc.
	LuminosityDistance = "luminosity_distance"

	// GeocentTime is the coalescence time at the geocenter, GPS seconds.
	GeocentTime = "geocent_time"

	// Phase is the merger phase, radians.
	Phase = "phase"

	// RightAscension is the source right ascension, radians.
	RightAscension = "ra"

	// Declination is the source declination, radians.
	Declination = "dec"

	// Polarization is the polarization angle, radians.
	Polarization = "psi"

	// Inclination is the angle between line of sight and orbital angular
	// momentum, radians.
	Inclination = "theta_jn"

	// Redshift is the cosmological redshift of the source.
	Redshift = "redshift"
)

// ErrUnknownParameter indicates that a requested parameter name is not
// present in the ParameterSet.
var ErrUnknownParameter = errors.New("signal: unknown parameter")
