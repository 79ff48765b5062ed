package signal_test

import (
	"testing"

	"github.com/gravwave/gwfisher/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParameterSet_NewCopiesInput verifies that mutating the source map
// after construction does not leak into the set.
func TestParameterSet_NewCopiesInput(t *testing.T) {
	src := map[string]float64{signal.Mass1: 30, signal.Mass2: 25}
	ps := signal.NewParameterSet(src)

	src[signal.Mass1] = 999

	v, err := ps.Get(signal.Mass1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v, "set must hold a private copy of the input map")
}

// TestParameterSet_GetUnknown verifies the sentinel for absent names.
func TestParameterSet_GetUnknown(t *testing.T) {
	ps := signal.NewParameterSet(map[string]float64{signal.Phase: 1.2})

	_, err := ps.Get("spin_1z")
	assert.ErrorIs(t, err, signal.ErrUnknownParameter)
}

// TestParameterSet_WithIsIndependent verifies that perturbation produces a
// fresh copy and leaves the receiver untouched.
func TestParameterSet_WithIsIndependent(t *testing.T) {
	central := signal.NewParameterSet(map[string]float64{signal.GeocentTime: 100.0})

	up := central.With(signal.GeocentTime, 100.5)
	down := central.With(signal.GeocentTime, 99.5)

	assert.Equal(t, 100.0, central.Value(signal.GeocentTime), "central must be unchanged")
	assert.Equal(t, 100.5, up.Value(signal.GeocentTime))
	assert.Equal(t, 99.5, down.Value(signal.GeocentTime))
}

// TestParameterSet_NamesSorted verifies stable, sorted name iteration.
func TestParameterSet_NamesSorted(t *testing.T) {
	ps := signal.NewParameterSet(map[string]float64{
		signal.Polarization: 0.3,
		signal.Declination:  -0.1,
		signal.Mass1:        10,
	})

	assert.Equal(t, []string{signal.Declination, signal.Mass1, signal.Polarization}, ps.Names())
}

// TestParameterSet_Merge verifies last-writer-wins on collisions.
func TestParameterSet_Merge(t *testing.T) {
	base := signal.NewParameterSet(map[string]float64{signal.Mass1: 10, signal.Phase: 0})
	over := signal.NewParameterSet(map[string]float64{signal.Phase: 2.5})

	merged := base.Merge(over)

	assert.Equal(t, 10.0, merged.Value(signal.Mass1))
	assert.Equal(t, 2.5, merged.Value(signal.Phase))
	assert.Equal(t, 0.0, base.Value(signal.Phase), "receiver must be unchanged")
}
