package catalog_test

import (
	"math"
	"strings"
	"testing"

	"github.com/gravwave/gwfisher/catalog"
	"github.com/gravwave/gwfisher/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromCSV_ParsesHeadedStream loads a two-signal catalog and checks
// values land under the header names, with padded cells trimmed.
func TestFromCSV_ParsesHeadedStream(t *testing.T) {
	const data = `mass_1, mass_2, luminosity_distance
36, 29, 410
10.5, 9.5, 1500
`

	signals, err := catalog.FromCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, signals, 2)

	assert.Equal(t, 36.0, signals[0].Value(signal.Mass1))
	assert.Equal(t, 29.0, signals[0].Value(signal.Mass2))
	assert.Equal(t, 410.0, signals[0].Value(signal.LuminosityDistance))
	assert.Equal(t, 1500.0, signals[1].Value(signal.LuminosityDistance))
}

// TestFromCSV_BadInput covers the sentinel conditions: empty stream,
// header-only stream, non-numeric cell, ragged row, duplicate and empty
// header names.
func TestFromCSV_BadInput(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"empty stream", "", catalog.ErrEmptyCatalog},
		{"header only", "mass_1,mass_2\n", catalog.ErrEmptyCatalog},
		{"non-numeric cell", "mass_1\nheavy\n", catalog.ErrBadRecord},
		{"ragged row", "mass_1,mass_2\n36\n", catalog.ErrBadRecord},
		{"duplicate header", "mass_1,mass_1\n36,29\n", catalog.ErrBadRecord},
		{"empty header name", "mass_1,\n36,29\n", catalog.ErrBadRecord},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.FromCSV(strings.NewReader(tc.data))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSynthetic_Deterministic verifies the seeding contract: same seed,
// same catalog; different seed, different catalog; seed 0 is the stable
// default stream.
func TestSynthetic_Deterministic(t *testing.T) {
	a, err := catalog.Synthetic(5, catalog.WithSeed(7))
	require.NoError(t, err)
	b, err := catalog.Synthetic(5, catalog.WithSeed(7))
	require.NoError(t, err)
	c, err := catalog.Synthetic(5, catalog.WithSeed(8))
	require.NoError(t, err)

	require.Len(t, a, 5)
	for k := range a {
		assert.Equal(t, a[k].Map(), b[k].Map(), "signal %d must repeat under the same seed", k)
	}
	assert.NotEqual(t, a[0].Map(), c[0].Map(), "a different seed must change the draw")

	dflt, err := catalog.Synthetic(2)
	require.NoError(t, err)
	viaZero, err := catalog.Synthetic(2, catalog.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, dflt[0].Map(), viaZero[0].Map(), "seed 0 selects the default stream")
}

// TestSynthetic_RespectsBoundsAndMassOrder checks every default
// parameter stays inside its interval and the component masses come out
// ordered.
func TestSynthetic_RespectsBoundsAndMassOrder(t *testing.T) {
	signals, err := catalog.Synthetic(200, catalog.WithSeed(3))
	require.NoError(t, err)

	for k, s := range signals {
		m1 := s.Value(signal.Mass1)
		m2 := s.Value(signal.Mass2)
		assert.GreaterOrEqual(t, m1, m2, "signal %d: masses must be ordered", k)
		assert.GreaterOrEqual(t, m2, 5.0)
		assert.LessOrEqual(t, m1, 50.0)

		d := s.Value(signal.LuminosityDistance)
		assert.GreaterOrEqual(t, d, 100.0)
		assert.LessOrEqual(t, d, 5000.0)

		dec := s.Value(signal.Declination)
		assert.GreaterOrEqual(t, dec, -math.Pi/2)
		assert.LessOrEqual(t, dec, math.Pi/2)

		iota := s.Value(signal.Inclination)
		assert.GreaterOrEqual(t, iota, 0.0)
		assert.LessOrEqual(t, iota, math.Pi)
	}
}

// TestSynthetic_RangeOverrideAndExtras narrows a default interval and
// attaches a custom parameter; both must show up in every signal.
func TestSynthetic_RangeOverrideAndExtras(t *testing.T) {
	signals, err := catalog.Synthetic(50,
		catalog.WithSeed(11),
		catalog.WithRange(signal.LuminosityDistance, 400, 450),
		catalog.WithRange("lambda_tilde", 0, 1000))
	require.NoError(t, err)

	for k, s := range signals {
		d := s.Value(signal.LuminosityDistance)
		assert.GreaterOrEqual(t, d, 400.0, "signal %d", k)
		assert.LessOrEqual(t, d, 450.0, "signal %d", k)

		require.True(t, s.Has("lambda_tilde"), "signal %d must carry the extra parameter", k)
		lam := s.Value("lambda_tilde")
		assert.GreaterOrEqual(t, lam, 0.0)
		assert.LessOrEqual(t, lam, 1000.0)
	}
}

// TestSynthetic_EmptyAndPanics covers the size sentinel and the option
// constructor contract.
func TestSynthetic_EmptyAndPanics(t *testing.T) {
	_, err := catalog.Synthetic(0)
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	_, err = catalog.Synthetic(-3)
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)

	assert.Panics(t, func() { catalog.WithRange("", 0, 1) })
	assert.Panics(t, func() { catalog.WithRange("x", 2, 1) })
	assert.Panics(t, func() { catalog.WithRange("x", math.NaN(), 1) })
	assert.Panics(t, func() { catalog.WithRange("x", 0, math.Inf(1)) })
}
