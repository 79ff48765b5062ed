package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gravwave/gwfisher/detector"
	"github.com/gravwave/gwfisher/fisher"
	"github.com/gravwave/gwfisher/report"
	"github.com/gravwave/gwfisher/signal"
	"github.com/gravwave/gwfisher/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNetwork returns a three-detector network with network detection
// threshold 8.
func testNetwork(t *testing.T) *detector.Network {
	t.Helper()

	grid := []float64{10, 11, 12, 13}
	psd := []float64{1, 1, 1, 1}
	dets := []*detector.Detector{
		{Name: "H1", FrequencyGrid: grid, PSD: psd},
		{Name: "L1", FrequencyGrid: grid, PSD: psd},
		{Name: "ET", FrequencyGrid: grid, PSD: psd},
	}
	net, err := detector.NewNetwork(dets, 0, 8)
	require.NoError(t, err)

	return net
}

// TestErrorsFileName checks the naming convention: joined detector
// names in sub-network order, population label, compact threshold.
func TestErrorsFileName(t *testing.T) {
	net := testNetwork(t)

	name, err := report.ErrorsFileName(net, []int{0, 2}, "bbh")
	require.NoError(t, err)
	assert.Equal(t, "Errors_H1_ET_bbh_SNR8", name)

	// Order follows the id list, not network order.
	name, err = report.ErrorsFileName(net, []int{2, 0}, "bbh")
	require.NoError(t, err)
	assert.Equal(t, "Errors_ET_H1_bbh_SNR8", name)

	// Fractional thresholds keep their digits.
	net.DetectionSNR[1] = 8.5
	name, err = report.ErrorsFileName(net, []int{1}, "bns")
	require.NoError(t, err)
	assert.Equal(t, "Errors_L1_bns_SNR8.5", name)
}

// TestErrorsFileName_BadInput covers the index and network sentinels.
func TestErrorsFileName_BadInput(t *testing.T) {
	net := testNetwork(t)

	_, err := report.ErrorsFileName(net, []int{3}, "bbh")
	assert.ErrorIs(t, err, detector.ErrBadIndex)
	_, err = report.ErrorsFileName(net, []int{-1}, "bbh")
	assert.ErrorIs(t, err, detector.ErrBadIndex)
	_, err = report.ErrorsFileName(nil, []int{0}, "bbh")
	assert.ErrorIs(t, err, detector.ErrEmptyNetwork)
}

// TestWrite_Table renders a hand-built result and checks the exact
// layout: header naming every column, detected rows only, %.3E cells.
func TestWrite_Table(t *testing.T) {
	catalog := []signal.ParameterSet{
		signal.NewParameterSet(map[string]float64{
			signal.Mass1:              36,
			signal.Mass2:              29,
			signal.LuminosityDistance: 410,
		}),
		signal.NewParameterSet(map[string]float64{
			signal.Mass1:              10,
			signal.Mass2:              9,
			signal.LuminosityDistance: 1500,
		}),
	}
	result := &fisher.NetworkResult{
		Parameters: []string{signal.LuminosityDistance, signal.Mass1},
		Indices:    []int{1},
		SNR:        []float64{12.5},
		Errors:     [][]float64{{250, 0.75}},
	}

	var sb strings.Builder
	require.NoError(t, report.Write(&sb, catalog, result))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2, "one header plus one detected row")

	assert.Equal(t,
		"network_SNR luminosity_distance mass_1 mass_2 err_luminosity_distance err_mass_1",
		lines[0])
	assert.Equal(t,
		"12.5 1.500E+03 1.000E+01 9.000E+00 2.500E+02 7.500E-01",
		lines[1])
}

// TestWrite_SkyColumn verifies err_sky_location appears exactly when the
// result carries sky areas.
func TestWrite_SkyColumn(t *testing.T) {
	catalog := []signal.ParameterSet{
		signal.NewParameterSet(map[string]float64{
			signal.RightAscension: 1.1,
			signal.Declination:    -0.4,
		}),
	}
	result := &fisher.NetworkResult{
		Parameters: []string{signal.RightAscension, signal.Declination},
		Indices:    []int{0},
		SNR:        []float64{9},
		Errors:     [][]float64{{0.01, 0.02}},
		SkyAreas:   []float64{0.0003},
	}

	var sb strings.Builder
	require.NoError(t, report.Write(&sb, catalog, result))
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.True(t, strings.HasSuffix(lines[0], " err_sky_location"))
	assert.True(t, strings.HasSuffix(lines[1], " 3.000E-04"))

	// Without sky areas the column must be absent, not zero.
	result.SkyAreas = nil
	sb.Reset()
	require.NoError(t, report.Write(&sb, catalog, result))
	assert.NotContains(t, sb.String(), "err_sky_location")
}

// TestWrite_BadInput covers the mismatch sentinels.
func TestWrite_BadInput(t *testing.T) {
	catalog := []signal.ParameterSet{
		signal.NewParameterSet(map[string]float64{signal.Mass1: 36}),
	}

	var sb strings.Builder
	err := report.Write(&sb, nil, &fisher.NetworkResult{})
	assert.ErrorIs(t, err, report.ErrEmptyCatalog)

	err = report.Write(&sb, catalog, nil)
	assert.ErrorIs(t, err, report.ErrBadResult)

	err = report.Write(&sb, catalog, &fisher.NetworkResult{
		Parameters: []string{signal.Mass1},
		Indices:    []int{5},
		SNR:        []float64{9},
		Errors:     [][]float64{{1}},
	})
	assert.ErrorIs(t, err, report.ErrBadResult, "out-of-range signal index")
}

// TestAnalyzeAndSave runs the full loop on a toy strain model and checks
// one well-formed file per sub-network lands in the target directory.
func TestAnalyzeAndSave(t *testing.T) {
	net := testNetwork(t)
	net.DetectionSNR[1] = 1

	params := signal.NewParameterSet(map[string]float64{
		signal.LuminosityDistance: 410,
		signal.GeocentTime:        0,
		signal.Phase:              0,
	})

	gen := func(p signal.ParameterSet, data waveform.Data) ([]complex128, []complex128, []float64, error) {
		n := len(data.FrequencyGrid)
		plus := make([]complex128, n)
		scale := 410 / p.Value(signal.LuminosityDistance)
		for i := range plus {
			plus[i] = complex(scale, 0)
		}

		return plus, make([]complex128, n), make([]float64, n), nil
	}
	passthrough := func(_ signal.ParameterSet, _ *detector.Detector, plus, _ []complex128, _ []float64) ([]complex128, error) {
		return plus, nil
	}

	dir := t.TempDir()
	err := report.AnalyzeAndSave(net,
		[]signal.ParameterSet{params},
		[]string{signal.LuminosityDistance, signal.GeocentTime, signal.Phase},
		[][]int{{0}, {0, 1, 2}},
		"bbh",
		dir,
		fisher.WithModel(waveform.FactoryFrom(gen)),
		fisher.WithProjection(passthrough))
	require.NoError(t, err)

	single, err := os.ReadFile(filepath.Join(dir, "Errors_H1_bbh_SNR1.txt"))
	require.NoError(t, err)
	full, err := os.ReadFile(filepath.Join(dir, "Errors_H1_L1_ET_bbh_SNR1.txt"))
	require.NoError(t, err)

	wantHeader := "network_SNR geocent_time luminosity_distance phase" +
		" err_luminosity_distance err_geocent_time err_phase"
	singleLines := strings.Split(strings.TrimRight(string(single), "\n"), "\n")
	fullLines := strings.Split(strings.TrimRight(string(full), "\n"), "\n")
	require.Len(t, singleLines, 2)
	require.Len(t, fullLines, 2)
	assert.Equal(t, wantHeader, singleLines[0])
	assert.Equal(t, wantHeader, fullLines[0])

	// One detector: SNR = sqrt(4·4) = 4. Three identical detectors triple
	// the squared SNR: sqrt(48).
	assert.True(t, strings.HasPrefix(singleLines[1], "4 "))
	assert.True(t, strings.HasPrefix(fullLines[1], "6.92820323"))
}

// TestAnalyzeAndSave_PartialNetworkIsUsed confirms the evaluation runs on
// the selected sub-network only: a one-detector sub-network of a strong
// network reports the single detector's SNR.
func TestAnalyzeAndSave_PartialNetworkIsUsed(t *testing.T) {
	// Covered by the SNR assertions above; kept as an explicit guard for
	// the sub-network selection path.
	net := testNetwork(t)
	sub, err := net.Partial([]int{1})
	require.NoError(t, err)
	require.Len(t, sub.Detectors, 1)
	assert.Equal(t, "L1", sub.Detectors[0].Name)
}
