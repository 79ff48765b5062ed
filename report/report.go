package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gravwave/gwfisher/detector"
	"github.com/gravwave/gwfisher/fisher"
	"github.com/gravwave/gwfisher/signal"
)

// ErrorsFileName builds the conventional result file name, without
// extension:
//
//	Errors_<det1>_<det2>..._<population>_SNR<network threshold>
//
// Detector names come from the network positions selected by subIDs, in
// the given order. The threshold is the network detection SNR,
// DetectionSNR[1], in compact float notation.
func ErrorsFileName(net *detector.Network, subIDs []int, population string) (string, error) {
	if net == nil || len(net.Detectors) == 0 {
		return "", detector.ErrEmptyNetwork
	}

	names := make([]string, 0, len(subIDs))
	for _, id := range subIDs {
		if id < 0 || id >= len(net.Detectors) {
			return "", fmt.Errorf("%w: %d (network size %d)", detector.ErrBadIndex, id, len(net.Detectors))
		}
		names = append(names, net.Detectors[id].Name)
	}

	thr := strconv.FormatFloat(net.DetectionSNR[1], 'g', -1, 64)

	return "Errors_" + strings.Join(names, "_") + "_" + population + "_SNR" + thr, nil
}

// Write renders one result table to w.
//
// Columns: the network SNR, then every catalog parameter of the detected
// signal (sorted name order, taken from the first signal), then one
// err_<name> column per Fisher parameter, then err_sky_location when the
// result carries sky areas. Only detected signals — the rows selected by
// result.Indices — are written.
func Write(w io.Writer, catalog []signal.ParameterSet, result *fisher.NetworkResult) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}
	if result == nil {
		return fmt.Errorf("%w: nil result", ErrBadResult)
	}

	columns := catalog[0].Names()

	header := make([]string, 0, 1+len(columns)+len(result.Parameters)+1)
	header = append(header, "network_SNR")
	header = append(header, columns...)
	for _, name := range result.Parameters {
		header = append(header, "err_"+name)
	}
	if result.HasSky() {
		header = append(header, "err_sky_location")
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, " ")); err != nil {
		return err
	}

	for j, idx := range result.Indices {
		if idx < 0 || idx >= len(catalog) {
			return fmt.Errorf("%w: signal index %d (catalog size %d)", ErrBadResult, idx, len(catalog))
		}
		if len(result.Errors[j]) != len(result.Parameters) {
			return fmt.Errorf("%w: row %d holds %d errors for %d parameters",
				ErrBadResult, j, len(result.Errors[j]), len(result.Parameters))
		}

		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatFloat(result.SNR[j], 'g', -1, 64))
		for _, name := range columns {
			v, err := catalog[idx].Get(name)
			if err != nil {
				return fmt.Errorf("%w: signal %d: %v", ErrBadResult, idx, err)
			}
			row = append(row, fmt.Sprintf("%.3E", v))
		}
		for _, e := range result.Errors[j] {
			row = append(row, fmt.Sprintf("%.3E", e))
		}
		if result.HasSky() {
			row = append(row, fmt.Sprintf("%.3E", result.SkyAreas[j]))
		}

		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}

	return nil
}

// AnalyzeAndSave evaluates every sub-network against the catalog and
// writes one ".txt" result file per sub-network into dir (empty dir
// means the current directory).
//
// Each entry of subNetworkIDs selects detectors by network position; the
// evaluation runs on that partial network only, so a weak sub-network
// genuinely reports its own, larger errors. Fisher options pass through
// to the evaluation untouched.
func AnalyzeAndSave(net *detector.Network, catalog []signal.ParameterSet, fisherParameters []string, subNetworkIDs [][]int, population string, dir string, opts ...fisher.Option) error {
	if net == nil || len(net.Detectors) == 0 {
		return detector.ErrEmptyNetwork
	}

	for _, subIDs := range subNetworkIDs {
		sub, err := net.Partial(subIDs)
		if err != nil {
			return err
		}

		result, err := fisher.ComputeNetworkErrors(sub, catalog, fisherParameters, opts...)
		if err != nil {
			return fmt.Errorf("report: sub-network %v: %w", subIDs, err)
		}

		name, err := ErrorsFileName(net, subIDs, population)
		if err != nil {
			return err
		}

		f, err := os.Create(filepath.Join(dir, name+".txt"))
		if err != nil {
			return err
		}
		if err := Write(f, catalog, result); err != nil {
			f.Close()

			return fmt.Errorf("report: sub-network %v: %w", subIDs, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
