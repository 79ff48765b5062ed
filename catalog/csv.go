package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gravwave/gwfisher/signal"
)

// FromCSV parses a headed CSV stream into a catalog of signals.
//
// The first record names the parameters; every following record supplies
// one value per column. Cells are trimmed before parsing, so padded
// exports load cleanly. A stream with a header but no data rows returns
// ErrEmptyCatalog; duplicate or empty header names and non-numeric cells
// return ErrBadRecord wrapped with the offending position.
func FromCSV(r io.Reader) ([]signal.ParameterSet, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyCatalog
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadRecord, err)
	}

	names := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			return nil, fmt.Errorf("%w: empty header name in column %d", ErrBadRecord, i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate header name %q", ErrBadRecord, name)
		}
		seen[name] = struct{}{}
		names[i] = name
	}

	var out []signal.ParameterSet
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadRecord, row, err)
		}

		values := make(map[string]float64, len(names))
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %q: %v", ErrBadRecord, row, names[i], err)
			}
			values[names[i]] = v
		}
		out = append(out, signal.NewParameterSet(values))
	}

	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}

	return out, nil
}
