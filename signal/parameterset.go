package signal

import (
	"fmt"
	"sort"
)

// ParameterSet is an immutable mapping from parameter name to value.
//
// The zero value is an empty set. All accessors are read-only; With and
// Merge return fresh, independent copies, so a ParameterSet handed to a
// derivative engine can never be mutated behind the caller's back.
type ParameterSet struct {
	values map[string]float64
}

// NewParameterSet copies values into a fresh ParameterSet. The input map is
// not retained; later mutation of it does not affect the set.
func NewParameterSet(values map[string]float64) ParameterSet {
	cp := make(map[string]float64, len(values))
	for k, v := range values {
		cp[k] = v
	}

	return ParameterSet{values: cp}
}

// Len reports the number of parameters in the set.
func (p ParameterSet) Len() int { return len(p.values) }

// Has reports whether the named parameter is present.
func (p ParameterSet) Has(name string) bool {
	_, ok := p.values[name]

	return ok
}

// Get returns the value of the named parameter, or ErrUnknownParameter if
// the name is absent.
func (p ParameterSet) Get(name string) (float64, error) {
	v, ok := p.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	return v, nil
}

// Value returns the named parameter or 0 when absent. Use Get when absence
// must be distinguished from a genuine zero.
func (p ParameterSet) Value(name string) float64 { return p.values[name] }

// With returns a copy of the set with the named parameter set to v.
// The receiver is left untouched.
func (p ParameterSet) With(name string, v float64) ParameterSet {
	cp := make(map[string]float64, len(p.values)+1)
	for k, val := range p.values {
		cp[k] = val
	}
	cp[name] = v

	return ParameterSet{values: cp}
}

// Merge returns a copy of the set with every entry of other applied on top
// (other wins on name collisions).
func (p ParameterSet) Merge(other ParameterSet) ParameterSet {
	cp := make(map[string]float64, len(p.values)+len(other.values))
	for k, v := range p.values {
		cp[k] = v
	}
	for k, v := range other.values {
		cp[k] = v
	}

	return ParameterSet{values: cp}
}

// Names returns the parameter names in ascending order. The slice is owned
// by the caller.
func (p ParameterSet) Names() []string {
	names := make([]string, 0, len(p.values))
	for k := range p.values {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Map returns a mutable copy of the underlying values, for callers that
// need to hand a plain map to encoders or report writers.
func (p ParameterSet) Map() map[string]float64 {
	cp := make(map[string]float64, len(p.values))
	for k, v := range p.values {
		cp[k] = v
	}

	return cp
}
