package fisher

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/gravwave/gwfisher/detector"
	"github.com/gravwave/gwfisher/signal"
)

// Matrix is the Fisher information matrix of one detector/signal pair for
// an ordered list of parameters: M[i,j] is the noise-weighted inner
// product of the derivatives with respect to parameters i and j, summed
// over frequency. Symmetric with a non-negative diagonal.
//
// The matrix is built lazily on the first Matrix() call and cached.
// SetMatrix overwrites the cache, which lets tests inject hand-built
// matrices downstream.
type Matrix struct {
	// Parameters is the ordered Fisher parameter list indexing the matrix.
	Parameters []string

	deriv  *Derivative
	det    *detector.Detector
	scalar detector.ScalarProductFunc

	fm *mat.SymDense
}

// NewMatrix prepares a lazy Fisher matrix for one detector at the given
// central parameters. No numerical work happens until Matrix() is called.
func NewMatrix(params signal.ParameterSet, fisherParameters []string, det *detector.Detector, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	return newMatrix(params, fisherParameters, det, &o)
}

func newMatrix(params signal.ParameterSet, fisherParameters []string, det *detector.Detector, o *Options) (*Matrix, error) {
	if len(fisherParameters) == 0 {
		return nil, ErrNoParameters
	}
	deriv, err := newDerivative(params, det, o)
	if err != nil {
		return nil, err
	}

	return &Matrix{
		Parameters: append([]string(nil), fisherParameters...),
		deriv:      deriv,
		det:        det,
		scalar:     o.scalar,
	}, nil
}

// Matrix returns the cached Fisher matrix, computing it on first access.
func (m *Matrix) Matrix() (*mat.SymDense, error) {
	if m.fm != nil {
		return m.fm, nil
	}

	n := len(m.Parameters)
	fm := mat.NewSymDense(n, nil)

	// One derivative per parameter, then every unordered pair including
	// self-pairs.
	derivs := make([][]complex128, n)
	for i, name := range m.Parameters {
		d, err := m.deriv.WithRespectTo(name)
		if err != nil {
			return nil, fmt.Errorf("fisher: derivative w.r.t. %q: %w", name, err)
		}
		derivs[i] = d
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			bins, err := m.scalar(derivs[i], derivs[j], m.det)
			if err != nil {
				return nil, fmt.Errorf("fisher: scalar product (%q, %q): %w", m.Parameters[i], m.Parameters[j], err)
			}
			fm.SetSym(i, j, floats.Sum(bins))
		}
	}

	m.fm = fm

	return m.fm, nil
}

// SetMatrix overwrites the cached matrix. Passing nil clears the cache so
// the next Matrix() call rebuilds from derivatives.
func (m *Matrix) SetMatrix(fm *mat.SymDense) { m.fm = fm }
