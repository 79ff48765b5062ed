package fisher

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// InvertSVD converts an information matrix into its pseudo-inverse,
// guarding against the ill-conditioning produced by widely varying
// parameter scales:
//
//  1. Normalize: divide M[i,j] by sqrt(M[i,i]·M[j,j]), so the diagonal of
//     the working matrix is exactly 1.
//  2. Singular value decomposition of the normalized matrix.
//  3. Truncate: keep singular values above the threshold (absolute cutoff
//     on the normalized spectrum).
//  4. Reconstruct the truncated pseudo-inverse from the retained singular
//     triplets.
//  5. Denormalize by the same outer-product normalizer.
//
// Near-null directions are discarded rather than inverted — a documented
// approximation that trades bias for stability, not an error. The full
// singular-value array is returned for diagnostics; callers that need an
// exact inverse must check that every value clears the threshold.
//
// ErrBadMatrix is returned for non-square or empty input, a non-positive
// diagonal (normalization impossible), or a failed factorization.
func InvertSVD(m mat.Matrix, opts ...Option) (*mat.Dense, []float64, error) {
	o := gatherOptions(opts...)

	return invertSVD(m, o.svdThreshold)
}

func invertSVD(m mat.Matrix, threshold float64) (*mat.Dense, []float64, error) {
	r, c := m.Dims()
	if r == 0 || r != c {
		return nil, nil, ErrBadMatrix
	}
	n := r

	// Outer-product normalizer from the diagonal.
	dm := make([]float64, n)
	for i := 0; i < n; i++ {
		d := m.At(i, i)
		if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, nil, ErrBadMatrix
		}
		dm[i] = math.Sqrt(d)
	}

	norm := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			norm.Set(i, j, m.At(i, j)/(dm[i]*dm[j]))
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(norm, mat.SVDFull); !ok {
		return nil, nil, ErrBadMatrix
	}

	values := svd.Values(nil)

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	k := 0
	for _, s := range values {
		if s > threshold {
			k++
		}
	}

	// invNorm = V[:, :k] · diag(1/s[:k]) · U[:, :k]ᵀ
	inv := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for l := 0; l < k; l++ {
				sum += v.At(i, l) / values[l] * u.At(j, l)
			}
			inv.Set(i, j, sum)
		}
	}

	// Denormalize by the same outer product.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			inv.Set(i, j, inv.At(i, j)/(dm[i]*dm[j]))
		}
	}

	return inv, values, nil
}
