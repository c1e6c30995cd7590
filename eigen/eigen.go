package eigen

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Sort builds the canonical eigenvalue matrix from raw eigensolver
// output: values[i] paired with column i of vectors, as dense
// eigensolvers return them. Columns are permuted into ascending order
// keyed lexicographically by (Re λ, Im λ); modes whose eigenvalues tie
// in both parts keep their relative input order.
//
// vectors must be square with side len(values). Sort is pure: the
// result is freshly allocated and the inputs are never written.
func Sort(values []complex128, vectors *mat.CDense) (*mat.CDense, error) {
	if vectors == nil {
		return nil, fmt.Errorf("Sort: %w", ErrNilMatrix)
	}

	size := len(values)
	r, c := vectors.Dims()
	if r != size || c != size {
		return nil, fmt.Errorf("Sort: eigenvectors are %dx%d for %d eigenvalues: %w",
			r, c, size, ErrShapeMismatch)
	}

	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		va, vb := values[perm[a]], values[perm[b]]
		if real(va) != real(vb) {
			return real(va) < real(vb)
		}
		return imag(va) < imag(vb)
	})

	out := mat.NewCDense(size+1, size, nil)
	for j, src := range perm {
		for i := 0; i < size; i++ {
			out.Set(i, j, vectors.At(i, src))
		}
		out.Set(size, j, values[src])
	}

	return out, nil
}

// Screen overwrites every invalid eigenmode with a NaN sentinel: for
// each index where valid is false, the full matrix column (eigenvector
// components and eigenvalue) and the matching entry of every physical
// quantity slice become NaN. Shapes and the positional correspondence
// between columns and quantity entries are preserved.
//
// m must be a canonical (size+1, size) matrix with size = len(valid),
// and every quantity slice must have length size; otherwise Screen
// fails with ErrShapeMismatch and no input has been touched. On
// success the mutation happens in place and the mutated inputs are
// also returned.
func Screen(m *mat.CDense, valid []bool, phys ...[]float64) (*mat.CDense, [][]float64, error) {
	if m == nil {
		return nil, nil, fmt.Errorf("Screen: %w", ErrNilMatrix)
	}

	size := len(valid)
	r, c := m.Dims()
	if r != size+1 || c != size {
		return nil, nil, fmt.Errorf("Screen: matrix is %dx%d for %d modes: %w",
			r, c, size, ErrShapeMismatch)
	}
	for k, q := range phys {
		if len(q) != size {
			return nil, nil, fmt.Errorf("Screen: quantity %d has length %d for %d modes: %w",
				k, len(q), size, ErrShapeMismatch)
		}
	}

	for j, ok := range valid {
		if ok {
			continue
		}
		for i := 0; i < r; i++ {
			m.Set(i, j, cmplx.NaN())
		}
		for _, q := range phys {
			q[j] = math.NaN()
		}
	}

	return m, phys, nil
}

// NumModes reports the number of eigenmodes a canonical matrix holds.
func NumModes(m *mat.CDense) int {
	_, c := m.Dims()
	return c
}

// Values copies the eigenvalue row out of a canonical matrix.
func Values(m *mat.CDense) []complex128 {
	r, c := m.Dims()
	out := make([]complex128, c)
	for j := 0; j < c; j++ {
		out[j] = m.At(r-1, j)
	}
	return out
}

// Vector copies the eigenvector of one mode out of a canonical matrix.
func Vector(m *mat.CDense, mode int) []complex128 {
	r, _ := m.Dims()
	out := make([]complex128, r-1)
	for i := 0; i < r-1; i++ {
		out[i] = m.At(i, mode)
	}
	return out
}
