// SPDX-License-Identifier: MIT

// Package distmat: bridge to gonum's mat.SymDense.
// The bridge loses the labels (gonum matrices are unlabeled); callers keep
// Names() alongside when they need to map rows back to entities.
package distmat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToSymDense exports the matrix into a freshly allocated mat.SymDense.
// Only the upper triangle is written; gonum mirrors the rest.
//
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func ToSymDense(m *Matrix) (*mat.SymDense, error) {
	if m == nil {
		return nil, distmatErrorf(opToSymDense, ErrNilMatrix)
	}

	n := len(m.names)
	s := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s.SetSym(i, j, m.data[i*n+j])
		}
	}

	return s, nil
}

// FromSymDense imports a gonum symmetric matrix under an ordered name list
// and gates the result through the full structural validation (a SymDense
// is symmetric by type, but its diagonal and signs are unconstrained).
//
// Errors: ErrNilMatrix (nil s), ErrDimensionMismatch (name count vs order),
// plus everything New can return.
// Complexity: O(n²).
func FromSymDense(names []string, s *mat.SymDense, opts ...Option) (*Matrix, error) {
	if s == nil {
		return nil, distmatErrorf(opFromSymDense, ErrNilMatrix)
	}
	n := s.SymmetricDim()
	if len(names) != n {
		return nil, distmatErrorf(opFromSymDense,
			fmt.Errorf("%d names for order %d: %w", len(names), n, ErrDimensionMismatch))
	}

	data := make([]float64, n*n)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			data[i*n+j] = s.At(i, j)
		}
	}

	m, err := New(names, data, opts...)
	if err != nil {
		return nil, distmatErrorf(opFromSymDense, err)
	}

	return m, nil
}
