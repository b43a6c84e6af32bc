// SPDX-License-Identifier: MIT

// Package distmat: structural validation of distance matrices.
// Validate is the composite gate; the Validate* family exposes the
// individual stages for callers that need a narrower check. All checks are
// read-only, deterministic (fixed scan orders, first failure wins) and
// report the offending cell by index AND by name.
package distmat

import "fmt"

// Validate runs the full structural gate in a fixed stage order:
//
//	Stage 1: finiteness   — no NaN/±Inf anywhere (ValidateFinite).
//	Stage 2: symmetry     — |d(i,j) − d(j,i)| ≤ eps (ValidateSymmetry).
//	Stage 3: diagonal     — |d(i,i)| ≤ eps (ValidateDiagonalZero).
//	Stage 4: sign         — d(i,j) ≥ −eps (ValidateNonNegative).
//
// The first failing stage wins; later stages are not evaluated. Consumers
// that assume a dissimilarity structure (clustering, embedding) call this
// before touching the data.
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrAsymmetry, ErrNonZeroDiagonal,
// ErrNegativeValue — wrapped with the operation tag and the offending cell.
//
// Complexity: O(n²) time, O(1) space.
func Validate(m *Matrix, opts ...Option) error {
	if m == nil {
		return distmatErrorf(opValidate, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	if err := ValidateFinite(m); err != nil {
		return err
	}
	if err := ValidateSymmetry(m, WithEpsilon(o.eps)); err != nil {
		return err
	}
	if err := ValidateDiagonalZero(m, WithEpsilon(o.eps)); err != nil {
		return err
	}

	return ValidateNonNegative(m, WithEpsilon(o.eps))
}

// ValidateFinite rejects the first NaN or ±Inf cell in row-major order.
// Complexity: O(n²).
func ValidateFinite(m *Matrix) error {
	if m == nil {
		return distmatErrorf(opValidate, ErrNilMatrix)
	}

	n := len(m.names)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if isNonFinite(m.data[i*n+j]) {
				return distmatErrorf(opValidate,
					fmt.Errorf("cell (%d,%d) %q/%q = %v: %w",
						i, j, m.names[i], m.names[j], m.data[i*n+j], ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateSymmetry rejects the first upper-triangle cell whose mirror
// differs beyond eps. Scan order is ascending (i, then j>i).
// Complexity: O(n²).
func ValidateSymmetry(m *Matrix, opts ...Option) error {
	if m == nil {
		return distmatErrorf(opValidate, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	n := len(m.names)

	var (
		i, j int
		diff float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			diff = m.data[i*n+j] - m.data[j*n+i]
			if diff > o.eps || diff < -o.eps {
				return distmatErrorf(opValidate,
					fmt.Errorf("cell (%d,%d) %q/%q: d=%v mirror=%v: %w",
						i, j, m.names[i], m.names[j],
						m.data[i*n+j], m.data[j*n+i], ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateDiagonalZero rejects the first self-distance beyond eps.
// Complexity: O(n).
func ValidateDiagonalZero(m *Matrix, opts ...Option) error {
	if m == nil {
		return distmatErrorf(opValidate, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	n := len(m.names)

	var i int
	for i = 0; i < n; i++ {
		if v := m.data[i*n+i]; v > o.eps || v < -o.eps {
			return distmatErrorf(opValidate,
				fmt.Errorf("cell (%d,%d) %q = %v: %w",
					i, i, m.names[i], v, ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateNonNegative rejects the first cell below −eps. Values inside
// [−eps, 0) are tolerated as floating-point residue of upstream arithmetic;
// builders that ingest user data reject plain negatives outright.
// Complexity: O(n²).
func ValidateNonNegative(m *Matrix, opts ...Option) error {
	if m == nil {
		return distmatErrorf(opValidate, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	n := len(m.names)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if m.data[i*n+j] < -o.eps {
				return distmatErrorf(opValidate,
					fmt.Errorf("cell (%d,%d) %q/%q = %v: %w",
						i, j, m.names[i], m.names[j], m.data[i*n+j], ErrNegativeValue))
			}
		}
	}

	return nil
}
