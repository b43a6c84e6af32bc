// SPDX-License-Identifier: MIT

// Package distmat: the Matrix value and its read-only surface.
// Builders live in builder.go; structural checks in validate.go.
package distmat

import (
	"fmt"
	"sort"
	"strings"
)

// Matrix is an immutable labeled distance table.
//   - names holds row/column labels; row i and column i share names[i].
//   - index resolves a name to its position in O(1).
//   - data is a flat buffer of length n*n in row-major order (offset i*n+j).
//
// There is no exported mutator: builders hand out complete matrices, and
// every accessor that exposes internal state returns a copy.
type Matrix struct {
	names []string       // labels in matrix order
	index map[string]int // name → row/column position
	data  []float64      // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// newMatrix wires a Matrix around already-validated names and data.
// Callers guarantee: names non-empty and unique, len(data) == n*n.
func newMatrix(names []string, data []float64) *Matrix {
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[name] = i
	}

	return &Matrix{names: names, index: idx, data: data}
}

// N returns the matrix order (number of rows = number of columns).
// Complexity: O(1).
func (m *Matrix) N() int { return len(m.names) }

// Names returns a fresh copy of the labels in matrix order.
// Complexity: O(n).
func (m *Matrix) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// IndexOf resolves a label to its row/column position.
// Complexity: O(1).
func (m *Matrix) IndexOf(name string) (int, bool) {
	i, ok := m.index[name]

	return i, ok
}

// At retrieves the distance at position (i, j).
// Returns ErrOutOfRange when either index is outside 0..n−1.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	n := len(m.names)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("At(%d,%d) with n=%d: %w", i, j, n, ErrOutOfRange)
	}

	return m.data[i*n+j], nil
}

// AtName retrieves the distance between two labeled entities.
// Returns ErrUnknownName for a label absent from the matrix.
// Complexity: O(1).
func (m *Matrix) AtName(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("AtName(%q,%q): %q: %w", a, b, a, ErrUnknownName)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("AtName(%q,%q): %q: %w", a, b, b, ErrUnknownName)
	}

	return m.data[i*len(m.names)+j], nil
}

// Row returns a fresh copy of row i.
// Returns ErrOutOfRange when i is outside 0..n−1.
// Complexity: O(n).
func (m *Matrix) Row(i int) ([]float64, error) {
	n := len(m.names)
	if i < 0 || i >= n {
		return nil, fmt.Errorf("Row(%d) with n=%d: %w", i, n, ErrOutOfRange)
	}
	out := make([]float64, n)
	copy(out, m.data[i*n:(i+1)*n])

	return out, nil
}

// Values returns a fresh copy of the full row-major buffer (length n*n).
// Consumers that iterate the whole table (clustering, embedding) take one
// copy up front instead of n² checked At calls.
// Complexity: O(n²).
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Condensed returns the strict upper triangle (i<j) flattened row by row:
// d(0,1), d(0,2), …, d(0,n−1), d(1,2), …, d(n−2,n−1). Length n(n−1)/2.
// This is the canonical vector form for correlation against cophenetic
// distances.
// Complexity: O(n²).
func (m *Matrix) Condensed() []float64 {
	n := len(m.names)
	out := make([]float64, 0, n*(n-1)/2)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out = append(out, m.data[i*n+j])
		}
	}

	return out
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(n²).
func (m *Matrix) Clone() *Matrix {
	names := make([]string, len(m.names))
	copy(names, m.names)
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return newMatrix(names, data)
}

// SortedByName returns a copy whose rows/columns are permuted into ascending
// name order. Matrices built by FromPairs already satisfy this; matrices
// from FromCentroids or ReadCSV keep their source order and can be
// normalized here before comparison.
// Complexity: O(n²).
func (m *Matrix) SortedByName() *Matrix {
	n := len(m.names)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(a, b int) bool { return m.names[perm[a]] < m.names[perm[b]] })

	names := make([]string, n)
	data := make([]float64, n*n)

	var i, j int
	for i = 0; i < n; i++ {
		names[i] = m.names[perm[i]]
		for j = 0; j < n; j++ {
			data[i*n+j] = m.data[perm[i]*n+perm[j]]
		}
	}

	return newMatrix(names, data)
}

// String renders a compact preview: the order and the labels. Cell values
// are deliberately omitted; use WriteCSV for a full dump.
func (m *Matrix) String() string {
	return fmt.Sprintf("distmat.Matrix(n=%d; %s)", len(m.names), strings.Join(m.names, ", "))
}
