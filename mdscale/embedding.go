// SPDX-License-Identifier: MIT

// Package mdscale: the Embedding result type.
// Same storage discipline as distmat.Matrix: one flat row-major buffer,
// labels in fixed order, copy-returning accessors, immutable after Scale.
package mdscale

import (
	"fmt"
	"strings"
)

// Embedding is a labeled set of n points in dim-dimensional space, plus the
// spectrum the scaling produced. Row i carries the coordinates of entity
// Names()[i]; the point cloud is centered at the origin with axes ordered
// by decreasing variance.
type Embedding struct {
	names  []string  // entity labels, row order
	dim    int       // coordinates per row
	coords []float64 // row-major, length n*dim
	eig    []float64 // length n, non-increasing
	rank   int       // eigenvalues above the rank cutoff
}

// Compile-time interface checks.
var _ fmt.Stringer = (*Embedding)(nil)

// newEmbedding wraps pre-validated buffers without copying. Internal:
// callers guarantee len(coords) == len(names)*dim and len(eig) == len(names).
func newEmbedding(names []string, dim int, coords, eig []float64, rank int) *Embedding {
	return &Embedding{names: names, dim: dim, coords: coords, eig: eig, rank: rank}
}

// N returns the number of embedded entities.
// Complexity: O(1).
func (e *Embedding) N() int { return len(e.names) }

// Dim returns the number of coordinates per entity.
// Complexity: O(1).
func (e *Embedding) Dim() int { return e.dim }

// Names returns a fresh copy of the labels in row order.
// Complexity: O(n).
func (e *Embedding) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)

	return out
}

// At returns a fresh copy of row i (the dim coordinates of entity i).
// Returns ErrOutOfRange when i is outside 0..n−1.
// Complexity: O(dim).
func (e *Embedding) At(i int) ([]float64, error) {
	if i < 0 || i >= len(e.names) {
		return nil, fmt.Errorf("At(%d) with n=%d: %w", i, len(e.names), ErrOutOfRange)
	}
	out := make([]float64, e.dim)
	copy(out, e.coords[i*e.dim:(i+1)*e.dim])

	return out, nil
}

// Coords returns the full coordinate table as fresh row slices, one per
// entity in Names() order.
// Complexity: O(n·dim).
func (e *Embedding) Coords() [][]float64 {
	out := make([][]float64, len(e.names))

	var i int
	for i = range out {
		row := make([]float64, e.dim)
		copy(row, e.coords[i*e.dim:(i+1)*e.dim])
		out[i] = row
	}

	return out
}

// Eigenvalues returns a fresh copy of the spectrum of the double-centered
// matrix, non-increasing. Entries past PositiveRank carry no geometry.
// Complexity: O(n).
func (e *Embedding) Eigenvalues() []float64 {
	out := make([]float64, len(e.eig))
	copy(out, e.eig)

	return out
}

// PositiveRank returns how many eigenvalues cleared the rank cutoff — the
// highest dimension this matrix can be faithfully embedded into.
// Complexity: O(1).
func (e *Embedding) PositiveRank() int { return e.rank }

// String implements fmt.Stringer with a compact shape summary.
func (e *Embedding) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mdscale.Embedding(n=%d, dim=%d, rank=%d)", len(e.names), e.dim, e.rank)

	return b.String()
}
