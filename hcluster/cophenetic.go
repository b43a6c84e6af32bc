// SPDX-License-Identifier: MIT

// Package hcluster - cophenetic validation.
//
// The cophenetic distance of two leaves is the height of the smallest
// cluster containing both, i.e. the height of the merge that first joined
// them. Correlating these tree-implied distances against the original
// input distances (Pearson, over the condensed i<j vectors) is the
// standard check that a dendrogram actually represents its data: 1 means a
// perfect ultrametric fit, values near 0 mean the tree is a fiction.
package hcluster

import (
	"fmt"

	"github.com/katalvlaran/dendra/distmat"
	"gonum.org/v1/gonum/stat"
)

// Cophenetic materializes the tree-implied distances as a labeled matrix
// over the dendrogram's own labels (same order as the clustering input).
//
// Implementation: replay the merge sequence, tracking member leaves per
// cluster id; the k-th merge assigns its height to every (left member,
// right member) pair — each leaf pair is first joined exactly once, so
// each cell is written exactly once.
//
// Errors: ErrNilDendrogram.
// Complexity: O(n²) time and space across the whole replay.
func Cophenetic(dend *Dendrogram) (*distmat.Matrix, error) {
	if dend == nil {
		return nil, ErrNilDendrogram
	}

	n := dend.n
	data := make([]float64, n*n)

	// members[id] — leaves below each cluster id, filled as merges replay.
	members := make([][]int, n+len(dend.merges))

	var i int
	for i = 0; i < n; i++ {
		members[i] = []int{i}
	}

	var (
		k    int   // merge counter
		a, b []int // member lists of the children
		x, y int   // leaf pair under assignment
	)
	for k = 0; k < len(dend.merges); k++ {
		a, b = members[dend.merges[k].Left], members[dend.merges[k].Right]
		for _, x = range a {
			for _, y = range b {
				data[x*n+y] = dend.merges[k].Distance
				data[y*n+x] = dend.merges[k].Distance
			}
		}

		merged := make([]int, 0, len(a)+len(b))
		merged = append(merged, a...)
		merged = append(merged, b...)
		members[n+k] = merged
	}

	// Valid by construction: symmetric, zero diagonal, finite heights.
	m, err := distmat.NewUnchecked(dend.labels, data)
	if err != nil {
		return nil, fmt.Errorf("Cophenetic: %w", err)
	}

	return m, nil
}

// CopheneticCorrelation scores how faithfully dend represents d: the
// Pearson correlation between the condensed cophenetic vector and the
// condensed input vector. The result lies in [−1, 1] and reaches 1 (within
// floating tolerance) exactly when the input is an ultrametric the linkage
// reproduces.
//
// Preconditions:
//   - dend and d non-nil, covering the same labels in the same order
//     (ErrLabelMismatch otherwise);
//   - n ≥ 3 — below that the condensed vectors carry at most one pair and
//     the coefficient is undefined (ErrTooFewLeaves);
//   - both condensed vectors must vary — a constant side makes Pearson's
//     denominator vanish (ErrZeroVariance, degenerate data).
//
// Complexity: O(n²).
func CopheneticCorrelation(dend *Dendrogram, d *distmat.Matrix) (float64, error) {
	if dend == nil {
		return 0, ErrNilDendrogram
	}
	if d == nil {
		return 0, distmat.ErrNilMatrix
	}
	if dend.n < 3 {
		return 0, fmt.Errorf("n=%d: %w", dend.n, ErrTooFewLeaves)
	}
	if err := sameLabels(dend.labels, d.Names()); err != nil {
		return 0, err
	}

	coph, err := Cophenetic(dend)
	if err != nil {
		return 0, err
	}

	x := coph.Condensed()
	y := d.Condensed()

	if isConstant(x) || isConstant(y) {
		return 0, ErrZeroVariance
	}

	r := stat.Correlation(x, y, nil)

	// Clamp FP residue so callers can rely on the documented interval.
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}

	return r, nil
}

// sameLabels demands identical label sequences.
func sameLabels(a, b []string) error {
	if len(a) != len(b) {
		return fmt.Errorf("%d vs %d labels: %w", len(a), len(b), ErrLabelMismatch)
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("label %d: %q vs %q: %w", i, a[i], b[i], ErrLabelMismatch)
		}
	}

	return nil
}

// isConstant reports whether every element equals the first.
func isConstant(v []float64) bool {
	for _, x := range v[1:] {
		if x != v[0] {
			return false
		}
	}

	return true
}
