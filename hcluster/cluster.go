// SPDX-License-Identifier: MIT

// Package hcluster - the agglomeration engine.
//
// This file contains the canonical entry point:
//
//  1. Cluster gates the input through the full distmat structural
//     validation, then runs Lance–Williams agglomeration to completion
//     (exactly n−1 merges) under the configured linkage.
//
// Design principles:
//   - Deterministic: fixed ascending scans; strict-less argmin keeps the
//     lowest active pair on ties; no randomness anywhere.
//   - Strict sentinels: matrix violations surface as distmat errors,
//     tree-native conditions as hcluster errors.
//   - Hot-path discipline: one working buffer, flat row-major, no
//     per-step allocations beyond the merge record.
//   - Stable heights: all recorded heights are rounded to 1e−9 to prevent
//     FP drift across platforms.
package hcluster

import (
	"math"

	"github.com/katalvlaran/dendra/distmat"
)

// roundScale pins recorded heights to a 1e−9 grid.
const roundScale = 1e9

// round1e9 stabilizes a height for cross-platform consistency.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// usesSquaredSpace reports whether the linkage updates squared distances
// (heights are square roots of the working values).
func usesSquaredSpace(l Linkage) bool {
	return l == Centroid || l == Ward
}

// Cluster agglomerates the entities of d bottom-up into a Dendrogram.
//
// Implementation:
//   - Stage 1: resolve options and gate d through distmat.Validate with the
//     configured epsilon — asymmetric, negative, non-finite or
//     dirty-diagonal input never reaches the merge loop.
//   - Stage 2: degenerate n==1 returns a single-leaf tree with no merges.
//   - Stage 3: copy the distances into one flat working buffer (squared for
//     Centroid/Ward) with per-slot id/size/active bookkeeping.
//   - Stage 4: repeat n−1 times — scan active slot pairs in ascending
//     (i, j) order for the strictly smallest working value, record the
//     merge (child ids normalized Left < Right), fold slot j into slot i
//     via the Lance–Williams update, assign the new cluster id n+step.
//   - Stage 5: derive the leaf order: the tree's own left-to-right
//     traversal, or the exact optimal order under WithOptimalOrder.
//
// Inputs:
//   - d: a validated-or-not labeled distance matrix; Cluster always gates.
//   - opts: WithLinkage, WithOptimalOrder, WithEpsilon.
//
// Returns:
//   - *Dendrogram with len(Merges()) == n−1, immutable.
//
// Errors:
//   - distmat.ErrNilMatrix and the distmat structural sentinels (gate),
//   - ErrUnknownLinkage for an undeclared criterion value.
//
// Determinism: identical inputs and options yield identical trees,
// heights and orders.
//
// Complexity: O(n³) time, O(n²) space; +O(n³) when optimal ordering is on.
func Cluster(d *distmat.Matrix, opts ...Option) (*Dendrogram, error) {
	o := gatherOptions(opts...)
	if !o.linkage.valid() {
		return nil, ErrUnknownLinkage
	}

	// Stage 1: structural gate. distmat reports nil input as ErrNilMatrix.
	if err := distmat.Validate(d, distmat.WithEpsilon(o.eps)); err != nil {
		return nil, err
	}

	n := d.N()
	labels := d.Names()

	dend := &Dendrogram{
		n:       n,
		labels:  labels,
		linkage: o.linkage,
	}

	// Stage 2: a single entity is already a complete (merge-free) tree.
	if n == 1 {
		dend.order = []int{0}

		return dend, nil
	}

	// Stage 3: working state. Slot i initially holds leaf i; a merge folds
	// the higher slot into the lower one and retires the higher slot.
	work := d.Values()
	if usesSquaredSpace(o.linkage) {
		for i, v := range work {
			work[i] = v * v
		}
	}

	var (
		active = make([]bool, n) // slot liveness
		id     = make([]int, n)  // cluster id currently held by each slot
		size   = make([]int, n)  // member count per slot
	)
	for i := 0; i < n; i++ {
		active[i] = true
		id[i] = i
		size[i] = 1
	}

	dend.merges = make([]Merge, 0, n-1)

	var (
		step, i, j, k int     // loop counters
		bi, bj        int     // best pair slots
		best, v       float64 // argmin bookkeeping
		si, sj, sk    float64 // cluster sizes as floats
		dij, dik, djk float64 // Lance–Williams operands
		height        float64 // recorded merge height
		left, right   int     // normalized child ids
	)
	for step = 0; step < n-1; step++ {
		// Stage 4a: strict-less argmin over active pairs, ascending scan.
		bi, bj, best = -1, -1, math.Inf(1)
		for i = 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j = i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if v = work[i*n+j]; v < best {
					best, bi, bj = v, i, j
				}
			}
		}

		// Stage 4b: record the merge. Squared-space criteria report the
		// root; max(…, 0) absorbs tiny negative residue of the update.
		height = best
		if usesSquaredSpace(o.linkage) {
			height = math.Sqrt(math.Max(best, 0))
		}
		left, right = id[bi], id[bj]
		if left > right {
			left, right = right, left
		}
		dend.merges = append(dend.merges, Merge{
			Left:     left,
			Right:    right,
			Distance: round1e9(height),
			Size:     size[bi] + size[bj],
		})

		// Stage 4c: Lance–Williams fold of slot bj into slot bi.
		si, sj = float64(size[bi]), float64(size[bj])
		dij = work[bi*n+bj]
		for k = 0; k < n; k++ {
			if !active[k] || k == bi || k == bj {
				continue
			}
			dik, djk = work[bi*n+k], work[bj*n+k]
			switch o.linkage {
			case Single:
				v = math.Min(dik, djk)
			case Complete:
				v = math.Max(dik, djk)
			case Average:
				v = (si*dik + sj*djk) / (si + sj)
			case Centroid:
				// Squared space: ‖c_ij − c_k‖² by the weighted-mean identity.
				v = (si*dik+sj*djk)/(si+sj) - (si*sj*dij)/((si+sj)*(si+sj))
			case Ward:
				// Squared space: minimum-variance increase.
				sk = float64(size[k])
				v = ((si+sk)*dik + (sj+sk)*djk - sk*dij) / (si + sj + sk)
			}
			work[bi*n+k] = v
			work[k*n+bi] = v
		}

		active[bj] = false
		id[bi] = n + step
		size[bi] += size[bj]
	}

	// Stage 5: leaf order.
	if o.optimalOrder {
		dend.order = optimalLeafOrder(dend, d)
	} else {
		dend.order = dend.traversalOrder()
	}

	return dend, nil
}

// traversalOrder walks the tree left-to-right as built.
// Complexity: O(n).
func (d *Dendrogram) traversalOrder() []int {
	order := make([]int, 0, d.n)
	stack := []int{d.rootID()}

	var id, l, r int
	for len(stack) > 0 {
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if d.isLeaf(id) {
			order = append(order, id)

			continue
		}
		l, r = d.children(id)
		stack = append(stack, r, l) // left child pops first
	}

	return order
}
