// SPDX-License-Identifier: MIT

// Package hcluster - flat clusterings cut out of a dendrogram.
package hcluster

import (
	"fmt"
	"math"
)

// Cut returns the membership vector for exactly k flat clusters: the tree
// with its last k−1 merges undone. out[i] is the cluster of leaf i, ids
// renumbered 0..k−1 in order of first appearance by leaf index.
//
// Errors: ErrNilDendrogram; ErrBadK unless 1 ≤ k ≤ n.
// Complexity: O(n²).
func Cut(dend *Dendrogram, k int) ([]int, error) {
	if dend == nil {
		return nil, ErrNilDendrogram
	}
	if k < 1 || k > dend.n {
		return nil, fmt.Errorf("k=%d with n=%d: %w", k, dend.n, ErrBadK)
	}

	return cutApplied(dend, dend.n-k), nil
}

// CutHeight returns flat clusters after applying every leading merge with
// height ≤ h. For the monotone linkages this is exactly "all merges at or
// below h"; under Centroid inversions the replay still stops at the first
// merge above h, because later merges reference clusters that merge built.
//
// h below the first merge yields n singletons; h at or above the top
// yields one cluster. Negative h is legal and yields n singletons.
//
// Errors: ErrNilDendrogram; ErrBadHeight when h is NaN.
// Complexity: O(n²).
func CutHeight(dend *Dendrogram, h float64) ([]int, error) {
	if dend == nil {
		return nil, ErrNilDendrogram
	}
	if math.IsNaN(h) {
		return nil, ErrBadHeight
	}

	applied := 0
	for applied < len(dend.merges) && dend.merges[applied].Distance <= h {
		applied++
	}

	return cutApplied(dend, applied), nil
}

// cutApplied replays the first q merges and flattens the surviving
// clusters. 0 ≤ q ≤ n−1 guaranteed by callers.
func cutApplied(dend *Dendrogram, q int) []int {
	n := dend.n

	// Replay membership like Cophenetic does, marking consumed children.
	members := make([][]int, n+q)
	consumed := make([]bool, n+q)

	var i int
	for i = 0; i < n; i++ {
		members[i] = []int{i}
	}

	var k int
	for k = 0; k < q; k++ {
		a, b := members[dend.merges[k].Left], members[dend.merges[k].Right]
		merged := make([]int, 0, len(a)+len(b))
		merged = append(merged, a...)
		merged = append(merged, b...)
		members[n+k] = merged
		consumed[dend.merges[k].Left] = true
		consumed[dend.merges[k].Right] = true
	}

	// Surviving ids → provisional labels.
	flat := make([]int, n)
	for i = 0; i < n+q; i++ {
		if consumed[i] {
			continue
		}
		for _, leaf := range members[i] {
			flat[leaf] = i
		}
	}

	// Renumber 0..k−1 by first appearance in leaf order.
	next := 0
	rename := make(map[int]int, n-q)
	for i = 0; i < n; i++ {
		if _, ok := rename[flat[i]]; !ok {
			rename[flat[i]] = next
			next++
		}
		flat[i] = rename[flat[i]]
	}

	return flat
}
