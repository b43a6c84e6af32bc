// SPDX-License-Identifier: MIT

// Package hcluster: domain types — the linkage enum and the dendrogram.
// Errors live in errors.go, options in options.go, the algorithm in
// cluster.go.
package hcluster

import (
	"fmt"
	"strings"
)

// Linkage selects the Lance–Williams update criterion.
type Linkage uint8

const (
	// Single merges on the minimum distance between members
	// (nearest neighbor; prone to chaining).
	Single Linkage = iota

	// Complete merges on the maximum distance between members
	// (farthest neighbor; compact clusters).
	Complete

	// Average merges on the size-weighted mean distance (UPGMA).
	Average

	// Centroid merges on the distance between cluster centroids.
	// Updates run in squared-distance space; heights may invert.
	Centroid

	// Ward merges on the minimum increase of within-cluster variance.
	// Updates run in squared-distance space; heights are monotone.
	Ward
)

// linkageNames maps Linkage values to their canonical spellings.
var linkageNames = map[Linkage]string{
	Single:   "single",
	Complete: "complete",
	Average:  "average",
	Centroid: "centroid",
	Ward:     "ward",
}

// String returns the canonical lowercase spelling of the criterion.
func (l Linkage) String() string {
	if s, ok := linkageNames[l]; ok {
		return s
	}

	return "unknown"
}

// valid reports whether l is one of the declared criteria.
func (l Linkage) valid() bool {
	_, ok := linkageNames[l]

	return ok
}

// ParseLinkage resolves a criterion name (case-insensitive) to its Linkage.
// Returns ErrUnknownLinkage for anything not in the declared set.
func ParseLinkage(s string) (Linkage, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for l, name := range linkageNames {
		if name == want {
			return l, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownLinkage)
}

// Merge is one agglomeration step. Cluster ids follow the usual encoding:
// ids 0..n−1 are the leaves in matrix order; the k-th merge (k from 0)
// creates cluster id n+k. Left < Right always.
type Merge struct {
	Left     int     // smaller child cluster id
	Right    int     // larger child cluster id
	Distance float64 // merge height under the chosen linkage
	Size     int     // member count of the created cluster
}

// Dendrogram is the immutable clustering result: n leaves, their labels in
// matrix order, the merge sequence, and a left-to-right leaf order (the
// tree's own traversal, or the optimized order when requested at cluster
// time). Accessors return copies.
type Dendrogram struct {
	n       int
	labels  []string
	linkage Linkage
	merges  []Merge
	order   []int
}

// Leaves returns the number of leaves n.
func (d *Dendrogram) Leaves() int { return d.n }

// Linkage returns the criterion the tree was built under.
func (d *Dendrogram) Linkage() Linkage { return d.linkage }

// Labels returns a fresh copy of the leaf labels in matrix order.
func (d *Dendrogram) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)

	return out
}

// Merges returns a fresh copy of the merge sequence (length n−1).
func (d *Dendrogram) Merges() []Merge {
	out := make([]Merge, len(d.merges))
	copy(out, d.merges)

	return out
}

// Heights returns the merge heights in merge order (length n−1).
func (d *Dendrogram) Heights() []float64 {
	out := make([]float64, len(d.merges))
	for i, m := range d.merges {
		out[i] = m.Distance
	}

	return out
}

// LeafOrder returns a fresh copy of the left-to-right leaf order.
func (d *Dendrogram) LeafOrder() []int {
	out := make([]int, len(d.order))
	copy(out, d.order)

	return out
}

// String renders a compact preview: leaf count, linkage, final height.
func (d *Dendrogram) String() string {
	if len(d.merges) == 0 {
		return fmt.Sprintf("hcluster.Dendrogram(n=%d, %s)", d.n, d.linkage)
	}

	return fmt.Sprintf("hcluster.Dendrogram(n=%d, %s, top=%g)",
		d.n, d.linkage, d.merges[len(d.merges)-1].Distance)
}

// children returns the two child ids of internal cluster id (n+k ⇒ merge k).
// Callers guarantee id is internal.
func (d *Dendrogram) children(id int) (int, int) {
	m := d.merges[id-d.n]

	return m.Left, m.Right
}

// isLeaf reports whether id names a leaf cluster.
func (d *Dendrogram) isLeaf(id int) bool { return id < d.n }

// rootID returns the id of the final cluster (n==1 ⇒ the single leaf).
func (d *Dendrogram) rootID() int {
	if len(d.merges) == 0 {
		return 0
	}

	return d.n + len(d.merges) - 1
}
