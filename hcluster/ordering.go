// SPDX-License-Identifier: MIT

// Package hcluster - optimal leaf ordering.
//
// A dendrogram fixes the tree but not the page: each internal node may show
// its two subtrees in either order, so n leaves admit 2^(n−1) layouts. This
// file picks the layout minimizing the sum of ORIGINAL input distances
// between adjacent leaves — exact dynamic programming over the triple
// (cluster, first leaf, last leaf), in the spirit of Bar-Joseph et al.
//
// Design principles:
//   - The tree is read-only: merge structure and heights never change,
//     only sibling orientation.
//   - Deterministic: candidate scans run in ascending leaf order and only
//     a strictly smaller cost replaces the incumbent, so ties resolve to
//     the lowest-index boundary leaves.
//   - Exact, not heuristic: O(n⁴) worst-case time, O(n²) state per node —
//     acceptable at the hundreds-of-leaves scale this package targets.
package hcluster

import (
	"math"
	"sort"

	"github.com/katalvlaran/dendra/distmat"
)

// olNode is the DP state for one cluster.
//   - leaves: member leaf indices, ascending.
//   - cost[p][q]: minimal adjacent-distance sum of any layout of this
//     subtree that starts at leaves[p] and ends at leaves[q]; +Inf when no
//     layout realizes that boundary pair.
//   - backR/backL/backSwap reconstruct the winning layout: the boundary
//     leaves of the two child blocks and whether the right child leads.
type olNode struct {
	leaves   []int
	cost     [][]float64
	backR    [][]int
	backL    [][]int
	backSwap [][]bool
}

// newOLNode allocates k×k state initialized to +Inf / no-backpointer.
func newOLNode(leaves []int) *olNode {
	k := len(leaves)
	nd := &olNode{
		leaves:   leaves,
		cost:     make([][]float64, k),
		backR:    make([][]int, k),
		backL:    make([][]int, k),
		backSwap: make([][]bool, k),
	}
	for p := 0; p < k; p++ {
		nd.cost[p] = make([]float64, k)
		nd.backR[p] = make([]int, k)
		nd.backL[p] = make([]int, k)
		nd.backSwap[p] = make([]bool, k)
		for q := 0; q < k; q++ {
			nd.cost[p][q] = math.Inf(1)
			nd.backR[p][q] = -1
			nd.backL[p][q] = -1
		}
	}

	return nd
}

// at resolves a leaf index to its position in nd.leaves (which is sorted).
func (nd *olNode) at(leaf int) int {
	return sort.SearchInts(nd.leaves, leaf)
}

// mergeSorted unions two disjoint ascending slices, ascending.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// optimalLeafOrder computes the adjacent-distance-minimal layout of dend
// under the original distances d. Called by Cluster after the merge loop;
// dend is structurally complete, d has passed the gate.
func optimalLeafOrder(dend *Dendrogram, d *distmat.Matrix) []int {
	n := dend.n
	if n == 1 {
		return []int{0}
	}

	dist := d.Values() // one flat copy; read-only below

	// Bottom-up DP. nodes[id] is filled for leaves first, then for each
	// merge in recorded order — children always precede their parent.
	nodes := make([]*olNode, n+len(dend.merges))

	var leaf int
	for leaf = 0; leaf < n; leaf++ {
		nd := newOLNode([]int{leaf})
		nd.cost[0][0] = 0
		nodes[leaf] = nd
	}

	var (
		step       int     // merge counter
		a, b       *olNode // child states (left, right)
		nd         *olNode // parent state under construction
		first, r   int     // boundary candidates in the leading block
		l, last    int     // boundary candidates in the trailing block
		base, cand float64 // cost accumulation
		p, q       int     // parent state coordinates
	)
	for step = 0; step < len(dend.merges); step++ {
		a = nodes[dend.merges[step].Left]
		b = nodes[dend.merges[step].Right]
		nd = newOLNode(mergeSorted(a.leaves, b.leaves))

		// Orientation 1: a leads, b trails — first ∈ a, last ∈ b.
		for _, first = range a.leaves {
			for _, r = range a.leaves {
				base = a.cost[a.at(first)][a.at(r)]
				if math.IsInf(base, 1) {
					continue
				}
				for _, l = range b.leaves {
					for _, last = range b.leaves {
						cand = base + dist[r*n+l] + b.cost[b.at(l)][b.at(last)]
						p, q = nd.at(first), nd.at(last)
						if cand < nd.cost[p][q] {
							nd.cost[p][q] = cand
							nd.backR[p][q] = r
							nd.backL[p][q] = l
							nd.backSwap[p][q] = false
						}
					}
				}
			}
		}

		// Orientation 2: b leads, a trails — first ∈ b, last ∈ a.
		for _, first = range b.leaves {
			for _, r = range b.leaves {
				base = b.cost[b.at(first)][b.at(r)]
				if math.IsInf(base, 1) {
					continue
				}
				for _, l = range a.leaves {
					for _, last = range a.leaves {
						cand = base + dist[r*n+l] + a.cost[a.at(l)][a.at(last)]
						p, q = nd.at(first), nd.at(last)
						if cand < nd.cost[p][q] {
							nd.cost[p][q] = cand
							nd.backR[p][q] = r
							nd.backL[p][q] = l
							nd.backSwap[p][q] = true
						}
					}
				}
			}
		}

		nodes[n+step] = nd
	}

	// Root choice: ascending scan, strict less — lowest boundary pair wins
	// among equals.
	root := nodes[dend.rootID()]
	bestP, bestQ, best := -1, -1, math.Inf(1)
	for p = 0; p < len(root.leaves); p++ {
		for q = 0; q < len(root.leaves); q++ {
			if root.cost[p][q] < best {
				best, bestP, bestQ = root.cost[p][q], p, q
			}
		}
	}

	order := make([]int, 0, n)
	emitLayout(nodes, dend, dend.rootID(), root.leaves[bestP], root.leaves[bestQ], &order)

	return order
}

// emitLayout reconstructs the winning layout of cluster id spanning
// first..last, appending leaves left to right.
func emitLayout(nodes []*olNode, dend *Dendrogram, id, first, last int, order *[]int) {
	if dend.isLeaf(id) {
		*order = append(*order, id)

		return
	}

	var (
		nd   = nodes[id]
		p    = nd.at(first)
		q    = nd.at(last)
		lID  = dend.merges[id-dend.n].Left
		rID  = dend.merges[id-dend.n].Right
		r    = nd.backR[p][q]
		l    = nd.backL[p][q]
		swap = nd.backSwap[p][q]
	)
	if swap {
		lID, rID = rID, lID
	}
	emitLayout(nodes, dend, lID, first, r, order)
	emitLayout(nodes, dend, rID, l, last, order)
}
