// SPDX-License-Identifier: MIT

// Package hcluster implements agglomerative hierarchical clustering over a
// labeled distance matrix, plus the validation instruments used to judge
// how faithfully the resulting tree represents the input distances.
//
// What this package offers:
//
//   - Cluster — bottom-up agglomeration under five linkage criteria
//     (Single, Complete, Average, Centroid, Ward) via the Lance–Williams
//     update. The input matrix passes the full distmat structural gate
//     before any merging happens; n leaves always produce exactly n−1
//     merges. Scans run in a fixed ascending order, so equal-distance ties
//     resolve to the lowest active pair and identical inputs always yield
//     identical trees.
//   - Dendrogram — the immutable result: leaf labels, the merge sequence
//     (cluster ids 0..n−1 are leaves; merge k creates id n+k) and a
//     left-to-right leaf order.
//   - Optimal leaf ordering (WithOptimalOrder) — exact dynamic programming
//     over (cluster, first leaf, last leaf) that flips sibling subtrees to
//     minimize the summed input distance between adjacent leaves. The tree
//     itself never changes, only the display order.
//   - Cophenetic / CopheneticCorrelation — the cophenetic distance of two
//     leaves is the height of the smallest cluster containing both; its
//     Pearson correlation against the input distances is the standard
//     goodness-of-fit score, exactly 1 when the input is an ultrametric
//     matching the linkage.
//   - Cut / CutHeight — flat cluster membership at k clusters or at a
//     height threshold.
//   - Newick — serialization for downstream tree renderers.
//
// Height semantics: Single/Complete/Average update raw distances; Centroid
// and Ward update in squared-distance space and report square roots, which
// matches the usual convention and keeps all heights comparable to the
// input. Single, Complete, Average and Ward produce non-decreasing heights;
// Centroid may produce inversions (a merge below its predecessor) — that is
// a property of the criterion, not a defect.
//
// Complexity: clustering is O(n³) time, O(n²) space — the agglomeration is
// a straightforward scan, sized for the hundreds-of-groups scale this
// pipeline works at, not for millions of points.
package hcluster
