// Package dendra turns heterogeneous pairwise measurements into symmetric
// distance matrices, clusters them hierarchically, and scores how faithfully
// the resulting tree reproduces the input distances.
//
// 🚀 What is dendra?
//
//	A deterministic batch toolkit for distance-matrix synthesis and
//	hierarchical-clustering validation, built from five small packages:
//		• clusterfile — parser for sectioned cluster-map files (<seq>, <seqgroups>, <pos>)
//		• groups      — group-membership resolution & 3-D centroid projection
//		• distmat     — labeled symmetric distance matrices: builders, validation, CSV, gonum bridge
//		• hcluster    — agglomerative clustering (single/complete/average/centroid/ward),
//		                optimal leaf ordering, cophenetic correlation, tree cuts, Newick export
//		• mdscale     — classical (Torgerson) multidimensional scaling back into coordinates
//
// ✨ Why choose dendra?
//
//   - Deterministic to the bit — stable name ordering, fixed loop orders, explicit tie-breaks
//   - Loud failures — malformed input, broken preconditions and degenerate data are
//     surfaced as sentinel errors, never silently zero-filled
//   - Immutable artifacts — every stage returns a fresh value; runs share no state
//   - Interop-friendly — gonum SymDense bridge and CSV round-trips for downstream tooling
//
// Typical pipeline:
//
//	cluster file ──clusterfile──▶ groups ──▶ centroids ──distmat──▶ matrix ──hcluster──▶ tree + cophenetic r
//	pairwise list ────────────────────────────────────────distmat──▶ matrix ──hcluster──▶ tree + cophenetic r
//
// The cmd/dendra CLI drives the same pipeline from the shell, one subcommand
// per stage.
//
//	go get github.com/katalvlaran/dendra
package dendra
