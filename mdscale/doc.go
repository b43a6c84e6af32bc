// SPDX-License-Identifier: MIT

// Package mdscale embeds a labeled distance matrix into low-dimensional
// Euclidean coordinates via classical (Torgerson) multidimensional scaling.
//
// This is the inverse of the centroid→distance direction: distmat turns
// coordinates into pairwise distances, mdscale recovers coordinates whose
// pairwise distances reproduce a given matrix as closely as the data allows.
//
// What the package provides:
//
//   - Scale: validate a distmat.Matrix, double-center it through gonum's
//     stat/mds.TorgersonScaling, and keep the leading dim principal axes.
//   - Embedding: the immutable result — labeled coordinate rows, the full
//     eigenvalue spectrum, and the numerically positive rank.
//
// Numeric policy:
//
//   - The input goes through the full distmat gate (finite, symmetric, zero
//     diagonal, non-negative) before any linear algebra runs.
//   - Coordinates are unique only up to rotation and reflection about the
//     centroid; consumers compare reconstructed distances, not raw axes.
//   - The spectrum of the double-centered matrix is reported in
//     non-increasing order; directions the data cannot support appear as
//     non-positive entries. Rank counts eigenvalues above a relative
//     cutoff so that noise-level positives do not masquerade as geometry.
//
// A matrix of collinear points has rank 1: asking for a 2-D embedding of it
// returns ErrDegenerate rather than a second axis of numerical dust.
package mdscale
