// SPDX-License-Identifier: MIT

// Package mdscale - the classical scaling engine.
//
// This file contains the canonical entry point:
//
//  1. Scale gates the input through the full distmat structural validation,
//     double-centers it via gonum's Torgerson scaling, and keeps the
//     leading principal axes as the embedding.
//
// Design principles:
//   - Deterministic: pure linear algebra, no randomness anywhere; identical
//     inputs yield identical coordinates.
//   - Strict sentinels: matrix violations surface as distmat errors,
//     scaling-native conditions as mdscale errors.
//   - Honest rank: a relative spectrum cutoff separates real geometry from
//     eigensolver residue before any axis is handed to the caller.
package mdscale

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/mds"

	"github.com/katalvlaran/dendra/distmat"
)

// ---------- Operation tags (error prefixes) ----------

const (
	opScale = "Scale"
)

// mdscaleErrorf wraps err under an operation tag for stable, greppable text.
func mdscaleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Scale embeds the entities of d into dim-dimensional Euclidean space.
//
// Implementation:
//   - Stage 1: resolve options and gate d through distmat.Validate with the
//     configured epsilon — asymmetric, negative, non-finite or
//     dirty-diagonal input never reaches the eigensolver. Then bound the
//     requested dimension: centering pins the point cloud to the origin,
//     so n entities span at most n−1 axes.
//   - Stage 2: export to a gonum SymDense (labels set aside, restored on
//     the way out).
//   - Stage 3: mds.TorgersonScaling squares, double-centers and factorizes
//     the matrix; the destination comes back n×n with principal axes as
//     columns, ordered by decreasing eigenvalue and scaled by its root.
//   - Stage 4: count the numerically positive rank. gonum's own k counts
//     every strictly positive eigenvalue, noise included; the relative
//     cutoff (WithRankTolerance) keeps only axes that carry geometry, and
//     a request deeper than that rank is refused.
//   - Stage 5: copy the leading dim columns into a flat row-major buffer
//     and wrap it with the labels and the full spectrum.
//
// Inputs:
//   - d: a validated-or-not labeled distance matrix; Scale always gates.
//   - dim: target dimension, 1..n−1.
//   - opts: WithEpsilon, WithRankTolerance.
//
// Returns:
//   - *Embedding with N()==d.N() and Dim()==dim, immutable.
//
// Errors:
//   - distmat.ErrNilMatrix and the distmat structural sentinels (gate),
//   - ErrBadDim for a dimension outside 1..n−1,
//   - ErrDegenerate when the matrix supports fewer than dim positive axes.
//
// Determinism: the factorization is pure Go with fixed iteration order;
// reruns on the same platform reproduce coordinates bit for bit.
//
// Complexity: O(n³) time (eigendecomposition), O(n²) space.
func Scale(d *distmat.Matrix, dim int, opts ...Option) (*Embedding, error) {
	o := gatherOptions(opts...)

	// Stage 1: structural gate. distmat reports nil input as ErrNilMatrix.
	if err := distmat.Validate(d, distmat.WithEpsilon(o.eps)); err != nil {
		return nil, err
	}

	n := d.N()
	if dim < 1 || dim > n-1 {
		return nil, mdscaleErrorf(opScale,
			fmt.Errorf("dim=%d with n=%d (want 1..%d): %w", dim, n, n-1, ErrBadDim))
	}

	// Stage 2: bridge to gonum. The matrix already passed the gate, so the
	// export cannot fail past the nil check.
	sym, err := distmat.ToSymDense(d)
	if err != nil {
		return nil, err
	}

	// Stage 3: double-center and factorize.
	var full mat.Dense
	k, eig := mds.TorgersonScaling(&full, nil, sym)

	// Stage 4: numerically positive rank under the relative cutoff.
	rank := 0
	if k > 0 && len(eig) > 0 && eig[0] > 0 {
		cut := o.rankTol * eig[0]
		for _, v := range eig {
			if v > cut {
				rank++
			}
		}
	}
	if rank < dim {
		return nil, mdscaleErrorf(opScale,
			fmt.Errorf("dim=%d exceeds positive rank %d: %w", dim, rank, ErrDegenerate))
	}

	// Stage 5: keep the leading dim axes, flat row-major.
	coords := make([]float64, n*dim)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < dim; j++ {
			coords[i*dim+j] = full.At(i, j)
		}
	}

	spectrum := make([]float64, len(eig))
	copy(spectrum, eig)

	return newEmbedding(d.Names(), dim, coords, spectrum, rank), nil
}
