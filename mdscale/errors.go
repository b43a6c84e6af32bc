// SPDX-License-Identifier: MIT

// Package mdscale: sentinel error set.
// Matrix-shape violations surface as distmat sentinels (the gate forwards
// them untouched); this file defines only the conditions native to scaling.

package mdscale

import "errors"

var (
	// ErrNilEmbedding indicates a nil *Embedding receiver or argument.
	ErrNilEmbedding = errors.New("mdscale: nil embedding")

	// ErrBadDim reports a target dimension outside 1..n−1. Centering
	// removes one degree of freedom, so n points span at most n−1 axes.
	ErrBadDim = errors.New("mdscale: dimension out of range")

	// ErrDegenerate signals that the matrix supports fewer positive
	// principal axes than the requested dimension (collinear or otherwise
	// rank-deficient configurations, or a failed factorization).
	ErrDegenerate = errors.New("mdscale: not enough positive eigenvalues")

	// ErrOutOfRange indicates a row index outside 0..n−1.
	ErrOutOfRange = errors.New("mdscale: index out of range")
)
