// SPDX-License-Identifier: MIT
// Package distmat: sentinel error set.
// This file defines ONLY package-level sentinel errors. All builders and
// validators return these sentinels (optionally wrapped with call-site
// context via %w) and tests match them with errors.Is. Panics are reserved
// for programmer errors in option constructors.

package distmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "distmat: ..." so a wrapped chain reads
// "Op: distmat: ...". Do not re-wrap a sentinel without context; if context
// is essential, wrap once at the operation boundary.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/shape/name problems -> value problems (NaN/Inf, negative) ->
// structural violations (asymmetry, diagonal) -> coverage.

var (
	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("distmat: nil matrix")

	// ErrTooFewNames is returned when a pairwise builder resolves fewer
	// than two distinct names (a 1×1 table has no pairwise content), or
	// when New/NewUnchecked receive no names at all.
	ErrTooFewNames = errors.New("distmat: too few names")

	// ErrEmptyName is returned when an observation or centroid carries an
	// empty label; names address matrix cells and must be non-empty.
	ErrEmptyName = errors.New("distmat: empty name")

	// ErrDuplicateName is returned when an ordered name list repeats an
	// entry (FromCentroids, New, ReadCSV headers).
	ErrDuplicateName = errors.New("distmat: duplicate name")

	// ErrUnknownName indicates a name lookup that is not in the matrix.
	ErrUnknownName = errors.New("distmat: unknown name")

	// ErrOutOfRange indicates a row or column index outside 0..n−1.
	// Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("distmat: index out of range")

	// ErrDimensionMismatch indicates incompatible sizes between paired
	// inputs, e.g. a name list whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("distmat: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required by the numeric policy.
	ErrNaNInf = errors.New("distmat: NaN or Inf encountered")

	// ErrNegativeValue signals a distance below zero; dissimilarities are
	// non-negative by definition.
	ErrNegativeValue = errors.New("distmat: negative distance")

	// ErrAsymmetry signals that d(i,j) and d(j,i) differ beyond epsilon.
	ErrAsymmetry = errors.New("distmat: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a self-distance beyond epsilon.
	ErrNonZeroDiagonal = errors.New("distmat: diagonal not zero within eps")

	// ErrSelfPair is returned by FromPairs for an (A, A, v) observation with
	// v beyond epsilon; a self-distance other than zero is contradictory.
	ErrSelfPair = errors.New("distmat: non-zero self pair")

	// ErrIncompleteCoverage is returned under the Strict fill mode when at
	// least one off-diagonal pair was never observed.
	ErrIncompleteCoverage = errors.New("distmat: incomplete pair coverage")

	// ErrBadCSV indicates a malformed CSV matrix: short header, ragged row,
	// label mismatch between header and row order, or an unparsable cell.
	ErrBadCSV = errors.New("distmat: malformed CSV matrix")
)
