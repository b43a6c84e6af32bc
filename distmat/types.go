// SPDX-License-Identifier: MIT

// Package distmat: domain-facing types shared by builders and validators.
// This file intentionally contains ONLY small value types; the Matrix itself
// lives in matrix.go, errors in errors.go, options in options.go.
package distmat

// Pair is one observed dissimilarity between two named entities.
// Order of A and B is irrelevant: FromPairs writes both (A,B) and (B,A).
type Pair struct {
	A     string  // first entity name (non-empty)
	B     string  // second entity name (non-empty)
	Value float64 // observed distance (finite, ≥ 0)
}

// FillMode selects what FromPairs does with off-diagonal cells that no
// observation covered.
type FillMode uint8

const (
	// Strict rejects incomplete coverage with ErrIncompleteCoverage.
	// This is the default: a silent hole in a distance table poisons every
	// downstream merge decision.
	Strict FillMode = iota

	// ZeroFill writes 0 into unobserved cells. Kept for compatibility with
	// legacy pipelines that treated absence as identity; prefer Strict.
	ZeroFill
)

// fillModeNames maps FillMode values to their canonical spellings.
var fillModeNames = map[FillMode]string{
	Strict:   "strict",
	ZeroFill: "zerofill",
}

// String returns the canonical lowercase spelling of the mode.
func (m FillMode) String() string {
	if s, ok := fillModeNames[m]; ok {
		return s
	}

	return "unknown"
}

// valid reports whether m is one of the declared modes.
func (m FillMode) valid() bool {
	_, ok := fillModeNames[m]

	return ok
}
