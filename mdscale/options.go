// SPDX-License-Identifier: MIT

// Package mdscale: functional configuration for Scale.
// Same discipline as the distmat options: documented defaults as constants,
// panic-on-nonsense constructors, gatherOptions resolution.
package mdscale

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance forwarded to the input-matrix gate.
	DefaultEpsilon = 1e-9

	// DefaultRankTolerance is the relative eigenvalue cutoff: an eigenvalue
	// counts toward the positive rank only when it exceeds this fraction of
	// the largest one. Symmetric eigensolvers leave noise near machine
	// precision times the spectral norm, many orders below this line.
	DefaultRankTolerance = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "mdscale: WithEpsilon: eps must be finite, non-negative"
	panicRankTolInvalid = "mdscale: WithRankTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon, forwarded to the gate
	rankTol float64 // >= 0; DefaultRankTolerance, relative spectrum cutoff
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the tolerance forwarded to the input-matrix gate.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRankTolerance sets the relative cutoff that separates genuine
// principal axes from numerical residue. Zero counts every strictly
// positive eigenvalue, noise included.
//
// Errors:
//   - Panics with a stable message when tol is NaN, ±Inf or negative.
//
// Complexity: O(1).
func WithRankTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// ---------- Internal resolution ----------

// gatherOptions starts from the documented defaults and applies user
// setters in order (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		rankTol: DefaultRankTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
