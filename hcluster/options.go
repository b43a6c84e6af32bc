// SPDX-License-Identifier: MIT

// Package hcluster: functional configuration for Cluster.
// Same discipline as the distmat options: documented defaults as constants,
// panic-on-nonsense constructors, gatherOptions resolution.
package hcluster

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLinkage is the criterion used when none is requested. Average
	// (UPGMA) is the customary default for distance-based group trees.
	DefaultLinkage = Average

	// DefaultEpsilon is the tolerance forwarded to the input-matrix gate.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLinkageInvalid = "hcluster: WithLinkage: unknown linkage"
	panicEpsilonInvalid = "hcluster: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	linkage      Linkage // DefaultLinkage
	optimalOrder bool    // false: keep the tree's own traversal order
	eps          float64 // >= 0; DefaultEpsilon, forwarded to the gate
}

// ---------- Constructors (WithX) ----------

// WithLinkage selects the merge criterion.
//
// Errors:
//   - Panics with a stable message on an undeclared Linkage value; user
//     input goes through ParseLinkage, which returns an error instead.
//
// Complexity: O(1).
func WithLinkage(l Linkage) Option {
	if !l.valid() {
		panic(panicLinkageInvalid)
	}

	return func(o *Options) { o.linkage = l }
}

// WithOptimalOrder enables optimal leaf ordering: sibling subtrees are
// flipped to minimize the summed input distance between adjacent leaves.
// Merge structure and heights are untouched; only LeafOrder changes.
//
// Cost: exact DP, O(n⁴) worst-case time and O(n²) state per node on top
// of the clustering itself — fine at the scale this package targets.
func WithOptimalOrder() Option {
	return func(o *Options) { o.optimalOrder = true }
}

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

// ---------- Internal resolution ----------

// gatherOptions starts from the documented defaults and applies user
// setters in order (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		linkage:      DefaultLinkage,
		optimalOrder: false,
		eps:          DefaultEpsilon,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
