// SPDX-License-Identifier: MIT

// Package distmat: functional configuration for builders and validators.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants, single source of truth),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults + user setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package distmat

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks
	// (symmetry, zero diagonal, self-pair rejection).
	DefaultEpsilon = 1e-9

	// DefaultFillMode is the coverage policy FromPairs applies to
	// unobserved off-diagonal cells. Strict rejects; see FillMode.
	DefaultFillMode = Strict
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "distmat: WithEpsilon: eps must be finite, non-negative"
	panicFillModeInvalid = "distmat: WithFillMode: unknown fill mode"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps  float64  // >= 0; DefaultEpsilon
	fill FillMode // DefaultFillMode
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance used by structural checks.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Complexity: O(1).
//
// Notes:
//   - Larger eps relaxes symmetry/diagonal checks; use judiciously.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithFillMode selects the FromPairs coverage policy explicitly.
//
// Errors:
//   - Panics with a stable message on an undeclared mode value.
//
// Complexity: O(1).
func WithFillMode(m FillMode) Option {
	if !m.valid() {
		panic(panicFillModeInvalid)
	}

	return func(o *Options) { o.fill = m }
}

// WithStrict is sugar for WithFillMode(Strict): unobserved pairs reject.
// This restates the default; useful to make call sites self-documenting.
func WithStrict() Option {
	return func(o *Options) { o.fill = Strict }
}

// WithZeroFill is sugar for WithFillMode(ZeroFill): unobserved pairs become 0.
// Compatibility hatch for pipelines that treated absence as identity.
func WithZeroFill() Option {
	return func(o *Options) { o.fill = ZeroFill }
}

// ---------- Internal resolution ----------

// gatherOptions starts from the documented defaults and applies user setters
// in order (last-writer-wins). All invariants live in the constructors, so
// no separate finalize pass is needed here.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:  DefaultEpsilon,
		fill: DefaultFillMode,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
