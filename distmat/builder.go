// SPDX-License-Identifier: MIT

// Package distmat: builders that synthesize a Matrix from observations.
// All builders share the same discipline:
//   - Stage 1: resolve options, validate raw inputs (names, values).
//   - Stage 2: allocate the flat buffer and fill it deterministically.
//   - Stage 3: gate the result (structural validation) where the source
//     does not guarantee validity by construction.
//
// Errors are plain sentinels wrapped once with the operation tag via
// distmatErrorf, so callers can errors.Is against the sentinel and still
// see which builder failed.
package distmat

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/dendra/groups"
)

// Operation tags used for uniform error wrapping (no magic strings).
const (
	opNew           = "New"
	opNewUnchecked  = "NewUnchecked"
	opFromPairs     = "FromPairs"
	opFromCentroids = "FromCentroids"
	opValidate      = "Validate"
	opWriteCSV      = "WriteCSV"
	opReadCSV       = "ReadCSV"
	opToSymDense    = "ToSymDense"
	opFromSymDense  = "FromSymDense"
)

// distmatErrorf wraps err with an operation tag, preserving the original
// sentinel via %w. Call only with err != nil.
func distmatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkNames rejects empty and duplicate labels. Minimum-count policy is
// per builder: pairwise builders demand two names, New accepts one.
func checkNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("name %d: %w", i, ErrEmptyName)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("name %q: %w", name, ErrDuplicateName)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// NewUnchecked wires a Matrix around an ordered name list and a row-major
// buffer WITHOUT the structural gate. Only shape and naming are enforced:
// ≥1 unique non-empty names, len(data) == n². A 1×1 table is legal here —
// a degenerate universe is still a universe — while the pairwise builders
// (FromPairs, FromCentroids) insist on two.
//
// Use this for trusted ingestion or to build deliberately broken fixtures;
// run Validate before feeding the result to anything that assumes a metric.
//
// Errors: ErrTooFewNames, ErrEmptyName, ErrDuplicateName, ErrDimensionMismatch.
// Complexity: O(n²) time and space (defensive copies).
func NewUnchecked(names []string, data []float64) (*Matrix, error) {
	if len(names) == 0 {
		return nil, distmatErrorf(opNewUnchecked,
			fmt.Errorf("0 names: %w", ErrTooFewNames))
	}
	if err := checkNames(names); err != nil {
		return nil, distmatErrorf(opNewUnchecked, err)
	}
	n := len(names)
	if len(data) != n*n {
		return nil, distmatErrorf(opNewUnchecked,
			fmt.Errorf("%d values for order %d: %w", len(data), n, ErrDimensionMismatch))
	}

	ns := make([]string, n)
	copy(ns, names)
	buf := make([]float64, n*n)
	copy(buf, data)

	return newMatrix(ns, buf), nil
}

// New builds a Matrix from an ordered name list and a row-major buffer and
// gates it through the full structural validation (finite → symmetric →
// zero diagonal → non-negative) under the configured epsilon.
//
// Inputs:
//   - names: ≥1 unique, non-empty labels in matrix order.
//   - data:  row-major buffer of length len(names)².
//   - opts:  WithEpsilon to adjust the tolerance.
//
// Errors:
//   - naming/shape: ErrTooFewNames, ErrEmptyName, ErrDuplicateName,
//     ErrDimensionMismatch.
//   - structure: ErrNaNInf, ErrAsymmetry, ErrNonZeroDiagonal,
//     ErrNegativeValue.
//
// Complexity: O(n²) time and space.
func New(names []string, data []float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	m, err := NewUnchecked(names, data)
	if err != nil {
		return nil, distmatErrorf(opNew, err)
	}
	if err = Validate(m, WithEpsilon(o.eps)); err != nil {
		return nil, distmatErrorf(opNew, err)
	}

	return m, nil
}

// FromPairs synthesizes a Matrix from sparse pairwise observations.
//
// Implementation:
//   - Stage 1: validate every observation (names non-empty, value finite and
//     ≥ 0) and collect the name universe.
//   - Stage 2: sort the universe ascending — the matrix order is the sorted
//     name union, independent of observation order.
//   - Stage 3: fill. Off-diagonal cells start as "unobserved" (NaN marker);
//     the diagonal starts at 0. Each observation writes both (i,j) and
//     (j,i); a repeated pair overwrites (last-write-wins, mirroring the
//     upstream format's precedence). A self observation (A,A,v) is accepted
//     only when |v| ≤ eps and never unsets the zero diagonal.
//   - Stage 4: coverage. Strict (default) rejects the first unobserved pair
//     in ascending (i,j) scan order; ZeroFill writes 0 into every hole.
//
// The result is symmetric with a zero diagonal by construction, so no
// post-gate is needed.
//
// Inputs:
//   - pairs: observations in any order; both orientations equivalent.
//   - opts:  WithEpsilon, WithFillMode / WithStrict / WithZeroFill.
//
// Errors:
//   - ErrEmptyName, ErrNaNInf, ErrNegativeValue, ErrSelfPair (per
//     observation, wrapped with the offending names),
//   - ErrTooFewNames (universe smaller than 2),
//   - ErrIncompleteCoverage (Strict, wrapped with the first missing pair).
//
// Determinism: sorted universe, fixed scan orders, stable messages.
// Complexity: O(p log p + n²) time, O(n²) space, p = len(pairs).
func FromPairs(pairs []Pair, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: per-observation validation + name universe.
	universe := make(map[string]struct{}, len(pairs)*2)

	var p Pair
	for _, p = range pairs {
		if p.A == "" || p.B == "" {
			return nil, distmatErrorf(opFromPairs,
				fmt.Errorf("pair (%q,%q): %w", p.A, p.B, ErrEmptyName))
		}
		if isNonFinite(p.Value) {
			return nil, distmatErrorf(opFromPairs,
				fmt.Errorf("pair (%q,%q)=%v: %w", p.A, p.B, p.Value, ErrNaNInf))
		}
		if p.Value < 0 {
			return nil, distmatErrorf(opFromPairs,
				fmt.Errorf("pair (%q,%q)=%v: %w", p.A, p.B, p.Value, ErrNegativeValue))
		}
		if p.A == p.B && p.Value > o.eps {
			return nil, distmatErrorf(opFromPairs,
				fmt.Errorf("pair (%q,%q)=%v: %w", p.A, p.B, p.Value, ErrSelfPair))
		}
		universe[p.A] = struct{}{}
		universe[p.B] = struct{}{}
	}

	// Stage 2: sorted name union fixes the matrix order.
	names := make([]string, 0, len(universe))
	for name := range universe {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) < 2 {
		return nil, distmatErrorf(opFromPairs,
			fmt.Errorf("%d names: %w", len(names), ErrTooFewNames))
	}

	n := len(names)
	index := make(map[string]int, n)
	for i, name := range names {
		index[name] = i
	}

	// Stage 3: fill. NaN marks "unobserved"; it never survives this builder.
	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.NaN()
	}
	var i, j int
	for i = 0; i < n; i++ {
		data[i*n+i] = 0
	}

	for _, p = range pairs {
		i, j = index[p.A], index[p.B]
		if i == j {
			continue // validated self pair; diagonal stays 0
		}
		data[i*n+j] = p.Value
		data[j*n+i] = p.Value
	}

	// Stage 4: coverage policy over the strict upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if !math.IsNaN(data[i*n+j]) {
				continue
			}
			if o.fill == Strict {
				return nil, distmatErrorf(opFromPairs,
					fmt.Errorf("pair (%q,%q) unobserved: %w", names[i], names[j], ErrIncompleteCoverage))
			}
			data[i*n+j] = 0
			data[j*n+i] = 0
		}
	}

	return newMatrix(names, data), nil
}

// FromCentroids synthesizes a Matrix of pairwise Euclidean distances between
// labeled 3-D points. Names keep their input (ordinal) order — the caller's
// group declaration order is meaningful and is preserved, unlike the sorted
// universe of FromPairs.
//
// The diagonal is written as exactly 0 (no subtraction round-trip), and each
// distance is computed once and mirrored, so the result is symmetric with a
// clean diagonal by construction.
//
// Inputs:
//   - cs: ≥2 centroids with unique non-empty names and finite coordinates.
//
// Errors: ErrTooFewNames, ErrEmptyName, ErrDuplicateName, ErrNaNInf
// (non-finite coordinate, wrapped with the centroid name).
//
// Complexity: O(n²) time and space.
func FromCentroids(cs []groups.Centroid, opts ...Option) (*Matrix, error) {
	_ = gatherOptions(opts...) // reserved: no knob affects this builder yet

	if len(cs) < 2 {
		return nil, distmatErrorf(opFromCentroids,
			fmt.Errorf("%d centroids: %w", len(cs), ErrTooFewNames))
	}
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	if err := checkNames(names); err != nil {
		return nil, distmatErrorf(opFromCentroids, err)
	}

	var c groups.Centroid
	for _, c = range cs {
		if isNonFinite(c.X) || isNonFinite(c.Y) || isNonFinite(c.Z) {
			return nil, distmatErrorf(opFromCentroids,
				fmt.Errorf("centroid %q: %w", c.Name, ErrNaNInf))
		}
	}

	n := len(cs)
	data := make([]float64, n*n)

	var (
		i, j       int
		dx, dy, dz float64
		d          float64
	)
	for i = 0; i < n; i++ {
		data[i*n+i] = 0
		for j = i + 1; j < n; j++ {
			dx = cs[i].X - cs[j].X
			dy = cs[i].Y - cs[j].Y
			dz = cs[i].Z - cs[j].Z
			d = math.Sqrt(dx*dx + dy*dy + dz*dz)
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return newMatrix(names, data), nil
}
