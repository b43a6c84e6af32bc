// SPDX-License-Identifier: MIT

// Package distmat provides a labeled, symmetric pairwise distance matrix and
// the builders that synthesize one from raw observations.
//
// What this package offers:
//
//   - Matrix — an immutable n×n distance table addressed by row/column index
//     or by entity name. Storage is a flat row-major buffer; name→index
//     resolution is O(1) via an internal map. No exported mutator exists:
//     every Matrix is complete the moment a builder returns it.
//   - FromPairs — synthesis from sparse (A, B, value) observations. The name
//     universe is the sorted union of all mentioned names; each observation
//     fills both (i,j) and (j,i). Coverage policy is configurable: Strict
//     (default) rejects any pair left unobserved, ZeroFill writes 0 into the
//     holes for legacy pipelines that tolerated partial data.
//   - FromCentroids — synthesis from labeled 3-D points using Euclidean
//     distance. Names keep their input order; the diagonal is exactly 0.
//   - New / NewUnchecked — direct construction from a flat buffer, with and
//     without the structural gate.
//   - Validate and the Validate* family — staged structural checks (finite →
//     symmetric → zero diagonal → non-negative) shared by builders and by
//     downstream consumers that must refuse malformed input.
//   - CSV round-trip (WriteCSV / ReadCSV) and a gonum bridge
//     (ToSymDense / FromSymDense) for interop with mat-based tooling.
//
// Numeric policy: NaN and ±Inf never enter a Matrix; symmetry and the zero
// diagonal are judged within a configurable epsilon (DefaultEpsilon). All
// iteration orders are fixed, so identical inputs yield identical matrices
// and identical error messages.
//
// Complexity: builders are O(n²) space; FromPairs is O(p + n² ) time for p
// observations, FromCentroids O(n²), validation O(n²).
package distmat
