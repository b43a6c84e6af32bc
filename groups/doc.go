// Package groups resolves group membership for every parsed sequence and
// projects per-group 3-D centroids.
//
// Assign turns the explicit group records of a cluster map into a full-length
// assignment: every sequence index 0..N−1 maps to exactly one group ordinal,
// with an implicit overflow bucket (ordinal == number of explicit groups,
// display name "unassigned") holding every index no explicit group claimed.
// When two groups claim the same index the later declaration wins —
// declaration order is precedence, preserved by contract.
//
// Centroids partitions the position cloud by that assignment and computes the
// arithmetic mean of each coordinate axis per group. An explicit group with
// zero members has no defined centroid and is reported as an error — never a
// silent zero point, which would corrupt every distance derived downstream.
// The overflow bucket alone may be empty; it is then simply absent from the
// result.
//
// Both operations are deterministic, allocate fresh artifacts, and never
// mutate their inputs.
package groups
