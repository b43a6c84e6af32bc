// SPDX-License-Identifier: MIT
// Package hcluster: sentinel error set.
// Matrix-shape violations surface as distmat sentinels (the gate simply
// forwards them); this file defines only the conditions native to trees.

package hcluster

import "errors"

var (
	// ErrNilDendrogram indicates a nil *Dendrogram argument.
	ErrNilDendrogram = errors.New("hcluster: nil dendrogram")

	// ErrUnknownLinkage is returned by ParseLinkage for an unrecognized
	// criterion name, and by Cluster for an undeclared Linkage value that
	// bypassed the option constructor.
	ErrUnknownLinkage = errors.New("hcluster: unknown linkage")

	// ErrBadK reports a flat-cluster count outside 1..n.
	ErrBadK = errors.New("hcluster: cluster count out of range")

	// ErrBadHeight reports a NaN height threshold.
	ErrBadHeight = errors.New("hcluster: height threshold is NaN")

	// ErrTooFewLeaves is returned by CopheneticCorrelation when the tree has
	// fewer than three leaves; with at most one condensed pair the
	// coefficient is undefined.
	ErrTooFewLeaves = errors.New("hcluster: fewer than three leaves")

	// ErrZeroVariance signals a degenerate correlation input: one of the
	// condensed vectors is constant, so Pearson's denominator vanishes.
	ErrZeroVariance = errors.New("hcluster: zero variance in distances")

	// ErrLabelMismatch signals that a dendrogram and a matrix do not cover
	// the same entities in the same order.
	ErrLabelMismatch = errors.New("hcluster: label mismatch")
)
