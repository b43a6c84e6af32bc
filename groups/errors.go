package groups

import "errors"

// Sentinel errors for membership assignment and centroid projection.
// Callers should match with errors.Is.
var (
	// ErrNegativeCount reports a negative sequence count passed to Assign.
	ErrNegativeCount = errors.New("groups: negative sequence count")

	// ErrIndexOutOfRange reports a declared member index outside 0..N−1.
	ErrIndexOutOfRange = errors.New("groups: member index outside sequence range")

	// ErrNilAssignment reports a nil *Assignment receiver argument.
	ErrNilAssignment = errors.New("groups: nil assignment")

	// ErrPositionCount reports a position slice whose length differs from the
	// assignment's sequence count.
	ErrPositionCount = errors.New("groups: position count does not match assignment length")

	// ErrEmptyGroup reports an explicit group with zero members: its centroid
	// is undefined and must not silently default to the origin.
	ErrEmptyGroup = errors.New("groups: group has no members")
)
