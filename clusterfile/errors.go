package clusterfile

import "errors"

// Sentinel errors returned by Parse and ParseFile. Callers should match with
// errors.Is; every sentinel is wrapped with the offending line number where
// one exists.
var (
	// ErrUnterminatedSection reports end of input while a section was still
	// collecting (its close tag never appeared).
	ErrUnterminatedSection = errors.New("clusterfile: unterminated section")

	// ErrDuplicateSection reports a section whose open tag appears twice.
	ErrDuplicateSection = errors.New("clusterfile: section declared twice")

	// ErrBadGroupLine reports a non-empty <seqgroups> line that does not
	// follow key=value syntax.
	ErrBadGroupLine = errors.New("clusterfile: group line is not key=value")

	// ErrBadMemberIndex reports a "numbers" list entry that does not parse as
	// a non-negative integer.
	ErrBadMemberIndex = errors.New("clusterfile: member index is not a non-negative integer")

	// ErrBadPositionLine reports a <pos> line that does not parse as
	// "<index> <x> <y> <z>" with finite coordinates.
	ErrBadPositionLine = errors.New("clusterfile: position line is not \"<index> <x> <y> <z>\"")

	// ErrMemberOutOfRange reports a declared group member index that is not a
	// valid sequence index (≥ the parsed sequence count).
	ErrMemberOutOfRange = errors.New("clusterfile: group member index exceeds sequence count")

	// ErrPositionCount reports a non-empty <pos> section whose line count
	// differs from the parsed sequence count.
	ErrPositionCount = errors.New("clusterfile: position count does not match sequence count")
)
