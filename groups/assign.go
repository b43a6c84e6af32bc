package groups

import (
	"fmt"

	"github.com/katalvlaran/dendra/clusterfile"
)

// OverflowName is the display name of the implicit bucket holding every
// sequence index not claimed by an explicit group.
const OverflowName = "unassigned"

// Assignment maps every sequence index to a group ordinal. Explicit groups
// occupy ordinals 0,1,2,… in declaration order; the overflow bucket is the
// ordinal equal to the number of explicit groups. Immutable once built;
// accessors return copies.
type Assignment struct {
	groupOf []int    // length N; groupOf[i] is the ordinal owning index i
	names   []string // explicit names in declaration order, overflow last
}

// Assign resolves group membership over n sequences.
//
// Every entry starts in the overflow bucket; each explicit group then
// overwrites the entries of its declared members, in declaration order, so a
// doubly-claimed index ends up with the last group that declared it
// (last-write-wins precedence, a contract of the upstream format).
//
// Errors:
//   - ErrNegativeCount when n < 0.
//   - ErrIndexOutOfRange when a declared member is outside 0..n−1, wrapped
//     with the offending group name and index.
//
// Complexity: O(n + Σ members) time, O(n + G) space.
func Assign(gs []clusterfile.Group, n int) (*Assignment, error) {
	if n < 0 {
		return nil, fmt.Errorf("groups: Assign: n=%d: %w", n, ErrNegativeCount)
	}

	overflow := len(gs) // sentinel ordinal of the overflow bucket

	groupOf := make([]int, n)
	for i := range groupOf {
		groupOf[i] = overflow
	}

	names := make([]string, 0, len(gs)+1)

	var (
		ord int // group ordinal = declaration order
		m   int // member index under assignment
	)
	for ord = range gs {
		names = append(names, gs[ord].Name)
		for _, m = range gs[ord].Members {
			if m < 0 || m >= n {
				return nil, fmt.Errorf("groups: Assign: group %q: index %d with %d sequences: %w",
					gs[ord].Name, m, n, ErrIndexOutOfRange)
			}
			groupOf[m] = ord // later declarations overwrite earlier claims
		}
	}
	names = append(names, OverflowName)

	return &Assignment{groupOf: groupOf, names: names}, nil
}

// N returns the number of sequences covered by the assignment.
func (a *Assignment) N() int { return len(a.groupOf) }

// Buckets returns the number of group buckets, overflow included.
func (a *Assignment) Buckets() int { return len(a.names) }

// Overflow returns the overflow bucket's ordinal.
func (a *Assignment) Overflow() int { return len(a.names) - 1 }

// GroupOf returns a fresh copy of the full index→ordinal array.
func (a *Assignment) GroupOf() []int {
	out := make([]int, len(a.groupOf))
	copy(out, a.groupOf)

	return out
}

// Names returns a fresh copy of the bucket display names, overflow last.
func (a *Assignment) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)

	return out
}

// NameOf resolves an ordinal to its display name; any ordinal outside the
// explicit range resolves to the overflow sentinel name.
func (a *Assignment) NameOf(ord int) string {
	if ord >= 0 && ord < len(a.names)-1 {
		return a.names[ord]
	}

	return OverflowName
}

// Members returns the sequence indices owned by ordinal ord, ascending.
// Complexity: O(n).
func (a *Assignment) Members(ord int) []int {
	var out []int
	for i, g := range a.groupOf {
		if g == ord {
			out = append(out, i)
		}
	}

	return out
}

// Sizes returns the member count of every bucket, overflow last.
// Complexity: O(n).
func (a *Assignment) Sizes() []int {
	out := make([]int, len(a.names))
	for _, g := range a.groupOf {
		out[g]++
	}

	return out
}
