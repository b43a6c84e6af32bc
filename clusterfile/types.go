package clusterfile

// Sequence is one entry of the <seq> section.
//
// Index is assigned by parse order starting at 0 and is the stable identity
// every downstream component keys on; Label is the raw trimmed line content
// (decoding of any embedded delimiters is adapter-specific and intentionally
// not performed here).
type Sequence struct {
	Index int
	Label string
}

// Group is one explicit group record of the <seqgroups> section.
//
// Name may be synthesized ("group N") when the record declared members
// without a preceding name line. Members holds sequence indices exactly as
// declared, in declaration order; duplicates across groups are legal in the
// source format and are resolved later by last-write-wins assignment.
type Group struct {
	Name    string
	Members []int
}

// Position is one 3-D embedding coordinate of the <pos> section. The
// position at ordinal i describes the sequence with index i.
type Position struct {
	X, Y, Z float64
}

// File is the immutable parse artifact: the three section collections, each
// possibly empty when its section was absent. Callers must treat the slices
// as read-only; mutating them breaks the invariants downstream components
// rely on.
type File struct {
	Sequences []Sequence
	Groups    []Group
	Positions []Position
}

// N returns the number of parsed sequences.
func (f *File) N() int { return len(f.Sequences) }

// Labels returns a fresh slice of the sequence labels in index order.
// Complexity: O(N).
func (f *File) Labels() []string {
	out := make([]string, len(f.Sequences))
	for i := range f.Sequences {
		out[i] = f.Sequences[i].Label
	}

	return out
}
