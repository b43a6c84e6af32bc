// Package clusterfile parses the sectioned cluster-map text format produced
// by upstream sequence-clustering tools into immutable Sequence, Group and
// Position collections.
//
// # File format
//
// A cluster-map file is UTF-8 text with up to three recognized sections, each
// delimited by a distinct open-tag line and its matching close-tag line.
// Tags are matched exactly and case-sensitively after trimming surrounding
// whitespace. Sections may appear at most once each, in any relative order;
// lines outside any section are ignored.
//
//	<seq>
//	>alpha
//	>beta
//	>gamma
//	</seq>
//	<seqgroups>
//	name=halophiles
//	type=0
//	color=255;0;0;255
//	numbers=0;2;
//	</seqgroups>
//	<pos>
//	0 1.5 -0.25 3.0
//	1 0.0  2.00 1.0
//	2 4.0  0.50 0.0
//	</pos>
//
// Within the sections:
//
//   - <seq>: every non-empty line becomes one Sequence; the label is the raw
//     trimmed line content. Indices are assigned by parse order from 0.
//   - <seqgroups>: free-form key=value lines. A "numbers" line carries a
//     semicolon-separated member-index list (trailing separator optional) and
//     completes one group record; a preceding "name" line supplies its display
//     name (synthesized when absent). All other keys belong to the upstream
//     tool and are ignored.
//   - <pos>: lines of the form "<index> <x> <y> <z>". The embedded index is
//     checked for well-formedness and then discarded — the line's ordinal
//     position within the block is the sequence index it describes.
//
// # Contracts
//
// Parse never mutates or retains the reader's data beyond the returned File.
// Reaching end of input while a section is still open, re-opening a section,
// a group line that is not key=value, an unparsable member index or position
// line, a member index outside 0..N−1, and a position count different from
// the sequence count are all malformed-input errors (see errors.go); the
// first one encountered aborts the parse.
//
// Complexity: O(L) time over L input lines, O(N+G+P) space for the artifact.
package clusterfile
