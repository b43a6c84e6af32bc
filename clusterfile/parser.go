// Package clusterfile - bracket-matching parser for the cluster-map format.
//
// The parser runs in two phases that mirror the format itself:
//
//  1. scan   - a line-oriented state machine collects the verbatim content of
//     each recognized section (seeking → collecting → done per section).
//  2. decode - the collected blocks are decoded into Sequence, Group and
//     Position values and cross-checked against each other.
//
// Design principles:
//   - Deterministic: single forward pass, no lookahead, no global state.
//   - Strict sentinels: every failure wraps a sentinel from errors.go together
//     with the offending 1-based line number.
//   - Tolerant where the format is tolerant: unrecognized lines outside
//     sections, unknown metadata keys and blank lines inside sections are
//     ignored; everything else fails loudly.
package clusterfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Section tags of the cluster-map format. They are fixed by the upstream
// tool and matched exactly (case-sensitive) after whitespace trimming.
const (
	tagSeqOpen        = "<seq>"
	tagSeqClose       = "</seq>"
	tagSeqgroupsOpen  = "<seqgroups>"
	tagSeqgroupsClose = "</seqgroups>"
	tagPosOpen        = "<pos>"
	tagPosClose       = "</pos>"
)

// Group metadata syntax.
const (
	keyName    = "name"
	keyNumbers = "numbers"

	keyValueSeparator = "="
	listSeparator     = ";"
	displaySeparator  = ", "

	// synthesizedNameFormat names a group whose record carried no name line:
	// "group 0", "group 1", … by declaration order.
	synthesizedNameFormat = "group %d"
)

// positionFields is the exact field count of a <pos> line: index, x, y, z.
const positionFields = 4

// maxLineBytes caps one input line. Sequence labels from real exports can
// exceed bufio.Scanner's default 64 KiB token limit.
const maxLineBytes = 1 << 20

// section identifies one recognized section (sectionNone = outside all).
type section uint8

const (
	sectionNone section = iota
	sectionSeq
	sectionGroups
	sectionPos
)

// String returns the section's open tag for error messages.
func (s section) String() string {
	switch s {
	case sectionSeq:
		return tagSeqOpen
	case sectionGroups:
		return tagSeqgroupsOpen
	case sectionPos:
		return tagPosOpen
	default:
		return "<none>"
	}
}

// sectionState tracks the bracket-matching progress of one section.
type sectionState uint8

const (
	stateSeeking    sectionState = iota // open tag not seen yet
	stateCollecting                     // between open and close tag
	stateDone                           // close tag consumed
)

// parser carries the scan-phase state over one input stream.
type parser struct {
	active section          // section currently collecting, or sectionNone
	state  [4]sectionState  // per-section progress, indexed by section
	opened [4]int           // line number of each section's open tag
	blocks [4][]string      // verbatim (trimmed) lines per section
	lines  [4][]int         // 1-based source line per collected block line
	lineNo int              // current 1-based line number
}

// Parse reads a cluster-map stream and returns its immutable File artifact.
//
// Contracts:
//   - Sections may appear at most once each, in any relative order.
//   - An absent section yields an empty collection, never an error.
//   - Lines outside any recognized section are ignored.
//
// Errors: the sentinels of errors.go (malformed input), or the underlying
// read error, each wrapped with positional context.
//
// Complexity: O(L) over L input lines.
func Parse(r io.Reader) (*File, error) {
	var p parser
	if err := p.scan(r); err != nil {
		return nil, err
	}

	return p.decode()
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("clusterfile: ParseFile: %w", err)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("clusterfile: ParseFile: %s: %w", path, err)
	}

	return f, nil
}

// scan drives the state machine over every line of r.
func (p *parser) scan(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		p.lineNo++
		if err := p.feed(strings.TrimSpace(sc.Text())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("clusterfile: Parse: %w", err)
	}

	// End of stream while a section is still collecting: its close tag is
	// missing and the input is malformed.
	if p.active != sectionNone {
		return fmt.Errorf("clusterfile: Parse: %s opened at line %d: %w",
			p.active, p.opened[p.active], ErrUnterminatedSection)
	}

	return nil
}

// feed advances the state machine by one trimmed line.
//
// While a section is collecting, only its own close tag ends it; every other
// line (including tags of other sections) is verbatim content.
func (p *parser) feed(line string) error {
	if p.active == sectionNone {
		s := openTagOf(line)
		if s == sectionNone {
			return nil // outside all sections: ignored
		}
		if p.state[s] == stateDone {
			return fmt.Errorf("clusterfile: Parse: line %d: %s: %w", p.lineNo, s, ErrDuplicateSection)
		}
		p.state[s] = stateCollecting
		p.opened[s] = p.lineNo
		p.active = s

		return nil
	}

	if line == closeTagOf(p.active) {
		p.state[p.active] = stateDone
		p.active = sectionNone

		return nil
	}

	p.blocks[p.active] = append(p.blocks[p.active], line)
	p.lines[p.active] = append(p.lines[p.active], p.lineNo)

	return nil
}

// openTagOf maps an open-tag line to its section, or sectionNone.
func openTagOf(line string) section {
	switch line {
	case tagSeqOpen:
		return sectionSeq
	case tagSeqgroupsOpen:
		return sectionGroups
	case tagPosOpen:
		return sectionPos
	default:
		return sectionNone
	}
}

// closeTagOf returns the close tag matching s.
func closeTagOf(s section) string {
	switch s {
	case sectionSeq:
		return tagSeqClose
	case sectionGroups:
		return tagSeqgroupsClose
	default:
		return tagPosClose
	}
}

// decode turns the collected blocks into the File artifact and enforces the
// cross-section invariants.
func (p *parser) decode() (*File, error) {
	f := &File{Sequences: decodeSequences(p.blocks[sectionSeq])}

	var err error
	if f.Groups, err = decodeGroups(p.blocks[sectionGroups], p.lines[sectionGroups]); err != nil {
		return nil, err
	}
	if f.Positions, err = decodePositions(p.blocks[sectionPos], p.lines[sectionPos]); err != nil {
		return nil, err
	}

	// Cross-check 1: every declared member index must address a parsed
	// sequence. Scanning in declaration order keeps the reported index the
	// first offender, deterministically.
	n := f.N()
	for gi := range f.Groups {
		for _, m := range f.Groups[gi].Members {
			if m >= n {
				return nil, fmt.Errorf("clusterfile: Parse: group %q: index %d with %d sequences: %w",
					f.Groups[gi].Name, m, n, ErrMemberOutOfRange)
			}
		}
	}

	// Cross-check 2: a non-empty <pos> section must describe every sequence
	// exactly once (positional correspondence).
	if len(f.Positions) > 0 && len(f.Positions) != n {
		return nil, fmt.Errorf("clusterfile: Parse: %d positions for %d sequences: %w",
			len(f.Positions), n, ErrPositionCount)
	}

	return f, nil
}

// decodeSequences turns the <seq> block into Sequences: one per non-empty
// line, label = trimmed raw content, index = order of appearance.
func decodeSequences(block []string) []Sequence {
	out := make([]Sequence, 0, len(block))
	for _, raw := range block {
		if raw == "" {
			continue
		}
		out = append(out, Sequence{Index: len(out), Label: raw})
	}

	return out
}

// decodeGroups turns the <seqgroups> block into Groups. A "numbers" line
// completes one group record, consuming the closest preceding "name" line;
// unknown keys are upstream metadata and are skipped. A trailing name with no
// numbers line declares no member list and therefore no group.
func decodeGroups(block []string, lineOf []int) ([]Group, error) {
	var (
		out     []Group
		pending string // display name awaiting its numbers line
		named   bool   // whether pending was set
	)
	for bi, raw := range block {
		if raw == "" {
			continue
		}
		key, value, ok := strings.Cut(raw, keyValueSeparator)
		if !ok {
			return nil, fmt.Errorf("clusterfile: Parse: line %d: %q: %w", lineOf[bi], raw, ErrBadGroupLine)
		}
		switch key {
		case keyName:
			// The raw name may itself contain the list separator; it is
			// replaced for display so downstream labels stay readable.
			pending = strings.ReplaceAll(value, listSeparator, displaySeparator)
			named = true
		case keyNumbers:
			members, err := decodeMemberList(value, lineOf[bi])
			if err != nil {
				return nil, err
			}
			name := pending
			if !named {
				name = fmt.Sprintf(synthesizedNameFormat, len(out))
			}
			out = append(out, Group{Name: name, Members: members})
			pending, named = "", false
		default:
			// type=, size=, hide=, color=, …: retained upstream keys, ignored.
		}
	}

	return out, nil
}

// decodeMemberList splits a semicolon-separated index list; empty segments
// (the customary trailing separator included) are tolerated.
func decodeMemberList(value string, lineNo int) ([]int, error) {
	parts := strings.Split(value, listSeparator)
	members := make([]int, 0, len(parts))

	var (
		part string
		idx  int
		err  error
	)
	for _, part = range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx, err = strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("clusterfile: Parse: line %d: %q: %w", lineNo, part, ErrBadMemberIndex)
		}
		members = append(members, idx)
	}

	return members, nil
}

// decodePositions turns the <pos> block into Positions. The embedded index
// field is validated for shape and then discarded: the ordinal of the line
// within the block is the sequence index it describes.
func decodePositions(block []string, lineOf []int) ([]Position, error) {
	out := make([]Position, 0, len(block))
	for bi, raw := range block {
		if raw == "" {
			continue
		}
		fields := strings.Fields(raw)
		if len(fields) != positionFields {
			return nil, badPosition(lineOf[bi], raw)
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			return nil, badPosition(lineOf[bi], raw)
		}

		var coords [3]float64
		for ci := 0; ci < 3; ci++ {
			v, err := strconv.ParseFloat(fields[ci+1], 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, badPosition(lineOf[bi], raw)
			}
			coords[ci] = v
		}
		out = append(out, Position{X: coords[0], Y: coords[1], Z: coords[2]})
	}

	return out, nil
}

// badPosition wraps ErrBadPositionLine with positional context.
func badPosition(lineNo int, raw string) error {
	return fmt.Errorf("clusterfile: Parse: line %d: %q: %w", lineNo, raw, ErrBadPositionLine)
}
