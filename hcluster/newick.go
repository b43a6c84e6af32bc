// SPDX-License-Identifier: MIT

// Package hcluster - Newick serialization.
//
// Newick is the lingua franca of tree renderers; emitting it lets any
// downstream viewer draw the dendrogram without knowing this package.
// Convention: leaves sit at height 0, an internal node at its merge
// height, and a child's branch length is parent height − child height.
// The root carries no branch length and the text ends with ";".
// Under Centroid inversions a branch length can come out negative; that is
// the criterion showing through, not a serialization bug.
package hcluster

import (
	"strconv"
	"strings"
)

// newickSpecials are the characters that force label quoting.
const newickSpecials = " \t(){}[]:;,'\""

// Newick serializes the dendrogram, honoring its LeafOrder orientation so
// the text reads left-to-right like the laid-out tree.
//
// Errors: ErrNilDendrogram.
// Complexity: O(n²) (member tracking dominates).
func Newick(dend *Dendrogram) (string, error) {
	if dend == nil {
		return "", ErrNilDendrogram
	}

	// Leaf → display position, to orient siblings the way LeafOrder does.
	pos := make([]int, dend.n)
	for p, leaf := range dend.order {
		pos[leaf] = p
	}

	// first[id] — the leftmost display position below each cluster id.
	first := make([]int, dend.n+len(dend.merges))

	var i int
	for i = 0; i < dend.n; i++ {
		first[i] = pos[i]
	}
	for i = 0; i < len(dend.merges); i++ {
		first[dend.n+i] = min(first[dend.merges[i].Left], first[dend.merges[i].Right])
	}

	var sb strings.Builder
	writeNewick(&sb, dend, first, dend.rootID(), -1)
	sb.WriteByte(';')

	return sb.String(), nil
}

// writeNewick emits cluster id under a parent at height parentH;
// parentH < 0 marks the root (no branch length).
func writeNewick(sb *strings.Builder, dend *Dendrogram, first []int, id int, parentH float64) {
	var h float64 // this node's height; leaves sit at 0
	if dend.isLeaf(id) {
		sb.WriteString(escapeNewickLabel(dend.labels[id]))
	} else {
		m := dend.merges[id-dend.n]
		h = m.Distance

		a, b := m.Left, m.Right
		if first[b] < first[a] {
			a, b = b, a // honor the display orientation
		}

		sb.WriteByte('(')
		writeNewick(sb, dend, first, a, h)
		sb.WriteByte(',')
		writeNewick(sb, dend, first, b, h)
		sb.WriteByte(')')
	}

	if parentH >= 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(parentH-h, 'g', -1, 64))
	}
}

// escapeNewickLabel single-quotes labels containing reserved characters,
// doubling embedded quotes per the format's rules.
func escapeNewickLabel(label string) string {
	if label != "" && !strings.ContainsAny(label, newickSpecials) {
		return label
	}

	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}
