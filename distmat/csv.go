// SPDX-License-Identifier: MIT

// Package distmat: CSV round-trip for labeled distance matrices.
//
// Layout: one header row ("name" followed by the n labels), then n data
// rows, each starting with its label followed by n cells. Row order must
// match header order, which makes files self-checking against accidental
// row shuffles.
package distmat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// headerTag is the first header cell emitted by WriteCSV. ReadCSV ignores
// the cell's content, so legacy files with an empty corner still load.
const headerTag = "name"

// WriteCSV renders the matrix in the labeled layout described above.
// Values are encoded with strconv 'g' formatting at full precision, so a
// Write → Read round trip reproduces the matrix bit-for-bit.
//
// Errors: ErrNilMatrix, plus any underlying write failure.
// Complexity: O(n²).
func WriteCSV(w io.Writer, m *Matrix) error {
	if m == nil {
		return distmatErrorf(opWriteCSV, ErrNilMatrix)
	}

	n := len(m.names)
	cw := csv.NewWriter(w)

	record := make([]string, n+1)
	record[0] = headerTag
	copy(record[1:], m.names)
	if err := cw.Write(record); err != nil {
		return distmatErrorf(opWriteCSV, err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		record[0] = m.names[i]
		for j = 0; j < n; j++ {
			record[j+1] = strconv.FormatFloat(m.data[i*n+j], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return distmatErrorf(opWriteCSV, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return distmatErrorf(opWriteCSV, err)
	}

	return nil
}

// ReadCSV parses the labeled layout back into a Matrix and gates it through
// the full structural validation — CSV is external data and gets no trust.
//
// Checks, in order:
//   - header present with ≥2 labels (the corner cell is ignored),
//   - exactly n data rows of n+1 cells each,
//   - row labels match header labels position by position,
//   - every cell parses as a finite float.
//
// Errors: ErrBadCSV (layout/parse, wrapped with the offending row/cell),
// plus everything New can return (naming, structure).
// Complexity: O(n²).
func ReadCSV(r io.Reader, opts ...Option) (*Matrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row shape is checked manually for better messages

	records, err := cr.ReadAll()
	if err != nil {
		return nil, distmatErrorf(opReadCSV, fmt.Errorf("%v: %w", err, ErrBadCSV))
	}
	if len(records) == 0 {
		return nil, distmatErrorf(opReadCSV, fmt.Errorf("empty input: %w", ErrBadCSV))
	}

	header := records[0]
	if len(header) < 3 {
		return nil, distmatErrorf(opReadCSV,
			fmt.Errorf("header has %d labels, need at least 2: %w", len(header)-1, ErrBadCSV))
	}
	names := make([]string, len(header)-1)
	copy(names, header[1:])
	n := len(names)

	rows := records[1:]
	if len(rows) != n {
		return nil, distmatErrorf(opReadCSV,
			fmt.Errorf("%d data rows for %d labels: %w", len(rows), n, ErrBadCSV))
	}

	data := make([]float64, n*n)

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n+1 {
			return nil, distmatErrorf(opReadCSV,
				fmt.Errorf("row %d has %d cells, want %d: %w", i+1, len(rows[i]), n+1, ErrBadCSV))
		}
		if rows[i][0] != names[i] {
			return nil, distmatErrorf(opReadCSV,
				fmt.Errorf("row %d labeled %q, header says %q: %w", i+1, rows[i][0], names[i], ErrBadCSV))
		}
		for j = 0; j < n; j++ {
			v, err = strconv.ParseFloat(rows[i][j+1], 64)
			if err != nil {
				return nil, distmatErrorf(opReadCSV,
					fmt.Errorf("cell (%d,%d) %q: %w", i+1, j+1, rows[i][j+1], ErrBadCSV))
			}
			data[i*n+j] = v
		}
	}

	m, err := New(names, data, opts...)
	if err != nil {
		return nil, distmatErrorf(opReadCSV, err)
	}

	return m, nil
}
