// SPDX-License-Identifier: MIT

// Package coord: the MatrixData exchange value.
package coord

import (
	"fmt"
	"sort"
)

// Entry is one explicitly stored coefficient of the exchange representation.
type Entry struct {
	Row, Col int32
	Val      float64
}

// MatrixData is the coordinate exchange representation consumed and produced
// by every format's ReadFrom/WriteTo. Entries carry no ordering guarantee of
// their own; use SortRowMajor before algorithms that assume canonical order.
type MatrixData struct {
	Rows, Cols int
	Entries    []Entry
}

// NewMatrixData returns an empty exchange value of the given shape.
func NewMatrixData(rows, cols int) MatrixData {
	return MatrixData{Rows: rows, Cols: cols}
}

// NNZ returns the number of explicitly stored entries.
func (d MatrixData) NNZ() int { return len(d.Entries) }

// Validate checks the shape and every entry index against it.
// Returns ErrBadShape or ErrIndexOutOfRange; nil otherwise.
// Complexity: O(nnz).
func (d MatrixData) Validate() error {
	if d.Rows < 0 || d.Cols < 0 {
		return fmt.Errorf("%dx%d: %w", d.Rows, d.Cols, ErrBadShape)
	}
	for i, e := range d.Entries {
		if e.Row < 0 || int(e.Row) >= d.Rows || e.Col < 0 || int(e.Col) >= d.Cols {
			return fmt.Errorf("entry %d at (%d,%d): %w", i, e.Row, e.Col, ErrIndexOutOfRange)
		}
	}
	return nil
}

// SortRowMajor stably reorders entries into row-major order: ascending row,
// then ascending column. Stability preserves the relative order of duplicate
// (row, col) pairs.
// Complexity: O(nnz log nnz).
func (d MatrixData) SortRowMajor() {
	sort.SliceStable(d.Entries, func(i, j int) bool {
		a, b := d.Entries[i], d.Entries[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
}

// SortByRow stably reorders entries by row only, keeping the insertion order
// of entries within each row. Formats ingest through this weaker ordering so
// a caller's within-row ordering survives the round trip.
func (d MatrixData) SortByRow() {
	sort.SliceStable(d.Entries, func(i, j int) bool {
		return d.Entries[i].Row < d.Entries[j].Row
	})
}

// Clone returns a deep copy of the exchange value.
func (d MatrixData) Clone() MatrixData {
	out := MatrixData{Rows: d.Rows, Cols: d.Cols}
	if d.Entries != nil {
		out.Entries = append([]Entry(nil), d.Entries...)
	}
	return out
}
