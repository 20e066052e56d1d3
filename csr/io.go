// SPDX-License-Identifier: MIT

// Package csr: coordinate-exchange ingestion and serialization.
package csr

import (
	"github.com/lumerio/sparsela/coord"
)

// ReadFrom populates the matrix from the coordinate exchange representation
// and recomputes srow. Entries are normalized to row-major order; within a
// row the insertion order of data.Entries is preserved (SortByColumnIndex
// establishes canonical order when an algorithm needs it).
// Complexity: O(nnz log nnz) for the normalization sort.
func (m *Matrix) ReadFrom(data coord.MatrixData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	sorted := data.Clone()
	sorted.SortByRow()

	m.rows, m.cols = data.Rows, data.Cols
	m.values = make([]float64, len(sorted.Entries))
	m.colIdxs = make([]int32, len(sorted.Entries))
	if data.Rows > 0 {
		m.rowPtrs = make([]int32, data.Rows+1)
	} else {
		m.rowPtrs = nil
	}
	for i, e := range sorted.Entries {
		m.values[i] = e.Val
		m.colIdxs[i] = e.Col
		m.rowPtrs[e.Row+1]++
	}
	for i := 1; i < len(m.rowPtrs); i++ {
		m.rowPtrs[i] += m.rowPtrs[i-1]
	}
	m.makeSrow()
	return nil
}

// WriteTo serializes the matrix into the exchange representation, row-major,
// preserving the stored within-row order.
// Complexity: O(nnz).
func (m *Matrix) WriteTo() coord.MatrixData {
	data := coord.MatrixData{Rows: m.rows, Cols: m.cols}
	if len(m.values) > 0 {
		data.Entries = make([]coord.Entry, 0, len(m.values))
		for i := 0; i < m.rows; i++ {
			for p := m.rowPtrs[i]; p < m.rowPtrs[i+1]; p++ {
				data.Entries = append(data.Entries, coord.Entry{
					Row: int32(i), Col: m.colIdxs[p], Val: m.values[p],
				})
			}
		}
	}
	return data
}
