// SPDX-License-Identifier: MIT

// Package csr: canonical within-row ordering.
package csr

import "sort"

// rowView sorts one row's (column index, value) pairs together, the pair
// view that a zip of the two parallel arrays would give.
type rowView struct {
	cols []int32
	vals []float64
}

func (r rowView) Len() int           { return len(r.cols) }
func (r rowView) Less(i, j int) bool { return r.cols[i] < r.cols[j] }
func (r rowView) Swap(i, j int) {
	r.cols[i], r.cols[j] = r.cols[j], r.cols[i]
	r.vals[i], r.vals[j] = r.vals[j], r.vals[i]
}

// SortByColumnIndex reorders every row's (column index, value) pairs into
// ascending column order, in place and stably, establishing the canonical
// form several kernels and equality checks assume. Idempotent.
// Complexity: O(nnz log maxRow).
func (m *Matrix) SortByColumnIndex() {
	// Stability matters only for duplicate column indices, which round-trip
	// ingestion preserves; sort.Stable keeps their insertion order.
	for i := 0; i < m.rows; i++ {
		lo, hi := m.rowPtrs[i], m.rowPtrs[i+1]
		sort.Stable(rowView{cols: m.colIdxs[lo:hi], vals: m.values[lo:hi]})
	}
}

// IsSortedByColumnIndex reports whether every row's column indices are
// already ascending. Read-only. Complexity: O(nnz).
func (m *Matrix) IsSortedByColumnIndex() bool {
	for i := 0; i < m.rows; i++ {
		for p := m.rowPtrs[i] + 1; p < m.rowPtrs[i+1]; p++ {
			if m.colIdxs[p-1] > m.colIdxs[p] {
				return false
			}
		}
	}
	return true
}
