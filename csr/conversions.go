// SPDX-License-Identifier: MIT

// Package csr: conversions into the collaborating formats.
//
// ToX leaves the receiver intact; MoveToX additionally empties it
// (ownership-transfer semantics). Cross-context CSR↔CSR transfer is CloneTo
// and MoveTo in csr.go, which also rebuild context-adaptive strategies.
package csr

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/lumerio/sparsela/coord"
	"github.com/lumerio/sparsela/formats"
)

// ToDense expands the matrix into a gonum dense matrix. Returns nil for a
// matrix with zero rows or columns (gonum forbids empty Dense values).
// Complexity: O(rows*cols).
func (m *Matrix) ToDense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for p := m.rowPtrs[i]; p < m.rowPtrs[i+1]; p++ {
			d.Set(i, int(m.colIdxs[p]), m.values[p])
		}
	}
	return d
}

// ToCOO converts into the coordinate format, preserving storage order.
// Complexity: O(nnz).
func (m *Matrix) ToCOO() *coord.Matrix {
	rowIdxs := make([]int32, len(m.values))
	for i := 0; i < m.rows; i++ {
		for p := m.rowPtrs[i]; p < m.rowPtrs[i+1]; p++ {
			rowIdxs[p] = int32(i)
		}
	}
	out, _ := coord.NewFromArrays(m.ctx, m.rows, m.cols,
		rowIdxs,
		append([]int32(nil), m.colIdxs...),
		append([]float64(nil), m.values...))
	return out
}

// MoveToCOO converts into the coordinate format donating the column and
// value buffers, then empties the receiver.
func (m *Matrix) MoveToCOO() *coord.Matrix {
	rowIdxs := make([]int32, len(m.values))
	for i := 0; i < m.rows; i++ {
		for p := m.rowPtrs[i]; p < m.rowPtrs[i+1]; p++ {
			rowIdxs[p] = int32(i)
		}
	}
	out, _ := coord.NewFromArrays(m.ctx, m.rows, m.cols, rowIdxs, m.colIdxs, m.values)
	m.empty()
	return out
}

// ToEll pads every row to the longest row's width.
// Complexity: O(rows * maxRow).
func (m *Matrix) ToEll() *formats.Ell {
	perRow := 0
	for i := 0; i < m.rows; i++ {
		if l := int(m.rowPtrs[i+1] - m.rowPtrs[i]); l > perRow {
			perRow = l
		}
	}
	ell, _ := formats.NewEll(m.ctx, m.rows, m.cols, perRow, 0)
	for i := 0; i < m.rows; i++ {
		j := 0
		for p := m.rowPtrs[i]; p < m.rowPtrs[i+1]; p++ {
			ell.SetEntry(i, j, m.colIdxs[p], m.values[p])
			j++
		}
	}
	return ell
}

// MoveToEll converts as ToEll, then empties the receiver. ELL's padded
// layout cannot adopt CSR buffers, so the move frees rather than donates.
func (m *Matrix) MoveToEll() *formats.Ell {
	out := m.ToEll()
	m.empty()
	return out
}

// DefaultHybridPercent is the row-length percentile splitting a hybrid
// conversion: rows up to the percentile width land in the ELL part, the
// excess spills into the COO remainder.
const DefaultHybridPercent = 80

// ToHybrid splits the matrix at the given row-length percentile (0..100;
// out-of-range values select DefaultHybridPercent).
// Complexity: O(nnz + rows log rows).
func (m *Matrix) ToHybrid(percent int) *formats.Hybrid {
	if percent < 0 || percent > 100 {
		percent = DefaultHybridPercent
	}
	limit := m.rowLengthPercentile(percent)

	ell, _ := formats.NewEll(m.ctx, m.rows, m.cols, limit, 0)
	var cooRows, cooCols []int32
	var cooVals []float64
	for i := 0; i < m.rows; i++ {
		j := 0
		for p := m.rowPtrs[i]; p < m.rowPtrs[i+1]; p++ {
			if j < limit {
				ell.SetEntry(i, j, m.colIdxs[p], m.values[p])
				j++
				continue
			}
			cooRows = append(cooRows, int32(i))
			cooCols = append(cooCols, m.colIdxs[p])
			cooVals = append(cooVals, m.values[p])
		}
	}
	coo, _ := coord.NewFromArrays(m.ctx, m.rows, m.cols, cooRows, cooCols, cooVals)
	hy, _ := formats.NewHybrid(ell, coo)
	return hy
}

// MoveToHybrid converts as ToHybrid, then empties the receiver.
func (m *Matrix) MoveToHybrid(percent int) *formats.Hybrid {
	out := m.ToHybrid(percent)
	m.empty()
	return out
}

// rowLengthPercentile returns the pth percentile of the row lengths.
func (m *Matrix) rowLengthPercentile(p int) int {
	if m.rows == 0 {
		return 0
	}
	lens := make([]int, m.rows)
	for i := 0; i < m.rows; i++ {
		lens[i] = int(m.rowPtrs[i+1] - m.rowPtrs[i])
	}
	sort.Ints(lens)
	idx := p * (m.rows - 1) / 100
	return lens[idx]
}

// ToSellp slices rows into groups of formats.DefaultSliceSize and pads each
// slice to its own longest row, aligned to the stride factor.
// Complexity: O(nnz + rows).
func (m *Matrix) ToSellp() *formats.Sellp {
	sp, _ := formats.NewSellp(m.ctx, m.rows, m.cols, formats.DefaultSliceSize, formats.DefaultStrideFactor)
	size := sp.SliceSize()
	factor := sp.StrideFactor()
	slices := (m.rows + size - 1) / size

	sliceLengths := make([]int32, slices)
	sliceSets := make([]int32, slices+1)
	for s := 0; s < slices; s++ {
		maxLen := 0
		for r := s * size; r < (s+1)*size && r < m.rows; r++ {
			if l := int(m.rowPtrs[r+1] - m.rowPtrs[r]); l > maxLen {
				maxLen = l
			}
		}
		// Align the pad width up to the stride factor.
		padded := (maxLen + factor - 1) / factor * factor
		sliceLengths[s] = int32(padded)
		sliceSets[s+1] = sliceSets[s] + int32(padded)
	}
	total := int(sliceSets[slices]) * size
	colIdxs := make([]int32, total)
	values := make([]float64, total)
	for s := 0; s < slices; s++ {
		base := int(sliceSets[s])
		for r := s * size; r < (s+1)*size && r < m.rows; r++ {
			j := 0
			for p := m.rowPtrs[r]; p < m.rowPtrs[r+1]; p++ {
				idx := (base+j)*size + (r - s*size)
				colIdxs[idx] = m.colIdxs[p]
				values[idx] = m.values[p]
				j++
			}
		}
	}
	sp.Install(sliceSets, sliceLengths, colIdxs, values)
	return sp
}

// MoveToSellp converts as ToSellp, then empties the receiver.
func (m *Matrix) MoveToSellp() *formats.Sellp {
	out := m.ToSellp()
	m.empty()
	return out
}

// ToSparsity strips the values, keeping only the pattern with a shared
// coefficient of one. Complexity: O(nnz).
func (m *Matrix) ToSparsity() *formats.Sparsity {
	out, _ := formats.NewSparsity(m.ctx, m.rows, m.cols,
		append([]int32(nil), m.rowPtrs...),
		append([]int32(nil), m.colIdxs...), 1)
	return out
}

// MoveToSparsity converts donating the pattern buffers, then empties the
// receiver.
func (m *Matrix) MoveToSparsity() *formats.Sparsity {
	out, _ := formats.NewSparsity(m.ctx, m.rows, m.cols, m.rowPtrs, m.colIdxs, 1)
	m.empty()
	return out
}
