// SPDX-License-Identifier: MIT

// Package csr: the SpMV/SpMM kernels.
//
// Apply dispatches on the strategy's concrete kind:
//
//   - classical     — rows are chunked evenly across workers; every worker
//     owns whole rows, so outputs never conflict.
//   - load_balance  — each warp owns an equal, contiguous share of the
//     nonzeros; the srow table seeds the starting-row lookup.
//     Rows cut by a share boundary are accumulated privately
//     per warp and combined in a sequential fixup, keeping
//     the parallel phase write-disjoint and the floating-
//     point reduction order deterministic for a fixed warp
//     count.
//   - merge_path    — each lane owns an equal share of the row-end/nonzero
//     merge path, with the same boundary fixup. Empty rows
//     are row-end path items, so they are finalized by
//     exactly one lane with no special casing.
//
// srow entries are treated as hints and locally corrected before use:
// a stale table (strategy built for a different context) degrades balance
// but can never produce wrong results on the host backends.
package csr

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lumerio/sparsela/backend"
	"github.com/lumerio/sparsela/strategy"
)

// Apply computes x := A*b (SpMV, or SpMM when the operands carry several
// columns). Shape rules: b is cols×k, x is rows×k. Fails with
// ErrDimensionMismatch before any dispatch on non-conforming operands.
func (m *Matrix) Apply(b, x *mat.Dense) error {
	return m.applyImpl(1, b, 0, x)
}

// ApplyAdvanced computes x := alpha*A*b + beta*x with the same shape rules.
// beta == 0 overwrites x without reading it.
func (m *Matrix) ApplyAdvanced(alpha float64, b *mat.Dense, beta float64, x *mat.Dense) error {
	return m.applyImpl(alpha, b, beta, x)
}

func (m *Matrix) applyImpl(alpha float64, b *mat.Dense, beta float64, x *mat.Dense) error {
	if b == nil || x == nil {
		return ErrNilOperand
	}
	br, bc := b.Dims()
	xr, xc := x.Dims()
	if br != m.cols {
		return fmt.Errorf("b has %d rows, want %d: %w", br, m.cols, ErrDimensionMismatch)
	}
	if xr != m.rows || xc != bc {
		return fmt.Errorf("x is %dx%d, want %dx%d: %w", xr, xc, m.rows, bc, ErrDimensionMismatch)
	}
	if m.rows == 0 || bc == 0 {
		return nil
	}
	switch m.strat.Concrete() {
	case strategy.KindLoadBalance:
		if len(m.srow) > 0 {
			m.spmvLoadBalance(alpha, b, beta, x)
			return nil
		}
	case strategy.KindMergePath:
		if len(m.srow) > 0 {
			m.spmvMergePath(alpha, b, beta, x)
			return nil
		}
	}
	// classical and sparselib share the row-parallel host kernel; an empty
	// srow table for the warp strategies degenerates here too.
	m.spmvClassical(alpha, b, beta, x)
	return nil
}

// writeRow stores one finished row: x[row] = alpha*acc + beta*x[row].
func writeRow(x *mat.Dense, row int, alpha float64, acc []float64, beta float64) {
	if beta == 0 {
		for q, a := range acc {
			x.Set(row, q, alpha*a)
		}
		return
	}
	for q, a := range acc {
		x.Set(row, q, alpha*a+beta*x.At(row, q))
	}
}

// spmvClassical chunks rows evenly across the context's workers.
// Complexity: O(nnz * k) work, perfectly parallel over rows.
func (m *Matrix) spmvClassical(alpha float64, b *mat.Dense, beta float64, x *mat.Dense) {
	_, k := b.Dims()
	backend.Run(m.ctx, m.rows, func(lo, hi int) {
		acc := make([]float64, k)
		for i := lo; i < hi; i++ {
			for q := range acc {
				acc[q] = 0
			}
			for p := m.rowPtrs[i]; p < m.rowPtrs[i+1]; p++ {
				v := m.values[p]
				c := int(m.colIdxs[p])
				for q := 0; q < k; q++ {
					acc[q] += v * b.At(c, q)
				}
			}
			writeRow(x, i, alpha, acc, beta)
		}
	})
}

// partialRow is one warp's private contribution to a share-boundary row.
type partialRow struct {
	row int // -1 when unused
	acc []float64
}

// commitPartials folds boundary-row contributions into x in warp order.
// Rows arrive non-decreasing, so merging adjacent records is enough; each
// boundary row is finalized exactly once.
func commitPartials(x *mat.Dense, parts []partialRow, alpha, beta float64) {
	i := 0
	for i < len(parts) {
		if parts[i].row < 0 {
			i++
			continue
		}
		row, acc := parts[i].row, parts[i].acc
		j := i + 1
		for j < len(parts) {
			if parts[j].row < 0 {
				j++
				continue
			}
			if parts[j].row != row {
				break
			}
			for q := range acc {
				acc[q] += parts[j].acc[q]
			}
			j++
		}
		writeRow(x, row, alpha, acc, beta)
		i = j
	}
}

// spmvLoadBalance gives each warp an equal contiguous nonzero share, using
// srow to seed the starting-row search. Whole rows inside a share are
// written directly; cut rows go through commitPartials. Rows with no stored
// entries are finalized by a separate row-parallel pass, since no nonzero
// share ever visits them.
func (m *Matrix) spmvLoadBalance(alpha float64, b *mat.Dense, beta float64, x *mat.Dense) {
	_, k := b.Dims()
	nnz := len(m.values)
	warps := len(m.srow)
	chunk := (nnz + warps - 1) / warps

	// Empty rows first: x[i] = beta*x[i].
	backend.Run(m.ctx, m.rows, func(lo, hi int) {
		zero := make([]float64, k)
		for i := lo; i < hi; i++ {
			if m.rowPtrs[i] == m.rowPtrs[i+1] {
				writeRow(x, i, alpha, zero, beta)
			}
		}
	})

	// Two partial slots per warp: the cut row at each end of its share.
	parts := make([]partialRow, 2*warps)
	backend.RunLanes(m.ctx, warps, func(w int) {
		head := &parts[2*w]
		tail := &parts[2*w+1]
		head.row, tail.row = -1, -1

		lo := w * chunk
		hi := lo + chunk
		if hi > nnz {
			hi = nnz
		}
		if lo >= hi {
			return
		}
		// srow seeds the search; correct locally so a stale table can only
		// cost time, never correctness.
		r := int(m.srow[w])
		if r > m.rows {
			r = m.rows
		}
		for r > 0 && int(m.rowPtrs[r]) > lo {
			r--
		}
		for r < m.rows && int(m.rowPtrs[r+1]) <= lo {
			r++
		}

		acc := make([]float64, k)
		p := lo
		for p < hi {
			segEnd := int(m.rowPtrs[r+1])
			if segEnd > hi {
				segEnd = hi
			}
			for q := range acc {
				acc[q] = 0
			}
			for ; p < segEnd; p++ {
				v := m.values[p]
				c := int(m.colIdxs[p])
				for q := 0; q < k; q++ {
					acc[q] += v * b.At(c, q)
				}
			}
			whole := int(m.rowPtrs[r]) >= lo && int(m.rowPtrs[r+1]) <= hi
			if whole {
				writeRow(x, r, alpha, acc, beta)
			} else if head.row < 0 {
				head.row = r
				head.acc = append([]float64(nil), acc...)
			} else {
				tail.row = r
				tail.acc = append([]float64(nil), acc...)
			}
			if p < hi {
				for int(m.rowPtrs[r+1]) <= p {
					r++
				}
			}
		}
	})
	commitPartials(x, parts, alpha, beta)
}

// spmvMergePath walks equal shares of the row-end/nonzero merge path. Lane
// k's share starts at cross diagonal k*share; srow holds the starting row,
// locally corrected like the load-balance kernel.
func (m *Matrix) spmvMergePath(alpha float64, b *mat.Dense, beta float64, x *mat.Dense) {
	_, k := b.Dims()
	nnz := len(m.values)
	lanes := len(m.srow)
	work := m.rows + nnz
	share := (work + lanes - 1) / lanes

	parts := make([]partialRow, 2*lanes)
	backend.RunLanes(m.ctx, lanes, func(l int) {
		head := &parts[2*l]
		tail := &parts[2*l+1]
		head.row, tail.row = -1, -1

		diag := l * share
		diagEnd := diag + share
		if diagEnd > work {
			diagEnd = work
		}
		if diag >= diagEnd {
			return
		}
		// Correct the seeded row coordinate: largest r with
		// r + rowPtrs[r] <= diag.
		r := int(m.srow[l])
		if r > m.rows {
			r = m.rows
		}
		for r > 0 && r+int(m.rowPtrs[r]) > diag {
			r--
		}
		for r < m.rows && (r+1)+int(m.rowPtrs[r+1]) <= diag {
			r++
		}
		p := diag - r

		acc := make([]float64, k)
		rowStart := p // first nonzero of row r this lane sees
		for step := diag; step < diagEnd; step++ {
			if r < m.rows && p < int(m.rowPtrs[r+1]) {
				// Consume nonzero p into the running row.
				v := m.values[p]
				c := int(m.colIdxs[p])
				for q := 0; q < k; q++ {
					acc[q] += v * b.At(c, q)
				}
				p++
				continue
			}
			// Consume the row-end item: row r is finished.
			if rowStart == int(m.rowPtrs[r]) {
				writeRow(x, r, alpha, acc, beta)
			} else if head.row < 0 {
				head.row = r
				head.acc = append([]float64(nil), acc...)
			} else {
				tail.row = r
				tail.acc = append([]float64(nil), acc...)
			}
			r++
			for q := range acc {
				acc[q] = 0
			}
			rowStart = p
		}
		// The share ended mid-row: hand the remainder to the fixup.
		if r < m.rows && p > rowStart {
			rec := tail
			if head.row < 0 {
				rec = head
			}
			rec.row = r
			rec.acc = append([]float64(nil), acc...)
		}
	})
	commitPartials(x, parts, alpha, beta)
}
