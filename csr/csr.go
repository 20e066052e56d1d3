// SPDX-License-Identifier: MIT

// Package csr: the Matrix container, constructors and lifecycle.
package csr

import (
	"fmt"

	"github.com/lumerio/sparsela/backend"
	"github.com/lumerio/sparsela/strategy"
)

// Matrix is an R×C sparse matrix in compressed-sparse-row storage, bound to
// one execution context and one row-partition strategy.
//
// Invariants (enforced by every mutating operation):
//   - len(values) == len(colIdxs) == NNZ,
//   - len(rowPtrs) == rows+1 with rowPtrs[0]==0 and rowPtrs[rows]==NNZ,
//     or len(rowPtrs) == 0 when rows == 0,
//   - srow is the bound strategy's table for the current row pointers.
//
// Column indices within a row keep ingestion order until SortByColumnIndex
// is invoked; algorithms that require canonical order must check
// IsSortedByColumnIndex first.
type Matrix struct {
	ctx        backend.Context
	rows, cols int
	values     []float64
	colIdxs    []int32
	rowPtrs    []int32
	srow       []int32
	strat      strategy.Strategy
}

// New allocates an uninitialized rows×cols matrix with room for nnz stored
// entries, bound to ctx and strat. Buffers are zeroed (Go allocation), srow
// is sized for nnz but not processed: the matrix holds no meaningful row
// pointers yet; ReadFrom or direct buffer population plus SetStrategy
// establishes them.
// Complexity: O(nnz + rows).
func New(ctx backend.Context, rows, cols, nnz int, strat strategy.Strategy) (*Matrix, error) {
	if strat == nil {
		return nil, ErrNilStrategy
	}
	if rows < 0 || cols < 0 || nnz < 0 {
		return nil, fmt.Errorf("%dx%d nnz %d: %w", rows, cols, nnz, ErrBadShape)
	}
	m := &Matrix{
		ctx:     ctx,
		rows:    rows,
		cols:    cols,
		values:  make([]float64, nnz),
		colIdxs: make([]int32, nnz),
		srow:    make([]int32, strat.SrowSize(int64(nnz))),
		strat:   strat,
	}
	// Avoid the zero-length allocation for an empty matrix.
	if rows > 0 {
		m.rowPtrs = make([]int32, rows+1)
	}
	return m, nil
}

// NewFromArrays adopts externally prepared CSR buffers without copying, then
// computes srow. Buffer sizes are validated against the declared shape:
// colIdxs must cover values and rowPtrs must cover every row boundary;
// undersized buffers fail with ErrOutOfRange before anything is touched.
func NewFromArrays(ctx backend.Context, rows, cols int, values []float64, colIdxs, rowPtrs []int32, strat strategy.Strategy) (*Matrix, error) {
	if strat == nil {
		return nil, ErrNilStrategy
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}
	if len(colIdxs) < len(values) {
		return nil, fmt.Errorf("colIdxs %d < values %d: %w", len(colIdxs), len(values), ErrOutOfRange)
	}
	if rows > 0 && len(rowPtrs) < rows+1 {
		return nil, fmt.Errorf("rowPtrs %d < rows+1 %d: %w", len(rowPtrs), rows+1, ErrOutOfRange)
	}
	m := &Matrix{
		ctx: ctx, rows: rows, cols: cols,
		values: values, colIdxs: colIdxs, rowPtrs: rowPtrs,
		strat: strat,
	}
	m.makeSrow()
	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of explicitly stored entries. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.values) }

// Values exposes the backing value array. Mutating coefficients in place is
// allowed; resizing or reordering breaks the container's invariants.
func (m *Matrix) Values() []float64 { return m.values }

// ColIdxs exposes the backing column-index array.
func (m *Matrix) ColIdxs() []int32 { return m.colIdxs }

// RowPtrs exposes the backing row-pointer array. Callers who rewrite row
// pointers must re-run SetStrategy (or ReadFrom) so srow stays consistent.
func (m *Matrix) RowPtrs() []int32 { return m.rowPtrs }

// Srow exposes the per-lane starting-row table (read-only by convention).
func (m *Matrix) Srow() []int32 { return m.srow }

// SrowLen returns the number of srow entries (involved warps).
func (m *Matrix) SrowLen() int { return len(m.srow) }

// Strategy returns the bound row-partition strategy (shared ownership).
func (m *Matrix) Strategy() strategy.Strategy { return m.strat }

// Context returns the execution context the matrix is bound to.
func (m *Matrix) Context() backend.Context { return m.ctx }

// SetStrategy binds a new strategy and recomputes srow, the only mutable
// mode of a Matrix. Complexity: O(rows + srow).
func (m *Matrix) SetStrategy(strat strategy.Strategy) error {
	if strat == nil {
		return ErrNilStrategy
	}
	m.strat = strat
	m.makeSrow()
	return nil
}

// makeSrow resizes and refills srow for the current row pointers. It must
// run after any change to rowPtrs or the value count.
func (m *Matrix) makeSrow() {
	m.srow = make([]int32, m.strat.SrowSize(int64(len(m.values))))
	strategy.ProcessOn(m.strat, m.ctx, m.rowPtrs, m.srow)
}

// Clone returns a deep copy bound to the same context, sharing the strategy
// configuration. Complexity: O(nnz + rows).
func (m *Matrix) Clone() *Matrix {
	return m.CloneTo(m.ctx)
}

// CloneTo returns a deep copy bound to ctx. When the destination context
// differs, the strategy is rebuilt for it (load_balance and automatical
// adopt the destination's warp geometry, vendor-backed strategies retag to
// the destination's vendor) and srow is recomputed there; a same-context
// clone shares the strategy and copies srow as-is.
func (m *Matrix) CloneTo(ctx backend.Context) *Matrix {
	out := &Matrix{
		ctx:     ctx,
		rows:    m.rows,
		cols:    m.cols,
		values:  append([]float64(nil), m.values...),
		colIdxs: append([]int32(nil), m.colIdxs...),
		strat:   m.strat,
	}
	if m.rowPtrs != nil {
		out.rowPtrs = append([]int32(nil), m.rowPtrs...)
	}
	if ctx == m.ctx {
		out.srow = append([]int32(nil), m.srow...)
		return out
	}
	out.strat = m.strat.Rebind(ctx)
	out.makeSrow()
	return out
}

// MoveTo transfers ownership of the buffers into dst, which keeps its own
// context, and empties the receiver. Cross-context moves rebuild the
// strategy exactly like CloneTo.
func (m *Matrix) MoveTo(dst *Matrix) {
	sameCtx := dst.ctx == m.ctx
	dst.rows, dst.cols = m.rows, m.cols
	dst.values, dst.colIdxs, dst.rowPtrs = m.values, m.colIdxs, m.rowPtrs
	if sameCtx {
		dst.strat = m.strat
		dst.srow = m.srow
	} else {
		dst.strat = m.strat.Rebind(dst.ctx)
		dst.makeSrow()
	}
	m.empty()
}

// empty releases the receiver's buffers after an ownership transfer.
func (m *Matrix) empty() {
	m.rows, m.cols = 0, 0
	m.values, m.colIdxs, m.rowPtrs, m.srow = nil, nil, nil, nil
}
