// SPDX-License-Identifier: MIT

// Package coord: the COO matrix container and its kernels.
package coord

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lumerio/sparsela/backend"
)

// Matrix stores an R×C sparse matrix as three parallel arrays of row
// indices, column indices and values, in no particular order unless a
// row-major ingestion produced it.
type Matrix struct {
	ctx        backend.Context
	rows, cols int
	rowIdxs    []int32
	colIdxs    []int32
	values     []float64
}

// New returns an empty COO matrix of the given shape bound to ctx.
// Returns ErrBadShape on negative dimensions.
func New(ctx backend.Context, rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}
	return &Matrix{ctx: ctx, rows: rows, cols: cols}, nil
}

// NewFromArrays adopts externally prepared triplet arrays without copying.
// The three slices must have equal length; indices are not validated here
// (use MatrixData.Validate on the exchange side for that).
func NewFromArrays(ctx backend.Context, rows, cols int, rowIdxs, colIdxs []int32, values []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}
	if len(rowIdxs) != len(values) || len(colIdxs) != len(values) {
		return nil, fmt.Errorf("triplet lengths %d/%d/%d: %w",
			len(rowIdxs), len(colIdxs), len(values), ErrDimensionMismatch)
	}
	return &Matrix{ctx: ctx, rows: rows, cols: cols, rowIdxs: rowIdxs, colIdxs: colIdxs, values: values}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of explicitly stored entries. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.values) }

// Context returns the execution context the matrix is bound to.
func (m *Matrix) Context() backend.Context { return m.ctx }

// RowIdxs exposes the backing row-index array. Callers must not resize it.
func (m *Matrix) RowIdxs() []int32 { return m.rowIdxs }

// ColIdxs exposes the backing column-index array.
func (m *Matrix) ColIdxs() []int32 { return m.colIdxs }

// Values exposes the backing value array.
func (m *Matrix) Values() []float64 { return m.values }

// ReadFrom replaces the matrix contents with data, normalized to row-major
// order (within a row, insertion order of the entry list is preserved).
// Complexity: O(nnz log nnz).
func (m *Matrix) ReadFrom(data MatrixData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	sorted := data.Clone()
	sorted.SortByRow()
	m.rows, m.cols = data.Rows, data.Cols
	m.rowIdxs = make([]int32, len(sorted.Entries))
	m.colIdxs = make([]int32, len(sorted.Entries))
	m.values = make([]float64, len(sorted.Entries))
	for i, e := range sorted.Entries {
		m.rowIdxs[i] = e.Row
		m.colIdxs[i] = e.Col
		m.values[i] = e.Val
	}
	return nil
}

// WriteTo serializes the matrix into the exchange representation in storage
// order. Complexity: O(nnz).
func (m *Matrix) WriteTo() MatrixData {
	data := MatrixData{Rows: m.rows, Cols: m.cols}
	if len(m.values) > 0 {
		data.Entries = make([]Entry, len(m.values))
		for i := range m.values {
			data.Entries[i] = Entry{Row: m.rowIdxs[i], Col: m.colIdxs[i], Val: m.values[i]}
		}
	}
	return data
}

// Apply computes x := A*b. Dimension mismatches fail before any work.
// The scatter walks entries in storage order; output rows may receive
// contributions in any entry order, so it runs on the sequential host path.
// Complexity: O(nnz * cols(b)).
func (m *Matrix) Apply(b, x *mat.Dense) error {
	if err := m.checkApply(b, x); err != nil {
		return err
	}
	x.Zero()
	m.scatter(1, b, x)
	return nil
}

// ApplyAdvanced computes x := alpha*A*b + beta*x.
// Complexity: O(nnz * cols(b) + rows * cols(b)).
func (m *Matrix) ApplyAdvanced(alpha float64, b *mat.Dense, beta float64, x *mat.Dense) error {
	if err := m.checkApply(b, x); err != nil {
		return err
	}
	x.Scale(beta, x)
	m.scatter(alpha, b, x)
	return nil
}

// Apply2 accumulates x += A*b without clearing x first, the building block
// hybrid formats use to apply their COO remainder after the regular part.
func (m *Matrix) Apply2(b, x *mat.Dense) error {
	if err := m.checkApply(b, x); err != nil {
		return err
	}
	m.scatter(1, b, x)
	return nil
}

// scatter adds alpha * A * b into x, entry by entry.
func (m *Matrix) scatter(alpha float64, b, x *mat.Dense) {
	_, k := b.Dims()
	for i := range m.values {
		r, c, v := int(m.rowIdxs[i]), int(m.colIdxs[i]), m.values[i]
		for j := 0; j < k; j++ {
			x.Set(r, j, x.At(r, j)+alpha*v*b.At(c, j))
		}
	}
}

// checkApply validates operand shapes against the matrix.
func (m *Matrix) checkApply(b, x *mat.Dense) error {
	br, bc := b.Dims()
	xr, xc := x.Dims()
	if br != m.cols {
		return fmt.Errorf("b has %d rows, want %d: %w", br, m.cols, ErrDimensionMismatch)
	}
	if xr != m.rows || xc != bc {
		return fmt.Errorf("x is %dx%d, want %dx%d: %w", xr, xc, m.rows, bc, ErrDimensionMismatch)
	}
	return nil
}

// FillDense writes every stored entry into d, which must match the matrix
// shape. Cells without a stored entry are zeroed first.
func (m *Matrix) FillDense(d *mat.Dense) error {
	dr, dc := d.Dims()
	if dr != m.rows || dc != m.cols {
		return fmt.Errorf("dense is %dx%d, want %dx%d: %w", dr, dc, m.rows, m.cols, ErrDimensionMismatch)
	}
	d.Zero()
	for i := range m.values {
		d.Set(int(m.rowIdxs[i]), int(m.colIdxs[i]), m.values[i])
	}
	return nil
}

// ExtractDiagonal returns the main diagonal, length min(rows, cols).
// Entries off the stored pattern read as zero; duplicates accumulate.
func (m *Matrix) ExtractDiagonal() []float64 {
	n := m.rows
	if m.cols < n {
		n = m.cols
	}
	diag := make([]float64, n)
	for i := range m.values {
		if m.rowIdxs[i] == m.colIdxs[i] {
			diag[m.rowIdxs[i]] += m.values[i]
		}
	}
	return diag
}
