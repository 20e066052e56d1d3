// SPDX-License-Identifier: MIT

// Package formats: Sparsity (pattern-only) storage.
package formats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lumerio/sparsela/backend"
	"github.com/lumerio/sparsela/coord"
)

// Sparsity stores a CSR pattern without per-entry values: every stored
// position carries the one shared coefficient (1 unless overridden).
// Preconditioner setup and structural analyses consume this format.
type Sparsity struct {
	ctx        backend.Context
	rows, cols int
	rowPtrs    []int32
	colIdxs    []int32
	value      float64
}

// NewSparsity adopts a CSR pattern. value is the shared coefficient; the
// conventional pattern matrix uses 1.
func NewSparsity(ctx backend.Context, rows, cols int, rowPtrs, colIdxs []int32, value float64) (*Sparsity, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}
	return &Sparsity{ctx: ctx, rows: rows, cols: cols, rowPtrs: rowPtrs, colIdxs: colIdxs, value: value}, nil
}

// Rows returns the row count.
func (s *Sparsity) Rows() int { return s.rows }

// Cols returns the column count.
func (s *Sparsity) Cols() int { return s.cols }

// NNZ returns the number of stored positions.
func (s *Sparsity) NNZ() int { return len(s.colIdxs) }

// Value returns the shared coefficient.
func (s *Sparsity) Value() float64 { return s.value }

// RowPtrs exposes the pattern's row pointers.
func (s *Sparsity) RowPtrs() []int32 { return s.rowPtrs }

// ColIdxs exposes the pattern's column indices.
func (s *Sparsity) ColIdxs() []int32 { return s.colIdxs }

// Context returns the execution context the container is bound to.
func (s *Sparsity) Context() backend.Context { return s.ctx }

// Apply computes x := A*b with every stored position weighing Value.
func (s *Sparsity) Apply(b, x *mat.Dense) error {
	br, bc := b.Dims()
	xr, xc := x.Dims()
	if br != s.cols {
		return fmt.Errorf("b has %d rows, want %d: %w", br, s.cols, ErrDimensionMismatch)
	}
	if xr != s.rows || xc != bc {
		return fmt.Errorf("x is %dx%d, want %dx%d: %w", xr, xc, s.rows, bc, ErrDimensionMismatch)
	}
	for i := 0; i < s.rows; i++ {
		for q := 0; q < bc; q++ {
			acc := 0.0
			for p := s.rowPtrs[i]; p < s.rowPtrs[i+1]; p++ {
				acc += b.At(int(s.colIdxs[p]), q)
			}
			x.Set(i, q, s.value*acc)
		}
	}
	return nil
}

// WriteTo serializes the pattern row-major, every entry carrying Value.
func (s *Sparsity) WriteTo() coord.MatrixData {
	data := coord.MatrixData{Rows: s.rows, Cols: s.cols}
	for i := 0; i < s.rows; i++ {
		for p := s.rowPtrs[i]; p < s.rowPtrs[i+1]; p++ {
			data.Entries = append(data.Entries, coord.Entry{Row: int32(i), Col: s.colIdxs[p], Val: s.value})
		}
	}
	return data
}
