// SPDX-License-Identifier: MIT

// Package formats: ELL storage.
//
// ELL pads every row to the same width and stores the padded matrix
// column-major (entry j of row i lives at j*stride+i), which is what lets a
// warp read one padded column per step with perfectly coalesced accesses.
// Padding entries carry column 0 and value 0, so kernels may process them
// unconditionally.
package formats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lumerio/sparsela/backend"
	"github.com/lumerio/sparsela/coord"
)

// Ell is the padded fixed-width-per-row format.
type Ell struct {
	ctx        backend.Context
	rows, cols int
	perRow     int // padded entries per row
	stride     int // distance between consecutive padded columns (>= rows)
	colIdxs    []int32
	values     []float64
}

// NewEll returns a zero-initialized ELL container with perRow padded entries
// per row and the given stride (stride <= 0 selects rows).
// Returns ErrBadShape on negative dimensions or stride < rows.
func NewEll(ctx backend.Context, rows, cols, perRow, stride int) (*Ell, error) {
	if rows < 0 || cols < 0 || perRow < 0 {
		return nil, fmt.Errorf("%dx%d per-row %d: %w", rows, cols, perRow, ErrBadShape)
	}
	if stride <= 0 {
		stride = rows
	}
	if stride < rows {
		return nil, fmt.Errorf("stride %d < rows %d: %w", stride, rows, ErrBadShape)
	}
	return &Ell{
		ctx: ctx, rows: rows, cols: cols, perRow: perRow, stride: stride,
		colIdxs: make([]int32, perRow*stride),
		values:  make([]float64, perRow*stride),
	}, nil
}

// Rows returns the row count.
func (e *Ell) Rows() int { return e.rows }

// Cols returns the column count.
func (e *Ell) Cols() int { return e.cols }

// PerRow returns the padded entries stored per row.
func (e *Ell) PerRow() int { return e.perRow }

// Stride returns the column-major stride.
func (e *Ell) Stride() int { return e.stride }

// Context returns the execution context the container is bound to.
func (e *Ell) Context() backend.Context { return e.ctx }

// SetEntry stores (col, val) as padded entry j of row i. Padding slots keep
// their zero value. No bounds checks: conversion kernels own the layout.
func (e *Ell) SetEntry(i, j int, col int32, val float64) {
	e.colIdxs[j*e.stride+i] = col
	e.values[j*e.stride+i] = val
}

// ColAt returns the column index of padded entry j of row i.
func (e *Ell) ColAt(i, j int) int32 { return e.colIdxs[j*e.stride+i] }

// ValAt returns the value of padded entry j of row i.
func (e *Ell) ValAt(i, j int) float64 { return e.values[j*e.stride+i] }

// Apply computes x := A*b, walking one padded column per step.
// Complexity: O(rows * perRow * cols(b)).
func (e *Ell) Apply(b, x *mat.Dense) error {
	br, bc := b.Dims()
	xr, xc := x.Dims()
	if br != e.cols {
		return fmt.Errorf("b has %d rows, want %d: %w", br, e.cols, ErrDimensionMismatch)
	}
	if xr != e.rows || xc != bc {
		return fmt.Errorf("x is %dx%d, want %dx%d: %w", xr, xc, e.rows, bc, ErrDimensionMismatch)
	}
	x.Zero()
	for j := 0; j < e.perRow; j++ {
		for i := 0; i < e.rows; i++ {
			v := e.values[j*e.stride+i]
			if v == 0 {
				continue // padding (or an explicit zero; either way no-op)
			}
			c := int(e.colIdxs[j*e.stride+i])
			for q := 0; q < bc; q++ {
				x.Set(i, q, x.At(i, q)+v*b.At(c, q))
			}
		}
	}
	return nil
}

// WriteTo serializes the stored entries (padding skipped) row-major.
func (e *Ell) WriteTo() coord.MatrixData {
	data := coord.MatrixData{Rows: e.rows, Cols: e.cols}
	for i := 0; i < e.rows; i++ {
		for j := 0; j < e.perRow; j++ {
			if v := e.values[j*e.stride+i]; v != 0 {
				data.Entries = append(data.Entries, coord.Entry{
					Row: int32(i), Col: e.colIdxs[j*e.stride+i], Val: v,
				})
			}
		}
	}
	return data
}
