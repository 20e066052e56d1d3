// SPDX-License-Identifier: MIT

// Package formats: Hybrid storage.
package formats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lumerio/sparsela/coord"
)

// Hybrid pairs an ELL part holding the regular leading entries of every row
// with a COO remainder for whatever exceeded the ELL pad width. The split
// width is chosen by the converting format (csr uses a row-length
// percentile); Hybrid itself just composes the two halves.
type Hybrid struct {
	ell *Ell
	coo *coord.Matrix
}

// NewHybrid composes the two halves, which must agree on shape.
func NewHybrid(ell *Ell, coo *coord.Matrix) (*Hybrid, error) {
	if ell.Rows() != coo.Rows() || ell.Cols() != coo.Cols() {
		return nil, fmt.Errorf("ell %dx%d vs coo %dx%d: %w",
			ell.Rows(), ell.Cols(), coo.Rows(), coo.Cols(), ErrDimensionMismatch)
	}
	return &Hybrid{ell: ell, coo: coo}, nil
}

// Rows returns the row count.
func (h *Hybrid) Rows() int { return h.ell.Rows() }

// Cols returns the column count.
func (h *Hybrid) Cols() int { return h.ell.Cols() }

// Ell returns the regular half.
func (h *Hybrid) Ell() *Ell { return h.ell }

// Coo returns the irregular remainder.
func (h *Hybrid) Coo() *coord.Matrix { return h.coo }

// NNZ returns the total stored entries across both halves.
func (h *Hybrid) NNZ() int {
	n := h.coo.NNZ()
	for i := 0; i < h.ell.Rows(); i++ {
		for j := 0; j < h.ell.PerRow(); j++ {
			if h.ell.ValAt(i, j) != 0 {
				n++
			}
		}
	}
	return n
}

// Apply computes x := A*b: the ELL half overwrites x, the COO remainder
// accumulates on top.
func (h *Hybrid) Apply(b, x *mat.Dense) error {
	if err := h.ell.Apply(b, x); err != nil {
		return err
	}
	return h.coo.Apply2(b, x)
}

// WriteTo serializes both halves row-major.
func (h *Hybrid) WriteTo() coord.MatrixData {
	data := h.ell.WriteTo()
	rest := h.coo.WriteTo()
	data.Entries = append(data.Entries, rest.Entries...)
	data.SortByRow()
	return data
}
