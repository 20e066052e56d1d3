// SPDX-License-Identifier: MIT

// Package formats: SELL-P storage.
//
// SELL-P groups rows into fixed-size slices and pads only within a slice, so
// a short-row region of the matrix does not pay for one distant heavy row.
// Per slice s, entry j of slice-row r lives at
//
//	(sliceSets[s] + j) * sliceSize + r
//
// where sliceSets holds the prefix-summed per-slice pad widths.
package formats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/lumerio/sparsela/backend"
	"github.com/lumerio/sparsela/coord"
)

// DefaultSliceSize is the rows-per-slice grouping used by conversions.
// DefaultStrideFactor keeps per-slice pad widths unaligned (factor one).
const (
	DefaultSliceSize    = 64
	DefaultStrideFactor = 1
)

// Sellp is the sliced-ELL format with padded, aligned slices.
type Sellp struct {
	ctx          backend.Context
	rows, cols   int
	sliceSize    int
	strideFactor int
	sliceSets    []int32 // prefix-summed pad widths, len = slices+1
	sliceLengths []int32 // pad width of each slice, len = slices
	colIdxs      []int32
	values       []float64
}

// NewSellp returns an empty SELL-P container; slice geometry and payload are
// installed by the csr conversion kernel through Install.
func NewSellp(ctx backend.Context, rows, cols, sliceSize, strideFactor int) (*Sellp, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}
	if sliceSize <= 0 {
		sliceSize = DefaultSliceSize
	}
	if strideFactor <= 0 {
		strideFactor = DefaultStrideFactor
	}
	return &Sellp{ctx: ctx, rows: rows, cols: cols, sliceSize: sliceSize, strideFactor: strideFactor}, nil
}

// Install adopts the slice geometry and payload arrays computed by a
// conversion: sliceLengths per slice, their prefix sum in sliceSets, and the
// slice-major colIdxs/values arrays of length sliceSets[last]*sliceSize.
func (s *Sellp) Install(sliceSets, sliceLengths, colIdxs []int32, values []float64) {
	s.sliceSets = sliceSets
	s.sliceLengths = sliceLengths
	s.colIdxs = colIdxs
	s.values = values
}

// Rows returns the row count.
func (s *Sellp) Rows() int { return s.rows }

// Cols returns the column count.
func (s *Sellp) Cols() int { return s.cols }

// SliceSize returns the rows-per-slice grouping.
func (s *Sellp) SliceSize() int { return s.sliceSize }

// StrideFactor returns the pad-width alignment factor.
func (s *Sellp) StrideFactor() int { return s.strideFactor }

// Slices returns the slice count.
func (s *Sellp) Slices() int { return len(s.sliceLengths) }

// SliceLength returns the pad width of slice i.
func (s *Sellp) SliceLength(i int) int32 { return s.sliceLengths[i] }

// Context returns the execution context the container is bound to.
func (s *Sellp) Context() backend.Context { return s.ctx }

// Apply computes x := A*b slice by slice.
// Complexity: O(sum(sliceLengths)*sliceSize*cols(b)).
func (s *Sellp) Apply(b, x *mat.Dense) error {
	br, bc := b.Dims()
	xr, xc := x.Dims()
	if br != s.cols {
		return fmt.Errorf("b has %d rows, want %d: %w", br, s.cols, ErrDimensionMismatch)
	}
	if xr != s.rows || xc != bc {
		return fmt.Errorf("x is %dx%d, want %dx%d: %w", xr, xc, s.rows, bc, ErrDimensionMismatch)
	}
	x.Zero()
	for sl := range s.sliceLengths {
		base := int(s.sliceSets[sl])
		for j := 0; j < int(s.sliceLengths[sl]); j++ {
			for r := 0; r < s.sliceSize; r++ {
				row := sl*s.sliceSize + r
				if row >= s.rows {
					break
				}
				idx := (base+j)*s.sliceSize + r
				v := s.values[idx]
				if v == 0 {
					continue
				}
				c := int(s.colIdxs[idx])
				for q := 0; q < bc; q++ {
					x.Set(row, q, x.At(row, q)+v*b.At(c, q))
				}
			}
		}
	}
	return nil
}

// WriteTo serializes the stored entries (padding skipped) row-major.
func (s *Sellp) WriteTo() coord.MatrixData {
	data := coord.MatrixData{Rows: s.rows, Cols: s.cols}
	for sl := range s.sliceLengths {
		base := int(s.sliceSets[sl])
		for r := 0; r < s.sliceSize; r++ {
			row := sl*s.sliceSize + r
			if row >= s.rows {
				break
			}
			for j := 0; j < int(s.sliceLengths[sl]); j++ {
				idx := (base+j)*s.sliceSize + r
				if v := s.values[idx]; v != 0 {
					data.Entries = append(data.Entries, coord.Entry{
						Row: int32(row), Col: s.colIdxs[idx], Val: v,
					})
				}
			}
		}
	}
	return data
}
