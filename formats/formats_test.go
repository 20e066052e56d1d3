// SPDX-License-Identifier: MIT

package formats_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/lumerio/sparsela/backend"
	"github.com/lumerio/sparsela/coord"
	"github.com/lumerio/sparsela/formats"
)

// ellFixture builds a 3x4 ELL matrix padded to two entries per row:
//
//	| 1 0 2 0 |
//	| 0 0 0 0 |
//	| 0 3 0 4 |
func ellFixture(t *testing.T) *formats.Ell {
	t.Helper()
	e, err := formats.NewEll(backend.NewReference(), 3, 4, 2, 0)
	require.NoError(t, err)
	e.SetEntry(0, 0, 0, 1)
	e.SetEntry(0, 1, 2, 2)
	e.SetEntry(2, 0, 1, 3)
	e.SetEntry(2, 1, 3, 4)
	return e
}

func TestEll_ShapeAndLayout(t *testing.T) {
	e := ellFixture(t)

	require.Equal(t, 3, e.Rows())
	require.Equal(t, 4, e.Cols())
	require.Equal(t, 2, e.PerRow())
	require.Equal(t, 3, e.Stride()) // defaults to rows

	require.Equal(t, int32(2), e.ColAt(0, 1))
	require.Equal(t, float64(4), e.ValAt(2, 1))
}

func TestEll_RejectsBadShape(t *testing.T) {
	_, err := formats.NewEll(backend.NewReference(), -1, 4, 2, 0)
	require.ErrorIs(t, err, formats.ErrBadShape)

	// Explicit stride below the row count cannot hold a padded column.
	_, err = formats.NewEll(backend.NewReference(), 4, 4, 2, 2)
	require.ErrorIs(t, err, formats.ErrBadShape)
}

func TestEll_Apply(t *testing.T) {
	e := ellFixture(t)

	b := mat.NewDense(4, 1, []float64{1, 1, 1, 1})
	x := mat.NewDense(3, 1, nil)
	require.NoError(t, e.Apply(b, x))
	require.Equal(t, []float64{3, 0, 7}, x.RawMatrix().Data)

	// Dimension checks reject a misshapen operand.
	require.ErrorIs(t, e.Apply(mat.NewDense(3, 1, nil), x), formats.ErrDimensionMismatch)
	require.ErrorIs(t, e.Apply(b, mat.NewDense(2, 1, nil)), formats.ErrDimensionMismatch)
}

func TestEll_WriteToSkipsPadding(t *testing.T) {
	e := ellFixture(t)

	data := e.WriteTo()
	require.Equal(t, []coord.Entry{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 2, Val: 2},
		{Row: 2, Col: 1, Val: 3},
		{Row: 2, Col: 3, Val: 4},
	}, data.Entries)
}

// sellpFixture installs a two-slice layout by hand: sliceSize 2, slice 0
// padded to width 2, slice 1 to width 1, over the 3x3 matrix
//
//	| 5 0 6 |
//	| 0 7 0 |
//	| 8 0 0 |
func sellpFixture(t *testing.T) *formats.Sellp {
	t.Helper()
	s, err := formats.NewSellp(backend.NewReference(), 3, 3, 2, 1)
	require.NoError(t, err)
	// Slice-major layout: (sliceSets[s]+j)*sliceSize + r.
	s.Install(
		[]int32{0, 2, 3},
		[]int32{2, 1},
		[]int32{0, 1, 2, 0, 0, 0},
		[]float64{5, 7, 6, 0, 8, 0},
	)
	return s
}

func TestSellp_Geometry(t *testing.T) {
	s := sellpFixture(t)

	require.Equal(t, 2, s.SliceSize())
	require.Equal(t, 2, s.Slices())
	require.Equal(t, int32(2), s.SliceLength(0))
	require.Equal(t, int32(1), s.SliceLength(1))
}

func TestSellp_Apply(t *testing.T) {
	s := sellpFixture(t)

	b := mat.NewDense(3, 1, []float64{1, 2, 3})
	x := mat.NewDense(3, 1, nil)
	require.NoError(t, s.Apply(b, x))
	require.Equal(t, []float64{23, 14, 8}, x.RawMatrix().Data)

	require.ErrorIs(t, s.Apply(mat.NewDense(2, 1, nil), x), formats.ErrDimensionMismatch)
}

func TestSellp_WriteTo(t *testing.T) {
	s := sellpFixture(t)

	require.Equal(t, []coord.Entry{
		{Row: 0, Col: 0, Val: 5},
		{Row: 0, Col: 2, Val: 6},
		{Row: 1, Col: 1, Val: 7},
		{Row: 2, Col: 0, Val: 8},
	}, s.WriteTo().Entries)
}

func TestSellp_DefaultGeometry(t *testing.T) {
	s, err := formats.NewSellp(backend.NewReference(), 10, 10, 0, 0)
	require.NoError(t, err)
	require.Equal(t, formats.DefaultSliceSize, s.SliceSize())
	require.Equal(t, formats.DefaultStrideFactor, s.StrideFactor())
}

func TestHybrid_ApplySumsBothParts(t *testing.T) {
	ctx := backend.NewReference()

	// ELL holds | 1 0 | 0 2 |, the COO remainder adds (0,1)=3.
	e, err := formats.NewEll(ctx, 2, 2, 1, 0)
	require.NoError(t, err)
	e.SetEntry(0, 0, 0, 1)
	e.SetEntry(1, 0, 1, 2)
	coo, err := coord.NewFromArrays(ctx, 2, 2,
		[]int32{0}, []int32{1}, []float64{3})
	require.NoError(t, err)

	h, err := formats.NewHybrid(e, coo)
	require.NoError(t, err)
	require.Equal(t, 3, h.NNZ())

	b := mat.NewDense(2, 1, []float64{10, 100})
	x := mat.NewDense(2, 1, nil)
	require.NoError(t, h.Apply(b, x))
	require.Equal(t, []float64{310, 200}, x.RawMatrix().Data)
}

func TestHybrid_RejectsShapeMismatch(t *testing.T) {
	ctx := backend.NewReference()
	e, err := formats.NewEll(ctx, 2, 2, 1, 0)
	require.NoError(t, err)
	coo, err := coord.NewFromArrays(ctx, 3, 2, nil, nil, nil)
	require.NoError(t, err)

	_, err = formats.NewHybrid(e, coo)
	require.ErrorIs(t, err, formats.ErrDimensionMismatch)
}

func TestHybrid_WriteToMergesParts(t *testing.T) {
	ctx := backend.NewReference()
	e, err := formats.NewEll(ctx, 2, 2, 1, 0)
	require.NoError(t, err)
	e.SetEntry(0, 0, 0, 1)
	e.SetEntry(1, 0, 0, 2)
	coo, err := coord.NewFromArrays(ctx, 2, 2,
		[]int32{0}, []int32{1}, []float64{3})
	require.NoError(t, err)
	h, err := formats.NewHybrid(e, coo)
	require.NoError(t, err)

	data := h.WriteTo()
	require.Len(t, data.Entries, 3)
	// Row-major after the merge sort.
	require.Equal(t, int32(0), data.Entries[0].Row)
	require.Equal(t, int32(0), data.Entries[1].Row)
	require.Equal(t, int32(1), data.Entries[2].Row)
}

func TestSparsity_Apply(t *testing.T) {
	ctx := backend.NewReference()

	// Pattern of | x 0 x | 0 x 0 | with shared coefficient 2.
	s, err := formats.NewSparsity(ctx, 2, 3,
		[]int32{0, 2, 3}, []int32{0, 2, 1}, 2)
	require.NoError(t, err)
	require.Equal(t, 3, s.NNZ())
	require.Equal(t, float64(2), s.Value())

	b := mat.NewDense(3, 1, []float64{1, 10, 100})
	x := mat.NewDense(2, 1, nil)
	require.NoError(t, s.Apply(b, x))
	require.Equal(t, []float64{202, 20}, x.RawMatrix().Data)
}

func TestSparsity_WriteTo(t *testing.T) {
	ctx := backend.NewReference()
	s, err := formats.NewSparsity(ctx, 2, 3,
		[]int32{0, 2, 3}, []int32{0, 2, 1}, 2)
	require.NoError(t, err)

	require.Equal(t, []coord.Entry{
		{Row: 0, Col: 0, Val: 2},
		{Row: 0, Col: 2, Val: 2},
		{Row: 1, Col: 1, Val: 2},
	}, s.WriteTo().Entries)
}
