package coord_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/lumerio/sparsela/backend"
	"github.com/lumerio/sparsela/coord"
)

// testData is the 3x4 matrix used across the package tests:
//
//	[ 1 0 2 0 ]
//	[ 0 0 0 0 ]
//	[ 3 4 0 5 ]
func testData() coord.MatrixData {
	return coord.MatrixData{
		Rows: 3, Cols: 4,
		Entries: []coord.Entry{
			{Row: 2, Col: 3, Val: 5},
			{Row: 0, Col: 0, Val: 1},
			{Row: 2, Col: 0, Val: 3},
			{Row: 0, Col: 2, Val: 2},
			{Row: 2, Col: 1, Val: 4},
		},
	}
}

func TestMatrixData_Validate(t *testing.T) {
	require.NoError(t, testData().Validate())

	bad := coord.MatrixData{Rows: -1, Cols: 2}
	require.ErrorIs(t, bad.Validate(), coord.ErrBadShape)

	oob := coord.MatrixData{Rows: 2, Cols: 2, Entries: []coord.Entry{{Row: 2, Col: 0, Val: 1}}}
	require.ErrorIs(t, oob.Validate(), coord.ErrIndexOutOfRange)
}

func TestMatrixData_SortRowMajor(t *testing.T) {
	d := testData()
	d.SortRowMajor()
	want := []coord.Entry{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 2, Val: 2},
		{Row: 2, Col: 0, Val: 3},
		{Row: 2, Col: 1, Val: 4},
		{Row: 2, Col: 3, Val: 5},
	}
	require.Equal(t, want, d.Entries)
}

func TestMatrixData_SortByRowKeepsInsertionOrder(t *testing.T) {
	d := testData()
	d.SortByRow()
	// Row 2 entries keep their original relative order (cols 3, 0, 1).
	want := []coord.Entry{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 2, Val: 2},
		{Row: 2, Col: 3, Val: 5},
		{Row: 2, Col: 0, Val: 3},
		{Row: 2, Col: 1, Val: 4},
	}
	require.Equal(t, want, d.Entries)
}

func TestMatrix_RoundTrip(t *testing.T) {
	m, err := coord.New(backend.NewReference(), 0, 0)
	require.NoError(t, err)
	require.NoError(t, m.ReadFrom(testData()))
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 5, m.NNZ())

	// WriteTo reproduces the nonzero set in normalized row order.
	got := m.WriteTo()
	want := testData()
	want.SortByRow()
	require.Equal(t, want, got)
}

func TestMatrix_ReadFromRejectsBadData(t *testing.T) {
	m, err := coord.New(backend.NewReference(), 2, 2)
	require.NoError(t, err)
	bad := coord.MatrixData{Rows: 2, Cols: 2, Entries: []coord.Entry{{Row: 0, Col: 5, Val: 1}}}
	require.ErrorIs(t, m.ReadFrom(bad), coord.ErrIndexOutOfRange)
}

func TestMatrix_Apply(t *testing.T) {
	m, _ := coord.New(backend.NewReference(), 0, 0)
	require.NoError(t, m.ReadFrom(testData()))

	b := mat.NewDense(4, 1, []float64{1, 1, 1, 1})
	x := mat.NewDense(3, 1, nil)
	require.NoError(t, m.Apply(b, x))

	// Row sums of the matrix: 3, 0, 12.
	require.Equal(t, []float64{3, 0, 12}, x.RawMatrix().Data)
}

func TestMatrix_ApplyAdvanced(t *testing.T) {
	m, _ := coord.New(backend.NewReference(), 0, 0)
	require.NoError(t, m.ReadFrom(testData()))

	b := mat.NewDense(4, 1, []float64{1, 1, 1, 1})
	x := mat.NewDense(3, 1, []float64{10, 20, 30})
	// x := 2*A*b - x.
	require.NoError(t, m.ApplyAdvanced(2, b, -1, x))
	require.Equal(t, []float64{-4, -20, -6}, x.RawMatrix().Data)
}

func TestMatrix_Apply2Accumulates(t *testing.T) {
	m, _ := coord.New(backend.NewReference(), 0, 0)
	require.NoError(t, m.ReadFrom(testData()))

	b := mat.NewDense(4, 1, []float64{1, 1, 1, 1})
	x := mat.NewDense(3, 1, []float64{1, 1, 1})
	require.NoError(t, m.Apply2(b, x))
	require.Equal(t, []float64{4, 1, 13}, x.RawMatrix().Data)
}

func TestMatrix_ApplyDimensionMismatch(t *testing.T) {
	m, _ := coord.New(backend.NewReference(), 0, 0)
	require.NoError(t, m.ReadFrom(testData()))

	// b with the wrong row count must fail before any work, not truncate.
	b := mat.NewDense(3, 1, []float64{1, 1, 1})
	x := mat.NewDense(3, 1, nil)
	err := m.Apply(b, x)
	require.ErrorIs(t, err, coord.ErrDimensionMismatch)

	// Mismatched output shape fails the same way.
	b = mat.NewDense(4, 2, nil)
	err = m.Apply(b, mat.NewDense(3, 1, nil))
	require.True(t, errors.Is(err, coord.ErrDimensionMismatch))
}

func TestMatrix_FillDense(t *testing.T) {
	m, _ := coord.New(backend.NewReference(), 0, 0)
	require.NoError(t, m.ReadFrom(testData()))

	d := mat.NewDense(3, 4, nil)
	require.NoError(t, m.FillDense(d))
	require.Equal(t, 1.0, d.At(0, 0))
	require.Equal(t, 2.0, d.At(0, 2))
	require.Equal(t, 5.0, d.At(2, 3))
	require.Equal(t, 0.0, d.At(1, 1))

	require.ErrorIs(t, m.FillDense(mat.NewDense(2, 2, nil)), coord.ErrDimensionMismatch)
}

func TestMatrix_ExtractDiagonal(t *testing.T) {
	m, _ := coord.New(backend.NewReference(), 0, 0)
	require.NoError(t, m.ReadFrom(testData()))
	// Diagonal of the 3x4 matrix: (1, 0, 0).
	require.Equal(t, []float64{1, 0, 0}, m.ExtractDiagonal())
}

func TestNewFromArrays_Validation(t *testing.T) {
	ctx := backend.NewReference()
	_, err := coord.NewFromArrays(ctx, 2, 2, []int32{0}, []int32{0, 1}, []float64{1})
	require.ErrorIs(t, err, coord.ErrDimensionMismatch)

	_, err = coord.NewFromArrays(ctx, -1, 2, nil, nil, nil)
	require.ErrorIs(t, err, coord.ErrBadShape)

	m, err := coord.NewFromArrays(ctx, 2, 2, []int32{0, 1}, []int32{1, 0}, []float64{7, 8})
	require.NoError(t, err)
	require.Equal(t, 2, m.NNZ())
}
