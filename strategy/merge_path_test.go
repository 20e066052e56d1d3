package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumerio/sparsela/backend"
	"github.com/lumerio/sparsela/strategy"
)

func TestMergePath_SrowSize(t *testing.T) {
	s := strategy.NewMergePathParams(8, 32)

	// One entry per participating lane, bounded by the lane count.
	require.Equal(t, int64(1), s.SrowSize(1))
	require.Equal(t, int64(4), s.SrowSize(100)) // ceil(100/32) = 4 < 8 lanes
	require.Equal(t, int64(8), s.SrowSize(1e6)) // lane bound
	require.Zero(t, s.SrowSize(0))
	require.Zero(t, strategy.NewMergePathParams(8, 0).SrowSize(100))
}

func TestMergePath_ProcessUniformRows(t *testing.T) {
	// Four rows of two nonzeros: path length 4+8=12, share 3 per lane, so
	// lane k starts exactly at row k.
	s := strategy.NewMergePathParams(4, 1)
	ptrs := rowPtrsFor(2, 2, 2, 2)
	srow := make([]int32, 4)
	s.Process(ptrs, srow)
	require.Equal(t, []int32{0, 1, 2, 3}, srow)
}

func TestMergePath_ProcessSkewedRows(t *testing.T) {
	// One huge row followed by tiny ones: the heavy row absorbs the early
	// lanes while later lanes still receive the light rows.
	s := strategy.NewMergePathParams(4, 1)
	ptrs := rowPtrsFor(97, 1, 1, 1)
	srow := make([]int32, 4)
	s.Process(ptrs, srow)

	// Path length 4+100=104, share 26: lanes 0..3 start at diagonals
	// 0,26,52,78, all inside row 0 (row 0 spans diagonals 0..97).
	require.Equal(t, []int32{0, 0, 0, 0}, srow)

	// The reverse skew pushes starts forward immediately.
	ptrs = rowPtrsFor(1, 1, 1, 97)
	s.Process(ptrs, srow)
	require.Equal(t, int32(0), srow[0])
	require.Equal(t, int32(3), srow[1]) // diagonal 26 is deep into row 3
}

func TestMergePath_PartitionProperties(t *testing.T) {
	s := strategy.NewMergePathParams(16, 4)
	ptrs := rowPtrsFor(0, 13, 0, 0, 200, 1, 1, 1, 50, 0, 7)
	rows := int32(len(ptrs) - 1)
	nnz := int64(ptrs[rows])
	srow := make([]int32, s.SrowSize(nnz))
	require.NotEmpty(t, srow)
	s.Process(ptrs, srow)

	// Starts at row zero, never decreases, never overshoots the row count.
	require.Equal(t, int32(0), srow[0])
	prev := int32(0)
	for i, v := range srow {
		require.GreaterOrEqual(t, v, prev, "srow[%d]", i)
		require.LessOrEqual(t, v, rows)
		prev = v
	}
}

func TestMergePath_EmptyMatrix(t *testing.T) {
	s := strategy.NewMergePathParams(4, 1)
	// No rows, no nonzeros: every lane starts (and ends) at row 0.
	srow := []int32{5, 5}
	s.Process(nil, srow)
	require.Equal(t, []int32{0, 0}, srow)
}

func TestMergePath_Rebind(t *testing.T) {
	s := strategy.NewMergePath(backend.NewAccel(backend.VendorCUDA, 8, 32))
	moved := s.Rebind(backend.NewAccel(backend.VendorCUDA, 2, 32))
	require.Equal(t, strategy.KindMergePath, moved.Kind())
	// The rebuilt policy caps its table at the new lane count.
	require.Equal(t, int64(2), moved.SrowSize(1e6))
}
