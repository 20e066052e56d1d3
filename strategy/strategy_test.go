package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumerio/sparsela/backend"
	"github.com/lumerio/sparsela/strategy"
)

// rowPtrsFor builds CSR row pointers for rows of the given lengths.
func rowPtrsFor(lens ...int) []int32 {
	ptrs := make([]int32, len(lens)+1)
	for i, l := range lens {
		ptrs[i+1] = ptrs[i] + int32(l)
	}
	return ptrs
}

func TestClassical_NoTable(t *testing.T) {
	s := strategy.NewClassical()
	require.Equal(t, strategy.KindClassical, s.Kind())
	require.Equal(t, "classical", s.Name())

	// No auxiliary table, whatever the nonzero count.
	for _, nnz := range []int64{0, 1, 100, 2e5, 2e6, 1 << 40} {
		require.Zero(t, s.SrowSize(nnz))
	}
	// Process is a no-op; must tolerate empty slices.
	s.Process(rowPtrsFor(3, 0, 2), nil)
}

func TestSparselib_VendorTwins(t *testing.T) {
	cu := strategy.NewSparselib(backend.VendorCUDA)
	rocm := strategy.NewSparselib(backend.VendorROCm)

	// Identical behavior, different informational names.
	require.Equal(t, "cusparse", cu.Name())
	require.Equal(t, "sparselib", rocm.Name())
	require.Equal(t, strategy.KindSparselib, cu.Kind())
	require.Zero(t, cu.SrowSize(1e7))
	require.Zero(t, rocm.SrowSize(1e7))

	// Rebind retags to the destination's vendor.
	moved := cu.Rebind(backend.NewAccel(backend.VendorROCm, 8, 0))
	require.Equal(t, "sparselib", moved.Name())
	require.Equal(t, strategy.KindSparselib, moved.Kind())
}

func TestLoadBalance_SrowSize(t *testing.T) {
	s := strategy.NewLoadBalanceParams(4, 32, false)

	// nnz=100: multiple=8, min(ceil(100/32), 4*8) = min(4, 32) = 4.
	require.Equal(t, int64(4), s.SrowSize(100))
	// nnz=3e6: multiple=128, min(ceil(3e6/32), 4*128) = min(93750, 512) = 512.
	require.Equal(t, int64(512), s.SrowSize(3_000_000))
	// Mid threshold: nnz=2e5 switches multiple to 32.
	require.Equal(t, int64(128), s.SrowSize(200_000))
	// Just below the mid threshold multiple stays 8, lane bound 32.
	require.Equal(t, int64(32), s.SrowSize(199_999))
	// Degenerate warp size yields no table at all.
	require.Zero(t, strategy.NewLoadBalanceParams(4, 0, false).SrowSize(100))
}

func TestLoadBalance_SrowSizeWideWavefront(t *testing.T) {
	s := strategy.NewLoadBalanceParams(4, 64, true)

	// Below 1e6 the wavefront table stays at multiple=8.
	require.Equal(t, int64(32), s.SrowSize(500_000))
	// 1e6..1e7 uses multiple=16.
	require.Equal(t, int64(64), s.SrowSize(2_000_000))
	// Beyond 1e7 uses multiple=64.
	require.Equal(t, int64(256), s.SrowSize(20_000_000))
}

func TestLoadBalance_ProcessPrefixSum(t *testing.T) {
	// warpSize=1 makes the bucket rule exact: with nnz=8 and row ends
	// (1,2,3,8), buckets are (1,1,2,clamped), i.e. histogram [0,2,1,0].
	s := strategy.NewLoadBalanceParams(4, 1, false)
	srow := make([]int32, 4)
	s.Process([]int32{0, 1, 2, 3, 8}, srow)

	// In-place prefix sum of [0,2,1,0].
	require.Equal(t, []int32{0, 2, 3, 3}, srow)
}

func TestLoadBalance_ProcessProperties(t *testing.T) {
	s := strategy.NewLoadBalanceParams(16, 32, false)
	ptrs := rowPtrsFor(100, 1, 0, 57, 3000, 2, 2, 900, 0, 44)
	nnz := int64(ptrs[len(ptrs)-1])
	srow := make([]int32, s.SrowSize(nnz))
	require.NotEmpty(t, srow)
	s.Process(ptrs, srow)

	rows := int32(len(ptrs) - 1)
	prev := int32(0)
	for i, v := range srow {
		// Monotone non-decreasing, never past the row count.
		require.GreaterOrEqual(t, v, prev, "srow[%d]", i)
		require.LessOrEqual(t, v, rows)
		prev = v
	}
}

func TestLoadBalance_ProcessEmptyInputs(t *testing.T) {
	s := strategy.NewLoadBalanceParams(4, 32, false)

	// Zero-length srow: nothing to do.
	s.Process(rowPtrsFor(1, 2), nil)

	// Empty matrix (no rows at all): srow must come out zeroed.
	srow := []int32{9, 9, 9}
	s.Process(nil, srow)
	require.Equal(t, []int32{0, 0, 0}, srow)

	// Rows but no nonzeros.
	srow = []int32{7, 7}
	s.Process(rowPtrsFor(0, 0, 0), srow)
	require.Equal(t, []int32{0, 0}, srow)
}

func TestAutomatical_PicksClassicalForShortRows(t *testing.T) {
	// 10 rows with 2 nonzeros each: nnz=20, max row length 2.
	s := strategy.NewAutomaticalParams(4, 32, false)
	require.Equal(t, "automatical", s.Name())

	ptrs := rowPtrsFor(2, 2, 2, 2, 2, 2, 2, 2, 2, 2)
	srow := make([]int32, s.SrowSize(20))
	s.Process(ptrs, srow)

	require.Equal(t, "classical", s.Name())
	require.Equal(t, strategy.KindClassical, s.Concrete())
	// The meta kind itself never changes.
	require.Equal(t, strategy.KindAutomatical, s.Kind())
}

func TestAutomatical_PicksLoadBalanceForLongRow(t *testing.T) {
	// A single row of length 100 exceeds the 64-entry row bound.
	s := strategy.NewAutomaticalParams(4, 32, false)
	ptrs := rowPtrsFor(100)
	srow := make([]int32, s.SrowSize(100))
	s.Process(ptrs, srow)

	require.Equal(t, "load_balance", s.Name())
	require.Equal(t, strategy.KindLoadBalance, s.Concrete())
}

func TestAutomatical_Bounds(t *testing.T) {
	// Exactly 64 per row and exactly 1e6 total stays classical: both rules
	// are strict greater-than.
	s := strategy.NewAutomaticalParams(4, 32, false)
	lens := make([]int, 15625) // 15625 * 64 = 1e6
	for i := range lens {
		lens[i] = 64
	}
	ptrs := rowPtrsFor(lens...)
	require.Equal(t, int32(1_000_000), ptrs[len(ptrs)-1])
	srow := make([]int32, s.SrowSize(1_000_000))
	s.Process(ptrs, srow)
	require.Equal(t, "classical", s.Name())

	// One more nonzero tips the total-count rule.
	s2 := strategy.NewAutomaticalParams(4, 32, false)
	lens[0] = 65
	ptrs = rowPtrsFor(lens...)
	srow = make([]int32, s2.SrowSize(1_000_001))
	s2.Process(ptrs, srow)
	require.Equal(t, "load_balance", s2.Name())
}

func TestAutomatical_SrowSizeMatchesLoadBalance(t *testing.T) {
	auto := strategy.NewAutomaticalParams(4, 32, false)
	lb := strategy.NewLoadBalanceParams(4, 32, false)
	for _, nnz := range []int64{0, 1, 100, 2e5, 2e6, 3e6} {
		require.Equal(t, lb.SrowSize(nnz), auto.SrowSize(nnz), "nnz=%d", nnz)
	}
}

func TestRebind_AdoptsContextGeometry(t *testing.T) {
	cuda := backend.NewAccel(backend.VendorCUDA, 4, 0)
	rocm := backend.NewAccel(backend.VendorROCm, 4, 0)

	lb := strategy.NewLoadBalance(cuda)
	moved := lb.Rebind(rocm)

	// Same nnz, different tuning table and warp width after the rebind.
	require.Equal(t, int64(512), lb.SrowSize(3_000_000))    // warp 32, multiple 128
	require.Equal(t, int64(64), moved.SrowSize(3_000_000))  // warp 64, multiple 16
	require.Equal(t, strategy.KindLoadBalance, moved.Kind())

	// Automatical rebinds to an undecided meta-policy.
	auto := strategy.NewAutomatical(cuda)
	auto.Process(rowPtrsFor(100), make([]int32, auto.SrowSize(100)))
	require.Equal(t, "load_balance", auto.Name())
	fresh := auto.Rebind(rocm)
	require.Equal(t, "automatical", fresh.Name())
}

func TestProcessOn_StagesThroughMaster(t *testing.T) {
	// The accel context is not its own master, so ProcessOn must stage and
	// commit back: the observable result matches host computation exactly.
	accel := backend.NewAccel(backend.VendorCUDA, 4, 32)
	s := strategy.NewLoadBalanceParams(4, 1, false)
	ptrs := []int32{0, 1, 2, 3, 8}

	staged := make([]int32, 4)
	strategy.ProcessOn(s, accel, ptrs, staged)

	direct := make([]int32, 4)
	s.Process(ptrs, direct)
	require.Equal(t, direct, staged)

	// Host contexts take the direct path.
	host := make([]int32, 4)
	strategy.ProcessOn(s, backend.NewReference(), ptrs, host)
	require.Equal(t, direct, host)
}

func TestKind_Strings(t *testing.T) {
	require.Equal(t, "classical", strategy.KindClassical.String())
	require.Equal(t, "merge_path", strategy.KindMergePath.String())
	require.Equal(t, "sparselib", strategy.KindSparselib.String())
	require.Equal(t, "load_balance", strategy.KindLoadBalance.String())
	require.Equal(t, "automatical", strategy.KindAutomatical.String())
}
