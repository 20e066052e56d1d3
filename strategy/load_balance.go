// SPDX-License-Identifier: MIT

// Package strategy: the load_balance policy.
//
// load_balance targets warp-grouped execution: nwarps lanes of warpSize
// threads each. Rows are bucketed by the warp whose equal nonzero share
// contains the row's ENDING offset, then the bucket counts are prefix-summed
// in place so srow[k] holds the first row index assigned past lane k.
package strategy

import "github.com/lumerio/sparsela/backend"

// Nonzero thresholds that widen the srow table for denser matrices.
// The narrow-warp (ROCm wavefront) tuning kicks in later but grows less.
const (
	lbMidNNZ  = 2e5
	lbHighNNZ = 2e6

	lbMidNNZWide  = 1e6
	lbHighNNZWide = 1e7
)

// loadBalance is the histogram-based warp partition policy.
type loadBalance struct {
	nwarps   int64
	warpSize int
	wide     bool // ROCm wavefront tuning table
}

// NewLoadBalance builds the policy from a context's warp geometry.
func NewLoadBalance(ctx backend.Context) Strategy {
	return NewLoadBalanceParams(int64(ctx.Lanes()), ctx.WarpSize(), ctx.Vendor() == backend.VendorROCm)
}

// NewLoadBalanceParams builds the policy from explicit parameters: nwarps
// parallel lanes of warpSize threads. wide selects the 64-thread-wavefront
// tuning table. The parameters are trusted as-is; results are unspecified
// (degraded balance, never a crash) when they do not match the context the
// matrix actually runs on.
func NewLoadBalanceParams(nwarps int64, warpSize int, wide bool) Strategy {
	return loadBalance{nwarps: nwarps, warpSize: warpSize, wide: wide}
}

func (loadBalance) Kind() Kind     { return KindLoadBalance }
func (loadBalance) Concrete() Kind { return KindLoadBalance }
func (loadBalance) Name() string { return "load_balance" }

// SrowSize returns min(ceil(nnz/warpSize), nwarps*multiple) where multiple
// grows with nnz: {8,32,128} at thresholds {2e5,2e6}, or the wavefront table
// {8,16,64} at {1e6,1e7}. Denser matrices get more lanes, bounded by the
// hardware parallelism actually available.
func (s loadBalance) SrowSize(nnz int64) int64 {
	if s.warpSize <= 0 {
		return 0
	}
	multiple := int64(8)
	if s.wide {
		switch {
		case nnz >= lbHighNNZWide:
			multiple = 64
		case nnz >= lbMidNNZWide:
			multiple = 16
		}
	} else {
		switch {
		case nnz >= lbHighNNZ:
			multiple = 128
		case nnz >= lbMidNNZ:
			multiple = 32
		}
	}
	return minInt64(ceilDiv(nnz, int64(s.warpSize)), s.nwarps*multiple)
}

// Process buckets every row, then prefix-sums the histogram in place.
// The bucket of row i is
//
//	ceil(ceil(rowPtrs[i+1]/warpSize) * nwarps / ceil(nnz/warpSize))
//
// clamped below nwarps, where nwarps is the srow length actually allocated.
// After the prefix sum, srow[k] counts the rows ending at or before lane k's
// nonzero share, which is exactly the starting-row lookup the warp kernel needs.
// Complexity: O(rows + nwarps); the prefix sum is the only sequential chain.
func (s loadBalance) Process(rowPtrs, srow []int32) {
	nwarps := int64(len(srow))
	if nwarps == 0 {
		return
	}
	for i := range srow {
		srow[i] = 0
	}
	numRows := len(rowPtrs) - 1
	if numRows < 1 {
		return
	}
	nnz := int64(rowPtrs[numRows])
	if nnz == 0 {
		return
	}
	warp := int64(s.warpSize)
	shares := ceilDiv(nnz, warp)
	for i := 0; i < numRows; i++ {
		bucket := ceilDiv(ceilDiv(int64(rowPtrs[i+1]), warp)*nwarps, shares)
		if bucket < nwarps {
			srow[bucket]++
		}
	}
	// Starting row for lane k.
	for i := 1; i < len(srow); i++ {
		srow[i] += srow[i-1]
	}
}

// Rebind rebuilds the policy from the destination context's geometry.
func (loadBalance) Rebind(ctx backend.Context) Strategy { return NewLoadBalance(ctx) }

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
