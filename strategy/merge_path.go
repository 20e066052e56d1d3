// SPDX-License-Identifier: MIT

// Package strategy: the merge_path policy.
//
// merge_path treats an SpMV as a two-way merge of the row-boundary sequence
// (rowPtrs[1..rows]) with the nonzero index sequence (0..nnz-1): walking the
// merge path consumes one row boundary or one nonzero per step, so the total
// path length rows+nnz measures work exactly, heavy rows and empty rows
// alike. Splitting the path into equal shares therefore balances lanes
// perfectly by construction, with no histogram and no tuning thresholds.
//
// Process stores, for each lane, the row coordinate where the lane's share
// of the path begins; the cross-diagonal split point is found by binary
// search, so the whole table costs O(lanes * log rows).
package strategy

import "github.com/lumerio/sparsela/backend"

// mergePath is the merge-based co-partitioning policy.
type mergePath struct {
	nwarps   int64
	warpSize int
}

// NewMergePath builds the policy from a context's warp geometry.
func NewMergePath(ctx backend.Context) Strategy {
	return NewMergePathParams(int64(ctx.Lanes()), ctx.WarpSize())
}

// NewMergePathParams builds the policy from explicit parameters, with the
// same trust contract as the other warp-aware constructors.
func NewMergePathParams(nwarps int64, warpSize int) Strategy {
	return mergePath{nwarps: nwarps, warpSize: warpSize}
}

func (mergePath) Kind() Kind     { return KindMergePath }
func (mergePath) Concrete() Kind { return KindMergePath }
func (mergePath) Name() string   { return "merge_path" }

// SrowSize allots one starting-row entry per participating lane:
// min(ceil(nnz/warpSize), nwarps).
func (s mergePath) SrowSize(nnz int64) int64 {
	if s.warpSize <= 0 {
		return 0
	}
	return minInt64(ceilDiv(nnz, int64(s.warpSize)), s.nwarps)
}

// Process splits the merge path of length rows+nnz into len(srow) equal
// shares and records each share's starting row coordinate.
// srow is non-decreasing with srow[0] == 0; trailing lanes whose share lies
// past the end of the path receive the row count (an empty assignment).
func (s mergePath) Process(rowPtrs, srow []int32) {
	lanes := len(srow)
	if lanes == 0 {
		return
	}
	rows := len(rowPtrs) - 1
	if rows < 0 {
		rows = 0
	}
	work := int64(rows) + nnzOf(rowPtrs)
	share := ceilDiv(work, int64(lanes))
	for k := range srow {
		diag := int64(k) * share
		if diag > work {
			diag = work
		}
		srow[k] = int32(mergePathSearch(rowPtrs, rows, diag))
	}
}

// Rebind rebuilds the policy from the destination context's geometry.
func (mergePath) Rebind(ctx backend.Context) Strategy { return NewMergePath(ctx) }

// mergePathSearch returns the row coordinate of the merge path at cross
// diagonal diag: the largest r in [0, rows] with r + rowPtrs[r] <= diag.
// rowPtrs monotonicity makes r + rowPtrs[r] strictly increasing, so a plain
// binary search applies.
func mergePathSearch(rowPtrs []int32, rows int, diag int64) int {
	lo, hi := 0, rows
	for lo < hi {
		mid := int(uint(lo+hi+1) >> 1)
		if int64(mid)+int64(rowPtrs[mid]) <= diag {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
