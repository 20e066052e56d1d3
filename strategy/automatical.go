// SPDX-License-Identifier: MIT

// Package strategy: the automatical meta-policy.
package strategy

import (
	"sync/atomic"

	"github.com/lumerio/sparsela/backend"
)

// Decision rule: beyond either bound the nonzero distribution is dense or
// clustered enough that warp bucketing pays for itself.
const (
	autoNNZBound    = 1_000_000
	autoRowLenBound = 64
)

// Values of automatical.chosen.
const (
	autoUndecided int32 = iota
	autoClassical
	autoLoadBalance
)

// automatical inspects the matrix once during Process and delegates to
// classical or load_balance. The concrete choice is remembered atomically so
// Name reports it afterwards, while the configuration itself stays immutable
// and shareable across matrices.
type automatical struct {
	nwarps   int64
	warpSize int
	wide     bool
	chosen   atomic.Int32
}

// NewAutomatical builds the meta-policy from a context's warp geometry.
func NewAutomatical(ctx backend.Context) Strategy {
	return NewAutomaticalParams(int64(ctx.Lanes()), ctx.WarpSize(), ctx.Vendor() == backend.VendorROCm)
}

// NewAutomaticalParams builds the meta-policy from explicit parameters; they
// carry the same trust contract as NewLoadBalanceParams.
func NewAutomaticalParams(nwarps int64, warpSize int, wide bool) Strategy {
	return &automatical{nwarps: nwarps, warpSize: warpSize, wide: wide}
}

func (*automatical) Kind() Kind { return KindAutomatical }

// Name reports "automatical" until Process has run, then the name of the
// concrete delegate it picked.
func (s *automatical) Name() string {
	switch s.chosen.Load() {
	case autoClassical:
		return "classical"
	case autoLoadBalance:
		return "load_balance"
	default:
		return "automatical"
	}
}

// SrowSize defers to what load_balance would need: a conservative upper
// bound, since the concrete choice is unknown until Process runs.
func (s *automatical) SrowSize(nnz int64) int64 {
	return loadBalance{nwarps: s.nwarps, warpSize: s.warpSize, wide: s.wide}.SrowSize(nnz)
}

// Process scans the row pointers for the total nonzero count and the longest
// row, picks the delegate, runs it, and settles the reported name.
// Complexity: O(rows + len(srow)).
func (s *automatical) Process(rowPtrs, srow []int32) {
	nnz := nnzOf(rowPtrs)
	maxRow := int64(0)
	for i := 1; i < len(rowPtrs); i++ {
		if l := int64(rowPtrs[i] - rowPtrs[i-1]); l > maxRow {
			maxRow = l
		}
	}
	if nnz > autoNNZBound || maxRow > autoRowLenBound {
		loadBalance{nwarps: s.nwarps, warpSize: s.warpSize, wide: s.wide}.Process(rowPtrs, srow)
		s.chosen.Store(autoLoadBalance)
		return
	}
	NewClassical().Process(rowPtrs, srow)
	s.chosen.Store(autoClassical)
}

// Concrete reports the kind Process settled on; kernels use it to pick the
// matching dispatch without re-reading the matrix. While the decision is
// still pending it conservatively reports KindClassical.
func (s *automatical) Concrete() Kind {
	if s.chosen.Load() == autoLoadBalance {
		return KindLoadBalance
	}
	return KindClassical
}

// Rebind rebuilds an undecided meta-policy for the destination context.
func (*automatical) Rebind(ctx backend.Context) Strategy { return NewAutomatical(ctx) }
