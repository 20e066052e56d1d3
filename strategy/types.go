// SPDX-License-Identifier: MIT

// Package strategy: the sealed Strategy variant set and shared helpers.
package strategy

import (
	"fmt"

	"github.com/lumerio/sparsela/backend"
)

// Kind discriminates the closed set of row-partition policies.
// Conversions and kernels branch on Kind instead of type-asserting concrete
// implementations.
type Kind uint8

const (
	// KindClassical assigns one lane per row.
	KindClassical Kind = iota
	// KindMergePath co-partitions rows and nonzeros along the merge path.
	KindMergePath
	// KindSparselib delegates to a vendor sparse BLAS.
	KindSparselib
	// KindLoadBalance buckets rows into warps by nonzero share.
	KindLoadBalance
	// KindAutomatical picks classical or load_balance from the data.
	KindAutomatical
)

// String returns the canonical policy name of the kind.
func (k Kind) String() string {
	switch k {
	case KindClassical:
		return "classical"
	case KindMergePath:
		return "merge_path"
	case KindSparselib:
		return "sparselib"
	case KindLoadBalance:
		return "load_balance"
	case KindAutomatical:
		return "automatical"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Strategy is the row-partition policy bound to a CSR matrix.
//
// Implementations are immutable configuration values, safe to share across
// matrices; Process writes only into the caller-owned srow slice. The single
// exception is automatical's informational name, which atomically settles on
// the concrete delegate after Process has run.
//
// Process never fails on well-formed row pointers. Calling a warp-aware
// policy with parameters from the wrong context does not raise an error
// either; it silently degrades partition quality (callers must Rebind after
// moving a matrix between contexts).
type Strategy interface {
	// Kind identifies the policy variant.
	Kind() Kind

	// Concrete identifies the variant kernels should dispatch on. It equals
	// Kind for every non-meta policy; automatical reports the delegate it
	// settled on during Process (KindClassical while undecided).
	Concrete() Kind

	// Name returns the informational policy name. For automatical it reports
	// the concrete choice once Process has run.
	Name() string

	// SrowSize returns the required srow table length for a matrix with the
	// given nonzero count. Pure: it must not touch matrix data.
	// Complexity: O(1).
	SrowSize(nnz int64) int64

	// Process fills srow from the row pointers. len(srow) must equal
	// SrowSize of the matrix's nonzero count; rowPtrs follows the CSR
	// contract (monotone, rowPtrs[0]==0).
	// Complexity: O(rows + len(srow)) unless documented otherwise.
	Process(rowPtrs, srow []int32)

	// Rebind returns the equivalent policy rebuilt for ctx. Non-adaptive
	// policies may return themselves; warp-aware ones adopt ctx's lane
	// count, warp width and vendor tuning.
	Rebind(ctx backend.Context) Strategy
}

// ceilDiv returns ceil(a/b) for positive b.
func ceilDiv(a, b int64) int64 { return (a + b - 1) / b }

// nnzOf reads the total nonzero count off a CSR row-pointer slice.
func nnzOf(rowPtrs []int32) int64 {
	if len(rowPtrs) == 0 {
		return 0
	}
	return int64(rowPtrs[len(rowPtrs)-1])
}
