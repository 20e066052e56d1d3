// SPDX-License-Identifier: MIT

// Package strategy: the table-free policies (classical, sparselib).
package strategy

import "github.com/lumerio/sparsela/backend"

// classical assigns the same number of lanes to every row; no srow table is
// needed and Process has nothing to compute.
type classical struct{}

// NewClassical returns the uniform one-lane-per-row policy.
func NewClassical() Strategy { return classical{} }

func (classical) Kind() Kind                      { return KindClassical }
func (classical) Concrete() Kind                  { return KindClassical }
func (classical) Name() string                    { return "classical" }
func (classical) SrowSize(int64) int64            { return 0 }
func (classical) Process([]int32, []int32)        {}
func (classical) Rebind(backend.Context) Strategy { return classical{} }

// sparselib delegates the numeric kernel to a third-party sparse BLAS; like
// classical it needs no srow table. The vendor tag changes nothing about its
// behavior; it only records which accelerator stack produced the matrix so
// that cross-context conversions can rebuild the matching twin.
type sparselib struct {
	vendor backend.Vendor
}

// NewSparselib returns the vendor-library-backed policy tagged with vendor.
func NewSparselib(vendor backend.Vendor) Strategy { return sparselib{vendor: vendor} }

func (sparselib) Kind() Kind     { return KindSparselib }
func (sparselib) Concrete() Kind { return KindSparselib }

// Name reports the vendor-specific library name: the CUDA twin answers to
// "cusparse", every other vendor to the generic "sparselib".
func (s sparselib) Name() string {
	if s.vendor == backend.VendorCUDA {
		return "cusparse"
	}
	return "sparselib"
}

func (sparselib) SrowSize(int64) int64     { return 0 }
func (sparselib) Process([]int32, []int32) {}

// Rebind retags the policy with the destination's vendor.
func (sparselib) Rebind(ctx backend.Context) Strategy {
	return sparselib{vendor: ctx.Vendor()}
}
