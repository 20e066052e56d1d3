// SPDX-License-Identifier: MIT

// Package backend: execution-context value type and constructors.
// This file contains ONLY the Context type, its kinds/vendors and accessors.
// Bulk dispatch lives in run.go; host lane detection in lanes.go.
package backend

import (
	"fmt"
	"runtime"
)

// Kind discriminates the execution model of a Context.
type Kind uint8

const (
	// Reference is the sequential host context (the staging master).
	Reference Kind = iota
	// Parallel is the goroutine-pool host context.
	Parallel
	// Accel is an accelerator-style context with explicit warp geometry.
	Accel
)

// String returns the canonical lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Reference:
		return "reference"
	case Parallel:
		return "parallel"
	case Accel:
		return "accel"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Vendor tags which accelerator ecosystem an Accel context models.
// The tag has no behavioral weight inside backend; warp-aware strategies use
// it to pick vendor-specific tuning tables and conversions use it to rebuild
// vendor-backed strategies for the destination.
type Vendor uint8

const (
	// VendorNone marks host contexts.
	VendorNone Vendor = iota
	// VendorCUDA marks NVIDIA-style contexts (warp width 32).
	VendorCUDA
	// VendorROCm marks AMD-style contexts (wavefront width 64).
	VendorROCm
)

// String returns the canonical vendor name.
func (v Vendor) String() string {
	switch v {
	case VendorNone:
		return "none"
	case VendorCUDA:
		return "cuda"
	case VendorROCm:
		return "rocm"
	default:
		return fmt.Sprintf("vendor(%d)", uint8(v))
	}
}

// Default warp widths per vendor. Fixed per architecture, not tunable.
const (
	WarpWidthCUDA = 32
	WarpWidthROCm = 64
)

// Context identifies where buffers live and where kernels run.
// It is a plain comparable value: copy freely, compare with ==.
// The zero value is NOT valid; use NewReference/NewParallel/NewAccel.
type Context struct {
	kind     Kind
	vendor   Vendor
	workers  int // host goroutines joined per dispatch
	lanes    int // warp-groups available to warp-aware strategies
	warpSize int // threads per warp-group
}

// NewReference returns the sequential host context.
// Its warp width is the detected host SIMD lane width, so that warp-aware
// strategies built from it stay meaningful on the host path.
func NewReference() Context {
	return Context{kind: Reference, vendor: VendorNone, workers: 1, lanes: 1, warpSize: hostLaneWidth()}
}

// NewParallel returns a goroutine-pool host context with the given worker
// count; workers <= 0 selects runtime.GOMAXPROCS(0).
// Lanes equal workers: each worker owns one warp-group per dispatch.
func NewParallel(workers int) Context {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return Context{kind: Parallel, vendor: VendorNone, workers: workers, lanes: workers, warpSize: hostLaneWidth()}
}

// NewAccel returns an accelerator-style context.
// lanes is the number of concurrently resident warps; warpSize <= 0 selects
// the vendor's architectural width. Panics on a host vendor or lanes <= 0:
// these are programmer errors, not runtime conditions.
func NewAccel(vendor Vendor, lanes, warpSize int) Context {
	if vendor == VendorNone {
		panic("backend: NewAccel requires an accelerator vendor")
	}
	if lanes <= 0 {
		panic("backend: NewAccel requires lanes > 0")
	}
	if warpSize <= 0 {
		switch vendor {
		case VendorROCm:
			warpSize = WarpWidthROCm
		default:
			warpSize = WarpWidthCUDA
		}
	}
	// Accelerator dispatch is simulated on the host pool; one worker per
	// resident warp, capped by GOMAXPROCS to keep dispatch sane.
	workers := lanes
	if limit := runtime.GOMAXPROCS(0); workers > limit {
		workers = limit
	}
	return Context{kind: Accel, vendor: vendor, workers: workers, lanes: lanes, warpSize: warpSize}
}

// Kind reports the execution model.
func (c Context) Kind() Kind { return c.kind }

// Vendor reports the accelerator vendor tag (VendorNone for host kinds).
func (c Context) Vendor() Vendor { return c.vendor }

// Workers reports how many goroutines a bulk dispatch joins.
func (c Context) Workers() int { return c.workers }

// Lanes reports the warp-group count visible to warp-aware strategies.
func (c Context) Lanes() int { return c.lanes }

// WarpSize reports the warp width of this context.
func (c Context) WarpSize() int { return c.warpSize }

// IsHost reports whether buffers of this context are directly addressable
// without staging (Reference and Parallel kinds).
func (c Context) IsHost() bool { return c.kind != Accel }

// Master returns the host-side staging context used to materialize data that
// lives on this context. A host context is its own master.
func (c Context) Master() Context {
	if c.IsHost() {
		return c
	}
	return NewReference()
}

// String renders the context for debugging, e.g. "accel(cuda,80x32)".
func (c Context) String() string {
	switch c.kind {
	case Accel:
		return fmt.Sprintf("accel(%s,%dx%d)", c.vendor, c.lanes, c.warpSize)
	case Parallel:
		return fmt.Sprintf("parallel(%d)", c.workers)
	default:
		return "reference"
	}
}
