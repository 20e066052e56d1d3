// Package backend defines the execution-context handle shared by every
// buffer-allocating or kernel-dispatching operation in sparsela.
//
// A Context is a small, equality-comparable value describing WHERE work runs:
//
//   - Reference — single-threaded host execution, the staging master for
//     every other context and the baseline all kernels are tested against.
//   - Parallel — goroutine-pool host execution; rows (or warps) are chunked
//     across workers and joined synchronously.
//   - Accel — a vendor-tagged accelerator-style context with an explicit
//     lane count and warp width. sparsela carries no cgo device code; the
//     Accel kind exists so that warp-aware strategies and cross-context
//     conversions behave exactly as they must on real hardware, and so the
//     staging ("materialize on master, commit back") contract is exercised.
//
// There is no implicit global default device: every constructor in csr and
// strategy takes an explicit Context. Two contexts compare equal (==) iff
// all of kind, vendor, workers, lanes and warp width match; callers use this
// for same-context fast paths.
//
// Dispatch is bulk-synchronous: Run splits an index range over the context's
// workers and returns only after every chunk completed. There is no task
// queue, no cancellation; validation errors are raised by callers before
// dispatch ever begins.
package backend
