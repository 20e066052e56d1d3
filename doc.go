// Package sparsela is a sparse linear-algebra toolbox built around a
// compressed-sparse-row (CSR) storage engine with pluggable row-partition
// strategies.
//
// 🚀 What is sparsela?
//
//	A library that brings together:
//		• CSR storage: values, column indices and row pointers with a
//		  per-lane starting-row table kept consistent automatically
//		• Strategies: classical, merge_path, sparselib/cusparse,
//		  load_balance and automatical row partitioning
//		• SpMV: x := A·b and x := alpha·A·b + beta·x across every strategy
//		• Transforms: transpose, conjugate transpose, row/column permutation
//		  and canonical column ordering
//		• Conversions: dense, COO, ELL, SELL-P, Hybrid and pattern-only
//		  sparsity views
//		• Contexts: reference, parallel and accelerator-shaped execution
//		  with explicit warp geometry
//
// ✨ Why choose sparsela?
//
//   - Explicit contexts – no hidden global device; every matrix says where
//     it lives and moves with CloneTo/MoveTo
//   - Strategy objects, not flags – partitioning is a value you bind,
//     rebind and interrogate
//   - Exact kernels – irregular matrices, empty rows and stale partition
//     hints never change the result, only the balance
//   - Pure Go – no cgo
//
// Everything is organized under five subpackages:
//
//	backend/  — execution contexts, warp geometry & bulk dispatch
//	strategy/ — the row-partition strategy variants & staging
//	coord/    — coordinate (COO) matrices & the exchange representation
//	csr/      — the CSR engine: SpMV, transforms, conversions, lifecycle
//	formats/  — ELL, SELL-P, Hybrid & pattern-only collaborators
//
// Quick example:
//
//	ctx := backend.NewAccel(backend.VendorCUDA, 80, 32)
//	m, _ := csr.New(ctx, 0, 0, 0, strategy.NewLoadBalance(ctx))
//	_ = m.ReadFrom(data)            // coordinate entries in
//	_ = m.Apply(b, x)               // x := A·b
//	host := m.CloneTo(backend.NewParallel(0))
//
// See each subpackage's doc.go for the full contract.
package sparsela
