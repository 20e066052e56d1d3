// Package csr implements the compressed-sparse-row matrix, the central
// format of sparsela that every other sparse format converts to and from,
// together with its adaptive row-partition machinery.
//
// Storage is the classic three-array layout:
//
//   - values   — the NNZ stored coefficients, grouped by row,
//   - colIdxs  — the column index of each coefficient, parallel to values,
//   - rowPtrs  — R+1 offsets; row i owns values[rowPtrs[i]:rowPtrs[i+1]]
//     (empty, not length one, when R is zero).
//
// A fourth array, srow, is derived: the per-lane starting-row table computed
// by the bound strategy.Strategy. It carries no mathematical content, only
// load-balance quality, and is recomputed whenever the row pointers or the
// strategy change (ReadFrom, SetStrategy, NewFromArrays, cross-context
// clones). Forgetting that rule cannot corrupt results, but it quietly
// wrecks the parallel schedule; the package therefore never exposes a path
// that mutates rowPtrs without refreshing srow.
//
// Apply dispatches SpMV/SpMM on the matrix's backend.Context, choosing the
// kernel by the strategy's concrete kind: classical row-parallel, srow-
// bucketed load_balance, or merge_path co-partitioning. Dense operands are
// gonum *mat.Dense values.
//
// The usual lifecycle:
//
//	ctx := backend.NewParallel(0)
//	A, _ := csr.New(ctx, rows, cols, nnz, strategy.NewAutomatical(ctx))
//	_ = A.ReadFrom(data)       // ingest + recompute srow
//	_ = A.Apply(b, x)          // x := A*b
//
// Errors are the package sentinels in errors.go, matched with errors.Is;
// every validation failure is raised before any kernel dispatch begins.
package csr
