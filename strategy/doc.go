// Package strategy implements the row-partition policies that decide how a
// CSR sparse matrix-vector product is spread across parallel lanes.
//
// A CSR matrix stores rows of wildly uneven length; assigning one lane per
// row starves most lanes while a few crawl through heavy rows. Each Strategy
// answers the same two questions:
//
//   - SrowSize(nnz): how large an auxiliary starting-row table ("srow") the
//     matrix must allocate for this policy, and
//   - Process(rowPtrs, srow): how to fill that table from the row-pointer
//     offsets so that lane k can look up the first row it owns.
//
// The srow table is purely a load-balancing aid; it carries no mathematical
// content and must be recomputed whenever the row pointers change.
//
// Policies form a closed, enum-discriminated set (no run-time downcasts):
//
//   - classical     — one lane per row, no table at all.
//   - sparselib     — delegates SpMV to a vendor sparse BLAS; no table.
//     The cusparse-named twin exists only to track which
//     vendor produced the matrix.
//   - load_balance  — histogram buckets rows by their ending nonzero offset
//     and prefix-sums the counts, so every warp receives an
//     (approximately) equal share of nonzeros.
//   - merge_path    — co-partitions the combined (row boundary + nonzero)
//     merge path into equal shares and binary-searches the
//     starting row of each lane's share.
//   - automatical   — inspects the nonzero distribution once, then behaves
//     as load_balance (many or clustered nonzeros) or
//     classical (short, even rows), renaming itself to the
//     concrete choice it made.
//
// Warp-aware policies are built FROM an explicit backend.Context; there is
// no implicit default device. After moving a matrix to a different context
// the strategy must be rebuilt (Rebind); running with a stale warp width is
// not an error, it silently degrades balance quality.
package strategy
