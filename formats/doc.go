// Package formats holds the auxiliary sparse storage formats the CSR core
// converts into: ELL (padded, column-major), SELL-P (sliced ELL with aligned
// per-slice strides), Hybrid (ELL regular part plus COO remainder) and
// Sparsity (pattern-only CSR with one shared value).
//
// These containers are deliberately thin: they store, they apply, they write
// back to the coordinate exchange representation. All structural work,
// deciding pad widths, splitting hybrid parts, slicing, happens in the csr
// package's conversion kernels, which are the only constructors used in
// practice.
package formats
