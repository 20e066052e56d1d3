// SPDX-License-Identifier: MIT

// Package csr: row and column permutations.
//
// All four operations validate the permutation up front (length equal to the
// matching dimension and a bijection over it) and return a NEW matrix; the
// permutation slice itself is never mutated. The direct and inverse variants
// exist so callers never have to invert an index array by hand:
//
//	RowPermute:           out.row[i]       = in.row[perm[i]]
//	InverseRowPermute:    out.row[perm[i]] = in.row[i]
//	ColumnPermute:        out.col[j]       = in.col[perm[j]]
//	InverseColumnPermute: out.col[perm[j]] = in.col[j]
package csr

import "fmt"

// validatePermutation checks that perm is a bijection over [0, n).
func validatePermutation(perm []int32, n int) error {
	if len(perm) != n {
		return fmt.Errorf("length %d, want %d: %w", len(perm), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || int(p) >= n || seen[p] {
			return fmt.Errorf("index %d maps to %d: %w", i, p, ErrBadPermutation)
		}
		seen[p] = true
	}
	return nil
}

// RowPermute returns a new matrix whose row i is the receiver's row perm[i].
// Complexity: O(nnz + rows).
func (m *Matrix) RowPermute(perm []int32) (*Matrix, error) {
	if err := validatePermutation(perm, m.rows); err != nil {
		return nil, err
	}
	return m.gatherRows(perm), nil
}

// InverseRowPermute returns a new matrix whose row perm[i] is the receiver's
// row i, the inverse reordering of RowPermute with the same perm.
func (m *Matrix) InverseRowPermute(perm []int32) (*Matrix, error) {
	if err := validatePermutation(perm, m.rows); err != nil {
		return nil, err
	}
	inv := invertPermutation(perm)
	return m.gatherRows(inv), nil
}

// ColumnPermute returns a new matrix whose column j is the receiver's column
// perm[j]. Complexity: O(nnz + cols).
func (m *Matrix) ColumnPermute(perm []int32) (*Matrix, error) {
	if err := validatePermutation(perm, m.cols); err != nil {
		return nil, err
	}
	// out.col[j] = in.col[perm[j]] means stored index c moves to inv[c].
	return m.relabelCols(invertPermutation(perm)), nil
}

// InverseColumnPermute returns a new matrix whose column perm[j] is the
// receiver's column j.
func (m *Matrix) InverseColumnPermute(perm []int32) (*Matrix, error) {
	if err := validatePermutation(perm, m.cols); err != nil {
		return nil, err
	}
	return m.relabelCols(perm), nil
}

// invertPermutation returns the inverse bijection (already validated).
func invertPermutation(perm []int32) []int32 {
	inv := make([]int32, len(perm))
	for i, p := range perm {
		inv[p] = int32(i)
	}
	return inv
}

// gatherRows builds a new matrix whose row i is the receiver's row src[i].
func (m *Matrix) gatherRows(src []int32) *Matrix {
	out := &Matrix{
		ctx:     m.ctx,
		rows:    m.rows,
		cols:    m.cols,
		values:  make([]float64, len(m.values)),
		colIdxs: make([]int32, len(m.colIdxs)),
		strat:   m.strat,
	}
	if m.rows > 0 {
		out.rowPtrs = make([]int32, m.rows+1)
	}
	for i, s := range src {
		out.rowPtrs[i+1] = out.rowPtrs[i] + (m.rowPtrs[s+1] - m.rowPtrs[s])
	}
	for i, s := range src {
		dst := out.rowPtrs[i]
		for p := m.rowPtrs[s]; p < m.rowPtrs[s+1]; p++ {
			out.colIdxs[dst] = m.colIdxs[p]
			out.values[dst] = m.values[p]
			dst++
		}
	}
	out.makeSrow()
	return out
}

// relabelCols builds a new matrix with every stored column index c replaced
// by dst[c]. The sparsity structure (row pointers) is unchanged; within-row
// column order is whatever the relabeling produces; callers needing
// canonical order run SortByColumnIndex afterwards.
func (m *Matrix) relabelCols(dst []int32) *Matrix {
	out := &Matrix{
		ctx:     m.ctx,
		rows:    m.rows,
		cols:    m.cols,
		values:  append([]float64(nil), m.values...),
		colIdxs: make([]int32, len(m.colIdxs)),
		strat:   m.strat,
	}
	if m.rowPtrs != nil {
		out.rowPtrs = append([]int32(nil), m.rowPtrs...)
	}
	for p, c := range m.colIdxs {
		out.colIdxs[p] = dst[c]
	}
	out.makeSrow()
	return out
}
