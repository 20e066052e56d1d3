// SPDX-License-Identifier: MIT

// Package csr: structural transposition.
package csr

// Transpose returns a new C×R matrix holding the structural transpose,
// derived from a column-count histogram; no dense intermediate is ever
// built. The result's rows come out sorted by column index.
// Complexity: O(nnz + cols).
func (m *Matrix) Transpose() *Matrix {
	return m.transposeImpl(false)
}

// ConjTranspose returns the conjugate transpose. Coefficients are real
// float64, so conjugation is the identity; the operation exists so solver
// code written against the transposable surface works unchanged.
func (m *Matrix) ConjTranspose() *Matrix {
	return m.transposeImpl(true)
}

func (m *Matrix) transposeImpl(conj bool) *Matrix {
	_ = conj // real coefficients: conj(v) == v
	out := &Matrix{
		ctx:     m.ctx,
		rows:    m.cols,
		cols:    m.rows,
		values:  make([]float64, len(m.values)),
		colIdxs: make([]int32, len(m.colIdxs)),
		strat:   m.strat,
	}
	if m.cols > 0 {
		out.rowPtrs = make([]int32, m.cols+1)
	}

	// Count entries per column, prefix-sum into the new row pointers, then
	// scatter each entry into its column's next free slot.
	for _, c := range m.colIdxs {
		out.rowPtrs[c+1]++
	}
	for i := 1; i < len(out.rowPtrs); i++ {
		out.rowPtrs[i] += out.rowPtrs[i-1]
	}
	next := make([]int32, m.cols)
	copy(next, out.rowPtrs[:m.cols])
	for i := 0; i < m.rows; i++ {
		for p := m.rowPtrs[i]; p < m.rowPtrs[i+1]; p++ {
			c := m.colIdxs[p]
			dst := next[c]
			next[c]++
			out.colIdxs[dst] = int32(i)
			out.values[dst] = m.values[p]
		}
	}
	out.makeSrow()
	return out
}
