// SPDX-License-Identifier: MIT

package csr

import "github.com/lumerio/sparsela/backend"

// At returns the stored coefficient at (i, j), or zero when the position is
// not part of the pattern. Complexity: O(rowLen) for the probed row.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, errPosition(i, j, m.rows, m.cols)
	}
	for p := m.rowPtrs[i]; p < m.rowPtrs[i+1]; p++ {
		if int(m.colIdxs[p]) == j {
			return m.values[p], nil
		}
	}
	return 0, nil
}

// NNZInRow reports how many coefficients row i stores.
func (m *Matrix) NNZInRow(i int) (int, error) {
	if i < 0 || i >= m.rows {
		return 0, errPosition(i, 0, m.rows, 1)
	}
	return int(m.rowPtrs[i+1] - m.rowPtrs[i]), nil
}

// ExtractDiagonal collects the stored diagonal coefficients. Positions
// missing from the pattern contribute zero. Complexity: O(nnz).
func (m *Matrix) ExtractDiagonal() []float64 {
	n := m.rows
	if m.cols < n {
		n = m.cols
	}
	diag := make([]float64, n)
	backend.Run(m.ctx, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for p := m.rowPtrs[i]; p < m.rowPtrs[i+1]; p++ {
				if int(m.colIdxs[p]) == i {
					diag[i] = m.values[p]
					break
				}
			}
		}
	})
	return diag
}

// Scale multiplies every stored coefficient by alpha in place.
func (m *Matrix) Scale(alpha float64) {
	backend.Run(m.ctx, len(m.values), func(lo, hi int) {
		for p := lo; p < hi; p++ {
			m.values[p] *= alpha
		}
	})
}

// InvScale divides every stored coefficient by alpha in place.
func (m *Matrix) InvScale(alpha float64) {
	m.Scale(1 / alpha)
}
