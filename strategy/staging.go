// SPDX-License-Identifier: MIT

// Package strategy: cross-context staging for Process.
package strategy

import (
	"slices"

	"github.com/lumerio/sparsela/backend"
)

// ProcessOn computes srow for row pointers bound to ctx, honoring the
// staging contract: data not directly addressable from the host is first
// materialized on ctx's master, the policy runs against the host copies, and
// the result is committed back only when the destination differs from the
// staging buffer's context. Both steps are plain copies, no aliasing and no
// in-place donation, so the policy itself never learns where the matrix
// lives.
func ProcessOn(s Strategy, ctx backend.Context, rowPtrs, srow []int32) {
	if ctx == ctx.Master() {
		s.Process(rowPtrs, srow)
		return
	}
	// Materialize to the accessible context.
	hostPtrs := slices.Clone(rowPtrs)
	hostSrow := make([]int32, len(srow))
	s.Process(hostPtrs, hostSrow)
	// Commit back to the owning context.
	copy(srow, hostSrow)
}
