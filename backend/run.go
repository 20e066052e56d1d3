// SPDX-License-Identifier: MIT

// Package backend: bulk-synchronous dispatch helpers.
// Run and RunLanes are the only two dispatch shapes kernels need:
// a contiguous index range split into chunks, and a per-lane loop.
package backend

import "sync"

// Run executes fn over the half-open range [0, n), split into at most
// Workers() contiguous chunks. On Reference (or when n is small enough that
// a single chunk covers it) fn runs inline on the calling goroutine.
// Run returns only after every chunk completed; fn must not retain its range.
//
// Complexity: O(n) total work plus O(workers) goroutine overhead.
func Run(c Context, n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := c.workers
	if c.kind == Reference || workers <= 1 || n == 1 {
		fn(0, n)
		return
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// RunLanes executes fn once per lane index in [0, lanes), spreading lanes
// across the context's workers. Kernels that consume a per-lane srow table
// dispatch through this shape.
func RunLanes(c Context, lanes int, fn func(lane int)) {
	Run(c, lanes, func(lo, hi int) {
		for l := lo; l < hi; l++ {
			fn(l)
		}
	})
}
