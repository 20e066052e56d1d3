// SPDX-License-Identifier: MIT

// Package backend: host SIMD lane-width detection.
// Detection runs once; the result seeds the warp width of host contexts so
// that warp-aware strategies built from them use a geometry that matches the
// machine instead of a hard-coded accelerator constant.
package backend

import "golang.org/x/sys/cpu"

// hostLanes caches the detected float64 lane width of the host.
var hostLanes = detectHostLanes()

// hostLaneWidth returns the float64 SIMD lane width of the host, >= 1.
func hostLaneWidth() int { return hostLanes }

// detectHostLanes probes CPU features via golang.org/x/sys/cpu.
// AVX-512 fits 8 float64 per vector, AVX2 fits 4, NEON fits 2.
func detectHostLanes() int {
	switch {
	case cpu.X86.HasAVX512F:
		return 8
	case cpu.X86.HasAVX2:
		return 4
	case cpu.ARM64.HasASIMD:
		return 2
	default:
		return 1
	}
}
