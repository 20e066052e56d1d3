// SPDX-License-Identifier: MIT
// Package coord: sentinel error set.
// All entry points return these sentinels; tests match them via errors.Is.
// Wrap with fmt.Errorf("op: %w", ErrX) only at outer boundaries.

package coord

import "errors"

var (
	// ErrBadShape is returned when a matrix shape is negative.
	ErrBadShape = errors.New("coord: invalid shape")

	// ErrIndexOutOfRange is returned when an entry's row or column index
	// falls outside the declared shape.
	ErrIndexOutOfRange = errors.New("coord: entry index out of range")

	// ErrDimensionMismatch is returned when Apply operands do not conform to
	// the matrix shape.
	ErrDimensionMismatch = errors.New("coord: dimension mismatch")
)
