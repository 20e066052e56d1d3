// SPDX-License-Identifier: MIT
// Package csr: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered conditions; panics are
// reserved for programmer errors in private helpers.

package csr

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape or nonzero count is
	// negative.
	ErrBadShape = errors.New("csr: invalid shape")

	// ErrOutOfRange is returned when adopted buffers are too small for the
	// declared shape (undersized colIdxs or rowPtrs).
	ErrOutOfRange = errors.New("csr: buffer size out of range")

	// ErrDimensionMismatch is returned when Apply operands or conversion
	// targets do not conform to the matrix shape.
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")

	// ErrNilStrategy is returned when a constructor or SetStrategy receives
	// a nil strategy. There is no implicit default bound to a default
	// device; the caller must choose.
	ErrNilStrategy = errors.New("csr: nil strategy")

	// ErrNilOperand is returned when an Apply operand is nil.
	ErrNilOperand = errors.New("csr: nil operand")

	// ErrBadPermutation is returned when a permutation slice has the wrong
	// length or is not a bijection over its index range.
	ErrBadPermutation = errors.New("csr: invalid permutation")

	// ErrIndexOutOfRange is returned when an element access names a position
	// outside the matrix shape.
	ErrIndexOutOfRange = errors.New("csr: index out of range")
)

func errPosition(i, j, rows, cols int) error {
	return fmt.Errorf("position (%d,%d) outside %dx%d: %w", i, j, rows, cols, ErrIndexOutOfRange)
}
