// SPDX-License-Identifier: MIT
// Package formats: sentinel error set.

package formats

import "errors"

var (
	// ErrBadShape is returned on negative dimensions or pad widths.
	ErrBadShape = errors.New("formats: invalid shape")

	// ErrDimensionMismatch is returned when Apply operands do not conform.
	ErrDimensionMismatch = errors.New("formats: dimension mismatch")
)
