// SPDX-License-Identifier: MIT
// Package detinfer: sentinel error set shared by the compute packages.
// Sub-packages re-export these as aliases so callers can match either
// detinfer.ErrX or pkg.ErrX with errors.Is.

package detinfer

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("detinfer: dimension mismatch")

	// ErrInvalidArgument indicates a nil operand, nil function or a negative
	// length.
	ErrInvalidArgument = errors.New("detinfer: invalid argument")

	// ErrBufferTooSmall indicates that a caller-supplied buffer cannot hold
	// rows*cols scalars.
	ErrBufferTooSmall = errors.New("detinfer: buffer too small")

	// ErrOutOfRange indicates that a row or column index is outside the view.
	ErrOutOfRange = errors.New("detinfer: index out of range")

	// ErrAliasedOutput indicates that an output view starts at the same
	// element as one of the inputs of an operation that cannot run in place.
	ErrAliasedOutput = errors.New("detinfer: output aliases an input")
)

// OpError wraps err with an operation tag. Use only when err != nil.
// The result formats as "<op>: <err>" and still matches errors.Is.
func OpError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
