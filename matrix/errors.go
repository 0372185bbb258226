// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every sentinel is an alias of the detinfer root sentinel, so callers may
// match either matrix.ErrX or detinfer.ErrX with errors.Is. Exported
// operations wrap them with an op tag ("matrix.Multiply: ...").

package matrix

import (
	"errors"

	"github.com/katalvlaran/detinfer"
)

var (
	// ErrDimensionMismatch indicates incompatible shapes: Add on different
	// shapes, or Multiply where a.Cols != b.Rows or out has the wrong shape.
	ErrDimensionMismatch = detinfer.ErrDimensionMismatch

	// ErrInvalidArgument indicates a nil view, nil buffer or nil function.
	ErrInvalidArgument = detinfer.ErrInvalidArgument

	// ErrBufferTooSmall indicates len(buf) < rows*cols at bind/decode time.
	ErrBufferTooSmall = detinfer.ErrBufferTooSmall

	// ErrOutOfRange indicates a row or column index outside the view.
	ErrOutOfRange = detinfer.ErrOutOfRange

	// ErrAliasedOutput indicates that Multiply's out starts at the same
	// element as a or b.
	ErrAliasedOutput = detinfer.ErrAliasedOutput

	// ErrBadHeader indicates an encoded matrix shorter than its 4-byte header.
	ErrBadHeader = errors.New("matrix: truncated header")
)

// Backward-compatible aliases.
var (
	// ErrNilMatrix is the historical name of ErrInvalidArgument for nil views.
	ErrNilMatrix = ErrInvalidArgument
	// ErrIndexOutOfBounds is the historical name of ErrOutOfRange.
	ErrIndexOutOfBounds = ErrOutOfRange
)

// Operation tags used in wrapped errors and diagnostics.
const (
	opNew      = "matrix.New"
	opInit     = "matrix.Init"
	opAt       = "matrix.At"
	opSet      = "matrix.Set"
	opAdd      = "matrix.Add"
	opApply    = "matrix.Apply"
	opMultiply = "matrix.Multiply"
	opDecode   = "matrix.Decode"
	opLoad     = "matrix.Load"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(op string, err error) error {
	return detinfer.OpError(op, err)
}
