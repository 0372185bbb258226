// SPDX-License-Identifier: MIT

package table

import "errors"

var (
	// ErrInvalidParam indicates a nil table, an empty buffer, or an empty key
	// or one containing a NUL byte.
	ErrInvalidParam = errors.New("table: invalid parameter")

	// ErrFull indicates that every slot is occupied.
	ErrFull = errors.New("table: full")

	// ErrKeyExists indicates that the (truncated) key is already present.
	ErrKeyExists = errors.New("table: key exists")

	// ErrNotFound indicates that the (truncated) key is absent.
	ErrNotFound = errors.New("table: key not found")
)
