// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"

	"github.com/katalvlaran/detinfer/fixed"
)

// Matrix is a non-owning row-major view over a caller-owned []fixed.Fixed.
// rows and cols are bounded by uint16; element (i, j) lives at
// data[i*cols + j]. The zero value is a valid 0×0 view.
//
// A Matrix never allocates, frees or resizes its buffer. Copying a Matrix
// copies the view, not the data.
type Matrix struct {
	data []fixed.Fixed // re-sliced to exactly rows*cols, cap clipped
	rows uint16
	cols uint16
}

// New binds a rows×cols view over buf and zeroes its first rows*cols slots.
//
// Errors:
//   - ErrInvalidArgument: buf is nil and rows*cols > 0.
//   - ErrBufferTooSmall: len(buf) < rows*cols.
//
// On error buf is untouched.
// Complexity: O(rows*cols).
func New(buf []fixed.Fixed, rows, cols uint16) (Matrix, error) {
	var m Matrix
	if err := m.bind(buf, rows, cols); err != nil {
		return Matrix{}, matrixErrorf(opNew, err)
	}

	return m, nil
}

// Init rebinds m as a rows×cols view over buf and zeroes rows*cols slots.
// It has the same errors as New plus ErrInvalidArgument for a nil receiver.
// On error both m and buf are untouched.
func (m *Matrix) Init(buf []fixed.Fixed, rows, cols uint16) error {
	if m == nil {
		return matrixErrorf(opInit, ErrInvalidArgument)
	}
	if err := m.bind(buf, rows, cols); err != nil {
		return matrixErrorf(opInit, err)
	}

	return nil
}

// bind validates, then zeroes and records the view.
func (m *Matrix) bind(buf []fixed.Fixed, rows, cols uint16) error {
	n := int(rows) * int(cols)
	if buf == nil && n > 0 {
		return ErrInvalidArgument
	}
	if len(buf) < n {
		return ErrBufferTooSmall
	}
	data := buf[:n:n]
	clear(data)
	m.data, m.rows, m.cols = data, rows, cols

	return nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return int(m.rows) }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return int(m.cols) }

// Len returns rows*cols.
func (m *Matrix) Len() int { return len(m.data) }

// Data returns the borrowed row-major slice (len == rows*cols). Writes through
// it are visible to the view.
func (m *Matrix) Data() []fixed.Fixed { return m.data }

// Row returns the borrowed slice of row i, or nil if i is out of range.
func (m *Matrix) Row(i int) []fixed.Fixed {
	if i < 0 || i >= int(m.rows) {
		return nil
	}
	c := int(m.cols)

	return m.data[i*c : (i+1)*c : (i+1)*c]
}

// indexOf returns the flat offset of (i, j) or ErrOutOfRange.
func (m *Matrix) indexOf(i, j int) (int, error) {
	if i < 0 || i >= int(m.rows) || j < 0 || j >= int(m.cols) {
		return 0, ErrOutOfRange
	}

	return i*int(m.cols) + j, nil
}

// At returns element (i, j).
func (m *Matrix) At(i, j int) (fixed.Fixed, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return fixed.Zero, matrixErrorf(opAt, err)
	}

	return m.data[idx], nil
}

// Set assigns element (i, j).
func (m *Matrix) Set(i, j int, v fixed.Fixed) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return matrixErrorf(opSet, err)
	}
	m.data[idx] = v

	return nil
}

// Load copies src into the view in row-major order.
// len(src) must equal Len, otherwise ErrDimensionMismatch and m is untouched.
func (m *Matrix) Load(src []fixed.Fixed) error {
	if len(src) != len(m.data) {
		return matrixErrorf(opLoad, ErrDimensionMismatch)
	}
	copy(m.data, src)

	return nil
}

// Fill writes v into every element.
func (m *Matrix) Fill(v fixed.Fixed) {
	for k := range m.data {
		m.data[k] = v
	}
}

// Equal reports whether m and other have the same shape and bit-identical
// elements. A nil view equals only another nil view.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Matrix) String() string {
	var sb strings.Builder
	r, c := int(m.rows), int(m.cols)
	for i := 0; i < r; i++ {
		sb.WriteByte('[')
		base := i * c
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[base+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
