// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/binary"

	"github.com/katalvlaran/detinfer/fixed"
)

// headerSize is rows uint16 LE followed by cols uint16 LE.
const headerSize = 4

// EncodedLen returns the encoded size of m in bytes.
func (m *Matrix) EncodedLen() int {
	return headerSize + len(m.data)*fixed.Size
}

// AppendBinary appends the wire form of m to dst:
// rows uint16 LE | cols uint16 LE | rows*cols × int32 LE.
func (m *Matrix) AppendBinary(dst []byte) ([]byte, error) {
	dst = binary.LittleEndian.AppendUint16(dst, m.rows)
	dst = binary.LittleEndian.AppendUint16(dst, m.cols)

	return fixed.AppendSlice(dst, m.data), nil
}

// MarshalBinary returns the wire form of m.
func (m *Matrix) MarshalBinary() ([]byte, error) {
	return m.AppendBinary(make([]byte, 0, m.EncodedLen()))
}

// Decode reads one encoded matrix from buf into dst and returns a view over
// dst together with the number of bytes consumed.
//
// Errors:
//   - ErrBadHeader: len(buf) < 4.
//   - ErrBufferTooSmall: dst cannot hold rows*cols scalars.
//   - fixed.ErrShortBuffer: buf ends before the payload does.
//
// On error dst is untouched.
func Decode(buf []byte, dst []fixed.Fixed) (Matrix, int, error) {
	if len(buf) < headerSize {
		return Matrix{}, 0, matrixErrorf(opDecode, ErrBadHeader)
	}
	rows := binary.LittleEndian.Uint16(buf[0:])
	cols := binary.LittleEndian.Uint16(buf[2:])
	n := int(rows) * int(cols)
	if len(dst) < n {
		return Matrix{}, 0, matrixErrorf(opDecode, ErrBufferTooSmall)
	}
	if len(buf)-headerSize < n*fixed.Size {
		return Matrix{}, 0, matrixErrorf(opDecode, fixed.ErrShortBuffer)
	}

	m := Matrix{data: dst[:n:n], rows: rows, cols: cols}
	if err := fixed.ReadSlice(m.data, buf[headerSize:]); err != nil {
		return Matrix{}, 0, matrixErrorf(opDecode, err)
	}

	return m, headerSize + n*fixed.Size, nil
}
