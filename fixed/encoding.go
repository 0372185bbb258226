// SPDX-License-Identifier: MIT

package fixed

import (
	"encoding/binary"
	"errors"
)

// Size is the encoded size of one Fixed in bytes.
const Size = 4

// ErrShortBuffer is returned when a decode buffer holds fewer than Size bytes.
var ErrShortBuffer = errors.New("fixed: short buffer")

// AppendBinary appends the little-endian raw bits of a to dst.
func (a Fixed) AppendBinary(dst []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint32(dst, uint32(a)), nil
}

// MarshalBinary returns the 4-byte little-endian encoding of a.
func (a Fixed) MarshalBinary() ([]byte, error) {
	return a.AppendBinary(make([]byte, 0, Size))
}

// UnmarshalBinary decodes the first Size bytes of data into a.
func (a *Fixed) UnmarshalBinary(data []byte) error {
	if len(data) < Size {
		return ErrShortBuffer
	}
	*a = Fixed(binary.LittleEndian.Uint32(data))

	return nil
}

// PutSlice writes src into dst as consecutive little-endian words and returns
// the number of bytes written. dst must hold len(src)*Size bytes.
func PutSlice(dst []byte, src []Fixed) (int, error) {
	n := len(src) * Size
	if len(dst) < n {
		return 0, ErrShortBuffer
	}
	for i, v := range src {
		binary.LittleEndian.PutUint32(dst[i*Size:], uint32(v))
	}

	return n, nil
}

// AppendSlice appends src to dst as consecutive little-endian words.
func AppendSlice(dst []byte, src []Fixed) []byte {
	for _, v := range src {
		dst = binary.LittleEndian.AppendUint32(dst, uint32(v))
	}

	return dst
}

// ReadSlice decodes len(dst) words from src into dst.
func ReadSlice(dst []Fixed, src []byte) error {
	if len(src) < len(dst)*Size {
		return ErrShortBuffer
	}
	for i := range dst {
		dst[i] = Fixed(binary.LittleEndian.Uint32(src[i*Size:]))
	}

	return nil
}
