// SPDX-License-Identifier: MIT

package fixed

// Acc is a 64-bit multiply-accumulate register holding a Q32.32 sum of raw
// products. It carries no state beyond its value; the zero Acc is an empty
// sum.
//
// A single product of Q16.16 operands fits in 63 bits. Products of magnitude
// up to 1.0 (2^32 raw) can be summed about 2^31 times before the register
// itself overflows, far beyond the 65535-element reductions a uint16 shape
// allows.
type Acc int64

// MulAdd returns acc + a*b with the product formed in int64.
func (acc Acc) MulAdd(a, b Fixed) Acc {
	return acc + Acc(int64(a)*int64(b))
}

// Quantize narrows the Q32.32 sum back to Q16.16 with the same rule as
// Fixed.Mul: add Half, shift right by Shift, truncate to 32 bits.
func (acc Acc) Quantize() Fixed {
	s := int64(acc) + int64(Half)

	return Fixed(s >> Shift)
}
