// SPDX-License-Identifier: MIT

package fixed

import "math"

// Fixed is a Q16.16 fixed-point number: 16 integer bits, 16 fractional bits.
//
// Range: [-32768, 32767.99998] with 1/65536 precision.
type Fixed int32

// Format constants.
const (
	// Shift is the number of fractional bits.
	Shift = 16

	// One is 1.0 (2^16).
	One Fixed = 1 << Shift

	// Half is 0.5 (2^15); the rounding bias added before every narrowing shift.
	Half Fixed = 1 << (Shift - 1)

	// Zero is 0.0.
	Zero Fixed = 0

	// Epsilon is the smallest positive value (one unit in the last place).
	Epsilon Fixed = 1

	// Max is the largest representable value, 32767.99998.
	Max Fixed = math.MaxInt32

	// Min is the smallest representable value, -32768.
	Min Fixed = math.MinInt32

	// fracMask selects the fractional bits.
	fracMask = One - 1
)

// Add returns a + b. Exact; wraps on overflow.
func (a Fixed) Add(b Fixed) Fixed {
	return a + b
}

// Sub returns a - b. Exact; wraps on overflow.
func (a Fixed) Sub(b Fixed) Fixed {
	return a - b
}

// Neg returns -a. Neg(Min) wraps to Min.
func (a Fixed) Neg() Fixed {
	return -a
}

// Abs returns |a|. Abs(Min) wraps to Min.
func (a Fixed) Abs() Fixed {
	// Branch-free: m is 0 for a >= 0 and -1 (all ones) for a < 0.
	m := a >> 31
	return (a ^ m) - m
}

// Mul returns a * b rounded to nearest (half up).
//
// The raw product is formed in int64, Half is added, and the sum is shifted
// right by Shift before narrowing. A result outside the representable range
// wraps silently.
func (a Fixed) Mul(b Fixed) Fixed {
	p := int64(a) * int64(b)
	p += int64(Half)

	return Fixed(p >> Shift)
}

// Div returns a / b truncated toward zero, or Zero when b is Zero.
//
// The dividend is widened to int64 and shifted left by Shift before the
// division. No rounding bias is applied.
func (a Fixed) Div(b Fixed) Fixed {
	if b == 0 {
		return Zero
	}
	n := int64(a) << Shift

	return Fixed(n / int64(b))
}

// Raw returns the underlying bit pattern.
func (a Fixed) Raw() int32 {
	return int32(a)
}

// FromRaw reinterprets a raw Q16.16 bit pattern.
func FromRaw(raw int32) Fixed {
	return Fixed(raw)
}

// Frac returns the fractional part as a non-negative Fixed in [0, One).
func (a Fixed) Frac() Fixed {
	return a & fracMask
}
