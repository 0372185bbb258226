// SPDX-License-Identifier: MIT

// Package fixed implements the Q16.16 fixed-point scalar used by every
// detinfer compute path.
//
// A Fixed is a signed 32-bit integer interpreted as raw/65536. The raw bit
// pattern is the wire and ABI contract: identical inputs produce identical
// raw values on every platform.
//
// Arithmetic:
//   - Add, Sub, Neg, Abs are exact same-scale integer operations (two's
//     complement wrap on overflow).
//   - Mul widens to int64, adds Half, shifts right by Shift (round half up).
//   - Div widens the dividend left by Shift and truncates toward zero. It does
//     not round; the asymmetry with Mul is intentional. Division by Zero
//     returns Zero.
//
// Conversions from float or int (FromFloat, FromInt) are meant for
// initialization only and are outside the bit-exactness contract.
//
// Acc is the 64-bit multiply-accumulate register shared by vector.Dot,
// matrix.Multiply and conv.Conv2D; Quantize applies the same rounding rule
// as Mul.
package fixed
