// SPDX-License-Identifier: MIT

package fixed

import (
	"math"
	"strconv"
)

// FromInt converts an integer to Fixed. n must lie in [-32768, 32767];
// larger magnitudes wrap.
func FromInt(n int32) Fixed {
	return Fixed(n << Shift)
}

// ToInt returns the integer part of a, rounded toward negative infinity
// (arithmetic shift).
func (a Fixed) ToInt() int32 {
	return int32(a >> Shift)
}

// Round returns a rounded to the nearest integer, halves up.
func (a Fixed) Round() int32 {
	return int32((int64(a) + int64(Half)) >> Shift)
}

// FromFloat converts a float64 to Fixed, rounding half away from zero and
// saturating to [Min, Max]. NaN converts to Zero.
//
// Initialization only: float rounding is outside the bit-exactness contract.
func FromFloat(f float64) Fixed {
	if math.IsNaN(f) {
		return Zero
	}

	return saturate(math.Round(f * float64(One)))
}

// FromFloat32 converts a float32 to Fixed with the FromFloat rules.
func FromFloat32(f float32) Fixed {
	return FromFloat(float64(f))
}

// ToFloat converts a to float64. Exact: every Q16.16 value is representable.
func (a Fixed) ToFloat() float64 {
	return float64(a) / float64(One)
}

// ToFloat32 converts a to float32 (may round for |a| ≥ 256).
func (a Fixed) ToFloat32() float32 {
	return float32(a.ToFloat())
}

// String formats a as the shortest decimal that round-trips its float64
// value. Every Q16.16 value has a finite decimal expansion.
func (a Fixed) String() string {
	return strconv.FormatFloat(a.ToFloat(), 'f', -1, 64)
}

// saturate clamps a float64 raw value to the int32 range.
func saturate(v float64) Fixed {
	if v >= float64(Max) {
		return Max
	}
	if v <= float64(Min) {
		return Min
	}

	return Fixed(int32(v))
}
