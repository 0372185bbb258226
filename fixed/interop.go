// SPDX-License-Identifier: MIT

package fixed

import (
	"math"

	xfixed "golang.org/x/image/math/fixed"
)

// Conversions to and from the golang.org/x/image/math/fixed formats used by
// font and vector rasterizers. These exist for assembling inputs (glyph
// metrics, coverage geometry) and are not on the certified path.

const (
	// shift26 is the distance between Q16.16 and 26.6.
	shift26 = Shift - 6

	// shift52 is the distance between Q16.16 and 52.12.
	shift52 = Shift - 12
)

// ToInt26_6 converts a to 26.6, rounding the dropped bits half up.
// Every Q16.16 value fits in 26.6.
func (a Fixed) ToInt26_6() xfixed.Int26_6 {
	v := (int64(a) + 1<<(shift26-1)) >> shift26

	return xfixed.Int26_6(v)
}

// FromInt26_6 converts a 26.6 value to Fixed, saturating to [Min, Max]
// because 26.6 has ten more integer bits than Q16.16.
func FromInt26_6(v xfixed.Int26_6) Fixed {
	return saturateInt64(int64(v) << shift26)
}

// ToInt52_12 converts a to 52.12, rounding the dropped bits half up.
func (a Fixed) ToInt52_12() xfixed.Int52_12 {
	v := (int64(a) + 1<<(shift52-1)) >> shift52

	return xfixed.Int52_12(v)
}

// FromInt52_12 converts a 52.12 value to Fixed, saturating to [Min, Max].
func FromInt52_12(v xfixed.Int52_12) Fixed {
	const limit = math.MaxInt64 >> shift52
	switch {
	case int64(v) > limit:
		return Max
	case int64(v) < -limit:
		return Min
	}

	return saturateInt64(int64(v) << shift52)
}

// saturateInt64 clamps an int64 raw value to the int32 range.
func saturateInt64(v int64) Fixed {
	if v > math.MaxInt32 {
		return Max
	}
	if v < math.MinInt32 {
		return Min
	}

	return Fixed(v)
}
