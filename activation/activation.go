// SPDX-License-Identifier: MIT

// Package activation provides pure Q16.16 scalar activations for
// matrix.Apply. Every function is deterministic and branch-light; none
// allocates.
package activation

import (
	"fmt"

	"github.com/katalvlaran/detinfer/fixed"
)

// Func is the elementwise transform accepted by matrix.Apply.
type Func = func(fixed.Fixed) fixed.Fixed

// Identity returns v unchanged.
func Identity(v fixed.Fixed) fixed.Fixed { return v }

// ReLU returns max(v, 0).
func ReLU(v fixed.Fixed) fixed.Fixed { return max(v, fixed.Zero) }

// HardTanh clamps v to [-1, 1].
func HardTanh(v fixed.Fixed) fixed.Fixed { return min(max(v, -fixed.One), fixed.One) }

// Clamp returns a function clamping to [lo, hi]. Panics if lo > hi.
func Clamp(lo, hi fixed.Fixed) Func {
	if lo > hi {
		panic(fmt.Sprintf("activation: Clamp(%v, %v): lo > hi", lo, hi))
	}

	return func(v fixed.Fixed) fixed.Fixed { return min(max(v, lo), hi) }
}

// LeakyReLU returns v for v >= 0 and slope·v (fixed.Mul rounding) otherwise.
func LeakyReLU(slope fixed.Fixed) Func {
	return func(v fixed.Fixed) fixed.Fixed {
		if v >= 0 {
			return v
		}
		return v.Mul(slope)
	}
}

// Scale returns a function multiplying by s (fixed.Mul rounding).
func Scale(s fixed.Fixed) Func {
	return func(v fixed.Fixed) fixed.Fixed { return v.Mul(s) }
}
