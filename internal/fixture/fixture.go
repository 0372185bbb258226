// SPDX-License-Identifier: MIT

// Package fixture builds deterministic Q16.16 test and benchmark data.
//
// Every generator takes an explicit seed and draws from its own
// rand.Rand, so fixtures are reproducible across runs and independent of
// any global RNG state.
package fixture

import (
	"math/rand"

	"github.com/katalvlaran/detinfer/fixed"
)

// rngFrom returns a local rand seeded by seed.
func rngFrom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Vector returns n values drawn uniformly from [lo, hi).
func Vector(n int, seed int64, lo, hi float64) []fixed.Fixed {
	out := make([]fixed.Fixed, n)
	Fill(out, seed, lo, hi)

	return out
}

// Fill overwrites buf with values drawn uniformly from [lo, hi).
func Fill(buf []fixed.Fixed, seed int64, lo, hi float64) {
	rng := rngFrom(seed)
	span := hi - lo
	for i := range buf {
		buf[i] = fixed.FromFloat(lo + rng.Float64()*span)
	}
}

// Ramp writes start, start+step, start+2*step, ... into buf using exact
// fixed-point addition.
func Ramp(buf []fixed.Fixed, start, step fixed.Fixed) {
	v := start
	for i := range buf {
		buf[i] = v
		v = v.Add(step)
	}
}

// Const writes v into every slot of buf.
func Const(buf []fixed.Fixed, v fixed.Fixed) {
	for i := range buf {
		buf[i] = v
	}
}

// Ints converts integers to Fixed.
func Ints(vs ...int32) []fixed.Fixed {
	out := make([]fixed.Fixed, len(vs))
	for i, v := range vs {
		out[i] = fixed.FromInt(v)
	}

	return out
}
