// SPDX-License-Identifier: MIT

package fixture

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detinfer/fixed"
)

func TestVectorReproducible(t *testing.T) {
	a := Vector(100, 42, -1, 1)
	b := Vector(100, 42, -1, 1)
	require.Equal(t, a, b)
	for i, v := range a {
		require.True(t, v >= fixed.FromInt(-1) && v <= fixed.One, "a[%d] = %v out of range", i, v)
	}
	require.NotEqual(t, a, Vector(100, 43, -1, 1))
}

func TestRampAndConst(t *testing.T) {
	buf := make([]fixed.Fixed, 4)
	Ramp(buf, fixed.Zero, fixed.Half)
	require.Equal(t, []fixed.Fixed{0, fixed.Half, fixed.One, fixed.One + fixed.Half}, buf)

	Const(buf, fixed.FromInt(999))
	require.Equal(t, Ints(999, 999, 999, 999), buf)
}
