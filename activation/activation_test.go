// SPDX-License-Identifier: MIT

package activation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detinfer/activation"
	"github.com/katalvlaran/detinfer/fixed"
	"github.com/katalvlaran/detinfer/internal/fixture"
	"github.com/katalvlaran/detinfer/matrix"
)

func f(x float64) fixed.Fixed { return fixed.FromFloat(x) }

func TestScalarActivations(t *testing.T) {
	cases := []struct {
		name string
		fn   activation.Func
		in   fixed.Fixed
		want fixed.Fixed
	}{
		{"identity", activation.Identity, f(-3.25), f(-3.25)},
		{"relu negative", activation.ReLU, f(-0.5), fixed.Zero},
		{"relu positive", activation.ReLU, f(2.75), f(2.75)},
		{"relu min", activation.ReLU, fixed.Min, fixed.Zero},
		{"hardtanh low", activation.HardTanh, f(-7), -fixed.One},
		{"hardtanh mid", activation.HardTanh, f(0.125), f(0.125)},
		{"hardtanh high", activation.HardTanh, fixed.Max, fixed.One},
		{"clamp", activation.Clamp(f(-2), f(3)), f(4), f(3)},
		{"clamp inside", activation.Clamp(f(-2), f(3)), f(1.5), f(1.5)},
		{"leaky negative", activation.LeakyReLU(f(0.25)), f(-2), f(-0.5)},
		{"leaky positive", activation.LeakyReLU(f(0.25)), f(2), f(2)},
		{"scale", activation.Scale(f(1.5)), f(-3), f(-4.5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.fn(tc.in))
		})
	}
}

func TestLeakyReLURounding(t *testing.T) {
	// -1 ULP * 0.5 = -0.5 ULP rounds half up to 0
	require.Equal(t, fixed.Zero, activation.LeakyReLU(fixed.Half)(-fixed.Epsilon))
}

func TestClampPanics(t *testing.T) {
	require.Panics(t, func() { activation.Clamp(fixed.One, fixed.Zero) })
	require.NotPanics(t, func() { activation.Clamp(fixed.One, fixed.One) })
}

func TestWithApply(t *testing.T) {
	m, err := matrix.New(make([]fixed.Fixed, 4), 2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Load(fixture.Ints(-3, -1, 0, 2)))

	require.NoError(t, matrix.Apply(&m, activation.HardTanh))
	require.Equal(t, fixture.Ints(-1, -1, 0, 1), m.Data())
	require.NoError(t, matrix.Apply(&m, activation.ReLU))
	require.Equal(t, fixture.Ints(0, 0, 0, 1), m.Data())
}
