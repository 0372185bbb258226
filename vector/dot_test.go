// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detinfer"
	"github.com/katalvlaran/detinfer/fixed"
	"github.com/katalvlaran/detinfer/internal/fixture"
	"github.com/katalvlaran/detinfer/internal/oracle"
	"github.com/katalvlaran/detinfer/vector"
)

// TestDotBasic checks [1,2,3]·[4,5,6] = 32.
func TestDotBasic(t *testing.T) {
	got, err := vector.Dot(fixture.Ints(1, 2, 3), fixture.Ints(4, 5, 6), 3)
	require.NoError(t, err)
	require.Equal(t, int32(32), got.ToInt())
	require.Equal(t, fixed.FromInt(32), got)
}

// TestDotPrefix checks that only the first n elements participate.
func TestDotPrefix(t *testing.T) {
	got, err := vector.Dot(fixture.Ints(1, 2, 3), fixture.Ints(4, 5, 6), 2)
	require.NoError(t, err)
	require.Equal(t, fixed.FromInt(14), got)

	got, err = vector.Dot(fixture.Ints(1, 2, 3), fixture.Ints(4, 5, 6), 0)
	require.NoError(t, err)
	require.Equal(t, fixed.Zero, got)
}

// TestDotSingleRounding checks that rounding happens once, after the sum.
func TestDotSingleRounding(t *testing.T) {
	quarter := fixed.FromRaw(1 << 14)
	a := []fixed.Fixed{fixed.Epsilon, fixed.Epsilon, fixed.Epsilon, fixed.Epsilon}
	b := []fixed.Fixed{quarter, quarter, quarter, quarter}
	got, err := vector.Dot(a, b, 4)
	require.NoError(t, err)
	require.Equal(t, fixed.Epsilon, got)
}

// TestDotViolations covers nil inputs, negative and oversized lengths under
// both policies.
func TestDotViolations(t *testing.T) {
	tests := []struct {
		name string
		a, b []fixed.Fixed
		n    int
		want error
	}{
		{"nil a", nil, fixture.Ints(1), 1, vector.ErrInvalidArgument},
		{"nil b", fixture.Ints(1), nil, 0, vector.ErrInvalidArgument},
		{"negative n", fixture.Ints(1), fixture.Ints(1), -1, vector.ErrInvalidArgument},
		{"n beyond a", fixture.Ints(1), fixture.Ints(1, 2), 2, vector.ErrDimensionMismatch},
		{"n beyond b", fixture.Ints(1, 2), fixture.Ints(1), 2, vector.ErrDimensionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vector.Dot(tt.a, tt.b, tt.n)
			require.ErrorIs(t, err, tt.want)
			require.True(t, errors.Is(err, tt.want))
			require.Equal(t, fixed.Zero, got)

			got, err = vector.Dot(tt.a, tt.b, tt.n, detinfer.WithSilent())
			require.NoError(t, err)
			require.Equal(t, fixed.Zero, got)
		})
	}
}

// TestDotDeterminism repeats a seeded dot product 1000 times.
func TestDotDeterminism(t *testing.T) {
	a := fixture.Vector(64, 11, -50, 50)
	b := fixture.Vector(64, 12, -50, 50)
	first, err := vector.Dot(a, b, len(a))
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		got, _ := vector.Dot(a, b, len(a))
		require.Equal(t, first, got)
	}
}

// TestDotMatchesOracle compares against the float64 reference.
func TestDotMatchesOracle(t *testing.T) {
	a := fixture.Vector(256, 21, -4, 4)
	b := fixture.Vector(256, 22, -4, 4)
	got, err := vector.Dot(a, b, len(a))
	require.NoError(t, err)
	require.InDelta(t, oracle.Dot(a, b), got.ToFloat(), 1.0/65536)
}

// TestDotNoAllocs proves the success path does not allocate.
func TestDotNoAllocs(t *testing.T) {
	a := fixture.Vector(32, 1, -1, 1)
	b := fixture.Vector(32, 2, -1, 1)
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = vector.Dot(a, b, len(a))
	})
	require.Zero(t, allocs)
}
