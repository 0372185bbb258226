// SPDX-License-Identifier: MIT

package dtw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detinfer/dtw"
	"github.com/katalvlaran/detinfer/fixed"
	"github.com/katalvlaran/detinfer/internal/fixture"
)

// TestDTW_EmptyInput verifies ErrEmptyInput for either empty sequence.
func TestDTW_EmptyInput(t *testing.T) {
	_, _, err := dtw.DTW(nil, fixture.Ints(1, 2, 3), nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)

	_, _, err = dtw.DTW(fixture.Ints(1, 2, 3), []fixed.Fixed{}, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)
}

// TestDTW_BadOptions covers every rejected option value.
func TestDTW_BadOptions(t *testing.T) {
	one := fixture.Ints(1)
	cases := map[string]func(*dtw.Options){
		"window":  func(o *dtw.Options) { o.Window = -2 },
		"penalty": func(o *dtw.Options) { o.SlopePenalty = -fixed.One },
		"mode":    func(o *dtw.Options) { o.MemoryMode = dtw.MemoryMode(7) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			opts := dtw.DefaultOptions()
			mutate(&opts)
			_, _, err := dtw.DTW(one, one, &opts)
			assert.ErrorIs(t, err, dtw.ErrBadInput)
		})
	}
}

// TestDTW_PathNeedsMatrix ensures ReturnPath with TwoRows is rejected.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.TwoRows

	_, _, err := dtw.DTW(fixture.Ints(1, 2), fixture.Ints(1, 2), &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix)
}

// TestDTW_Identical verifies zero distance and no path by default.
func TestDTW_Identical(t *testing.T) {
	a := fixture.Ints(0, 1, 2)

	dist, path, err := dtw.DTW(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, fixed.Zero, dist)
	assert.Nil(t, path)
}

// TestDTW_StretchedMatch checks a perfect warped match and its path.
func TestDTW_StretchedMatch(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW(fixture.Ints(1, 2, 3), fixture.Ints(1, 2, 2, 3), &opts)
	require.NoError(t, err)
	assert.Equal(t, fixed.Zero, dist)
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, path)
}

// TestDTW_SlopePenalty charges the single non-diagonal step.
func TestDTW_SlopePenalty(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.SlopePenalty = fixed.Half

	dist, _, err := dtw.DTW(fixture.Ints(1, 2, 3), fixture.Ints(1, 2, 2, 3), &opts)
	require.NoError(t, err)
	assert.Equal(t, fixed.Half, dist)
}

// TestDTW_Cost sums |a-b| along the diagonal.
func TestDTW_Cost(t *testing.T) {
	a := []fixed.Fixed{0, 0, 0}
	b := []fixed.Fixed{fixed.One, fixed.Half, -fixed.One}

	dist, _, err := dtw.DTW(a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, fixed.FromFloat(2.5), dist)
}

// TestDTW_WindowConstraint: window 0 only admits the diagonal, which cannot
// reach the corner when lengths differ.
func TestDTW_WindowConstraint(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = 0

	_, _, err := dtw.DTW(fixture.Ints(1, 2, 3), fixture.Ints(1, 2, 3, 4), &opts)
	assert.ErrorIs(t, err, dtw.ErrNoAlignment)

	opts.Window = 1
	dist, _, err := dtw.DTW(fixture.Ints(1, 2, 3), fixture.Ints(1, 2, 3, 4), &opts)
	require.NoError(t, err)
	assert.Equal(t, fixed.One, dist) // 3 aligned with 4
}

// TestDTW_ModesAgree compares FullMatrix and TwoRows on seeded data.
func TestDTW_ModesAgree(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		a := fixture.Vector(40, seed, -10, 10)
		b := fixture.Vector(33, seed+100, -10, 10)
		full := dtw.DefaultOptions()
		full.Window = 12
		full.SlopePenalty = fixed.FromFloat(0.25)
		rows := full
		rows.MemoryMode = dtw.TwoRows

		d1, _, err := dtw.DTW(a, b, &full)
		require.NoError(t, err)
		d2, _, err := dtw.DTW(a, b, &rows)
		require.NoError(t, err)
		assert.Equal(t, d1, d2, "seed %d", seed)

		// DTW is symmetric in its arguments
		d3, _, err := dtw.DTW(b, a, &rows)
		require.NoError(t, err)
		assert.Equal(t, d1, d3, "seed %d", seed)
	}
}

// TestDTW_PathIsMonotone checks path endpoints and step shape.
func TestDTW_PathIsMonotone(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	a := fixture.Vector(25, 7, -5, 5)
	b := fixture.Vector(18, 8, -5, 5)

	_, path, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	require.Equal(t, dtw.Coord{I: 0, J: 0}, path[0])
	require.Equal(t, dtw.Coord{I: 24, J: 17}, path[len(path)-1])
	for k := 1; k < len(path); k++ {
		di, dj := path[k].I-path[k-1].I, path[k].J-path[k-1].J
		require.True(t, (di == 1 || di == 0) && (dj == 1 || dj == 0) && di+dj > 0, "step %d", k)
	}
}

// TestDTW_Saturates reports distances beyond the Q16.16 range as fixed.Max.
func TestDTW_Saturates(t *testing.T) {
	a := []fixed.Fixed{fixed.Max, fixed.Max}
	b := []fixed.Fixed{fixed.Min, fixed.Min}

	dist, _, err := dtw.DTW(a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, fixed.Max, dist)
}
