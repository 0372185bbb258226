// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"

	"github.com/katalvlaran/detinfer/fixed"
)

// MemoryMode controls how DTW stores its DP matrix.
type MemoryMode int

const (
	// FullMatrix keeps the entire (n+1)×(m+1) matrix; supports ReturnPath.
	FullMatrix MemoryMode = iota

	// TwoRows keeps only the previous and current row; distance only.
	TwoRows
)

// NoWindow disables the Sakoe–Chiba constraint.
const NoWindow = -1

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window        maximum |i-j| (Sakoe–Chiba band); NoWindow disables it.
//   - SlopePenalty  cost added to insertion/deletion steps; must be >= 0.
//   - ReturnPath    backtrack and return the warping path (FullMatrix only).
//   - MemoryMode    FullMatrix or TwoRows.
type Options struct {
	Window       int
	SlopePenalty fixed.Fixed
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns unconstrained, penalty-free, distance-only options.
func DefaultOptions() Options {
	return Options{
		Window:       NoWindow,
		SlopePenalty: fixed.Zero,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}

// Coord is one aligned pair (index into a, index into b).
type Coord struct {
	I, J int
}

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options (Window < -1, negative penalty,
	// unknown memory mode).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath without FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrNoAlignment indicates that the window excludes every path to (n-1, m-1).
	ErrNoAlignment = errors.New("dtw: no alignment within window")
)
