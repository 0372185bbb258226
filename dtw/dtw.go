// SPDX-License-Identifier: MIT

package dtw

import (
	"math"

	"github.com/katalvlaran/detinfer/fixed"
)

// inf marks unreachable cells; far enough below MaxInt64 that adding a cost
// and a penalty cannot wrap.
const inf = math.MaxInt64 / 4

// DTW computes the Dynamic Time Warping distance between a and b.
//
// Algorithm (D is (n+1)×(m+1), raw Q16.16 units in int64):
//  1. D[0][0] = 0, D[i][0] = D[0][j] = inf.
//  2. For i = 1..n, j = 1..m with |i-j| <= Window:
//     D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//  3. distance = D[n][m], saturated to fixed.Max.
//
// opts == nil means DefaultOptions(). The returned path runs from (0,0) to
// (n-1,m-1) and is nil unless opts.ReturnPath.
//
// Errors: ErrEmptyInput, ErrBadInput, ErrPathNeedsMatrix, ErrNoAlignment.
func DTW(a, b []fixed.Fixed, opts *Options) (distance fixed.Fixed, path []Coord, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	if o.Window < NoWindow || o.SlopePenalty < 0 || (o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows) {
		return 0, nil, ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	var total int64
	if o.MemoryMode == FullMatrix {
		dp := fillFull(a, b, o)
		total = dp[n*(m+1)+m]
		if total < inf && o.ReturnPath {
			path = backtrack(dp, a, b, int64(o.SlopePenalty))
		}
	} else {
		total = fillTwoRows(a, b, o)
	}
	if total >= inf {
		return 0, nil, ErrNoAlignment
	}

	return saturate(total), path, nil
}

// outside reports whether (i, j) (1-based) falls outside the window.
func outside(i, j, window int) bool {
	if window == NoWindow {
		return false
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d > window
}

// cost returns |x - y| in raw units without int32 overflow.
func cost(x, y fixed.Fixed) int64 {
	d := int64(x) - int64(y)
	if d < 0 {
		d = -d
	}

	return d
}

// best returns min(match, ins, del); ties keep the earlier candidate.
func best(match, ins, del int64) int64 {
	v := match
	if ins < v {
		v = ins
	}
	if del < v {
		v = del
	}

	return v
}

func fillFull(a, b []fixed.Fixed, o Options) []int64 {
	n, m := len(a), len(b)
	w := m + 1
	p := int64(o.SlopePenalty)
	dp := make([]int64, (n+1)*w)
	for j := 1; j <= m; j++ {
		dp[j] = inf
	}
	for i := 1; i <= n; i++ {
		dp[i*w] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				dp[i*w+j] = inf
				continue
			}
			dp[i*w+j] = cost(a[i-1], b[j-1]) + best(dp[(i-1)*w+j-1], dp[(i-1)*w+j]+p, dp[i*w+j-1]+p)
		}
	}

	return dp
}

func fillTwoRows(a, b []fixed.Fixed, o Options) int64 {
	n, m := len(a), len(b)
	p := int64(o.SlopePenalty)
	prev := make([]int64, m+1)
	curr := make([]int64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}
	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			curr[j] = cost(a[i-1], b[j-1]) + best(prev[j-1], prev[j]+p, curr[j-1]+p)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack walks from (n, m) to (1, 1) preferring diagonal, then
// insertion (i-1), then deletion (j-1), and returns the 0-based path.
func backtrack(dp []int64, a, b []fixed.Fixed, p int64) []Coord {
	n, m := len(a), len(b)
	w := m + 1
	path := make([]Coord, 0, n+m-1)
	i, j := n, m
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		prev := dp[i*w+j] - cost(a[i-1], b[j-1])
		switch {
		case dp[(i-1)*w+j-1] == prev:
			i, j = i-1, j-1
		case dp[(i-1)*w+j]+p == prev:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func saturate(v int64) fixed.Fixed {
	if v > math.MaxInt32 {
		return fixed.Max
	}

	return fixed.Fixed(v)
}
