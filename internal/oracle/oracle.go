// SPDX-License-Identifier: MIT

// Package oracle computes float64 reference results for the fixed-point
// kernels. It is a verification aid only: float arithmetic and the SIMD
// paths inside algo-vecmath are never used on a certified path.
package oracle

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/detinfer/fixed"
	"github.com/katalvlaran/detinfer/matrix"
)

// ToFloats converts Q16.16 values to float64 (exact).
func ToFloats(src []fixed.Fixed) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = v.ToFloat()
	}

	return out
}

// Dot returns the float64 dot product of a and b over min(len(a), len(b)).
func Dot(a, b []fixed.Fixed) float64 {
	n := min(len(a), len(b))
	prod := make([]float64, n)
	vecmath.MulBlock(prod, ToFloats(a[:n]), ToFloats(b[:n]))

	return sum(prod)
}

// Multiply returns the float64 row-major product a × b, or nil when the
// shapes are incompatible.
func Multiply(a, b *matrix.Matrix) []float64 {
	if a.Cols() != b.Rows() {
		return nil
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out := make([]float64, rows*cols)
	row := make([]float64, inner)
	col := make([]float64, inner)
	prod := make([]float64, inner)
	bd := b.Data()
	for i := 0; i < rows; i++ {
		copy(row, ToFloats(a.Row(i)))
		for j := 0; j < cols; j++ {
			for k := 0; k < inner; k++ {
				col[k] = bd[k*cols+j].ToFloat()
			}
			vecmath.MulBlock(prod, row, col)
			out[i*cols+j] = sum(prod)
		}
	}

	return out
}

// MaxAbsError returns max |got[i] - want[i]| over the common prefix.
func MaxAbsError(got []fixed.Fixed, want []float64) float64 {
	var worst float64
	for i := 0; i < min(len(got), len(want)); i++ {
		worst = math.Max(worst, math.Abs(got[i].ToFloat()-want[i]))
	}

	return worst
}

// sum adds xs in ascending order.
func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}
