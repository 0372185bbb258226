// SPDX-License-Identifier: MIT
// Package matrix: integer GEMM.
//
// Loop nest is fixed i → j → k. Each output cell owns one fixed.Acc (int64)
// and is quantized once, so the result never depends on blocking, SIMD width
// or summation order.

package matrix

import (
	"github.com/katalvlaran/detinfer"
	"github.com/katalvlaran/detinfer/fixed"
)

// Multiply computes out = a × b.
//
// Preconditions: a.Cols == b.Rows, out.Rows == a.Rows, out.Cols == b.Cols,
// and out does not start at the first element of a or b.
//
// Errors (out is untouched in every case):
//   - ErrInvalidArgument: a, b or out is nil.
//   - ErrDimensionMismatch: incompatible shapes.
//   - ErrAliasedOutput: out shares its first element with a or b.
//
// Under detinfer.WithSilent the error is suppressed and nil is returned.
// Complexity: O(a.Rows * a.Cols * b.Cols) time, no allocation.
func Multiply(a, b, out *Matrix, opts ...detinfer.Option) error {
	if err := validateNotNil(a, b, out); err != nil {
		return detinfer.Gather(opts...).Violation(opMultiply, err, shapeAttrs(a, b, out)...)
	}
	if err := validateMulShapes(a, b, out); err != nil {
		return detinfer.Gather(opts...).Violation(opMultiply, err, shapeAttrs(a, b, out)...)
	}
	if err := validateNoAlias(a, b, out); err != nil {
		return detinfer.Gather(opts...).Violation(opMultiply, err, shapeAttrs(a, b, out)...)
	}

	gemm(a.data, b.data, out.data, int(a.rows), int(a.cols), int(b.cols))

	return nil
}

// gemm is the unchecked kernel over flat row-major buffers:
// a is rows×inner, b is inner×cols, out is rows×cols.
func gemm(a, b, out []fixed.Fixed, rows, inner, cols int) {
	for i := 0; i < rows; i++ {
		aRow := a[i*inner : (i+1)*inner]
		oRow := out[i*cols : (i+1)*cols]
		for j := 0; j < cols; j++ {
			var acc fixed.Acc
			for k := 0; k < inner; k++ {
				acc = acc.MulAdd(aRow[k], b[k*cols+j])
			}
			oRow[j] = acc.Quantize()
		}
	}
}
