// SPDX-License-Identifier: MIT

package conv

import (
	"fmt"

	"github.com/katalvlaran/detinfer"
	"github.com/katalvlaran/detinfer/fixed"
	"github.com/katalvlaran/detinfer/matrix"
)

// Errors returned by convolution functions.
var (
	ErrDimensionMismatch = detinfer.ErrDimensionMismatch
	ErrInvalidArgument   = detinfer.ErrInvalidArgument
	ErrAliasedOutput     = detinfer.ErrAliasedOutput

	// ErrEmptyKernel is a dimension mismatch caused by a 0-row or 0-col kernel.
	ErrEmptyKernel = fmt.Errorf("conv: empty kernel: %w", detinfer.ErrDimensionMismatch)

	// ErrKernelTooLarge is a dimension mismatch caused by a kernel that does
	// not fit inside the input.
	ErrKernelTooLarge = fmt.Errorf("conv: kernel larger than input: %w", detinfer.ErrDimensionMismatch)
)

const (
	opConv2D      = "conv.Conv2D"
	opOutputShape = "conv.OutputShape"
)

// OutputShape returns the valid-mode output shape of in convolved with kernel.
func OutputShape(in, kernel *matrix.Matrix) (rows, cols uint16, err error) {
	if in == nil || kernel == nil {
		return 0, 0, detinfer.OpError(opOutputShape, ErrInvalidArgument)
	}
	r, c, err := outputShape(in, kernel)
	if err != nil {
		return 0, 0, detinfer.OpError(opOutputShape, err)
	}

	return r, c, nil
}

func outputShape(in, kernel *matrix.Matrix) (uint16, uint16, error) {
	kr, kc := kernel.Rows(), kernel.Cols()
	if kr == 0 || kc == 0 {
		return 0, 0, ErrEmptyKernel
	}
	if kr > in.Rows() || kc > in.Cols() {
		return 0, 0, ErrKernelTooLarge
	}

	return uint16(in.Rows() - kr + 1), uint16(in.Cols() - kc + 1), nil
}

// Conv2D computes the valid-mode cross-correlation of in with kernel into out.
//
// Errors (out is untouched in every case):
//   - ErrInvalidArgument: in, kernel or out is nil.
//   - ErrDimensionMismatch (ErrEmptyKernel, ErrKernelTooLarge): kernel empty
//     or larger than in, or out not (R-KR+1)×(C-KC+1).
//   - ErrAliasedOutput: out starts at the first element of in or kernel.
//
// Under detinfer.WithSilent the error is suppressed and nil is returned.
// Complexity: O(outRows*outCols*KR*KC), no allocation.
func Conv2D(in, kernel, out *matrix.Matrix, opts ...detinfer.Option) error {
	if in == nil || kernel == nil || out == nil {
		return detinfer.Gather(opts...).Violation(opConv2D, ErrInvalidArgument)
	}
	or, oc, err := outputShape(in, kernel)
	if err != nil {
		return detinfer.Gather(opts...).Violation(opConv2D, err,
			"in", [2]int{in.Rows(), in.Cols()}, "kernel", [2]int{kernel.Rows(), kernel.Cols()})
	}
	if out.Rows() != int(or) || out.Cols() != int(oc) {
		return detinfer.Gather(opts...).Violation(opConv2D, ErrDimensionMismatch,
			"out", [2]int{out.Rows(), out.Cols()}, "want", [2]int{int(or), int(oc)})
	}
	if aliased(out, in) || aliased(out, kernel) {
		return detinfer.Gather(opts...).Violation(opConv2D, ErrAliasedOutput)
	}

	valid(in.Data(), kernel.Data(), out.Data(), in.Cols(), kernel.Rows(), kernel.Cols(), int(or), int(oc))

	return nil
}

// valid is the unchecked kernel. in has inCols columns; kernel is kr×kc;
// out is or×oc.
func valid(in, kernel, out []fixed.Fixed, inCols, kr, kc, or, oc int) {
	for i := 0; i < or; i++ {
		for j := 0; j < oc; j++ {
			var acc fixed.Acc
			for ki := 0; ki < kr; ki++ {
				row := in[(i+ki)*inCols+j : (i+ki)*inCols+j+kc]
				kRow := kernel[ki*kc : (ki+1)*kc]
				for kj := 0; kj < kc; kj++ {
					acc = acc.MulAdd(row[kj], kRow[kj])
				}
			}
			out[i*oc+j] = acc.Quantize()
		}
	}
}

// aliased reports whether two non-empty views start at the same element.
func aliased(a, b *matrix.Matrix) bool {
	ad, bd := a.Data(), b.Data()
	return len(ad) > 0 && len(bd) > 0 && &ad[0] == &bd[0]
}
