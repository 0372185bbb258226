// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/detinfer"
	"github.com/katalvlaran/detinfer/fixed"
)

// Re-exported sentinels so callers can match vector.ErrX with errors.Is.
var (
	ErrDimensionMismatch = detinfer.ErrDimensionMismatch
	ErrInvalidArgument   = detinfer.ErrInvalidArgument
)

const opDot = "vector.Dot"

// Dot returns Σ a[i]*b[i] for i in [0, n), quantized to Q16.16.
//
// Behavior highlights:
//   - Products are summed in fixed.Acc (int64) in ascending i; one rounding
//     step at the end.
//   - No early exit: the loop runs exactly n times.
//
// Errors (the result is fixed.Zero in every case):
//   - ErrInvalidArgument: a or b is nil, or n < 0.
//   - ErrDimensionMismatch: n exceeds len(a) or len(b).
//
// Under detinfer.WithSilent the error is suppressed and nil is returned.
//
// Complexity: O(n) time, O(1) space, no allocation.
func Dot(a, b []fixed.Fixed, n int, opts ...detinfer.Option) (fixed.Fixed, error) {
	if a == nil || b == nil || n < 0 {
		o := detinfer.Gather(opts...)
		return fixed.Zero, o.Violation(opDot, ErrInvalidArgument, "n", n)
	}
	if n > len(a) || n > len(b) {
		o := detinfer.Gather(opts...)
		return fixed.Zero, o.Violation(opDot, ErrDimensionMismatch,
			"n", n, "lenA", len(a), "lenB", len(b))
	}

	return dot(a[:n], b[:n]), nil
}

// dot is the unchecked kernel; len(a) == len(b) is established by the caller.
func dot(a, b []fixed.Fixed) fixed.Fixed {
	var acc fixed.Acc
	for i := range a {
		acc = acc.MulAdd(a[i], b[i])
	}

	return acc.Quantize()
}
