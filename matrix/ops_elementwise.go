// SPDX-License-Identifier: MIT
// Package matrix: elementwise kernels.
//
// Determinism & Performance:
//   - Single flat pass over the row-major buffer, ascending linear index.
//   - No allocation; out may alias a or b (each cell is read before written).

package matrix

import (
	"github.com/katalvlaran/detinfer"
	"github.com/katalvlaran/detinfer/fixed"
)

// Add computes out[k] = a[k] + b[k] (exact, wrapping) for every linear index.
//
// Errors (out is untouched in every case):
//   - ErrInvalidArgument: a, b or out is nil.
//   - ErrDimensionMismatch: the three shapes differ.
//
// Under detinfer.WithSilent the error is suppressed and nil is returned.
// Complexity: O(rows*cols), no allocation.
func Add(a, b, out *Matrix, opts ...detinfer.Option) error {
	if err := validateNotNil(a, b, out); err != nil {
		return detinfer.Gather(opts...).Violation(opAdd, err, shapeAttrs(a, b, out)...)
	}
	if err := validateSameShape(a, b, out); err != nil {
		return detinfer.Gather(opts...).Violation(opAdd, err, shapeAttrs(a, b, out)...)
	}

	ad, bd, od := a.data, b.data, out.data
	for k := range od {
		od[k] = ad[k].Add(bd[k])
	}

	return nil
}

// Apply replaces every element with fn(element) in ascending linear order.
// Determinism extends only as far as fn's.
//
// Errors (m is untouched):
//   - ErrInvalidArgument: m or fn is nil.
//
// Under detinfer.WithSilent the error is suppressed and nil is returned.
func Apply(m *Matrix, fn func(fixed.Fixed) fixed.Fixed, opts ...detinfer.Option) error {
	if m == nil || fn == nil {
		return detinfer.Gather(opts...).Violation(opApply, ErrInvalidArgument,
			"nilMatrix", m == nil, "nilFunc", fn == nil)
	}

	d := m.data
	for k := range d {
		d[k] = fn(d[k])
	}

	return nil
}
