// SPDX-License-Identifier: MIT
// Package matrix: shape and argument checks shared by the kernels.
//
// Every validator is pure, allocates nothing and returns a bare sentinel;
// the calling operation routes it through detinfer.Options.Violation so the
// strict/silent policy is applied in exactly one place.

package matrix

// validateNotNil rejects nil views.
func validateNotNil(ms ...*Matrix) error {
	for _, m := range ms {
		if m == nil {
			return ErrInvalidArgument
		}
	}

	return nil
}

// validateSameShape requires a, b and out to share one shape.
// Assumes all three are non-nil.
func validateSameShape(a, b, out *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}
	if a.rows != out.rows || a.cols != out.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulShapes requires a.cols == b.rows, out.rows == a.rows and
// out.cols == b.cols. Assumes all three are non-nil.
func validateMulShapes(a, b, out *Matrix) error {
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}
	if out.rows != a.rows || out.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateNoAlias rejects an out view whose first element is the first
// element of a or b. Empty views never alias.
func validateNoAlias(a, b, out *Matrix) error {
	if len(out.data) == 0 {
		return nil
	}
	first := &out.data[0]
	if len(a.data) > 0 && first == &a.data[0] {
		return ErrAliasedOutput
	}
	if len(b.data) > 0 && first == &b.data[0] {
		return ErrAliasedOutput
	}

	return nil
}

// shapeAttrs returns slog attributes describing the operand shapes.
// Called only on the violation path.
func shapeAttrs(ms ...*Matrix) []any {
	names := [...]string{"a", "b", "out"}
	attrs := make([]any, 0, 2*len(ms))
	for i, m := range ms {
		if i >= len(names) {
			break
		}
		if m == nil {
			attrs = append(attrs, names[i], "nil")
			continue
		}
		attrs = append(attrs, names[i], [2]int{m.Rows(), m.Cols()})
	}

	return attrs
}
