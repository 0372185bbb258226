// SPDX-License-Identifier: MIT

// Package matrix provides a non-owning, row-major Q16.16 matrix view and the
// deterministic kernels that operate on it: elementwise Add, in-place Apply
// and integer GEMM (Multiply).
//
// 🚀 What is here?
//
//	Matrix    {data []fixed.Fixed; rows, cols uint16} bound over a caller-owned
//	          flat buffer; element (i, j) lives at data[i*cols + j].
//	Add       out[k] = a[k] + b[k] for every linear index k.
//	Apply     m[k] = fn(m[k]) in ascending k.
//	Multiply  out = a × b with an int64 accumulator per output cell and a
//	          single round-half-up quantization.
//
// ✨ Guarantees
//
//   - Bit-exact: identical inputs give identical output bytes on any platform,
//     independent of where the buffers live.
//   - Fixed loop nests (i → j → k), no early exit, no data-dependent branches
//     inside a kernel.
//   - Zero allocations on every compute path.
//   - Contract violations (shape mismatch, nil operand, aliased output) leave
//     the destination untouched. They return a sentinel error by default or
//     nil under detinfer.WithSilent.
//
// 🔧 Usage
//
//	var wBuf, xBuf, yBuf [4]fixed.Fixed
//	w, _ := matrix.New(wBuf[:], 2, 2)
//	x, _ := matrix.New(xBuf[:], 2, 2)
//	y, _ := matrix.New(yBuf[:], 2, 2)
//	_ = matrix.Multiply(&w, &x, &y)
//
// Wire format (AppendBinary / Decode):
//
//	rows uint16 LE | cols uint16 LE | rows*cols × int32 LE
package matrix
