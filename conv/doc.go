// SPDX-License-Identifier: MIT

// Package conv provides deterministic valid-mode 2-D convolution over
// Q16.16 matrix views.
//
// Conv2D slides the kernel over the input with stride 1 and no padding, and
// does not flip the kernel (cross-correlation, the form inference layers
// use). Each output cell accumulates its window in an int64 fixed.Acc in
// (ki, kj) ascending order and is quantized once with the GEMM rounding rule,
// so results are bit-identical across platforms.
//
// # Shapes
//
//	in: R×C, kernel: KR×KC  →  out: (R-KR+1)×(C-KC+1)
//
// OutputShape computes the required out shape; a mismatched out is a
// contract violation handled by the detinfer policy (error by default,
// silent no-op under detinfer.WithSilent).
package conv
