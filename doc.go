// SPDX-License-Identifier: MIT

// Package detinfer is a set of deterministic, allocation-free numeric
// primitives for certified inference pipelines.
//
// 🚀 What is detinfer?
//
//	A small, pure-Go core that produces bit-identical results on every
//	platform, compiler and call count:
//		• fixed/       Q16.16 scalar (add, sub, mul with rounding, div)
//		• vector/      dot product with a 64-bit accumulator
//		• matrix/      non-owning row-major views, Add, Apply, Multiply (GEMM)
//		• conv/        valid-mode 2-D convolution built on the same accumulator
//		• activation/  pure scalar transforms for matrix.Apply
//		• table/       fixed-capacity, linear-probing string→int32 store
//		• dtw/         integer dynamic time warping over Q16.16 sequences
//
// ✨ Guarantees
//
//   - No floating point on any compute path; float helpers exist only for
//     initialization and are outside the bit-exactness contract.
//   - No allocation on success paths; callers own every buffer.
//   - Fixed loop nesting with no data-dependent branches, so instruction count
//     is a pure function of the operand shapes (WCET friendly).
//   - No SIMD, no goroutines, no package-level mutable state except the
//     diagnostic logger pointer.
//
// This root package holds the cross-cutting pieces shared by the compute
// packages: sentinel errors, the contract-violation policy (Option) and the
// diagnostic logger.
//
// Contract violations (shape mismatch, nil operands) never modify the
// destination. By default they are reported as errors; WithSilent restores
// the legacy behavior of returning nil so that certified call sites keep a
// single, unconditional control path:
//
//	err := matrix.Multiply(&a, &b, &c)               // strict: ErrDimensionMismatch
//	err  = matrix.Multiply(&a, &b, &c, detinfer.WithSilent()) // legacy: nil
//
//	go get github.com/katalvlaran/detinfer
package detinfer
