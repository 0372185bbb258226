// SPDX-License-Identifier: MIT

// Package vector provides the deterministic dot product over Q16.16 slices.
//
// Vectors are plain []fixed.Fixed with an explicit length supplied at the
// call site. Dot accumulates raw products in a 64-bit register in strictly
// ascending index order and quantizes once at the end, with the same
// half-unit rounding as fixed.Fixed.Mul.
package vector
