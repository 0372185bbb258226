// SPDX-License-Identifier: MIT

// Package table provides a fixed-capacity, deterministic key/value store
// over a caller-owned []Entry.
//
// 🚀 What is here?
//
//   - Jenkins one-at-a-time hashing of byte strings (endianness and word-size
//     independent), slot = hash % capacity, linear probing.
//   - Keys are stored NUL-terminated in 32-byte slots; longer keys are
//     truncated to MaxKeyLen bytes on insert and on lookup alike, so a long
//     key always finds what it stored.
//   - Iteration strictly by slot index: the same insertion sequence yields
//     the same order and the same byte image on every run and platform.
//   - No allocation after Init; the table never grows.
//
// A Table is not safe for concurrent mutation.
//
// Values are plain int32. Downstream code stores Q16.16 parameters with
// InsertFixed and reads them back with Fixed.
package table
