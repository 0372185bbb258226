// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping (DTW) distances between Q16.16
// sequences, with an optional alignment path.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative |a[i] - b[j]|. Inference pipelines use it
//	to match a sensor window against stored templates.
//
// ✨ Key features:
//   - integer DP: costs are summed in int64 raw Q16.16 units, so distances
//     and paths are bit-identical on every platform
//   - full-matrix mode: O(N·M) memory, supports path recovery
//   - two-rows mode: O(M) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty added to every non-diagonal step
//   - ties resolve diagonal → insertion → deletion, in the DP and on backtrack
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10
//	opts.SlopePenalty = fixed.FromFloat(0.5)
//	opts.ReturnPath = true
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package dtw
