// SPDX-License-Identifier: MIT

// Command fxbench exercises the detinfer kernels outside of go test:
// latency distribution (timing), bit-exact reproducibility (digest) and a
// host feature report (platform).
//
// Usage:
//
//	fxbench timing --iterations 10000 --warmup 1000
//	fxbench digest --runs 1000 --dim 10 --seed 1
//	fxbench platform
//	fxbench --verbose digest
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
