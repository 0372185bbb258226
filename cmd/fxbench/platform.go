// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

func newPlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Print host CPU features (the kernels use none of them)",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printPlatform(cmd.OutOrStdout())
		},
	}
}

func printPlatform(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(w, "  HasASIMD:   %v\n", cpu.ARM64.HasASIMD)
		fmt.Fprintf(w, "  HasFP:      %v\n", cpu.ARM64.HasFP)
		fmt.Fprintf(w, "  HasSVE:     %v\n", cpu.ARM64.HasSVE)
		fmt.Fprintf(w, "  HasATOMICS: %v\n", cpu.ARM64.HasATOMICS)
	case "amd64":
		fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(w, "  HasSSE2:    %v\n", cpu.X86.HasSSE2)
		fmt.Fprintf(w, "  HasSSE41:   %v\n", cpu.X86.HasSSE41)
		fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
		fmt.Fprintf(w, "  HasFMA:     %v\n", cpu.X86.HasFMA)
		fmt.Fprintf(w, "  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	default:
		fmt.Fprintf(w, "no feature table for %s\n", runtime.GOARCH)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "detinfer kernels are scalar int32/int64 code; results do not depend on these features.")
}
