// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/detinfer/conv"
	"github.com/katalvlaran/detinfer/fixed"
	"github.com/katalvlaran/detinfer/matrix"
)

// Default workload sizes.
const (
	DefaultIterations = 10000
	DefaultWarmup     = 1000
)

type timingConfig struct {
	iterations int
	warmup     int
}

func newTimingCmd() *cobra.Command {
	cfg := timingConfig{iterations: DefaultIterations, warmup: DefaultWarmup}

	cmd := &cobra.Command{
		Use:   "timing",
		Short: "Measure the latency distribution of Conv2D (16x16 * 3x3) and Multiply (10x10)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.iterations <= 0 || cfg.warmup < 0 {
				return fmt.Errorf("timing: iterations must be > 0 and warmup >= 0")
			}
			return runTiming(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().IntVar(&cfg.iterations, "iterations", cfg.iterations, "measured iterations per operation")
	cmd.Flags().IntVar(&cfg.warmup, "warmup", cfg.warmup, "unmeasured warm-up iterations per operation")

	return cmd
}

// workload is a bound kernel call with its operands.
type workload struct {
	name string
	run  func() error
}

func timingWorkloads() ([]workload, error) {
	var (
		inBuf   [16 * 16]fixed.Fixed
		kBuf    [3 * 3]fixed.Fixed
		convBuf [14 * 14]fixed.Fixed
		aBuf    [10 * 10]fixed.Fixed
		bBuf    [10 * 10]fixed.Fixed
		cBuf    [10 * 10]fixed.Fixed
	)
	in, err := matrix.New(inBuf[:], 16, 16)
	if err != nil {
		return nil, err
	}
	k, err := matrix.New(kBuf[:], 3, 3)
	if err != nil {
		return nil, err
	}
	convOut, err := matrix.New(convBuf[:], 14, 14)
	if err != nil {
		return nil, err
	}
	a, err := matrix.New(aBuf[:], 10, 10)
	if err != nil {
		return nil, err
	}
	b, err := matrix.New(bBuf[:], 10, 10)
	if err != nil {
		return nil, err
	}
	c, err := matrix.New(cBuf[:], 10, 10)
	if err != nil {
		return nil, err
	}

	in.Fill(fixed.Half)
	k.Fill(fixed.One)
	a.Fill(fixed.Half)
	b.Fill(fixed.Half)

	return []workload{
		{"Conv2D 16x16 * 3x3", func() error { return conv.Conv2D(&in, &k, &convOut) }},
		{"Multiply 10x10 * 10x10", func() error { return matrix.Multiply(&a, &b, &c) }},
	}, nil
}

// measure runs w warmup times, then records iterations latencies.
func measure(w workload, cfg timingConfig) ([]time.Duration, error) {
	for i := 0; i < cfg.warmup; i++ {
		if err := w.run(); err != nil {
			return nil, err
		}
	}
	samples := make([]time.Duration, cfg.iterations)
	for i := range samples {
		start := time.Now()
		err := w.run()
		samples[i] = time.Since(start)
		if err != nil {
			return nil, err
		}
	}

	return samples, nil
}

func runTiming(out io.Writer, cfg timingConfig) error {
	loads, err := timingWorkloads()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "warmup=%d iterations=%d\n", cfg.warmup, cfg.iterations)
	for _, w := range loads {
		samples, err := measure(w, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", w.name, err)
		}
		if err := printSummary(out, w.name, Summarize(samples)); err != nil {
			return err
		}
	}

	return nil
}
