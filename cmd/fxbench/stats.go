// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
)

// Summary describes a latency sample set.
type Summary struct {
	Count int

	Min, Max, Mean time.Duration
	P50, P95, P99  time.Duration

	// StdDev is the population standard deviation around Mean, in ns.
	StdDev float64

	// Jitter is Max-Min; JitterPct is Jitter relative to Mean.
	Jitter    time.Duration
	JitterPct float64

	// P99Jitter is P99-Min; P99JitterPct is P99Jitter relative to P50.
	P99Jitter    time.Duration
	P99JitterPct float64

	// MinP99 is Min/P99; 1.0 means every sample up to P99 took the same time.
	MinP99 float64
}

// Summarize computes a Summary. Percentiles are nearest-rank on the sorted
// samples at index count*p/100. samples is not modified.
func Summarize(samples []time.Duration) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}
	ns := lo.Map(samples, func(d time.Duration, _ int) int64 { return d.Nanoseconds() })
	sorted := slices.Clone(ns)
	slices.Sort(sorted)

	s := Summary{
		Count: n,
		Min:   time.Duration(sorted[0]),
		Max:   time.Duration(sorted[n-1]),
		Mean:  time.Duration(lo.Sum(ns) / int64(n)),
		P50:   time.Duration(sorted[n/2]),
		P95:   time.Duration(sorted[n*95/100]),
		P99:   time.Duration(sorted[n*99/100]),
	}

	var sq float64
	for _, v := range ns {
		d := float64(v) - float64(s.Mean)
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(n))

	s.Jitter = s.Max - s.Min
	s.P99Jitter = s.P99 - s.Min
	s.JitterPct = ratio(float64(s.Jitter)*100, float64(s.Mean))
	s.P99JitterPct = ratio(float64(s.P99Jitter)*100, float64(s.P50))
	s.MinP99 = ratio(float64(s.Min), float64(s.P99))

	return s
}

// ratio returns a/b, or 0 when b is 0 (sub-resolution timings).
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	return a / b
}

// Evaluate grades a Summary. P99 jitter below 5% is excellent and below 10%
// good. A Max above twice P99 is reported as OS interference.
func Evaluate(s Summary) []string {
	var out []string
	switch {
	case s.P99JitterPct < 5:
		out = append(out, "EXCELLENT: P99 jitter < 5%")
	case s.P99JitterPct < 10:
		out = append(out, "GOOD: P99 jitter < 10%")
	default:
		out = append(out, "WARNING: P99 jitter >= 10%")
	}
	if f := ratio(float64(s.Max), float64(s.P99)); f > 2 {
		out = append(out, fmt.Sprintf("NOTE: max is %.1fx P99 (OS interference)", f))
	}
	switch {
	case s.MinP99 > 0.95:
		out = append(out, "EXCELLENT: 99% of samples within 5% of min")
	case s.MinP99 > 0.90:
		out = append(out, "GOOD: 99% of samples within 10% of min")
	}

	return out
}

// printSummary writes an aligned report for one operation.
func printSummary(w io.Writer, name string, s Summary) error {
	fmt.Fprintf(w, "\n%s (%d iterations)\n", name, s.Count)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  mean\t%d ns\n", s.Mean.Nanoseconds())
	fmt.Fprintf(tw, "  p50\t%d ns\n", s.P50.Nanoseconds())
	fmt.Fprintf(tw, "  min\t%d ns\n", s.Min.Nanoseconds())
	fmt.Fprintf(tw, "  p95\t%d ns\n", s.P95.Nanoseconds())
	fmt.Fprintf(tw, "  p99\t%d ns\n", s.P99.Nanoseconds())
	fmt.Fprintf(tw, "  max\t%d ns\n", s.Max.Nanoseconds())
	fmt.Fprintf(tw, "  jitter\t%d ns\t(%.2f%% of mean)\n", s.Jitter.Nanoseconds(), s.JitterPct)
	fmt.Fprintf(tw, "  p99 jitter\t%d ns\t(%.2f%% of p50)\n", s.P99Jitter.Nanoseconds(), s.P99JitterPct)
	fmt.Fprintf(tw, "  stddev\t%.2f ns\n", s.StdDev)
	fmt.Fprintf(tw, "  min/p99\t%.4f\n", s.MinP99)
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, line := range Evaluate(s) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	return nil
}
