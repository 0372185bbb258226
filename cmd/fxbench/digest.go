// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/detinfer"
	"github.com/katalvlaran/detinfer/fixed"
	"github.com/katalvlaran/detinfer/internal/fixture"
	"github.com/katalvlaran/detinfer/matrix"
)

type digestConfig struct {
	runs int
	dim  uint16
	seed int64
}

func newDigestCmd() *cobra.Command {
	cfg := digestConfig{runs: 1000, dim: 10, seed: 1}

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Run Multiply repeatedly and print the SHA-256 of its output image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sum, err := runDigest(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "runs=%d dim=%d seed=%d sha256=%s\n",
				cfg.runs, cfg.dim, cfg.seed, sum)
			return nil
		},
	}
	cmd.Flags().IntVar(&cfg.runs, "runs", cfg.runs, "number of identical multiplications")
	cmd.Flags().Uint16Var(&cfg.dim, "dim", cfg.dim, "square matrix dimension")
	cmd.Flags().Int64Var(&cfg.seed, "seed", cfg.seed, "fixture seed")

	return cmd
}

// runDigest multiplies two seeded dim×dim matrices cfg.runs times, checks
// that every run produced the same bytes and returns their hex SHA-256.
func runDigest(cfg digestConfig) (string, error) {
	if cfg.runs <= 0 || cfg.dim == 0 {
		return "", fmt.Errorf("digest: runs and dim must be > 0")
	}
	n := int(cfg.dim) * int(cfg.dim)
	a, err := matrix.New(make([]fixed.Fixed, n), cfg.dim, cfg.dim)
	if err != nil {
		return "", err
	}
	b, err := matrix.New(make([]fixed.Fixed, n), cfg.dim, cfg.dim)
	if err != nil {
		return "", err
	}
	out, err := matrix.New(make([]fixed.Fixed, n), cfg.dim, cfg.dim)
	if err != nil {
		return "", err
	}
	fixture.Fill(a.Data(), cfg.seed, -8, 8)
	fixture.Fill(b.Data(), cfg.seed+1, -8, 8)

	var first, img []byte
	for run := 0; run < cfg.runs; run++ {
		out.Fill(fixed.Zero)
		if err := matrix.Multiply(&a, &b, &out); err != nil {
			return "", err
		}
		img, err = out.AppendBinary(img[:0])
		if err != nil {
			return "", err
		}
		if run == 0 {
			first = bytes.Clone(img)
			continue
		}
		if !bytes.Equal(first, img) {
			detinfer.Logger().Error("digest: output diverged", "run", run)
			return "", fmt.Errorf("digest: run %d differs from run 0", run)
		}
	}
	detinfer.Logger().Debug("digest: all runs identical", "runs", cfg.runs, "bytes", len(first))

	return hexDigest(first), nil
}

func hexDigest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
