// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures for the view and kernels.
//   - Keep tests free of float noise: values are built from integers or
//     fixture seeds.

package matrix_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detinfer"
	"github.com/katalvlaran/detinfer/fixed"
	"github.com/katalvlaran/detinfer/internal/fixture"
	"github.com/katalvlaran/detinfer/matrix"
)

// mustNew allocates a fresh buffer and binds a rows×cols view over it.
func mustNew(tb testing.TB, rows, cols uint16) matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(make([]fixed.Fixed, int(rows)*int(cols)), rows, cols)
	require.NoError(tb, err)

	return m
}

// fromInts builds a rows×cols view holding the given integers row-major.
func fromInts(tb testing.TB, rows, cols uint16, vals ...int32) matrix.Matrix {
	tb.Helper()
	m := mustNew(tb, rows, cols)
	require.NoError(tb, m.Load(fixture.Ints(vals...)))

	return m
}

// filled builds a rows×cols view with every element set to v.
func filled(tb testing.TB, rows, cols uint16, v fixed.Fixed) matrix.Matrix {
	tb.Helper()
	m := mustNew(tb, rows, cols)
	m.Fill(v)

	return m
}

// random builds a rows×cols view of seeded values in [lo, hi).
func random(tb testing.TB, rows, cols uint16, seed int64, lo, hi float64) matrix.Matrix {
	tb.Helper()
	m := mustNew(tb, rows, cols)
	fixture.Fill(m.Data(), seed, lo, hi)

	return m
}

// snapshot copies the view's elements.
func snapshot(m *matrix.Matrix) []fixed.Fixed {
	return append([]fixed.Fixed(nil), m.Data()...)
}

// captureLog routes detinfer diagnostics into a buffer for the test duration.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	detinfer.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { detinfer.SetLogger(nil) })

	return &buf
}
