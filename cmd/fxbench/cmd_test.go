// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/detinfer"
)

// execute runs the command tree with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { detinfer.SetLogger(nil) })

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

var shaLine = regexp.MustCompile(`sha256=([0-9a-f]{64})`)

func TestDigestIsStable(t *testing.T) {
	first, err := execute(t, "digest", "--runs", "50", "--dim", "6", "--seed", "3")
	require.NoError(t, err)
	require.Regexp(t, shaLine, first)

	second, err := execute(t, "digest", "--runs", "5", "--dim", "6", "--seed", "3")
	require.NoError(t, err)
	require.Equal(t, shaLine.FindStringSubmatch(first)[1], shaLine.FindStringSubmatch(second)[1])

	other, err := execute(t, "digest", "--runs", "5", "--dim", "6", "--seed", "4")
	require.NoError(t, err)
	require.NotEqual(t, shaLine.FindStringSubmatch(first)[1], shaLine.FindStringSubmatch(other)[1])
}

func TestDigestRejectsBadConfig(t *testing.T) {
	_, err := runDigest(digestConfig{runs: 0, dim: 4})
	require.Error(t, err)
	_, err = runDigest(digestConfig{runs: 1, dim: 0})
	require.Error(t, err)
}

func TestTiming(t *testing.T) {
	out, err := execute(t, "timing", "--iterations", "20", "--warmup", "2")
	require.NoError(t, err)
	require.Contains(t, out, "warmup=2 iterations=20")
	require.Contains(t, out, "Conv2D 16x16 * 3x3 (20 iterations)")
	require.Contains(t, out, "Multiply 10x10 * 10x10 (20 iterations)")

	_, err = execute(t, "timing", "--iterations", "0")
	require.Error(t, err)
}

func TestTimingWorkloadsRun(t *testing.T) {
	loads, err := timingWorkloads()
	require.NoError(t, err)
	for _, w := range loads {
		require.NoError(t, w.run(), w.name)
	}
}

func TestPlatform(t *testing.T) {
	out, err := execute(t, "platform")
	require.NoError(t, err)
	require.Contains(t, out, "GOARCH:")
	require.Contains(t, out, "do not depend on these features")
}
