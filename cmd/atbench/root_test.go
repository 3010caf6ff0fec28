package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/at/internal/regress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintResults(t *testing.T) {
	b := regress.NewBaseline()
	b.Results = []regress.Result{
		{Name: regress.NativeCase, NsPerOp: 0.5, N: 1000000000},
		{Name: regress.AtCase, NsPerOp: 0.75, N: 1200000},
	}

	var buf bytes.Buffer
	printResults(&buf, b)

	out := buf.String()
	assert.Contains(t, out, "1,000,000,000")
	assert.Contains(t, out, "1,200,000")
	assert.Contains(t, out, "x1.50")
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"run", "check"}, names)

	check, _, err := root.Find([]string{"check"})
	require.NoError(t, err)
	assert.Equal(t, "0.1", check.Flags().Lookup("tolerance").DefValue)
}

func TestCheckMissingBaseline(t *testing.T) {
	root := newRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"check", "--baseline", t.TempDir() + "/missing.yaml"})

	err := root.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "read baseline"))
}

// suiteRunner times the first case of each suite pass (native_index) at
// nativeNs and every other case at otherNs. It assumes one round per case.
func suiteRunner(nativeNs, otherNs int) regress.Runner {
	n := len(regress.DefaultCases())
	calls := 0
	return func(func(b *testing.B)) testing.BenchmarkResult {
		ns := otherNs
		if calls%n == 0 {
			ns = nativeNs
		}
		calls++
		return testing.BenchmarkResult{N: 1000, T: time.Duration(ns*1000) * time.Nanosecond}
	}
}

func execute(t *testing.T, runner regress.Runner, args ...string) (string, error) {
	t.Helper()

	root := newRootCmdWith(&rootFlags{runner: runner})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--rounds", "1"))

	err := root.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.yaml")

	out, err := execute(t, suiteRunner(1, 1), "run", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "baseline written to "+path)

	t.Run("unchanged", func(t *testing.T) {
		out, err := execute(t, suiteRunner(1, 1), "check", "--baseline", path)
		require.NoError(t, err)
		assert.Contains(t, out, "no regressions")
	})

	t.Run("twice as slow", func(t *testing.T) {
		_, err := execute(t, suiteRunner(2, 2), "check", "--baseline", path)
		assert.ErrorIs(t, err, errRegressed)
	})

	t.Run("overhead above limit", func(t *testing.T) {
		_, err := execute(t, suiteRunner(1, 2), "check", "--baseline", path,
			"--tolerance", "5", "--max-overhead", "1.1")
		assert.ErrorIs(t, err, errRegressed)
	})

	t.Run("overhead within limit", func(t *testing.T) {
		out, err := execute(t, suiteRunner(1, 2), "check", "--baseline", path,
			"--tolerance", "5", "--max-overhead", "3")
		require.NoError(t, err)
		assert.Contains(t, out, "no regressions")
	})
}
