// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

// runMain runs the command and formats its stdout, its stderr (each line
// prefixed with "stderr: ") and the exit code.
func runMain(args []string) string {
	var stdout, stderr bytes.Buffer
	code := New(&stdout, &stderr).Main(args)

	var buf strings.Builder
	buf.WriteString(stdout.String())
	for _, line := range crstrings.Lines(stderr.String()) {
		fmt.Fprintf(&buf, "stderr: %s\n", line)
	}
	fmt.Fprintf(&buf, "exit code: %d\n", code)
	return buf.String()
}

func TestCLI(t *testing.T) {
	datadriven.RunTest(t, "testdata/cli", func(t *testing.T, td *datadriven.TestData) string {
		if td.Cmd != "inttree" {
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
		args := make([]string, 0, len(td.CmdArgs))
		for _, arg := range td.CmdArgs {
			args = append(args, arg.String())
		}
		args = append(args, strings.Fields(td.Input)...)
		return runMain(args)
	})
}

func TestInvalidInputsPrintNoTree(t *testing.T) {
	for _, args := range [][]string{nil, {""}, {"abc"}, {"-3"}, {"0"}} {
		var stdout, stderr bytes.Buffer
		code := New(&stdout, &stderr).Main(args)
		require.Equal(t, 1, code, "args %q", args)
		require.Empty(t, stdout.String(), "args %q", args)
		require.NotEmpty(t, stderr.String(), "args %q", args)
	}
}

func TestEmptyArgument(t *testing.T) {
	require.Equal(t,
		"stderr: Error: \"\": tree depth must be a valid integer\nexit code: 1\n",
		runMain([]string{""}))
}

func TestBadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 1, New(&stdout, &stderr).Main([]string{"--format=json", "3"}))
	require.Contains(t, stderr.String(), `unknown format: "json"`)
	require.Empty(t, stdout.String())

	stderr.Reset()
	require.Equal(t, 1, New(&stdout, &stderr).Main([]string{"--fill=ab", "3"}))
	require.Contains(t, stderr.String(), `expected a single character, got "ab"`)
}

func TestStatsFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, New(&stdout, &stderr).Main([]string{"-f", "stats", "--plot-height=4", "6"}))
	out := stdout.String()
	require.True(t, strings.HasPrefix(out, "level nodes min max sum\n"), out)
	require.Contains(t, out, "    6    32   1  16 342\n")
	require.Contains(t, out, "max value per level")
	require.Empty(t, stderr.String())
}

func TestLargeDepthWarns(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, New(&stdout, &stderr).Main([]string{"--format=levels", "12"}))
	warning := stderr.String()
	require.True(t, strings.HasPrefix(warning, "building a tree of depth 12 with "), warning)
	require.True(t, strings.HasSuffix(warning, " nodes\n"), warning)
	require.Len(t, crstrings.Lines(stdout.String()), 12)
}

func TestNegativeFlagValues(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, New(&stdout, &stderr).Main([]string{"--plot-height", "-2", "-f", "stats", "3"}))
	require.Contains(t, stdout.String(), "level nodes min max sum")
	require.Empty(t, stderr.String())
}

func TestPositional(t *testing.T) {
	testCases := []struct {
		in  []string
		out []string
	}{
		{in: nil, out: nil},
		{in: []string{"3"}, out: []string{"3"}},
		{in: []string{"-v", "3"}, out: []string{"-v", "3"}},
		{in: []string{"-3"}, out: []string{"--", "-3"}},
		{in: []string{"-v", "-3"}, out: []string{"-v", "--", "-3"}},
		{in: []string{"--", "-3"}, out: []string{"--", "-3"}},
		{in: []string{"-"}, out: []string{"-"}},
		// Negative values of flags that take one are not depths.
		{in: []string{"--max-depth", "-3", "5"}, out: []string{"--max-depth", "-3", "5"}},
		{in: []string{"--plot-height", "-2", "-4"}, out: []string{"--plot-height", "-2", "--", "-4"}},
		{in: []string{"-f", "-1"}, out: []string{"-f", "-1"}},
		{in: []string{"-vf", "-1"}, out: []string{"-vf", "-1"}},
		{in: []string{"--max-depth=5", "-3"}, out: []string{"--max-depth=5", "--", "-3"}},
		{in: []string{"--verbose", "-3"}, out: []string{"--verbose", "--", "-3"}},
	}
	for _, tc := range testCases {
		tool := New(io.Discard, io.Discard)
		require.Equal(t, tc.out, tool.positional(tc.in), "%q", tc.in)
	}
}
