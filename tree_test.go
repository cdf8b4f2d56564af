// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package inttree

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/inttree/internal/testutils"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func formatValues(vals []int64) string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(strs, " ")
}

func TestBuildDatadriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/build", func(t *testing.T, td *datadriven.TestData) string {
		var depth int
		td.ScanArgs(t, "depth", &depth)
		opts := &Options{Logger: testutils.Logger{T: t}}
		td.MaybeScanArgs(t, "max-depth", &opts.MaxDepth)
		tree, err := Build(depth, opts)
		if err != nil {
			return fmt.Sprintf("error: %s", err)
		}

		var buf strings.Builder
		switch td.Cmd {
		case "build":
			for i := range tree.Levels() {
				fmt.Fprintf(&buf, "%s\n", formatValues(tree.Values(i)))
			}
		case "stats":
			for _, s := range tree.Stats() {
				fmt.Fprintf(&buf, "%s\n", s)
			}
		case "walk":
			tree.Walk(func(n *Node, level int) bool {
				fmt.Fprintf(&buf, "%s%s\n", strings.Repeat("  ", level), n)
				return true
			})
		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
		return buf.String()
	})
}

func TestBuildProperties(t *testing.T) {
	for depth := 1; depth <= 12; depth++ {
		t.Run(strconv.Itoa(depth), func(t *testing.T) {
			tree, err := Build(depth, nil)
			require.NoError(t, err)
			require.NoError(t, tree.check())

			require.Equal(t, depth, tree.Depth())
			require.Equal(t, depth, tree.Root.Height())
			require.Equal(t, 1<<depth-1, tree.NumNodes())
			require.Len(t, tree.Level(depth-1), 1<<(depth-1))
			require.Equal(t, int64(1), tree.Root.Value)
			require.Nil(t, tree.Root.Parent())

			var walked, leaves int
			tree.Walk(func(n *Node, level int) bool {
				walked++
				if n.IsLeaf() {
					leaves++
					require.Equal(t, depth-1, level)
				}
				return true
			})
			require.Equal(t, tree.NumNodes(), walked)
			require.Equal(t, 1<<(depth-1), leaves)

			// The outer edges stay at 1.
			for n := tree.Root; n != nil; n = n.Left {
				require.Equal(t, int64(1), n.Value)
			}
			for n := tree.Root; n != nil; n = n.Right {
				require.Equal(t, int64(1), n.Value)
			}

			for i, level := range tree.Levels() {
				vals := tree.Values(i)
				// Every level reads the same in both directions.
				for j := range vals {
					require.Equal(t, vals[j], vals[len(vals)-1-j])
				}
				if i == 0 {
					continue
				}
				// Recompute each value from the parent and the parent's neighbor
				// on the same side.
				parents := tree.Values(i - 1)
				for j, n := range level {
					p := j / 2
					want := parents[p]
					if n.Side == SideLeft && p > 0 {
						want += parents[p-1]
					}
					if n.Side == SideRight && p+1 < len(parents) {
						want += parents[p+1]
					}
					require.Equal(t, want, n.Value, "level %d node %d", i, j)
					require.Equal(t, level[j-j%2].Parent(), n.Parent())
				}
			}
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(9, nil)
	require.NoError(t, err)
	b, err := Build(9, nil)
	require.NoError(t, err)
	for i := range a.Levels() {
		if diff := pretty.Diff(a.Values(i), b.Values(i)); len(diff) > 0 {
			t.Fatalf("level %d differs:\n%s", i, strings.Join(diff, "\n"))
		}
	}
	require.Equal(t, a.Stats(), b.Stats())
}

func TestBuildKnownLevels(t *testing.T) {
	expected := map[int][]int64{
		1: {1},
		2: {1, 1},
		3: {1, 2, 2, 1},
		4: {1, 3, 3, 4, 4, 3, 3, 1},
		5: {1, 4, 4, 6, 6, 7, 7, 8, 8, 7, 7, 6, 6, 4, 4, 1},
	}
	for depth, want := range expected {
		tree, err := Build(depth, nil)
		require.NoError(t, err)
		got := tree.Values(depth - 1)
		if diff := pretty.Diff(want, got); len(diff) > 0 {
			t.Errorf("depth %d:\n%s", depth, strings.Join(diff, "\n"))
		}
	}
}

func TestBuildErrors(t *testing.T) {
	for _, depth := range []int{0, -1, -3} {
		_, err := Build(depth, nil)
		require.True(t, errors.Is(err, ErrNonPositiveDepth), "depth %d: %v", depth, err)
	}

	_, err := Build(defaultMaxDepth+1, nil)
	require.True(t, errors.Is(err, ErrDepthTooLarge))
	require.EqualError(t, err, "tree depth 21 exceeds the maximum of 20")

	_, err = Build(6, &Options{MaxDepth: 5})
	require.True(t, errors.Is(err, ErrDepthTooLarge))

	_, err = Build(3, &Options{MaxDepth: MaxSupportedDepth + 1})
	require.EqualError(t, err, "MaxDepth (31) must be <= 30")

	// Zero selects the default; negative limits are rejected rather than
	// silently replaced.
	_, err = Build(3, &Options{MaxDepth: 0})
	require.NoError(t, err)
	_, err = Build(3, &Options{MaxDepth: -7})
	require.EqualError(t, err, "MaxDepth (-7) must be positive")
	_, err = Build(3, &Options{MaxDepth: -1, WarnDepth: -2})
	require.EqualError(t, err, "MaxDepth (-1) must be positive\nWarnDepth (-2) must be positive")
}

func TestBuildWarnsOnLargeDepth(t *testing.T) {
	var logger testutils.CaptureLogger
	opts := &Options{WarnDepth: 4, Logger: &logger}

	_, err := Build(3, opts)
	require.NoError(t, err)
	require.Equal(t, "", logger.String())

	_, err = Build(4, opts)
	require.NoError(t, err)
	require.Equal(t, "[INFO] building a tree of depth 4 with 15 nodes", logger.String())
}

func TestOptionsEnsureDefaults(t *testing.T) {
	var o *Options
	o = o.EnsureDefaults()
	require.Equal(t, defaultMaxDepth, o.MaxDepth)
	require.Equal(t, defaultWarnDepth, o.WarnDepth)
	require.NotNil(t, o.Logger)
	require.NoError(t, o.Validate())

	o = (&Options{MaxDepth: 7}).EnsureDefaults()
	require.Equal(t, 7, o.MaxDepth)
}

func TestNodeString(t *testing.T) {
	tree, err := Build(2, nil)
	require.NoError(t, err)
	require.Equal(t, "1", tree.Root.String())
	require.Equal(t, "1(left)", tree.Root.Left.String())
	require.Equal(t, "1(right)", tree.Root.Right.String())
	require.Equal(t, "right", SideRight.String())
	require.Equal(t, "unknown", Side(7).String())
}

func TestLevelsStopsEarly(t *testing.T) {
	tree, err := Build(5, nil)
	require.NoError(t, err)
	var seen []int
	for i := range tree.Levels() {
		seen = append(seen, i)
		if i == 2 {
			break
		}
	}
	require.Equal(t, []int{0, 1, 2}, seen)

	visited := 0
	tree.Walk(func(n *Node, level int) bool {
		visited++
		return visited < 4
	})
	require.Equal(t, 4, visited)
}
