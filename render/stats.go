// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package render

import (
	"io"

	"github.com/cockroachdb/inttree"
	"github.com/cockroachdb/inttree/internal/ascii"
	"github.com/cockroachdb/inttree/internal/ascii/table"
	"github.com/guptarohit/asciigraph"
)

var statsTable = table.Define[inttree.LevelStats](
	table.Int("level", 5, table.AlignRight, func(s inttree.LevelStats) int { return s.Level }),
	table.Count("nodes", 5, table.AlignRight, func(s inttree.LevelStats) int { return s.Nodes }),
	table.Int("min", 3, table.AlignRight, func(s inttree.LevelStats) int64 { return s.Min }),
	table.Int("max", 3, table.AlignRight, func(s inttree.LevelStats) int64 { return s.Max }),
	table.Int("sum", 3, table.AlignRight, func(s inttree.LevelStats) int64 { return s.Sum }),
)

// Stats writes a table with one row of statistics per level of t.
func Stats(w io.Writer, t *inttree.Tree) error {
	stats := t.Stats()
	board := ascii.Make(statsTable.CumulativeFieldWidth, len(stats)+2)
	statsTable.Render(board.At(0, 0), stats)
	_, err := board.WriteTo(w)
	return err
}

// PlotCaption is the caption printed under the plot written by Plot.
const PlotCaption = "max value per level"

// Plot writes an ASCII plot of the largest value on each level of t, using
// the given number of rows. Nothing is written for trees with fewer than two
// levels.
func Plot(w io.Writer, t *inttree.Tree, height int) error {
	if t.Depth() < 2 {
		return nil
	}
	series := make([]float64, 0, t.Depth())
	for _, s := range t.Stats() {
		series = append(series, float64(s.Max))
	}
	plot := asciigraph.Plot(series,
		asciigraph.Height(max(height, 1)),
		asciigraph.Caption(PlotCaption))
	_, err := io.WriteString(w, plot+"\n")
	return err
}
