// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package inttree

import (
	"math"

	"github.com/cockroachdb/redact"
)

// LevelStats summarizes the values on one level of a tree.
type LevelStats struct {
	// Level is 1-based: the root is on level 1.
	Level int
	Nodes int
	Min   int64
	Max   int64
	Sum   int64
}

// String implements fmt.Stringer.
func (s LevelStats) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s LevelStats) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("L%d: %d nodes, min %d, max %d, sum %d",
		redact.SafeInt(s.Level), redact.SafeInt(s.Nodes),
		redact.SafeInt(s.Min), redact.SafeInt(s.Max), redact.SafeInt(s.Sum))
}

// Stats returns per-level statistics, from the root down.
func (t *Tree) Stats() []LevelStats {
	stats := make([]LevelStats, 0, t.Depth())
	for i, level := range t.Levels() {
		s := LevelStats{Level: i + 1, Nodes: len(level), Min: math.MaxInt64}
		for _, n := range level {
			s.Min = min(s.Min, n.Value)
			s.Max = max(s.Max, n.Value)
			s.Sum += n.Value
		}
		stats = append(stats, s)
	}
	return stats
}
