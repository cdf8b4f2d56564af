// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package render

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cockroachdb/inttree"
)

// Levels writes one line per level of t, listing the level's values from left
// to right separated by single spaces.
func Levels(w io.Writer, t *inttree.Tree) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, level := range t.Levels() {
		buf = buf[:0]
		for j, n := range level {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, n.Value, 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
