// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package render formats an inttree.Tree as text.
//
// Tree draws the tree as ASCII art. Every value is padded to the width of the
// largest value in the tree, and each leaf occupies a slot one column wider
// than that. A node on level c (0-indexed) of a tree of depth D is centered
// over the spread = 2^(D-c-1) leaf slots below it; the last level has a
// spread of 0 and its values are simply separated by one space. Beneath each
// level but the last a connector line holds a '/' over the middle of every
// node's left child and a '\' over the middle of its right child, and the
// value line is filled with underscores between a value and those
// connectors:
//
//	    ___1___
//	   /       //	  _1_     _1_
//	 /   \   /   //	 1   2   2   1
//	/ \ / \ / \ / //	1 3 3 4 4 3 3 1
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/inttree"
	"github.com/cockroachdb/inttree/internal/ascii"
)

// Options controls how Tree draws a tree.
type Options struct {
	// Fill is written between a value and the connectors leading to its
	// children. The default is '_'.
	Fill rune
	// Pad is used to left-pad values to a common width. The default is '0'.
	Pad rune
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.Fill == 0 {
		o.Fill = '_'
	}
	if o.Pad == 0 {
		o.Pad = '0'
	}
	return o
}

// Validate verifies the options. It presumes EnsureDefaults has been called.
func (o *Options) Validate() error {
	for _, r := range []rune{o.Fill, o.Pad} {
		if r == '\n' || r == '/' || r == '\\' {
			return errors.Newf("%q cannot be used as a fill or pad character", r)
		}
	}
	return nil
}

// Tree writes the ASCII-art rendering of t to w: one line of values per level,
// with a line of connectors between consecutive levels, for 2*Depth-1 lines in
// total. Lines are written one level at a time.
func Tree(w io.Writer, t *inttree.Tree, opts *Options) error {
	opts = opts.EnsureDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}
	l := makeLayout(t)
	board := ascii.Make(l.width(), 2)
	for c, level := range t.Levels() {
		board.Reset(l.width())
		values := board.At(0, 0)
		for j, n := range level {
			start := l.start(c, j)
			if c < l.depth-1 {
				lm, rm := l.mid(c+1, 2*j), l.mid(c+1, 2*j+1)
				values.SetColumn(lm + 1).Repeat(start-lm-1, opts.Fill)
				values.SetColumn(start + l.valueWidth).Repeat(rm-start-l.valueWidth, opts.Fill)
				board.At(1, lm).WriteString("/")
				board.At(1, rm).WriteString("\\")
			}
			values.SetColumn(start).WriteString(l.format(n.Value, opts.Pad))
		}
		if _, err := board.WriteTo(w); err != nil {
			return errors.Wrapf(err, "writing level %d", c+1)
		}
	}
	return nil
}

// String returns the rendering of t with the default options.
func String(t *inttree.Tree) string {
	var buf strings.Builder
	// Writes to a strings.Builder cannot fail.
	_ = Tree(&buf, t, nil)
	return buf.String()
}

// layout computes the column positions used by Tree.
type layout struct {
	depth      int
	valueWidth int
	// slot is the number of columns per leaf: a value and a separating space.
	slot int
}

func makeLayout(t *inttree.Tree) layout {
	w := len(strconv.FormatInt(t.MaxValue(), 10))
	return layout{
		depth:      t.Depth(),
		valueWidth: w,
		slot:       w + 1,
	}
}

// spread returns the number of leaf slots a node on level c is centered over,
// or 0 for the last level.
func (l layout) spread(c int) int {
	if c >= l.depth-1 {
		return 0
	}
	return 1 << uint(l.depth-c-1)
}

// start returns the column at which the value of node j on level c begins.
// For j == 0 this is the number of leading spaces on the line.
func (l layout) start(c, j int) int {
	span := max(l.spread(c), 1)
	return j*span*l.slot + (span-1)*l.slot/2
}

// mid returns the column of the middle of the value of node j on level c.
func (l layout) mid(c, j int) int {
	return l.start(c, j) + l.valueWidth/2
}

func (l layout) width() int {
	return (1<<uint(l.depth-1))*l.slot - 1
}

func (l layout) format(v int64, pad rune) string {
	s := strconv.FormatInt(v, 10)
	if n := l.valueWidth - len(s); n > 0 {
		s = strings.Repeat(string(pad), n) + s
	}
	return s
}
