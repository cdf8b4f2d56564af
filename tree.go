// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package inttree builds perfect binary trees whose node values follow the
// sibling-sum rule: a node's left child is the node's value plus the value of
// the node immediately to its left on the same level, and its right child is
// the node's value plus the value of the node immediately to its right. A
// missing neighbor contributes nothing, so the outer edges of the tree stay at
// 1 while the interior fans out into sums.
//
// For example, a tree of depth 4 has the levels
//
//	1
//	1 1
//	1 2 2 1
//	1 3 3 4 4 3 3 1
//
// The neighbors of a node need not share its parent: the right neighbor of
// the second node on the third level above is the third node, whose parent is
// the root's right child.
package inttree

import (
	"iter"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/inttree/internal/invariants"
)

// Tree is a perfect binary tree built by Build. It is immutable.
type Tree struct {
	Root *Node

	// levels holds every node in level order; levels[i] is the i-th level
	// (0-indexed) from left to right.
	levels [][]*Node
}

// Build constructs a tree with the given number of levels. The root is at
// level 1 and has value 1. Build returns an error if depth is not positive or
// exceeds opts.MaxDepth. A nil opts uses the defaults.
func Build(depth int, opts *Options) (*Tree, error) {
	opts = opts.EnsureDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := opts.checkDepth(depth); err != nil {
		return nil, err
	}
	if depth >= opts.WarnDepth {
		nodes := uint64(1)<<uint(depth) - 1
		opts.Logger.Infof("building a tree of depth %d with %s nodes",
			depth, crhumanize.Count(nodes, crhumanize.Compact))
	}

	root := &Node{Value: 1}
	t := &Tree{
		Root:   root,
		levels: make([][]*Node, 1, depth),
	}
	t.levels[0] = []*Node{root}

	// Each level is built from the previous one. Within a level the nodes are
	// in left-to-right order, so a node's neighbors are the adjacent entries.
	for cur := t.levels[0]; len(t.levels) < depth; {
		next := make([]*Node, 0, 2*len(cur))
		for i, n := range cur {
			var left, right int64
			if i > 0 {
				left = cur[i-1].Value
			}
			if i+1 < len(cur) {
				right = cur[i+1].Value
			}
			n.Left = &Node{Value: n.Value + left, Side: SideLeft, parent: n}
			n.Right = &Node{Value: n.Value + right, Side: SideRight, parent: n}
			next = append(next, n.Left, n.Right)
		}
		t.levels = append(t.levels, next)
		cur = next
	}

	if invariants.Enabled {
		if err := t.check(); err != nil {
			panic(err)
		}
	}
	return t, nil
}

// Depth returns the number of levels in the tree.
func (t *Tree) Depth() int {
	return len(t.levels)
}

// NumNodes returns the number of nodes in the tree, which is 2^Depth()-1.
func (t *Tree) NumNodes() int {
	n := 0
	for _, l := range t.levels {
		n += len(l)
	}
	return n
}

// Level returns the nodes on level i (0-indexed, the root is level 0) from left
// to right. The returned slice must not be modified.
func (t *Tree) Level(i int) []*Node {
	invariants.CheckBounds(i, len(t.levels))
	return t.levels[i]
}

// Levels returns an iterator over the levels of the tree, from the root down.
func (t *Tree) Levels() iter.Seq2[int, []*Node] {
	return func(yield func(int, []*Node) bool) {
		for i, l := range t.levels {
			if !yield(i, l) {
				return
			}
		}
	}
}

// Values returns the values of the nodes on level i from left to right.
func (t *Tree) Values(i int) []int64 {
	level := t.Level(i)
	vals := make([]int64, len(level))
	for j, n := range level {
		vals[j] = n.Value
	}
	return vals
}

// MaxValue returns the largest value in the tree. Children are never smaller
// than their parent, so the maximum is always on the last level.
func (t *Tree) MaxValue() int64 {
	var m int64
	for _, n := range t.levels[len(t.levels)-1] {
		m = max(m, n.Value)
	}
	return m
}

// Walk calls fn for every node in pre-order, along with the node's level
// (0-indexed). Walk stops early if fn returns false.
func (t *Tree) Walk(fn func(n *Node, level int) bool) {
	var walk func(n *Node, level int) bool
	walk = func(n *Node, level int) bool {
		if n == nil {
			return true
		}
		return fn(n, level) && walk(n.Left, level+1) && walk(n.Right, level+1)
	}
	walk(t.Root, 0)
}

// check verifies the structural invariants of the tree.
func (t *Tree) check() error {
	depth := len(t.levels)
	if t.Root == nil {
		return errors.AssertionFailedf("nil root")
	}
	if t.Root.Value != 1 || t.Root.Side != SideNone || t.Root.parent != nil {
		return errors.AssertionFailedf("malformed root %v", t.Root)
	}
	for i, level := range t.levels {
		if len(level) != 1<<uint(i) {
			return errors.AssertionFailedf("level %d has %d nodes, expected %d", i, len(level), 1<<uint(i))
		}
		if level[0].Value != 1 || level[len(level)-1].Value != 1 {
			return errors.AssertionFailedf("level %d has edge values %d and %d",
				i, level[0].Value, level[len(level)-1].Value)
		}
		for j, n := range level {
			if leaf := i == depth-1; n.IsLeaf() != leaf {
				return errors.AssertionFailedf("node %d on level %d: leaf=%t", j, i, n.IsLeaf())
			}
			if i == 0 {
				continue
			}
			p := t.levels[i-1][j/2]
			if n.parent != p {
				return errors.AssertionFailedf("node %d on level %d has the wrong parent", j, i)
			}
			if (j%2 == 0) != (n.Side == SideLeft) {
				return errors.AssertionFailedf("node %d on level %d is on the %s", j, i, n.Side)
			}
		}
	}
	return nil
}
