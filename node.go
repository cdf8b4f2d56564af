// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package inttree

import "github.com/cockroachdb/redact"

// Side identifies which child slot of its parent a node occupies.
type Side int8

const (
	// SideNone is only used by the root.
	SideNone Side = iota
	SideLeft
	SideRight
)

var sideNames = [...]string{
	SideNone:  "none",
	SideLeft:  "left",
	SideRight: "right",
}

// String implements fmt.Stringer.
func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "unknown"
}

// SafeValue implements redact.SafeValue.
func (Side) SafeValue() {}

// Node is a position in a Tree. A node has either no children or exactly two,
// and its Value is fixed when the node is created.
type Node struct {
	Value int64
	Side  Side
	Left  *Node
	Right *Node

	// parent is nil for the root. It is a back-reference only; a node is owned
	// by its parent's Left or Right field.
	parent *Node
}

// Parent returns the node one level up, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Height returns the number of levels in the subtree rooted at n, following
// the leftmost path. In a perfect tree every path has the same length.
func (n *Node) Height() int {
	h := 0
	for ; n != nil; n = n.Left {
		h++
	}
	return h
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return redact.StringWithoutMarkers(n)
}

// SafeFormat implements redact.SafeFormatter.
func (n *Node) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%d", redact.SafeInt(n.Value))
	if n.Side != SideNone {
		w.Printf("(%s)", n.Side)
	}
}
