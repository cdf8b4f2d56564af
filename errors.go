// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package inttree

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMissingDepth is returned when no depth argument was supplied.
	ErrMissingDepth = errors.New("missing tree depth")

	// ErrInvalidDepth is returned when the depth is not a base-10 integer.
	ErrInvalidDepth = errors.New("tree depth must be a valid integer")

	// ErrNonPositiveDepth is returned when the depth is zero or negative.
	ErrNonPositiveDepth = errors.New("tree depth must be positive")

	// ErrDepthTooLarge is returned when the depth exceeds Options.MaxDepth.
	ErrDepthTooLarge = errors.New("tree depth is too large")
)

// ParseDepth parses a depth given as a base-10 integer literal. Surrounding
// whitespace is ignored. The returned error matches ErrInvalidDepth or
// ErrNonPositiveDepth under errors.Is.
func ParseDepth(s string) (int, error) {
	depth, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Mark(errors.Newf("%q: %s", s, ErrInvalidDepth), ErrInvalidDepth)
	}
	if depth <= 0 {
		return 0, errors.Mark(errors.Newf("%d: %s", depth, ErrNonPositiveDepth), ErrNonPositiveDepth)
	}
	return depth, nil
}
