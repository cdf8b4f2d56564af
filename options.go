// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package inttree

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/inttree/internal/base"
)

// Logger defines an interface for writing log messages.
type Logger = base.Logger

const (
	// MaxSupportedDepth is the largest depth Options.MaxDepth may be raised
	// to. A tree of this depth has over a billion nodes.
	MaxSupportedDepth = 30

	defaultMaxDepth  = 20
	defaultWarnDepth = 12
)

// Options holds the parameters used when building a tree.
type Options struct {
	// MaxDepth is the largest depth Build accepts. The number of nodes doubles
	// with every level, so this bounds both memory and rendering time. The
	// default (used when zero) is 20. Negative values and values above
	// MaxSupportedDepth are rejected.
	MaxDepth int

	// WarnDepth is the depth at and above which Build logs a warning with the
	// number of nodes about to be allocated. The default (used when zero) is
	// 12.
	WarnDepth int

	// Logger used to write log messages. The default discards them.
	Logger Logger
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = defaultMaxDepth
	}
	if o.WarnDepth == 0 {
		o.WarnDepth = defaultWarnDepth
	}
	if o.Logger == nil {
		o.Logger = base.NoopLogger{}
	}
	return o
}

// Validate verifies that the options are mutually consistent. It presumes
// EnsureDefaults has been called.
func (o *Options) Validate() error {
	var buf strings.Builder
	if o.MaxDepth < 0 {
		fmt.Fprintf(&buf, "MaxDepth (%d) must be positive\n", o.MaxDepth)
	}
	if o.WarnDepth < 0 {
		fmt.Fprintf(&buf, "WarnDepth (%d) must be positive\n", o.WarnDepth)
	}
	if o.MaxDepth > MaxSupportedDepth {
		fmt.Fprintf(&buf, "MaxDepth (%d) must be <= %d\n", o.MaxDepth, MaxSupportedDepth)
	}
	if buf.Len() == 0 {
		return nil
	}
	return errors.New(strings.TrimSpace(buf.String()))
}

// checkDepth returns an error if the depth cannot be built with these
// options.
func (o *Options) checkDepth(depth int) error {
	switch {
	case depth <= 0:
		return errors.Mark(errors.Newf("%d: %s", depth, ErrNonPositiveDepth), ErrNonPositiveDepth)
	case depth > o.MaxDepth:
		return errors.Mark(
			errors.Newf("tree depth %d exceeds the maximum of %d", depth, o.MaxDepth),
			ErrDepthTooLarge)
	}
	return nil
}
