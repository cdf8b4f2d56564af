// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

type format string

const (
	formatTree   format = "tree"
	formatLevels format = "levels"
	formatStats  format = "stats"
)

func (f *format) String() string {
	return string(*f)
}

func (f *format) Type() string {
	return "format"
}

func (f *format) Set(v string) error {
	switch format(v) {
	case formatTree, formatLevels, formatStats:
		*f = format(v)
		return nil
	default:
		return errors.Newf("unknown format: %q", v)
	}
}

// char is a flag holding a single printable character.
type char rune

func (c *char) String() string {
	return string(rune(*c))
}

func (c *char) Type() string {
	return "char"
}

func (c *char) Set(v string) error {
	r, n := utf8.DecodeRuneInString(v)
	if n == 0 || n != len(v) || r == utf8.RuneError {
		return errors.Newf("expected a single character, got %q", v)
	}
	*c = char(r)
	return nil
}
