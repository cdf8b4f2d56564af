// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package table lays out rows of values as aligned text columns on an
// ascii.Board.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/inttree/internal/ascii"
	"golang.org/x/exp/constraints"
)

// Define defines a new table layout with the given fields.
//
// Example:
//
//	type Level struct {
//		Depth int
//		Sum   int64
//	}
//	def := Define[Level](
//		Int("level", 5, AlignRight, func(l Level) int { return l.Depth }),
//		Int("sum", 4, AlignRight, func(l Level) int64 { return l.Sum }),
//	)
//	wb := ascii.Make(def.CumulativeFieldWidth, 4)
//	def.Render(wb.At(0, 0), levels)
//
// Output of wb.String():
//
//	level  sum
//	----------
//	    1    1
//	    2    2
func Define[T any](fields ...Field[T]) Layout[T] {
	cumulativeFieldWidth := 0
	for i := range fields {
		w := fields[i].width()
		if h := fields[i].header(); len(h) > w {
			panic(fmt.Sprintf("header %q is too long for column %d", h, i))
		}
		if i > 0 {
			cumulativeFieldWidth++
		}
		cumulativeFieldWidth += w
	}
	return Layout[T]{
		CumulativeFieldWidth: cumulativeFieldWidth,
		fields:               fields,
	}
}

// A Layout defines the layout of a table.
type Layout[T any] struct {
	CumulativeFieldWidth int
	fields               []Field[T]
}

// Render renders the given rows of a table into the given cursor, returning
// a cursor positioned on the line after the table.
func (d *Layout[T]) Render(start ascii.Cursor, rows []T) ascii.Cursor {
	cur := start
	vals := make([]string, len(rows))
	for fieldIdx, f := range d.fields {
		if fieldIdx > 0 {
			// Each column is separated by a space from the previous column; the
			// dashes below the header run continuously.
			cur.Offset(1, 0).WriteString("-")
			cur = cur.Offset(0, 1)
		}
		width := f.width()
		for i, r := range rows {
			vals[i] = f.renderValue(r)
			// If one of the values exceeds the column width, widen the column as
			// necessary.
			width = max(width, len(vals[i]))
		}
		spec := widthStr(width, f.align()) + "s"
		cur.Printf(spec, f.header())
		cur.Offset(1, 0).WriteString(strings.Repeat("-", width))
		for i := range vals {
			cur.Offset(2+i, 0).Printf(spec, vals[i])
		}
		cur = cur.Offset(0, width)
	}
	return start.Offset(2+len(rows), 0)
}

// Align specifies how a value is placed within its column.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
)

// Field is a table column whose values are computed from each row.
type Field[T any] interface {
	header() string
	width() int
	align() Align
	renderValue(row T) string
}

// String defines a column of strings.
func String[T any](header string, width int, align Align, fn func(r T) string) Field[T] {
	return makeFuncField(header, width, align, fn)
}

// Int defines a column of integers printed in full.
func Int[T any, N constraints.Integer](
	header string, width int, align Align, fn func(r T) N,
) Field[T] {
	return makeFuncField(header, width, align, func(r T) string {
		return strconv.FormatInt(int64(fn(r)), 10)
	})
}

// Count defines a column of integers printed in compact human-readable form
// (e.g. 1.5K).
func Count[T any, N constraints.Integer](
	header string, width int, align Align, fn func(r T) N,
) Field[T] {
	return makeFuncField(header, width, align, func(r T) string {
		return string(crhumanize.Count(fn(r), crhumanize.Compact, crhumanize.OmitI))
	})
}

func makeFuncField[T any](
	header string, width int, align Align, toStringFn func(r T) string,
) Field[T] {
	return &funcField[T]{
		headerValue: header,
		widthValue:  width,
		alignValue:  align,
		toStringFn:  toStringFn,
	}
}

type funcField[T any] struct {
	headerValue string
	widthValue  int
	alignValue  Align
	toStringFn  func(r T) string
}

var _ Field[any] = (*funcField[any])(nil)

func (c *funcField[T]) header() string            { return c.headerValue }
func (c *funcField[T]) width() int                { return c.widthValue }
func (c *funcField[T]) align() Align              { return c.alignValue }
func (c *funcField[T]) renderValue(row T) string { return c.toStringFn(row) }

func widthStr(width int, align Align) string {
	if align == AlignLeft {
		return "%-" + strconv.Itoa(width)
	}
	return "%" + strconv.Itoa(width)
}
