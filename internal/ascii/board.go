// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ascii implements a character canvas for laying out text diagrams
// by row and column.
package ascii

import (
	"fmt"
	"io"
	"strings"
)

// Board is a grid of runes that grows on demand. Cells that were never
// written hold spaces, and trailing spaces are trimmed on output.
type Board struct {
	rows  [][]rune
	width int
}

// Make returns a new Board with the given initial width and height.
func Make(width, height int) Board {
	b := Board{width: width}
	b.ensureRows(height)
	return b
}

// At returns a position at the given coordinates.
func (b *Board) At(r, c int) Cursor {
	b.ensureRows(r + 1)
	return Cursor{b: b, r: r, c: c}
}

// NewLine appends a new line to the board and returns a position at the
// beginning of the line.
func (b *Board) NewLine() Cursor {
	return b.At(len(b.rows), 0)
}

// Lines returns the number of rows on the board.
func (b *Board) Lines() int {
	return len(b.rows)
}

// Width returns the current width of the board.
func (b *Board) Width() int {
	return b.width
}

// String returns the Board as a string.
func (b *Board) String() string {
	return b.Render("")
}

// Render returns the Board as a string, with every line prefixed by
// indent.
func (b *Board) Render(indent string) string {
	var sb strings.Builder
	for r := range b.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(indent)
		sb.WriteString(b.line(r))
	}
	return sb.String()
}

// WriteTo writes every row of the board to w, each terminated by a newline.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for r := range b.rows {
		k, err := io.WriteString(w, b.line(r)+"\n")
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Reset resets the board to the given width and clears the contents. The
// row storage is retained for reuse.
func (b *Board) Reset(w int) {
	for i := range b.rows {
		b.rows[i] = b.rows[i][:0]
	}
	b.rows = b.rows[:0]
	b.width = w
}

func (b *Board) line(r int) string {
	return strings.TrimRight(string(b.rows[r]), " ")
}

func (b *Board) ensureRows(n int) {
	for len(b.rows) < n {
		var row []rune
		if len(b.rows) < cap(b.rows) {
			row = b.rows[:len(b.rows)+1][len(b.rows)][:0]
		}
		b.rows = append(b.rows, padTo(row, b.width))
	}
}

func (b *Board) ensureWidth(w int) {
	if w <= b.width {
		return
	}
	b.width = w
	for i := range b.rows {
		b.rows[i] = padTo(b.rows[i], w)
	}
}

func padTo(row []rune, w int) []rune {
	for len(row) < w {
		row = append(row, ' ')
	}
	return row
}

func (b *Board) write(r, c int, s string) int {
	runes := []rune(s)
	b.ensureRows(r + 1)
	b.ensureWidth(c + len(runes))
	copy(b.rows[r][c:], runes)
	return len(runes)
}

func (b *Board) repeat(r, c int, n int, ch rune) {
	if n <= 0 {
		return
	}
	b.ensureRows(r + 1)
	b.ensureWidth(c + n)
	row := b.rows[r]
	for i := 0; i < n; i++ {
		row[c+i] = ch
	}
}

// Cursor is a position on a Board.
type Cursor struct {
	b    *Board
	r, c int
	// carriageReturnCol is the column to which newlines will return.
	carriageReturnCol int
}

// Offset returns a new cursor with the given offset from the current cursor.
func (c Cursor) Offset(dr, dc int) Cursor {
	c.r += dr
	c.c += dc
	return c
}

// Down returns a new cursor with the given row offset from the current cursor.
func (c Cursor) Down(numRows int) Cursor {
	c.r += numRows
	return c
}

// Right returns a new cursor with the given column offset from the current cursor.
func (c Cursor) Right(numCols int) Cursor {
	c.c += numCols
	return c
}

// SetCarriageReturnPosition returns a copy of the cursor, but with a carriage
// return position set so that newlines written to the resulting Cursor will
// return to the current column.
func (c Cursor) SetCarriageReturnPosition() Cursor {
	c.carriageReturnCol = c.c
	return c
}

// Row returns the row of the current position.
func (c Cursor) Row() int {
	return c.r
}

// Column returns the column of the current position.
func (c Cursor) Column() int {
	return c.c
}

// SetColumn returns a copy of the cursor, but with the column set to the given
// value.
func (c Cursor) SetColumn(col int) Cursor {
	c.c = col
	return c
}

// Printf writes the formatted string to cursor, returning a cursor where the
// written text ends.
func (c Cursor) Printf(format string, args ...interface{}) Cursor {
	return c.WriteString(fmt.Sprintf(format, args...))
}

// WriteString writes the provided string starting at the cursor, returning a
// cursor where the written text ends. Newlines in the string break to the next
// row, with the column reset to the cursor's carriage return column. A
// trailing newline moves the returned cursor without adding a row.
func (c Cursor) WriteString(s string) Cursor {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			if s != "" {
				c.c += c.b.write(c.r, c.c, s)
			}
			return c
		}
		c.b.write(c.r, c.c, s[:i])
		c = c.NewlineReturn()
		s = s[i+1:]
	}
}

// Repeat writes the given character n times starting at the cursor, returning
// a cursor where the written characters end. Non-positive n writes nothing.
func (c Cursor) Repeat(n int, ch rune) Cursor {
	if n <= 0 {
		return c
	}
	c.b.repeat(c.r, c.c, n, ch)
	return c.Right(n)
}

// NewlineReturn returns a cursor at the next line, with the column set to the
// cursor's carriage return column.
func (c Cursor) NewlineReturn() Cursor {
	c.r++
	c.c = c.carriageReturnCol
	return c
}
