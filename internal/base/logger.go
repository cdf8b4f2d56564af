// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger defines an interface for writing log messages.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger struct{}

var _ Logger = DefaultLogger{}

// Infof implements the Logger.Infof interface.
func (DefaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// Errorf implements the Logger.Errorf interface.
func (DefaultLogger) Errorf(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// Fatalf implements the Logger.Fatalf interface.
func (DefaultLogger) Fatalf(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
	os.Exit(1)
}

// NoopLogger discards everything except fatal messages, which still
// terminate the process.
type NoopLogger struct{}

var _ Logger = NoopLogger{}

// Infof implements the Logger.Infof interface.
func (NoopLogger) Infof(format string, args ...interface{}) {}

// Errorf implements the Logger.Errorf interface.
func (NoopLogger) Errorf(format string, args ...interface{}) {}

// Fatalf implements the Logger.Fatalf interface.
func (NoopLogger) Fatalf(format string, args ...interface{}) {
	DefaultLogger{}.Fatalf(format, args...)
}

// WriterLogger writes one line per message to W. Fatal messages are written
// before the process exits.
type WriterLogger struct {
	W io.Writer
}

var _ Logger = WriterLogger{}

// Infof implements the Logger.Infof interface.
func (l WriterLogger) Infof(format string, args ...interface{}) {
	l.printf(format, args...)
}

// Errorf implements the Logger.Errorf interface.
func (l WriterLogger) Errorf(format string, args ...interface{}) {
	l.printf(format, args...)
}

// Fatalf implements the Logger.Fatalf interface.
func (l WriterLogger) Fatalf(format string, args ...interface{}) {
	l.printf(format, args...)
	os.Exit(1)
}

func (l WriterLogger) printf(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	if len(s) == 0 || s[len(s)-1] != '\n' {
		s += "\n"
	}
	_, _ = io.WriteString(l.W, s)
}
