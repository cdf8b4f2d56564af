// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package testutils holds helpers shared by tests across packages.
package testutils

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// Logger is a logger that writes to a testing.TB.
type Logger struct {
	T testing.TB
}

func (l Logger) Infof(format string, args ...interface{}) {
	l.T.Logf(format, args...)
}

func (l Logger) Errorf(format string, args ...interface{}) {
	l.T.Logf(format, args...)
}

func (l Logger) Fatalf(format string, args ...interface{}) {
	l.T.Helper()
	l.T.Fatalf(format, args...)
}

// CaptureLogger records every message so tests can assert on what was
// logged.
type CaptureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *CaptureLogger) Infof(format string, args ...interface{}) {
	l.record("[INFO] ", format, args...)
}

func (l *CaptureLogger) Errorf(format string, args ...interface{}) {
	l.record("[ERROR] ", format, args...)
}

func (l *CaptureLogger) Fatalf(format string, args ...interface{}) {
	l.record("[FATAL] ", format, args...)
}

func (l *CaptureLogger) record(prefix, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, prefix+strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

// String returns the recorded messages, one per line.
func (l *CaptureLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}
