// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/cockroachdb/inttree/tool"
)

func main() {
	log.SetFlags(0)
	os.Exit(tool.New(os.Stdout, os.Stderr).Main(os.Args[1:]))
}
