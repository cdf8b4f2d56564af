// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements the inttree command line interface.
package tool

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/inttree"
	"github.com/cockroachdb/inttree/internal/base"
	"github.com/cockroachdb/inttree/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// T is the container for the inttree command, including both configuration
// state and the command itself.
type T struct {
	Root *cobra.Command

	opts       inttree.Options
	renderOpts render.Options
	format     format
	fill       char
	pad        char
	plotHeight int
	verbose    bool

	stdout io.Writer
	stderr io.Writer
}

// New creates the inttree command, writing to the given streams.
func New(stdout, stderr io.Writer) *T {
	t := &T{
		format:     formatTree,
		fill:       '_',
		pad:        '0',
		plotHeight: 10,
		stdout:     stdout,
		stderr:     stderr,
	}
	t.Root = &cobra.Command{
		Use:   "inttree <depth>",
		Short: "print a binary tree of sibling sums",
		Long: `
Build a perfect binary tree with the given number of levels and print it.
The root is 1, and each child is its parent's value plus the value of the
node next to its parent on the same level, on the child's side. Nodes on the
outer edges have no such neighbor and stay at 1.
`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          t.run,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	t.Root.SetOut(stdout)
	t.Root.SetErr(stderr)

	flags := t.Root.Flags()
	flags.VarP(&t.format, "format", "f", "output format: tree, levels or stats")
	flags.Var(&t.fill, "fill", "character drawn between a value and its branches")
	flags.Var(&t.pad, "pad", "character used to pad values to a common width")
	flags.IntVar(&t.opts.MaxDepth, "max-depth", 20, fmt.Sprintf(
		"largest depth to build (at most %d, 0 for the default)", inttree.MaxSupportedDepth))
	flags.IntVar(&t.plotHeight, "plot-height", t.plotHeight, "rows in the stats plot")
	flags.BoolVarP(&t.verbose, "verbose", "v", false, "log progress to stderr")
	return t
}

// Main runs the command with the given arguments (excluding the program name)
// and returns the process exit code.
func (t *T) Main(args []string) int {
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	t.Root.SetArgs(t.positional(args))
	err := t.Root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, inttree.ErrMissingDepth):
		fmt.Fprintf(t.stderr, "Usage: %s\n", t.Root.Use)
	default:
		fmt.Fprintf(t.stderr, "Error: %s\n", err)
	}
	return 1
}

func (t *T) run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return inttree.ErrMissingDepth
	}
	depth, err := inttree.ParseDepth(args[0])
	if err != nil {
		return err
	}
	logger := base.WriterLogger{W: t.stderr}
	t.opts.Logger = logger
	tree, err := inttree.Build(depth, &t.opts)
	if err != nil {
		return err
	}
	if t.verbose {
		logger.Infof("built a tree of depth %d: %d nodes, max value %d",
			tree.Depth(), tree.NumNodes(), tree.MaxValue())
	}

	switch t.format {
	case formatLevels:
		return render.Levels(t.stdout, tree)
	case formatStats:
		if err := render.Stats(t.stdout, tree); err != nil {
			return err
		}
		return render.Plot(t.stdout, tree, t.plotHeight)
	default:
		t.renderOpts.Fill = rune(t.fill)
		t.renderOpts.Pad = rune(t.pad)
		return render.Tree(t.stdout, tree, &t.renderOpts)
	}
}

// positional inserts "--" before the first argument that is a negative
// integer, so that it reaches the command as a depth instead of being parsed
// as a shorthand flag. Negative integers given as the value of a preceding
// flag are left alone.
func (t *T) positional(args []string) []string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if i > 0 && t.takesValue(args[i-1]) {
			continue
		}
		if len(a) > 1 && a[0] == '-' {
			if _, err := strconv.Atoi(a); err == nil {
				out := make([]string, 0, len(args)+1)
				out = append(out, args[:i]...)
				out = append(out, "--")
				return append(out, args[i:]...)
			}
		}
	}
	return args
}

// takesValue returns true if arg is a flag, written without "=", whose value
// is the next argument.
func (t *T) takesValue(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || strings.Contains(arg, "=") {
		return false
	}
	flags := t.Root.Flags()
	var f *pflag.Flag
	if strings.HasPrefix(arg, "--") {
		f = flags.Lookup(arg[2:])
	} else {
		// Only the last shorthand in a group such as -vf can take a value.
		f = flags.ShorthandLookup(arg[len(arg)-1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
