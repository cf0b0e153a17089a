// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli holds the flag, logging and exit conventions shared by
// the plotting commands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// ErrUsage is returned by a command for bad arguments. The usage
// message has already been printed.
var ErrUsage = errors.New("invalid arguments")

// A Command is the body of a plotting command.
//
// It reads its arguments from args, prompts on stdin if it needs to,
// and writes diagnostics and progress to stdout.
type Command func(args []string, stdin io.Reader, stdout io.Writer) error

var exit = os.Exit // replaced during testing

// Main runs cmd with the process's arguments and exits: 0 on success,
// 2 for ErrUsage, and 1 for any other error.
func Main(name string, cmd Command) {
	exit(run(name, cmd, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(name string, cmd Command, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	err := cmd(args, stdin, stdout)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	}
	fmt.Fprintf(stderr, "%s: %v\n", name, err)
	return 1
}

// Flags is a flag set with the verbosity flags every command takes.
type Flags struct {
	*flag.FlagSet

	verbose, veryVerbose bool
}

// NewFlags returns a flag set for the command name. Its usage message
// is a line of the form "usage: name [flags] argUsage" followed by
// the flag defaults, written to w.
func NewFlags(name, argUsage string, w io.Writer) *Flags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] %s\n", name, argUsage)
		fs.PrintDefaults()
	}
	f := &Flags{FlagSet: fs}
	fs.BoolVar(&f.verbose, "v", false, "Turn on verbose output")
	fs.BoolVar(&f.veryVerbose, "vv", false, "Turn on very verbose output")
	return f
}

// Parse parses args, mapping any failure to ErrUsage. A request for
// help returns flag.ErrHelp.
func (f *Flags) Parse(args []string) error {
	if err := f.FlagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return ErrUsage
	}
	return nil
}

// UsageError prints the usage message and returns ErrUsage.
func (f *Flags) UsageError() error {
	f.FlagSet.Usage()
	return ErrUsage
}

// Logger returns a logger writing to w at the level selected by the
// verbosity flags.
func (f *Flags) Logger(w io.Writer) *log.Logger {
	l := NewLogger(w)
	if f.verbose {
		l.SetLevel(log.DebugLevel)
		l.Debug("Set log level to debug")
	}
	if f.veryVerbose {
		l.SetLevel(log.TraceLevel)
		l.Debug("Set log level to trace")
	}
	return l
}

// NewLogger returns an info-level logger writing plain text without
// timestamps to w.
func NewLogger(w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true, DisableColors: true})
	l.SetLevel(log.InfoLevel)
	return l
}
