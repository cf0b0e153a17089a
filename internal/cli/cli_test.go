// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestExitCodes(t *testing.T) {
	for _, test := range []struct {
		name    string
		err     error
		code    int
		wantErr string
	}{
		{"ok", nil, 0, ""},
		{"help", flag.ErrHelp, 0, ""},
		{"usage", ErrUsage, 2, ""},
		{"failure", errors.New("open output.txt: no such file or directory"), 1, "heatplot: open output.txt: no such file or directory\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			var stderr bytes.Buffer
			cmd := func([]string, io.Reader, io.Writer) error { return test.err }
			if code := run("heatplot", cmd, nil, nil, io.Discard, &stderr); code != test.code {
				t.Errorf("got exit code %d, want %d", code, test.code)
			}
			if got := stderr.String(); got != test.wantErr {
				t.Errorf("got stderr %q, want %q", got, test.wantErr)
			}
		})
	}
}

func TestMainExit(t *testing.T) {
	defer func(old func(int)) { exit = old }(exit)
	code := -1
	exit = func(c int) { code = c }
	Main("testcmd", func([]string, io.Reader, io.Writer) error { return ErrUsage })
	if code != 2 {
		t.Errorf("got exit code %d, want 2", code)
	}
}

func TestFlags(t *testing.T) {
	for _, test := range []struct {
		args  []string
		level log.Level
		err   error
	}{
		{nil, log.InfoLevel, nil},
		{[]string{"-v"}, log.DebugLevel, nil},
		{[]string{"-vv"}, log.TraceLevel, nil},
		{[]string{"-bogus"}, log.InfoLevel, ErrUsage},
		{[]string{"-h"}, log.InfoLevel, flag.ErrHelp},
	} {
		var out bytes.Buffer
		f := NewFlags("histplot", "[files...]", &out)
		err := f.Parse(test.args)
		if !errors.Is(err, test.err) {
			t.Errorf("%v: got error %v, want %v", test.args, err, test.err)
			continue
		}
		if err != nil {
			if !strings.Contains(out.String(), "usage: histplot [flags] [files...]") {
				t.Errorf("%v: usage not printed, got %q", test.args, out.String())
			}
			continue
		}
		if l := f.Logger(io.Discard); l.GetLevel() != test.level {
			t.Errorf("%v: got level %v, want %v", test.args, l.GetLevel(), test.level)
		}
	}
}

func TestUsageError(t *testing.T) {
	var out bytes.Buffer
	f := NewFlags("tempplot", "[file]", &out)
	if err := f.UsageError(); err != ErrUsage {
		t.Errorf("got %v, want ErrUsage", err)
	}
	if !strings.HasPrefix(out.String(), "usage: tempplot [flags] [file]\n") {
		t.Errorf("got %q", out.String())
	}
}

func TestLoggerFormat(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(&out)
	l.WithField("file", "output.txt").Warn("skipping malformed line")
	l.Debug("hidden")
	got := out.String()
	want := "level=warning msg=\"skipping malformed line\" file=output.txt\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
