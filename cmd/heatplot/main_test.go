// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/numcourse/numplot/internal/cli"
)

func TestHeatplot(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "output.txt")
	if err := os.WriteFile(in, []byte("0 0\n0.25 0.7\n0.5 1.0\n0.75 abc\n1 0\n"), 0666); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "heat.png")
	var stdout bytes.Buffer
	if err := run([]string{"-o", out, in}, nil, &stdout); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil || !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("%s is not a PNG: %v", out, err)
	}
	if n := strings.Count(stdout.String(), "skipping malformed line"); n != 1 {
		t.Errorf("got %d diagnostics, want 1:\n%s", n, stdout.String())
	}
	if !strings.Contains(stdout.String(), `text="0.75 abc"`) {
		t.Errorf("diagnostic does not show the line:\n%s", stdout.String())
	}
}

func TestHeatplotUsage(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"a.txt", "b.txt"}, nil, &stdout); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want ErrUsage", err)
	}
}
