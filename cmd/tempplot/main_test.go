// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProfile(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < 1000; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%g", 20+float64(i)/10)
	}
	b.WriteString("\n1.5,bad\n")
	path := filepath.Join(t.TempDir(), "temperature.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTempplot(t *testing.T) {
	in := writeProfile(t)
	out := filepath.Join(t.TempDir(), "temperature.png")
	var stdout bytes.Buffer
	if err := run([]string{"-o", out, in}, strings.NewReader(""), &stdout); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}
	if n := strings.Count(stdout.String(), "skipping malformed line"); n != 1 {
		t.Errorf("got %d diagnostics, want 1:\n%s", n, stdout.String())
	}
}

func TestTempplotPrompt(t *testing.T) {
	in := writeProfile(t)
	out := filepath.Join(t.TempDir(), "temperature.png")
	var stdout bytes.Buffer
	if err := run([]string{"-o", out}, strings.NewReader(in+"\n"), &stdout); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout.String(), "Enter the filename of the temperature data: ") {
		t.Errorf("no prompt in %q", stdout.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}
}

func TestTempplotNoAnswer(t *testing.T) {
	var stdout bytes.Buffer
	err := run(nil, strings.NewReader(""), &stdout)
	if err != io.ErrUnexpectedEOF {
		t.Errorf("got %v, want %v", err, io.ErrUnexpectedEOF)
	}
}
