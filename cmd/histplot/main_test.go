// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/numcourse/numplot/internal/cli"
)

func writeValues(t *testing.T, dir, name string, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%g\n", 0.1+float64(i%17)/100)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHistplot(t *testing.T) {
	dir := t.TempDir()
	edges := writeValues(t, dir, "edge_lengths.txt", 300)
	areas := writeValues(t, dir, "vertex_areas.txt", 100)
	imgs := filepath.Join(dir, "images")
	if err := os.Mkdir(imgs, 0777); err != nil {
		t.Fatal(err)
	}
	var stdout bytes.Buffer
	if err := run([]string{"-dir", imgs, "-bins", "20", edges, areas}, nil, &stdout); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"edge_lengths_histogram.png", "vertex_areas_histogram.png"} {
		if _, err := os.Stat(filepath.Join(imgs, name)); err != nil {
			t.Error(err)
		}
	}
}

func TestHistplotMissingDir(t *testing.T) {
	dir := t.TempDir()
	edges := writeValues(t, dir, "edge_lengths.txt", 10)
	var stdout bytes.Buffer
	err := run([]string{"-dir", filepath.Join(dir, "images"), edges}, nil, &stdout)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want a not-exist error", err)
	}
	if !strings.Contains(stdout.String(), "level=error") {
		t.Errorf("failure not logged:\n%s", stdout.String())
	}
}

func TestHistplotBadBins(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-bins", "0"}, nil, &stdout); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want ErrUsage", err)
	}
}
