// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A Files loads a sequence of input files with the same columns into
// one Frame.
//
// The Frame gets an extra FileColumn recording which input each row
// came from. By default this is the path as given in Paths, except
// that duplicate paths are disambiguated by appending "#N". If
// AllowLabels is true, entries in Paths may be of the form label=path,
// and the label is used instead (without any disambiguation).
type Files struct {
	// Paths is the list of files to read, in order.
	Paths []string

	// AllowStdin indicates that the path "-" means standard input.
	AllowStdin bool

	// AllowLabels indicates that entries of Paths may carry a
	// label=path prefix.
	AllowLabels bool

	// Options is applied to every file.
	Options Options

	stdin io.Reader // replaced during testing
}

type input struct {
	path    string
	label   string
	isStdin bool
}

// inputs parses f.Paths.
func (f *Files) inputs() []input {
	var inputs []input
	labeled := make([]bool, 0, len(f.Paths))
	pathCount := make(map[string]int)
	for _, path := range f.Paths {
		label := path
		isLabeled := false
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
			isLabeled = true
		} else {
			pathCount[path]++
		}
		isStdin := f.AllowStdin && path == "-"
		inputs = append(inputs, input{path, label, isStdin})
		labeled = append(labeled, isLabeled)
	}

	// The same path given twice would otherwise produce rows that
	// cannot be told apart.
	pathI := make(map[string]int)
	for i := range inputs {
		inp := &inputs[i]
		if labeled[i] || pathCount[inp.path] == 1 {
			continue
		}
		inp.label = fmt.Sprintf("%s#%d", inp.path, pathI[inp.path])
		pathI[inp.path]++
	}
	return inputs
}

// Load reads every file in order. Malformed rows are passed to warn.
// A file that cannot be opened stops the load and its error is
// returned unchanged.
func (f *Files) Load(warn WarnFunc) (*Frame, error) {
	var (
		names   []string
		cols    [][]float64
		labels  []string
		skipped int
	)
	for _, inp := range f.inputs() {
		var frame *Frame
		var err error
		if inp.isStdin {
			stdin := f.stdin
			if stdin == nil {
				stdin = os.Stdin
			}
			frame, err = Read(stdin, "<stdin>", f.Options, warn)
		} else {
			frame, err = Load(inp.path, f.Options, warn)
		}
		if err != nil {
			return nil, err
		}
		skipped += frame.Skipped

		if names == nil {
			names = frame.Columns()
			cols = make([][]float64, len(names))
			for i := range cols {
				cols[i] = []float64{}
			}
		} else if !sameColumns(names, frame.Columns()) {
			return nil, fmt.Errorf("%s: columns %v do not match %v", frame.Name, frame.Columns(), names)
		}
		for i, name := range names {
			cols[i] = append(cols[i], frame.Column(name)...)
		}
		for i := 0; i < frame.Len(); i++ {
			labels = append(labels, inp.label)
		}
	}

	var b table.Builder
	for i, name := range names {
		b.Add(name, cols[i])
	}
	if names != nil {
		if labels == nil {
			labels = []string{}
		}
		b.Add(FileColumn, labels)
	}
	return &Frame{Name: strings.Join(f.Paths, ","), Table: b.Done(), Skipped: skipped}, nil
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
