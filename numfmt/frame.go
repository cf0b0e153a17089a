// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// A Frame is a fully loaded input file. Each column is a []float64
// with one entry per valid row, in file order.
type Frame struct {
	// Name is the file the frame was read from.
	Name string

	// Table holds the columns. Frames built by Files carry an extra
	// []string column, FileColumn.
	Table *table.Table

	// Skipped is the number of malformed rows that were dropped.
	Skipped int
}

// FileColumn is the column added by Files that records which input a
// row came from.
const FileColumn = ".file"

// A MissingColumnError reports that a column needed for a plot is not
// present in a file.
type MissingColumnError struct {
	FileName string
	Column   string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: column %q not found", e.FileName, e.Column)
}

// A WarnFunc receives one diagnostic for every row dropped while
// loading a file.
type WarnFunc func(err *SyntaxError)

// printWarning is used when the caller supplies no WarnFunc.
func printWarning(err *SyntaxError) {
	fmt.Fprintf(os.Stdout, "skipping malformed line %s\n", err)
}

// Load reads the whole file at path into a Frame. Malformed rows are
// dropped and passed to warn. If the file cannot be opened, Load
// returns the error from os.Open unchanged.
func Load(path string, opts Options, warn WarnFunc) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path, opts, warn)
}

// Read is like Load, but reads from r. fileName is used in
// diagnostics.
func Read(r io.Reader, fileName string, opts Options, warn WarnFunc) (*Frame, error) {
	if warn == nil {
		warn = printWarning
	}
	opts.Uniform = true
	reader := NewReader(r, fileName, opts)

	var cols [][]float64
	frame := &Frame{Name: fileName}
	for reader.Scan() {
		switch rec := reader.Result().(type) {
		case *SyntaxError:
			frame.Skipped++
			warn(rec)
		case *Row:
			if cols == nil {
				cols = make([][]float64, len(rec.Values))
			}
			for i, v := range rec.Values {
				cols[i] = append(cols[i], v)
			}
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}

	names := columnNames(reader.Header(), opts.Columns, len(cols))
	if cols == nil {
		cols = make([][]float64, len(names))
	} else if len(names) != len(cols) {
		return nil, fmt.Errorf("%s: %d column names for %d fields", fileName, len(names), len(cols))
	}
	var b table.Builder
	for i, name := range names {
		col := cols[i]
		if col == nil {
			col = []float64{}
		}
		b.Add(name, col)
	}
	frame.Table = b.Done()
	return frame, nil
}

// columnNames picks names for n columns: the header if there is one,
// then the configured names, then positional names "0", "1", ....
// Repeated names get a "#N" suffix so no column is shadowed.
func columnNames(header, configured []string, n int) []string {
	names := header
	if names == nil {
		names = configured
	}
	if names == nil {
		names = make([]string, n)
		for i := range names {
			names[i] = strconv.Itoa(i)
		}
		return names
	}

	seen := make(map[string]int)
	out := make([]string, len(names))
	for i, name := range names {
		if k := seen[name]; k > 0 {
			out[i] = fmt.Sprintf("%s#%d", name, k)
		} else {
			out[i] = name
		}
		seen[name]++
	}
	return out
}

// LoadValues reads every valid number in the file at path into a
// single slice, row by row. Rows may have any width.
func LoadValues(path string, opts Options, warn WarnFunc) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if warn == nil {
		warn = printWarning
	}
	var out []float64
	reader := NewReader(f, path, opts)
	for reader.Scan() {
		switch rec := reader.Result().(type) {
		case *SyntaxError:
			warn(rec)
		case *Row:
			out = append(out, rec.Values...)
		}
	}
	return out, reader.Err()
}

// Len returns the number of valid rows in f.
func (f *Frame) Len() int {
	return f.Table.Len()
}

// Columns returns the column names of f in file order.
func (f *Frame) Columns() []string {
	return f.Table.Columns()
}

// Has reports whether f has a column called name.
func (f *Frame) Has(name string) bool {
	return f.Table.Column(name) != nil
}

// Column returns the numeric column called name, or nil if there is
// no such numeric column.
func (f *Frame) Column(name string) []float64 {
	col, _ := f.Table.Column(name).([]float64)
	return col
}

// Require returns a *MissingColumnError for the first name that is not
// a column of f.
func (f *Frame) Require(names ...string) error {
	for _, name := range names {
		if !f.Has(name) {
			return &MissingColumnError{FileName: f.Name, Column: name}
		}
	}
	return nil
}
