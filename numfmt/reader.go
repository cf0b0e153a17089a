// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfmt reads the flat numeric text files written by the
// solver programs: one record per line, fields separated by runs of
// white space or by commas, optionally preceded by a header line that
// names the columns.
//
// The Reader is modeled on bufio.Scanner. A line that does not parse
// is returned as a *SyntaxError record instead of stopping the scan,
// so callers can report it and keep going.
package numfmt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// A Delim selects how a line is split into fields.
type Delim int

const (
	// Auto splits a line on commas if it contains one and on white
	// space otherwise.
	Auto Delim = iota
	// Space splits on runs of white space.
	Space
	// Comma splits on commas. White space around each field is
	// ignored.
	Comma
)

// Options configures a Reader.
type Options struct {
	Delim Delim

	// Header indicates that the first non-blank line names the
	// columns.
	Header bool

	// Columns names the columns of a file without a header line.
	// It is ignored if Header is set.
	Columns []string

	// Fields is the number of fields every row must have. If it is
	// 0, the width comes from the header or Columns. If neither is
	// present, rows may have any width unless Uniform is set, in
	// which case the first valid row fixes the width.
	Fields int

	// Uniform requires every row to have the same width.
	Uniform bool
}

// maxLine bounds the length of a single input line. Profiles written
// as one comma-separated line can be far longer than bufio's default.
const maxLine = 64 << 20

// A Reader reads rows of numbers.
//
// A Reader retains ownership of the Row it returns; a caller should
// Clone anything it needs to keep past the next call to Scan.
type Reader struct {
	s        *bufio.Scanner
	opts     Options
	fileName string
	line     int
	err      error

	header []string
	width  int

	row Row
	rec Record
}

// A Record is a single record read from a file. It is either a *Row
// or a *SyntaxError.
type Record interface {
	// Pos returns the file name and 1-based line number of the
	// record.
	Pos() (fileName string, line int)
}

var _ Record = (*Row)(nil)
var _ Record = (*SyntaxError)(nil)

// A Row is one valid line of numbers.
type Row struct {
	Values []float64

	fileName string
	line     int
}

func (r *Row) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Clone returns a copy of r that does not share storage with the
// Reader.
func (r *Row) Clone() *Row {
	r2 := *r
	r2.Values = append([]float64(nil), r.Values...)
	return &r2
}

// A SyntaxError reports a line that could not be parsed into the
// expected numeric fields. The line is dropped.
type SyntaxError struct {
	FileName string
	Line     int
	Text     string // the offending line, without its newline
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.FileName, e.Line, e.Msg, e.Text)
}

var noResult = &SyntaxError{"", 0, "", "Reader.Scan has not been called"}

// NewReader returns a Reader that reads rows from r. fileName is used
// in error messages only.
func NewReader(r io.Reader, fileName string, opts Options) *Reader {
	reader := new(Reader)
	reader.opts = opts
	reader.Reset(r, fileName)
	return reader
}

// Reset discards any state and begins reading from a new input with
// the same Options.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(nil, maxLine)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.err = nil
	r.header = nil
	r.rec = nil
	r.row = Row{Values: r.row.Values[:0], fileName: fileName}

	r.width = r.opts.Fields
	if r.width == 0 && !r.opts.Header {
		r.width = len(r.opts.Columns)
	}
}

// Scan advances to the next record and reports whether there is one.
// Use Result to retrieve it. At EOF or on an I/O error Scan returns
// false; use Err to tell the two apart.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		text := r.s.Bytes()
		trimmed := bytes.TrimSpace(text)
		if len(trimmed) == 0 || trimmed[0] == '#' {
			continue
		}
		fields := r.split(trimmed)

		if r.opts.Header && r.header == nil {
			r.header = make([]string, len(fields))
			for i, f := range fields {
				r.header[i] = string(f)
			}
			if r.opts.Fields == 0 {
				r.width = len(r.header)
			}
			continue
		}

		if err := r.parseRow(fields); err != nil {
			err.Text = string(text)
			r.rec = err
		} else {
			r.rec = &r.row
		}
		return true
	}

	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
	}
	return false
}

// parseRow parses fields into r.row.
func (r *Reader) parseRow(fields [][]byte) *SyntaxError {
	if r.width > 0 && len(fields) != r.width {
		return r.newSyntaxError(fmt.Sprintf("expected %d fields, found %d", r.width, len(fields)))
	}
	vals := r.row.Values[:0]
	for i, f := range fields {
		if len(f) == 0 {
			return r.newSyntaxError(fmt.Sprintf("field %d is empty", i+1))
		}
		v, err := strconv.ParseFloat(string(f), 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return r.newSyntaxError(fmt.Sprintf("parsing field %d: %v", i+1, err))
		}
		if math.IsNaN(v) {
			return r.newSyntaxError(fmt.Sprintf("field %d is not a number", i+1))
		}
		if math.IsInf(v, 0) {
			return r.newSyntaxError(fmt.Sprintf("field %d is infinite", i+1))
		}
		vals = append(vals, v)
	}
	r.row.Values = vals
	r.row.line = r.line
	if r.width == 0 && r.opts.Uniform {
		r.width = len(vals)
	}
	return nil
}

func (r *Reader) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{FileName: r.fileName, Line: r.line, Msg: msg}
}

// Result returns the record read by the last call to Scan: a *Row or
// a *SyntaxError. Syntax errors are not fatal; the caller may keep
// calling Scan.
func (r *Reader) Result() Record {
	if r.rec == nil {
		return noResult
	}
	return r.rec
}

// Err returns the first I/O error encountered by the Reader, if any.
func (r *Reader) Err() error {
	return r.err
}

// Header returns the column names read from the header line, or nil
// if there is no header (yet).
func (r *Reader) Header() []string {
	return r.header
}

// split breaks line into fields according to r.opts.Delim.
func (r *Reader) split(line []byte) [][]byte {
	delim := r.opts.Delim
	if delim == Auto {
		delim = Space
		if bytes.IndexByte(line, ',') >= 0 {
			delim = Comma
		}
	}
	if delim == Comma {
		fields := bytes.Split(line, []byte{','})
		for i := range fields {
			fields[i] = bytes.TrimSpace(fields[i])
		}
		return fields
	}

	var fields [][]byte
	for len(line) > 0 {
		var f []byte
		f, line = splitField(line)
		fields = append(fields, f)
	}
	return fields
}

const isSpace uint64 = 1<<'\t' | 1<<'\n' | 1<<'\v' | 1<<'\f' | 1<<'\r' | 1<<' '

// splitField consumes and returns non-whitespace in x as field,
// consumes whitespace following the field, and then returns the
// remaining bytes of x.
func splitField(x []byte) (field, rest []byte) {
	var i int
	for i = 0; i < len(x); {
		if x[i] < utf8.RuneSelf {
			// Fast path for ASCII
			if (isSpace>>x[i])&1 != 0 {
				rest = x[i+1:]
				break
			}
			i++
		} else {
			r, n := utf8.DecodeRune(x[i:])
			if unicode.IsSpace(r) {
				rest = x[i+n:]
				break
			}
			i += n
		}
	}
	field = x[:i]
	return field, bytes.TrimLeftFunc(rest, unicode.IsSpace)
}
