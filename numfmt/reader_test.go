// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"
)

func parseAll(t *testing.T, data string, opts Options) ([]Record, *Reader) {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test", opts)
	var out []Record
	for r.Scan() {
		switch rec := r.Result(); rec := rec.(type) {
		case *Row:
			out = append(out, rec.Clone())
		case *SyntaxError:
			out = append(out, rec)
		default:
			t.Fatalf("unexpected result type %T", rec)
		}
	}
	if err := r.Err(); err != nil {
		t.Fatal("parsing failed: ", err)
	}
	return out, r
}

func printRecord(w io.Writer, r Record) {
	switch r := r.(type) {
	case *Row:
		_, line := r.Pos()
		fmt.Fprintf(w, "%d: %v\n", line, r.Values)
	case *SyntaxError:
		fmt.Fprintf(w, "SyntaxError: %s\n", r)
	default:
		panic(fmt.Sprintf("unknown record type %T", r))
	}
}

func row(line int, vals ...float64) *Row {
	return &Row{Values: vals, fileName: "test", line: line}
}

func syntaxErr(line int, text, msg string) *SyntaxError {
	return &SyntaxError{FileName: "test", Line: line, Text: text, Msg: msg}
}

func compareRecords(t *testing.T, got, want []Record) {
	t.Helper()
	var diff bytes.Buffer
	for i := 0; i < len(got) || i < len(want); i++ {
		if i >= len(got) {
			fmt.Fprintf(&diff, "[%d] got: none, want:\n", i)
			printRecord(&diff, want[i])
		} else if i >= len(want) {
			fmt.Fprintf(&diff, "[%d] want: none, got:\n", i)
			printRecord(&diff, got[i])
		} else if !reflect.DeepEqual(got[i], want[i]) {
			fmt.Fprintf(&diff, "[%d] got:\n", i)
			printRecord(&diff, got[i])
			fmt.Fprintf(&diff, "[%d] want:\n", i)
			printRecord(&diff, want[i])
		}
	}
	if diff.Len() != 0 {
		t.Error(diff.String())
	}
}

func TestReader(t *testing.T) {
	type testCase struct {
		name   string
		input  string
		opts   Options
		want   []Record
		header []string
	}
	for _, test := range []testCase{
		{
			name:  "whitespace",
			input: "0 1.5\n0.25\t2e3\n  0.5   -3  \n",
			want: []Record{
				row(1, 0, 1.5),
				row(2, 0.25, 2000),
				row(3, 0.5, -3),
			},
		},
		{
			name:  "blank and comment lines",
			input: "\n# x T\n1 2\n\n   \n3 4\n",
			want: []Record{
				row(3, 1, 2),
				row(6, 3, 4),
			},
		},
		{
			name:  "comma",
			input: "1,2.5\n2, 3.5\n",
			opts:  Options{Delim: Comma},
			want: []Record{
				row(1, 1, 2.5),
				row(2, 2, 3.5),
			},
		},
		{
			name:  "auto picks comma per line",
			input: "1,2\n3 4\n",
			want: []Record{
				row(1, 1, 2),
				row(2, 3, 4),
			},
		},
		{
			name:   "header",
			input:  "n,threads,execution_time\n1,2,10.0\n",
			opts:   Options{Header: true},
			header: []string{"n", "threads", "execution_time"},
			want: []Record{
				row(2, 1, 2, 10),
			},
		},
		{
			name:  "non-numeric field",
			input: "1 2\n1 two\n",
			want: []Record{
				row(1, 1, 2),
				syntaxErr(2, "1 two", "parsing field 2: invalid syntax"),
			},
		},
		{
			name:  "NaN field",
			input: "1 NaN\n",
			want: []Record{
				syntaxErr(1, "1 NaN", "field 2 is not a number"),
			},
		},
		{
			name:  "infinite field",
			input: "1 -Inf\n",
			want: []Record{
				syntaxErr(1, "1 -Inf", "field 2 is infinite"),
			},
		},
		{
			name:  "empty comma field",
			input: "1,,3\n",
			opts:  Options{Delim: Comma},
			want: []Record{
				syntaxErr(1, "1,,3", "field 2 is empty"),
			},
		},
		{
			name:  "fixed width",
			input: "1 2 3\n1 2\n1 2 3 4\n",
			opts:  Options{Fields: 3},
			want: []Record{
				row(1, 1, 2, 3),
				syntaxErr(2, "1 2", "expected 3 fields, found 2"),
				syntaxErr(3, "1 2 3 4", "expected 3 fields, found 4"),
			},
		},
		{
			name:  "width from columns",
			input: "1 2\n1\n",
			opts:  Options{Columns: []string{"x", "y"}},
			want: []Record{
				row(1, 1, 2),
				syntaxErr(2, "1", "expected 2 fields, found 1"),
			},
		},
		{
			name:  "uniform",
			input: "1\n1 2\n3\n",
			opts:  Options{Uniform: true},
			want: []Record{
				row(1, 1),
				syntaxErr(2, "1 2", "expected 1 fields, found 2"),
				row(3, 3),
			},
		},
		{
			name:  "any width",
			input: "1\n1 2\n1,2,3\n",
			want: []Record{
				row(1, 1),
				row(2, 1, 2),
				row(3, 1, 2, 3),
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, r := parseAll(t, test.input, test.opts)
			compareRecords(t, got, test.want)
			if !reflect.DeepEqual(r.Header(), test.header) {
				t.Errorf("header: got %q, want %q", r.Header(), test.header)
			}
		})
	}
}

func TestReaderLongLine(t *testing.T) {
	// A temperature profile written on a single line.
	var b strings.Builder
	const n = 20000
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d.125", i)
	}
	got, _ := parseAll(t, b.String(), Options{})
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	row, ok := got[0].(*Row)
	if !ok {
		t.Fatalf("got %v, want a row", got[0])
	}
	if len(row.Values) != n {
		t.Errorf("got %d values, want %d", len(row.Values), n)
	}
}

func TestResultBeforeScan(t *testing.T) {
	r := NewReader(strings.NewReader("1 2\n"), "test", Options{})
	if rec := r.Result(); rec != noResult {
		t.Errorf("got %v, want noResult", rec)
	}
}

func TestSyntaxErrorText(t *testing.T) {
	err := syntaxErr(7, "1 x", "parsing field 2: invalid syntax")
	want := `test:7: parsing field 2: invalid syntax: "1 x"`
	if got := err.Error(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSplitField(t *testing.T) {
	for _, test := range []struct {
		in, field, rest string
	}{
		{"", "", ""},
		{"a", "a", ""},
		{"a b", "a", "b"},
		{"a \t b c", "a", "b c"},
		{"1.5 2", "1.5", "2"},
	} {
		field, rest := splitField([]byte(test.in))
		if string(field) != test.field || string(rest) != test.rest {
			t.Errorf("splitField(%q) = %q, %q, want %q, %q", test.in, field, rest, test.field, test.rest)
		}
	}
}
