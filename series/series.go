// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series splits a loaded file into the groups of rows that
// are drawn as one line each.
//
// Rows are grouped by the distinct values of a categorical column.
// Series appear in the order their key is first seen in the file and
// each series keeps its rows in file order; nothing is sorted.
package series

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"gonum.org/v1/plot/plotter"

	"github.com/numcourse/numplot/numfmt"
)

// rowColumn holds each row's index in the source frame. It keeps every
// group non-empty even when the key is the only column.
const rowColumn = ".row"

// A Series is the rows of a frame that share one key value.
type Series struct {
	// Key is the shared value of the categorical column, or nil for
	// a series made by Whole.
	Key interface{}

	// Label is the legend text for the series.
	Label string

	t *table.Table
}

// Partition groups the rows of f by the distinct values of column key.
// label is a fmt format with one verb, applied to the key to form the
// series label, for example "n=%v". A label without a verb, including
// "", is ignored and the key alone is used. Keys are formatted the
// shortest way that round-trips.
//
// Every row of f belongs to exactly one series. If f has no column
// key, Partition returns a *numfmt.MissingColumnError and no series.
func Partition(f *numfmt.Frame, key, label string) ([]*Series, error) {
	if err := f.Require(key); err != nil {
		return nil, err
	}

	g := table.GroupBy(indexed(f), key)
	var out []*Series
	for _, gid := range g.Tables() {
		k := gid.Label()
		out = append(out, &Series{
			Key:   k,
			Label: keyLabel(label, k),
			t:     g.Table(gid),
		})
	}
	return out, nil
}

func keyLabel(format string, k interface{}) string {
	if !strings.Contains(strings.ReplaceAll(format, "%%", ""), "%") {
		return FormatKey(k)
	}
	return fmt.Sprintf(format, FormatKey(k))
}

// Whole returns f as a single series with the given label.
func Whole(f *numfmt.Frame, label string) *Series {
	return &Series{Label: label, t: indexed(f)}
}

// indexed returns f's table with a row index column added.
func indexed(f *numfmt.Frame) *table.Table {
	idx := make([]int, f.Len())
	for i := range idx {
		idx[i] = i
	}
	return table.NewBuilder(f.Table).Add(rowColumn, idx).Done()
}

// FormatKey formats a key value for a label.
func FormatKey(k interface{}) string {
	switch k := k.(type) {
	case float64:
		return strconv.FormatFloat(k, 'g', -1, 64)
	case string:
		return k
	}
	return fmt.Sprint(k)
}

// Len returns the number of rows in s.
func (s *Series) Len() int {
	return s.t.Len()
}

// Rows returns the indexes in the source frame of the rows of s.
func (s *Series) Rows() []int {
	return s.t.MustColumn(rowColumn).([]int)
}

// Column returns the values of the numeric column name for the rows of
// s, or nil if there is no such numeric column.
func (s *Series) Column(name string) []float64 {
	if cv, ok := s.t.Const(name); ok {
		// The key column is constant within a series.
		v, ok := cv.(float64)
		if !ok {
			return nil
		}
		col := make([]float64, s.Len())
		for i := range col {
			col[i] = v
		}
		return col
	}
	col, _ := s.t.Column(name).([]float64)
	return col
}

// Points pairs the x and y columns of s.
func (s *Series) Points(x, y string) (plotter.XYs, error) {
	xs, ys := s.Column(x), s.Column(y)
	if xs == nil {
		return nil, &numfmt.MissingColumnError{FileName: s.Label, Column: x}
	}
	if ys == nil {
		return nil, &numfmt.MissingColumnError{FileName: s.Label, Column: y}
	}
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts, nil
}
