// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotjob describes a plotting run declaratively: which file to
// load, how to split it into series, and which charts to draw.
//
// A Job is executed by Run as load, partition, render. The stages run
// one after another and every chart of a job is attempted even when
// an earlier one fails.
package plotjob

import (
	"errors"
	"image/color"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/numcourse/numplot/chart"
	"github.com/numcourse/numplot/numfmt"
	"github.com/numcourse/numplot/series"
)

// A Job loads one data set and draws a set of charts from it.
type Job struct {
	// Name identifies the job in log messages.
	Name string

	// Inputs are the files to load. Every file must have the same
	// columns. The rows are concatenated and the numfmt.FileColumn
	// column records each row's source, so Key may be
	// numfmt.FileColumn to draw one series per file. The input "-"
	// reads standard input.
	Inputs []string

	// AllowLabels lets an input be given as label=path, naming its
	// rows in numfmt.FileColumn. Without it a path may contain "=".
	AllowLabels bool

	// Load controls how the inputs are parsed.
	Load numfmt.Options

	// Key is the categorical column that splits rows into series.
	// If Key is empty all rows form one series.
	Key string

	// Label is the series label. With a Key it is a format applied
	// to each key value, such as "n=%v". Without a Key it is used as
	// is, and an empty Label leaves the chart without a legend.
	Label string

	// Style is the base style of every chart. Each ChartSpec sets
	// the title and axis labels.
	Style chart.Style

	// Markers and Colors, if set, are applied to the i'th series,
	// cycling when there are more series than entries.
	Markers []chart.Marker
	Colors  []color.Color

	Charts []ChartSpec
}

// A ChartSpec is one line chart drawn from a job's series.
type ChartSpec struct {
	// X and Y name the columns plotted against each other.
	X, Y string

	// Err optionally names a column of standard deviations drawn as
	// error bars around Y.
	Err string

	Title, XLabel, YLabel string

	// Output is the file written, relative to the output directory.
	Output string

	// AutoLog picks a log y axis when the data allows it. See
	// chart.UseLogScale.
	AutoLog bool
}

// Run executes job, writing charts under dir.
//
// A file that cannot be read stops the job and its error is returned.
// If the job's Key column is missing, the job's charts are skipped with
// a warning and Run returns nil. A chart whose columns are missing is
// skipped the same way. A chart that fails to render is logged and the
// remaining charts are still drawn. Run then returns the first such
// error.
func Run(job *Job, dir string, logger log.FieldLogger) error {
	jlog := logger.WithField("job", job.Name)

	f, err := load(job, Warner(jlog))
	if err != nil {
		return err
	}
	jlog.WithFields(log.Fields{"rows": f.Len(), "skipped": f.Skipped, "columns": f.Columns()}).Debug("loaded")

	var ss []*series.Series
	if job.Key == "" {
		ss = []*series.Series{series.Whole(f, job.Label)}
	} else {
		ss, err = series.Partition(f, job.Key, job.Label)
		var mc *numfmt.MissingColumnError
		if errors.As(err, &mc) {
			jlog.WithField("column", mc.Column).Warnf("column %q not found in %s, skipping charts", mc.Column, mc.FileName)
			return nil
		} else if err != nil {
			return err
		}
	}
	for _, s := range ss {
		jlog.WithFields(log.Fields{"series": s.Label, "rows": s.Len()}).Trace("series")
	}

	var firstErr error
	for i := range job.Charts {
		cs := &job.Charts[i]
		path := filepath.Join(dir, cs.Output)
		clog := jlog.WithField("chart", cs.Output)

		c, err := job.lines(cs, f, ss)
		var mc *numfmt.MissingColumnError
		if errors.As(err, &mc) {
			clog.WithField("column", mc.Column).Warnf("column %q not found in %s, skipping chart", mc.Column, mc.FileName)
			continue
		} else if err != nil {
			clog.Error(err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if err := c.Render(path); err != nil {
			clog.Error(err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		clog.WithField("log", c.LogY()).Infof("wrote %s", path)
	}
	return firstErr
}

func load(job *Job, warn numfmt.WarnFunc) (*numfmt.Frame, error) {
	if len(job.Inputs) == 0 {
		return nil, errors.New("no input files")
	}
	files := &numfmt.Files{Paths: job.Inputs, AllowStdin: true, AllowLabels: job.AllowLabels, Options: job.Load}
	return files.Load(warn)
}

// lines builds the chart for cs from the job's series.
func (job *Job) lines(cs *ChartSpec, f *numfmt.Frame, ss []*series.Series) (*chart.Lines, error) {
	cols := []string{cs.X, cs.Y}
	if cs.Err != "" {
		cols = append(cols, cs.Err)
	}
	if err := f.Require(cols...); err != nil {
		return nil, err
	}

	st := job.Style
	st.Title, st.XLabel, st.YLabel = cs.Title, cs.XLabel, cs.YLabel
	c := &chart.Lines{Style: st, AutoLog: cs.AutoLog}
	for i, s := range ss {
		pts, err := s.Points(cs.X, cs.Y)
		if err != nil {
			return nil, err
		}
		l := chart.Line{Label: s.Label, Points: pts}
		if cs.Err != "" {
			l.YErr = s.Column(cs.Err)
		}
		if len(job.Markers) > 0 {
			l.Marker = job.Markers[i%len(job.Markers)]
		}
		if len(job.Colors) > 0 {
			l.Color = job.Colors[i%len(job.Colors)]
		}
		c.Lines = append(c.Lines, l)
	}
	return c, nil
}

// Warner returns a numfmt.WarnFunc that logs each skipped line.
func Warner(logger log.FieldLogger) numfmt.WarnFunc {
	return func(e *numfmt.SyntaxError) {
		logger.WithFields(log.Fields{"file": e.FileName, "line": e.Line, "text": e.Text}).Warnf("skipping malformed line: %s", e.Msg)
	}
}
