// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Histplot draws frequency histograms of mesh statistics.
//
// Usage:
//
//	histplot [flags] [file...]
//
// Each input holds whitespace-separated numbers, usually one per line.
// By default histplot reads edge_lengths.txt and vertex_areas.txt.
// The histogram of name.txt is written to dir/name_histogram.png. The
// output directory, images by default, must already exist.
package main

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/numcourse/numplot/chart"
	"github.com/numcourse/numplot/internal/cli"
	"github.com/numcourse/numplot/numfmt"
	"github.com/numcourse/numplot/plotjob"
	"github.com/numcourse/numplot/series"
)

// A quantity gives the chart titles for a known input.
type quantity struct {
	title, xLabel string
}

var known = map[string]quantity{
	"edge_lengths": {"Histogram of Edge Lengths", "Edge Length"},
	"vertex_areas": {"Histogram of Vertex Areas", "Vertex Area"},
}

func main() {
	cli.Main("histplot", run)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := cli.NewFlags("histplot", "[file...]", stdout)
	dir := flags.String("dir", "images", "write histograms into `directory`")
	bins := flags.Int("bins", chart.DefaultBins, "number of `bins`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *bins <= 0 {
		return flags.UsageError()
	}
	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"edge_lengths.txt", "vertex_areas.txt"}
	}
	logger := flags.Logger(stdout)

	var firstErr error
	for _, input := range inputs {
		values, err := numfmt.LoadValues(input, numfmt.Options{}, plotjob.Warner(logger))
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		q, ok := known[name]
		if !ok {
			q = quantity{"Histogram of " + name, name}
		}
		logger.WithField("file", input).Debugf("values: %v", series.Summarize(values))

		h := &chart.Histogram{
			Style:  chart.Style{Title: q.title, XLabel: q.xLabel, Grid: true},
			Values: values,
			Bins:   *bins,
		}
		out := filepath.Join(*dir, name+"_histogram.png")
		if err := h.Render(out); err != nil {
			logger.WithField("chart", out).Error(err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		logger.Infof("wrote %s", out)
	}
	return firstErr
}
