// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Timingplot plots grid summation time against grid size.
//
// Usage:
//
//	timingplot [flags] [file]
//
// The input, timing_results.txt by default, holds "size time" pairs.
package main

import (
	"io"

	"github.com/numcourse/numplot/chart"
	"github.com/numcourse/numplot/internal/cli"
	"github.com/numcourse/numplot/numfmt"
	"github.com/numcourse/numplot/plotjob"
)

func main() {
	cli.Main("timingplot", run)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := cli.NewFlags("timingplot", "[file]", stdout)
	out := flags.String("o", "timing_plot.png", "write the chart to `file`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	input := "timing_results.txt"
	switch flags.NArg() {
	case 0:
	case 1:
		input = flags.Arg(0)
	default:
		return flags.UsageError()
	}

	job := &plotjob.Job{
		Name:   "timing",
		Inputs: []string{input},
		Load:   numfmt.Options{Columns: []string{"size", "time"}},
		Style:  chart.Style{Grid: true},
		Charts: []plotjob.ChartSpec{{
			X: "size", Y: "time",
			Title:  "Execution Time of Grid Summation",
			XLabel: "Grid Size (n)", YLabel: "Time (seconds)",
			Output: *out,
		}},
	}
	return plotjob.Run(job, "", flags.Logger(stdout))
}
