// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Rootplot compares how root-finding methods converge.
//
// Usage:
//
//	rootplot [flags] [label=file...]
//
// Each input is a headerless CSV file of "iteration,root" rows. By
// default rootplot reads newton_iterations.csv as "Newton-Raphson" and
// secant_iterations.csv as "Secant", and draws one line per file into
// root_vs_iterations.png. An input given without a label is labeled by
// its path.
package main

import (
	"io"

	"gonum.org/v1/plot/vg"

	"github.com/numcourse/numplot/chart"
	"github.com/numcourse/numplot/internal/cli"
	"github.com/numcourse/numplot/numfmt"
	"github.com/numcourse/numplot/plotjob"
)

var defaultInputs = []string{
	"Newton-Raphson=newton_iterations.csv",
	"Secant=secant_iterations.csv",
}

func main() {
	cli.Main("rootplot", run)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := cli.NewFlags("rootplot", "[label=file...]", stdout)
	out := flags.String("o", "root_vs_iterations.png", "write the chart to `file`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = defaultInputs
	}

	job := &plotjob.Job{
		Name:        "roots",
		Inputs:      inputs,
		AllowLabels: true,
		Load:        numfmt.Options{Delim: numfmt.Comma, Columns: []string{"Iteration", "Root"}},
		Key:         numfmt.FileColumn,
		Label:       "%v",
		Style:       chart.Style{Width: 10 * vg.Inch, Height: 6 * vg.Inch, Grid: true},
		Markers:     []chart.Marker{chart.Circle, chart.Cross},
		Charts: []plotjob.ChartSpec{{
			X: "Iteration", Y: "Root",
			Title:  "Computed Root vs. Number of Iterations",
			XLabel: "Iteration", YLabel: "Computed Root",
			Output: *out,
		}},
	}
	return plotjob.Run(job, "", flags.Logger(stdout))
}
