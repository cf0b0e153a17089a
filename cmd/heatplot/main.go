// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Heatplot plots a one-dimensional steady-state heat distribution.
//
// Usage:
//
//	heatplot [flags] [file]
//
// The input file, output.txt by default, holds one "x T" pair per line
// separated by whitespace. Lines that do not hold exactly two numbers
// are reported and skipped.
package main

import (
	"image/color"
	"io"

	"gonum.org/v1/plot/vg"

	"github.com/numcourse/numplot/chart"
	"github.com/numcourse/numplot/internal/cli"
	"github.com/numcourse/numplot/numfmt"
	"github.com/numcourse/numplot/plotjob"
)

func main() {
	cli.Main("heatplot", run)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := cli.NewFlags("heatplot", "[file]", stdout)
	out := flags.String("o", "heat_distribution.png", "write the chart to `file`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	input := "output.txt"
	switch flags.NArg() {
	case 0:
	case 1:
		input = flags.Arg(0)
	default:
		return flags.UsageError()
	}

	job := &plotjob.Job{
		Name:   "heat",
		Inputs: []string{input},
		Load:   numfmt.Options{Columns: []string{"x", "T"}},
		Style:  chart.Style{Width: 10 * vg.Inch, Height: 6 * vg.Inch, Grid: true},
		Colors: []color.Color{color.RGBA{B: 0xff, A: 0xff}},
		Charts: []plotjob.ChartSpec{{
			X: "x", Y: "T",
			Title:  "1D Heat Distribution",
			XLabel: "x", YLabel: "Temperature (T)",
			Output: *out,
		}},
	}
	return plotjob.Run(job, "", flags.Logger(stdout))
}
