// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tempplot plots a temperature profile against time step.
//
// Usage:
//
//	tempplot [flags] [file]
//
// The input is a comma-separated file of temperatures. Rows may have
// any length, including one very long row; the values are read in
// order and the i'th value is plotted at time step i. Fields that are
// not numbers are reported and their row is skipped.
//
// If no file is named, tempplot asks for one on standard input.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/plot/plotter"

	"github.com/numcourse/numplot/chart"
	"github.com/numcourse/numplot/internal/cli"
	"github.com/numcourse/numplot/numfmt"
	"github.com/numcourse/numplot/plotjob"
	"github.com/numcourse/numplot/series"
)

func main() {
	cli.Main("tempplot", run)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := cli.NewFlags("tempplot", "[file]", stdout)
	out := flags.String("o", "temperature.png", "write the chart to `file`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	var input string
	switch flags.NArg() {
	case 0:
		var err error
		if input, err = prompt(stdin, stdout, "Enter the filename of the temperature data: "); err != nil {
			return err
		}
	case 1:
		input = flags.Arg(0)
	default:
		return flags.UsageError()
	}
	logger := flags.Logger(stdout)

	temps, err := numfmt.LoadValues(input, numfmt.Options{Delim: numfmt.Comma}, plotjob.Warner(logger))
	if err != nil {
		return err
	}
	logger.WithField("file", input).Debugf("temperatures: %v", series.Summarize(temps))

	pts := make(plotter.XYs, len(temps))
	for i, t := range temps {
		pts[i] = plotter.XY{X: float64(i), Y: t}
	}
	c := &chart.Lines{
		Style: chart.Style{
			Title:  "Temperature as a Function of Time",
			XLabel: "Time Steps",
			YLabel: "Temperature",
		},
		Lines: []chart.Line{{Label: "Temperature", Points: pts, Marker: chart.NoMarker}},
	}
	if err := c.Render(*out); err != nil {
		return err
	}
	logger.Infof("wrote %s", *out)
	return nil
}

// prompt writes msg to w and returns the next line read from r.
func prompt(r io.Reader, w io.Writer, msg string) (string, error) {
	fmt.Fprint(w, msg)
	s := bufio.NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	name := strings.TrimSpace(s.Text())
	if name == "" {
		return "", fmt.Errorf("no file name given")
	}
	return name, nil
}
