// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Trajplot plots the path of a particle in two and three dimensions.
//
// Usage:
//
//	trajplot [flags]
//
// The 2D input holds "t x y" rows and the 3D input "t x y z" rows,
// separated by whitespace. A row with the wrong number of fields is
// reported and skipped. The 3D path is drawn as a projection seen
// from an azimuth of -60 and an elevation of 30 degrees.
package main

import (
	"io"

	"github.com/numcourse/numplot/chart"
	"github.com/numcourse/numplot/internal/cli"
	"github.com/numcourse/numplot/numfmt"
	"github.com/numcourse/numplot/plotjob"
)

func main() {
	cli.Main("trajplot", run)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := cli.NewFlags("trajplot", "", stdout)
	in2 := flags.String("2d", "traject_2d.txt", "read the 2D trajectory from `file`")
	in3 := flags.String("3d", "traject_3d.txt", "read the 3D trajectory from `file`")
	out2 := flags.String("o2", "trajectory_2d.png", "write the 2D chart to `file`")
	out3 := flags.String("o3", "trajectory_3d.png", "write the 3D chart to `file`")
	azim := flags.Float64("azim", chart.DefaultAzimuth, "view the 3D path from azimuth `degrees`")
	elev := flags.Float64("elev", chart.DefaultElevation, "view the 3D path from elevation `degrees`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 0 {
		return flags.UsageError()
	}
	logger := flags.Logger(stdout)

	job := &plotjob.Job{
		Name:   "trajectory 2D",
		Inputs: []string{*in2},
		Load:   numfmt.Options{Columns: []string{"t", "x", "y"}},
		Style:  chart.Style{Grid: true},
		Charts: []plotjob.ChartSpec{{
			X: "x", Y: "y",
			Title:  "2D Trajectory",
			XLabel: "X Position", YLabel: "Y Position",
			Output: *out2,
		}},
	}
	if err := plotjob.Run(job, "", logger); err != nil {
		return err
	}

	f, err := numfmt.Load(*in3, numfmt.Options{Columns: []string{"t", "x", "y", "z"}}, plotjob.Warner(logger))
	if err != nil {
		return err
	}
	tr := &chart.Trajectory3D{
		Style: chart.Style{
			Title:  "3D Trajectory",
			XLabel: "X Position",
			YLabel: "Y Position",
		},
		ZLabel: "Z Position",
		X:      f.Column("x"),
		Y:      f.Column("y"),
		Z:      f.Column("z"),
		View:   &chart.Angle{Azimuth: *azim, Elevation: *elev},
	}
	if err := tr.Render(*out3); err != nil {
		return err
	}
	logger.Infof("wrote %s", *out3)
	return nil
}
