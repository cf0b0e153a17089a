// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Perfplot plots the results of the parallel quadrature benchmarks.
//
// Usage:
//
//	perfplot [flags]
//
// Perfplot reads two CSV files with a header line.
//
// The non-adaptive results, parallel_trapezoidal_results.csv by
// default, have columns n, threads, execution_time, mean_eval and
// std_eval. They are drawn with one line per problem size n.
//
// The adaptive results, adaptive_trapezoidal_results.csv by default,
// have columns tolerance, threads, execution_time, mean_evaluations,
// stddev_evaluations, mean_time and stddev_time. They are drawn with
// one line per tolerance; the thread time chart shows mean_time with
// stddev_time error bars.
//
// Every chart plots against the thread count. The standard deviation
// charts switch to a log y axis when no value is negative and some
// value is positive.
//
// A file that lacks its grouping column (n or tolerance) is reported
// and its charts are skipped. Malformed rows are reported and dropped.
// A chart that fails to render does not stop the others, but an input
// file that does not exist stops perfplot before any later job runs.
package main

import (
	"errors"
	"io"
	"io/fs"

	"github.com/numcourse/numplot/internal/cli"
	"github.com/numcourse/numplot/plotjob"
)

func main() {
	cli.Main("perfplot", run)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := cli.NewFlags("perfplot", "", stdout)
	nonAdaptive := flags.String("nonadaptive", plotjob.NonAdaptiveInput, "read non-adaptive results from `file`")
	adaptive := flags.String("adaptive", plotjob.AdaptiveInput, "read adaptive results from `file`")
	dir := flags.String("dir", ".", "write charts into `directory`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 0 {
		return flags.UsageError()
	}
	logger := flags.Logger(stdout)

	var firstErr error
	for _, job := range []*plotjob.Job{plotjob.NonAdaptive(*nonAdaptive), plotjob.Adaptive(*adaptive)} {
		if err := plotjob.Run(job, *dir, logger); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
