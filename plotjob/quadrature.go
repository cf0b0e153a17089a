// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotjob

import (
	"gonum.org/v1/plot/vg"

	"github.com/numcourse/numplot/chart"
	"github.com/numcourse/numplot/numfmt"
)

// Default inputs of the quadrature benchmark.
const (
	NonAdaptiveInput = "parallel_trapezoidal_results.csv"
	AdaptiveInput    = "adaptive_trapezoidal_results.csv"
)

var benchStyle = chart.Style{Width: 10 * vg.Inch, Height: 6 * vg.Inch, Grid: true}

const threadsLabel = "Number of Threads"

// NonAdaptive returns the job that plots the parallel trapezoidal
// benchmark in path, one line per problem size n.
func NonAdaptive(path string) *Job {
	return &Job{
		Name:   "non-adaptive",
		Inputs: []string{path},
		Load:   numfmt.Options{Header: true},
		Key:    "n",
		Label:  "n=%v",
		Style:  benchStyle,
		Charts: []ChartSpec{
			{
				X: "threads", Y: "execution_time",
				Title:  "Non-Adaptive: Execution Time vs Number of Threads",
				XLabel: threadsLabel, YLabel: "Execution Time (s)",
				Output: "non_adaptive_execution_time_vs_threads.png",
			},
			{
				X: "threads", Y: "mean_eval",
				Title:  "Non-Adaptive: Mean Function Evaluations vs Number of Threads",
				XLabel: threadsLabel, YLabel: "Mean Function Evaluations",
				Output: "non_adaptive_mean_eval_vs_threads.png",
			},
			{
				X: "threads", Y: "std_eval",
				Title:   "Non-Adaptive: Std Dev of Function Evaluations vs Number of Threads",
				XLabel:  threadsLabel, YLabel: "Standard Deviation of Function Evaluations",
				Output:  "non_adaptive_std_eval_vs_threads.png",
				AutoLog: true,
			},
		},
	}
}

// Adaptive returns the job that plots the adaptive trapezoidal
// benchmark in path, one line per tolerance.
func Adaptive(path string) *Job {
	return &Job{
		Name:   "adaptive",
		Inputs: []string{path},
		Load:   numfmt.Options{Header: true},
		Key:    "tolerance",
		Label:  "Tolerance=%v",
		Style:  benchStyle,
		Charts: []ChartSpec{
			{
				X: "threads", Y: "execution_time",
				Title:  "Adaptive: Execution Time vs Number of Threads",
				XLabel: threadsLabel, YLabel: "Execution Time (s)",
				Output: "adaptive_execution_time_vs_threads.png",
			},
			{
				X: "threads", Y: "mean_evaluations",
				Title:  "Adaptive: Mean Function Evaluations vs Number of Threads",
				XLabel: threadsLabel, YLabel: "Mean Function Evaluations",
				Output: "adaptive_mean_eval_vs_threads.png",
			},
			{
				X: "threads", Y: "stddev_evaluations",
				Title:   "Adaptive: Std Dev of Function Evaluations vs Number of Threads",
				XLabel:  threadsLabel, YLabel: "Standard Deviation of Function Evaluations",
				Output:  "adaptive_std_eval_vs_threads.png",
				AutoLog: true,
			},
			{
				X: "threads", Y: "mean_time", Err: "stddev_time",
				Title:  "Adaptive: Thread Execution Time vs Number of Threads",
				XLabel: threadsLabel, YLabel: "Thread Execution Time (s)",
				Output: "adaptive_thread_times.png",
			},
		},
	}
}
