// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// A Summary describes the distribution of a column.
type Summary struct {
	N        int
	Mean     float64
	StdDev   float64 // sample standard deviation
	Min, Max float64
}

// Summarize computes a Summary of xs. The zero Summary describes an
// empty column.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	min, max := stats.Bounds(xs)
	return Summary{
		N:      len(xs),
		Mean:   stats.Mean(xs),
		StdDev: stats.StdDev(xs),
		Min:    min,
		Max:    max,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.4g sd=%.4g min=%.4g max=%.4g", s.N, s.Mean, s.StdDev, s.Min, s.Max)
}
