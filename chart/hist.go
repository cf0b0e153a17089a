// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"image/color"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultBins is the number of histogram bins used when none is given.
const DefaultBins = 50

// Histogram is a frequency chart of a set of values.
type Histogram struct {
	Style
	Values []float64

	// Bins is the number of equal-width bins spanning the range of
	// Values. Zero selects DefaultBins.
	Bins int
}

// Plot builds the plot for h. An empty Values gives an empty chart.
func (h *Histogram) Plot() (*plot.Plot, error) {
	n := h.Bins
	if n == 0 {
		n = DefaultBins
	}
	bins, err := Bin(h.Values, n)
	if err != nil {
		return nil, err
	}

	p := h.newPlot()
	if p.Y.Label.Text == "" {
		p.Y.Label.Text = "Frequency"
	}
	if len(bins) == 0 {
		return p, nil
	}
	hist := &plotter.Histogram{
		Bins:      bins,
		Width:     bins[0].Max - bins[0].Min,
		FillColor: color.NRGBA{0x1f, 0x77, 0xb4, 0xbf},
		LineStyle: draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)},
	}
	p.Add(hist)
	return p, nil
}

// Render draws h to path.
func (h *Histogram) Render(path string) error {
	p, err := h.Plot()
	if err != nil {
		return err
	}
	return h.Save(p, path)
}

// Bin counts values into n equal-width bins covering [min, max] of
// the values. Every bin is half-open except the last, which also
// holds the maximum. Bin returns no bins for no values.
func Bin(values []float64, n int) ([]plotter.HistogramBin, error) {
	if n <= 0 {
		return nil, errors.New("histogram needs at least one bin")
	}
	if len(values) == 0 {
		return nil, nil
	}

	lo, hi := stats.Bounds(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(n)

	// Breaks are the left edges. Anything at or past the last edge
	// lands in the last bin.
	breaks := make([]float64, n)
	bins := make([]plotter.HistogramBin, n)
	edge := make(map[float64]int, n)
	for i := range breaks {
		breaks[i] = lo + float64(i)*width
		edge[breaks[i]] = i
	}
	for i := range bins {
		bins[i].Min = breaks[i]
		if i+1 < n {
			bins[i].Max = breaks[i+1]
		} else {
			bins[i].Max = hi
		}
	}

	weights := make([]float64, len(values))
	for i := range weights {
		weights[i] = 1
	}
	t := new(table.Builder).Add("x", values).Add("w", weights).Done()
	g := ggstat.Bin{X: "x", W: "w", Breaks: breaks}.F(t)
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		xs := t.MustColumn("x").([]float64)
		ws := t.MustColumn("w").([]float64)
		for i, x := range xs {
			bins[edge[x]].Weight += ws[i]
		}
	}
	return bins, nil
}
