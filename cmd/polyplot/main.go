// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Polyplot plots a polynomial and its derivatives.
//
// Usage:
//
//	polyplot [flags] [file...]
//
// Each input starts with a header line followed by rows of
// "x P(x) P'(x) ..." values. Up to six curves are drawn per file,
// along with dotted lines at the polynomial's zeros. By default
// polyplot reads polynomial_evaluation1.txt, whose polynomial has
// zeros at -0.5, 0 and 0.5, and polynomial_evaluation2.txt, whose
// polynomial has zeros at -1, -0.5, 0, 0.5 and 1. The -zeros flag
// replaces the zeros for every input.
//
// The chart for polynomial_evaluationN.txt is written to
// polynomial_plotN.pdf; any other name.txt gives name_plot.pdf.
package main

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/numcourse/numplot/chart"
	"github.com/numcourse/numplot/internal/cli"
	"github.com/numcourse/numplot/numfmt"
	"github.com/numcourse/numplot/plotjob"
)

var (
	curveLabels = []string{"P(x)", "P'(x)", "P''(x)", "P'''(x)", "P''''(x)", "P'''''(x)"}
	curveColors = []color.Color{
		color.RGBA{0x00, 0x00, 0xff, 0xff}, // blue
		color.RGBA{0xff, 0x00, 0x00, 0xff}, // red
		color.RGBA{0x00, 0x80, 0x00, 0xff}, // green
		color.RGBA{0x80, 0x00, 0x80, 0xff}, // purple
		color.RGBA{0xff, 0xa5, 0x00, 0xff}, // orange
		color.RGBA{0xa5, 0x2a, 0x2a, 0xff}, // brown
	}
)

const inputPrefix = "polynomial_evaluation"

func main() {
	cli.Main("polyplot", run)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := cli.NewFlags("polyplot", "[file...]", stdout)
	zerosFlag := flags.String("zeros", "", "mark zeros at the comma-separated `values`")
	ext := flags.String("ext", ".pdf", "write charts with file `extension`")
	dpi := flags.Int("dpi", 300, "resolution of raster charts in `dots` per inch")
	dir := flags.String("dir", ".", "write charts into `directory`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	var zeros []float64
	if *zerosFlag != "" {
		var err error
		if zeros, err = parseZeros(*zerosFlag); err != nil {
			fmt.Fprintf(flags.Output(), "polyplot: bad -zeros: %v\n", err)
			return flags.UsageError()
		}
	}
	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{inputPrefix + "1.txt", inputPrefix + "2.txt"}
	}
	logger := flags.Logger(stdout)

	var firstErr error
	for _, input := range inputs {
		f, err := numfmt.Load(input, numfmt.Options{Header: true}, plotjob.Warner(logger))
		if err != nil {
			return err
		}
		z := zeros
		if z == nil {
			z = defaultZeros(input)
		}
		c, err := polyChart(f, z, *dpi)
		if err != nil {
			logger.WithField("file", input).Warn(err)
			continue
		}
		out := filepath.Join(*dir, outputName(input, *ext))
		if err := c.Render(out); err != nil {
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

// polyChart draws the curves in f against its first column.
func polyChart(f *numfmt.Frame, zeros []float64, dpi int) (*chart.Lines, error) {
	cols := f.Columns()
	if len(cols) < 2 {
		return nil, fmt.Errorf("%s: need an x column and at least one curve, found %d columns", f.Name, len(cols))
	}
	xs := f.Column(cols[0])

	c := &chart.Lines{
		Style: chart.Style{
			Title:      "Polynomial and its Derivatives " + degreeSuffix(len(zeros)),
			XLabel:     "x",
			YLabel:     "y",
			Width:      15 * vg.Inch,
			Height:     10 * vg.Inch,
			DPI:        dpi,
			DashedGrid: true,
		},
		VLines: zeros,
		HLines: []float64{0},
		Note:   "Zeros at x = " + joinFloats(zeros),
	}
	for i, col := range cols[1:] {
		if i == len(curveLabels) {
			break
		}
		ys := f.Column(col)
		pts := make(plotter.XYs, len(xs))
		for j := range pts {
			pts[j] = plotter.XY{X: xs[j], Y: ys[j]}
		}
		c.Lines = append(c.Lines, chart.Line{
			Label:  curveLabels[i],
			Points: pts,
			Color:  curveColors[i],
			Marker: chart.NoMarker,
		})
	}
	return c, nil
}

func defaultZeros(input string) []float64 {
	if strings.Contains(filepath.Base(input), "1.txt") {
		return []float64{-0.5, 0, 0.5}
	}
	return []float64{-1, -0.5, 0, 0.5, 1}
}

// degreeSuffix names the degree of a polynomial with n simple zeros.
func degreeSuffix(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("(%s degree polynomial)", ordinal(n))
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	if n%100 >= 11 && n%100 <= 13 {
		suffix = "th"
	}
	return strconv.Itoa(n) + suffix
}

func outputName(input, ext string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if strings.HasPrefix(base, inputPrefix) {
		return "polynomial_plot" + strings.TrimPrefix(base, inputPrefix) + ext
	}
	return base + "_plot" + ext
}

func parseZeros(s string) ([]float64, error) {
	var zs []float64
	for _, f := range strings.Split(s, ",") {
		z, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		zs = append(zs, z)
	}
	return zs, nil
}

func joinFloats(xs []float64) string {
	strs := make([]string, len(xs))
	for i, x := range xs {
		strs[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(strs, ", ")
}
