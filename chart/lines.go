// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Marker is the glyph drawn at each point of a line.
type Marker int

const (
	Circle Marker = iota
	Cross
	NoMarker
)

func (m Marker) glyph() draw.GlyphDrawer {
	switch m {
	case Cross:
		return draw.CrossGlyph{}
	case NoMarker:
		return nil
	}
	return draw.CircleGlyph{}
}

// A Line is one series of a Lines chart.
type Line struct {
	// Label is the legend entry. Lines with no label are left out
	// of the legend.
	Label string

	Points plotter.XYs

	// YErr, if not nil, gives the half-height of a vertical error
	// bar at each point.
	YErr []float64

	// Color defaults to the i'th plotutil color for the i'th line.
	Color  color.Color
	Marker Marker
}

// Lines is a chart of one or more lines sharing a pair of axes.
type Lines struct {
	Style
	Lines []Line

	// AutoLog puts the y axis on a log scale when UseLogScale
	// reports true for the lines. It cannot be combined with error
	// bars.
	AutoLog bool

	// VLines and HLines are reference lines drawn at the given x and
	// y values. They span the plotted area without widening it.
	VLines, HLines []float64

	// Note is text printed in the upper left corner.
	Note string
}

var errLogErrorBars = errors.New("error bars cannot be drawn on an automatic log scale")

// UseLogScale reports whether a y axis holding lines should be
// logarithmic: true when no y value is negative and at least one is
// positive.
func UseLogScale(lines ...plotter.XYs) bool {
	pos := false
	for _, pts := range lines {
		for _, pt := range pts {
			if pt.Y < 0 {
				return false
			}
			if pt.Y > 0 {
				pos = true
			}
		}
	}
	return pos
}

// LogY reports whether c will be drawn with a log y axis.
func (c *Lines) LogY() bool {
	if !c.AutoLog {
		return false
	}
	pts := make([]plotter.XYs, len(c.Lines))
	for i, l := range c.Lines {
		pts[i] = l.Points
	}
	return UseLogScale(pts...)
}

// Plot builds the plot for c.
func (c *Lines) Plot() (*plot.Plot, error) {
	for _, l := range c.Lines {
		if l.YErr == nil {
			continue
		}
		if c.AutoLog {
			return nil, errLogErrorBars
		}
		if len(l.YErr) != len(l.Points) {
			return nil, fmt.Errorf("line %q has %d points but %d error values", l.Label, len(l.Points), len(l.YErr))
		}
	}

	logY := c.LogY()
	p := c.newPlot()
	if logY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	for i, l := range c.Lines {
		pts := l.Points
		if logY {
			// A log axis cannot place y <= 0.
			pts = positive(pts)
		}
		clr := l.Color
		if clr == nil {
			clr = plotutil.Color(i)
		}

		// The styles are built even when every point is masked so the
		// series keeps its legend entry.
		line := &plotter.Line{LineStyle: plotter.DefaultLineStyle}
		line.Color = clr
		line.Width = vg.Points(1.5)
		thumbs := []plot.Thumbnailer{line}
		var sc *plotter.Scatter
		if g := l.Marker.glyph(); g != nil {
			sc = &plotter.Scatter{GlyphStyle: plotter.DefaultGlyphStyle}
			sc.GlyphStyle.Color = clr
			sc.GlyphStyle.Shape = g
			sc.GlyphStyle.Radius = vg.Points(3)
			thumbs = append(thumbs, sc)
		}

		if len(pts) > 0 {
			xys, err := plotter.CopyXYs(pts)
			if err != nil {
				return nil, err
			}
			line.XYs = xys
			p.Add(line)
			if sc != nil {
				sc.XYs = xys
				p.Add(sc)
			}
			if l.YErr != nil {
				eb, err := plotter.NewYErrorBars(errorPoints(pts, l.YErr))
				if err != nil {
					return nil, err
				}
				eb.Color = clr
				p.Add(eb)
			}
		}

		if l.Label != "" {
			p.Legend.Add(l.Label, thumbs...)
		}
	}
	p.Legend.Top = true

	if logY {
		clampLog(&p.Y)
	}
	if len(c.VLines) > 0 || len(c.HLines) > 0 {
		p.Add(&refLines{xs: c.VLines, ys: c.HLines, logY: logY})
	}
	if c.Note != "" {
		p.Add(note(c.Note))
	}
	return p, nil
}

// Render draws c to path.
func (c *Lines) Render(path string) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	return c.Save(p, path)
}

func positive(pts plotter.XYs) plotter.XYs {
	out := make(plotter.XYs, 0, len(pts))
	for _, pt := range pts {
		if pt.Y > 0 {
			out = append(out, pt)
		}
	}
	return out
}

// clampLog keeps a log axis range strictly positive. A single
// plotted y value would otherwise be padded out to zero.
func clampLog(a *plot.Axis) {
	if a.Min == a.Max && a.Min > 0 {
		a.Min, a.Max = a.Min/10, a.Max*10
	}
}

type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

func errorPoints(pts plotter.XYs, errs []float64) errPoints {
	ye := make(plotter.YErrors, len(errs))
	for i, e := range errs {
		ye[i].Low, ye[i].High = e, e
	}
	return errPoints{pts, ye}
}

// refLines draws full-height and full-width reference lines. It has no
// data range, so it never changes the axes.
type refLines struct {
	xs, ys []float64
	logY   bool
}

func (r *refLines) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	vert := draw.LineStyle{
		Color:  color.Gray{0x80},
		Width:  vg.Points(1),
		Dashes: []vg.Length{vg.Points(1), vg.Points(2)},
	}
	for _, x := range r.xs {
		if x < plt.X.Min || x > plt.X.Max {
			continue
		}
		px := trX(x)
		c.StrokeLine2(vert, px, c.Min.Y, px, c.Max.Y)
	}
	horiz := draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	for _, y := range r.ys {
		if y < plt.Y.Min || y > plt.Y.Max || r.logY && y <= 0 {
			continue
		}
		py := trY(y)
		c.StrokeLine2(horiz, c.Min.X, py, c.Max.X, py)
	}
}

type note string

func (n note) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := plt.Legend.TextStyle
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YTop
	pad := vg.Points(6)
	c.FillText(sty, vg.Point{X: c.Min.X + pad, Y: c.Max.Y - pad}, string(n))
}
