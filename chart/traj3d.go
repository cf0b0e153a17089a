// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default viewing angles of a Trajectory3D, in degrees.
const (
	DefaultAzimuth   = -60
	DefaultElevation = 30
)

// Trajectory3D is a path through space drawn as an orthographic
// projection onto the page. The data's bounding box is scaled to a
// unit cube before projection, so each axis gets the same length.
type Trajectory3D struct {
	Style
	ZLabel string

	X, Y, Z []float64

	// View is the viewing direction. If nil, the path is seen from
	// DefaultAzimuth and DefaultElevation.
	View *Angle
}

// An Angle is a viewing direction in degrees.
type Angle struct {
	Azimuth, Elevation float64
}

func (t *Trajectory3D) angle() Angle {
	if t.View == nil {
		return Angle{DefaultAzimuth, DefaultElevation}
	}
	return *t.View
}

// A view projects points of the unit cube centered on the origin.
type view struct {
	ux, uy     float64 // screen right
	vx, vy, vz float64 // screen up
}

func newView(azim, elev float64) view {
	a, e := azim*math.Pi/180, elev*math.Pi/180
	return view{
		ux: -math.Sin(a), uy: math.Cos(a),
		vx: -math.Sin(e) * math.Cos(a), vy: -math.Sin(e) * math.Sin(a), vz: math.Cos(e),
	}
}

func (v view) project(x, y, z float64) plotter.XY {
	return plotter.XY{
		X: v.ux*x + v.uy*y,
		Y: v.vx*x + v.vy*y + v.vz*z,
	}
}

// axisRange is the bounds of one coordinate and its mapping onto
// [-0.5, 0.5].
type axisRange struct{ lo, hi float64 }

func boundsOf(xs []float64) axisRange {
	lo, hi := stats.Bounds(xs)
	return axisRange{lo, hi}
}

func (r axisRange) norm(x float64) float64 {
	if r.hi == r.lo {
		return 0
	}
	return (x-r.lo)/(r.hi-r.lo) - 0.5
}

// Plot builds the plot for t.
func (t *Trajectory3D) Plot() (*plot.Plot, error) {
	n := len(t.X)
	if len(t.Y) != n || len(t.Z) != n {
		return nil, fmt.Errorf("trajectory coordinates have different lengths %d, %d, %d", len(t.X), len(t.Y), len(t.Z))
	}

	a := t.angle()
	v := newView(a.Azimuth, a.Elevation)

	p := t.newPlot()
	p.HideAxes()
	if n == 0 {
		return p, nil
	}

	rx, ry, rz := boundsOf(t.X), boundsOf(t.Y), boundsOf(t.Z)
	at := func(x, y, z float64) plotter.XY {
		return v.project(rx.norm(x), ry.norm(y), rz.norm(z))
	}

	// Bounding box axes. Each runs along one coordinate from the
	// corner nearest the viewer's lower left.
	axisStyle := draw.LineStyle{Color: color.Gray{0x60}, Width: vg.Points(1)}
	type axis struct {
		from, to plotter.XY
		label    string
		lo, hi   float64
	}
	axes := []axis{
		{at(rx.lo, ry.lo, rz.lo), at(rx.hi, ry.lo, rz.lo), t.XLabel, rx.lo, rx.hi},
		{at(rx.hi, ry.lo, rz.lo), at(rx.hi, ry.hi, rz.lo), t.YLabel, ry.lo, ry.hi},
		{at(rx.lo, ry.lo, rz.lo), at(rx.lo, ry.lo, rz.hi), t.ZLabel, rz.lo, rz.hi},
	}
	var lpts plotter.XYs
	var ltext []string
	for _, a := range axes {
		l, err := plotter.NewLine(plotter.XYs{a.from, a.to})
		if err != nil {
			return nil, err
		}
		l.LineStyle = axisStyle
		p.Add(l)
		mid := plotter.XY{X: (a.from.X + a.to.X) / 2, Y: (a.from.Y + a.to.Y) / 2}
		lpts = append(lpts, a.from, a.to, mid)
		ltext = append(ltext, formatTick(a.lo), formatTick(a.hi), a.label)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: lpts, Labels: ltext})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	path := make(plotter.XYs, n)
	for i := range path {
		path[i] = at(t.X[i], t.Y[i], t.Z[i])
	}
	line, pts, err := plotter.NewLinePoints(path)
	if err != nil {
		return nil, err
	}
	line.Color = plotutil.Color(0)
	line.Width = vg.Points(1.5)
	pts.Color = plotutil.Color(0)
	pts.Shape = draw.CircleGlyph{}
	pts.Radius = vg.Points(3)
	p.Add(line, pts)
	return p, nil
}

// Render draws t to path.
func (t *Trajectory3D) Render(path string) error {
	p, err := t.Plot()
	if err != nil {
		return err
	}
	return t.Save(p, path)
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
