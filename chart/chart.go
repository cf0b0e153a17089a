// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws the static charts produced by the plotting
// commands and writes each one to a single image file.
//
// A chart value describes one figure. Its Plot method builds a fresh
// gonum plot.Plot and Render draws that plot and saves it. A plot is
// never reused after it has been saved.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default figure geometry.
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
	DefaultDPI    = 100
)

// A Renderer draws a chart to the file at path. The format is chosen
// by the file extension.
type Renderer interface {
	Render(path string) error
}

var (
	_ Renderer = (*Lines)(nil)
	_ Renderer = (*Histogram)(nil)
	_ Renderer = (*Trajectory3D)(nil)
)

// Style holds the settings shared by every kind of chart.
type Style struct {
	Title, XLabel, YLabel string

	// Width and Height are the figure size. Zero selects
	// DefaultWidth and DefaultHeight.
	Width, Height vg.Length

	// DPI is the resolution of raster output. Zero selects
	// DefaultDPI. It has no effect on vector formats.
	DPI int

	// Grid draws a background grid. DashedGrid makes it dashed and
	// lighter.
	Grid       bool
	DashedGrid bool
}

func (s *Style) size() (w, h vg.Length) {
	w, h = s.Width, s.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return w, h
}

func (s *Style) dpi() int {
	if s.DPI == 0 {
		return DefaultDPI
	}
	return s.DPI
}

// newPlot returns an empty plot with the title, labels and grid of s.
func (s *Style) newPlot() *plot.Plot {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel

	if s.Grid || s.DashedGrid {
		grid := plotter.NewGrid()
		if s.DashedGrid {
			dashes := []vg.Length{vg.Points(4), vg.Points(2)}
			c := color.NRGBA{0x80, 0x80, 0x80, 0xb3}
			grid.Vertical.Dashes, grid.Vertical.Color = dashes, c
			grid.Horizontal.Dashes, grid.Horizontal.Color = dashes, c
		}
		p.Add(grid)
	}
	return p
}

// Save draws p at the size of s and writes it to path.
//
// PNG, JPEG and TIFF files are rasterized at the resolution of s on a
// white background. Any other extension is handed to plot.Save, which
// knows the vector formats.
func (s *Style) Save(p *plot.Plot, path string) error {
	w, h := s.size()

	var mk func(*vgimg.Canvas) vg.CanvasWriterTo
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mk = func(c *vgimg.Canvas) vg.CanvasWriterTo { return vgimg.PngCanvas{Canvas: c} }
	case ".jpg", ".jpeg":
		mk = func(c *vgimg.Canvas) vg.CanvasWriterTo { return vgimg.JpegCanvas{Canvas: c} }
	case ".tif", ".tiff":
		mk = func(c *vgimg.Canvas) vg.CanvasWriterTo { return vgimg.TiffCanvas{Canvas: c} }
	case "":
		return fmt.Errorf("%s: no file extension to choose an image format", path)
	default:
		return p.Save(w, h, path)
	}

	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(s.dpi()), vgimg.UseBackgroundColor(color.White))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := mk(c).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
