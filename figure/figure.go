// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure holds a gonum plot together with its physical size
// and provides the styling primitives shared by the plotters in
// package plots: fonts, text styles, line dash styles, axis ranges,
// tick formatting, and saving to image and vector formats.
package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Default figure size in inches and raster resolution in dots per inch.
const (
	DefaultWidth  = 6.4
	DefaultHeight = 4.8
	DefaultDPI    = 100
)

// Figure is a drawing surface: a [plot.Plot] with its size.
type Figure struct {
	*plot.Plot

	// Width and Height are the physical size of the figure.
	Width, Height vg.Length

	// DPI is the resolution used for raster output.
	DPI int
}

// New returns a new Figure with a fresh plot of the given size in inches.
// Non-positive sizes are replaced by the defaults.
func New(width, height float64) *Figure {
	return FromPlot(plot.New(), width, height)
}

// FromPlot wraps an existing plot in a Figure of the given size in inches.
func FromPlot(p *plot.Plot, width, height float64) *Figure {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Figure{
		Plot:   p,
		Width:  vg.Length(width) * vg.Inch,
		Height: vg.Length(height) * vg.Inch,
		DPI:    DefaultDPI,
	}
}

// Size is a figure size in inches.
type Size struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Range is a fixed axis range.
type Range struct {
	Min float64 `toml:"min" yaml:"min"`
	Max float64 `toml:"max" yaml:"max"`
}

// Apply fixes the axis to the range.
func (r *Range) Apply(ax *plot.Axis) {
	if r == nil {
		return
	}
	ax.Min, ax.Max = r.Min, r.Max
}
