// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrUnknownLineStyle is returned for a line style spec that is not recognized.
var ErrUnknownLineStyle = errors.New("figure: unknown line style")

// dash patterns in units of the line width.
var dashPatterns = map[string][]float64{
	"-":       nil,
	"solid":   nil,
	"--":      {3.7, 1.6},
	"dashed":  {3.7, 1.6},
	":":       {1, 1.65},
	"dotted":  {1, 1.65},
	"-.":      {6.4, 1.6, 1, 1.6},
	"dashdot": {6.4, 1.6, 1, 1.6},
}

// NoLine reports whether the line style spec turns the line off.
func NoLine(spec string) bool {
	switch strings.TrimSpace(spec) {
	case "", "none", "None":
		return true
	}
	return false
}

// Dashes returns the dash pattern for the line style spec ("-", "--",
// ":", "-." or their long names), scaled by the line width.
// A solid line has a nil pattern.
func Dashes(spec string, width vg.Length) ([]vg.Length, error) {
	pat, ok := dashPatterns[strings.TrimSpace(spec)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLineStyle, spec)
	}
	if pat == nil {
		return nil, nil
	}
	if width <= 0 {
		width = vg.Points(1)
	}
	ds := make([]vg.Length, len(pat))
	for i, d := range pat {
		ds[i] = vg.Length(d) * width
	}
	return ds, nil
}

// LineStyle returns a line style of the given spec, color and width in points.
// The returned style has zero width when the spec turns the line off.
func LineStyle(spec string, c color.Color, width float64) (draw.LineStyle, error) {
	if NoLine(spec) {
		return draw.LineStyle{}, nil
	}
	ls := plotter.DefaultLineStyle
	ls.Color = c
	ls.Width = vg.Points(width)
	ds, err := Dashes(spec, ls.Width)
	if err != nil {
		return draw.LineStyle{}, err
	}
	ls.Dashes = ds
	return ls, nil
}
