// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"

	"cogentcore.org/plotstyle/figure"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultLabelOffset is the offset of a [LabeledLine] label from the
// last point of the line, up and to the right.
var DefaultLabelOffset = vg.Point{X: vg.Points(2), Y: vg.Points(2)}

// DefaultLabelFontSize is the default size in points of [LabeledLine] labels.
const DefaultLabelFontSize = 10

// LabeledLine implements the Plotter interface, drawing a line
// with its label written inline just past the last point of the line.
// The label follows the data: after [LabeledLine.SetData] it is drawn
// at the new last point.
type LabeledLine struct {
	*plotter.Line

	// Label is the text drawn at the end of the line.
	Label string

	// TextStyle is the style of the label text.
	TextStyle text.Style

	// Offset is added to the position of the last point, in canvas
	// units, to get the position of the label's lower left corner.
	Offset vg.Point
}

// NewLabeledLine returns a LabeledLine for the given points with the
// default line style and a black label at [DefaultLabelOffset].
func NewLabeledLine(xys plotter.XYer, label string) (*LabeledLine, error) {
	ln, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	return &LabeledLine{
		Line:      ln,
		Label:     label,
		TextStyle: figure.TextStyle(DefaultLabelFontSize, color.Black),
		Offset:    DefaultLabelOffset,
	}, nil
}

// SetData replaces the points of the line, and so moves the label.
func (ll *LabeledLine) SetData(xys plotter.XYer) error {
	data, err := plotter.CopyXYs(xys)
	if err != nil {
		return err
	}
	ll.XYs = data
	return nil
}

// SetLabelColor sets the color of the label text.
func (ll *LabeledLine) SetLabelColor(c color.Color) *LabeledLine {
	ll.TextStyle.Color = c
	return ll
}

// LabelAnchor returns the data coordinates the label is attached to:
// the last point of the line. ok is false for an empty line.
func (ll *LabeledLine) LabelAnchor() (x, y float64, ok bool) {
	n := len(ll.XYs)
	if n == 0 {
		return 0, 0, false
	}
	return ll.XYs[n-1].X, ll.XYs[n-1].Y, true
}

// Plot draws the line and then its label, implementing the plot.Plotter interface.
func (ll *LabeledLine) Plot(c draw.Canvas, plt *plot.Plot) {
	x, y, ok := ll.LabelAnchor()
	if !ok {
		return
	}
	ll.Line.Plot(c, plt)
	if ll.Label == "" {
		return
	}
	trX, trY := plt.Transforms(&c)
	pt := vg.Point{X: trX(x), Y: trY(y)}.Add(ll.Offset)
	c.FillText(ll.TextStyle, pt, ll.Label)
}

// GlyphBoxes returns a box around the label, so that the plot
// leaves room for it, implementing the plot.GlyphBoxer interface.
func (ll *LabeledLine) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	x, y, ok := ll.LabelAnchor()
	if !ok || ll.Label == "" {
		return nil
	}
	r := ll.TextStyle.Rectangle(ll.Label)
	r.Min = r.Min.Add(ll.Offset)
	r.Max = r.Max.Add(ll.Offset)
	return []plot.GlyphBox{{X: plt.X.Norm(x), Y: plt.Y.Norm(y), Rectangle: r}}
}

var (
	_ plot.Plotter     = (*LabeledLine)(nil)
	_ plot.DataRanger  = (*LabeledLine)(nil)
	_ plot.GlyphBoxer  = (*LabeledLine)(nil)
	_ plot.Thumbnailer = (*LabeledLine)(nil)
)
