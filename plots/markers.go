// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"cogentcore.org/plotstyle/colors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrUnknownMarker is returned for a marker code that is not recognized.
	ErrUnknownMarker = errors.New("plots: unknown marker")

	// ErrUnknownFillStyle is returned for a fill style that is not recognized.
	ErrUnknownFillStyle = errors.New("plots: unknown fill style")
)

// Markers are the marker shapes drawn at data points.
type Markers int32

const (
	// NoMarker draws nothing.
	NoMarker Markers = iota

	// Point is a small filled circle.
	Point

	// Pixel is a single dot.
	Pixel

	// Circle is a filled circle.
	Circle

	// Square is a filled square.
	Square

	// TriangleUp is a filled triangle pointing up.
	TriangleUp

	// TriangleDown is a filled triangle pointing down.
	TriangleDown

	// TriangleLeft is a filled triangle pointing left.
	TriangleLeft

	// TriangleRight is a filled triangle pointing right.
	TriangleRight

	// Diamond is a square rotated by 45 degrees.
	Diamond

	// ThinDiamond is a diamond squeezed horizontally.
	ThinDiamond

	// Pentagon is a filled pentagon.
	Pentagon

	// Hexagon is a filled hexagon with a vertex on top.
	Hexagon

	// Hexagon2 is a filled hexagon with a flat top.
	Hexagon2

	// Octagon is a filled octagon.
	Octagon

	// Star is a filled five pointed star.
	Star

	// Plus is a plus sign.
	Plus

	// Cross is a big X.
	Cross

	// VLine is a vertical tick.
	VLine

	// HLine is a horizontal tick.
	HLine
)

// markerCodes maps the single character codes to markers.
var markerCodes = map[string]Markers{
	"":     NoMarker,
	"none": NoMarker,
	".":    Point,
	",":    Pixel,
	"o":    Circle,
	"s":    Square,
	"^":    TriangleUp,
	"v":    TriangleDown,
	"<":    TriangleLeft,
	">":    TriangleRight,
	"D":    Diamond,
	"d":    ThinDiamond,
	"p":    Pentagon,
	"h":    Hexagon,
	"H":    Hexagon2,
	"8":    Octagon,
	"*":    Star,
	"+":    Plus,
	"x":    Cross,
	"|":    VLine,
	"_":    HLine,
}

var markerNames = []string{
	"none", "point", "pixel", "circle", "square", "triangle_up", "triangle_down",
	"triangle_left", "triangle_right", "diamond", "thin_diamond", "pentagon",
	"hexagon", "hexagon2", "octagon", "star", "plus", "x", "vline", "hline",
}

func (m Markers) String() string {
	if m < 0 || int(m) >= len(markerNames) {
		return fmt.Sprintf("Markers(%d)", m)
	}
	return markerNames[m]
}

// Filled reports whether the marker has an interior that the face color fills.
func (m Markers) Filled() bool {
	switch m {
	case NoMarker, Pixel, Plus, Cross, VLine, HLine:
		return false
	}
	return true
}

// ParseMarker returns the marker for a single character code ("o", "s",
// "^", ...) or a long name ("circle", "triangle_up", ...).
func ParseMarker(code string) (Markers, error) {
	if m, ok := markerCodes[code]; ok {
		return m, nil
	}
	lc := strings.ToLower(strings.TrimSpace(code))
	if m, ok := markerCodes[lc]; ok {
		return m, nil
	}
	for i, nm := range markerNames {
		if nm == lc {
			return Markers(i), nil
		}
	}
	if sug := colors.ClosestName(lc, markerNames); sug != "" {
		return NoMarker, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownMarker, code, sug)
	}
	return NoMarker, fmt.Errorf("%w: %q", ErrUnknownMarker, code)
}

// FillStyles are the ways a marker face is filled.
type FillStyles int32

const (
	// FillFull fills the whole face.
	FillFull FillStyles = iota

	// FillNone leaves the face empty, drawing only the edge.
	FillNone

	// FillLeft fills the left half.
	FillLeft

	// FillRight fills the right half.
	FillRight

	// FillBottom fills the bottom half.
	FillBottom

	// FillTop fills the top half.
	FillTop
)

var fillNames = []string{"full", "none", "left", "right", "bottom", "top"}

func (fs FillStyles) String() string {
	if fs < 0 || int(fs) >= len(fillNames) {
		return fmt.Sprintf("FillStyles(%d)", fs)
	}
	return fillNames[fs]
}

// ParseFillStyle returns the fill style with the given name.
func ParseFillStyle(name string) (FillStyles, error) {
	lc := strings.ToLower(strings.TrimSpace(name))
	if lc == "" {
		return FillFull, nil
	}
	for i, nm := range fillNames {
		if nm == lc {
			return FillStyles(i), nil
		}
	}
	return FillFull, fmt.Errorf("%w: %q", ErrUnknownFillStyle, name)
}

// Glyph is a [draw.GlyphDrawer] for the markers, with separate face
// and edge colors. The color of the [draw.GlyphStyle] passed to
// DrawGlyph is ignored; its radius sets the marker size.
type Glyph struct {
	Marker Markers

	// Face is the fill color of filled markers.
	Face color.Color

	// Edge is the outline color, and the stroke color of unfilled markers.
	Edge color.Color

	// EdgeWidth is the outline width.
	EdgeWidth vg.Length

	// Fill is how the face is filled.
	Fill FillStyles
}

// DrawGlyph implements [draw.GlyphDrawer].
func (g Glyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	switch g.Marker {
	case NoMarker:
		return
	case Pixel:
		if g.Face == nil {
			return
		}
		c.SetColor(g.Face)
		c.Fill(polygon(pt, vg.Points(0.5), 4, math.Pi/4))
		return
	case Plus:
		g.strokeSegments(c, []vg.Point{{X: pt.X - r, Y: pt.Y}, {X: pt.X + r, Y: pt.Y}},
			[]vg.Point{{X: pt.X, Y: pt.Y - r}, {X: pt.X, Y: pt.Y + r}})
		return
	case Cross:
		d := r * 0.9
		g.strokeSegments(c, []vg.Point{{X: pt.X - d, Y: pt.Y - d}, {X: pt.X + d, Y: pt.Y + d}},
			[]vg.Point{{X: pt.X - d, Y: pt.Y + d}, {X: pt.X + d, Y: pt.Y - d}})
		return
	case VLine:
		g.strokeSegments(c, []vg.Point{{X: pt.X, Y: pt.Y - r}, {X: pt.X, Y: pt.Y + r}})
		return
	case HLine:
		g.strokeSegments(c, []vg.Point{{X: pt.X - r, Y: pt.Y}, {X: pt.X + r, Y: pt.Y}})
		return
	}

	pts := g.Marker.outline(pt, r)
	if g.Fill != FillNone && g.Face != nil {
		fill := pts
		if g.Fill != FillFull {
			fill = clipHalf(pts, pt, g.Fill)
		}
		if len(fill) > 2 {
			c.SetColor(g.Face)
			c.Fill(closedPath(fill))
		}
	}
	if g.EdgeWidth > 0 && g.Edge != nil {
		c.SetLineStyle(draw.LineStyle{Color: g.Edge, Width: g.EdgeWidth})
		c.Stroke(closedPath(pts))
	}
}

// strokeSegments draws the unfilled markers, which use the edge color.
func (g Glyph) strokeSegments(c *draw.Canvas, segs ...[]vg.Point) {
	col, w := g.Edge, g.EdgeWidth
	if col == nil {
		col = g.Face
	}
	if col == nil {
		return
	}
	if w <= 0 {
		w = vg.Points(1)
	}
	c.SetLineStyle(draw.LineStyle{Color: col, Width: w})
	for _, seg := range segs {
		var p vg.Path
		p.Move(seg[0])
		for _, q := range seg[1:] {
			p.Line(q)
		}
		c.Stroke(p)
	}
}

// outline returns the vertices of a filled marker of radius r at pt.
func (m Markers) outline(pt vg.Point, r vg.Length) []vg.Point {
	switch m {
	case Point:
		return vertices(pt, r/2, 32, 0)
	case Circle:
		return vertices(pt, r, 48, 0)
	case Square:
		return vertices(pt, r*math.Sqrt2*0.8, 4, math.Pi/4)
	case TriangleUp:
		return vertices(pt, r, 3, math.Pi/2)
	case TriangleDown:
		return vertices(pt, r, 3, -math.Pi/2)
	case TriangleLeft:
		return vertices(pt, r, 3, math.Pi)
	case TriangleRight:
		return vertices(pt, r, 3, 0)
	case Diamond:
		return vertices(pt, r, 4, 0)
	case ThinDiamond:
		vs := vertices(pt, r, 4, 0)
		for i := range vs {
			vs[i].X = pt.X + (vs[i].X-pt.X)*0.6
		}
		return vs
	case Pentagon:
		return vertices(pt, r, 5, math.Pi/2)
	case Hexagon:
		return vertices(pt, r, 6, math.Pi/2)
	case Hexagon2:
		return vertices(pt, r, 6, 0)
	case Octagon:
		return vertices(pt, r, 8, math.Pi/8)
	case Star:
		outer := vertices(pt, r, 5, math.Pi/2)
		inner := vertices(pt, r*0.382, 5, math.Pi/2+math.Pi/5)
		vs := make([]vg.Point, 0, 10)
		for i := range outer {
			vs = append(vs, outer[i], inner[i])
		}
		return vs
	}
	return nil
}

// vertices returns n points evenly spaced on a circle of radius r,
// starting at angle rot (radians, counter-clockwise from +x).
func vertices(pt vg.Point, r vg.Length, n int, rot float64) []vg.Point {
	vs := make([]vg.Point, n)
	for i := range vs {
		a := rot + 2*math.Pi*float64(i)/float64(n)
		vs[i] = vg.Point{X: pt.X + r*vg.Length(math.Cos(a)), Y: pt.Y + r*vg.Length(math.Sin(a))}
	}
	return vs
}

func polygon(pt vg.Point, r vg.Length, n int, rot float64) vg.Path {
	return closedPath(vertices(pt, r, n, rot))
}

func closedPath(vs []vg.Point) vg.Path {
	var p vg.Path
	if len(vs) == 0 {
		return p
	}
	p.Move(vs[0])
	for _, v := range vs[1:] {
		p.Line(v)
	}
	p.Close()
	return p
}

// clipHalf clips the polygon to the half-plane through the center pt
// selected by the fill style (Sutherland-Hodgman against one edge).
func clipHalf(vs []vg.Point, pt vg.Point, fs FillStyles) []vg.Point {
	// inside returns the signed distance into the kept half-plane.
	inside := func(q vg.Point) vg.Length {
		switch fs {
		case FillLeft:
			return pt.X - q.X
		case FillRight:
			return q.X - pt.X
		case FillBottom:
			return pt.Y - q.Y
		default:
			return q.Y - pt.Y
		}
	}
	var out []vg.Point
	for i, cur := range vs {
		prev := vs[(i+len(vs)-1)%len(vs)]
		dc, dp := inside(cur), inside(prev)
		if (dc >= 0) != (dp >= 0) {
			t := dp / (dp - dc)
			out = append(out, vg.Point{X: prev.X + t*(cur.X-prev.X), Y: prev.Y + t*(cur.Y-prev.Y)})
		}
		if dc >= 0 {
			out = append(out, cur)
		}
	}
	return out
}
