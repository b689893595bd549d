// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/plotstyle/colors"
	"cogentcore.org/plotstyle/figure"
	"github.com/jinzhu/copier"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrLengthMismatch is returned when x and y have different lengths.
	ErrLengthMismatch = errors.New("plots: x and y lengths differ")

	// ErrNoData is returned when there are no points to plot.
	ErrNoData = errors.New("plots: no data points")
)

// ScatterStyle has the styling parameters of a [Scatter] plot.
// Colors are specs understood by [colors.FromString].
type ScatterStyle struct {

	// Marker is the marker code ("o", "s", "^", ...); empty for none.
	Marker string `toml:"marker" yaml:"marker"`

	// MarkerSize is the marker diameter in points.
	MarkerSize float64 `toml:"markersize" yaml:"markersize"`

	// MarkerEdgeColor is the color of the marker outline.
	MarkerEdgeColor string `toml:"markeredgecolor" yaml:"markeredgecolor"`

	// MarkerEdgeWidth is the width of the marker outline in points.
	MarkerEdgeWidth float64 `toml:"markeredgewidth" yaml:"markeredgewidth"`

	// MarkerFaceColor is the fill color of the markers.
	MarkerFaceColor string `toml:"markerfacecolor" yaml:"markerfacecolor"`

	// FillStyle is how marker faces are filled: full, none, left, right, bottom, top.
	FillStyle string `toml:"fillstyle" yaml:"fillstyle"`

	// LineStyle is the style of a line connecting the points
	// ("-", "--", ":", "-."); empty for no line.
	LineStyle string `toml:"linestyle" yaml:"linestyle"`

	// LineWidth is the width of the connecting line in points.
	LineWidth float64 `toml:"linewidth" yaml:"linewidth"`

	// Color is the color of the connecting line; the face color if empty.
	Color string `toml:"color" yaml:"color"`

	// Alpha is the opacity applied to markers and line.
	Alpha float64 `toml:"alpha" yaml:"alpha"`

	XLabel string `toml:"xlabel" yaml:"xlabel"`
	YLabel string `toml:"ylabel" yaml:"ylabel"`

	// Label is the legend entry of the series.
	Label string `toml:"label" yaml:"label"`

	Title string `toml:"title" yaml:"title"`

	// XLim and YLim fix the axis ranges when set.
	XLim *figure.Range `toml:"xlim,omitempty" yaml:"xlim,omitempty"`
	YLim *figure.Range `toml:"ylim,omitempty" yaml:"ylim,omitempty"`

	TitleFontSize float64 `toml:"titlefontsize" yaml:"titlefontsize"`
	LabelFontSize float64 `toml:"labelfontsize" yaml:"labelfontsize"`
	XTickFontSize float64 `toml:"xtickfontsize" yaml:"xtickfontsize"`
	YTickFontSize float64 `toml:"ytickfontsize" yaml:"ytickfontsize"`

	// FigSize is the figure size in inches.
	FigSize figure.Size `toml:"figsize" yaml:"figsize"`

	// Legend shows a legend when Label is set.
	Legend bool `toml:"legend" yaml:"legend"`

	// Grid draws a dotted grey grid.
	Grid bool `toml:"grid" yaml:"grid"`
}

// Defaults sets black, slightly transparent circle markers without a
// connecting line, on a 7x5 inch figure with a legend and a grid.
func (st *ScatterStyle) Defaults() {
	st.Marker = "o"
	st.MarkerSize = 6
	st.MarkerEdgeColor = "black"
	st.MarkerEdgeWidth = 1
	st.MarkerFaceColor = "black"
	st.FillStyle = "full"
	st.LineStyle = ""
	st.LineWidth = 1.5
	st.Alpha = 0.7
	st.TitleFontSize = 14
	st.LabelFontSize = 13
	st.XTickFontSize = 12
	st.YTickFontSize = 12
	st.FigSize = figure.Size{Width: 7, Height: 5}
	st.Legend = true
	st.Grid = true
}

// NewScatterStyle returns a new ScatterStyle with defaults applied.
func NewScatterStyle() *ScatterStyle {
	st := &ScatterStyle{}
	st.Defaults()
	return st
}

// Clone returns a deep copy of the style.
func (st *ScatterStyle) Clone() *ScatterStyle {
	cp := &ScatterStyle{}
	if err := copier.CopyWithOption(cp, st, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("plots: cloning scatter style", "err", err)
		*cp = *st
	}
	return cp
}

// Glyph returns the marker glyph style described by the style.
func (st *ScatterStyle) Glyph() (draw.GlyphStyle, error) {
	mk, err := ParseMarker(st.Marker)
	if err != nil {
		return draw.GlyphStyle{}, err
	}
	fs, err := ParseFillStyle(st.FillStyle)
	if err != nil {
		return draw.GlyphStyle{}, err
	}
	face, err := colors.Parse(st.MarkerFaceColor, colors.Black, st.Alpha)
	if err != nil {
		return draw.GlyphStyle{}, fmt.Errorf("markerfacecolor: %w", err)
	}
	edge, err := colors.Parse(st.MarkerEdgeColor, colors.Black, st.Alpha)
	if err != nil {
		return draw.GlyphStyle{}, fmt.Errorf("markeredgecolor: %w", err)
	}
	g := Glyph{
		Marker:    mk,
		Face:      face,
		Edge:      edge,
		EdgeWidth: vg.Points(st.MarkerEdgeWidth),
		Fill:      fs,
	}
	return draw.GlyphStyle{Color: face, Radius: vg.Points(st.MarkerSize / 2), Shape: g}, nil
}

// Scatter draws x/y series as styled markers onto a figure.
// Each call to [Scatter.Plot] adds one series and (re)applies the
// title, axis labels, fonts, limits, legend and grid of the style.
type Scatter struct {
	Style ScatterStyle

	// Figure is the figure drawn on.
	Figure *figure.Figure

	// grid is added to the figure on the first Plot with Grid set.
	grid *plotter.Grid
}

// NewScatter returns a Scatter drawing on a new figure of the style's size.
func NewScatter(style *ScatterStyle) *Scatter {
	if style == nil {
		style = NewScatterStyle()
	}
	sc := &Scatter{Style: *style.Clone()}
	sc.Figure = figure.New(sc.Style.FigSize.Width, sc.Style.FigSize.Height)
	return sc
}

// NewScatterOn returns a Scatter drawing onto an existing plot, which
// is wrapped in a figure of the style's size.
func NewScatterOn(plt *plot.Plot, style *ScatterStyle) *Scatter {
	sc := NewScatter(style)
	sc.Figure = figure.FromPlot(plt, sc.Style.FigSize.Width, sc.Style.FigSize.Height)
	return sc
}

// Plot adds the series to the figure and applies the style.
func (sc *Scatter) Plot(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return ErrNoData
	}
	st := &sc.Style
	xys := make(plotter.XYs, len(x))
	for i := range xys {
		xys[i].X, xys[i].Y = x[i], y[i]
	}
	gs, err := st.Glyph()
	if err != nil {
		return err
	}
	plt := sc.Figure.Plot
	if st.Grid && sc.grid == nil {
		grid, err := gridStyle()
		if err != nil {
			return err
		}
		plt.Add(grid)
		sc.grid = grid
	}

	var thumbs []plot.Thumbnailer
	if !figure.NoLine(st.LineStyle) {
		lc := gs.Color
		if st.Color != "" {
			c, err := colors.Parse(st.Color, nil, st.Alpha)
			if err != nil {
				return fmt.Errorf("color: %w", err)
			}
			lc = c
		}
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		ln.LineStyle, err = figure.LineStyle(st.LineStyle, lc, st.LineWidth)
		if err != nil {
			return err
		}
		plt.Add(ln)
		thumbs = append(thumbs, ln)
	}
	if g, _ := gs.Shape.(Glyph); g.Marker != NoMarker {
		pts, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		pts.GlyphStyle = gs
		plt.Add(pts)
		thumbs = append(thumbs, pts)
	}

	plt.Title.Text = st.Title
	figure.SetFont(&plt.Title.TextStyle, st.TitleFontSize, true)
	plt.X.Label.Text = st.XLabel
	plt.Y.Label.Text = st.YLabel
	figure.SetFont(&plt.X.Label.TextStyle, st.LabelFontSize, false)
	figure.SetFont(&plt.Y.Label.TextStyle, st.LabelFontSize, false)
	figure.SetFont(&plt.X.Tick.Label, st.XTickFontSize, false)
	figure.SetFont(&plt.Y.Tick.Label, st.YTickFontSize, false)

	st.XLim.Apply(&plt.X)
	st.YLim.Apply(&plt.Y)

	if st.Legend && st.Label != "" && len(thumbs) > 0 {
		plt.Legend.Add(st.Label, thumbs...)
	}
	return nil
}

// gridStyle returns the grid drawn by [Scatter]: grey, dotted, 1.5 points
// wide at half opacity.
func gridStyle() (*plotter.Grid, error) {
	ls, err := figure.LineStyle(":", colors.WithAlpha(colors.Grey, 0.5), 1.5)
	if err != nil {
		return nil, err
	}
	grid := plotter.NewGrid()
	grid.Vertical = ls
	grid.Horizontal = ls
	return grid, nil
}

// Save saves the figure as name inside dir; see [figure.Figure.Save].
func (sc *Scatter) Save(name, dir string, opts figure.SaveOptions) (string, error) {
	return sc.Figure.Save(name, dir, opts)
}
