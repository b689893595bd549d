// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"slices"
	"strings"

	"cogentcore.org/plotstyle/colors"
	"cogentcore.org/plotstyle/figure"
	"github.com/jinzhu/copier"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrNonPositive is returned when a log scale axis gets values <= 0.
	ErrNonPositive = errors.New("plots: non-positive value on log scale")

	// ErrNoFigure is returned when saving before anything was plotted.
	ErrNoFigure = errors.New("plots: nothing plotted yet")

	// ErrUnknownScale is returned for an axis scale that is not recognized.
	ErrUnknownScale = errors.New("plots: unknown axis scale")

	// ErrNotFinite is returned for NaN or infinite loss values or ticks.
	ErrNotFinite = errors.New("plots: value is not finite")
)

// Axis scale names.
const (
	ScaleLinear = "linear"
	ScaleLog    = "log"

	// ScalePlain is a linear scale with y ticks every 5 units from 0.
	ScalePlain = "plain"
)

// LossStyle has the styling parameters of a [Loss] plot.
type LossStyle struct {

	// XScale and YScale are the axis scales: linear (or empty), plain, or log.
	XScale string `toml:"xscale" yaml:"xscale"`
	YScale string `toml:"yscale" yaml:"yscale"`

	// FontSize is used for the title, axis labels, tick labels and curve labels.
	FontSize float64 `toml:"fontsize" yaml:"fontsize"`

	XLabel string `toml:"xlabel" yaml:"xlabel"`
	YLabel string `toml:"ylabel" yaml:"ylabel"`
	Title  string `toml:"title" yaml:"title"`

	// XTicks are explicit x tick values; by default every XTickSpace-th epoch.
	XTicks []float64 `toml:"xticks,omitempty" yaml:"xticks,omitempty"`

	// YTicks are explicit y tick values; by default they depend on YScale.
	YTicks []float64 `toml:"yticks,omitempty" yaml:"yticks,omitempty"`

	// XTickSpace is the stride, in epochs, between x ticks.
	XTickSpace int `toml:"xtickspace" yaml:"xtickspace"`

	// XTickFormat and YTickFormat are printf formats for tick labels,
	// or "sci" for %.0e.
	XTickFormat string `toml:"xtickformat" yaml:"xtickformat"`
	YTickFormat string `toml:"ytickformat" yaml:"ytickformat"`

	// LineWidth is the width of the loss curves in points.
	LineWidth float64 `toml:"linewidth" yaml:"linewidth"`

	// FigSize is the figure size in inches.
	FigSize figure.Size `toml:"figsize" yaml:"figsize"`
}

// Defaults sets a 14 point font, "# epoch" and "loss" axis labels,
// a tick on every epoch, and 2 point curves.
func (st *LossStyle) Defaults() {
	st.FontSize = 14
	st.XLabel = "# epoch"
	st.YLabel = "loss"
	st.XTickSpace = 1
	st.XTickFormat = "%d"
	st.LineWidth = 2
	st.FigSize = figure.Size{Width: figure.DefaultWidth, Height: figure.DefaultHeight}
}

// NewLossStyle returns a new LossStyle with defaults applied.
func NewLossStyle() *LossStyle {
	st := &LossStyle{}
	st.Defaults()
	return st
}

// Clone returns a deep copy of the style.
func (st *LossStyle) Clone() *LossStyle {
	cp := &LossStyle{}
	if err := copier.CopyWithOption(cp, st, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("plots: cloning loss style", "err", err)
		*cp = *st
		cp.XTicks = slices.Clone(st.XTicks)
		cp.YTicks = slices.Clone(st.YTicks)
	}
	return cp
}

// Validate checks the scale names and the explicit ticks.
func (st *LossStyle) Validate() error {
	for _, sc := range []string{st.XScale, st.YScale} {
		switch strings.ToLower(sc) {
		case "", ScaleLinear, ScalePlain, ScaleLog:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownScale, sc)
		}
	}
	if err := checkFinite("x tick", st.XTicks); err != nil {
		return err
	}
	return checkFinite("y tick", st.YTicks)
}

// checkFinite returns [ErrNotFinite] for the first NaN or infinite value.
func checkFinite(what string, vs []float64) error {
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s %d is %g", ErrNotFinite, what, i, v)
		}
	}
	return nil
}

// finiteRange returns the range of the finite values; ok is false
// when there are none.
func finiteRange(vs []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
		ok = true
	}
	return
}

func (st *LossStyle) logX() bool { return strings.EqualFold(st.XScale, ScaleLog) }
func (st *LossStyle) logY() bool { return strings.EqualFold(st.YScale, ScaleLog) }

// Epochs returns the x values of a loss trace of n records: 0..n-1,
// or 1..n on a log x scale.
func (st *LossStyle) Epochs(n int) []float64 {
	first := 0.0
	if st.logX() {
		first = 1
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = first + float64(i)
	}
	return xs
}

// XTickValues returns the x tick positions for a trace of n records:
// the explicit XTicks, or every XTickSpace-th epoch, which gives
// ceil(n/XTickSpace) ticks.
func (st *LossStyle) XTickValues(n int) []float64 {
	if len(st.XTicks) > 0 {
		return slices.Clone(st.XTicks)
	}
	stride := max(st.XTickSpace, 1)
	epochs := st.Epochs(n)
	var ts []float64
	for i := 0; i < n; i += stride {
		ts = append(ts, epochs[i])
	}
	return ts
}

// YTickValues returns the y tick positions for the given loss trace:
// the explicit YTicks; on a log scale 5 log-spaced values from 1e-4
// to 1e-1; on a plain scale 0, 5, 10, ... below 1.1 times the largest
// loss; otherwise the automatic ticks over the loss range.
// Non-finite losses are ignored; with no finite loss there are no ticks.
func (st *LossStyle) YTickValues(loss []float64) []float64 {
	if len(st.YTicks) > 0 {
		return slices.Clone(st.YTicks)
	}
	if strings.EqualFold(st.YScale, ScaleLog) {
		return logSpace(-4, -1, 5)
	}
	lo, hi, ok := finiteRange(loss)
	if !ok {
		return nil
	}
	if strings.EqualFold(st.YScale, ScalePlain) {
		stop := 1.1 * hi
		var ts []float64
		for v := 0.0; v < stop; v += 5 {
			ts = append(ts, v)
		}
		return ts
	}
	if !(hi > lo) {
		return []float64{lo}
	}
	return figure.MajorValues(plot.DefaultTicks{}.Ticks(lo, hi))
}

// logSpace returns num values evenly spaced in log10 from 10^start to 10^stop.
func logSpace(start, stop float64, num int) []float64 {
	vs := make([]float64, num)
	for i := range vs {
		e := start
		if num > 1 {
			e += (stop - start) * float64(i) / float64(num-1)
		}
		vs[i] = math.Pow(10, e)
	}
	return vs
}

// lossCurve is one plotted loss trace.
type lossCurve struct {
	loss  []float64
	label string
	color color.Color
}

// Loss plots per-epoch loss traces. The figure is created on the first
// call to [Loss.Plot]; later calls add curves to the same figure and
// recompute the ticks and reference lines for the latest trace.
type Loss struct {
	Style LossStyle

	// Figure is nil until the first curve is plotted.
	Figure *figure.Figure

	curves []lossCurve
}

// NewLoss returns a new Loss plotter with the given style
// (the defaults if nil).
func NewLoss(style *LossStyle) *Loss {
	if style == nil {
		style = NewLossStyle()
	}
	return &Loss{Style: *style.Clone()}
}

// Plot adds a loss trace with its label drawn at the last point in the
// curve color. An empty colorSpec takes the next color of the cycle.
func (ls *Loss) Plot(loss []float64, label, colorSpec string) error {
	if len(loss) == 0 {
		return ErrNoData
	}
	st := &ls.Style
	if err := st.Validate(); err != nil {
		return err
	}
	if err := checkFinite("loss", loss); err != nil {
		return err
	}
	if st.logY() {
		for _, v := range loss {
			if v <= 0 {
				return fmt.Errorf("%w: loss %g", ErrNonPositive, v)
			}
		}
	}
	c, err := colors.Parse(colorSpec, colors.Cycle(len(ls.curves)), 1)
	if err != nil {
		return err
	}
	curves := append(ls.curves, lossCurve{loss: slices.Clone(loss), label: label, color: c})
	plt, err := ls.build(curves)
	if err != nil {
		return err
	}
	ls.curves = curves
	if ls.Figure == nil {
		ls.Figure = figure.New(st.FigSize.Width, st.FigSize.Height)
	}
	ls.Figure.Plot = plt
	return nil
}

// build makes a new plot with all the curves, using the last one for
// the ticks and reference lines.
func (ls *Loss) build(curves []lossCurve) (*plot.Plot, error) {
	st := &ls.Style
	last := curves[len(curves)-1].loss
	n := len(last)

	plt := plot.New()
	if st.Title != "" {
		plt.Title.Text = st.Title
		figure.SetFont(&plt.Title.TextStyle, st.FontSize, false)
	}
	plt.X.Label.Text = st.XLabel
	plt.Y.Label.Text = st.YLabel
	figure.SetFont(&plt.X.Label.TextStyle, st.FontSize, false)
	figure.SetFont(&plt.Y.Label.TextStyle, st.FontSize, false)
	figure.SetFont(&plt.X.Tick.Label, st.FontSize, false)
	figure.SetFont(&plt.Y.Tick.Label, st.FontSize, false)
	// only the bottom spine is shown.
	plt.Y.LineStyle.Width = 0
	if st.logX() {
		plt.X.Scale = plot.LogScale{}
	}
	if st.logY() {
		plt.Y.Scale = plot.LogScale{}
	}

	epochs := st.Epochs(n)
	plt.X.Tick.Marker = figure.Ticks(st.XTickValues(n), st.XTickFormat)
	yticks := st.YTickValues(last)
	if st.logY() {
		for _, v := range yticks {
			if v <= 0 {
				return nil, fmt.Errorf("%w: y tick %g", ErrNonPositive, v)
			}
		}
	}
	plt.Y.Tick.Marker = figure.Ticks(yticks, st.YTickFormat)

	ref, err := figure.LineStyle("--", colors.WithAlpha(colors.Black, 0.7), 1)
	if err != nil {
		return nil, err
	}
	for _, yt := range yticks {
		ln, err := plotter.NewLine(plotter.XYs{{X: epochs[0], Y: yt}, {X: epochs[n-1], Y: yt}})
		if err != nil {
			return nil, err
		}
		ln.LineStyle = ref
		plt.Add(ln)
	}

	for _, cv := range curves {
		xys := make(plotter.XYs, len(cv.loss))
		ex := st.Epochs(len(cv.loss))
		for i, v := range cv.loss {
			xys[i].X, xys[i].Y = ex[i], v
		}
		ll, err := NewLabeledLine(xys, cv.label)
		if err != nil {
			return nil, err
		}
		ll.LineStyle.Color = cv.color
		ll.LineStyle.Width = vg.Points(st.LineWidth)
		ll.TextStyle = figure.TextStyle(st.FontSize, cv.color)
		ll.Offset = vg.Point{}
		plt.Add(ll)
	}
	return plt, nil
}

// Curves returns the number of loss traces plotted so far.
func (ls *Loss) Curves() int { return len(ls.curves) }

// Save saves the figure as name inside dir; see [figure.Figure.Save].
func (ls *Loss) Save(name, dir string, opts figure.SaveOptions) (string, error) {
	if ls.Figure == nil {
		return "", ErrNoFigure
	}
	return ls.Figure.Save(name, dir, opts)
}
