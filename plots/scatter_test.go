// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"
	"testing"

	"cogentcore.org/plotstyle/base/iox/imagex"
	"cogentcore.org/plotstyle/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

func TestScatterStyleDefaults(t *testing.T) {
	st := NewScatterStyle()
	assert.Equal(t, "o", st.Marker)
	assert.Equal(t, 0.7, st.Alpha)
	assert.Equal(t, "black", st.MarkerFaceColor)
	assert.Equal(t, figure.Size{Width: 7, Height: 5}, st.FigSize)
	assert.True(t, st.Grid)
	assert.Empty(t, st.LineStyle)

	gs, err := st.Glyph()
	require.NoError(t, err)
	assert.EqualValues(t, 3, gs.Radius)
	g, ok := gs.Shape.(Glyph)
	require.True(t, ok)
	assert.Equal(t, Circle, g.Marker)
	assert.Equal(t, color.RGBA{A: 179}, g.Face)
}

func TestScatterStyleClone(t *testing.T) {
	st := NewScatterStyle()
	st.XLim = &figure.Range{Min: 0, Max: 1}
	cp := st.Clone()
	cp.XLim.Max = 5
	cp.Marker = "s"
	assert.Equal(t, 1.0, st.XLim.Max)
	assert.Equal(t, "o", st.Marker)
}

func TestScatterErrors(t *testing.T) {
	sc := NewScatter(nil)
	assert.ErrorIs(t, sc.Plot([]float64{1, 2}, []float64{1}), ErrLengthMismatch)
	assert.ErrorIs(t, sc.Plot(nil, nil), ErrNoData)

	sc.Style.Marker = "circel"
	assert.ErrorIs(t, sc.Plot([]float64{1}, []float64{1}), ErrUnknownMarker)

	sc = NewScatter(nil)
	sc.Style.LineStyle = "~~"
	assert.ErrorIs(t, sc.Plot([]float64{1}, []float64{1}), figure.ErrUnknownLineStyle)

	sc = NewScatter(nil)
	sc.Style.MarkerFaceColor = "blakc"
	err := sc.Plot([]float64{1}, []float64{1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "markerfacecolor")
}

func TestScatterPlot(t *testing.T) {
	st := NewScatterStyle()
	st.Title = "points"
	st.XLabel = "x"
	st.YLabel = "y"
	st.Label = "data"
	st.LineStyle = "--"
	st.Color = "tab:red"
	st.YLim = &figure.Range{Min: -1, Max: 10}
	sc := NewScatter(st)
	require.NoError(t, sc.Plot([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9}))
	require.NoError(t, sc.Plot([]float64{0, 1, 2}, []float64{1, 2, 3}))

	plt := sc.Figure.Plot
	assert.Equal(t, "points", plt.Title.Text)
	assert.Equal(t, "x", plt.X.Label.Text)
	assert.Equal(t, -1.0, plt.Y.Min)
	assert.Equal(t, 10.0, plt.Y.Max)
	assert.Equal(t, 0.0, plt.X.Min)
	assert.Equal(t, 3.0, plt.X.Max)
	assert.Equal(t, 7*72.0, float64(sc.Figure.Width))

	opts := figure.DefaultSaveOptions()
	opts.Format = "png"
	opts.Transparent = false
	img, err := sc.Figure.Image(opts)
	require.NoError(t, err)
	imagex.Assert(t, img, "scatter")
}

func TestScatterOn(t *testing.T) {
	plt := plot.New()
	plt.Title.Text = "existing"
	st := NewScatterStyle()
	st.Grid = false
	st.Marker = "^"
	st.FillStyle = "left"
	sc := NewScatterOn(plt, st)
	assert.Same(t, plt, sc.Figure.Plot)
	require.NoError(t, sc.Plot([]float64{1, 2}, []float64{3, 4}))
	assert.Empty(t, plt.Title.Text)
}

func TestScatterFigSize(t *testing.T) {
	st := NewScatterStyle()
	st.FigSize = figure.Size{Width: 4, Height: 3}
	sc := NewScatter(st)
	st.FigSize = figure.Size{Width: 9, Height: 9}
	assert.Equal(t, figure.Size{Width: 4, Height: 3}, sc.Style.FigSize)
	assert.Equal(t, 4*vg.Inch, sc.Figure.Width)
	assert.Equal(t, 3*vg.Inch, sc.Figure.Height)
}

func TestScatterGridOnce(t *testing.T) {
	sc := NewScatter(nil)
	require.NoError(t, sc.Plot([]float64{1, 2}, []float64{3, 4}))
	grid := sc.grid
	require.NotNil(t, grid)
	require.NoError(t, sc.Plot([]float64{1, 2}, []float64{5, 6}))
	assert.Same(t, grid, sc.grid, "the grid is added on the first call only")

	st := NewScatterStyle()
	st.Grid = false
	sc = NewScatter(st)
	require.NoError(t, sc.Plot([]float64{1, 2}, []float64{3, 4}))
	assert.Nil(t, sc.grid)
}

// drawnTexts returns the strings drawn when rendering the figure.
func drawnTexts(f *figure.Figure) []string {
	var rec recorder.Canvas
	c := draw.Canvas{Canvas: &rec, Rectangle: vg.Rectangle{Max: vg.Point{X: 500, Y: 400}}}
	f.Draw(c)
	var texts []string
	for _, a := range rec.Actions {
		if fs, ok := a.(*recorder.FillString); ok {
			texts = append(texts, fs.String)
		}
	}
	return texts
}

func TestScatterLegend(t *testing.T) {
	tests := []struct {
		legend bool
		label  string
		want   bool
	}{
		{true, "data", true},
		{false, "data", false},
		{true, "", false},
	}
	for _, tt := range tests {
		st := NewScatterStyle()
		st.Legend = tt.legend
		st.Label = tt.label
		sc := NewScatter(st)
		require.NoError(t, sc.Plot([]float64{1, 2, 3}, []float64{3, 1, 2}))
		texts := drawnTexts(sc.Figure)
		if tt.want {
			assert.Contains(t, texts, "data")
		} else {
			assert.NotContains(t, texts, "data", "legend %v label %q", tt.legend, tt.label)
		}
	}
}

func TestScatterSave(t *testing.T) {
	sc := NewScatter(nil)
	require.NoError(t, sc.Plot([]float64{1, 2, 3}, []float64{3, 1, 2}))
	path, err := sc.Save("scatter", t.TempDir(), figure.DefaultSaveOptions())
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Regexp(t, `scatter\.eps$`, path)
}

func TestGridStyle(t *testing.T) {
	grid, err := gridStyle()
	require.NoError(t, err)
	assert.EqualValues(t, 1.5, grid.Vertical.Width)
	assert.NotEmpty(t, grid.Horizontal.Dashes)
	var _ *plotter.Grid = grid
}
