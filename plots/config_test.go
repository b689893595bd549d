// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cf := NewConfig()
	assert.Equal(t, *NewScatterStyle(), cf.Scatter)
	assert.Equal(t, *NewLossStyle(), cf.Loss)
	assert.Equal(t, "eps", cf.Save.Format)
	assert.NoError(t, cf.ApplyFont())
}

func TestOpenConfigTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "style.toml")
	data := `
[scatter]
marker = "s"
alpha = 0.5
xlim = { min = 0, max = 2 }

[loss]
yscale = "log"
xtickspace = 5
yticks = [0.001, 0.01]

[save]
format = "png"
transparent = false
`
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	cf, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, "s", cf.Scatter.Marker)
	assert.Equal(t, 0.5, cf.Scatter.Alpha)
	require.NotNil(t, cf.Scatter.XLim)
	assert.Equal(t, 2.0, cf.Scatter.XLim.Max)
	assert.Equal(t, 6.0, cf.Scatter.MarkerSize, "unset fields keep their defaults")
	assert.Equal(t, ScaleLog, cf.Loss.YScale)
	assert.Equal(t, 5, cf.Loss.XTickSpace)
	assert.Equal(t, []float64{0.001, 0.01}, cf.Loss.YTicks)
	assert.Equal(t, "# epoch", cf.Loss.XLabel)
	assert.Equal(t, "png", cf.Save.Format)
	assert.False(t, cf.Save.Transparent)
	assert.Equal(t, 0.05, cf.Save.PadInches)
}

func TestOpenConfigYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "style.yaml")
	data := `
font: ""
loss:
  yscale: plain
  title: run 1
scatter:
  linestyle: "--"
`
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	cf, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, ScalePlain, cf.Loss.YScale)
	assert.Equal(t, "run 1", cf.Loss.Title)
	assert.Equal(t, "--", cf.Scatter.LineStyle)
	assert.Equal(t, "o", cf.Scatter.Marker)
}

func TestConfigRoundTrip(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml"} {
		fn := filepath.Join(t.TempDir(), "style"+ext)
		cf := NewConfig()
		cf.Loss.Title = "saved"
		cf.Scatter.Marker = "^"
		require.NoError(t, cf.SaveFile(fn), ext)
		got, err := OpenConfig(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, cf, got, ext)
	}
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenConfig(filepath.Join(dir, "style.json"))
	assert.Error(t, err)
	_, err = OpenConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("[loss]\nxscale = \"symlog\"\n"), 0666))
	_, err = OpenConfig(fn)
	assert.ErrorIs(t, err, ErrUnknownScale)

	assert.Error(t, NewConfig().SaveFile(filepath.Join(dir, "style.ini")))

	cf := NewConfig()
	cf.Font = "comic"
	assert.Error(t, cf.ApplyFont())
}

func TestOpenConfigLayered(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	require.NoError(t, os.WriteFile(base, []byte("[loss]\ntitle = \"base\"\nfontsize = 10\n"), 0666))
	over := filepath.Join(dir, "over.yaml")
	require.NoError(t, os.WriteFile(over, []byte("loss:\n  title: override\n"), 0666))

	cf, err := OpenConfig(base, over)
	require.NoError(t, err)
	assert.Equal(t, "override", cf.Loss.Title)
	assert.Equal(t, 10.0, cf.Loss.FontSize)
}
