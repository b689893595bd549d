// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/vg"
)

func TestNoLine(t *testing.T) {
	assert.True(t, NoLine(""))
	assert.True(t, NoLine("none"))
	assert.True(t, NoLine("None"))
	assert.False(t, NoLine("-"))
	assert.False(t, NoLine("--"))
}

func TestDashes(t *testing.T) {
	ds, err := Dashes("-", 2)
	assert.NoError(t, err)
	assert.Nil(t, ds)

	ds, err = Dashes("--", 2)
	assert.NoError(t, err)
	assert.Equal(t, []vg.Length{7.4, 3.2}, ds)

	ds, err = Dashes("dashdot", 1)
	assert.NoError(t, err)
	assert.Len(t, ds, 4)

	ds, err = Dashes(":", 0)
	assert.NoError(t, err)
	assert.Equal(t, []vg.Length{1, 1.65}, ds)

	_, err = Dashes("~", 1)
	assert.ErrorIs(t, err, ErrUnknownLineStyle)
}

func TestLineStyle(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	ls, err := LineStyle("--", red, 1.5)
	assert.NoError(t, err)
	assert.Equal(t, vg.Points(1.5), ls.Width)
	assert.Equal(t, red, ls.Color)
	assert.Len(t, ls.Dashes, 2)

	ls, err = LineStyle("none", red, 1.5)
	assert.NoError(t, err)
	assert.Zero(t, ls.Width)

	_, err = LineStyle("=", red, 1)
	assert.ErrorIs(t, err, ErrUnknownLineStyle)
}
