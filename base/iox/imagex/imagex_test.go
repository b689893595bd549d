// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 30), uint8(y * 40), 100, 255})
		}
	}
	return img
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("jpeg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	f, err = ExtToFormat("tif")
	assert.NoError(t, err)
	assert.Equal(t, TIFF, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("eps")
	assert.Error(t, err)

	assert.True(t, IsRaster("png"))
	assert.False(t, IsRaster("gif"))
	assert.False(t, IsRaster("svg"))
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	img := testImage()
	for _, ext := range []string{".png", ".tif", ".bmp"} {
		fn := filepath.Join(dir, "img"+ext)
		require.NoError(t, Save(img, fn), ext)
		got, f, err := Open(fn)
		require.NoError(t, err, ext)
		want, _ := ExtToFormat(ext)
		assert.Equal(t, want, f)
		assert.Equal(t, img.Bounds(), got.Bounds())
		assert.True(t, CompareColors(img.RGBAAt(3, 2), AsRGBA(got).RGBAAt(3, 2), 0), ext)
	}
	assert.Error(t, Save(img, filepath.Join(dir, "img.svg")))
}

type recordT struct {
	errs []string
}

func (r *recordT) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func TestAssert(t *testing.T) {
	if UpdateTestImages {
		t.Skip("comparison is disabled while updating test images")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	img := testImage()
	rt := &recordT{}
	Assert(rt, img, "gradient")
	assert.Empty(t, rt.errs)
	assert.FileExists(t, filepath.Join(dir, "testdata", "gradient.png"))

	Assert(rt, img, "gradient")
	assert.Empty(t, rt.errs)

	changed := testImage()
	changed.Set(4, 4, color.RGBA{255, 255, 255, 255})
	Assert(rt, changed, "gradient")
	assert.Len(t, rt.errs, 1)
	assert.FileExists(t, filepath.Join(dir, "testdata", "gradient.fail.png"))
	assert.FileExists(t, filepath.Join(dir, "testdata", "gradient.diff.png"))

	rt.errs = nil
	Assert(rt, img, "gradient")
	assert.Empty(t, rt.errs)
	assert.NoFileExists(t, filepath.Join(dir, "testdata", "gradient.fail.png"))
}

func TestCompareColors(t *testing.T) {
	a := color.RGBA{10, 20, 30, 255}
	assert.True(t, CompareColors(a, color.RGBA{15, 20, 30, 255}, 10))
	assert.False(t, CompareColors(a, color.RGBA{21, 20, 30, 255}, 10))
	assert.True(t, CompareUint8(0, 10, 10))
	assert.False(t, CompareUint8(0, 11, 10))
}
