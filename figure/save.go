// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/plotstyle/base/iox/imagex"
	"cogentcore.org/plotstyle/colors"
	"github.com/anthonynsimon/bild/transform"
	"github.com/mitchellh/go-homedir"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrUnknownFormat is returned when saving to an unsupported format.
var ErrUnknownFormat = errors.New("figure: unknown output format")

// SaveOptions are the export options applied when a figure is saved.
type SaveOptions struct {

	// Format is the output format: eps, svg, pdf, tex, png, jpg, tif or bmp.
	// If empty, it is taken from the file extension.
	Format string `toml:"format" yaml:"format"`

	// Transparent leaves the background unpainted.
	Transparent bool `toml:"transparent" yaml:"transparent"`

	// FaceColor is the background color used when not Transparent.
	FaceColor string `toml:"facecolor" yaml:"facecolor"`

	// PadInches is the padding around the plot, in inches.
	PadInches float64 `toml:"pad_inches" yaml:"pad_inches"`

	// Tight crops raster output to the drawn content plus the padding.
	Tight bool `toml:"tight" yaml:"tight"`

	// DPI overrides the figure resolution for raster output, if > 0.
	DPI int `toml:"dpi" yaml:"dpi"`
}

// Defaults sets the default export options: eps, transparent,
// white face, 0.05 inch padding, tight.
func (so *SaveOptions) Defaults() {
	so.Format = "eps"
	so.Transparent = true
	so.FaceColor = "w"
	so.PadInches = 0.05
	so.Tight = true
}

// DefaultSaveOptions returns a new SaveOptions with [SaveOptions.Defaults] applied.
func DefaultSaveOptions() SaveOptions {
	var so SaveOptions
	so.Defaults()
	return so
}

// Save saves the figure as name inside dir, creating dir if needed,
// and returns the path written. A leading ~ in dir is expanded to the
// home directory.
func (f *Figure) Save(name, dir string, opts SaveOptions) (string, error) {
	dir, err := homedir.Expand(dir)
	if err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return "", err
		}
	}
	path, opts, err := resolvePath(filepath.Join(dir, name), opts)
	if err != nil {
		return "", err
	}
	return path, f.writeFile(path, opts)
}

// SaveAs saves the figure to the given file path. When opts.Format is set
// and the path has no extension, the format is appended as the extension.
func (f *Figure) SaveAs(path string, opts SaveOptions) error {
	path, opts, err := resolvePath(path, opts)
	if err != nil {
		return err
	}
	return f.writeFile(path, opts)
}

// resolvePath expands the path and reconciles its extension with opts.Format.
func resolvePath(path string, opts SaveOptions) (string, SaveOptions, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return "", opts, err
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	switch {
	case opts.Format == "" && ext == "":
		return "", opts, fmt.Errorf("%w: no format or extension for %q", ErrUnknownFormat, path)
	case opts.Format == "":
		opts.Format = ext
	case ext == "":
		path += "." + opts.Format
	}
	return path, opts, nil
}

func (f *Figure) writeFile(path string, opts SaveOptions) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(file)
	if err := f.Write(bw, opts); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Write renders the figure to w in opts.Format.
func (f *Figure) Write(w io.Writer, opts SaveOptions) error {
	format := strings.ToLower(opts.Format)
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff", "bmp":
		img, err := f.Image(opts)
		if err != nil {
			return err
		}
		return writeImage(w, img, format)
	case "eps", "svg", "pdf", "tex":
		c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
		if err != nil {
			return err
		}
		face, err := f.faceColor(opts)
		if err != nil {
			return err
		}
		f.drawOn(draw.New(c), face, opts)
		if format == "eps" {
			return writeEPS(w, c)
		}
		_, err = c.WriteTo(w)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}

// writeEPS writes the canvas with a "%!PS-Adobe" header line.
// The gonum EPS backend emits "%%!PS-Adobe", which readers do not
// recognize as PostScript.
func writeEPS(w io.Writer, c io.WriterTo) error {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	b := buf.Bytes()
	if bytes.HasPrefix(b, []byte("%%!PS")) {
		b = b[1:]
	}
	_, err := w.Write(b)
	return err
}

// Image renders the figure to a raster image with the export options applied.
func (f *Figure) Image(opts SaveOptions) (image.Image, error) {
	face, err := f.faceColor(opts)
	if err != nil {
		return nil, err
	}
	bg := color.Color(color.Transparent)
	if face != nil {
		bg = face
	}
	dpi := f.DPI
	if opts.DPI > 0 {
		dpi = opts.DPI
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(bg))
	f.drawOn(draw.New(c), face, opts)
	img := image.Image(c.Image())
	if opts.Tight {
		pad := int(opts.PadInches*float64(dpi) + 0.5)
		img = transform.Crop(img, TightBounds(img, bg, pad))
	}
	return img, nil
}

// faceColor returns the background color, or nil when transparent.
func (f *Figure) faceColor(opts SaveOptions) (color.Color, error) {
	if opts.Transparent && !strings.HasPrefix(strings.ToLower(opts.Format), "jp") {
		return nil, nil
	}
	c, err := colors.Parse(opts.FaceColor, colors.White, 1)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// drawOn draws the plot inset by the padding, filling the whole canvas
// with face first when it is non-nil. The plot's own background is
// suppressed so that it cannot override the transparency option.
func (f *Figure) drawOn(c draw.Canvas, face color.Color, opts SaveOptions) {
	if face != nil {
		c.SetColor(face)
		c.Fill(c.Rectangle.Path())
	}
	bg := f.BackgroundColor
	f.BackgroundColor = nil
	defer func() { f.BackgroundColor = bg }()

	pad := vg.Length(opts.PadInches) * vg.Inch
	f.Draw(draw.Crop(c, pad, -pad, pad, -pad))
}

func writeImage(w io.Writer, img image.Image, format string) error {
	f, err := imagex.ExtToFormat(format)
	if err != nil {
		return err
	}
	return imagex.Write(img, w, f)
}

// TightBounds returns the bounds of the pixels of img that differ from
// the background bg, grown by pad pixels and clipped to the image.
// An image with no content returns its full bounds.
func TightBounds(img image.Image, bg color.Color, pad int) image.Rectangle {
	b := img.Bounds()
	br, bgG, bb, ba := bg.RGBA()
	content := image.Rectangle{Min: b.Max, Max: b.Min}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if r == br && g == bgG && bl == bb && a == ba {
				continue
			}
			content.Min.X = min(content.Min.X, x)
			content.Min.Y = min(content.Min.Y, y)
			content.Max.X = max(content.Max.X, x+1)
			content.Max.Y = max(content.Max.Y, y+1)
		}
	}
	if content.Empty() {
		return b
	}
	return content.Inset(-pad).Intersect(b)
}
