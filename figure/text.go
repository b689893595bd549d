// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
)

// LatinModern is the typeface name under which the Latin Modern Roman
// faces are registered by [UseLatinModern].
const LatinModern font.Typeface = "Latin Modern"

var latinModern struct {
	once sync.Once
	err  error
}

// UseLatinModern registers the Latin Modern Roman faces in the default
// font cache and makes them the default plot font. It is safe to call
// more than once; only the first call parses the fonts.
func UseLatinModern() error {
	latinModern.once.Do(func() {
		coll, err := latinModernCollection()
		if err != nil {
			latinModern.err = err
			return
		}
		font.DefaultCache.Add(coll)
	})
	if latinModern.err != nil {
		return latinModern.err
	}
	plot.DefaultFont = font.Font{Typeface: LatinModern, Variant: "Serif"}
	return nil
}

func latinModernCollection() (font.Collection, error) {
	faces := []struct {
		ttf    []byte
		style  xfont.Style
		weight xfont.Weight
	}{
		{lmroman10regular.TTF, xfont.StyleNormal, xfont.WeightNormal},
		{lmroman10bold.TTF, xfont.StyleNormal, xfont.WeightBold},
		{lmroman10italic.TTF, xfont.StyleItalic, xfont.WeightNormal},
		{lmroman10bolditalic.TTF, xfont.StyleItalic, xfont.WeightBold},
	}
	coll := make(font.Collection, 0, len(faces))
	for _, f := range faces {
		fnt, err := opentype.Parse(f.ttf)
		if err != nil {
			return nil, fmt.Errorf("figure: parsing Latin Modern face: %w", err)
		}
		coll = append(coll, font.Face{
			Font: font.Font{Typeface: LatinModern, Variant: "Serif", Style: f.style, Weight: f.weight},
			Face: fnt,
		})
	}
	return coll, nil
}

// Font returns the default plot font at the given size in points.
func Font(size float64, bold bool) font.Font {
	fnt := plot.DefaultFont
	fnt.Size = font.Points(size)
	if bold {
		fnt.Weight = xfont.WeightBold
	}
	return fnt
}

// SetFont sets the font size and weight of a text style, keeping the rest.
func SetFont(sty *text.Style, size float64, bold bool) {
	fnt := Font(size, bold)
	fnt.Typeface, fnt.Variant = sty.Font.Typeface, sty.Font.Variant
	if fnt.Typeface == "" {
		fnt.Typeface, fnt.Variant = plot.DefaultFont.Typeface, plot.DefaultFont.Variant
	}
	sty.Font = fnt
}

// TextStyle returns a left/bottom aligned text style in the default font,
// suitable for drawing a label at a point.
func TextStyle(size float64, c color.Color) text.Style {
	if c == nil {
		c = color.Black
	}
	return text.Style{
		Color:   c,
		Font:    Font(size, false),
		XAlign:  text.XLeft,
		YAlign:  text.YBottom,
		Handler: plot.DefaultTextHandler,
	}
}
