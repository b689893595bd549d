// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors parses the color specs used in plot styles:
// CSS color names, single letter base colors ("k", "r"), hex strings,
// the "C0".."C9" property cycle, the "tab:" palette, and gray levels
// given as a number in [0, 1].
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by [FromString] for a spec that names no color.
var ErrUnknownColor = errors.New("colors: unknown color")

// Base contains the single letter base colors.
var Base = map[string]color.RGBA{
	"b": {0x00, 0x00, 0xff, 0xff},
	"g": {0x00, 0x80, 0x00, 0xff},
	"r": {0xff, 0x00, 0x00, 0xff},
	"c": {0x00, 0xbf, 0xbf, 0xff},
	"m": {0xbf, 0x00, 0xbf, 0xff},
	"y": {0xbf, 0xbf, 0x00, 0xff},
	"k": {0x00, 0x00, 0x00, 0xff},
	"w": {0xff, 0xff, 0xff, 0xff},
}

// Tableau contains the ten colors of the "tab:" palette, which is also
// the default property cycle (see [Cycle]).
var Tableau = map[string]color.RGBA{
	"tab:blue":   {0x1f, 0x77, 0xb4, 0xff},
	"tab:orange": {0xff, 0x7f, 0x0e, 0xff},
	"tab:green":  {0x2c, 0xa0, 0x2c, 0xff},
	"tab:red":    {0xd6, 0x27, 0x28, 0xff},
	"tab:purple": {0x94, 0x67, 0xbd, 0xff},
	"tab:brown":  {0x8c, 0x56, 0x4b, 0xff},
	"tab:pink":   {0xe3, 0x77, 0xc2, 0xff},
	"tab:gray":   {0x7f, 0x7f, 0x7f, 0xff},
	"tab:olive":  {0xbc, 0xbd, 0x22, 0xff},
	"tab:cyan":   {0x17, 0xbe, 0xcf, 0xff},
}

// FromString returns the color for the given spec. Accepted forms are
// CSS names ("grey", "steelblue"), base letters ("k"), hex ("#1f77b4",
// "#1f77b480", "#fff"), cycle references ("C3"), "tab:" names, the
// string form of a gray level ("0.5"), and "none" (fully transparent).
func FromString(spec string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	switch {
	case s == "":
		return color.RGBA{}, fmt.Errorf("%w: empty spec", ErrUnknownColor)
	case s == "none" || s == "transparent":
		return color.RGBA{}, nil
	case strings.HasPrefix(s, "#"):
		return fromHex(s)
	case len(s) >= 2 && s[0] == 'c' && isDigits(s[1:]):
		n, _ := strconv.Atoi(s[1:])
		return Cycle(n), nil
	}
	if c, ok := Base[s]; ok {
		return c, nil
	}
	if c, ok := Tableau[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[strings.ReplaceAll(s, " ", "")]; ok {
		return c, nil
	}
	if g, err := strconv.ParseFloat(s, 64); err == nil {
		if g < 0 || g > 1 || g != g {
			return color.RGBA{}, fmt.Errorf("%w: gray level %q out of [0, 1]", ErrUnknownColor, spec)
		}
		v := uint8(g*255 + 0.5)
		return color.RGBA{v, v, v, 0xff}, nil
	}
	if sug := Suggest(s); sug != "" {
		return color.RGBA{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownColor, spec, sug)
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, spec)
}

// MustFromString is like [FromString] but falls back to black on error.
// It is intended for compile-time constant specs.
func MustFromString(spec string) color.RGBA {
	c, err := FromString(spec)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

// fromHex parses #rgb, #rrggbb and #rrggbbaa forms.
func fromHex(s string) (color.RGBA, error) {
	h := s[1:]
	var alpha uint8 = 0xff
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	case 8:
		a, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: bad alpha in %q", ErrUnknownColor, s)
		}
		alpha = uint8(a)
		h = h[:6]
	default:
		return color.RGBA{}, fmt.Errorf("%w: bad hex length in %q", ErrUnknownColor, s)
	}
	cf, err := colorful.Hex("#" + h)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %v", ErrUnknownColor, err)
	}
	r, g, b := cf.RGB255()
	return WithAlpha(color.RGBA{r, g, b, 0xff}, float64(alpha)/255), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Suggest returns the known color name closest to the given unknown name,
// or "" if nothing is reasonably close.
func Suggest(name string) string {
	return ClosestName(name, Names())
}

// ClosestName returns the candidate most similar to name, using
// Jaro-Winkler similarity, or "" if none scores above 0.8.
func ClosestName(name string, candidates []string) string {
	best, score := "", 0.8
	jw := metrics.NewJaroWinkler()
	for _, c := range candidates {
		if sim := strutil.Similarity(name, c, jw); sim > score {
			best, score = c, sim
		}
	}
	return best
}

// Names returns all the recognized color names.
func Names() []string {
	nms := make([]string, 0, len(Base)+len(Tableau)+len(colornames.Names))
	for n := range Base {
		nms = append(nms, n)
	}
	for n := range Tableau {
		nms = append(nms, n)
	}
	nms = append(nms, colornames.Names...)
	slices.Sort(nms)
	return nms
}
