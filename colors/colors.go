// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

var (
	// Black is opaque black.
	Black = color.RGBA{0x00, 0x00, 0x00, 0xff}

	// White is opaque white.
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}

	// Grey is the CSS grey used for grid lines.
	Grey = color.RGBA{0x80, 0x80, 0x80, 0xff}

	// Transparent is fully transparent black.
	Transparent = color.RGBA{}
)

// cycle is the default property cycle, in "tab:" palette order.
var cycle = []string{
	"tab:blue", "tab:orange", "tab:green", "tab:red", "tab:purple",
	"tab:brown", "tab:pink", "tab:gray", "tab:olive", "tab:cyan",
}

// Cycle returns the color at index idx of the default property cycle,
// wrapping around after the ten palette colors. This is what a "C<n>"
// spec refers to, and what series without an explicit color get.
func Cycle(idx int) color.RGBA {
	if idx < 0 {
		idx = -idx
	}
	return Tableau[cycle[idx%len(cycle)]]
}

// WithAlpha returns c with its opacity scaled by alpha in [0, 1].
// The result is alpha-premultiplied, as required by [color.RGBA].
func WithAlpha(c color.Color, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	r, g, b, a := c.RGBA()
	scale := func(v uint32) uint8 {
		return uint8(float64(v>>8)*alpha + 0.5)
	}
	return color.RGBA{scale(r), scale(g), scale(b), scale(a)}
}

// Parse returns the color for spec with the given alpha applied.
// An empty spec returns def instead of an error, which lets style
// fields be left blank to mean "use the default".
func Parse(spec string, def color.Color, alpha float64) (color.RGBA, error) {
	if spec == "" {
		return WithAlpha(def, alpha), nil
	}
	c, err := FromString(spec)
	if err != nil {
		return color.RGBA{}, err
	}
	return WithAlpha(c, alpha), nil
}
