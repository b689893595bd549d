// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
)

// SciFormat is the tick format name for one-digit scientific notation.
const SciFormat = "sci"

// FormatTick renders a tick value. An empty format uses the shortest
// representation, "sci" uses %.0e, and any other format is a printf
// format; formats whose first verb is an integer verb (d, x, X, o, b)
// get the value rounded to int.
func FormatTick(v float64, format string) string {
	switch format {
	case "":
		return strconv.FormatFloat(v, 'g', -1, 64)
	case SciFormat:
		return fmt.Sprintf("%.0e", v)
	}
	if intVerb(format) {
		return fmt.Sprintf(format, int(math.Round(v)))
	}
	return fmt.Sprintf(format, v)
}

// intVerb reports whether the first printf verb of format takes an integer.
func intVerb(format string) bool {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) && strings.IndexByte("+-# 0123456789.*", format[i]) >= 0 {
			i++
		}
		if i >= len(format) {
			return false
		}
		if format[i] == '%' {
			continue
		}
		return strings.IndexByte("dxXob", format[i]) >= 0
	}
	return false
}

// Ticks returns fixed major ticks at the given values, formatted with
// [FormatTick].
func Ticks(values []float64, format string) plot.ConstantTicks {
	ts := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		ts[i] = plot.Tick{Value: v, Label: FormatTick(v, format)}
	}
	return ts
}

// FormattedTicks wraps a ticker so that its major tick labels are
// rendered with [FormatTick]. Minor ticks stay unlabelled.
type FormattedTicks struct {
	plot.Ticker
	Format string
}

// Ticks implements [plot.Ticker].
func (ft FormattedTicks) Ticks(min, max float64) []plot.Tick {
	ts := ft.Ticker.Ticks(min, max)
	for i := range ts {
		if ts[i].IsMinor() {
			continue
		}
		ts[i].Label = FormatTick(ts[i].Value, ft.Format)
	}
	return ts
}

// MajorValues returns the values of the labelled ticks.
func MajorValues(ts []plot.Tick) []float64 {
	var vs []float64
	for _, t := range ts {
		if !t.IsMinor() {
			vs = append(vs, t.Value)
		}
	}
	return vs
}
