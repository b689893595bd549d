// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/plotstyle/losslog"
	"cogentcore.org/plotstyle/plots"
	"github.com/spf13/cobra"
)

type scatterOptions struct {
	file   string
	x, y   string
	label  string
	title  string
	out    string
	name   string
	format string
}

func scatterCmd(a *app) *cobra.Command {
	o := &scatterOptions{}
	cmd := &cobra.Command{
		Use:   "scatter <data>",
		Short: "scatter plot two columns of a data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.file = args[0]
			path, err := a.renderScatter(o)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.x, "x", "0", "column of the x values")
	f.StringVar(&o.y, "y", "1", "column of the y values")
	f.StringVar(&o.label, labelFlag, "", "legend label (overrides the style)")
	f.StringVar(&o.title, titleFlag, "", "figure title (overrides the style)")
	f.StringVarP(&o.out, outFlag, "o", ".", "output directory")
	f.StringVar(&o.name, nameFlag, "scatter", "output file name; the format is appended when it has no extension")
	f.StringVar(&o.format, formatFlag, "", "output format (overrides the style)")
	return cmd
}

// renderScatter reads the two columns, plots them, and saves the figure.
func (a *app) renderScatter(o *scatterOptions) (string, error) {
	cols, err := losslog.OpenColumns(o.file, o.x, o.y)
	if err != nil {
		return "", fmt.Errorf("%s: %w", o.file, err)
	}
	slog.Debug("read data", "file", o.file, "points", len(cols[0]))
	st := a.config.Scatter.Clone()
	if o.label != "" {
		st.Label = o.label
	}
	if o.title != "" {
		st.Title = o.title
	}
	sc := plots.NewScatter(st)
	if err := sc.Plot(cols[0], cols[1]); err != nil {
		return "", err
	}
	opts := a.saveOptions(o.name, o.format)
	return sc.Save(o.name, o.out, opts)
}
