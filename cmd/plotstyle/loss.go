// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/plotstyle/losslog"
	"cogentcore.org/plotstyle/plots"
	"github.com/spf13/cobra"
)

// lossOptions are the flags of the loss command.
type lossOptions struct {
	logs   []string
	column string
	labels []string
	colors []string
	title  string
	out    string
	name   string
	format string
	watch  bool
}

// label returns the curve label of the i-th log: the given label,
// or the file name without extension.
func (o *lossOptions) label(i int) string {
	if i < len(o.labels) {
		return o.labels[i]
	}
	base := filepath.Base(o.logs[i])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (o *lossOptions) color(i int) string {
	if i < len(o.colors) {
		return o.colors[i]
	}
	return ""
}

func lossCmd(a *app) *cobra.Command {
	o := &lossOptions{}
	cmd := &cobra.Command{
		Use:   "loss <log>...",
		Short: "plot the per-epoch loss of one or more training logs",
		Long: `Plot the per-epoch loss of one or more training logs, one labeled curve per log.
Logs can be CSV or TSV with a header row, JSON lines, or plain text with
one value per line; the format is taken from the file extension.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.logs = args
			path, err := a.renderLoss(o)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			if !o.watch {
				return nil
			}
			return watch(cmd.Context(), o.logs, func() error {
				path, err := a.renderLoss(o)
				if err == nil {
					slog.Info("rendered", "path", path)
				}
				return err
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.column, "column", losslog.DefaultColumn, "column (header name, JSON key or field index) holding the loss")
	f.StringSliceVar(&o.labels, labelFlag, nil, "curve labels, in log order (default the log file names)")
	f.StringSliceVar(&o.colors, "color", nil, "curve colors, in log order (default the color cycle)")
	f.StringVar(&o.title, titleFlag, "", "figure title (overrides the style)")
	f.StringVarP(&o.out, outFlag, "o", ".", "output directory")
	f.StringVar(&o.name, nameFlag, "loss", "output file name; the format is appended when it has no extension")
	f.StringVar(&o.format, formatFlag, "", "output format (overrides the style)")
	f.BoolVarP(&o.watch, "watch", "w", false, "re-render whenever a log changes")
	return cmd
}

// renderLoss reads the logs, plots them, and saves the figure.
func (a *app) renderLoss(o *lossOptions) (string, error) {
	ls := plots.NewLoss(&a.config.Loss)
	if o.title != "" {
		ls.Style.Title = o.title
	}
	for i, fn := range o.logs {
		loss, err := losslog.Open(fn, o.column)
		if err != nil {
			return "", fmt.Errorf("%s: %w", fn, err)
		}
		slog.Debug("read log", "file", fn, "epochs", len(loss))
		if err := ls.Plot(loss, o.label(i), o.color(i)); err != nil {
			return "", fmt.Errorf("%s: %w", fn, err)
		}
	}
	opts := a.saveOptions(o.name, o.format)
	return ls.Save(o.name, o.out, opts)
}
