// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotstyle renders loss curves and scatter plots from training
// logs and data files, using the styles of a TOML or YAML style file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/plotstyle/figure"
	"cogentcore.org/plotstyle/logx"
	"cogentcore.org/plotstyle/plots"
	"github.com/spf13/cobra"
)

const (
	styleFlag  = "style"
	outFlag    = "out"
	nameFlag   = "name"
	formatFlag = "format"
	labelFlag  = "label"
	titleFlag  = "title"
)

// app is the state shared by the commands.
type app struct {
	config *plots.Config
	vv, v  bool
	q      bool
	styles []string
}

// load sets the log level and reads the style files, if any.
func (a *app) load() error {
	logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
	logx.SetDefaultLogger()
	cf, err := plots.OpenConfig(a.styles...)
	if err != nil {
		return err
	}
	if len(a.styles) > 0 {
		slog.Info("loaded styles", "files", a.styles)
	}
	a.config = cf
	return a.config.ApplyFont()
}

// saveOptions returns the export options of the style for the output
// name: an explicit format wins, then the extension of name, then the
// format of the style.
func (a *app) saveOptions(name, format string) figure.SaveOptions {
	opts := a.config.Save
	switch {
	case format != "":
		opts.Format = format
	case filepath.Ext(name) != "":
		opts.Format = ""
	}
	return opts
}

func rootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "plotstyle",
		Short:         "render styled loss curves and scatter plots to files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&a.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only show errors")
	pf.StringSliceVar(&a.styles, styleFlag, nil, "style files (.toml, .yaml or .yml); later files override earlier ones")

	cmd.AddCommand(lossCmd(a), scatterCmd(a), styleCmd(a))
	return cmd
}

// styleCmd writes the effective style, for use as a starting point.
func styleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "style <file>",
		Short: "write the default style (merged with --style) to a .toml or .yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.config.SaveFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), args[0])
			return nil
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "plotstyle:", err)
		stop()
		os.Exit(1)
	}
}
