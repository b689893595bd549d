// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/plotstyle/base/iox/tomlx"
	"cogentcore.org/plotstyle/base/iox/yamlx"
	"cogentcore.org/plotstyle/figure"
	"github.com/mitchellh/go-homedir"
)

// Config is the contents of a style file: the styles of both plot
// types, the export options, and the typeface.
type Config struct {

	// Font selects the typeface: empty for the gonum default, or
	// "latin-modern" for Latin Modern Roman.
	Font string `toml:"font" yaml:"font"`

	Scatter ScatterStyle `toml:"scatter" yaml:"scatter"`

	Loss LossStyle `toml:"loss" yaml:"loss"`

	Save figure.SaveOptions `toml:"save" yaml:"save"`
}

// Defaults applies the defaults of every section.
func (cf *Config) Defaults() {
	cf.Scatter.Defaults()
	cf.Loss.Defaults()
	cf.Save.Defaults()
}

// NewConfig returns a new Config with defaults applied.
func NewConfig() *Config {
	cf := &Config{}
	cf.Defaults()
	return cf
}

// OpenConfig reads style files on top of the defaults, in order, so
// that later files override settings of earlier ones.
// The encoding is chosen by extension: .toml, or .yaml / .yml.
func OpenConfig(filenames ...string) (*Config, error) {
	cf := NewConfig()
	for _, fn := range filenames {
		if err := cf.Open(fn); err != nil {
			return nil, err
		}
	}
	return cf, nil
}

// Open reads a style file into the config; fields missing from the file
// keep their current values.
func (cf *Config) Open(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".toml":
		err = tomlx.Open(cf, fn)
	case ".yaml", ".yml":
		err = yamlx.Open(cf, fn)
	default:
		return fmt.Errorf("plots: style file %q must be .toml, .yaml or .yml", filename)
	}
	if err != nil {
		return fmt.Errorf("plots: reading style file %q: %w", filename, err)
	}
	return cf.Loss.Validate()
}

// SaveFile writes the config to a style file, encoded by extension.
func (cf *Config) SaveFile(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Save(cf, filename)
	case ".yaml", ".yml":
		return yamlx.Save(cf, filename)
	}
	return fmt.Errorf("plots: style file %q must be .toml, .yaml or .yml", filename)
}

// ApplyFont makes the configured typeface the default plot font.
func (cf *Config) ApplyFont() error {
	switch strings.ToLower(cf.Font) {
	case "":
		return nil
	case "latin-modern", "latinmodern", "latin modern":
		return figure.UseLatinModern()
	}
	return fmt.Errorf("plots: unknown font %q", cf.Font)
}
