// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads the YAML configuration file.
//
// Every key is optional. A missing file is the same as an empty one, and an
// empty file yields Default.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/x-z7a/skyscript/logging"
)

// FileName is the name of the configuration file in the output directory.
const FileName = "skyscript.yaml"

// Config is the whole configuration.
type Config struct {
	Logging   Logging   `yaml:"logging"`
	View      View      `yaml:"view"`
	Window    Window    `yaml:"window"`
	Input     Input     `yaml:"input"`
	Render    Render    `yaml:"render"`
	Apps      Apps      `yaml:"apps"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Logging struct {
	// Backend is one of logging.Backends.
	Backend string `yaml:"backend"`
	// Level is debug, info or error.
	Level string `yaml:"level"`
	// File, if set, is where logs go instead of standard error. Relative
	// paths are relative to the output directory.
	File string `yaml:"file"`
}

type View struct {
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	UserStylesheet string `yaml:"user_stylesheet"`
}

type Window struct {
	// Offset is the distance of a new window from the screen's top-left
	// corner, on both axes.
	Offset    int `yaml:"offset"`
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`
}

type Input struct {
	ScrollPixelsPerClick int `yaml:"scroll_pixels_per_click"`
}

type Render struct {
	// ResizeCheckInterval is how many draw callbacks pass between two
	// checks of a window's geometry.
	ResizeCheckInterval int `yaml:"resize_check_interval"`
}

type Apps struct {
	// Dir holds one directory per app. Relative paths are relative to the
	// plugin directory.
	Dir string `yaml:"dir"`
}

type Telemetry struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging: Logging{Backend: logging.Zap, Level: "info"},
		View:    View{Width: 800, Height: 600},
		Window: Window{
			Offset:    100,
			MinWidth:  200,
			MinHeight: 200,
			MaxWidth:  2000,
			MaxHeight: 2000,
		},
		Input:  Input{ScrollPixelsPerClick: 30},
		Render: Render{ResizeCheckInterval: 10},
		Apps:   Apps{Dir: "apps"},
	}
}

// Load reads the file at path. A file that does not exist yields Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, xerrors.Errorf("reading config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML on top of Default and validates the result. Unknown
// keys are errors.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, xerrors.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports the first invalid value in c.
func (c *Config) Validate() error {
	if !logging.ValidBackend(c.Logging.Backend) {
		return xerrors.Errorf("logging.backend: unknown backend %q", c.Logging.Backend)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return xerrors.Errorf("logging.level: %w", err)
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		return xerrors.Errorf("view: size %dx%d is not positive", c.View.Width, c.View.Height)
	}
	w := c.Window
	// A zero offset reads as unset downstream and would become the default.
	if w.Offset <= 0 {
		return xerrors.Errorf("window.offset: %d is not positive", w.Offset)
	}
	if w.MinWidth <= 0 || w.MinHeight <= 0 {
		return xerrors.Errorf("window: minimum size %dx%d is not positive", w.MinWidth, w.MinHeight)
	}
	if w.MaxWidth < w.MinWidth || w.MaxHeight < w.MinHeight {
		return xerrors.Errorf("window: maximum size %dx%d is below the minimum %dx%d",
			w.MaxWidth, w.MaxHeight, w.MinWidth, w.MinHeight)
	}
	if c.Input.ScrollPixelsPerClick <= 0 {
		return xerrors.Errorf("input.scroll_pixels_per_click: %d is not positive", c.Input.ScrollPixelsPerClick)
	}
	if c.Render.ResizeCheckInterval <= 0 {
		return xerrors.Errorf("render.resize_check_interval: %d is not positive", c.Render.ResizeCheckInterval)
	}
	if c.Apps.Dir == "" {
		return xerrors.New("apps.dir: empty")
	}
	return nil
}

// LoggingOptions returns the logging.Options c describes. c must be valid.
func (c *Config) LoggingOptions() logging.Options {
	level, _ := logging.ParseLevel(c.Logging.Level)
	return logging.Options{Backend: c.Logging.Backend, Level: level}
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, xerrors.Errorf("encoding config: %w", err)
	}
	return data, nil
}
