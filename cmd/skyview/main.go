// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The skyview command runs SkyScript apps in a desktop window, without the
// simulator.
//
// It lays out a simulator root the way the plugin expects it: apps are read
// from <root>/Resources/plugins/SkyScript/apps and the configuration from
// <root>/Output/SkyScript/skyscript.yaml. Apps start hidden. F1 to F12
// toggle them in name order; drag a window by its title strip and resize it
// by its bottom-right corner.
//
// Example usage:
//
//	skyview -root ~/X-Plane\ 12
//	skyview -root . -config dev.yaml
//	skyview -print-config >skyscript.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"golang.org/x/xerrors"

	"github.com/x-z7a/skyscript/app"
	"github.com/x-z7a/skyscript/config"
	"github.com/x-z7a/skyscript/host"
	"github.com/x-z7a/skyscript/host/desktop"
	"github.com/x-z7a/skyscript/logging"
	"github.com/x-z7a/skyscript/manager"
	"github.com/x-z7a/skyscript/telemetry"
	"github.com/x-z7a/skyscript/view/echo"
)

var (
	rootFlag        = flag.String("root", ".", "simulator root `directory`")
	configFlag      = flag.String("config", "", "configuration `file` (default <root>/Output/SkyScript/skyscript.yaml)")
	printConfigFlag = flag.Bool("print-config", false, "print the effective configuration and exit")
	showFlag        = flag.Bool("show", false, "show every app at startup")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: skyview [flags]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "skyview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	paths := manager.NewPaths(*rootFlag)
	cfgPath := *configFlag
	if cfgPath == "" {
		cfgPath = filepath.Join(paths.OutputDir, config.FileName)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if *printConfigFlag {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := paths.Prepare(); err != nil {
		return err
	}

	w, closeLog, err := openLog(cfg, paths.OutputDir)
	if err != nil {
		return err
	}
	defer closeLog()
	log, err := logging.New(cfg.LoggingOptions(), w)
	if err != nil {
		return err
	}
	id := manager.PluginIdentity(manager.Version)
	log.Info("starting", "name", id.Name, "root", paths.Root, "config", cfgPath)

	tel, err := telemetry.Setup(telemetry.Options{
		Enabled:        cfg.Telemetry.Enabled,
		Log:            log.WithName("telemetry"),
		ServiceVersion: manager.Version,
	})
	if err != nil {
		return err
	}
	defer func() {
		ctx := context.Background()
		if err := tel.Report(ctx); err != nil {
			log.Error(err, "telemetry report")
		}
		if err := tel.Shutdown(ctx); err != nil {
			log.Error(err, "telemetry shutdown")
		}
	}()

	return desktop.Main(desktop.Options{Title: id.Name, Log: log.WithName("desktop")}, func(d *desktop.Driver) error {
		return runApps(d, cfg, paths, log, tel)
	})
}

// runApps is the pipeline: it runs on the desktop driver's goroutine.
func runApps(d *desktop.Driver, cfg *config.Config, paths manager.Paths, log logr.Logger, tel *telemetry.Telemetry) error {
	ctx := context.Background()
	opts := appOptions(cfg)
	opts.Metrics = tel.Metrics
	m := manager.New(manager.Options{
		Host:   d.WM(),
		Paths:  paths,
		App:    opts,
		Log:    log.WithName("manager"),
		Tracer: tel.Tracer,
	})
	defer m.Close()
	m.Enable()
	defer m.Disable()

	if err := m.Discover(ctx); err != nil {
		return err
	}
	root := rendererRoot(paths.PluginDir, cfg.Apps.Dir)
	m.InitializeAll(ctx, echo.New(os.DirFS(root), log.WithName("echo")))
	if *showFlag {
		for _, name := range m.Names() {
			m.Toggle(name)
		}
	}
	for _, h := range d.WM().Hotkeys() {
		log.Info("hotkey", "key", fmt.Sprintf("F%d", int(h.Key-host.VKF1)+1), "app", h.Item)
	}

	d.Run(func() {
		m.Update()
		m.Prepare()
	})
	return nil
}

// appOptions returns the app options cfg describes.
func appOptions(cfg *config.Config) app.Options {
	return app.Options{
		AppsDir:        cfg.Apps.Dir,
		ViewSize:       image.Pt(cfg.View.Width, cfg.View.Height),
		UserStylesheet: cfg.View.UserStylesheet,
		Offset:         cfg.Window.Offset,
		MinSize:        image.Pt(cfg.Window.MinWidth, cfg.Window.MinHeight),
		MaxSize:        image.Pt(cfg.Window.MaxWidth, cfg.Window.MaxHeight),
		PixelsPerClick: cfg.Input.ScrollPixelsPerClick,
		ResizeInterval: cfg.Render.ResizeCheckInterval,
	}
}

// rendererRoot returns the directory the renderer resolves file URLs
// against. App URLs carry the apps directory as configured, which is
// relative to the plugin directory unless absolute.
func rendererRoot(pluginDir, appsDir string) string {
	if filepath.IsAbs(appsDir) {
		return "/"
	}
	return pluginDir
}

// openLog returns the log destination cfg names, relative to outDir.
func openLog(cfg *config.Config, outDir string) (io.Writer, func(), error) {
	name := cfg.Logging.File
	if name == "" {
		return os.Stderr, func() {}, nil
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(outDir, name)
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, xerrors.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
