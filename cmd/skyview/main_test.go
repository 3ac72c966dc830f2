// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/x-z7a/skyscript/app"
	"github.com/x-z7a/skyscript/config"
)

func TestAppOptions(t *testing.T) {
	got := appOptions(config.Default())
	want := app.Options{
		AppsDir:        "apps",
		ViewSize:       image.Pt(800, 600),
		Offset:         100,
		MinSize:        image.Pt(200, 200),
		MaxSize:        image.Pt(2000, 2000),
		PixelsPerClick: 30,
		ResizeInterval: 10,
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(app.Options{}, "Log")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestConfiguredOffset(t *testing.T) {
	cfg, err := config.Parse([]byte("window:\n  offset: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := appOptions(cfg).Offset; got != 1 {
		t.Errorf("Offset: got %d, want 1", got)
	}
	if _, err := config.Parse([]byte("window:\n  offset: 0\n")); err == nil {
		t.Errorf("offset 0 was accepted; it would silently become the default")
	}
}

func TestRendererRoot(t *testing.T) {
	plugin := filepath.Join("sim", "Resources", "plugins", "SkyScript")
	if got := rendererRoot(plugin, "apps"); got != plugin {
		t.Errorf("relative: got %q, want %q", got, plugin)
	}
	if got := rendererRoot(plugin, "/srv/apps"); got != "/" {
		t.Errorf("absolute: got %q, want /", got)
	}
}

func TestOpenLog(t *testing.T) {
	cfg := config.Default()
	w, closeLog, err := openLog(cfg, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	closeLog()
	if w != os.Stderr {
		t.Errorf("no file: got %v, want stderr", w)
	}

	dir := t.TempDir()
	cfg.Logging.File = "skyscript.log"
	w, closeLog, err = openLog(cfg, dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatal(err)
	}
	closeLog()
	data, err := os.ReadFile(filepath.Join(dir, "skyscript.log"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\n" {
		t.Errorf("log file: got %q", data)
	}

	cfg.Logging.File = filepath.Join(dir, "missing", "x.log")
	if _, _, err := openLog(cfg, dir); err == nil {
		t.Errorf("opening a log in a missing directory succeeded")
	}
}
