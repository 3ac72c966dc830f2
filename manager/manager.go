// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manager discovers apps and drives their windows.
//
// A Manager is the plugin's single top-level object. It finds one app per
// directory under the apps directory, adds a menu item for each, initializes
// them once the renderer exists and runs every frame of the render loop.
// Like package app, it must only be used from the host's render thread.
package manager

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/xerrors"

	"github.com/x-z7a/skyscript/app"
	"github.com/x-z7a/skyscript/host"
	"github.com/x-z7a/skyscript/view"
)

// PluginName is the plugin's short name, used for its directories and menu.
const PluginName = "SkyScript"

// Version is the plugin version. Release builds set it with -ldflags -X.
var Version = "dev"

// Identity is what the plugin reports to the host on startup.
type Identity struct {
	Name        string
	Signature   string
	Description string
}

// PluginIdentity returns the plugin's identity for the given version.
func PluginIdentity(version string) Identity {
	return Identity{
		Name:        PluginName + " - " + version + " - ",
		Signature:   "com.github.x-z7a.skyscript",
		Description: "Powerfull JavaScript runtime for X-Plane plugins",
	}
}

// Paths are the plugin's locations under a simulator installation.
type Paths struct {
	Root      string
	PluginDir string
	OutputDir string
	PrefsPath string
}

// NewPaths returns the Paths under the simulator root directory.
func NewPaths(root string) Paths {
	return Paths{
		Root:      root,
		PluginDir: filepath.Join(root, "Resources", "plugins", PluginName),
		OutputDir: filepath.Join(root, "Output", PluginName),
		PrefsPath: filepath.Join(root, "Output", "preferences", PluginName+".prf"),
	}
}

// Prepare creates the output directory.
func (p Paths) Prepare() error {
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return xerrors.Errorf("creating output directory: %w", err)
	}
	return nil
}

// Options configure a Manager.
type Options struct {
	Host  host.Host
	Paths Paths
	// App is the template for every app's options. Its Host is replaced by
	// the Host above. App.AppsDir, relative to the plugin directory unless
	// absolute, defaults to "apps".
	App app.Options

	Log    logr.Logger
	Tracer trace.Tracer
}

// Manager owns every app.
type Manager struct {
	opts     Options
	log      logr.Logger
	menu     host.Menu
	renderer view.Renderer

	apps   []*app.Window
	byName map[string]*app.Window
}

// New returns a Manager and creates its menu. It discovers nothing yet.
func New(opts Options) *Manager {
	if opts.Tracer == nil {
		opts.Tracer = tracenoop.NewTracerProvider().Tracer("")
	}
	opts.App.Host = opts.Host
	if opts.App.AppsDir == "" {
		opts.App.AppsDir = "apps"
	}
	if opts.App.Tracer == nil {
		opts.App.Tracer = opts.Tracer
	}
	m := &Manager{
		opts:   opts,
		log:    opts.Log,
		byName: make(map[string]*app.Window),
	}
	if opts.Host != nil {
		m.menu = opts.Host.CreateMenu(PluginName, m.menuSelected)
	}
	return m
}

// AppsDir returns the directory searched for apps.
func (m *Manager) AppsDir() string {
	dir := m.opts.App.AppsDir
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.opts.Paths.PluginDir, dir)
}

// Discover adds an app for every directory in the apps directory that is not
// known yet, in name order. A missing apps directory is logged and is not an
// error.
func (m *Manager) Discover(ctx context.Context) error {
	dir := m.AppsDir()
	_, span := m.opts.Tracer.Start(ctx, "manager.Discover", trace.WithAttributes(attribute.String("dir", dir)))
	defer span.End()

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		m.log.Info("apps directory does not exist", "dir", dir)
		return nil
	}
	if err != nil {
		span.RecordError(err)
		return xerrors.Errorf("discovering apps: %w", err)
	}
	// ReadDir sorts by file name.
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if _, ok := m.byName[name]; ok {
			continue
		}
		appDir := filepath.Join(dir, name)
		m.log.Info("discovered app", "app", name, "dir", appDir)
		w := app.New(name, appDir, m.opts.App)
		m.apps = append(m.apps, w)
		m.byName[name] = w
		if m.menu != nil {
			m.menu.AppendItem(name, name)
		}
	}
	span.SetAttributes(attribute.Int("apps", len(m.apps)))
	return nil
}

// Apps returns the discovered apps in name order.
func (m *Manager) Apps() []*app.Window {
	return append([]*app.Window(nil), m.apps...)
}

// App returns the app called name, or nil.
func (m *Manager) App(name string) *app.Window { return m.byName[name] }

// Names returns the names of the discovered apps, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.apps))
	for _, w := range m.apps {
		names = append(names, w.Name())
	}
	sort.Strings(names)
	return names
}

// InitializeAll initializes every app with r. Apps discovered later are not
// initialized by it.
func (m *Manager) InitializeAll(ctx context.Context, r view.Renderer) {
	m.renderer = r
	for _, w := range m.apps {
		w.Initialize(ctx, r)
	}
}

// Update lets the renderer service timers and loading. It runs once per
// iteration of the host's flight loop.
func (m *Manager) Update() {
	if m.renderer == nil {
		return
	}
	m.renderer.Update()
}

// Prepare brings the textures of visible apps up to date: it marks their
// views for repaint, renders, and uploads the result.
func (m *Manager) Prepare() {
	if m.renderer == nil {
		return
	}
	visible := m.visible()
	for _, w := range visible {
		w.ForceRepaint()
	}
	m.renderer.Render()
	for _, w := range visible {
		w.UpdateTexture()
	}
}

// Frame is the draw-phase callback: Prepare, then draw every visible app.
// Hosts that call the window Draw callbacks themselves use Prepare alone.
func (m *Manager) Frame() {
	if m.renderer == nil {
		return
	}
	m.Prepare()
	for _, w := range m.visible() {
		w.Draw()
	}
}

func (m *Manager) visible() []*app.Window {
	var vs []*app.Window
	for _, w := range m.apps {
		if w.IsVisible() {
			vs = append(vs, w)
		}
	}
	return vs
}

// Toggle shows or hides the app called name.
func (m *Manager) Toggle(name string) {
	w, ok := m.byName[name]
	if !ok {
		m.log.Info("app not found", "app", name)
		return
	}
	w.Toggle()
	m.log.Info("toggled app", "app", name, "visible", w.IsVisible())
}

func (m *Manager) menuSelected(ref host.Refcon) {
	name, ok := ref.(string)
	if !ok {
		m.log.Info("menu item selected without an app")
		return
	}
	m.Toggle(name)
}

// Enable and Disable follow the host's plugin lifecycle.
func (m *Manager) Enable()  { m.log.Info("plugin enabled") }
func (m *Manager) Disable() { m.log.Info("plugin disabled") }

// Close closes every app.
func (m *Manager) Close() {
	for _, w := range m.apps {
		w.Close()
	}
	m.renderer = nil
}
