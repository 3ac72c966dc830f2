// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app implements the per-app window: one embedded view shown in one
// host window.
//
// A Window goes through four states. New returns it uninitialized.
// Initialize attaches a view and a hidden host window. Show, Hide and Toggle
// move it between visible and hidden, and Close releases everything.
//
// All methods must be called from the host's render thread. The host's
// callbacks arrive there, and the view and texture are not safe for
// concurrent use. No method returns an error or panics: a Window missing its
// view or host window silently ignores work that needs them.
package app

import (
	"context"
	"image"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/x-z7a/skyscript/coord"
	"github.com/x-z7a/skyscript/host"
	"github.com/x-z7a/skyscript/input"
	"github.com/x-z7a/skyscript/telemetry"
	"github.com/x-z7a/skyscript/texture"
	"github.com/x-z7a/skyscript/view"
)

// Default values for Options.
const (
	DefaultWidth          = 800
	DefaultHeight         = 600
	DefaultOffset         = 100
	DefaultMinSize        = 200
	DefaultMaxSize        = 2000
	DefaultResizeInterval = 10
)

// Options configure a Window. Zero fields take the defaults above.
type Options struct {
	Host host.Host
	// AppsDir is the directory holding the app directories, as seen by the
	// renderer's file system.
	AppsDir string

	ViewSize       image.Point
	UserStylesheet string
	// Offset places new windows this far right of and below the screen's
	// top-left corner.
	Offset  int
	MinSize image.Point
	MaxSize image.Point

	PixelsPerClick int
	// ResizeInterval is the number of CheckResize calls per geometry check.
	ResizeInterval int

	Log     logr.Logger
	Metrics *telemetry.Metrics
	Tracer  trace.Tracer
}

func (o *Options) fill() {
	if o.ViewSize.X <= 0 || o.ViewSize.Y <= 0 {
		o.ViewSize = image.Pt(DefaultWidth, DefaultHeight)
	}
	if o.Offset <= 0 {
		o.Offset = DefaultOffset
	}
	if o.MinSize.X <= 0 || o.MinSize.Y <= 0 {
		o.MinSize = image.Pt(DefaultMinSize, DefaultMinSize)
	}
	if o.MaxSize.X <= 0 || o.MaxSize.Y <= 0 {
		o.MaxSize = image.Pt(DefaultMaxSize, DefaultMaxSize)
	}
	if o.PixelsPerClick <= 0 {
		o.PixelsPerClick = input.DefaultPixelsPerClick
	}
	if o.ResizeInterval <= 0 {
		o.ResizeInterval = DefaultResizeInterval
	}
	if o.Tracer == nil {
		o.Tracer = tracenoop.NewTracerProvider().Tracer("")
	}
}

// Window is one app: a view and the host window it is composited into.
type Window struct {
	name string
	dir  string
	opts Options
	log  logr.Logger

	// size is the view size last requested. It decides whether the host
	// window has been resized.
	size image.Point
	win  host.Window
	view view.View
	tex  *texture.Syncer

	resizeFrames int
}

// New returns an uninitialized Window for the app called name whose content
// is in dir.
func New(name, dir string, opts Options) *Window {
	opts.fill()
	return &Window{
		name: name,
		dir:  dir,
		opts: opts,
		log:  opts.Log.WithName(name),
		size: opts.ViewSize,
	}
}

// Name returns the app's name.
func (w *Window) Name() string { return w.name }

// Dir returns the app's content directory.
func (w *Window) Dir() string { return w.dir }

// Size returns the current view size.
func (w *Window) Size() image.Point { return w.size }

// Initialized reports whether Initialize attached a view.
func (w *Window) Initialized() bool { return w.view != nil }

// URL returns the file URL of the index page of app name under appsDir.
func URL(appsDir, name string) string {
	p := path.Join(filepath.ToSlash(appsDir), name, "index.html")
	return "file:///" + strings.TrimPrefix(p, "/")
}

// Initialize creates the view and the host window. The window starts hidden.
// Calling Initialize again does nothing.
func (w *Window) Initialize(ctx context.Context, r view.Renderer) {
	if w.view != nil || r == nil {
		return
	}
	_, span := w.opts.Tracer.Start(ctx, "app.Initialize",
		trace.WithAttributes(attribute.String("app", w.name)))
	defer span.End()

	w.log.Info("initializing", "width", w.size.X, "height", w.size.Y)
	v := r.CreateView(w.size, &view.Options{UserStylesheet: w.opts.UserStylesheet})
	if v == nil {
		w.log.Error(nil, "renderer did not create a view")
		span.SetStatus(codes.Error, "no view")
		return
	}
	w.view = v
	v.SetViewListener(&viewListener{w})
	v.SetLoadListener(&loadListener{w})

	url := URL(w.opts.AppsDir, w.name)
	w.log.Info("loading", "url", url)
	v.LoadURL(url)

	h := w.opts.Host
	if h == nil {
		span.SetStatus(codes.Error, "no host")
		return
	}
	screen := h.ScreenBounds()
	geom := coord.XYWH(screen.Left+w.opts.Offset, screen.Top-w.opts.Offset, w.size.X, w.size.Y)
	win := h.CreateWindow(host.CreateParams{
		Geometry: geom,
		Visible:  false,
		Refcon:   w,
		Callbacks: host.Callbacks{
			Draw:       drawWindow,
			LeftClick:  leftClick,
			RightClick: rightClick,
			Wheel:      mouseWheel,
			Key:        keyPress,
			Cursor:     cursorMove,
		},
		Layer:      host.LayerFloatingWindows,
		Decoration: host.DecorationRoundRectangle,
	})
	if win == nil {
		w.log.Error(nil, "host did not create a window")
		span.SetStatus(codes.Error, "no window")
		return
	}
	w.win = win
	win.SetTitle(w.name)
	win.SetResizingLimits(w.opts.MinSize.X, w.opts.MinSize.Y, w.opts.MaxSize.X, w.opts.MaxSize.Y)
	win.SetVisible(false)

	w.tex = texture.NewSyncer(h.GPU(), &texture.SyncerOptions{
		OnUpload: func(u texture.Upload) {
			w.opts.Metrics.Upload(context.Background(), w.name, u)
			if u.Alloc {
				w.log.V(1).Info("texture allocated", "id", u.ID, "size", u.Size)
			}
		},
	})
}

// Show makes the window visible and raises it.
func (w *Window) Show() {
	if w.win == nil {
		return
	}
	w.win.SetVisible(true)
	w.win.BringToFront()
}

// Hide hides the window.
func (w *Window) Hide() {
	if w.win == nil {
		return
	}
	w.win.SetVisible(false)
}

// Toggle shows a hidden window and hides a visible one.
func (w *Window) Toggle() {
	if w.win == nil {
		return
	}
	if w.win.Visible() {
		w.Hide()
	} else {
		w.Show()
	}
}

// IsVisible reports whether the host window exists and is visible.
func (w *Window) IsVisible() bool {
	return w.win != nil && w.win.Visible()
}

// Close deletes the texture and destroys the host window. The view belongs
// to the renderer and is only dropped.
func (w *Window) Close() {
	w.tex.Release()
	w.tex = nil
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	w.view = nil
}
