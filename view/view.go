// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view defines the contract between the window pipeline and the
// embedded browser engine.
//
// The engine is opaque: it renders each View into a surface.Surface and
// consumes the mouse, key and scroll events defined here. Everything in this
// package describes what the pipeline needs from an engine, not how an
// engine works.
package view

import (
	"image"

	"github.com/x-z7a/skyscript/surface"
)

// Renderer creates views and drives the engine. Update services timers and
// loading; Render paints every view that needs it into its surface.
type Renderer interface {
	CreateView(size image.Point, opts *Options) View
	Update()
	Render()
}

// Options are optional arguments to CreateView.
type Options struct {
	// Transparent asks for a view whose background is not painted.
	Transparent bool
	// UserStylesheet is CSS applied to every page loaded in the view.
	UserStylesheet string
}

// View is one page rendered off-screen.
type View interface {
	// Surface returns the view's pixels. It may return nil until the first
	// Render.
	Surface() surface.Surface

	// Resize changes the view's pixel dimensions. The surface follows on the
	// next Render.
	Resize(size image.Point)

	LoadURL(url string)

	// SetNeedsPaint forces the next Render to repaint the whole view.
	SetNeedsPaint(b bool)

	Focus()
	Unfocus()

	FireMouseEvent(e MouseEvent)
	FireKeyEvent(e KeyEvent)
	FireScrollEvent(e ScrollEvent)

	SetViewListener(l ViewListener)
	SetLoadListener(l LoadListener)
}

// ConsoleMessage is a message logged by a page's scripts.
type ConsoleMessage struct {
	Source   string
	Level    string
	Message  string
	Line     int
	Column   int
	SourceID string
}

// ViewListener receives view-level notifications.
type ViewListener interface {
	OnChangeTitle(v View, title string)
	OnAddConsoleMessage(v View, msg ConsoleMessage)
}

// Frame identifies the frame a load notification is about.
type Frame struct {
	ID          uint64
	IsMainFrame bool
	URL         string
}

// LoadError describes a failed load.
type LoadError struct {
	Description string
	Domain      string
	Code        int
}

func (e LoadError) Error() string {
	return e.Domain + ": " + e.Description
}

// LoadListener receives page loading notifications.
type LoadListener interface {
	OnBeginLoading(v View, f Frame)
	OnFinishLoading(v View, f Frame)
	OnFailLoading(v View, f Frame, err LoadError)
	OnDOMReady(v View, f Frame)
}
