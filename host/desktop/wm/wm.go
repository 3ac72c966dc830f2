// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wm manages the floating windows of the desktop host.
//
// A WM implements host.Host over a single drawing area. It keeps windows in
// stacking order, routes input to them the way the simulator does, and lets
// the user move windows by their title strip and resize them by the grip in
// their bottom-right corner. It knows nothing about the OS window or GL:
// drawing goes through the host.Graphics, texture.GPU and Decorator it was
// created with.
//
// A WM is not safe for concurrent use.
package wm

import (
	"image/color"

	"github.com/x-z7a/skyscript/coord"
	"github.com/x-z7a/skyscript/host"
	"github.com/x-z7a/skyscript/texture"
)

// Chrome dimensions, in pixels.
const (
	TitleHeight = 20
	GripSize    = 14
)

var (
	titleColor        = color.RGBA{0x3a, 0x3a, 0x3a, 0xff}
	focusedTitleColor = color.RGBA{0x2d, 0x5d, 0x9f, 0xff}
	gripColor         = color.RGBA{0x80, 0x80, 0x80, 0xc0}
)

// Decorator draws window chrome.
type Decorator interface {
	FillRect(r coord.Rect, c color.RGBA)
}

type dragKind int

const (
	dragNone dragKind = iota
	dragMove
	dragResize
	dragClick
)

type drag struct {
	kind   dragKind
	w      *Window
	button host.MouseButton
	// Pointer position and geometry when the drag started.
	x0, y0 int
	g0     coord.Rect
}

// WM is a window manager.
type WM struct {
	screen coord.Rect
	gfx    host.Graphics
	gpu    texture.GPU
	deco   Decorator

	windows []*Window // back to front
	focus   *Window
	drag    drag

	menus   []*Menu
	hotkeys []hotkey
}

var _ host.Host = (*WM)(nil)

// New returns a WM for a drawing area with the given bounds in the host
// frame.
func New(screen coord.Rect, gfx host.Graphics, gpu texture.GPU, deco Decorator) *WM {
	return &WM{screen: screen, gfx: gfx, gpu: gpu, deco: deco}
}

func (m *WM) ScreenBounds() coord.Rect { return m.screen }

// SetScreenBounds updates the drawing area after the OS window was resized.
func (m *WM) SetScreenBounds(r coord.Rect) { m.screen = r }

func (m *WM) Graphics() host.Graphics { return m.gfx }
func (m *WM) GPU() texture.GPU        { return m.gpu }

func (m *WM) CreateWindow(p host.CreateParams) host.Window {
	w := &Window{m: m, params: p, geom: p.Geometry, visible: p.Visible}
	m.windows = append(m.windows, w)
	return w
}

// Windows returns the live windows, back to front.
func (m *WM) Windows() []*Window {
	return append([]*Window(nil), m.windows...)
}

// Focus returns the window holding keyboard focus, or nil.
func (m *WM) Focus() *Window { return m.focus }

func (m *WM) indexOf(w *Window) int {
	for i, o := range m.windows {
		if o == w {
			return i
		}
	}
	return -1
}

func (m *WM) raise(w *Window) {
	i := m.indexOf(w)
	if i < 0 {
		return
	}
	copy(m.windows[i:], m.windows[i+1:])
	m.windows[len(m.windows)-1] = w
}

func (m *WM) remove(w *Window) {
	i := m.indexOf(w)
	if i < 0 {
		return
	}
	m.windows = append(m.windows[:i], m.windows[i+1:]...)
	if m.focus == w {
		m.focus = nil
	}
	if m.drag.w == w {
		m.drag = drag{}
	}
}

// setFocus gives keyboard focus to w, which may be nil. The previous holder
// is told it lost focus.
func (m *WM) setFocus(w *Window) {
	prev := m.focus
	if prev == w {
		return
	}
	m.focus = w
	if prev != nil {
		prev.key(0, 0, 0, true)
	}
}

// Draw draws every visible window, back to front, with its chrome.
func (m *WM) Draw() {
	for _, w := range m.windows {
		if !w.visible {
			continue
		}
		g := w.geom
		c := titleColor
		if w == m.focus {
			c = focusedTitleColor
		}
		if m.deco != nil {
			m.deco.FillRect(titleRect(g), c)
		}
		if cb := w.params.Callbacks.Draw; cb != nil {
			cb(w, w.params.Refcon)
		}
		if m.deco != nil && w.resizable() {
			m.deco.FillRect(gripRect(g), gripColor)
		}
	}
}

func titleRect(g coord.Rect) coord.Rect {
	return coord.Rect{Left: g.Left, Top: g.Top + TitleHeight, Right: g.Right, Bottom: g.Top}
}

func gripRect(g coord.Rect) coord.Rect {
	return coord.Rect{Left: g.Right - GripSize, Top: g.Bottom + GripSize, Right: g.Right, Bottom: g.Bottom}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if hi > 0 && v > hi {
		return hi
	}
	return v
}
