// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hosttest provides a scriptable host.Host for tests.
//
// Windows created on a Host remember their callbacks and refcon. Tests drive
// them with the Click, Wheel, Key, Cursor and Draw methods, which invoke the
// registered callbacks exactly as a real host would.
package hosttest

import (
	"github.com/x-z7a/skyscript/coord"
	"github.com/x-z7a/skyscript/host"
	"github.com/x-z7a/skyscript/texture"
	"github.com/x-z7a/skyscript/texture/texturetest"
)

// Host is a host.Host with no display behind it.
type Host struct {
	Screen coord.Rect
	// FailCreate makes CreateWindow return nil.
	FailCreate bool

	Windows []*Window
	Menus   []*Menu
	Gfx     Graphics
	Tex     texturetest.GPU

	// Focus is the window holding keyboard focus, if any.
	Focus *Window
	// Order lists visible-or-not windows back to front.
	Order []*Window
}

var _ host.Host = (*Host)(nil)

// New returns a Host with the given screen bounds.
func New(screen coord.Rect) *Host {
	return &Host{Screen: screen}
}

func (h *Host) ScreenBounds() coord.Rect { return h.Screen }

func (h *Host) CreateWindow(p host.CreateParams) host.Window {
	if h.FailCreate {
		return nil
	}
	w := &Window{h: h, Params: p, geom: p.Geometry, visible: p.Visible}
	h.Windows = append(h.Windows, w)
	h.Order = append(h.Order, w)
	return w
}

func (h *Host) CreateMenu(name string, handler func(ref host.Refcon)) host.Menu {
	m := &Menu{Name: name, handler: handler}
	h.Menus = append(h.Menus, m)
	return m
}

func (h *Host) Graphics() host.Graphics { return &h.Gfx }
func (h *Host) GPU() texture.GPU        { return &h.Tex }

// Front returns the frontmost window, or nil.
func (h *Host) Front() *Window {
	if len(h.Order) == 0 {
		return nil
	}
	return h.Order[len(h.Order)-1]
}

// Window is a host.Window whose callbacks are invoked by the test.
type Window struct {
	h      *Host
	Params host.CreateParams

	geom    coord.Rect
	visible bool

	Title      string
	Limits     [4]int
	Destroyed  bool
	FocusTaken int
}

var _ host.Window = (*Window)(nil)

func (w *Window) Geometry() coord.Rect     { return w.geom }
func (w *Window) SetGeometry(r coord.Rect) { w.geom = r }
func (w *Window) SetTitle(title string)    { w.Title = title }
func (w *Window) Visible() bool            { return w.visible }
func (w *Window) SetVisible(v bool)        { w.visible = v }

func (w *Window) SetResizingLimits(minWidth, minHeight, maxWidth, maxHeight int) {
	w.Limits = [4]int{minWidth, minHeight, maxWidth, maxHeight}
}

func (w *Window) BringToFront() {
	for i, o := range w.h.Order {
		if o == w {
			w.h.Order = append(w.h.Order[:i], w.h.Order[i+1:]...)
			break
		}
	}
	w.h.Order = append(w.h.Order, w)
}

// TakeKeyboardFocus moves focus to w. The previous holder's Key callback is
// called with losingFocus set, as the host does.
func (w *Window) TakeKeyboardFocus() {
	w.FocusTaken++
	prev := w.h.Focus
	w.h.Focus = w
	if prev != nil && prev != w {
		prev.Key(0, 0, 0, true)
	}
}

func (w *Window) Destroy() {
	w.Destroyed = true
	if w.h.Focus == w {
		w.h.Focus = nil
	}
	for i, o := range w.h.Order {
		if o == w {
			w.h.Order = append(w.h.Order[:i], w.h.Order[i+1:]...)
			break
		}
	}
}

// Draw invokes the draw callback.
func (w *Window) Draw() {
	if cb := w.Params.Callbacks.Draw; cb != nil {
		cb(w, w.Params.Refcon)
	}
}

// Click invokes the left-click callback, or the right-click one if right is
// set, and returns its result. It returns 0 if there is no callback.
func (w *Window) Click(x, y int, status host.MouseStatus, right bool) int {
	cb := w.Params.Callbacks.LeftClick
	if right {
		cb = w.Params.Callbacks.RightClick
	}
	if cb == nil {
		return 0
	}
	return cb(w, x, y, status, w.Params.Refcon)
}

// Wheel invokes the mouse wheel callback.
func (w *Window) Wheel(x, y, wheel, clicks int) int {
	if cb := w.Params.Callbacks.Wheel; cb != nil {
		return cb(w, x, y, wheel, clicks, w.Params.Refcon)
	}
	return 0
}

// Key invokes the key callback.
func (w *Window) Key(key byte, flags host.KeyFlags, vk host.VirtualKey, losingFocus bool) {
	if cb := w.Params.Callbacks.Key; cb != nil {
		cb(w, key, flags, vk, w.Params.Refcon, losingFocus)
	}
}

// Cursor invokes the cursor callback.
func (w *Window) Cursor(x, y int) host.CursorStatus {
	if cb := w.Params.Callbacks.Cursor; cb != nil {
		return cb(w, x, y, w.Params.Refcon)
	}
	return host.CursorDefault
}

// Menu records appended items. Select simulates the user choosing one.
type Menu struct {
	Name  string
	Items []MenuItem

	handler func(ref host.Refcon)
}

// MenuItem is one appended menu item.
type MenuItem struct {
	Name   string
	Refcon host.Refcon
}

func (m *Menu) AppendItem(name string, ref host.Refcon) int {
	m.Items = append(m.Items, MenuItem{Name: name, Refcon: ref})
	return len(m.Items) - 1
}

// Select invokes the menu handler with item i's refcon.
func (m *Menu) Select(i int) {
	if m.handler != nil && i >= 0 && i < len(m.Items) {
		m.handler(m.Items[i].Refcon)
	}
}

// Graphics records graphics calls.
type Graphics struct {
	States []host.GraphicsState
	Binds  []texture.ID
	Quads  [][4]host.Vertex
	// Log has "State", "Bind" and "Quad" appended on each call.
	Log []string
}

var _ host.Graphics = (*Graphics)(nil)

func (g *Graphics) SetGraphicsState(s host.GraphicsState) {
	g.States = append(g.States, s)
	g.Log = append(g.Log, "State")
}

func (g *Graphics) BindTexture(id texture.ID, unit int) {
	g.Binds = append(g.Binds, id)
	g.Log = append(g.Log, "Bind")
}

func (g *Graphics) DrawQuad(q [4]host.Vertex) {
	g.Quads = append(g.Quads, q)
	g.Log = append(g.Log, "Quad")
}
