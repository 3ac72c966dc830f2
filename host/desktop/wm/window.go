// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"github.com/x-z7a/skyscript/coord"
	"github.com/x-z7a/skyscript/host"
)

// Window is a floating window.
type Window struct {
	m      *WM
	params host.CreateParams

	geom    coord.Rect
	visible bool
	title   string
	limits  [4]int // min width, min height, max width, max height
	dead    bool
}

var _ host.Window = (*Window)(nil)

func (w *Window) Geometry() coord.Rect     { return w.geom }
func (w *Window) SetGeometry(r coord.Rect) { w.geom = r }
func (w *Window) Title() string            { return w.title }
func (w *Window) SetTitle(title string)    { w.title = title }
func (w *Window) Visible() bool            { return w.visible }

func (w *Window) SetResizingLimits(minWidth, minHeight, maxWidth, maxHeight int) {
	w.limits = [4]int{minWidth, minHeight, maxWidth, maxHeight}
}

func (w *Window) resizable() bool {
	return w.limits != [4]int{}
}

// SetVisible shows or hides w. A hidden window loses keyboard focus.
func (w *Window) SetVisible(v bool) {
	if w.dead {
		return
	}
	w.visible = v
	if !v && w.m.focus == w {
		w.m.setFocus(nil)
	}
}

func (w *Window) BringToFront() {
	if !w.dead {
		w.m.raise(w)
	}
}

func (w *Window) TakeKeyboardFocus() {
	if !w.dead {
		w.m.setFocus(w)
	}
}

func (w *Window) Destroy() {
	if w.dead {
		return
	}
	w.dead = true
	w.m.remove(w)
}

func (w *Window) click(x, y int, b host.MouseButton, s host.MouseStatus) int {
	cb := w.params.Callbacks.LeftClick
	if b != host.ButtonPrimary {
		cb = w.params.Callbacks.RightClick
	}
	if cb == nil {
		return 0
	}
	return cb(w, x, y, s, w.params.Refcon)
}

func (w *Window) key(k byte, flags host.KeyFlags, vk host.VirtualKey, losingFocus bool) {
	if cb := w.params.Callbacks.Key; cb != nil {
		cb(w, k, flags, vk, w.params.Refcon, losingFocus)
	}
}
