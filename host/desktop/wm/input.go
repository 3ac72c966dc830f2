// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"github.com/x-z7a/skyscript/host"
)

// hit returns the topmost visible window containing (x, y), counting its
// title strip, or nil.
func (m *WM) hit(x, y int) *Window {
	for i := len(m.windows) - 1; i >= 0; i-- {
		w := m.windows[i]
		if !w.visible {
			continue
		}
		if w.geom.Contains(x, y) || titleRect(w.geom).Contains(x, y) {
			return w
		}
	}
	return nil
}

// MouseDown handles a button press at host-frame (x, y).
//
// A press on a title strip starts moving the window and one on a resize grip
// starts resizing it. Otherwise the press goes to the window under the
// pointer, then to the windows below it for as long as they decline it.
// The window that accepts it receives the drag and release that follow.
// A press on no window takes keyboard focus away from every window.
func (m *WM) MouseDown(x, y int, b host.MouseButton) {
	if m.drag.kind != dragNone {
		return
	}
	top := m.hit(x, y)
	if top == nil {
		m.setFocus(nil)
		return
	}
	m.raise(top)
	if b == host.ButtonPrimary {
		switch {
		case titleRect(top.geom).Contains(x, y):
			m.drag = drag{kind: dragMove, w: top, button: b, x0: x, y0: y, g0: top.geom}
			return
		case top.resizable() && gripRect(top.geom).Contains(x, y):
			m.drag = drag{kind: dragResize, w: top, button: b, x0: x, y0: y, g0: top.geom}
			return
		}
	}
	for i := len(m.windows) - 1; i >= 0; i-- {
		w := m.windows[i]
		if !w.visible || !w.geom.Contains(x, y) {
			continue
		}
		if w.click(x, y, b, host.MouseDown) != 0 {
			m.drag = drag{kind: dragClick, w: w, button: b, x0: x, y0: y, g0: w.geom}
			return
		}
	}
}

// MouseMove handles pointer motion to host-frame (x, y).
func (m *WM) MouseMove(x, y int) {
	d := m.drag
	dx, dy := x-d.x0, y-d.y0
	switch d.kind {
	case dragMove:
		d.w.geom = d.g0.Offset(dx, dy)
	case dragResize:
		lim := d.w.limits
		width := clamp(d.g0.Width()+dx, lim[0], lim[2])
		height := clamp(d.g0.Height()-dy, lim[1], lim[3])
		g := d.g0
		g.Right = g.Left + width
		g.Bottom = g.Top - height
		d.w.geom = g
	case dragClick:
		d.w.click(x, y, d.button, host.MouseDrag)
	default:
		w := m.hit(x, y)
		if w == nil || !w.geom.Contains(x, y) {
			return
		}
		if cb := w.params.Callbacks.Cursor; cb != nil {
			cb(w, x, y, w.params.Refcon)
		}
	}
}

// MouseUp handles a button release at host-frame (x, y).
func (m *WM) MouseUp(x, y int, b host.MouseButton) {
	d := m.drag
	if d.kind == dragNone || d.button != b {
		return
	}
	m.drag = drag{}
	if d.kind == dragClick && !d.w.dead {
		d.w.click(x, y, b, host.MouseUp)
	}
}

// Scroll handles a vertical wheel movement at host-frame (x, y). It goes to
// the topmost window under the pointer that accepts it.
func (m *WM) Scroll(x, y, clicks int) {
	for i := len(m.windows) - 1; i >= 0; i-- {
		w := m.windows[i]
		if !w.visible || !w.geom.Contains(x, y) {
			continue
		}
		cb := w.params.Callbacks.Wheel
		if cb != nil && cb(w, x, y, 0, clicks, w.params.Refcon) != 0 {
			return
		}
	}
}

// Key handles a key event. Presses of F1 to F12 select the menu item bound
// to them. Everything else goes to the window holding keyboard focus.
func (m *WM) Key(k byte, flags host.KeyFlags, vk host.VirtualKey) {
	if vk >= host.VKF1 && vk <= host.VKF12 {
		if flags&host.DownFlag != 0 {
			m.selectHotkey(int(vk - host.VKF1))
		}
		return
	}
	if m.focus != nil {
		m.focus.key(k, flags, vk, false)
	}
}
