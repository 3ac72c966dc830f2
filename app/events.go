// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"

	"github.com/x-z7a/skyscript/host"
	"github.com/x-z7a/skyscript/input"
	"github.com/x-z7a/skyscript/telemetry"
)

// OnMouseClick delivers a click at host-frame (x, y). A press first takes
// keyboard focus for the host window and focuses the view, so that the view
// sees the press as focused. It returns 1 if the click was consumed.
func (w *Window) OnMouseClick(x, y int, b host.MouseButton, s host.MouseStatus) int {
	if w.view == nil || w.win == nil {
		return 0
	}
	m := input.Click(w.win.Geometry(), x, y, b, s)
	if !m.OK {
		return 0
	}
	if m.Focus {
		w.win.TakeKeyboardFocus()
		w.view.Focus()
	}
	w.view.FireMouseEvent(m.Event)
	w.opts.Metrics.Input(context.Background(), w.name, telemetry.InputClick)
	return 1
}

// OnMouseMove delivers a cursor move over the window.
func (w *Window) OnMouseMove(x, y int) int {
	if w.view == nil || w.win == nil {
		return 0
	}
	w.view.FireMouseEvent(input.Move(w.win.Geometry(), x, y))
	w.opts.Metrics.Input(context.Background(), w.name, telemetry.InputMove)
	return 1
}

// OnScroll delivers a wheel movement. Only vertical scrolling is supported,
// whichever wheel moved.
func (w *Window) OnScroll(x, y, wheel, clicks int) int {
	if w.view == nil {
		return 0
	}
	w.view.FireScrollEvent(input.Scroll(clicks, w.opts.PixelsPerClick))
	w.opts.Metrics.Input(context.Background(), w.name, telemetry.InputScroll)
	return 1
}

// OnKey delivers a key event, or unfocuses the view if the host window is
// losing keyboard focus.
func (w *Window) OnKey(k byte, flags host.KeyFlags, vk host.VirtualKey, losingFocus bool) {
	if w.view == nil {
		return
	}
	if losingFocus {
		w.view.Unfocus()
		return
	}
	es := input.Key(k, flags, vk)
	if len(es) == 0 {
		return
	}
	for _, e := range es {
		w.view.FireKeyEvent(e)
	}
	w.opts.Metrics.Input(context.Background(), w.name, telemetry.InputKey)
}

// The host callbacks. Each recovers its Window from the refcon registered
// in Initialize.

func fromRefcon(ref host.Refcon) *Window {
	w, _ := ref.(*Window)
	return w
}

func drawWindow(_ host.Window, ref host.Refcon) {
	if w := fromRefcon(ref); w != nil {
		w.Draw()
	}
}

func leftClick(_ host.Window, x, y int, s host.MouseStatus, ref host.Refcon) int {
	if w := fromRefcon(ref); w != nil {
		return w.OnMouseClick(x, y, host.ButtonPrimary, s)
	}
	return 0
}

func rightClick(_ host.Window, x, y int, s host.MouseStatus, ref host.Refcon) int {
	if w := fromRefcon(ref); w != nil {
		return w.OnMouseClick(x, y, host.ButtonSecondary, s)
	}
	return 0
}

func mouseWheel(_ host.Window, x, y, wheel, clicks int, ref host.Refcon) int {
	if w := fromRefcon(ref); w != nil {
		return w.OnScroll(x, y, wheel, clicks)
	}
	return 0
}

func keyPress(_ host.Window, k byte, flags host.KeyFlags, vk host.VirtualKey, ref host.Refcon, losingFocus bool) {
	if w := fromRefcon(ref); w != nil {
		w.OnKey(k, flags, vk, losingFocus)
	}
}

func cursorMove(_ host.Window, x, y int, ref host.Refcon) host.CursorStatus {
	if w := fromRefcon(ref); w != nil {
		w.OnMouseMove(x, y)
	}
	return host.CursorDefault
}
