// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host defines the simulator-side windowing API the pipeline runs
// inside of.
//
// The host owns the main loop. It creates windows from a bundle of callbacks
// plus an opaque reference (the refcon) chosen by the window's creator, and
// later invokes those callbacks on its render thread, passing the refcon
// back. Geometry is in the host window frame: origin at the bottom-left of
// the screen, Y increasing upward (see package coord).
//
// Mouse status, key flags and virtual key codes follow the host's own
// encodings, which are reproduced here.
package host

import (
	"github.com/x-z7a/skyscript/coord"
	"github.com/x-z7a/skyscript/texture"
)

// Refcon is the value a window's creator registers with its callbacks. The
// host never looks inside it.
type Refcon interface{}

// MouseStatus is the phase of a mouse click.
type MouseStatus int

const (
	MouseDown MouseStatus = 1
	MouseDrag MouseStatus = 2
	MouseUp   MouseStatus = 3
)

func (s MouseStatus) String() string {
	switch s {
	case MouseDown:
		return "down"
	case MouseDrag:
		return "drag"
	case MouseUp:
		return "up"
	}
	return "unknown"
}

// MouseButton is the host's button code: zero for the primary button, any
// other value for the secondary one.
type MouseButton int

const (
	ButtonPrimary   MouseButton = 0
	ButtonSecondary MouseButton = 1
)

// KeyFlags is the modifier and phase bitmask of a key event.
type KeyFlags uint8

const (
	ShiftFlag     KeyFlags = 1
	OptionAltFlag KeyFlags = 2
	ControlFlag   KeyFlags = 4
	DownFlag      KeyFlags = 8
	UpFlag        KeyFlags = 16
)

// CursorStatus is what a cursor callback asks the host to show.
type CursorStatus int

const (
	CursorDefault CursorStatus = iota
	CursorHidden
	CursorArrow
	CursorCustom
)

// Layer is the stacking layer a window lives in.
type Layer int

const (
	LayerFlightOverlay Layer = iota
	LayerFloatingWindows
	LayerModal
	LayerGrowlNotifications
)

// Decoration is the chrome the host draws around a window.
type Decoration int

const (
	DecorationNone Decoration = iota
	DecorationRoundRectangle
	DecorationSelfDecorated
	DecorationSelfDecoratedResizable
)

// Callbacks are the functions a host window calls back into. Any of them may
// be nil. The int results of the mouse callbacks report whether the event was
// consumed (non-zero) or should pass through to what is behind the window.
type Callbacks struct {
	Draw       func(w Window, ref Refcon)
	LeftClick  func(w Window, x, y int, status MouseStatus, ref Refcon) int
	RightClick func(w Window, x, y int, status MouseStatus, ref Refcon) int
	Wheel      func(w Window, x, y, wheel, clicks int, ref Refcon) int
	Key        func(w Window, key byte, flags KeyFlags, vk VirtualKey, ref Refcon, losingFocus bool)
	Cursor     func(w Window, x, y int, ref Refcon) CursorStatus
}

// CreateParams are the arguments to Host.CreateWindow.
type CreateParams struct {
	Geometry   coord.Rect
	Visible    bool
	Refcon     Refcon
	Callbacks  Callbacks
	Layer      Layer
	Decoration Decoration
}

// Window is a host-native window.
type Window interface {
	Geometry() coord.Rect
	SetGeometry(r coord.Rect)
	SetResizingLimits(minWidth, minHeight, maxWidth, maxHeight int)
	SetTitle(title string)

	Visible() bool
	SetVisible(visible bool)
	BringToFront()

	// TakeKeyboardFocus routes key events to this window until another
	// window takes focus, at which point this window's Key callback sees
	// losingFocus.
	TakeKeyboardFocus()

	Destroy()
}

// Menu is a host menu whose items carry a Refcon handed back on selection.
type Menu interface {
	AppendItem(name string, ref Refcon) int
}

// GraphicsState configures the fixed-function state for the next draws.
type GraphicsState struct {
	Fog           bool
	TextureUnits  int
	Lighting      bool
	AlphaTesting  bool
	AlphaBlending bool
	DepthTesting  bool
	DepthWriting  bool
}

// Vertex is a textured vertex in the host window frame.
type Vertex struct {
	X, Y float32
	U, V float32
}

// Graphics draws into the host's framebuffer during a Draw callback.
type Graphics interface {
	SetGraphicsState(s GraphicsState)
	BindTexture(id texture.ID, unit int)
	// DrawQuad draws the bound texture, unmodulated, on the quad with
	// corners q, in order.
	DrawQuad(q [4]Vertex)
}

// Host is the windowing API of the simulator.
type Host interface {
	// ScreenBounds returns the global desktop bounds in the host frame.
	ScreenBounds() coord.Rect

	// CreateWindow creates a window. It returns nil if the host could not
	// create one.
	CreateWindow(p CreateParams) Window

	// CreateMenu adds a menu under the host's plugin menu. handler is
	// called with the Refcon of the selected item.
	CreateMenu(name string, handler func(ref Refcon)) Menu

	Graphics() Graphics
	GPU() texture.GPU
}
