// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input translates host mouse, wheel and keyboard primitives into
// view events.
//
// The functions here are pure: they take the window geometry current at the
// time of the event and return the events to fire, in order. Side effects on
// focus are left to the caller, which is told when to take focus.
package input

import (
	"github.com/x-z7a/skyscript/coord"
	"github.com/x-z7a/skyscript/host"
	"github.com/x-z7a/skyscript/view"
)

// DefaultPixelsPerClick is the scroll distance of one wheel click.
const DefaultPixelsPerClick = 30

// Mouse is the translation of a host click.
type Mouse struct {
	Event view.MouseEvent
	// Focus is set when the caller must give the window keyboard focus and
	// focus the view before firing Event.
	Focus bool
	// OK is false if the click had an unknown status and nothing should be
	// fired.
	OK bool
}

// Click translates a click of button b at host-frame point (x, y) in a window
// with geometry g. A drag becomes a buttonless move.
func Click(g coord.Rect, x, y int, b host.MouseButton, s host.MouseStatus) Mouse {
	sx, sy := coord.ToSurface(g, x, y)
	e := view.MouseEvent{X: sx, Y: sy, Button: button(b)}
	switch s {
	case host.MouseDown:
		e.Type = view.MouseDown
		return Mouse{Event: e, Focus: true, OK: true}
	case host.MouseUp:
		e.Type = view.MouseUp
		return Mouse{Event: e, OK: true}
	case host.MouseDrag:
		e.Type = view.MouseMoved
		e.Button = view.ButtonNone
		return Mouse{Event: e, OK: true}
	}
	return Mouse{}
}

func button(b host.MouseButton) view.MouseButton {
	if b == host.ButtonPrimary {
		return view.ButtonLeft
	}
	return view.ButtonRight
}

// Move translates a cursor move over a window with geometry g.
func Move(g coord.Rect, x, y int) view.MouseEvent {
	sx, sy := coord.ToSurface(g, x, y)
	return view.MouseEvent{Type: view.MouseMoved, X: sx, Y: sy, Button: view.ButtonNone}
}

// Scroll translates a vertical wheel movement of clicks notches. The host's
// positive clicks scroll up, which is also the view's positive DeltaY.
func Scroll(clicks, pixelsPerClick int) view.ScrollEvent {
	return view.ScrollEvent{
		Type:   view.ScrollByPixel,
		DeltaX: 0,
		DeltaY: clicks * pixelsPerClick,
	}
}

// Printable reports whether key is a printable ASCII character.
func Printable(key byte) bool {
	return key >= 32 && key <= 126
}

// Modifiers maps host key flags to view modifiers.
func Modifiers(flags host.KeyFlags) view.Modifiers {
	var m view.Modifiers
	if flags&host.ShiftFlag != 0 {
		m |= view.ModShift
	}
	if flags&host.OptionAltFlag != 0 {
		m |= view.ModAlt
	}
	if flags&host.ControlFlag != 0 {
		m |= view.ModCtrl
	}
	return m
}

// Key translates a key event that is not a focus loss. A key press becomes a
// RawKeyDown, followed by a Char when key is printable. Anything without the
// down flag is a release, reported without modifiers. Flags with both the
// down and up bits set are malformed and translate to nothing.
func Key(key byte, flags host.KeyFlags, vk host.VirtualKey) []view.KeyEvent {
	down := flags&host.DownFlag != 0
	if down && flags&host.UpFlag != 0 {
		return nil
	}
	code := int(vk)
	if !down {
		return []view.KeyEvent{{
			Type:           view.KeyUp,
			VirtualKeyCode: code,
			NativeKeyCode:  code,
		}}
	}
	mods := Modifiers(flags)
	es := []view.KeyEvent{{
		Type:           view.RawKeyDown,
		Modifiers:      mods,
		VirtualKeyCode: code,
		NativeKeyCode:  code,
	}}
	if Printable(key) {
		text := string(rune(key))
		es = append(es, view.KeyEvent{
			Type:           view.Char,
			Modifiers:      mods,
			VirtualKeyCode: code,
			NativeKeyCode:  code,
			Text:           text,
			UnmodifiedText: text,
		})
	}
	return es
}
