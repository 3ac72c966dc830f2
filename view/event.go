// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import "fmt"

// MouseEventType is the kind of a MouseEvent.
type MouseEventType int

const (
	MouseMoved MouseEventType = iota
	MouseDown
	MouseUp
)

func (t MouseEventType) String() string {
	switch t {
	case MouseMoved:
		return "MouseMoved"
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	}
	return fmt.Sprintf("MouseEventType(%d)", int(t))
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// MouseEvent is a mouse event in view coordinates: origin at the top-left,
// Y increasing downward.
type MouseEvent struct {
	Type   MouseEventType
	X, Y   int
	Button MouseButton
}

// KeyEventType is the kind of a KeyEvent.
type KeyEventType int

const (
	// KeyDown is a key press that may also produce text.
	KeyDown KeyEventType = iota
	// KeyUp is a key release.
	KeyUp
	// RawKeyDown is a key press that does not produce text by itself.
	RawKeyDown
	// Char carries the text produced by a key press.
	Char
)

func (t KeyEventType) String() string {
	switch t {
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case RawKeyDown:
		return "RawKeyDown"
	case Char:
		return "Char"
	}
	return fmt.Sprintf("KeyEventType(%d)", int(t))
}

// Modifiers is a bitmask of the modifier keys held during a key event.
type Modifiers uint8

const (
	ModAlt Modifiers = 1 << iota
	ModCtrl
	ModMeta
	ModShift
)

// KeyEvent is a keyboard event. VirtualKeyCode uses the Windows virtual-key
// numbering.
type KeyEvent struct {
	Type           KeyEventType
	Modifiers      Modifiers
	VirtualKeyCode int
	NativeKeyCode  int
	Text           string
	UnmodifiedText string
}

// ScrollEventType is the kind of a ScrollEvent.
type ScrollEventType int

const (
	ScrollByPixel ScrollEventType = iota
	ScrollByPage
)

// ScrollEvent is a scroll wheel event. Positive DeltaY scrolls toward the top
// of the page.
type ScrollEvent struct {
	Type           ScrollEventType
	DeltaX, DeltaY int
}
