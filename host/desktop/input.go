// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/x-z7a/skyscript/host"
	"github.com/x-z7a/skyscript/internal/pump"
)

type mouseKind int

const (
	mouseMove mouseKind = iota
	mousePress
	mouseRelease
)

// Events sent from the main thread to the pipeline. Coordinates are in the
// host frame, in framebuffer pixels.
type (
	closeEvent struct{}

	sizeEvent struct {
		width, height int
	}

	mouseEvent struct {
		x, y   int
		button host.MouseButton
		kind   mouseKind
	}

	scrollEvent struct {
		x, y, clicks int
	}

	keyEvent struct {
		char  byte
		flags host.KeyFlags
		vk    host.VirtualKey
	}
)

// input turns GLFW callbacks into events. Its callbacks run on the main
// thread during glfw.PollEvents.
type input struct {
	events *pump.Pump[interface{}]
	win    *glfw.Window

	x, y   int
	scroll float64
}

func (in *input) install() {
	in.win.SetFramebufferSizeCallback(in.onSize)
	in.win.SetCursorPosCallback(in.onCursor)
	in.win.SetMouseButtonCallback(in.onButton)
	in.win.SetScrollCallback(in.onScroll)
	in.win.SetKeyCallback(in.onKey)
}

// hostPoint converts window coordinates, which start at the top left and
// may be scaled on high density displays, to the host frame.
func (in *input) hostPoint(wx, wy float64) (int, int) {
	ww, wh := in.win.GetSize()
	fw, fh := in.win.GetFramebufferSize()
	if ww <= 0 || wh <= 0 {
		return 0, 0
	}
	x := int(wx * float64(fw) / float64(ww))
	y := int(wy * float64(fh) / float64(wh))
	return x, fh - y
}

func (in *input) onSize(_ *glfw.Window, width, height int) {
	in.events.Send(sizeEvent{width, height})
}

func (in *input) onCursor(_ *glfw.Window, wx, wy float64) {
	in.x, in.y = in.hostPoint(wx, wy)
	in.events.Send(mouseEvent{x: in.x, y: in.y, kind: mouseMove})
}

func (in *input) onButton(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	var button host.MouseButton
	switch b {
	case glfw.MouseButtonLeft:
		button = host.ButtonPrimary
	case glfw.MouseButtonRight:
		button = host.ButtonSecondary
	default:
		return
	}
	kind := mousePress
	if action == glfw.Release {
		kind = mouseRelease
	}
	in.events.Send(mouseEvent{x: in.x, y: in.y, button: button, kind: kind})
}

// onScroll accumulates fractional offsets from touchpads into whole clicks.
func (in *input) onScroll(_ *glfw.Window, _, yoff float64) {
	in.scroll += yoff
	clicks := int(in.scroll)
	if clicks == 0 {
		return
	}
	in.scroll -= float64(clicks)
	in.events.Send(scrollEvent{x: in.x, y: in.y, clicks: clicks})
}

func (in *input) onKey(_ *glfw.Window, k glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	vk := virtualKey(k)
	c := keyChar(k, glfw.GetKeyName(k, scancode), mods)
	if vk == 0 && c == 0 {
		return
	}
	in.events.Send(keyEvent{char: c, flags: keyFlags(action, mods), vk: vk})
}
