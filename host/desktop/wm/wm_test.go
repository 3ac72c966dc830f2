// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/x-z7a/skyscript/coord"
	"github.com/x-z7a/skyscript/host"
	"github.com/x-z7a/skyscript/host/hosttest"
	"github.com/x-z7a/skyscript/texture/texturetest"
)

type fill struct {
	R coord.Rect
	C color.RGBA
}

type recorder struct {
	log   []string
	fills []fill
}

func (r *recorder) FillRect(rc coord.Rect, c color.RGBA) {
	r.fills = append(r.fills, fill{rc, c})
	r.log = append(r.log, "fill")
}

// newWindow creates a window whose callbacks append to rec.log, prefixed
// with name. Clicks are consumed when consume is true.
func newWindow(m *WM, rec *recorder, name string, g coord.Rect, consume bool) *Window {
	ret := 0
	if consume {
		ret = 1
	}
	click := func(kind string) func(host.Window, int, int, host.MouseStatus, host.Refcon) int {
		return func(_ host.Window, x, y int, s host.MouseStatus, _ host.Refcon) int {
			rec.log = append(rec.log, fmt.Sprintf("%s %s %s %d,%d", name, kind, s, x, y))
			return ret
		}
	}
	w := m.CreateWindow(host.CreateParams{
		Geometry: g,
		Visible:  true,
		Refcon:   name,
		Callbacks: host.Callbacks{
			Draw: func(host.Window, host.Refcon) {
				rec.log = append(rec.log, name+" draw")
			},
			LeftClick:  click("left"),
			RightClick: click("right"),
			Wheel: func(_ host.Window, x, y, wheel, clicks int, _ host.Refcon) int {
				rec.log = append(rec.log, fmt.Sprintf("%s wheel %d", name, clicks))
				return ret
			},
			Key: func(_ host.Window, k byte, flags host.KeyFlags, vk host.VirtualKey, _ host.Refcon, losing bool) {
				rec.log = append(rec.log, fmt.Sprintf("%s key %q %d %#x %t", name, k, flags, vk, losing))
			},
			Cursor: func(_ host.Window, x, y int, _ host.Refcon) host.CursorStatus {
				rec.log = append(rec.log, fmt.Sprintf("%s cursor %d,%d", name, x, y))
				return host.CursorDefault
			},
		},
	})
	return w.(*Window)
}

func newWM() (*WM, *recorder) {
	rec := &recorder{}
	m := New(coord.Rect{Left: 0, Top: 768, Right: 1024, Bottom: 0}, &hosttest.Graphics{}, &texturetest.GPU{}, rec)
	return m, rec
}

func TestClickPassThrough(t *testing.T) {
	m, rec := newWM()
	newWindow(m, rec, "a", coord.XYWH(0, 500, 400, 400), true)
	newWindow(m, rec, "b", coord.XYWH(100, 400, 400, 300), false)

	m.MouseDown(150, 300, host.ButtonPrimary)
	m.MouseMove(160, 290)
	m.MouseUp(160, 290, host.ButtonPrimary)

	want := []string{
		"b left down 150,300",
		"a left down 150,300",
		"a left drag 160,290",
		"a left up 160,290",
	}
	if diff := cmp.Diff(want, rec.log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestClickDeclinedEverywhere(t *testing.T) {
	m, rec := newWM()
	newWindow(m, rec, "a", coord.XYWH(0, 500, 400, 400), false)

	m.MouseDown(10, 300, host.ButtonSecondary)
	m.MouseMove(20, 300)
	m.MouseUp(20, 300, host.ButtonSecondary)

	want := []string{
		"a right down 10,300",
		"a cursor 20,300",
	}
	if diff := cmp.Diff(want, rec.log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestTitleDrag(t *testing.T) {
	m, rec := newWM()
	w := newWindow(m, rec, "a", coord.XYWH(100, 500, 400, 300), true)

	m.MouseDown(150, 505, host.ButtonPrimary)
	m.MouseMove(170, 485)
	m.MouseUp(170, 485, host.ButtonPrimary)

	if got, want := w.Geometry(), coord.XYWH(120, 480, 400, 300); got != want {
		t.Errorf("Geometry: got %v, want %v", got, want)
	}
	if len(rec.log) != 0 {
		t.Errorf("title drag reached the window: %q", rec.log)
	}
}

func TestResizeGrip(t *testing.T) {
	testCases := []struct {
		name   string
		limits [4]int
		dx, dy int
		want   coord.Rect
	}{
		{"grow", [4]int{100, 100, 1000, 1000}, 50, -40, coord.XYWH(100, 500, 450, 340)},
		{"shrink to min", [4]int{300, 250, 1000, 1000}, -300, 300, coord.XYWH(100, 500, 300, 250)},
		{"grow to max", [4]int{100, 100, 420, 310}, 300, -300, coord.XYWH(100, 500, 420, 310)},
		{"no max", [4]int{100, 100, 0, 0}, 600, -100, coord.XYWH(100, 500, 1000, 400)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, rec := newWM()
			w := newWindow(m, rec, "a", coord.XYWH(100, 500, 400, 300), true)
			w.SetResizingLimits(tc.limits[0], tc.limits[1], tc.limits[2], tc.limits[3])

			x, y := w.Geometry().Right-2, w.Geometry().Bottom+2
			m.MouseDown(x, y, host.ButtonPrimary)
			m.MouseMove(x+tc.dx, y+tc.dy)
			m.MouseUp(x+tc.dx, y+tc.dy, host.ButtonPrimary)

			if got := w.Geometry(); got != tc.want {
				t.Errorf("Geometry: got %v, want %v", got, tc.want)
			}
			if len(rec.log) != 0 {
				t.Errorf("resize reached the window: %q", rec.log)
			}
		})
	}
}

func TestGripNeedsLimits(t *testing.T) {
	m, rec := newWM()
	w := newWindow(m, rec, "a", coord.XYWH(100, 500, 400, 300), true)
	g := w.Geometry()
	m.MouseDown(g.Right-2, g.Bottom+2, host.ButtonPrimary)
	if want := []string{"a left down 498,202"}; !cmp.Equal(want, rec.log) {
		t.Errorf("log: got %q, want %q", rec.log, want)
	}
}

func TestFocus(t *testing.T) {
	m, rec := newWM()
	a := newWindow(m, rec, "a", coord.XYWH(0, 500, 200, 200), true)
	b := newWindow(m, rec, "b", coord.XYWH(300, 500, 200, 200), true)

	a.TakeKeyboardFocus()
	m.Key('x', host.DownFlag, host.VKA+('x'-'a'))
	b.TakeKeyboardFocus()
	m.Key('y', host.UpFlag, host.VKA+('y'-'a'))
	// A click on the background releases focus.
	m.MouseDown(900, 100, host.ButtonPrimary)
	m.Key('z', host.DownFlag, host.VKA+('z'-'a'))

	want := []string{
		`a key 'x' 8 0x58 false`,
		`a key '\x00' 0 0x0 true`,
		`b key 'y' 16 0x59 false`,
		`b key '\x00' 0 0x0 true`,
	}
	if diff := cmp.Diff(want, rec.log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
	if m.Focus() != nil {
		t.Errorf("Focus: got %v, want nil", m.Focus())
	}
}

func TestHideAndDestroyDropFocus(t *testing.T) {
	m, rec := newWM()
	a := newWindow(m, rec, "a", coord.XYWH(0, 500, 200, 200), true)
	a.TakeKeyboardFocus()
	a.SetVisible(false)
	if m.Focus() != nil {
		t.Errorf("hidden window kept focus")
	}

	b := newWindow(m, rec, "b", coord.XYWH(0, 500, 200, 200), true)
	b.TakeKeyboardFocus()
	b.Destroy()
	if m.Focus() != nil {
		t.Errorf("destroyed window kept focus")
	}
	if got := len(m.Windows()); got != 1 {
		t.Errorf("Windows: got %d, want 1", got)
	}
	b.TakeKeyboardFocus()
	if m.Focus() != nil {
		t.Errorf("destroyed window took focus")
	}
}

func TestRaiseOnClick(t *testing.T) {
	m, rec := newWM()
	a := newWindow(m, rec, "a", coord.XYWH(0, 500, 400, 400), true)
	b := newWindow(m, rec, "b", coord.XYWH(100, 400, 400, 300), true)

	m.MouseDown(10, 450, host.ButtonPrimary)
	m.MouseUp(10, 450, host.ButtonPrimary)
	if got := m.Windows(); got[len(got)-1] != a {
		t.Errorf("clicked window was not raised")
	}
	b.BringToFront()
	if got := m.Windows(); got[len(got)-1] != b {
		t.Errorf("BringToFront did not raise")
	}
}

func TestScroll(t *testing.T) {
	m, rec := newWM()
	newWindow(m, rec, "a", coord.XYWH(0, 500, 400, 400), true)
	newWindow(m, rec, "b", coord.XYWH(0, 500, 400, 400), false)
	m.Scroll(10, 300, -2)
	m.Scroll(900, 50, 1)
	want := []string{"b wheel -2", "a wheel -2"}
	if diff := cmp.Diff(want, rec.log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

func TestHiddenWindowsIgnored(t *testing.T) {
	m, rec := newWM()
	a := newWindow(m, rec, "a", coord.XYWH(0, 500, 400, 400), true)
	a.SetVisible(false)
	m.MouseDown(10, 300, host.ButtonPrimary)
	m.Scroll(10, 300, 1)
	m.MouseMove(10, 300)
	m.Draw()
	if len(rec.log) != 0 {
		t.Errorf("hidden window got calls: %q", rec.log)
	}
}

func TestDrawOrder(t *testing.T) {
	m, rec := newWM()
	a := newWindow(m, rec, "a", coord.XYWH(0, 500, 400, 400), true)
	a.SetResizingLimits(100, 100, 800, 800)
	b := newWindow(m, rec, "b", coord.XYWH(100, 400, 400, 300), true)
	b.TakeKeyboardFocus()
	rec.log = nil

	m.Draw()

	want := []string{"fill", "a draw", "fill", "fill", "b draw"}
	if diff := cmp.Diff(want, rec.log); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
	wantFills := []fill{
		{coord.Rect{Left: 0, Top: 520, Right: 400, Bottom: 500}, titleColor},
		{coord.Rect{Left: 386, Top: 114, Right: 400, Bottom: 100}, gripColor},
		{coord.Rect{Left: 100, Top: 420, Right: 500, Bottom: 400}, focusedTitleColor},
	}
	if diff := cmp.Diff(wantFills, rec.fills); diff != "" {
		t.Errorf("fills mismatch (-want +got):\n%s", diff)
	}
}

func TestHotkeys(t *testing.T) {
	m, rec := newWM()
	var selected []host.Refcon
	mu := m.CreateMenu("SkyScript", func(ref host.Refcon) {
		selected = append(selected, ref)
	})
	for i := 0; i < MaxHotkeys+2; i++ {
		if got := mu.AppendItem(fmt.Sprintf("app%d", i), i); got != i {
			t.Fatalf("AppendItem: got index %d, want %d", got, i)
		}
	}
	a := newWindow(m, rec, "a", coord.XYWH(0, 500, 400, 400), true)
	a.TakeKeyboardFocus()

	m.Key(0, host.DownFlag, host.VKF1)
	m.Key(0, host.UpFlag, host.VKF1)
	m.Key(0, host.DownFlag, host.VKF12)

	if diff := cmp.Diff([]host.Refcon{0, 11}, selected); diff != "" {
		t.Errorf("selected mismatch (-want +got):\n%s", diff)
	}
	if len(rec.log) != 0 {
		t.Errorf("function keys reached the focused window: %q", rec.log)
	}
	hs := m.Hotkeys()
	if len(hs) != MaxHotkeys {
		t.Fatalf("Hotkeys: got %d, want %d", len(hs), MaxHotkeys)
	}
	if want := (Hotkey{Key: host.VKF1 + 2, Menu: "SkyScript", Item: "app2"}); hs[2] != want {
		t.Errorf("Hotkeys[2]: got %+v, want %+v", hs[2], want)
	}
}
