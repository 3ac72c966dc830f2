// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package echo

import (
	"image"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"

	"github.com/x-z7a/skyscript/view"
)

type recorder struct {
	events []string
}

func (r *recorder) OnChangeTitle(_ view.View, title string) {
	r.events = append(r.events, "title "+title)
}

func (r *recorder) OnAddConsoleMessage(_ view.View, m view.ConsoleMessage) {
	r.events = append(r.events, "console")
}

func (r *recorder) OnBeginLoading(_ view.View, f view.Frame)  { r.events = append(r.events, "begin "+f.URL) }
func (r *recorder) OnFinishLoading(_ view.View, f view.Frame) { r.events = append(r.events, "finish") }
func (r *recorder) OnDOMReady(_ view.View, f view.Frame)      { r.events = append(r.events, "dom") }

func (r *recorder) OnFailLoading(_ view.View, f view.Frame, err view.LoadError) {
	r.events = append(r.events, "fail "+err.Domain)
}

var root = fstest.MapFS{
	"apps/map/index.html": {Data: []byte("<html><head><title> Moving Map </title></head></html>")},
}

func newView(t *testing.T, url string) (*Renderer, *View, *recorder) {
	t.Helper()
	r := New(root, logr.Discard())
	v := r.CreateView(image.Pt(320, 200), nil).(*View)
	rec := &recorder{}
	v.SetViewListener(rec)
	v.SetLoadListener(rec)
	v.LoadURL(url)
	return r, v, rec
}

func TestLoad(t *testing.T) {
	r, v, rec := newView(t, "file:///apps/map/index.html")
	if diff := cmp.Diff([]string{"begin file:///apps/map/index.html"}, rec.events); diff != "" {
		t.Errorf("before Update mismatch (-want +got):\n%s", diff)
	}
	r.Update()
	want := []string{"begin file:///apps/map/index.html", "title Moving Map", "dom", "finish", "console"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if v.Title() != "Moving Map" {
		t.Errorf("Title: got %q", v.Title())
	}
	// Notifications are delivered once.
	r.Update()
	if len(rec.events) != len(want) {
		t.Errorf("second Update delivered %d more events", len(rec.events)-len(want))
	}
}

func TestLoadFailure(t *testing.T) {
	for _, u := range []string{"file:///apps/none/index.html", "http://example.com/", "file:///../etc/passwd"} {
		r, _, rec := newView(t, u)
		r.Update()
		if got := rec.events[len(rec.events)-1]; got != "fail file" {
			t.Errorf("%s: last event: got %q, want fail", u, got)
		}
	}
}

func TestResolveCachesPaths(t *testing.T) {
	r, v, _ := newView(t, "file:///apps/map/index.html")
	r.Update()
	v.LoadURL("file:///apps/map/index.html")
	r.Update()
	v.LoadURL("http://example.com/")
	r.Update()
	v.LoadURL("file:///apps/none/index.html")
	r.Update()
	// The unsupported scheme is not cached; the missing file still resolves.
	if got, want := r.paths.Len(), 2; got != want {
		t.Errorf("cached paths: got %d, want %d", got, want)
	}
	if v.Title() != "" {
		t.Errorf("Title after failed load: got %q, want empty", v.Title())
	}
}

func TestRenderPaints(t *testing.T) {
	r, v, _ := newView(t, "file:///apps/map/index.html")
	r.Update()
	v.bitmap.ClearDirtyBounds()
	r.Render()

	if got := v.Surface().DirtyBounds(); got != image.Rect(0, 0, 320, 200) {
		t.Errorf("dirty after Render: got %v", got)
	}
	pix := v.Surface().LockPixels()
	defer v.Surface().UnlockPixels()
	// Bottom-right corner is background, stored B, G, R, A.
	i := len(pix) - 4
	if got, want := pix[i:i+4], []byte{0x20, 0x20, 0x20, 0xff}; !cmp.Equal(want, got) {
		t.Errorf("background pixel: got %v, want %v", got, want)
	}

	v.bitmap.ClearDirtyBounds()
	r.Render()
	if !v.Surface().DirtyBounds().Empty() {
		t.Errorf("Render repainted an unchanged view")
	}
	v.SetNeedsPaint(true)
	r.Render()
	if v.Surface().DirtyBounds().Empty() {
		t.Errorf("SetNeedsPaint did not cause a repaint")
	}
}

func TestInput(t *testing.T) {
	_, v, _ := newView(t, "file:///apps/map/index.html")
	for _, e := range []view.KeyEvent{
		{Type: view.RawKeyDown, VirtualKeyCode: 0x48},
		{Type: view.Char, Text: "h"},
		{Type: view.Char, Text: "i"},
		{Type: view.Char, Text: "x"},
		{Type: view.RawKeyDown, VirtualKeyCode: 0x08},
		{Type: view.KeyUp, VirtualKeyCode: 0x08},
	} {
		v.FireKeyEvent(e)
	}
	if got := v.Typed(); got != "hi" {
		t.Errorf("Typed: got %q, want hi", got)
	}
	v.Focus()
	v.FireMouseEvent(view.MouseEvent{Type: view.MouseDown, X: 10, Y: 20, Button: view.ButtonLeft})
	v.FireScrollEvent(view.ScrollEvent{DeltaY: 60})
	v.FireScrollEvent(view.ScrollEvent{DeltaY: -30})

	lines := strings.Join(v.Lines(), "\n")
	for _, want := range []string{"320x200 focused", "(10, 20)", "scroll 30", "> hi"} {
		if !strings.Contains(lines, want) {
			t.Errorf("Lines do not contain %q:\n%s", want, lines)
		}
	}
}

func TestResize(t *testing.T) {
	r, v, _ := newView(t, "file:///apps/map/index.html")
	v.Resize(image.Pt(100, 50))
	r.Render()
	if got := v.Surface().Size(); got != image.Pt(100, 50) {
		t.Errorf("Size: got %v", got)
	}
	v.Resize(image.Point{})
	r.Render()
}
