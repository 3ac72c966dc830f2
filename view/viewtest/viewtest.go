// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewtest provides a view.Renderer and view.View that record the
// calls made on them, for use in tests.
package viewtest

import (
	"image"

	"github.com/x-z7a/skyscript/surface"
	"github.com/x-z7a/skyscript/view"
)

// Call is one recorded call on a View, in the order it was made. Focus and
// Unfocus calls are recorded as Call{Op: "Focus"} and Call{Op: "Unfocus"} so
// that their order relative to events can be checked.
type Call struct {
	Op     string
	Mouse  *view.MouseEvent
	Key    *view.KeyEvent
	Scroll *view.ScrollEvent
}

// View is a view.View backed by a surface.Bitmap.
type View struct {
	Bitmap *surface.Bitmap

	URLs       []string
	Resizes    []image.Point
	NeedsPaint bool
	Focused    bool
	Calls      []Call

	ViewListener view.ViewListener
	LoadListener view.LoadListener
}

var _ view.View = (*View)(nil)

// NewView returns a View whose surface has the given size.
func NewView(size image.Point) *View {
	return &View{Bitmap: surface.NewBitmap(size)}
}

func (v *View) Surface() surface.Surface {
	if v.Bitmap == nil {
		return nil
	}
	return v.Bitmap
}

// Resize records the new size and resizes the surface immediately.
func (v *View) Resize(size image.Point) {
	v.Resizes = append(v.Resizes, size)
	if v.Bitmap != nil {
		v.Bitmap.Resize(size)
	}
}

func (v *View) LoadURL(url string)   { v.URLs = append(v.URLs, url) }
func (v *View) SetNeedsPaint(b bool) { v.NeedsPaint = b }

func (v *View) Focus() {
	v.Focused = true
	v.Calls = append(v.Calls, Call{Op: "Focus"})
}

func (v *View) Unfocus() {
	v.Focused = false
	v.Calls = append(v.Calls, Call{Op: "Unfocus"})
}

func (v *View) FireMouseEvent(e view.MouseEvent) {
	v.Calls = append(v.Calls, Call{Op: "Mouse", Mouse: &e})
}

func (v *View) FireKeyEvent(e view.KeyEvent) {
	v.Calls = append(v.Calls, Call{Op: "Key", Key: &e})
}

func (v *View) FireScrollEvent(e view.ScrollEvent) {
	v.Calls = append(v.Calls, Call{Op: "Scroll", Scroll: &e})
}

func (v *View) SetViewListener(l view.ViewListener) { v.ViewListener = l }
func (v *View) SetLoadListener(l view.LoadListener) { v.LoadListener = l }

// KeyEvents returns the key events fired so far.
func (v *View) KeyEvents() []view.KeyEvent {
	var es []view.KeyEvent
	for _, c := range v.Calls {
		if c.Key != nil {
			es = append(es, *c.Key)
		}
	}
	return es
}

// MouseEvents returns the mouse events fired so far.
func (v *View) MouseEvents() []view.MouseEvent {
	var es []view.MouseEvent
	for _, c := range v.Calls {
		if c.Mouse != nil {
			es = append(es, *c.Mouse)
		}
	}
	return es
}

// Renderer is a view.Renderer creating Views. Its Render marks every view
// with NeedsPaint dirty, standing in for a repaint.
type Renderer struct {
	Views   []*View
	Options []*view.Options
	Updates int
	Renders int

	// Log, if non-nil, has "Update" and "Render" appended on each call.
	Log *[]string
}

var _ view.Renderer = (*Renderer)(nil)

func (r *Renderer) CreateView(size image.Point, opts *view.Options) view.View {
	v := NewView(size)
	r.Views = append(r.Views, v)
	r.Options = append(r.Options, opts)
	return v
}

func (r *Renderer) Update() {
	r.Updates++
	if r.Log != nil {
		*r.Log = append(*r.Log, "Update")
	}
}

func (r *Renderer) Render() {
	r.Renders++
	if r.Log != nil {
		*r.Log = append(*r.Log, "Render")
	}
	for _, v := range r.Views {
		if v.NeedsPaint && v.Bitmap != nil {
			v.Bitmap.Invalidate(v.Bitmap.Bounds())
			v.NeedsPaint = false
		}
	}
}
