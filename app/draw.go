// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"

	"github.com/x-z7a/skyscript/coord"
	"github.com/x-z7a/skyscript/host"
	"github.com/x-z7a/skyscript/texture"
)

// CheckResize compares the host window's size with the view's, once every
// ResizeInterval calls. On a mismatch it resizes the view and drops the
// texture, which the next UpdateTexture reallocates at the new size.
func (w *Window) CheckResize() {
	if w.view == nil || w.win == nil {
		return
	}
	w.resizeFrames++
	if w.resizeFrames < w.opts.ResizeInterval {
		return
	}
	w.resizeFrames = 0

	size := w.win.Geometry().Size()
	if size == w.size {
		return
	}
	w.log.Info("window resized", "from", w.size, "to", size)
	w.size = size
	w.view.Resize(size)
	w.tex.Invalidate()
	w.opts.Metrics.Resize(context.Background(), w.name)
}

// UpdateTexture uploads the view's surface if the texture is missing or the
// surface is dirty.
func (w *Window) UpdateTexture() {
	if w.view == nil {
		return
	}
	w.tex.Sync(w.view.Surface())
}

// ForceRepaint asks the renderer to repaint the whole view on its next
// Render.
func (w *Window) ForceRepaint() {
	if w.view == nil {
		return
	}
	w.view.SetNeedsPaint(true)
}

// Texture returns the current texture, or zero.
func (w *Window) Texture() texture.ID { return w.tex.ID() }

// Draw composites the view into the host window. It is the host window's
// draw callback.
func (w *Window) Draw() {
	if w.view == nil || w.win == nil {
		return
	}
	w.CheckResize()
	w.UpdateTexture()
	id := w.tex.ID()
	if id == 0 {
		return
	}
	g := w.opts.Host.Graphics()
	g.SetGraphicsState(host.GraphicsState{
		TextureUnits:  1,
		AlphaBlending: true,
	})
	g.BindTexture(id, 0)
	g.DrawQuad(Quad(w.win.Geometry()))
	w.opts.Metrics.Frame(context.Background(), w.name)
}

// Quad returns the textured quad covering g. The surface is stored top row
// first, so V is 0 along the top edge and 1 along the bottom.
func Quad(g coord.Rect) [4]host.Vertex {
	l, t := float32(g.Left), float32(g.Top)
	r, b := float32(g.Right), float32(g.Bottom)
	return [4]host.Vertex{
		{X: l, Y: t, U: 0, V: 0},
		{X: r, Y: t, U: 1, V: 0},
		{X: r, Y: b, U: 1, V: 1},
		{X: l, Y: b, U: 0, V: 1},
	}
}
