// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture keeps a GPU texture in step with a view's pixel surface.
//
// A Syncer is driven once per composite pass. The first pass allocates the
// texture at the surface's size and uploads every pixel. Later passes upload
// again only when the surface reports a dirty region, and then they upload
// the whole buffer rather than the dirty sub-rectangle.
//
// A Syncer never resizes its texture by itself. Whoever notices that the view
// changed size calls Invalidate, and the next Sync allocates at the new size.
package texture

import (
	"image"

	"github.com/x-z7a/skyscript/surface"
)

// ID names a texture on the GPU. Zero means no texture.
type ID uint32

// PixelFormat is the byte order of uploaded pixels.
type PixelFormat int

const (
	// FormatBGRA8 is four bytes per pixel in B, G, R, A order, the format
	// of a surface.Surface.
	FormatBGRA8 PixelFormat = iota
	// FormatRGBA8 is four bytes per pixel in R, G, B, A order.
	FormatRGBA8
)

// Filter is a texture sampling filter.
type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
)

// Wrap is a texture coordinate wrapping mode.
type Wrap int

const (
	WrapClampToEdge Wrap = iota
	WrapRepeat
)

// GPU is the texture API of a graphics context. Methods other than
// GenTexture and DeleteTexture act on the texture last passed to
// BindTexture.
type GPU interface {
	// GenTexture returns a new texture name, or zero if none is available.
	GenTexture() ID
	BindTexture(id ID)
	DeleteTexture(id ID)
	SetFilter(f Filter)
	SetWrap(w Wrap)
	// TexImage2D replaces the bound texture's storage and contents with
	// a width by height image.
	TexImage2D(width, height int, format PixelFormat, pixels []byte)
}

// Upload describes one TexImage2D issued by a Syncer.
type Upload struct {
	ID    ID
	Size  image.Point
	Bytes int
	// Alloc is whether the upload created the texture.
	Alloc bool
}

// SyncerOptions are optional arguments to NewSyncer.
type SyncerOptions struct {
	// OnUpload, if non-nil, is called after every upload.
	OnUpload func(Upload)
}

// Syncer owns one texture mirroring one surface.
//
// Like the rest of the render path, a Syncer must only be used from the
// goroutine that owns the graphics context.
type Syncer struct {
	gpu  GPU
	opts SyncerOptions

	id   ID
	size image.Point
}

// NewSyncer returns a Syncer that creates its texture on gpu. opts may be nil.
func NewSyncer(gpu GPU, opts *SyncerOptions) *Syncer {
	s := &Syncer{gpu: gpu}
	if opts != nil {
		s.opts = *opts
	}
	return s
}

// ID returns the texture name, or zero if there is no texture.
func (s *Syncer) ID() ID {
	if s == nil {
		return 0
	}
	return s.id
}

// Size returns the size of the current texture. It is the zero Point if there
// is no texture.
func (s *Syncer) Size() image.Point {
	if s == nil || s.id == 0 {
		return image.Point{}
	}
	return s.size
}

// Sync brings the texture up to date with src. A nil or empty surface is not
// an error: there is simply nothing to draw yet.
func (s *Syncer) Sync(src surface.Surface) {
	if s == nil || s.gpu == nil || surface.IsEmpty(src) {
		return
	}
	alloc := s.id == 0
	if !alloc && src.DirtyBounds().Empty() {
		return
	}

	size := src.Size()
	pixels := src.LockPixels()
	defer src.UnlockPixels()
	n := surface.BytesPerPixel * size.X * size.Y
	if len(pixels) < n {
		return
	}
	pixels = pixels[:n]

	if alloc {
		id := s.gpu.GenTexture()
		if id == 0 {
			return
		}
		s.id = id
		s.gpu.BindTexture(s.id)
		s.gpu.SetFilter(FilterLinear)
		s.gpu.SetWrap(WrapClampToEdge)
	} else {
		s.gpu.BindTexture(s.id)
	}
	s.gpu.TexImage2D(size.X, size.Y, FormatBGRA8, pixels)
	s.size = size
	src.ClearDirtyBounds()

	if s.opts.OnUpload != nil {
		s.opts.OnUpload(Upload{ID: s.id, Size: size, Bytes: n, Alloc: alloc})
	}
}

// Invalidate deletes the texture, if any, so that the next Sync allocates a
// new one at the surface's size at that time. It must be called whenever the
// view's dimensions change.
func (s *Syncer) Invalidate() {
	if s == nil || s.id == 0 {
		return
	}
	if s.gpu != nil {
		s.gpu.DeleteTexture(s.id)
	}
	s.id = 0
	s.size = image.Point{}
}

// Release deletes the texture and detaches the Syncer from its GPU. Later
// calls to Sync do nothing.
func (s *Syncer) Release() {
	if s == nil {
		return
	}
	s.Invalidate()
	s.gpu = nil
}
