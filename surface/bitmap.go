// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"image/color"
)

// Bitmap is an in-memory Surface.
//
// Like everything else on the render path, a Bitmap is not safe for
// concurrent use. Its lock only tracks that readers pair LockPixels with
// UnlockPixels.
type Bitmap struct {
	size   image.Point
	pix    []byte
	dirty  image.Rectangle
	locked bool
}

var _ Surface = (*Bitmap)(nil)

// NewBitmap returns a transparent Bitmap of the given size, entirely dirty.
// Negative dimensions are treated as zero.
func NewBitmap(size image.Point) *Bitmap {
	b := &Bitmap{}
	b.Resize(size)
	return b
}

// Size implements Surface.
func (b *Bitmap) Size() image.Point { return b.size }

// Bounds returns image.Rectangle{Max: b.Size()}.
func (b *Bitmap) Bounds() image.Rectangle { return image.Rectangle{Max: b.size} }

// LockPixels implements Surface. A second LockPixels without an intervening
// UnlockPixels returns nil.
func (b *Bitmap) LockPixels() []byte {
	if b.locked || len(b.pix) == 0 {
		b.locked = true
		return nil
	}
	b.locked = true
	return b.pix
}

// UnlockPixels implements Surface.
func (b *Bitmap) UnlockPixels() { b.locked = false }

// Locked reports whether a LockPixels is outstanding.
func (b *Bitmap) Locked() bool { return b.locked }

// DirtyBounds implements Surface.
func (b *Bitmap) DirtyBounds() image.Rectangle { return b.dirty }

// ClearDirtyBounds implements Surface.
func (b *Bitmap) ClearDirtyBounds() { b.dirty = image.Rectangle{} }

// Invalidate adds r, clipped to the bitmap, to the dirty region.
func (b *Bitmap) Invalidate(r image.Rectangle) {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return
	}
	b.dirty = b.dirty.Union(r)
}

// Resize reallocates the pixels at the new size. The contents are cleared
// and the whole bitmap becomes dirty.
func (b *Bitmap) Resize(size image.Point) {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	b.size = size
	b.pix = make([]byte, BytesPerPixel*size.X*size.Y)
	b.dirty = image.Rectangle{}
	b.Invalidate(b.Bounds())
}

// Image returns a draw.Image view of the pixels. Drawing through it does not
// update the dirty region; callers follow up with Invalidate.
func (b *Bitmap) Image() *BGRA {
	return &BGRA{Pix: b.pix, Stride: BytesPerPixel * b.size.X, Rect: b.Bounds()}
}

// Fill sets every pixel in r to c and marks r dirty.
func (b *Bitmap) Fill(r image.Rectangle, c color.Color) {
	r = r.Intersect(b.Bounds())
	if r.Empty() {
		return
	}
	cr, cg, cb, ca := c.RGBA()
	px := [4]byte{byte(cb >> 8), byte(cg >> 8), byte(cr >> 8), byte(ca >> 8)}
	stride := BytesPerPixel * b.size.X
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.pix[y*stride+r.Min.X*BytesPerPixel : y*stride+r.Max.X*BytesPerPixel]
		for i := 0; i < len(row); i += BytesPerPixel {
			copy(row[i:i+BytesPerPixel], px[:])
		}
	}
	b.Invalidate(r)
}
