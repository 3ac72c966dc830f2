// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the CPU-side pixel surface a view renders into and
// provides an in-memory implementation of it.
package surface

import "image"

// BytesPerPixel is the size of one pixel in every Surface. Pixels are stored
// in B, G, R, A byte order, premultiplied, rows top to bottom and tightly
// packed, so a row is 4*width bytes long.
const BytesPerPixel = 4

// Surface is a pixel buffer owned by the view engine.
//
// A Surface's pixels may only be read between LockPixels and UnlockPixels,
// and the slice returned by LockPixels must not be retained past the
// matching UnlockPixels.
type Surface interface {
	// Size returns the current pixel dimensions.
	Size() image.Point

	// LockPixels returns the pixel bytes. It returns nil if there is nothing
	// to read. Every call must be paired with UnlockPixels, including when
	// the result is nil.
	LockPixels() []byte

	// UnlockPixels ends the access started by LockPixels.
	UnlockPixels()

	// DirtyBounds returns the region changed since the last ClearDirtyBounds.
	// The zero rectangle means nothing changed.
	DirtyBounds() image.Rectangle

	// ClearDirtyBounds marks the whole surface as clean.
	ClearDirtyBounds()
}

// IsEmpty reports whether s has nothing to draw: it is nil or has no pixels.
func IsEmpty(s Surface) bool {
	if s == nil {
		return true
	}
	sz := s.Size()
	return sz.X <= 0 || sz.Y <= 0
}
