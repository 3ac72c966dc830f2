// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coord converts between the host window frame and the surface frame.
//
// The host window frame has its origin at the bottom-left of the screen, with
// Y increasing upward, and is expressed in absolute screen coordinates. The
// surface frame has its origin at the top-left corner of a window, with Y
// increasing downward:
//
//	host                        surface
//	(left,top) +-------+        (0,0) +-------+
//	           |       |              |       |
//	           +-------+ (right,bottom)+-------+ (w,h)
//
// A window's geometry can change between two events, so it is never cached
// here: every conversion takes the current geometry as an argument.
package coord

import (
	"fmt"
	"image"
)

// Rect is a window geometry in the host window frame. Top is greater than or
// equal to Bottom for a well-formed window, but nothing here relies on that.
type Rect struct {
	Left, Top, Right, Bottom int
}

// XYWH returns the Rect whose top-left corner is at (x, y) in the host frame
// and that is w pixels wide and h pixels tall.
func XYWH(x, y, w, h int) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y - h}
}

// Width returns Right - Left.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns Top - Bottom.
func (r Rect) Height() int { return r.Top - r.Bottom }

// Size returns the pixel dimensions of the window.
func (r Rect) Size() image.Point { return image.Point{r.Width(), r.Height()} }

// Empty reports whether the window covers no pixels.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Contains reports whether the host-frame point (x, y) is inside r. The left
// and bottom edges are inclusive, the right and top edges exclusive.
func (r Rect) Contains(x, y int) bool {
	return r.Left <= x && x < r.Right && r.Bottom <= y && y < r.Top
}

// Offset returns r translated by (dx, dy) in the host frame.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

func (r Rect) String() string {
	return fmt.Sprintf("(l=%d t=%d r=%d b=%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// ToSurface maps the host-frame point (x, y) into the surface frame of a
// window with geometry g.
//
// The point is made window-relative first and flipped second. Keep that
// order: it is what lines pixel edges up at the window's borders.
func ToSurface(g Rect, x, y int) (sx, sy int) {
	sx = x - g.Left
	sy = y - g.Bottom
	sy = (g.Top - g.Bottom) - sy
	return sx, sy
}

// ToHost maps the surface-frame point (sx, sy) of a window with geometry g
// back into the host frame. It is the inverse of ToSurface.
func ToHost(g Rect, sx, sy int) (x, y int) {
	x = sx + g.Left
	y = (g.Top - g.Bottom) - sy + g.Bottom
	return x, y
}

// SurfacePoint is ToSurface returning an image.Point.
func SurfacePoint(g Rect, x, y int) image.Point {
	sx, sy := ToSurface(g, x, y)
	return image.Point{sx, sy}
}
