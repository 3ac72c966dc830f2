// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNewBitmapIsDirty(t *testing.T) {
	b := NewBitmap(image.Pt(4, 3))
	if got, want := b.DirtyBounds(), image.Rect(0, 0, 4, 3); got != want {
		t.Fatalf("DirtyBounds: got %v, want %v", got, want)
	}
	b.ClearDirtyBounds()
	if got := b.DirtyBounds(); !got.Empty() {
		t.Fatalf("DirtyBounds after clear: got %v, want empty", got)
	}
	if IsEmpty(b) {
		t.Errorf("IsEmpty: got true, want false")
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty(nil) {
		t.Errorf("IsEmpty(nil): got false")
	}
	if !IsEmpty(NewBitmap(image.Pt(0, 10))) {
		t.Errorf("IsEmpty(0x10): got false")
	}
	if !IsEmpty(NewBitmap(image.Pt(-1, -1))) {
		t.Errorf("IsEmpty(-1x-1): got false")
	}
}

func TestLockPixels(t *testing.T) {
	b := NewBitmap(image.Pt(2, 2))
	p := b.LockPixels()
	if len(p) != 2*2*BytesPerPixel {
		t.Fatalf("LockPixels: got %d bytes, want %d", len(p), 2*2*BytesPerPixel)
	}
	if !b.Locked() {
		t.Fatalf("Locked: got false after LockPixels")
	}
	if p2 := b.LockPixels(); p2 != nil {
		t.Errorf("nested LockPixels: got %d bytes, want nil", len(p2))
	}
	b.UnlockPixels()
	if b.Locked() {
		t.Errorf("Locked: got true after UnlockPixels")
	}
}

func TestInvalidateClips(t *testing.T) {
	b := NewBitmap(image.Pt(10, 10))
	b.ClearDirtyBounds()
	b.Invalidate(image.Rect(8, 8, 20, 20))
	b.Invalidate(image.Rect(-5, 0, 1, 1))
	b.Invalidate(image.Rect(30, 30, 40, 40))
	if got, want := b.DirtyBounds(), image.Rect(0, 0, 10, 10); got != want {
		t.Errorf("DirtyBounds: got %v, want %v", got, want)
	}
}

func TestFillWritesBGRA(t *testing.T) {
	b := NewBitmap(image.Pt(3, 2))
	b.ClearDirtyBounds()
	b.Fill(image.Rect(1, 1, 3, 2), color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	if got, want := b.DirtyBounds(), image.Rect(1, 1, 3, 2); got != want {
		t.Errorf("DirtyBounds: got %v, want %v", got, want)
	}
	p := b.LockPixels()
	defer b.UnlockPixels()
	i := (1*3 + 2) * BytesPerPixel
	if got, want := [4]byte{p[i], p[i+1], p[i+2], p[i+3]}, [4]byte{0x30, 0x20, 0x10, 0xff}; got != want {
		t.Errorf("pixel (2,1): got %v, want %v", got, want)
	}
	if p[0] != 0 || p[3] != 0 {
		t.Errorf("pixel (0,0) was modified: %v", p[:4])
	}
}

func TestBGRAImage(t *testing.T) {
	b := NewBitmap(image.Pt(4, 4))
	img := b.Image()
	draw.Draw(img, image.Rect(0, 0, 2, 2), image.NewUniform(color.RGBA{R: 0xff, A: 0xff}), image.Point{}, draw.Src)
	if got, want := img.At(1, 1), (color.RGBA{R: 0xff, A: 0xff}); got != want {
		t.Errorf("At(1,1): got %v, want %v", got, want)
	}
	if got, want := img.At(3, 3), (color.RGBA{}); got != want {
		t.Errorf("At(3,3): got %v, want %v", got, want)
	}
	if got := img.At(9, 9); got != (color.RGBA{}) {
		t.Errorf("At out of bounds: got %v", got)
	}
	p := b.LockPixels()
	defer b.UnlockPixels()
	if p[2] != 0xff || p[0] != 0 {
		t.Errorf("red pixel not stored as BGRA: %v", p[:4])
	}
}
