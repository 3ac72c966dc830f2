// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/x-z7a/skyscript/surface"
	"github.com/x-z7a/skyscript/texture"
	"github.com/x-z7a/skyscript/texture/texturetest"
)

func TestFirstSyncAllocates(t *testing.T) {
	gpu := &texturetest.GPU{}
	bm := surface.NewBitmap(image.Pt(8, 4))
	bm.Fill(bm.Bounds(), color.RGBA{R: 1, G: 2, B: 3, A: 4})
	s := texture.NewSyncer(gpu, nil)

	s.Sync(bm)

	want := []texturetest.Upload{{
		ID:     1,
		Size:   image.Pt(8, 4),
		Format: texture.FormatBGRA8,
		Bytes:  8 * 4 * 4,
		First:  [4]byte{3, 2, 1, 4},
	}}
	if diff := cmp.Diff(want, gpu.Uploads); diff != "" {
		t.Errorf("uploads mismatch (-want +got):\n%s", diff)
	}
	if got, want := gpu.Params[1], (texturetest.Params{Filter: texture.FilterLinear, Wrap: texture.WrapClampToEdge}); got != want {
		t.Errorf("params: got %+v, want %+v", got, want)
	}
	if s.ID() != 1 || s.Size() != image.Pt(8, 4) {
		t.Errorf("Syncer: got id=%d size=%v", s.ID(), s.Size())
	}
	if !bm.DirtyBounds().Empty() {
		t.Errorf("dirty region not cleared: %v", bm.DirtyBounds())
	}
	if bm.Locked() {
		t.Errorf("surface left locked")
	}
}

func TestSyncIsIdempotentWithoutDirtyRegion(t *testing.T) {
	gpu := &texturetest.GPU{}
	bm := surface.NewBitmap(image.Pt(2, 2))
	s := texture.NewSyncer(gpu, nil)

	s.Sync(bm)
	s.Sync(bm)
	if got := len(gpu.Uploads); got != 1 {
		t.Fatalf("uploads after two syncs: got %d, want 1", got)
	}
	if got := len(gpu.Generated); got != 1 {
		t.Fatalf("textures generated: got %d, want 1", got)
	}
	if bm.Locked() {
		t.Errorf("surface left locked")
	}
}

func TestDirtyRegionUploadsWholeBuffer(t *testing.T) {
	gpu := &texturetest.GPU{}
	bm := surface.NewBitmap(image.Pt(10, 10))
	s := texture.NewSyncer(gpu, nil)
	s.Sync(bm)

	bm.Fill(image.Rect(2, 2, 3, 3), color.White)
	s.Sync(bm)

	if got := len(gpu.Uploads); got != 2 {
		t.Fatalf("uploads: got %d, want 2", got)
	}
	u := gpu.Uploads[1]
	if u.ID != 1 || u.Size != image.Pt(10, 10) || u.Bytes != 10*10*4 {
		t.Errorf("second upload: got %+v, want whole 10x10 buffer on texture 1", u)
	}
	if len(gpu.Generated) != 1 {
		t.Errorf("dirty upload generated a new texture")
	}
	if !bm.DirtyBounds().Empty() {
		t.Errorf("dirty region not cleared")
	}
}

func TestInvalidateReallocatesAtNewSize(t *testing.T) {
	gpu := &texturetest.GPU{}
	bm := surface.NewBitmap(image.Pt(800, 600))
	s := texture.NewSyncer(gpu, nil)
	s.Sync(bm)

	bm.Resize(image.Pt(640, 480))
	s.Invalidate()
	if s.ID() != 0 {
		t.Fatalf("ID after Invalidate: got %d, want 0", s.ID())
	}
	s.Sync(bm)

	if diff := cmp.Diff([]texture.ID{1}, gpu.Deleted); diff != "" {
		t.Errorf("deleted mismatch (-want +got):\n%s", diff)
	}
	last := gpu.Uploads[len(gpu.Uploads)-1]
	if last.ID != 2 || last.Size != image.Pt(640, 480) {
		t.Errorf("upload after invalidate: got %+v, want texture 2 at 640x480", last)
	}
	if diff := cmp.Diff(map[texture.ID]image.Point{2: image.Pt(640, 480)}, gpu.Live()); diff != "" {
		t.Errorf("live textures mismatch (-want +got):\n%s", diff)
	}
}

func TestSyncNoSurface(t *testing.T) {
	gpu := &texturetest.GPU{}
	s := texture.NewSyncer(gpu, nil)

	s.Sync(nil)
	empty := surface.NewBitmap(image.Point{})
	s.Sync(empty)

	if len(gpu.Generated) != 0 || len(gpu.Uploads) != 0 {
		t.Errorf("empty surfaces touched the GPU: %+v", gpu)
	}
	if empty.Locked() {
		t.Errorf("empty surface left locked")
	}
}

// lockedOut is a surface whose pixels are never available.
type lockedOut struct {
	*surface.Bitmap
	unlocks int
}

func (s *lockedOut) LockPixels() []byte { return nil }
func (s *lockedOut) UnlockPixels()      { s.unlocks++ }

func TestSyncUnlocksWhenPixelsMissing(t *testing.T) {
	gpu := &texturetest.GPU{}
	src := &lockedOut{Bitmap: surface.NewBitmap(image.Pt(4, 4))}
	texture.NewSyncer(gpu, nil).Sync(src)

	if src.unlocks != 1 {
		t.Errorf("unlocks: got %d, want 1", src.unlocks)
	}
	if len(gpu.Generated) != 0 {
		t.Errorf("texture generated without pixels")
	}
}

func TestGenFailureLeavesNoTexture(t *testing.T) {
	gpu := &texturetest.GPU{FailGen: true}
	bm := surface.NewBitmap(image.Pt(4, 4))
	s := texture.NewSyncer(gpu, nil)
	s.Sync(bm)

	if s.ID() != 0 || len(gpu.Uploads) != 0 {
		t.Errorf("got id=%d uploads=%d, want neither", s.ID(), len(gpu.Uploads))
	}
	if bm.DirtyBounds().Empty() {
		t.Errorf("dirty region cleared without an upload")
	}
	if bm.Locked() {
		t.Errorf("surface left locked")
	}
}

func TestOnUpload(t *testing.T) {
	var got []texture.Upload
	gpu := &texturetest.GPU{}
	bm := surface.NewBitmap(image.Pt(3, 3))
	s := texture.NewSyncer(gpu, &texture.SyncerOptions{
		OnUpload: func(u texture.Upload) { got = append(got, u) },
	})
	s.Sync(bm)
	bm.Invalidate(image.Rect(0, 0, 1, 1))
	s.Sync(bm)

	want := []texture.Upload{
		{ID: 1, Size: image.Pt(3, 3), Bytes: 36, Alloc: true},
		{ID: 1, Size: image.Pt(3, 3), Bytes: 36},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OnUpload mismatch (-want +got):\n%s", diff)
	}
}

func TestRelease(t *testing.T) {
	gpu := &texturetest.GPU{}
	bm := surface.NewBitmap(image.Pt(3, 3))
	s := texture.NewSyncer(gpu, nil)
	s.Sync(bm)
	s.Release()
	s.Release()

	if diff := cmp.Diff([]texture.ID{1}, gpu.Deleted); diff != "" {
		t.Errorf("deleted mismatch (-want +got):\n%s", diff)
	}
	bm.Invalidate(bm.Bounds())
	s.Sync(bm)
	if len(gpu.Uploads) != 1 {
		t.Errorf("Sync after Release uploaded")
	}

	var nilSyncer *texture.Syncer
	nilSyncer.Sync(bm)
	nilSyncer.Invalidate()
	if nilSyncer.ID() != 0 {
		t.Errorf("nil Syncer has a texture")
	}
}
