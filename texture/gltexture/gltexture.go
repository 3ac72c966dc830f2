// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltexture implements texture.GPU on an OpenGL ES 2 context.
package gltexture

import (
	"github.com/x-z7a/skyscript/internal/swizzle"
	"github.com/x-z7a/skyscript/texture"
	"golang.org/x/mobile/gl"
)

// GPU is a texture.GPU backed by a gl.Context. It must only be used while the
// context is current on the calling thread.
type GPU struct {
	ctx gl.Context

	// scratch holds BGRA pixels converted to RGBA. GL ES 2 has no BGRA
	// external format, and the source pixels belong to the view engine.
	scratch []byte
}

var _ texture.GPU = (*GPU)(nil)

// New returns a GPU using ctx.
func New(ctx gl.Context) *GPU {
	return &GPU{ctx: ctx}
}

func glTexture(id texture.ID) gl.Texture { return gl.Texture{Value: uint32(id)} }

func (g *GPU) GenTexture() texture.ID {
	return texture.ID(g.ctx.CreateTexture().Value)
}

func (g *GPU) BindTexture(id texture.ID) {
	g.ctx.BindTexture(gl.TEXTURE_2D, glTexture(id))
}

func (g *GPU) DeleteTexture(id texture.ID) {
	g.ctx.DeleteTexture(glTexture(id))
}

func (g *GPU) SetFilter(f texture.Filter) {
	v := gl.LINEAR
	if f == texture.FilterNearest {
		v = gl.NEAREST
	}
	g.ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int(v))
	g.ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int(v))
}

func (g *GPU) SetWrap(w texture.Wrap) {
	v := gl.CLAMP_TO_EDGE
	if w == texture.WrapRepeat {
		v = gl.REPEAT
	}
	g.ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int(v))
	g.ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int(v))
}

func (g *GPU) TexImage2D(width, height int, format texture.PixelFormat, pixels []byte) {
	if format == texture.FormatBGRA8 {
		if cap(g.scratch) < len(pixels) {
			g.scratch = make([]byte, len(pixels))
		}
		g.scratch = g.scratch[:len(pixels)]
		swizzle.Copy(g.scratch, pixels)
		pixels = g.scratch
	}
	g.ctx.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, gl.RGBA, gl.UNSIGNED_BYTE, pixels)
}
