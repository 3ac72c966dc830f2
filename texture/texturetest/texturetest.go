// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texturetest provides a texture.GPU that records what it is asked to
// do, for use in tests.
package texturetest

import (
	"image"

	"github.com/x-z7a/skyscript/texture"
)

// Upload records one TexImage2D call.
type Upload struct {
	ID     texture.ID
	Size   image.Point
	Format texture.PixelFormat
	Bytes  int
	// First is a copy of the first pixel, if any.
	First [4]byte
}

// Params records the sampling parameters set on a texture.
type Params struct {
	Filter texture.Filter
	Wrap   texture.Wrap
}

// GPU is a texture.GPU with no graphics context behind it. The zero value is
// ready to use.
type GPU struct {
	// FailGen makes GenTexture return zero.
	FailGen bool

	Bound     texture.ID
	Generated []texture.ID
	Deleted   []texture.ID
	Uploads   []Upload
	Params    map[texture.ID]Params

	next texture.ID
	live map[texture.ID]image.Point
}

var _ texture.GPU = (*GPU)(nil)

func (g *GPU) GenTexture() texture.ID {
	if g.FailGen {
		return 0
	}
	g.next++
	g.Generated = append(g.Generated, g.next)
	if g.live == nil {
		g.live = make(map[texture.ID]image.Point)
	}
	g.live[g.next] = image.Point{}
	return g.next
}

func (g *GPU) BindTexture(id texture.ID) { g.Bound = id }

func (g *GPU) DeleteTexture(id texture.ID) {
	g.Deleted = append(g.Deleted, id)
	delete(g.live, id)
	if g.Bound == id {
		g.Bound = 0
	}
}

func (g *GPU) SetFilter(f texture.Filter) {
	p := g.params()
	p.Filter = f
	g.Params[g.Bound] = p
}

func (g *GPU) SetWrap(w texture.Wrap) {
	p := g.params()
	p.Wrap = w
	g.Params[g.Bound] = p
}

func (g *GPU) params() Params {
	if g.Params == nil {
		g.Params = make(map[texture.ID]Params)
	}
	return g.Params[g.Bound]
}

func (g *GPU) TexImage2D(width, height int, format texture.PixelFormat, pixels []byte) {
	u := Upload{
		ID:     g.Bound,
		Size:   image.Point{width, height},
		Format: format,
		Bytes:  len(pixels),
	}
	copy(u.First[:], pixels)
	g.Uploads = append(g.Uploads, u)
	if _, ok := g.live[g.Bound]; ok {
		g.live[g.Bound] = u.Size
	}
}

// Live returns the size of every texture that has been generated and not
// deleted.
func (g *GPU) Live() map[texture.ID]image.Point {
	m := make(map[texture.ID]image.Point, len(g.live))
	for id, sz := range g.live {
		m[id] = sz
	}
	return m
}
