// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"encoding/binary"
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/mobile/gl"
	"golang.org/x/xerrors"

	"github.com/x-z7a/skyscript/coord"
	"github.com/x-z7a/skyscript/host"
	"github.com/x-z7a/skyscript/texture"
)

// graphics draws textured and filled quads in the host frame. It implements
// host.Graphics for the app windows and wm.Decorator for the chrome. All
// methods run on the pipeline goroutine; the gl.Context forwards the calls
// to the GL thread.
type graphics struct {
	ctx    gl.Context
	screen coord.Rect

	texture struct {
		program gl.Program
		pos     gl.Attrib
		mvp     gl.Uniform
		uvp     gl.Uniform
		inUV    gl.Attrib
		sample  gl.Uniform
		quadXY  gl.Buffer
		quadUV  gl.Buffer
	}
	fill struct {
		program gl.Program
		pos     gl.Attrib
		mvp     gl.Uniform
		color   gl.Uniform
		quadXY  gl.Buffer
	}
}

var _ host.Graphics = (*graphics)(nil)

func newGraphics(ctx gl.Context, screen coord.Rect) (*graphics, error) {
	g := &graphics{ctx: ctx, screen: screen}

	p, err := compileProgram(ctx, textureVertexSrc, textureFragmentSrc)
	if err != nil {
		return nil, err
	}
	g.texture.program = p
	g.texture.pos = ctx.GetAttribLocation(p, "pos")
	g.texture.mvp = ctx.GetUniformLocation(p, "mvp")
	g.texture.uvp = ctx.GetUniformLocation(p, "uvp")
	g.texture.inUV = ctx.GetAttribLocation(p, "inUV")
	g.texture.sample = ctx.GetUniformLocation(p, "sample")
	g.texture.quadXY = newBuffer(ctx, quadXYCoords)
	g.texture.quadUV = newBuffer(ctx, quadUVCoords)

	p, err = compileProgram(ctx, fillVertexSrc, fillFragmentSrc)
	if err != nil {
		g.release()
		return nil, err
	}
	g.fill.program = p
	g.fill.pos = ctx.GetAttribLocation(p, "pos")
	g.fill.mvp = ctx.GetUniformLocation(p, "mvp")
	g.fill.color = ctx.GetUniformLocation(p, "color")
	g.fill.quadXY = newBuffer(ctx, quadXYCoords)
	return g, nil
}

func newBuffer(ctx gl.Context, data []byte) gl.Buffer {
	b := ctx.CreateBuffer()
	ctx.BindBuffer(gl.ARRAY_BUFFER, b)
	ctx.BufferData(gl.ARRAY_BUFFER, data, gl.STATIC_DRAW)
	return b
}

func (g *graphics) release() {
	if g.texture.program.Value != 0 {
		g.ctx.DeleteProgram(g.texture.program)
		g.ctx.DeleteBuffer(g.texture.quadXY)
		g.ctx.DeleteBuffer(g.texture.quadUV)
	}
	if g.fill.program.Value != 0 {
		g.ctx.DeleteProgram(g.fill.program)
		g.ctx.DeleteBuffer(g.fill.quadXY)
	}
}

// SetGraphicsState applies the parts of the state GL ES 2 has. Fog,
// lighting and alpha testing are fixed-function features and are ignored.
func (g *graphics) SetGraphicsState(s host.GraphicsState) {
	if s.AlphaBlending {
		g.ctx.Enable(gl.BLEND)
		g.ctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		g.ctx.Disable(gl.BLEND)
	}
	if s.DepthTesting {
		g.ctx.Enable(gl.DEPTH_TEST)
	} else {
		g.ctx.Disable(gl.DEPTH_TEST)
	}
	g.ctx.DepthMask(s.DepthWriting)
}

func (g *graphics) BindTexture(id texture.ID, unit int) {
	g.ctx.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	g.ctx.BindTexture(gl.TEXTURE_2D, gl.Texture{Value: uint32(id)})
}

// DrawQuad draws the texture bound to unit 0 over an axis-aligned quad
// given as top-left, top-right, bottom-right and bottom-left corners.
func (g *graphics) DrawQuad(q [4]host.Vertex) {
	ctx := g.ctx
	ctx.UseProgram(g.texture.program)
	writeAff3(ctx, g.texture.mvp, clipAff3(g.screen,
		float64(q[0].X), float64(q[0].Y), float64(q[2].X), float64(q[2].Y)))
	writeAff3(ctx, g.texture.uvp, uvAff3(q))
	ctx.Uniform1i(g.texture.sample, 0)

	ctx.BindBuffer(gl.ARRAY_BUFFER, g.texture.quadXY)
	ctx.EnableVertexAttribArray(g.texture.pos)
	ctx.VertexAttribPointer(g.texture.pos, 2, gl.FLOAT, false, 0, 0)

	ctx.BindBuffer(gl.ARRAY_BUFFER, g.texture.quadUV)
	ctx.EnableVertexAttribArray(g.texture.inUV)
	ctx.VertexAttribPointer(g.texture.inUV, 2, gl.FLOAT, false, 0, 0)

	ctx.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	ctx.DisableVertexAttribArray(g.texture.pos)
	ctx.DisableVertexAttribArray(g.texture.inUV)
}

// FillRect fills r, blending c over what is already drawn.
func (g *graphics) FillRect(r coord.Rect, c color.RGBA) {
	ctx := g.ctx
	ctx.Enable(gl.BLEND)
	ctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	ctx.UseProgram(g.fill.program)
	writeAff3(ctx, g.fill.mvp, clipAff3(g.screen,
		float64(r.Left), float64(r.Top), float64(r.Right), float64(r.Bottom)))
	ctx.Uniform4f(g.fill.color,
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)

	ctx.BindBuffer(gl.ARRAY_BUFFER, g.fill.quadXY)
	ctx.EnableVertexAttribArray(g.fill.pos)
	ctx.VertexAttribPointer(g.fill.pos, 2, gl.FLOAT, false, 0, 0)
	ctx.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	ctx.DisableVertexAttribArray(g.fill.pos)
}

// clipAff3 maps the unit quad of quadXYCoords onto the host-frame rectangle
// with the given edges, in clip space. The host frame and clip space both
// have Y pointing up, so no flip is needed:
//
//	L = 2*(left-screen.Left)/W - 1, and likewise for R, T and B
//	x' = (R-L)/2 * x + (R+L)/2
//	y' = (T-B)/2 * y + (T+B)/2
func clipAff3(screen coord.Rect, left, top, right, bottom float64) f64.Aff3 {
	w, h := float64(screen.Width()), float64(screen.Height())
	if w <= 0 || h <= 0 {
		return f64.Aff3{}
	}
	l := 2*(left-float64(screen.Left))/w - 1
	r := 2*(right-float64(screen.Left))/w - 1
	t := 2*(top-float64(screen.Bottom))/h - 1
	b := 2*(bottom-float64(screen.Bottom))/h - 1
	return f64.Aff3{
		(r - l) / 2, 0, (r + l) / 2,
		0, (t - b) / 2, (t + b) / 2,
	}
}

// uvAff3 maps the unit square of quadUVCoords onto the texture coordinates
// carried by the quad's top-left and bottom-right vertices.
func uvAff3(q [4]host.Vertex) f64.Aff3 {
	u0, v0 := float64(q[0].U), float64(q[0].V)
	u1, v1 := float64(q[2].U), float64(q[2].V)
	return f64.Aff3{
		u1 - u0, 0, u0,
		0, v1 - v0, v0,
	}
}

// writeAff3 loads a into u as a column-major mat3.
func writeAff3(ctx gl.Context, u gl.Uniform, a f64.Aff3) {
	var m [9]float32
	m[0*3+0] = float32(a[0*3+0])
	m[0*3+1] = float32(a[1*3+0])
	m[1*3+0] = float32(a[0*3+1])
	m[1*3+1] = float32(a[1*3+1])
	m[2*3+0] = float32(a[0*3+2])
	m[2*3+1] = float32(a[1*3+2])
	m[2*3+2] = 1
	ctx.UniformMatrix3fv(u, m[:])
}

// f32Bytes returns the byte representation of float32 values in the given
// byte order.
func f32Bytes(byteOrder binary.ByteOrder, values ...float32) []byte {
	b := make([]byte, 4*len(values))
	for i, v := range values {
		byteOrder.PutUint32(b[4*i:], math.Float32bits(v))
	}
	return b
}

func compileProgram(ctx gl.Context, vSrc, fSrc string) (gl.Program, error) {
	program := ctx.CreateProgram()
	if program.Value == 0 {
		return gl.Program{}, xerrors.New("desktop: no programs available")
	}

	vertexShader, err := compileShader(ctx, gl.VERTEX_SHADER, vSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fragmentShader, err := compileShader(ctx, gl.FRAGMENT_SHADER, fSrc)
	if err != nil {
		ctx.DeleteShader(vertexShader)
		return gl.Program{}, err
	}

	ctx.AttachShader(program, vertexShader)
	ctx.AttachShader(program, fragmentShader)
	ctx.LinkProgram(program)

	// Flag shaders for deletion when program is unlinked.
	ctx.DeleteShader(vertexShader)
	ctx.DeleteShader(fragmentShader)

	if ctx.GetProgrami(program, gl.LINK_STATUS) == 0 {
		defer ctx.DeleteProgram(program)
		return gl.Program{}, xerrors.Errorf("desktop: program link: %s", ctx.GetProgramInfoLog(program))
	}
	return program, nil
}

func compileShader(ctx gl.Context, shaderType gl.Enum, src string) (gl.Shader, error) {
	shader := ctx.CreateShader(shaderType)
	if shader.Value == 0 {
		return gl.Shader{}, xerrors.Errorf("desktop: could not create shader (type %v)", shaderType)
	}
	ctx.ShaderSource(shader, src)
	ctx.CompileShader(shader)
	if ctx.GetShaderi(shader, gl.COMPILE_STATUS) == 0 {
		defer ctx.DeleteShader(shader)
		return gl.Shader{}, xerrors.Errorf("desktop: shader compile: %s", ctx.GetShaderInfoLog(shader))
	}
	return shader, nil
}

var quadXYCoords = f32Bytes(binary.LittleEndian,
	-1, +1, // top left
	+1, +1, // top right
	-1, -1, // bottom left
	+1, -1, // bottom right
)

var quadUVCoords = f32Bytes(binary.LittleEndian,
	0, 0, // top left
	1, 0, // top right
	0, 1, // bottom left
	1, 1, // bottom right
)

const textureVertexSrc = `#version 100
uniform mat3 mvp;
uniform mat3 uvp;
attribute vec3 pos;
attribute vec2 inUV;
varying vec2 uv;
void main() {
	vec3 p = pos;
	p.z = 1.0;
	gl_Position = vec4(mvp * p, 1);
	uv = (uvp * vec3(inUV, 1)).xy;
}
`

const textureFragmentSrc = `#version 100
precision mediump float;
varying vec2 uv;
uniform sampler2D sample;
void main() {
	gl_FragColor = texture2D(sample, uv);
}
`

const fillVertexSrc = `#version 100
uniform mat3 mvp;
attribute vec3 pos;
void main() {
	vec3 p = pos;
	p.z = 1.0;
	gl_Position = vec4(mvp * p, 1);
}
`

const fillFragmentSrc = `#version 100
precision mediump float;
uniform vec4 color;
void main() {
	gl_FragColor = color;
}
`
