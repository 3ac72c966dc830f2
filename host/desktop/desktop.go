// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop runs apps in a GLFW window instead of the simulator.
//
// The GLFW window holds a wm.WM, which stands in for the simulator's window
// system. GLFW and GL calls must happen on the main OS thread, and Main
// takes it over: it polls for input and executes GL work there, while the
// function passed to Main runs the app pipeline on another goroutine. GL
// calls made by the pipeline through gl.Context are forwarded to the main
// thread, and input reaches the pipeline through a pump. Everything the
// pipeline does, including every window callback, therefore happens on one
// goroutine.
package desktop

import (
	"image"
	"image/color"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-logr/logr"
	"golang.org/x/mobile/gl"
	"golang.org/x/xerrors"

	"github.com/x-z7a/skyscript/coord"
	"github.com/x-z7a/skyscript/host/desktop/wm"
	"github.com/x-z7a/skyscript/internal/pump"
	"github.com/x-z7a/skyscript/texture/gltexture"
)

func init() {
	// GLFW requires the main thread, and the main goroutine starts on it.
	runtime.LockOSThread()
}

// DefaultFrameRate is the default number of frames drawn per second.
const DefaultFrameRate = 60

var background = color.RGBA{0x10, 0x14, 0x1c, 0xff}

// Options configure Main.
type Options struct {
	Title string
	// Size of the OS window. Zero means three quarters of the screen.
	Size      image.Point
	FrameRate int
	Log       logr.Logger
}

// Driver is the pipeline goroutine's handle on the desktop host.
type Driver struct {
	log      logr.Logger
	interval time.Duration

	glctx gl.Context
	gfx   *graphics
	wm    *wm.WM

	events      *pump.Pump[interface{}]
	publish     chan struct{}
	publishDone chan struct{}
}

// WM returns the window manager apps create their windows on. It implements
// host.Host.
func (d *Driver) WM() *wm.WM { return d.wm }

// Main opens the OS window and calls f with a Driver on a separate
// goroutine. It must be called from the main goroutine and returns when f
// returns.
func Main(opts Options, f func(d *Driver) error) error {
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultFrameRate
	}
	log := opts.Log

	if err := glfw.Init(); err != nil {
		return xerrors.Errorf("desktop: glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	size := opts.Size
	if size.X <= 0 || size.Y <= 0 {
		size = defaultWindowSize(log)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	win, err := glfw.CreateWindow(size.X, size.Y, opts.Title, nil, nil)
	if err != nil {
		return xerrors.Errorf("desktop: glfw.CreateWindow failed: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	glctx, worker := gl.NewContext()
	d := &Driver{
		log:         log,
		interval:    time.Second / time.Duration(opts.FrameRate),
		glctx:       glctx,
		events:      pump.New[interface{}](),
		publish:     make(chan struct{}),
		publishDone: make(chan struct{}),
	}
	defer d.events.Release()
	fbw, fbh := win.GetFramebufferSize()
	log.V(1).Info("window opened", "width", fbw, "height", fbh)

	in := &input{events: d.events, win: win}
	in.install()

	errc := make(chan error, 1)
	go func() {
		errc <- d.run(screenRect(fbw, fbh), f)
	}()

	heartbeat := time.NewTicker(time.Second / 120)
	defer heartbeat.Stop()
	workAvailable := worker.WorkAvailable()
	closing := false

	for {
		select {
		case err := <-errc:
			return err
		case <-d.publish:
			win.SwapBuffers()
			d.publishDone <- struct{}{}
		case <-heartbeat.C:
			glfw.PollEvents()
			if win.ShouldClose() && !closing {
				closing = true
				d.events.Send(closeEvent{})
			}
		case <-workAvailable:
			worker.DoWork()
		}
	}
}

// run is the pipeline goroutine.
func (d *Driver) run(screen coord.Rect, f func(d *Driver) error) error {
	gfx, err := newGraphics(d.glctx, screen)
	if err != nil {
		return err
	}
	defer gfx.release()
	d.gfx = gfx
	d.wm = wm.New(screen, gfx, gltexture.New(d.glctx), gfx)
	d.glctx.Viewport(0, 0, screen.Width(), screen.Height())
	return f(d)
}

// Run dispatches input and draws frames until the OS window is closed.
// Each frame calls frame, then draws the windows.
func (d *Driver) Run(frame func()) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case e := <-d.events.C():
			if !d.dispatch(e) {
				return
			}
		case <-ticker.C:
			d.paint(frame)
		}
	}
}

func (d *Driver) paint(frame func()) {
	ctx := d.glctx
	ctx.ClearColor(float32(background.R)/255, float32(background.G)/255, float32(background.B)/255, 1)
	ctx.Clear(gl.COLOR_BUFFER_BIT)
	if frame != nil {
		frame()
	}
	d.wm.Draw()
	// Flush blocks until every pending GL call has reached the driver, so
	// that the swap below shows this frame.
	ctx.Flush()
	d.publish <- struct{}{}
	<-d.publishDone
}

// dispatch applies an input event. It reports false once the OS window was
// asked to close.
func (d *Driver) dispatch(e interface{}) bool {
	switch e := e.(type) {
	case closeEvent:
		d.log.V(1).Info("window closing")
		return false
	case sizeEvent:
		r := screenRect(e.width, e.height)
		d.glctx.Viewport(0, 0, e.width, e.height)
		d.gfx.screen = r
		d.wm.SetScreenBounds(r)
	case mouseEvent:
		switch e.kind {
		case mousePress:
			d.wm.MouseDown(e.x, e.y, e.button)
		case mouseRelease:
			d.wm.MouseUp(e.x, e.y, e.button)
		default:
			d.wm.MouseMove(e.x, e.y)
		}
	case scrollEvent:
		d.wm.Scroll(e.x, e.y, e.clicks)
	case keyEvent:
		d.wm.Key(e.char, e.flags, e.vk)
	}
	return true
}

func screenRect(width, height int) coord.Rect {
	return coord.Rect{Left: 0, Top: height, Right: width, Bottom: 0}
}

func defaultWindowSize(log logr.Logger) image.Point {
	s, err := screenSize()
	if err != nil {
		log.V(1).Info("screen size unknown, using the primary monitor", "reason", err.Error())
		if m := glfw.GetPrimaryMonitor(); m != nil {
			if vm := m.GetVideoMode(); vm != nil {
				s = image.Point{vm.Width, vm.Height}
			}
		}
	}
	if s.X <= 0 || s.Y <= 0 {
		return image.Point{1280, 800}
	}
	return image.Point{s.X * 3 / 4, s.Y * 3 / 4}
}
