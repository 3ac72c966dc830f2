// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package echo is a minimal view.Renderer for exercising hosts without a
// browser engine.
//
// An echo view does not run the page it loads. It checks that the page exists,
// reports the usual loading notifications, and paints a panel of text showing
// the page's title and URL, the view's size and focus, the last mouse event,
// the scroll offset and whatever has been typed into it.
package echo

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/xerrors"

	"github.com/x-z7a/skyscript/handlecache"
	"github.com/x-z7a/skyscript/surface"
	"github.com/x-z7a/skyscript/view"
)

var (
	background = color.RGBA{0x20, 0x20, 0x20, 0xff}
	foreground = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	accent     = color.RGBA{0x4a, 0x9e, 0xff, 0xff}
)

// Renderer creates echo views that load pages from a file system.
type Renderer struct {
	root  fs.FS
	log   logr.Logger
	views []*View
	paths *handlecache.Cache[string] // URL to path in root
}

var _ view.Renderer = (*Renderer)(nil)

// New returns a Renderer resolving file URLs in root. URL paths are taken
// relative to root.
func New(root fs.FS, log logr.Logger) *Renderer {
	return &Renderer{root: root, log: log.WithName("echo"), paths: handlecache.New[string]()}
}

func (r *Renderer) CreateView(size image.Point, opts *view.Options) view.View {
	v := &View{r: r, bitmap: surface.NewBitmap(size), needsPaint: true}
	r.views = append(r.views, v)
	return v
}

// Update delivers pending load notifications.
func (r *Renderer) Update() {
	for _, v := range r.views {
		v.finishLoad()
	}
}

// Render repaints every view that changed since the last Render.
func (r *Renderer) Render() {
	for _, v := range r.views {
		if v.needsPaint {
			v.paint()
			v.needsPaint = false
		}
	}
}

// View is an echo view.
type View struct {
	r      *Renderer
	bitmap *surface.Bitmap

	vl view.ViewListener
	ll view.LoadListener

	url     string
	pending bool
	frames  uint64
	title   string
	status  string

	focused bool
	mouse   view.MouseEvent
	typed   []rune
	scrollY int

	needsPaint bool
}

var _ view.View = (*View)(nil)

func (v *View) Surface() surface.Surface { return v.bitmap }

func (v *View) Resize(size image.Point) {
	v.bitmap.Resize(size)
	v.needsPaint = true
}

// LoadURL starts loading u. Notifications are delivered by the next Update.
func (v *View) LoadURL(u string) {
	v.url = u
	v.pending = true
	v.frames++
	v.title = ""
	v.status = "loading"
	if v.ll != nil {
		v.ll.OnBeginLoading(v, v.frame())
	}
	v.needsPaint = true
}

func (v *View) frame() view.Frame {
	return view.Frame{ID: v.frames, IsMainFrame: true, URL: v.url}
}

var titleRE = regexp.MustCompile(`(?is)<title>(.*?)</title>`)

func (v *View) finishLoad() {
	if !v.pending {
		return
	}
	v.pending = false
	v.needsPaint = true
	f := v.frame()

	name, err := v.r.resolve(v.url)
	var data []byte
	if err == nil {
		data, err = fs.ReadFile(v.r.root, name)
	}
	if err != nil {
		v.status = "failed"
		v.r.log.V(1).Info("load failed", "url", v.url, "err", err.Error())
		if v.ll != nil {
			v.ll.OnFailLoading(v, f, view.LoadError{Description: err.Error(), Domain: "file", Code: -1})
		}
		return
	}
	v.status = fmt.Sprintf("loaded %d bytes", len(data))
	if m := titleRE.FindSubmatch(data); m != nil {
		v.title = strings.TrimSpace(string(m[1]))
		if v.vl != nil {
			v.vl.OnChangeTitle(v, v.title)
		}
	}
	if v.ll != nil {
		v.ll.OnDOMReady(v, f)
		v.ll.OnFinishLoading(v, f)
	}
	if v.vl != nil {
		v.vl.OnAddConsoleMessage(v, view.ConsoleMessage{
			Source:   "other",
			Level:    "info",
			Message:  "echo renderer: scripts are not run",
			SourceID: v.url,
		})
	}
}

// resolve returns the path in root named by the file URL u. Resolved paths are
// cached; the file itself is read on every load.
func (r *Renderer) resolve(u string) (string, error) {
	var err error
	name, ok := r.paths.Lookup(u, func(u string) (string, bool) {
		var name string
		name, err = filePath(u)
		return name, err == nil
	})
	if !ok {
		return "", err
	}
	return name, nil
}

// filePath returns the fs.FS path named by a file URL.
func filePath(u string) (string, error) {
	p, err := url.Parse(u)
	if err != nil {
		return "", xerrors.Errorf("parsing %q: %w", u, err)
	}
	if p.Scheme != "file" {
		return "", xerrors.Errorf("unsupported scheme %q", p.Scheme)
	}
	name := strings.TrimPrefix(p.Path, "/")
	if !fs.ValidPath(name) {
		return "", xerrors.Errorf("invalid path %q", p.Path)
	}
	return name, nil
}

func (v *View) SetNeedsPaint(b bool) { v.needsPaint = v.needsPaint || b }

func (v *View) Focus() {
	v.focused = true
	v.needsPaint = true
}

func (v *View) Unfocus() {
	v.focused = false
	v.needsPaint = true
}

func (v *View) FireMouseEvent(e view.MouseEvent) {
	v.mouse = e
	v.needsPaint = true
}

func (v *View) FireKeyEvent(e view.KeyEvent) {
	switch {
	case e.Type == view.Char:
		v.typed = append(v.typed, []rune(e.Text)...)
	case e.Type == view.RawKeyDown && e.VirtualKeyCode == 0x08:
		if len(v.typed) > 0 {
			v.typed = v.typed[:len(v.typed)-1]
		}
	default:
		return
	}
	v.needsPaint = true
}

func (v *View) FireScrollEvent(e view.ScrollEvent) {
	v.scrollY += e.DeltaY
	v.needsPaint = true
}

func (v *View) SetViewListener(l view.ViewListener) { v.vl = l }
func (v *View) SetLoadListener(l view.LoadListener) { v.ll = l }

// Typed returns the text typed into the view so far.
func (v *View) Typed() string { return string(v.typed) }

// Title returns the title of the loaded page.
func (v *View) Title() string { return v.title }

// Lines returns the text the view paints, one line per element.
func (v *View) Lines() []string {
	focus := "unfocused"
	if v.focused {
		focus = "focused"
	}
	size := v.bitmap.Size()
	return []string{
		v.title,
		v.url,
		v.status,
		fmt.Sprintf("%dx%d %s", size.X, size.Y, focus),
		fmt.Sprintf("mouse %v %v at (%d, %d)", v.mouse.Type, v.mouse.Button, v.mouse.X, v.mouse.Y),
		fmt.Sprintf("scroll %d", v.scrollY),
		"> " + string(v.typed),
	}
}

func (v *View) paint() {
	b := v.bitmap
	if b.Size().X == 0 || b.Size().Y == 0 {
		return
	}
	b.Fill(b.Bounds(), background)
	dst := b.Image()
	face := basicfont.Face7x13
	m := face.Metrics()
	lineHeight := m.Height.Ceil() + 2
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(foreground),
		Face: face,
	}
	for i, line := range v.Lines() {
		d.Dot = fixed.Point26_6{
			X: fixed.I(8),
			Y: fixed.I(8 + i*lineHeight + m.Ascent.Ceil()),
		}
		d.DrawString(line)
	}

	// Crosshair at the last mouse position.
	for i := -4; i <= 4; i++ {
		dst.Set(v.mouse.X+i, v.mouse.Y, accent)
		dst.Set(v.mouse.X, v.mouse.Y+i, accent)
	}
	b.Invalidate(b.Bounds())
}
