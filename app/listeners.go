// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import "github.com/x-z7a/skyscript/view"

// viewListener logs what a page writes to its console.
type viewListener struct{ w *Window }

func (l *viewListener) OnChangeTitle(_ view.View, title string) {
	l.w.log.V(1).Info("title", "title", title)
}

func (l *viewListener) OnAddConsoleMessage(_ view.View, m view.ConsoleMessage) {
	l.w.log.Info("console", "message", m.Message, "line", m.Line, "source", m.SourceID)
}

// loadListener logs page loading progress.
type loadListener struct{ w *Window }

func (l *loadListener) OnBeginLoading(_ view.View, f view.Frame) {
	l.w.log.Info("begin loading", "url", f.URL, "main_frame", f.IsMainFrame)
}

func (l *loadListener) OnFinishLoading(_ view.View, f view.Frame) {
	l.w.log.Info("finish loading", "url", f.URL, "main_frame", f.IsMainFrame)
}

func (l *loadListener) OnFailLoading(_ view.View, f view.Frame, err view.LoadError) {
	l.w.log.Error(err, "failed loading", "url", f.URL, "domain", err.Domain, "code", err.Code)
}

func (l *loadListener) OnDOMReady(_ view.View, f view.Frame) {
	l.w.log.Info("DOM ready", "url", f.URL, "main_frame", f.IsMainFrame)
}
