// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/xerrors"

	"github.com/x-z7a/skyscript/texture"
)

// Instrument names.
const (
	TextureAllocs  = "skyscript.texture.allocations"
	TextureUploads = "skyscript.texture.uploads"
	UploadBytes    = "skyscript.texture.upload_bytes"
	Resizes        = "skyscript.view.resizes"
	Frames         = "skyscript.window.frames"
	InputEvents    = "skyscript.input.events"
)

// Input kinds counted by Metrics.Input.
const (
	InputClick  = "click"
	InputMove   = "move"
	InputScroll = "scroll"
	InputKey    = "key"
)

var appKey = attribute.Key("app")

// Metrics records the pipeline's counters. A nil *Metrics records nothing.
type Metrics struct {
	allocs  metric.Int64Counter
	uploads metric.Int64Counter
	bytes   metric.Int64Counter
	resizes metric.Int64Counter
	frames  metric.Int64Counter
	inputs  metric.Int64Counter
}

// NewMetrics creates the pipeline's instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(instrumentationName)
	m := &Metrics{}
	for _, in := range []struct {
		c    *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&m.allocs, TextureAllocs, "Textures allocated for view surfaces.", "{texture}"},
		{&m.uploads, TextureUploads, "Whole-surface texture uploads, allocations included.", "{upload}"},
		{&m.bytes, UploadBytes, "Pixel bytes uploaded to textures.", "By"},
		{&m.resizes, Resizes, "View resizes applied after a window geometry change.", "{resize}"},
		{&m.frames, Frames, "Window draw callbacks that composited a texture.", "{frame}"},
		{&m.inputs, InputEvents, "Host input events delivered to views.", "{event}"},
	} {
		c, err := meter.Int64Counter(in.name, metric.WithDescription(in.desc), metric.WithUnit(in.unit))
		if err != nil {
			return nil, xerrors.Errorf("creating counter %s: %w", in.name, err)
		}
		*in.c = c
	}
	return m, nil
}

func appAttr(app string) metric.AddOption {
	return metric.WithAttributes(appKey.String(app))
}

// Upload records one texture upload for app.
func (m *Metrics) Upload(ctx context.Context, app string, u texture.Upload) {
	if m == nil {
		return
	}
	a := appAttr(app)
	if u.Alloc {
		m.allocs.Add(ctx, 1, a)
	}
	m.uploads.Add(ctx, 1, a)
	m.bytes.Add(ctx, int64(u.Bytes), a)
}

// Resize records one applied view resize for app.
func (m *Metrics) Resize(ctx context.Context, app string) {
	if m == nil {
		return
	}
	m.resizes.Add(ctx, 1, appAttr(app))
}

// Frame records one composited frame for app.
func (m *Metrics) Frame(ctx context.Context, app string) {
	if m == nil {
		return
	}
	m.frames.Add(ctx, 1, appAttr(app))
}

// Input records one input event of the given kind delivered to app.
func (m *Metrics) Input(ctx context.Context, app, kind string) {
	if m == nil {
		return
	}
	m.inputs.Add(ctx, 1, metric.WithAttributes(appKey.String(app), attribute.String("kind", kind)))
}
