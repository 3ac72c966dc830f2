// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package telemetry

import (
	"context"
	"image"
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/x-z7a/skyscript/texture"
)

func TestTotals(t *testing.T) {
	ctx := context.Background()
	tel, err := Setup(Options{Enabled: true, Log: logr.Discard()})
	if err != nil {
		t.Fatal(err)
	}
	defer tel.Shutdown(ctx)

	m := tel.Metrics
	m.Upload(ctx, "map", texture.Upload{ID: 1, Size: image.Pt(2, 2), Bytes: 16, Alloc: true})
	m.Upload(ctx, "map", texture.Upload{ID: 1, Size: image.Pt(2, 2), Bytes: 16})
	m.Upload(ctx, "radio", texture.Upload{ID: 2, Size: image.Pt(1, 1), Bytes: 4, Alloc: true})
	m.Resize(ctx, "map")
	m.Frame(ctx, "map")
	m.Frame(ctx, "radio")
	m.Input(ctx, "map", InputClick)
	m.Input(ctx, "map", InputKey)
	m.Input(ctx, "radio", InputScroll)

	got, err := tel.Totals(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int64{
		TextureAllocs:  2,
		TextureUploads: 3,
		UploadBytes:    36,
		Resizes:        1,
		Frames:         2,
		InputEvents:    3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Totals mismatch (-want +got):\n%s", diff)
	}
	if err := tel.Report(ctx); err != nil {
		t.Errorf("Report: %v", err)
	}
}

func TestDisabled(t *testing.T) {
	ctx := context.Background()
	tel, err := Setup(Options{Log: logr.Discard()})
	if err != nil {
		t.Fatal(err)
	}
	tel.Metrics.Frame(ctx, "map")
	_, span := tel.Tracer.Start(ctx, "noop")
	span.End()
	got, err := tel.Totals(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Totals: got %v, want empty", got)
	}
	if err := tel.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	m.Upload(ctx, "a", texture.Upload{Bytes: 4, Alloc: true})
	m.Resize(ctx, "a")
	m.Frame(ctx, "a")
	m.Input(ctx, "a", InputMove)
}

func TestSpans(t *testing.T) {
	ctx := context.Background()
	rec := tracetest.NewSpanRecorder()
	tel, err := Setup(Options{Enabled: true, Log: logr.Discard(), SpanProcessors: []sdktrace.SpanProcessor{rec}})
	if err != nil {
		t.Fatal(err)
	}
	_, span := tel.Tracer.Start(ctx, "app.Initialize")
	span.SetAttributes(attribute.String("app", "map"))
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans: got %d, want 1", len(ended))
	}
	if got := ended[0].Name(); got != "app.Initialize" {
		t.Errorf("span name: got %q", got)
	}
	if got := ended[0].InstrumentationScope().Name; got != instrumentationName {
		t.Errorf("scope: got %q, want %q", got, instrumentationName)
	}
	if err := tel.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
