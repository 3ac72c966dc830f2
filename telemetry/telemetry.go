// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package telemetry builds the OpenTelemetry providers used by the window
// pipeline.
//
// Counters are collected by a manual reader and reported through the logger
// on demand, and ended spans are logged at debug verbosity. When telemetry is
// disabled every instrument and tracer is a no-op.
package telemetry

import (
	"context"
	"sort"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/sdk/resource"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/xerrors"
)

const instrumentationName = "github.com/x-z7a/skyscript"

// Options are the arguments to Setup.
type Options struct {
	Enabled bool
	Log     logr.Logger
	// ServiceVersion is recorded on the resource.
	ServiceVersion string
	// SpanProcessors receive ended spans in addition to the logger.
	SpanProcessors []sdktrace.SpanProcessor
}

// Telemetry holds the providers built by Setup.
type Telemetry struct {
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
	Metrics        *Metrics
	Tracer         trace.Tracer

	log    logr.Logger
	reader *sdkmetric.ManualReader
	mp     *sdkmetric.MeterProvider
	tp     *sdktrace.TracerProvider
}

// Setup builds SDK providers, or no-op ones if opts.Enabled is false.
func Setup(opts Options) (*Telemetry, error) {
	t := &Telemetry{log: opts.Log}
	if !opts.Enabled {
		t.MeterProvider = metricnoop.NewMeterProvider()
		t.TracerProvider = tracenoop.NewTracerProvider()
	} else {
		res := resource.NewSchemaless(
			attribute.String("service.name", "skyscript"),
			attribute.String("service.version", opts.ServiceVersion),
		)
		t.reader = sdkmetric.NewManualReader()
		t.mp = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(t.reader),
			sdkmetric.WithResource(res),
		)
		tpOpts := []sdktrace.TracerProviderOption{
			sdktrace.WithResource(res),
			sdktrace.WithSpanProcessor(&logProcessor{log: opts.Log}),
		}
		for _, sp := range opts.SpanProcessors {
			tpOpts = append(tpOpts, sdktrace.WithSpanProcessor(sp))
		}
		t.tp = sdktrace.NewTracerProvider(tpOpts...)
		t.MeterProvider = t.mp
		t.TracerProvider = t.tp
	}
	m, err := NewMetrics(t.MeterProvider)
	if err != nil {
		return nil, err
	}
	t.Metrics = m
	t.Tracer = t.TracerProvider.Tracer(instrumentationName)
	return t, nil
}

// Totals returns the current value of every counter, summed over all
// attribute sets. It returns an empty map when telemetry is disabled.
func (t *Telemetry) Totals(ctx context.Context) (map[string]int64, error) {
	totals := map[string]int64{}
	if t.reader == nil {
		return totals, nil
	}
	var rm metricdata.ResourceMetrics
	if err := t.reader.Collect(ctx, &rm); err != nil {
		return nil, xerrors.Errorf("collecting metrics: %w", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}
	return totals, nil
}

// Report logs the counter totals.
func (t *Telemetry) Report(ctx context.Context) error {
	totals, err := t.Totals(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(totals))
	for n := range totals {
		names = append(names, n)
	}
	sort.Strings(names)
	kv := make([]interface{}, 0, 2*len(names))
	for _, n := range names {
		kv = append(kv, n, totals[n])
	}
	t.log.Info("telemetry", kv...)
	return nil
}

// Shutdown flushes and stops the SDK providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var first error
	if t.tp != nil {
		if err := t.tp.Shutdown(ctx); err != nil {
			first = xerrors.Errorf("shutting down tracer provider: %w", err)
		}
	}
	if t.mp != nil {
		if err := t.mp.Shutdown(ctx); err != nil && first == nil {
			first = xerrors.Errorf("shutting down meter provider: %w", err)
		}
	}
	return first
}

// logProcessor logs ended spans at debug verbosity.
type logProcessor struct {
	log logr.Logger
}

var _ sdktrace.SpanProcessor = (*logProcessor)(nil)

func (p *logProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (p *logProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	kv := []interface{}{"span", s.Name(), "duration", s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)}
	for _, a := range s.Attributes() {
		kv = append(kv, string(a.Key), a.Value.Emit())
	}
	if st := s.Status(); st.Description != "" {
		kv = append(kv, "status", st.Description)
	}
	p.log.V(1).Info("span ended", kv...)
}

func (p *logProcessor) Shutdown(context.Context) error   { return nil }
func (p *logProcessor) ForceFlush(context.Context) error { return nil }
