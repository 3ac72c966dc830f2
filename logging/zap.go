// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/go-logr/logr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newZapLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}

// FromZap returns a logger backed by l, with no level filtering beyond l's
// own.
func FromZap(l *zap.Logger) logr.Logger {
	return logr.New(newZapSink(l))
}

type zapSink struct {
	l *zap.Logger
}

var _ logr.LogSink = (*zapSink)(nil)

func newZapSink(l *zap.Logger) *zapSink { return &zapSink{l: l} }

func (*zapSink) Init(logr.RuntimeInfo) {}

func (s *zapSink) Enabled(v int) bool {
	return s.l.Core().Enabled(zapLevel(v))
}

// zapLevel maps V(0) to info and every higher verbosity to debug.
func zapLevel(v int) zapcore.Level {
	if v > 0 {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func (s *zapSink) Info(v int, msg string, keysAndValues ...interface{}) {
	if ce := s.l.Check(zapLevel(v), msg); ce != nil {
		ce.Write(zapFields(keysAndValues)...)
	}
}

func (s *zapSink) Error(err error, msg string, keysAndValues ...interface{}) {
	if ce := s.l.Check(zapcore.ErrorLevel, msg); ce != nil {
		ce.Write(append(zapFields(keysAndValues), zap.Error(err))...)
	}
}

func (s *zapSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &zapSink{l: s.l.With(zapFields(keysAndValues)...)}
}

func (s *zapSink) WithName(name string) logr.LogSink {
	return &zapSink{l: s.l.Named(name)}
}

func zapFields(keysAndValues []interface{}) []zap.Field {
	fs := make([]zap.Field, 0, len(keysAndValues)/2)
	pairs(keysAndValues, func(k string, v interface{}) {
		fs = append(fs, zap.Any(k, v))
	})
	return fs
}
