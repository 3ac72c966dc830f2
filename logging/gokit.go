// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-logr/logr"
)

type goKitSink struct {
	l    log.Logger
	name string
}

var _ logr.LogSink = (*goKitSink)(nil)

func newGoKitSink(w io.Writer) *goKitSink {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return &goKitSink{l: log.With(l, "ts", log.DefaultTimestampUTC)}
}

func (*goKitSink) Init(logr.RuntimeInfo) {}
func (*goKitSink) Enabled(int) bool      { return true }

func (s *goKitSink) Info(v int, msg string, keysAndValues ...interface{}) {
	l := level.Info(s.l)
	if v > 0 {
		l = level.Debug(s.l)
	}
	s.log(l, msg, keysAndValues)
}

func (s *goKitSink) Error(err error, msg string, keysAndValues ...interface{}) {
	kv := append(keysAndValues[:len(keysAndValues):len(keysAndValues)], "err", err)
	s.log(level.Error(s.l), msg, kv)
}

func (s *goKitSink) log(l log.Logger, msg string, keysAndValues []interface{}) {
	kv := make([]interface{}, 0, len(keysAndValues)+4)
	if s.name != "" {
		kv = append(kv, "logger", s.name)
	}
	kv = append(kv, "msg", msg)
	pairs(keysAndValues, func(k string, v interface{}) {
		kv = append(kv, k, v)
	})
	l.Log(kv...)
}

func (s *goKitSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	var kv []interface{}
	pairs(keysAndValues, func(k string, v interface{}) {
		kv = append(kv, k, v)
	})
	return &goKitSink{l: log.With(s.l, kv...), name: s.name}
}

func (s *goKitSink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.name = joinName(s.name, name)
	return &s2
}
