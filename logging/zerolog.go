// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
)

type zerologSink struct {
	l    zerolog.Logger
	name string
}

var _ logr.LogSink = (*zerologSink)(nil)

func newZerologSink(w io.Writer) *zerologSink {
	l := zerolog.New(zerolog.SyncWriter(w)).With().Timestamp().Logger()
	return &zerologSink{l: l}
}

func (*zerologSink) Init(logr.RuntimeInfo) {}
func (*zerologSink) Enabled(int) bool      { return true }

func (s *zerologSink) Info(v int, msg string, keysAndValues ...interface{}) {
	ev := s.l.Info()
	if v > 0 {
		ev = s.l.Debug()
	}
	s.write(ev, msg, keysAndValues)
}

func (s *zerologSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.write(s.l.Error().Err(err), msg, keysAndValues)
}

func (s *zerologSink) write(ev *zerolog.Event, msg string, keysAndValues []interface{}) {
	if ev == nil {
		return
	}
	if s.name != "" {
		ev = ev.Str("logger", s.name)
	}
	pairs(keysAndValues, func(k string, v interface{}) {
		ev = ev.Interface(k, v)
	})
	ev.Msg(msg)
}

func (s *zerologSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	c := s.l.With()
	pairs(keysAndValues, func(k string, v interface{}) {
		c = c.Interface(k, v)
	})
	return &zerologSink{l: c.Logger(), name: s.name}
}

func (s *zerologSink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.name = joinName(s.name, name)
	return &s2
}
