// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

type logrusSink struct {
	e    *logrus.Entry
	name string
}

var _ logr.LogSink = (*logrusSink)(nil)

func newLogrusSink(w io.Writer) *logrusSink {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return &logrusSink{e: logrus.NewEntry(l)}
}

func (*logrusSink) Init(logr.RuntimeInfo) {}
func (*logrusSink) Enabled(int) bool      { return true }

func (s *logrusSink) Info(v int, msg string, keysAndValues ...interface{}) {
	level := logrus.InfoLevel
	if v > 0 {
		level = logrus.DebugLevel
	}
	s.entry(keysAndValues).Log(level, msg)
}

func (s *logrusSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.entry(keysAndValues).WithError(err).Error(msg)
}

func (s *logrusSink) entry(keysAndValues []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	if s.name != "" {
		fields["logger"] = s.name
	}
	pairs(keysAndValues, func(k string, v interface{}) {
		fields[k] = v
	})
	return s.e.WithFields(fields)
}

func (s *logrusSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &logrusSink{e: s.entry(keysAndValues), name: s.name}
}

func (s *logrusSink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.name = joinName(s.name, name)
	return &s2
}
