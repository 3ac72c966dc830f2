// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the logr.Logger the pipeline logs through.
//
// Code outside this package only sees logr. The backend is chosen by
// configuration: zap, zerolog, logrus, go-kit or the standard library
// logger. Each app logs under its own name, so backends render the logger
// name next to the message.
package logging

import (
	"fmt"
	"io"
	stdlog "log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"golang.org/x/xerrors"
)

// Backend names.
const (
	Zap     = "zap"
	Zerolog = "zerolog"
	Logrus  = "logrus"
	GoKit   = "gokit"
	Std     = "std"
)

// Backends lists the valid backend names.
var Backends = []string{Zap, Zerolog, Logrus, GoKit, Std}

// Level is the minimum severity logged.
type Level int

const (
	// LevelDebug logs V(1) messages and above.
	LevelDebug Level = iota
	// LevelInfo logs V(0) messages and errors.
	LevelInfo
	// LevelError logs errors only.
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel parses "debug", "info" or "error". The empty string is info.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	}
	return 0, xerrors.Errorf("unknown log level %q", s)
}

// ValidBackend reports whether name is one of Backends. The empty string
// selects the default, zap.
func ValidBackend(name string) bool {
	if name == "" {
		return true
	}
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}

// Options are the arguments to New.
type Options struct {
	Backend string
	Level   Level
}

// New returns a logger writing to w through the chosen backend.
func New(opts Options, w io.Writer) (logr.Logger, error) {
	var sink logr.LogSink
	switch opts.Backend {
	case Zap, "":
		sink = newZapSink(newZapLogger(w))
	case Zerolog:
		sink = newZerologSink(w)
	case Logrus:
		sink = newLogrusSink(w)
	case GoKit:
		sink = newGoKitSink(w)
	case Std:
		stdr.SetVerbosity(1)
		sink = stdr.New(stdlog.New(w, "", stdlog.LstdFlags)).GetSink()
	default:
		return logr.Discard(), xerrors.Errorf("unknown log backend %q", opts.Backend)
	}
	return logr.New(&filter{sink: sink, level: opts.Level}), nil
}

// filter applies a Level to any backend.
type filter struct {
	sink  logr.LogSink
	level Level
}

var _ logr.LogSink = (*filter)(nil)

func (f *filter) Init(info logr.RuntimeInfo) {
	// One more frame for the filter itself.
	info.CallDepth++
	f.sink.Init(info)
}

func (f *filter) Enabled(v int) bool {
	switch f.level {
	case LevelError:
		return false
	case LevelInfo:
		return v <= 0
	}
	return v <= 1
}

func (f *filter) Info(v int, msg string, keysAndValues ...interface{}) {
	f.sink.Info(v, msg, keysAndValues...)
}

func (f *filter) Error(err error, msg string, keysAndValues ...interface{}) {
	f.sink.Error(err, msg, keysAndValues...)
}

func (f *filter) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &filter{sink: f.sink.WithValues(keysAndValues...), level: f.level}
}

func (f *filter) WithName(name string) logr.LogSink {
	return &filter{sink: f.sink.WithName(name), level: f.level}
}

// pairs calls fn for each key/value pair. A dangling key gets a placeholder
// value.
func pairs(keysAndValues []interface{}, fn func(key string, value interface{})) {
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		var value interface{} = "(MISSING)"
		if i+1 < len(keysAndValues) {
			value = keysAndValues[i+1]
		}
		fn(key, value)
	}
}

func joinName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
