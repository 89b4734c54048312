// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package chartlog holds the logger shared by all chart packages.
// By default nothing is logged.
package chartlog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the chart packages.
// Pass nil to restore the silent default.
//
// Levels:
//   - [slog.LevelDebug]: layout degradation, rejected zoom steps, fling lifecycle
//   - [slog.LevelInfo]: configuration read and write
//   - [slog.LevelWarn]: sanitized configuration values
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

func Logger() *slog.Logger {
	return loggerPtr.Load()
}
