// seehuhn.de/go/canvasfx - drawing helpers for 2D canvases
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package log sets up the slog logger used by the canvasfx command.
//
// Settings can be given directly or via environment variables:
//
//	CANVASFX_LOG_LEVEL=debug|info|warn|error
//	CANVASFX_LOG_FORMAT=text|json
//	CANVASFX_LOG_FILE=<path>   (additional JSON log file, rotated)
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialisation.
// The zero value logs at INFO level, in text format, to standard error.
type Options struct {
	Level  string
	Format string // "text" or "json"
	File   string // optional path for a rotated JSON log file

	// Output receives the console log.  If nil, os.Stderr is used.
	Output io.Writer
}

var (
	mu      sync.Mutex
	current *slog.Logger
	file    *lumberjack.Logger
)

// L returns the application logger.  If Init has not been called, the
// logger is configured from the environment.
func L() *slog.Logger {
	mu.Lock()
	l := current
	mu.Unlock()
	if l != nil {
		return l
	}
	return Init(FromEnv())
}

// Init configures the application logger and installs it as the slog
// default.  A log file opened by an earlier call is closed.
func Init(opts Options) *slog.Logger {
	level := ParseLevel(opts.Level)
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(out, handlerOpts)
	} else {
		console = slog.NewTextHandler(out, handlerOpts)
	}

	handlers := []slog.Handler{console}
	var newFile *lumberjack.Logger
	if name := strings.TrimSpace(opts.File); name != "" {
		newFile = &lumberjack.Logger{
			Filename:   name,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		handlers = append(handlers, slog.NewJSONHandler(newFile, handlerOpts))
	}

	var h slog.Handler = console
	if len(handlers) > 1 {
		h = &multi{hs: handlers}
	}
	logger := slog.New(h).With(slog.String("app", "canvasfx"))

	mu.Lock()
	old := file
	current = logger
	file = newFile
	mu.Unlock()
	if old != nil {
		old.Close()
	}

	slog.SetDefault(logger)
	return logger
}

// Close closes the log file, if any.
func Close() error {
	mu.Lock()
	f := file
	file = nil
	mu.Unlock()
	if f == nil {
		return nil
	}
	return f.Close()
}

// FromEnv reads Options from the environment.
func FromEnv() Options {
	return Options{
		Level:  getenv("CANVASFX_LOG_LEVEL", "info"),
		Format: getenv("CANVASFX_LOG_FORMAT", "text"),
		File:   os.Getenv("CANVASFX_LOG_FILE"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// WithComponent returns a logger with the component attribute set.
func WithComponent(name string) *slog.Logger {
	return L().With(slog.String("component", name))
}

// ParseLevel converts a level name to a slog.Level.
// Unknown names give slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multi sends log records to several handlers.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
