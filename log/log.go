// log/log.go
// Copyright(c) 2024 flagsearch-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package log wraps slog with a callstack-decorated Logger that writes to
// two rotated files and echoes warnings and errors to stderr.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps *slog.Logger, decorating every call with a captured
// callstack and an elapsed-time marker.
type Logger struct {
	*slog.Logger
	LogDir string
	Start  time.Time
}

// New builds a Logger that writes to dir/last_execution.log (truncated on
// each run) and dir/history.log (appended across runs), and mirrors
// warnings and errors to stderr.
func New(level string, dir string) *Logger {
	if dir == "" {
		dir = "logs"
	}

	last := &lumberjack.Logger{
		Filename: filepath.Join(dir, "last_execution.log"),
		MaxSize:  32, // MB
	}
	_ = os.Truncate(last.Filename, 0)

	history := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "history.log"),
		MaxSize:    64, // MB
		MaxAge:     14,
		MaxBackups: 5,
		Compress:   true,
	}

	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "%s: invalid log level", level)
	}

	h := newHandler(io.MultiWriter(last, history), &slog.HandlerOptions{Level: lvl})
	l := &Logger{
		Logger: slog.New(h),
		LogDir: dir,
		Start:  time.Now(),
	}

	l.Info("starting up", slog.Time("start", l.Start))
	l.Info("system information",
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("GOOS", runtime.GOOS),
		slog.Int("NumCPUs", runtime.NumCPU()))

	var deps []any
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range bi.Deps {
			deps = append(deps, slog.String(dep.Path, dep.Version))
		}
		l.Info("build", slog.String("Go version", bi.GoVersion), slog.Group("Dependencies", deps...))
	}

	return l
}

func (l *Logger) attrs(args []any) []any {
	return append([]any{
		slog.Any("callstack", Callstack(nil).Strings()),
		slog.Duration("elapsed", time.Since(l.Start)),
	}, args...)
}

// Debug wraps slog.Debug to add call stack information (and similarly for
// the following Logger methods). We also wrap the logging methods to allow
// a nil *Logger, in which case debug and info messages are discarded
// (though warnings and errors still go through to slog).
func (l *Logger) Debug(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelDebug) {
		l.Logger.Debug(msg, l.attrs(args)...)
	}
}

func (l *Logger) Debugf(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...), l.attrs(nil)...)
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelInfo) {
		l.Logger.Info(msg, l.attrs(args)...)
	}
}

func (l *Logger) Infof(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelInfo) {
		l.Logger.Info(fmt.Sprintf(msg, args...), l.attrs(nil)...)
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l == nil {
		slog.Warn(msg, args...)
		return
	}
	l.Logger.Warn(msg, l.attrs(args)...)
}

func (l *Logger) Warnf(msg string, args ...any) {
	if l == nil {
		slog.Warn(fmt.Sprintf(msg, args...))
		return
	}
	l.Logger.Warn(fmt.Sprintf(msg, args...), l.attrs(nil)...)
}

func (l *Logger) Error(msg string, args ...any) {
	if l == nil {
		slog.Error(msg, args...)
		return
	}
	l.Logger.Error(msg, l.attrs(args)...)
}

func (l *Logger) Errorf(msg string, args ...any) {
	if l == nil {
		slog.Error(fmt.Sprintf(msg, args...))
		return
	}
	l.Logger.Error(fmt.Sprintf(msg, args...), l.attrs(nil)...)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
		LogDir: l.LogDir,
		Start:  l.Start,
	}
}

// CatchAndReportCrash recovers a panic, logs it, and saves a report
// alongside the log files. It does not phone anything home: call it
// deferred at the top of main.
func (l *Logger) CatchAndReportCrash() any {
	if dlv, ok := os.LookupEnv("_"); ok && strings.HasSuffix(dlv, "/dlv") {
		return nil
	}

	err := recover()
	if err != nil {
		l.Errorf("crashed: %v", err)

		report := fmt.Sprintf("crashed: %v\n", err)
		report += "sys: " + runtime.GOARCH + "/" + runtime.GOOS + "\n"
		report += string(debug.Stack())

		fmt.Println(report)

		fn := filepath.Join(l.LogDir, "crash-"+time.Now().Format(time.RFC3339)+".txt")
		_ = os.WriteFile(fn, []byte(report), 0o600)
	}

	return err
}

///////////////////////////////////////////////////////////////////////////

// handler is an implementation of slog.Handler that sends log entries both
// to a JSON handler (that will log to disk) and a text handler that prints
// warnings and errors to stderr.
type handler struct {
	json slog.Handler
	txt  slog.Handler
}

func newHandler(w io.Writer, opts *slog.HandlerOptions) *handler {
	return &handler{
		json: slog.NewJSONHandler(w, opts),
		txt:  slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.json.Enabled(ctx, level) || h.txt.Enabled(ctx, level)
}

func (h *handler) Handle(ctx context.Context, rec slog.Record) error {
	if h.txt.Enabled(ctx, rec.Level) {
		_ = h.txt.Handle(ctx, rec)
	}
	if h.json.Enabled(ctx, rec.Level) {
		return h.json.Handle(ctx, rec)
	}
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{
		json: h.json.WithAttrs(slices.Clone(attrs)),
		txt:  h.txt.WithAttrs(slices.Clone(attrs)),
	}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{
		json: h.json.WithGroup(name),
		txt:  h.txt.WithGroup(name),
	}
}

///////////////////////////////////////////////////////////////////////////

// AnyPointerSlice is similar to slog.Any but takes a slice of pointers;
// unlike passing a slice of pointers to slog.Any, it logs the values
// pointed-to by the pointers rather than the pointer values themselves.
func AnyPointerSlice[T any](name string, ptrs []*T) slog.Attr {
	values := make([]any, len(ptrs))
	for i, ptr := range ptrs {
		if ptr == nil {
			values[i] = nil
			continue
		}
		if lv, ok := any(ptr).(slog.LogValuer); ok {
			v := lv.LogValue()
			if v.Kind() == slog.KindGroup {
				m := make(map[string]any)
				for _, attr := range v.Group() {
					m[attr.Key] = attr.Value.Any()
				}
				values[i] = m
			} else {
				values[i] = v.Any()
			}
		} else {
			values[i] = *ptr
		}
	}
	return slog.Any(name, values)
}
