// Package log wires up the tool's two reporting channels: structured
// progress logging through slog, and the raw artifact trace (TraceLogger).
//
// Without a log file, records below Error go to stdout and Error and above
// to stderr, so sources piped from stdout stay separable from diagnostics.
// A log file replaces the console entirely.
package log

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
)

// LevelTrace sits below Debug and carries per-artifact generation detail.
const LevelTrace slog.Level = slog.LevelDebug - 4

var levelNames = map[string]slog.Level{
	"trace": LevelTrace,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel maps a level name to its slog level; unknown names fall back to
// Info.
func ParseLevel(s string) slog.Level {
	if l, ok := levelNames[strings.ToLower(s)]; ok {
		return l
	}
	return slog.LevelInfo
}

// traceLevelName renames the synthetic trace level, which slog would
// otherwise print as "DEBUG-4".
func traceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl <= LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}

// MultiHandler fans every record out to all of its handlers.
type MultiHandler []slog.Handler

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(MultiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	out := make(MultiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithGroup(name)
	}
	return out
}

// LevelRange passes only records whose level lies in [Min, Max] through to
// its handler. Two ranges over stdout and stderr give the console split.
type LevelRange struct {
	Min, Max slog.Level
	Handler  slog.Handler
}

func (f LevelRange) pass(l slog.Level) bool { return l >= f.Min && l <= f.Max }

func (f LevelRange) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.Handler.Enabled(ctx, level)
}

func (f LevelRange) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.Handler.Handle(ctx, r)
}

func (f LevelRange) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelRange{Min: f.Min, Max: f.Max, Handler: f.Handler.WithAttrs(attrs)}
}

func (f LevelRange) WithGroup(name string) slog.Handler {
	return LevelRange{Min: f.Min, Max: f.Max, Handler: f.Handler.WithGroup(name)}
}

// SetupLogger builds the logger for a run: either a single file handler, or
// the stdout/stderr console split.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: traceLevelName}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return slog.New(slog.NewTextHandler(f, opts)), []io.Closer{f}, nil
	}

	console := MultiHandler{
		LevelRange{Min: level, Max: slog.LevelError - 1, Handler: slog.NewTextHandler(os.Stdout, opts)},
		LevelRange{Min: slog.LevelError, Max: slog.Level(math.MaxInt32), Handler: slog.NewTextHandler(os.Stderr, opts)},
	}
	return slog.New(console), nil, nil
}
