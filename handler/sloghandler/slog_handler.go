package sloghandler

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/philipp01105/logthis/core"
	"github.com/philipp01105/logthis/logger"
)

// Handler implements slog.Handler on top of a Logger.
type Handler struct {
	l      *logger.Logger
	prefix string // pre-rendered WithAttrs output
	group  string
}

// New creates a new slog.Handler writing through l.
func New(l *logger.Logger) *Handler {
	return &Handler{l: l}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	lvl := slogLevelToCore(level)
	if lvl == core.DebugLevel && !logger.DebugEnabled {
		return false
	}
	return h.l.ShouldEmit(lvl)
}

// Handle writes the record as one line.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !h.Enabled(ctx, record.Level) {
		return nil
	}

	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(h.prefix)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})

	return h.l.Log(level, recordOwner(record), b.String())
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.prefix)
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	return &Handler{
		l:      h.l,
		prefix: b.String(),
		group:  h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &Handler{
		l:      h.l,
		prefix: h.prefix,
		group:  newGroup,
	}
}

// recordOwner is the record's source location, or "slog" if unknown.
func recordOwner(r slog.Record) string {
	if r.PC == 0 {
		return "slog"
	}
	frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
	if frame.File == "" {
		return "slog"
	}
	return core.CallerInfo{File: frame.File, Line: frame.Line, Defined: true}.Location()
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value", prefixing the group and flattening
// nested groups.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
