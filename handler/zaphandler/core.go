package zaphandler

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logthis/core"
	"github.com/philipp01105/logthis/logger"
)

// Core implements zapcore.Core on top of a Logger.
type Core struct {
	l      *logger.Logger
	fields []zapcore.Field
}

var _ zapcore.Core = (*Core)(nil)

// NewCore creates a Core writing through l.
func NewCore(l *logger.Logger) *Core {
	return &Core{l: l}
}

// Enabled reports whether lvl passes the Logger's threshold.
func (c *Core) Enabled(lvl zapcore.Level) bool {
	level := zapLevelToCore(lvl)
	if level == core.DebugLevel && !logger.DebugEnabled {
		return false
	}
	return c.l.ShouldEmit(level)
}

// With returns a Core that appends fields to every entry.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	return &Core{
		l:      c.l,
		fields: append(slices.Clip(c.fields), fields...),
	}
}

// Check adds c to ce if the entry is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and its fields as one line.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	var b strings.Builder
	b.WriteString(ent.Message)
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, enc.Fields[k])
	}

	return c.l.Log(zapLevelToCore(ent.Level), entryOwner(ent), b.String())
}

// Sync is a no-op: every line is written before Write returns.
func (c *Core) Sync() error {
	return nil
}

func entryOwner(ent zapcore.Entry) string {
	switch {
	case ent.Caller.Defined:
		return ent.Caller.TrimmedPath()
	case ent.LoggerName != "":
		return ent.LoggerName
	default:
		return "zap"
	}
}

// zapLevelToCore converts a zapcore.Level to a core.Level. DPanic, Panic
// and Fatal are logged as errors.
func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl == zapcore.WarnLevel:
		return core.WarnLevel
	case lvl == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
