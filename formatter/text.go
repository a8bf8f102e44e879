package formatter

import (
	"io"

	"go.uber.org/zap/buffer"

	"github.com/philipp01105/logthis/core"
)

// TextFormatter renders plain, unstyled lines:
//
//	2026-01-15 12:00:00 [INFO]  <owner> @<thread> |: message
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg.withDefaults()}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it to w in one Write call
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted level tags, padded to levelWidth plus the separator
var levelColumns = [...]string{
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO]  ",
	core.WarnLevel:  " [WARN]  ",
	core.ErrorLevel: " [ERROR] ",
}

// FormatEntry writes the formatted entry, newline included, into buf
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *buffer.Buffer) {
	buf.AppendTime(entry.Time, f.TimestampFormat)

	if entry.Level.Valid() {
		buf.AppendString(levelColumns[entry.Level])
	} else {
		buf.AppendString(" [UNKNOWN] ")
	}

	appendOwnerField(buf, f.Config, entry)
	buf.AppendString(" |: ")
	buf.AppendString(entry.Message)
	buf.AppendByte('\n')
}
