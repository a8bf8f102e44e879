package formatter

import (
	"io"
	"unicode/utf8"

	"go.uber.org/zap/buffer"

	"github.com/philipp01105/logthis/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write a whole line to a writer with a single Write call.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *buffer.Buffer)
}

const (
	// DefaultTimestampFormat renders local time with second resolution.
	DefaultTimestampFormat = "2006-01-02 15:04:05"
	// DefaultOwnerWidth is the column width the owner field is right-aligned in.
	DefaultOwnerWidth = 60
	// DefaultThreadWidth is the width the thread name is padded to.
	DefaultThreadWidth = 20

	// levelWidth fits the longest tag, "[DEBUG]".
	levelWidth = 7
)

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (default: DefaultTimestampFormat)
	TimestampFormat string
	// OwnerWidth is the minimum width of the owner field (default: DefaultOwnerWidth)
	OwnerWidth int
	// ThreadWidth is the minimum width of the thread name (default: DefaultThreadWidth)
	ThreadWidth int
}

func (c Config) withDefaults() Config {
	if c.TimestampFormat == "" {
		c.TimestampFormat = DefaultTimestampFormat
	}
	if c.OwnerWidth <= 0 {
		c.OwnerWidth = DefaultOwnerWidth
	}
	if c.ThreadWidth <= 0 {
		c.ThreadWidth = DefaultThreadWidth
	}
	return c
}

// bufferPool hands out line buffers shared by every formatter.
var bufferPool = buffer.NewPool()

func getBuffer() *buffer.Buffer {
	return bufferPool.Get()
}

func putBuffer(buf *buffer.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	buf.Free()
}

// appendOwnerField writes "<owner> @<thread>" right-aligned in OwnerWidth
// columns, with the thread name left-aligned in ThreadWidth columns.
// Widths count characters, not bytes.
func appendOwnerField(buf *buffer.Buffer, cfg Config, entry *core.Entry) {
	threadLen := utf8.RuneCountInString(entry.Thread)
	threadPad := max(cfg.ThreadWidth-threadLen, 0)
	fieldLen := utf8.RuneCountInString(entry.Owner) + 2 + threadLen + threadPad
	appendSpaces(buf, cfg.OwnerWidth-fieldLen)

	buf.AppendString(entry.Owner)
	buf.AppendString(" @")
	buf.AppendString(entry.Thread)
	appendSpaces(buf, threadPad)
}

func appendSpaces(buf *buffer.Buffer, n int) {
	for ; n > 0; n-- {
		buf.AppendByte(' ')
	}
}
