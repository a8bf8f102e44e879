package formatter

import (
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"

	"github.com/philipp01105/logthis/core"
)

// levelStyle pairs the style of the bracketed tag with the style of the
// rest of the line.
type levelStyle struct {
	tag  *color.Color
	line *color.Color
}

func newLevelStyles() [4]levelStyle {
	return [...]levelStyle{
		core.DebugLevel: {
			tag:  color.New(color.FgGreen, color.Italic, color.Underline),
			line: color.New(color.FgGreen),
		},
		core.InfoLevel: {
			tag:  color.New(color.FgBlue),
			line: color.New(color.FgBlue),
		},
		core.WarnLevel: {
			tag:  color.New(color.FgYellow, color.Bold),
			line: color.New(color.FgYellow),
		},
		core.ErrorLevel: {
			tag:  color.New(color.BgRed, color.Bold, color.Underline),
			line: color.New(color.FgRed),
		},
	}
}

// ConsoleFormatter renders the same fields as TextFormatter with
// severity-coded styling. Styling is emitted only when Color is set.
type ConsoleFormatter struct {
	Config
	styles [4]levelStyle
	color  bool
}

// NewConsoleFormatter creates a console formatter. When useColor is false
// the output is identical to TextFormatter's.
func NewConsoleFormatter(cfg Config, useColor bool) *ConsoleFormatter {
	f := &ConsoleFormatter{
		Config: cfg.withDefaults(),
		styles: newLevelStyles(),
		color:  useColor,
	}
	for _, s := range f.styles {
		if useColor {
			s.tag.EnableColor()
			s.line.EnableColor()
		} else {
			s.tag.DisableColor()
			s.line.DisableColor()
		}
	}
	return f
}

// Color reports whether the formatter emits styling.
func (f *ConsoleFormatter) Color() bool {
	return f.color
}

// Format formats an entry as a console line
func (f *ConsoleFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it to w in one Write call
func (f *ConsoleFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry writes the styled entry, newline included, into buf
func (f *ConsoleFormatter) FormatEntry(entry *core.Entry, buf *buffer.Buffer) {
	if !entry.Level.Valid() {
		(&TextFormatter{Config: f.Config}).FormatEntry(entry, buf)
		return
	}
	style := f.styles[entry.Level]
	tag := entry.Level.Tag()

	line := getBuffer()
	defer putBuffer(line)

	line.AppendTime(entry.Time, f.TimestampFormat)
	line.AppendByte(' ')
	buf.AppendString(style.line.Sprint(line.String()))

	buf.AppendString(style.tag.Sprint(tag))
	appendSpaces(buf, levelWidth-len(tag))

	line.Reset()
	line.AppendByte(' ')
	appendOwnerField(line, f.Config, entry)
	line.AppendString(" |: ")
	line.AppendString(entry.Message)
	buf.AppendString(style.line.Sprint(line.String()))
	buf.AppendByte('\n')
}
