package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/logthis/core"
	"github.com/philipp01105/logthis/formatter"
	"github.com/philipp01105/logthis/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer receives Debug, Info and Warn lines (default: stdout)
	Writer io.Writer
	// ErrWriter receives Error lines (default: stderr)
	ErrWriter io.Writer
	// Format configures the default console formatters
	Format formatter.Config
	// Formatter replaces the default console formatters for both writers
	Formatter formatter.Formatter
	// Color forces styling on or off. When nil, styling is enabled per
	// writer if that writer is a terminal.
	Color *bool
}

// ConsoleHandler writes styled lines to the console. Error entries go to
// ErrWriter, every other level to Writer.
type ConsoleHandler struct {
	out    stream
	err    stream
	stats  *handler.Stats
	mu     sync.Mutex // serializes writes across both streams
	closed chan struct{}
}

// stream is one output writer with the formatter chosen for it.
type stream struct {
	w               io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
}

func newStream(w io.Writer, f formatter.Formatter) stream {
	s := stream{w: w, formatter: f}
	// Cache WriterFormatter for the single-Write path
	s.writerFormatter, _ = f.(formatter.WriterFormatter)
	return s
}

func (s stream) write(entry *core.Entry) error {
	if s.writerFormatter != nil {
		return s.writerFormatter.FormatTo(entry, s.w)
	}
	data, err := s.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = s.w.Write(data)
	return err
}

// isTerminal reports whether w is a file descriptor attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	outColor, errColor := false, false

	if cfg.Writer == nil {
		cfg.Writer = colorable.NewColorableStdout()
		outColor = isTerminal(os.Stdout)
	} else {
		outColor = isTerminal(cfg.Writer)
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = colorable.NewColorableStderr()
		errColor = isTerminal(os.Stderr)
	} else {
		errColor = isTerminal(cfg.ErrWriter)
	}
	if cfg.Color != nil {
		outColor, errColor = *cfg.Color, *cfg.Color
	}

	h := &ConsoleHandler{
		stats:  handler.NewStats(),
		closed: make(chan struct{}),
	}
	if cfg.Formatter != nil {
		h.out = newStream(cfg.Writer, cfg.Formatter)
		h.err = newStream(cfg.ErrWriter, cfg.Formatter)
	} else {
		h.out = newStream(cfg.Writer, formatter.NewConsoleFormatter(cfg.Format, outColor))
		h.err = newStream(cfg.ErrWriter, formatter.NewConsoleFormatter(cfg.Format, errColor))
	}
	return h
}

// Handle writes the entry to the stream for its level.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	s := h.out
	if entry.Level >= core.ErrorLevel {
		s = h.err
	}

	h.mu.Lock()
	err := s.write(entry)
	h.mu.Unlock()

	h.stats.Record(err)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. The console streams stay open.
func (h *ConsoleHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
