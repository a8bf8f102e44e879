package filehandler

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap/buffer"

	"github.com/philipp01105/logthis/core"
	"github.com/philipp01105/logthis/formatter"
	"github.com/philipp01105/logthis/handler"
)

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Perm is the mode used when the file is created (default: 0644)
	Perm os.FileMode
}

// FileHandler appends lines to a file. The file is opened in append mode,
// created if absent, written once and closed for every entry, so no
// handle outlives a call.
type FileHandler struct {
	filename        string
	perm            os.FileMode
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	mu              sync.Mutex
	buf             *buffer.Buffer // guarded by mu
	dirReady        bool
	stats           *handler.Stats
	closed          chan struct{}
}

var bufPool = buffer.NewPool()

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}
}

// NewFileHandler creates a new file handler. The file is not touched
// until the first entry is handled.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	applyFileDefaults(&cfg)

	h := &FileHandler{
		filename:  cfg.Filename,
		perm:      cfg.Perm,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
		closed:    make(chan struct{}),
	}
	// Buffer formatters write into a handler-owned buffer under mu.
	if bf, ok := cfg.Formatter.(formatter.BufferFormatter); ok {
		h.bufferFormatter = bf
		h.buf = bufPool.Get()
	}
	return h, nil
}

// Filename returns the path the handler appends to.
func (h *FileHandler) Filename() string {
	return h.filename
}

// Handle appends the formatted entry to the file.
func (h *FileHandler) Handle(entry *core.Entry) error {
	if h.bufferFormatter != nil {
		h.mu.Lock()
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, h.buf)
		err := h.appendLine(h.buf.Bytes())
		h.mu.Unlock()

		h.stats.Record(err)
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	err = h.appendLine(data)
	h.mu.Unlock()

	h.stats.Record(err)
	return err
}

// appendLine opens, writes and closes the file. Must hold mu.
func (h *FileHandler) appendLine(data []byte) (err error) {
	if !h.dirReady {
		// Create directory if it doesn't exist
		if err := os.MkdirAll(filepath.Dir(h.filename), 0755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		h.dirReady = true
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, h.perm)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	n, err := file.Write(data)
	if err == nil && n < len(data) {
		err = fmt.Errorf("short write to %s: %d of %d bytes", h.filename, n, len(data))
	}
	return err
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close marks the handler closed. No file handle is held between writes,
// so there is nothing to flush.
func (h *FileHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
