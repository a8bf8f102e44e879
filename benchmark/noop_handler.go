package benchmark

import (
	"github.com/philipp01105/logthis/core"
	"github.com/philipp01105/logthis/handler"
)

// noopHandler accepts every entry without writing it, isolating the
// Logger's own cost from formatting and I/O.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(*core.Entry) error {
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
