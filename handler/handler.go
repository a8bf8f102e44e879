package handler

import (
	"github.com/philipp01105/logthis/core"
)

// Handler writes one log entry to a destination
type Handler interface {
	// Handle formats and writes the entry. It must not retain entry.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count their writes.
type StatsProvider interface {
	Stats() Snapshot
}
