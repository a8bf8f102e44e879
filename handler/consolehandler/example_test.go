package consolehandler_test

import (
	"os"
	"time"

	"github.com/philipp01105/logthis/core"
	"github.com/philipp01105/logthis/formatter"
	"github.com/philipp01105/logthis/handler/consolehandler"
)

// Create a console handler writing unstyled lines to stdout.
func ExampleNewConsoleHandler() {
	off := false
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
		Color:  &off,
		Format: formatter.Config{OwnerWidth: 1, ThreadWidth: 1},
	})
	defer h.Close()

	h.Handle(&core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.WarnLevel,
		Owner:   "example",
		Thread:  "main",
		Message: "disk almost full",
	})
	// Output:
	// 2026-01-15 12:00:00 [WARN]  example @main |: disk almost full
}
