// Package handler provides the Handler interface and its built-in
// implementations for writing log entries to a destination.
//
// A Handler receives a fully populated entry and writes it as exactly one
// line with a single Write call. Handlers are synchronous: when Handle
// returns, the line has reached the destination or an error is returned.
//
// Built-in handlers:
//
//   - consolehandler writes styled lines to stdout, and Error lines to
//     stderr.
//   - filehandler appends plain lines to a file, opening and closing it
//     around every write.
//   - sloghandler and zaphandler adapt log/slog and go.uber.org/zap so
//     that records from those libraries flow into a logthis Logger.
//
// Handlers that count their writes implement StatsProvider.
package handler
