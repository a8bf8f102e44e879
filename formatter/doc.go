// Package formatter turns a log entry into one line of output.
//
// Two formatters are provided. TextFormatter writes the plain form used for
// files; ConsoleFormatter writes the same columns with severity-coded
// styling for terminals. Both produce
//
//	<timestamp> [LEVEL] <owner> @<thread> |: <message>
//
// with the level tag padded to seven columns, the thread name padded to
// Config.ThreadWidth and the whole owner field right-aligned in
// Config.OwnerWidth columns.
//
// Lines are assembled in pooled zap buffers and handed to the writer in a
// single Write call, so a line is never split across writes. Buffers
// larger than 64 KiB are not returned to the pool.
package formatter
