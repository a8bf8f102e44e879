// Package filehandler appends plain-text log lines to a file.
//
// Each entry is formatted first, then the file is opened with
// O_APPEND|O_CREATE, written with a single Write call and closed. Existing
// content is never truncated, and because the handler keeps no open
// handle, switching a logger to another destination needs no cleanup.
// Write and close failures are combined with go.uber.org/multierr and
// returned to the caller.
package filehandler
