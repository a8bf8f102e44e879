// Package sloghandler adapts a logthis Logger to log/slog.Handler, so
// code written against the standard library's slog writes through the
// Logger's threshold and destination.
//
// The record's source location becomes the owner. Attributes are
// appended to the message as key=value pairs, with group names joined by
// dots.
package sloghandler
