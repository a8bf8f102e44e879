// Package core defines the shared types used across logthis.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and GetCaller, the call-site capture
// primitive that owner resolution is built on.
//
// Level values are ordered Debug < Info < Warn < Error and compare as
// plain integers, so threshold checks are a single comparison.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and must return it with PutEntry once the handler has
// written it. An Entry is never retained past the log call that
// created it.
package core
