package logger

import (
	"github.com/philipp01105/logthis/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// DefaultLevel is the threshold of a Logger built without WithLevel.
const DefaultLevel = InfoLevel

// ParseLevel converts a string to a Level, returning InfoLevel for
// anything it does not recognize.
func ParseLevel(s string) Level {
	var l Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}
	return l
}
