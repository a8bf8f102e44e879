package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

var levelNames = [...]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= ErrorLevel
}

// Tag returns the bracketed form used in rendered lines, e.g. "[WARN]".
func (l Level) Tag() string {
	return "[" + l.String() + "]"
}

// Levels returns every defined level in ascending order.
func Levels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid level %d", int8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// case-insensitively and "WARNING" is accepted for WarnLevel.
func (l *Level) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case "DEBUG":
		*l = DebugLevel
	case "INFO":
		*l = InfoLevel
	case "WARN", "WARNING":
		*l = WarnLevel
	case "ERROR":
		*l = ErrorLevel
	default:
		return fmt.Errorf("unknown level %q", text)
	}
	return nil
}
