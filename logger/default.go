package logger

import (
	"fmt"
	"sync"

	"github.com/philipp01105/logthis/core"
	"github.com/philipp01105/logthis/thread"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// Default returns the process-wide logger, creating it on first use with
// InfoLevel and the console destination.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewBuilder().Build()
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level configuration of the default logger

// SetLevel sets the default logger's threshold. The default is InfoLevel.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// CurrentLevel returns the default logger's threshold.
func CurrentLevel() Level {
	return Default().Level()
}

// SetDestination switches the default logger's destination.
func SetDestination(d Destination) {
	Default().SetDestination(d)
}

// SetFile makes the default logger append to path; "" means the console.
func SetFile(path string) {
	Default().SetFile(path)
}

// SetConsole switches the default logger back to the console.
func SetConsole() {
	Default().SetConsole()
}

// SetErrorHandler sets the default logger's write failure handler.
func SetErrorHandler(fn ErrorHandler) {
	Default().SetErrorHandler(fn)
}

// SetCurrentThreadName sets the name shown for the calling goroutine.
func SetCurrentThreadName(name string) {
	thread.SetName(name)
}

// CurrentThreadName returns the name shown for the calling goroutine.
func CurrentThreadName() string {
	return thread.Name()
}

// Package-level logging through the default logger. Lines are attributed
// to the caller's location.

// Log writes msg at level with an explicit owner and returns any write
// failure.
func Log(level Level, owner, msg string) error {
	return Default().Log(level, owner, msg)
}

// Debug logs a debug message using the default logger
func Debug(args ...any) {
	if !DebugEnabled {
		return
	}
	l := Default()
	if !l.ShouldEmit(core.DebugLevel) {
		return
	}
	l.output(core.DebugLevel, callerOwner(1), fmt.Sprint(args...))
}

// Info logs an info message using the default logger
func Info(args ...any) {
	l := Default()
	if !l.ShouldEmit(core.InfoLevel) {
		return
	}
	l.output(core.InfoLevel, callerOwner(1), fmt.Sprint(args...))
}

// Warn logs a warning message using the default logger
func Warn(args ...any) {
	l := Default()
	if !l.ShouldEmit(core.WarnLevel) {
		return
	}
	l.output(core.WarnLevel, callerOwner(1), fmt.Sprint(args...))
}

// Error logs an error message using the default logger
func Error(args ...any) {
	l := Default()
	if !l.ShouldEmit(core.ErrorLevel) {
		return
	}
	l.output(core.ErrorLevel, callerOwner(1), fmt.Sprint(args...))
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	if !DebugEnabled {
		return
	}
	l := Default()
	if !l.ShouldEmit(core.DebugLevel) {
		return
	}
	l.output(core.DebugLevel, callerOwner(1), fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	l := Default()
	if !l.ShouldEmit(core.InfoLevel) {
		return
	}
	l.output(core.InfoLevel, callerOwner(1), fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...any) {
	l := Default()
	if !l.ShouldEmit(core.WarnLevel) {
		return
	}
	l.output(core.WarnLevel, callerOwner(1), fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	l := Default()
	if !l.ShouldEmit(core.ErrorLevel) {
		return
	}
	l.output(core.ErrorLevel, callerOwner(1), fmt.Sprintf(format, args...))
}

// DebugFunc logs the result of msg at debug level using the default
// logger. msg is not called unless the line would be written.
func DebugFunc(msg func() string) {
	if !DebugEnabled {
		return
	}
	l := Default()
	if !l.ShouldEmit(core.DebugLevel) {
		return
	}
	l.output(core.DebugLevel, callerOwner(1), msg())
}
