package logger

import (
	"fmt"
	"sync"

	"github.com/philipp01105/logthis/core"
	"github.com/philipp01105/logthis/formatter"
	"github.com/philipp01105/logthis/handler"
	"github.com/philipp01105/logthis/handler/consolehandler"
	"github.com/philipp01105/logthis/handler/filehandler"
	"github.com/philipp01105/logthis/thread"
)

// Logger holds a threshold and a destination. Every configuration change
// and every emitted line takes the same mutex, so a line never sees half
// of a reconfiguration and two lines never interleave.
type Logger struct {
	mu            sync.Mutex
	level         core.Level
	destination   Destination
	console       handler.Handler
	active        handler.Handler
	fileFormatter formatter.Formatter
	onError       ErrorHandler
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	level         core.Level
	destination   Destination
	console       handler.Handler
	fileFormatter formatter.Formatter
	onError       ErrorHandler
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:   DefaultLevel,
		onError: PanicOnError,
	}
}

// WithLevel sets the threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithDestination sets the initial destination (default: Console)
func (b *Builder) WithDestination(d Destination) *Builder {
	b.destination = d
	return b
}

// WithConsole replaces the console handler (default: stdout/stderr)
func (b *Builder) WithConsole(h handler.Handler) *Builder {
	b.console = h
	return b
}

// WithFileFormatter sets the formatter used for file destinations
// (default: formatter.TextFormatter)
func (b *Builder) WithFileFormatter(f formatter.Formatter) *Builder {
	b.fileFormatter = f
	return b
}

// WithErrorHandler sets what happens when a line cannot be written
// (default: PanicOnError). A nil handler restores the default.
func (b *Builder) WithErrorHandler(fn ErrorHandler) *Builder {
	if fn == nil {
		fn = PanicOnError
	}
	b.onError = fn
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	console := b.console
	if console == nil {
		console = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{})
	}
	l := &Logger{
		level:         b.level,
		console:       console,
		fileFormatter: b.fileFormatter,
		onError:       b.onError,
	}
	l.setDestination(b.destination)
	return l
}

// SetLevel sets the threshold for all later calls on every goroutine.
func (l *Logger) SetLevel(level core.Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Level returns the current threshold.
func (l *Logger) Level() core.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetDestination switches output to d. Once it returns, every line from
// any goroutine goes to d only.
func (l *Logger) SetDestination(d Destination) {
	l.mu.Lock()
	l.setDestination(d)
	l.mu.Unlock()
}

// setDestination must hold mu (or own l exclusively).
func (l *Logger) setDestination(d Destination) {
	if d.IsConsole() {
		l.destination = d
		l.active = l.console
		return
	}
	h, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Filename:  d.Path(),
		Formatter: l.fileFormatter,
	})
	if err != nil {
		// Only an empty filename is rejected, and that is the console.
		panic(fmt.Sprintf("logthis: file handler for %q: %v", d.Path(), err))
	}
	l.destination = d
	l.active = h
}

// SetFile appends output to path. An empty path switches back to the
// console.
func (l *Logger) SetFile(path string) {
	l.SetDestination(File(path))
}

// SetConsole switches output back to the console.
func (l *Logger) SetConsole() {
	l.SetDestination(Console())
}

// Destination returns the current destination.
func (l *Logger) Destination() Destination {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.destination
}

// SetErrorHandler replaces the handler for write failures. A nil handler
// restores PanicOnError.
func (l *Logger) SetErrorHandler(fn ErrorHandler) {
	if fn == nil {
		fn = PanicOnError
	}
	l.mu.Lock()
	l.onError = fn
	l.mu.Unlock()
}

// ShouldEmit reports whether a line at level passes the threshold.
func (l *Logger) ShouldEmit(level core.Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

// Emit writes entry to the current destination if its level passes the
// threshold. The check and the write happen under one lock hold.
func (l *Logger) Emit(entry *core.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.Level < l.level {
		return nil
	}
	if err := l.active.Handle(entry); err != nil {
		return &EmitError{Destination: l.destination, Err: err}
	}
	return nil
}

// Log writes msg at level with an explicit owner string and returns any
// write failure instead of passing it to the error handler.
func (l *Logger) Log(level core.Level, owner, msg string) error {
	if !l.ShouldEmit(level) {
		return nil
	}
	return l.emit(level, owner, msg)
}

func (l *Logger) emit(level core.Level, owner, msg string) error {
	entry := core.GetEntry()
	entry.Level = level
	entry.Owner = owner
	entry.Thread = thread.Name()
	entry.Message = msg

	err := l.Emit(entry)
	core.PutEntry(entry)
	return err
}

// output emits and routes any failure to the error handler. The handler
// runs outside the lock so it may log or panic freely.
func (l *Logger) output(level core.Level, owner, msg string) {
	err := l.emit(level, owner, msg)
	if err == nil {
		return
	}
	l.mu.Lock()
	fn := l.onError
	l.mu.Unlock()
	fn(err)
}

// Stats reports the write counters of the active destination's handler.
// Handlers that do not count their writes report zeros.
func (l *Logger) Stats() handler.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	if sp, ok := l.active.(handler.StatsProvider); ok {
		return sp.Stats()
	}
	return handler.Snapshot{}
}

// Close closes the console handler and the active file handler, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.console.Close()
	if l.active != l.console {
		if cerr := l.active.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// For returns a Scope whose lines are attributed to owner.
func (l *Logger) For(owner Owner) Scope {
	return Scope{l: l, owner: owner}
}

// Debug logs a debug message attributed to the caller's location.
func (l *Logger) Debug(args ...any) {
	if !DebugEnabled || !l.ShouldEmit(core.DebugLevel) {
		return
	}
	l.output(core.DebugLevel, callerOwner(1), fmt.Sprint(args...))
}

// Info logs an info message attributed to the caller's location.
func (l *Logger) Info(args ...any) {
	if !l.ShouldEmit(core.InfoLevel) {
		return
	}
	l.output(core.InfoLevel, callerOwner(1), fmt.Sprint(args...))
}

// Warn logs a warning message attributed to the caller's location.
func (l *Logger) Warn(args ...any) {
	if !l.ShouldEmit(core.WarnLevel) {
		return
	}
	l.output(core.WarnLevel, callerOwner(1), fmt.Sprint(args...))
}

// Error logs an error message attributed to the caller's location.
func (l *Logger) Error(args ...any) {
	if !l.ShouldEmit(core.ErrorLevel) {
		return
	}
	l.output(core.ErrorLevel, callerOwner(1), fmt.Sprint(args...))
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...any) {
	if !DebugEnabled || !l.ShouldEmit(core.DebugLevel) {
		return
	}
	l.output(core.DebugLevel, callerOwner(1), fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...any) {
	if !l.ShouldEmit(core.InfoLevel) {
		return
	}
	l.output(core.InfoLevel, callerOwner(1), fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...any) {
	if !l.ShouldEmit(core.WarnLevel) {
		return
	}
	l.output(core.WarnLevel, callerOwner(1), fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...any) {
	if !l.ShouldEmit(core.ErrorLevel) {
		return
	}
	l.output(core.ErrorLevel, callerOwner(1), fmt.Sprintf(format, args...))
}

// DebugFunc logs the result of msg at debug level. msg is never called
// when debug output is compiled out or below the threshold.
func (l *Logger) DebugFunc(msg func() string) {
	if !DebugEnabled || !l.ShouldEmit(core.DebugLevel) {
		return
	}
	l.output(core.DebugLevel, callerOwner(1), msg())
}
