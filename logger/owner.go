package logger

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/philipp01105/logthis/core"
)

// Owner names what produced a line: an explicit tag, a type name or a
// source location.
type Owner struct {
	name string
}

func (o Owner) String() string {
	return o.name
}

// Tag returns an owner with an explicit name.
func Tag(name string) Owner {
	return Owner{name: name}
}

// Here returns the location of its caller as "dir/file.go:line".
func Here() Owner {
	return Owner{name: callerOwner(1)}
}

// Type returns the fully-qualified name of T, such as
// "github.com/acme/app/store.Cache". Pointer types name their element.
func Type[T any]() Owner {
	return Owner{name: typeName(reflect.TypeFor[T]())}
}

// TypeOf returns the fully-qualified name of v's dynamic type.
func TypeOf(v any) Owner {
	if v == nil {
		return Owner{name: "<nil>"}
	}
	return Owner{name: typeName(reflect.TypeOf(v))}
}

// Self returns the receiver type of the method that calls it. Called
// from a plain function it returns the function's qualified name.
func Self() Owner {
	return Owner{name: receiverType(core.GetCaller(1).Function)}
}

// callerOwner is the location of the caller skip frames above the
// function calling callerOwner.
func callerOwner(skip int) string {
	return core.GetCaller(skip + 1).Location()
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// receiverType maps a runtime function symbol to the type owning it:
//
//	example.com/pkg.(*T).Method  -> example.com/pkg.T
//	example.com/pkg.T.Method     -> example.com/pkg.T
//	example.com/pkg.Func.func1   -> example.com/pkg.Func
func receiverType(fn string) string {
	if fn == "" {
		return "???"
	}
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot == -1 {
		return fn
	}
	pkg := fn[:slash+1+dot]
	rest := fn[slash+1+dot+1:]

	name, _, _ := strings.Cut(rest, ".")
	if strings.HasPrefix(rest, "(*") {
		end := strings.IndexByte(rest, ')')
		if end == -1 {
			return fn
		}
		name = rest[2:end]
	}
	if i := strings.IndexByte(name, '['); i != -1 {
		name = name[:i]
	}
	return pkg + "." + name
}

// Scope logs through a Logger with a fixed owner.
type Scope struct {
	l     *Logger
	owner Owner
}

// Owner returns the scope's owner.
func (s Scope) Owner() Owner {
	return s.owner
}

// Debug logs a debug message
func (s Scope) Debug(args ...any) {
	if !DebugEnabled || !s.l.ShouldEmit(core.DebugLevel) {
		return
	}
	s.l.output(core.DebugLevel, s.owner.name, fmt.Sprint(args...))
}

// Info logs an info message
func (s Scope) Info(args ...any) {
	if !s.l.ShouldEmit(core.InfoLevel) {
		return
	}
	s.l.output(core.InfoLevel, s.owner.name, fmt.Sprint(args...))
}

// Warn logs a warning message
func (s Scope) Warn(args ...any) {
	if !s.l.ShouldEmit(core.WarnLevel) {
		return
	}
	s.l.output(core.WarnLevel, s.owner.name, fmt.Sprint(args...))
}

// Error logs an error message
func (s Scope) Error(args ...any) {
	if !s.l.ShouldEmit(core.ErrorLevel) {
		return
	}
	s.l.output(core.ErrorLevel, s.owner.name, fmt.Sprint(args...))
}

// Debugf logs a debug message with formatting
func (s Scope) Debugf(format string, args ...any) {
	if !DebugEnabled || !s.l.ShouldEmit(core.DebugLevel) {
		return
	}
	s.l.output(core.DebugLevel, s.owner.name, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (s Scope) Infof(format string, args ...any) {
	if !s.l.ShouldEmit(core.InfoLevel) {
		return
	}
	s.l.output(core.InfoLevel, s.owner.name, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (s Scope) Warnf(format string, args ...any) {
	if !s.l.ShouldEmit(core.WarnLevel) {
		return
	}
	s.l.output(core.WarnLevel, s.owner.name, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (s Scope) Errorf(format string, args ...any) {
	if !s.l.ShouldEmit(core.ErrorLevel) {
		return
	}
	s.l.output(core.ErrorLevel, s.owner.name, fmt.Sprintf(format, args...))
}

// DebugFunc logs the result of msg at debug level; see Logger.DebugFunc.
func (s Scope) DebugFunc(msg func() string) {
	if !DebugEnabled || !s.l.ShouldEmit(core.DebugLevel) {
		return
	}
	s.l.output(core.DebugLevel, s.owner.name, msg())
}

// Log writes msg at level and returns any write failure.
func (s Scope) Log(level core.Level, msg string) error {
	return s.l.Log(level, s.owner.name, msg)
}

// The Owner methods below log through the default logger.

// Debug logs a debug message through the default logger
func (o Owner) Debug(args ...any) {
	if !DebugEnabled {
		return
	}
	Default().For(o).Debug(args...)
}

// Info logs an info message through the default logger
func (o Owner) Info(args ...any) {
	Default().For(o).Info(args...)
}

// Warn logs a warning message through the default logger
func (o Owner) Warn(args ...any) {
	Default().For(o).Warn(args...)
}

// Error logs an error message through the default logger
func (o Owner) Error(args ...any) {
	Default().For(o).Error(args...)
}

// Debugf logs a formatted debug message through the default logger
func (o Owner) Debugf(format string, args ...any) {
	if !DebugEnabled {
		return
	}
	Default().For(o).Debugf(format, args...)
}

// Infof logs a formatted info message through the default logger
func (o Owner) Infof(format string, args ...any) {
	Default().For(o).Infof(format, args...)
}

// Warnf logs a formatted warning message through the default logger
func (o Owner) Warnf(format string, args ...any) {
	Default().For(o).Warnf(format, args...)
}

// Errorf logs a formatted error message through the default logger
func (o Owner) Errorf(format string, args ...any) {
	Default().For(o).Errorf(format, args...)
}
