// Package logger is the public API of logthis. Most programs only need
// to import this package.
//
// A Logger holds two pieces of configuration, a threshold Level and a
// Destination (the console or a file), behind a single mutex. Changing
// either takes effect for every goroutine from the moment the call
// returns, and each emitted line is checked and written under the same
// lock, so lines never interleave.
//
// The package keeps a process-wide Logger, created on first use with
// InfoLevel and the console destination. The package-level functions
// configure and log through it:
//
//	logger.SetLevel(logger.DebugLevel)
//	logger.SetFile("app.log")
//	logger.Info("ready")
//	logger.Warnf("retrying in %v", backoff)
//
// Every line carries an owner. Without one, the caller's source location
// is used. An owner can also be given explicitly:
//
//	logger.Tag("db").Error("connection lost")
//	logger.Type[Cache]().Info("evicted ", n)
//	logger.Self().Info("started")      // receiver type of the calling method
//	logger.Here().Warn("slow path")    // same as the default
//
// Lines also show the display name of the calling goroutine, set with
// SetCurrentThreadName or package thread.
//
// Debug output is compiled out of builds tagged "release": DebugEnabled
// becomes false and every Debug entry point returns immediately. Use
// DebugFunc or an "if logger.DebugEnabled" guard when computing the
// message is expensive.
//
// Write failures are passed to the Logger's ErrorHandler, PanicOnError by
// default. Log returns the error to the caller instead.
//
// Tests and libraries that need isolation build their own Logger:
//
//	l := logger.NewBuilder().
//	    WithLevel(logger.DebugLevel).
//	    WithDestination(logger.File(path)).
//	    Build()
package logger
