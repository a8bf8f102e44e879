//go:build !release

package logger

// DebugEnabled reports whether Debug entry points are compiled in. It is
// false in builds tagged "release", where every Debug call is a no-op.
//
// Go evaluates call arguments before the call, so arguments that are
// expensive or have side effects should be guarded:
//
//	if logger.DebugEnabled {
//	    logger.Debugf("state: %v", dump())
//	}
//
// or passed lazily through DebugFunc.
const DebugEnabled = true
