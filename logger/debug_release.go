//go:build release

package logger

// DebugEnabled is false in release builds; see the non-release definition.
const DebugEnabled = false
