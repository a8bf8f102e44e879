// Package consolehandler writes log entries to the console.
//
// Debug, Info and Warn lines go to stdout and Error lines to stderr, each
// styled by severity when the stream is a terminal. The default streams
// are wrapped with go-colorable so styling also works on Windows consoles.
// Both streams share one mutex, so lines never interleave.
package consolehandler
