// Package zaphandler provides a zapcore.Core that writes through a
// logthis Logger, so a *zap.Logger shares the Logger's threshold,
// destination and thread names.
//
// The owner of each line is the zap caller when the zap logger was built
// with zap.AddCaller, otherwise the logger name, otherwise "zap". Context
// and call-site fields are appended to the message as key=value pairs in
// key order.
package zaphandler
