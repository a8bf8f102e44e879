package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logthis/core"
	"github.com/philipp01105/logthis/handler/sloghandler"
	"github.com/philipp01105/logthis/handler/zaphandler"
)

// Every framework writes plain text to io.Discard.

func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	c := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(c)
}

func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}

func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

func BenchmarkCompetitive_Info(b *testing.B) {
	b.Run("logthis", func(b *testing.B) {
		l := newDiscardLogger(core.DebugLevel)
		b.ReportAllocs()
		for b.Loop() {
			l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ReportAllocs()
		for b.Loop() {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ReportAllocs()
		for b.Loop() {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ReportAllocs()
		for b.Loop() {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ReportAllocs()
		for b.Loop() {
			l.Info().Msg("info message")
		}
	})
}

func BenchmarkCompetitive_Disabled(b *testing.B) {
	b.Run("logthis", func(b *testing.B) {
		l := newDiscardLogger(core.InfoLevel)
		b.ReportAllocs()
		for b.Loop() {
			l.Debug("debug message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger().WithOptions(zap.IncreaseLevel(zap.InfoLevel))
		b.ReportAllocs()
		for b.Loop() {
			l.Debug("debug message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
		b.ReportAllocs()
		for b.Loop() {
			l.Debug("debug message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		l.SetLevel(logrus.InfoLevel)
		b.ReportAllocs()
		for b.Loop() {
			l.Debug("debug message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger().Level(zerolog.InfoLevel)
		b.ReportAllocs()
		for b.Loop() {
			l.Debug().Msg("debug message")
		}
	})
}

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("logthis", func(b *testing.B) {
		l := newDiscardLogger(core.DebugLevel)
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel message")
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().Msg("parallel message")
			}
		})
	})
}

// Bridges measure the cost of routing another API through logthis.
func BenchmarkBridge(b *testing.B) {
	b.Run("slog", func(b *testing.B) {
		l := slog.New(sloghandler.New(newDiscardLogger(core.DebugLevel)))
		b.ReportAllocs()
		for b.Loop() {
			l.Info("bridged", "key", "value")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := zap.New(zaphandler.NewCore(newDiscardLogger(core.DebugLevel)))
		b.ReportAllocs()
		for b.Loop() {
			l.Info("bridged", zap.String("key", "value"))
		}
	})
}
