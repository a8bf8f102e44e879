package sloghandler

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/logthis/core"
	"github.com/philipp01105/logthis/handler/consolehandler"
	"github.com/philipp01105/logthis/logger"
)

func newLogger(level logger.Level) (*logger.Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	l := logger.NewBuilder().
		WithConsole(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:    &out,
			ErrWriter: &errOut,
		})).
		WithLevel(level).
		Build()
	return l, &out, &errOut
}

func TestHandler_Enabled(t *testing.T) {
	l, _, _ := newLogger(logger.InfoLevel)
	h := New(l)

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	for _, level := range []slog.Level{slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if !h.Enabled(context.Background(), level) {
			t.Errorf("%v should be enabled when level is Info", level)
		}
	}

	l.SetLevel(logger.ErrorLevel)
	if h.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("threshold change not observed")
	}
}

func TestHandler_Handle(t *testing.T) {
	l, out, errOut := newLogger(logger.InfoLevel)
	log := slog.New(New(l))

	line := core.GetCaller(0).Line
	log.Info("test message", "key", "value", "count", 42)
	log.Error("failed", slog.Group("req", slog.String("id", "r-1")))
	log.Debug("hidden")

	output := out.String()
	if !strings.Contains(output, "|: test message key=value count=42") {
		t.Errorf("unexpected output: %s", output)
	}
	wantOwner := "sloghandler/slog_handler_test.go:" + strconv.Itoa(line+1) + " @"
	if !strings.Contains(output, wantOwner) {
		t.Errorf("expected owner %q in %s", wantOwner, output)
	}
	if !strings.Contains(errOut.String(), "|: failed req.id=r-1") {
		t.Errorf("unexpected stderr: %s", errOut.String())
	}
	if strings.Contains(output, "hidden") {
		t.Errorf("debug record passed INFO threshold")
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	l, out, _ := newLogger(logger.InfoLevel)
	log := slog.New(New(l)).
		With("service", "api").
		WithGroup("http").
		With("method", "GET")

	log.Warn("slow", "ms", 1500)

	if !strings.Contains(out.String(), "|: slow service=api http.method=GET http.ms=1500") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestHandler_NoSource(t *testing.T) {
	l, out, _ := newLogger(logger.InfoLevel)
	h := New(l)

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "manual", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "slog @") {
		t.Errorf("expected fallback owner, got %s", out.String())
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug - 4, core.DebugLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelInfo + 2, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogLevelToCore(tt.in); got != tt.want {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
