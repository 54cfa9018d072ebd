//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

// TestSetLevel verifies that SetLevel updates the underlying zap
// atomic level for every supported level string, falling back to info
// for unrecognized input.
func TestSetLevel(t *testing.T) {
	cases := []struct {
		in       string
		expected zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{LevelFatal, zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel}, // default branch
	}

	for _, c := range cases {
		SetLevel(c.in)
		if got := zapLevel.Level(); got != c.expected {
			t.Fatalf("SetLevel(%q) = %v; want %v", c.in, got, c.expected)
		}
	}
}

func TestPackageHelpersForward(t *testing.T) {
	old := Default
	stub := &recordingLogger{}
	Default = stub
	defer func() { Default = old }()

	Debug("d")
	Debugf("df")
	Info("i")
	Infof("if")
	Warn("w")
	Warnf("wf")
	Error("e")
	Errorf("ef")

	if stub.calls != 8 {
		t.Fatalf("expected 8 forwarded calls, got %d", stub.calls)
	}
}

type recordingLogger struct{ calls int }

func (r *recordingLogger) Debug(args ...any)                 { r.calls++ }
func (r *recordingLogger) Debugf(format string, args ...any) { r.calls++ }
func (r *recordingLogger) Info(args ...any)                  { r.calls++ }
func (r *recordingLogger) Infof(format string, args ...any)  { r.calls++ }
func (r *recordingLogger) Warn(args ...any)                  { r.calls++ }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.calls++ }
func (r *recordingLogger) Error(args ...any)                 { r.calls++ }
func (r *recordingLogger) Errorf(format string, args ...any) { r.calls++ }
func (r *recordingLogger) Fatal(args ...any)                 { r.calls++ }
func (r *recordingLogger) Fatalf(format string, args ...any) { r.calls++ }
