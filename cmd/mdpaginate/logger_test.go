package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		quiet, debug bool
		want         zapcore.Level
	}{
		{false, false, zapcore.InfoLevel},
		{false, true, zapcore.DebugLevel},
		{true, false, zapcore.WarnLevel},
		{true, true, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		if got := logLevel(tt.quiet, tt.debug); got != tt.want {
			t.Errorf("logLevel(%v, %v) = %v, want %v", tt.quiet, tt.debug, got, tt.want)
		}
	}
}

func TestLogObserver(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	obs := logObserver{log: newLogger(&buf, zapcore.InfoLevel)}

	obs.Debug("hidden detail")
	obs.Info("[posts] Generated 2+1 pages")
	obs.Warn("[posts] /bad/: item split panicked")

	out := buf.String()
	if strings.Contains(out, "hidden detail") {
		t.Errorf("debug message logged at info level:\n%s", out)
	}
	for _, want := range []string{"INFO", "[posts] Generated 2+1 pages", "WARN", "/bad/"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
