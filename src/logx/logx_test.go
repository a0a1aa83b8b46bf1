package logx

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevelByString(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := GetLoggerLevelByString(in); got != want {
			t.Errorf("GetLoggerLevelByString(%q): wanted %v, got %v", in, want, got)
		}
	}
}

func TestInitLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, false)
	l.InitLogger(&buf)
	l.Named("board").Infof("move %s", "e2e4")
	l.Debug("hidden")
	out := buf.String()
	switch {
	case !strings.Contains(out, `"MESSAGE":"move e2e4"`):
		t.Errorf("wanted message in output, got %q", out)
	case !strings.Contains(out, `"NAME":"board"`):
		t.Errorf("wanted logger name in output, got %q", out)
	case strings.Contains(out, "hidden"):
		t.Errorf("debug message should be filtered at info level: %q", out)
	}
}

func TestNopDoesNotPanic(t *testing.T) {
	l := NewNop()
	l.Named("x").Warnf("ignored %d", 1)
	l.Error("ignored")
}
