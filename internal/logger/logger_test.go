package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := initCores("warn", FileConfig{}, &buf); err != nil {
		t.Fatalf("init: %v", err)
	}

	Info("hidden message")
	Warn("visible message", zap.Int("frame", 7))
	Sync()

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "frame") {
		t.Errorf("warn message missing: %q", out)
	}

	buf.Reset()
	if err := initCores("debug", FileConfig{}, &buf); err != nil {
		t.Fatalf("init: %v", err)
	}
	Named("engine").Debug("now visible")
	Sync()
	if !strings.Contains(buf.String(), "now visible") || !strings.Contains(buf.String(), "engine") {
		t.Errorf("debug message after re-init missing: %q", buf.String())
	}
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "engine.log")

	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false
	if err := InitWithFileConfig("info", cfg, false); err != nil {
		t.Fatalf("init: %v", err)
	}

	Sugar.Infof("window opened %dx%d", 800, 600)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "window opened 800x600") {
		t.Errorf("log file missing entry: %q", data)
	}
	if !strings.Contains(string(data), "INFO") {
		t.Errorf("log file missing level: %q", data)
	}
}

func TestNopBeforeInit(t *testing.T) {
	if Log == nil || Sugar == nil {
		t.Fatal("global loggers are nil before Init")
	}
}
