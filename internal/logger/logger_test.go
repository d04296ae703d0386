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
		name     string
		expected zapcore.Level
		wantErr  bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := ParseLevel(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if lvl != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, lvl)
			}
		})
	}
}

func TestNew_ConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Console: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Info("hidden")
	log.Warn("shown", zap.Int("iteration", 3))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info entry to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "iteration") {
		t.Errorf("Expected warn entry with fields, got %q", out)
	}
}

func TestNew_Caller(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Console: &buf, Caller: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Info("with caller")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("Expected caller annotation, got %q", buf.String())
	}
}

func TestNew_NoSinks(t *testing.T) {
	log, err := New(Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Expected a logger without sinks to discard everything")
	}
}

func TestInitWithOptions_File(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "render.log")
	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false

	if err := InitWithOptions(Options{Level: "debug", File: cfg}); err != nil {
		t.Fatalf("InitWithOptions failed: %v", err)
	}
	defer func() {
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	}()

	Debug("debug line")
	Sugar.Infof("iteration %d complete", 7)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	for _, want := range []string{"DEBUG", "debug line", "INFO", "iteration 7 complete"} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected log file to contain %q, got %q", want, content)
		}
	}
}

func TestInitWithOptions_BadLevelKeepsGlobal(t *testing.T) {
	before := Log
	if err := InitWithOptions(Options{Level: "loud"}); err == nil {
		t.Fatal("Expected error for unknown level, got nil")
	}
	if Log != before {
		t.Error("Expected global logger to be unchanged after a failed init")
	}
}
