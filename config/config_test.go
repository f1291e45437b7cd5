package config

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/exp/slog"
)

func TestLogLevelFromString(t *testing.T) {
	cases := []struct {
		in   string
		want LogLevel
	}{
		{"debug", Debug},
		{"info", Info},
		{"warn", Warn},
		{"error", Error},
	}
	for _, c := range cases {
		got, err := LogLevelFromString(c.in)
		if err != nil {
			t.Fatalf("LogLevelFromString(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("LogLevelFromString(%q) = %v, want %v", c.in, got, c.want)
		}
		if got.String() != c.in {
			t.Fatalf("LogLevel(%v).String() = %q, want %q", got, got.String(), c.in)
		}
	}
}

func TestLogLevelFromStringUnknown(t *testing.T) {
	if _, err := LogLevelFromString("verbose"); err == nil {
		t.Fatalf("expected an error for an unknown log level")
	}
}

func TestLogLevelSlogLevel(t *testing.T) {
	if Warn.SlogLevel() != slog.LevelWarn {
		t.Fatalf("expected Warn to map to slog.LevelWarn")
	}
}

func TestReadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	contents := "log-level: debug\ndata-dir: /tmp/streetlink\nmetrics:\n  enabled: true\n  addr: \":9102\"\n"
	if err := os.WriteFile(file, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg := Read(file)
	if cfg.LogLevel != Debug {
		t.Fatalf("expected log level debug, got %v", cfg.LogLevel)
	}
	if cfg.DataDir != "/tmp/streetlink" {
		t.Fatalf("expected data dir /tmp/streetlink, got %q", cfg.DataDir)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Addr != ":9102" {
		t.Fatalf("expected metrics enabled on :9102, got %+v", cfg.Metrics)
	}
}
