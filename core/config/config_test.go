// File: config_test.go
// Title: Configuration Tests
// Description: Tests for configuration loading in TOML and YAML formats,
//              format auto-detection, validation, and logger construction.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial configuration tests

package config

import (
	"os"
	"path/filepath"
	"testing"

	callog "github.com/klauskaan/C-AL-Language-sub012/core/log"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("default log config = %+v", cfg.Log)
	}
	if cfg.Parser.MaxErrors != 100 || cfg.Parser.MaxInputLength != 0 || cfg.Parser.Trace {
		t.Errorf("default parser config = %+v", cfg.Parser)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeTempConfig(t, "cal.toml", `
[log]
level = "debug"
format = "json"

[parser]
max_errors = 25
max_input_length = 1048576
trace = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log config = %+v", cfg.Log)
	}
	if cfg.Parser.MaxErrors != 25 || cfg.Parser.MaxInputLength != 1048576 || !cfg.Parser.Trace {
		t.Errorf("parser config = %+v", cfg.Parser)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "cal.yaml", `
log:
  level: warn
parser:
  max_errors: 5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Log.Level)
	}
	// Unset keys keep their defaults
	if cfg.Log.Format != "text" {
		t.Errorf("log format = %q, want the text default", cfg.Log.Format)
	}
	if cfg.Parser.MaxErrors != 5 {
		t.Errorf("max errors = %d, want 5", cfg.Parser.MaxErrors)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("blank path", func(t *testing.T) {
		if _, err := Load("  "); err == nil {
			t.Error("Load(blank) succeeded, want error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("Load(missing) succeeded, want error")
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeTempConfig(t, "bad.toml", "[log\nlevel=")
		if _, err := Load(path); err == nil {
			t.Error("Load(malformed) succeeded, want error")
		}
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		path := writeTempConfig(t, "cal.toml", "[log]\nlevel = \"loud\"\n")
		if _, err := Load(path); err == nil {
			t.Error("Load with invalid level succeeded, want error")
		}
	})

	t.Run("negative max errors rejected", func(t *testing.T) {
		path := writeTempConfig(t, "cal.toml", "[parser]\nmax_errors = -1\n")
		if _, err := Load(path); err == nil {
			t.Error("Load with negative max_errors succeeded, want error")
		}
	})
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"cal.toml", FormatTOML},
		{"cal.yaml", FormatYAML},
		{"cal.yml", FormatYAML},
		{"cal.conf", FormatTOML},
		{"cal", FormatTOML},
	}
	for _, tt := range tests {
		if got := detectFormat(tt.path); got != tt.want {
			t.Errorf("detectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestBuildLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"

	logger, err := cfg.BuildLogger()
	if err != nil {
		t.Fatalf("BuildLogger() error: %v", err)
	}
	if logger.GetLevel() != callog.LevelDebug {
		t.Errorf("logger level = %v, want DEBUG", logger.GetLevel())
	}

	cfg.Log.Format = "bogus"
	if _, err := cfg.BuildLogger(); err == nil {
		t.Error("BuildLogger with bogus format succeeded, want error")
	}
}
