// File: logger_test.go
// Title: Structured Logger Tests
// Description: Tests for the structured logger: level filtering, field
//              merging and ordering, text and JSON output formats, and
//              default logger management.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial logger tests

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Output: &buf})

	logger.Debug("not visible")
	logger.Info("not visible either")
	logger.Warn("visible")
	logger.Error("also visible")

	out := buf.String()
	if strings.Contains(out, "not visible") {
		t.Errorf("suppressed levels were written: %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "also visible") {
		t.Errorf("enabled levels are missing: %q", out)
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf, Name: "parser"})

	logger.WithFields(Fields{"b": 2, "a": 1}).Info("hello")

	out := strings.TrimSpace(buf.String())
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("level tag missing: %q", out)
	}
	if !strings.Contains(out, "parser:") {
		t.Errorf("logger name missing: %q", out)
	}
	// Fields render sorted by key
	if !strings.Contains(out, "a=1 b=2") {
		t.Errorf("fields not sorted: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.WithField("tokens", 42).Info("done")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%q", err, buf.String())
	}
	if entry["level"] != "INFO" || entry["message"] != "done" {
		t.Errorf("entry = %v", entry)
	}
	if entry["tokens"] != float64(42) {
		t.Errorf("tokens field = %v", entry["tokens"])
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWithConfig(Config{Level: LevelInfo, Output: &buf})
	child := parent.WithField("child", true)

	parent.Info("from parent")
	if strings.Contains(buf.String(), "child") {
		t.Errorf("parent logger picked up the child field: %q", buf.String())
	}

	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), "child=true") {
		t.Errorf("child field missing: %q", buf.String())
	}
}

func TestErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelError, Output: &buf})

	logger.ErrorWithErr("parse failed", errTest{})

	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("error field missing: %q", buf.String())
	}
}

type errTest struct{}

func (errTest) Error() string { return "boom" }

func TestDefaultLoggerManagement(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelInfo, Output: &buf}))
	Info("through the default")

	if !strings.Contains(buf.String(), "through the default") {
		t.Errorf("default logger did not receive the message: %q", buf.String())
	}

	SetDefault(nil)
	if GetDefault() == nil {
		t.Error("SetDefault(nil) replaced the default logger")
	}
}

func TestNewUsesInfoLevel(t *testing.T) {
	logger := New()
	if logger.GetLevel() != LevelInfo {
		t.Errorf("New().GetLevel() = %v, want INFO", logger.GetLevel())
	}
	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled by default")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.input, got, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) succeeded, want error")
	}
}

func TestFieldsMerge(t *testing.T) {
	base := Fields{"a": 1, "b": 1}
	merged := base.Merge(Fields{"b": 2, "c": 3})

	if merged["a"] != 1 || merged["b"] != 2 || merged["c"] != 3 {
		t.Errorf("Merge = %v", merged)
	}
	if base["b"] != 1 {
		t.Error("Merge mutated the receiver")
	}
}
