// File: level.go
// Title: Log Level Definitions
// Description: Defines log severity levels for the structured logger,
//              including parsing from configuration strings and level
//              comparison helpers.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial level definitions

package log

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log entry
type Level int

const (
	// LevelTrace is for very fine-grained diagnostic output (token streams,
	// context transitions)
	LevelTrace Level = iota

	// LevelDebug is for development diagnostics
	LevelDebug

	// LevelInfo is for normal operational messages
	LevelInfo

	// LevelWarn is for recoverable problems (e.g. parse errors that
	// recovery handled)
	LevelWarn

	// LevelError is for failures
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Enabled reports whether a message at this level passes the minimum level
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// ParseLevel converts a configuration string into a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
}

// AllLevels returns all defined levels in ascending severity
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelInfo
}
