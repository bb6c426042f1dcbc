// File: logger.go
// Title: Structured Logger Implementation
// Description: Implements a structured logger with named fields, level
//              filtering, and pluggable text/JSON output formats. Used by
//              the C/AL parser for diagnostic logging and by the CLI for
//              operational output. Safe for concurrent use.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial structured logger

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Fields is a map of structured log fields
type Fields map[string]interface{}

// Merge combines two field maps, with other taking precedence
func (f Fields) Merge(other Fields) Fields {
	merged := make(Fields, len(f)+len(other))
	for k, v := range f {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Format selects the output encoding
type Format int

const (
	// FormatText produces human-readable single-line output
	FormatText Format = iota

	// FormatJSON produces one JSON object per line
	FormatJSON
)

// ParseFormat converts a configuration string into a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %q", s)
	}
}

// Logger is a leveled, structured logger. The zero value is not usable;
// construct with New or NewWithConfig.
type Logger struct {
	mu     sync.Mutex
	level  Level
	format Format
	output io.Writer
	name   string
	fields Fields
}

// Config configures a new Logger
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a logger with default settings (Info level, text format,
// stderr output)
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel()})
}

// NewWithConfig creates a logger from the given configuration
func NewWithConfig(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	return &Logger{
		level:  config.Level,
		format: config.Format,
		output: config.Output,
		name:   config.Name,
		fields: Fields{},
	}
}

// WithLevel returns a copy of the logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a copy of the logger with the given output format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.format = format
	return clone
}

// WithOutput returns a copy of the logger writing to the given writer
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	return clone
}

// WithName returns a copy of the logger with a component name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a copy of the logger carrying an additional field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a copy of the logger carrying additional fields
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	clone.fields = l.fields.Merge(fields)
	return clone
}

// Trace logs at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, fields...)
}

// Debug logs at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields...)
}

// Info logs at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields...)
}

// Warn logs at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields...)
}

// Error logs at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields...)
}

// ErrorWithErr logs an error value alongside the message
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	merged := Fields{"error": err.Error()}
	for _, f := range fields {
		merged = merged.Merge(f)
	}
	l.log(LevelError, message, merged)
}

// IsLevelEnabled reports whether the given level would be logged
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.Enabled(l.level)
}

// GetLevel returns the current minimum level
func (l *Logger) GetLevel() Level {
	return l.level
}

func (l *Logger) log(level Level, message string, fields ...Fields) {
	if !level.Enabled(l.level) {
		return
	}

	merged := l.fields
	for _, f := range fields {
		merged = merged.Merge(f)
	}

	line := l.formatEntry(level, message, merged)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.output, line)
}

func (l *Logger) formatEntry(level Level, message string, fields Fields) string {
	timestamp := time.Now().Format(time.RFC3339)

	if l.format == FormatJSON {
		entry := map[string]interface{}{
			"time":    timestamp,
			"level":   level.String(),
			"message": message,
		}
		if l.name != "" {
			entry["logger"] = l.name
		}
		for k, v := range fields {
			entry[k] = v
		}
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Sprintf(`{"time":%q,"level":%q,"message":%q}`, timestamp, level.String(), message)
		}
		return string(data)
	}

	var b strings.Builder
	b.WriteString(timestamp)
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("]")
	if l.name != "" {
		b.WriteString(" ")
		b.WriteString(l.name)
		b.WriteString(":")
	}
	b.WriteString(" ")
	b.WriteString(message)

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf(" %s=%v", k, fields[k]))
		}
	}

	return b.String()
}

func (l *Logger) clone() *Logger {
	return &Logger{
		level:  l.level,
		format: l.format,
		output: l.output,
		name:   l.name,
		fields: l.fields.Merge(nil),
	}
}

// Default logger management

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Package-level convenience functions using the default logger

// Debug logs at debug level on the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs at info level on the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs at warn level on the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs at error level on the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
