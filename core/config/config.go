// File: config.go
// Title: Tool Configuration Management
// Description: Implements loading, validation, and defaulting of the
//              configuration used by the cal command-line tool. Supports
//              TOML and YAML files with format auto-detection from the
//              file extension.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial TOML/YAML configuration loading

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	callog "github.com/klauskaan/C-AL-Language-sub012/core/log"
	calstringx "github.com/klauskaan/C-AL-Language-sub012/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML forces TOML parsing
	FormatTOML

	// FormatYAML forces YAML parsing
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// LogConfig configures the logger
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// ParserConfig configures parser limits and diagnostics
type ParserConfig struct {
	// MaxErrors caps the number of parse errors collected per document;
	// zero applies the parser default
	MaxErrors int `toml:"max_errors" yaml:"max_errors"`

	// MaxInputLength caps the accepted document size in bytes; zero means
	// unlimited
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`

	// Trace enables lexer trace events on the CLI
	Trace bool `toml:"trace" yaml:"trace"`
}

// Config is the complete tool configuration
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Parser: ParserConfig{
			MaxErrors:      100,
			MaxInputLength: 0,
			Trace:          false,
		},
	}
}

// Load reads configuration from a file, auto-detecting the format
func Load(filePath string) (*Config, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat reads configuration from a file using the given format
func LoadWithFormat(filePath string, format Format) (*Config, error) {
	if calstringx.IsBlank(filePath) {
		return nil, fmt.Errorf("config file path cannot be empty")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	cfg := Default()
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parse TOML config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parse YAML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format for %s", filepath.Base(filePath))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if _, err := callog.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := callog.ParseFormat(c.Log.Format); err != nil {
		return err
	}
	if c.Parser.MaxErrors < 0 {
		return fmt.Errorf("parser.max_errors must not be negative: %d", c.Parser.MaxErrors)
	}
	if c.Parser.MaxInputLength < 0 {
		return fmt.Errorf("parser.max_input_length must not be negative: %d", c.Parser.MaxInputLength)
	}
	return nil
}

// BuildLogger constructs a logger from the log configuration
func (c *Config) BuildLogger() (*callog.Logger, error) {
	level, err := callog.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := callog.ParseFormat(c.Log.Format)
	if err != nil {
		return nil, err
	}
	return callog.NewWithConfig(callog.Config{Level: level, Format: format}), nil
}

// detectFormat maps a file extension to a configuration format
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatTOML
	}
}
