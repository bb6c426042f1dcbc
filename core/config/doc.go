// File: doc.go
// Title: Config Package Documentation
// Description: Package documentation for the tool configuration loader.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial documentation

/*
Package config loads the cal tool configuration from TOML or YAML files.

The format is detected from the file extension (.toml, .yaml, .yml).
Missing files are not an error at the call sites; callers fall back to
Default(). Loaded configurations are validated before use.
*/
package config
