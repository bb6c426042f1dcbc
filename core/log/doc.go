// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the structured logging package
//              used throughout the C/AL language front end.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial documentation

/*
Package log provides structured, leveled logging for the C/AL language
front end.

Loggers carry named fields, filter by level, and write either
human-readable text or one JSON object per line. Derived loggers share
the parent's output but add their own name and fields:

	logger := log.New().WithName("parser").WithField("file", path)
	logger.Debug("parse started", log.Fields{"bytes": len(src)})

The parser logs only sanitized values; raw source content never reaches
a log entry.
*/
package log
