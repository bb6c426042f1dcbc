// File: doc.go
// Title: Stringx Package Documentation
// Description: Package documentation for shared string helpers.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial documentation

/*
Package stringx provides small string helpers shared across the C/AL
front end: blank checks, rune-safe truncation, and the case-insensitive
comparisons the C/AL keyword space requires.
*/
package stringx
