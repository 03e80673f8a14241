// Package database provides SQLite-based storage for pwtool run history.
//
// This package implements the HistoryDB, which stores:
//   - Analysis metadata (length, charset size, entropy, classes, scores)
//   - Wordlist generation runs (hint count, entry count, output path)
//
// Passwords, hints and generated candidates are never written. Every
// column holds a derived number or a path the user chose.
package database
