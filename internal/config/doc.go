// Package config provides configuration structures and utilities for pwtool.
// It defines the options for password analysis, wordlist generation and
// report output, and loads optional defaults from a YAML file.
package config
