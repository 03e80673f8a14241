// Package main provides the entry point for the pwtool CLI.
//
// pwtool estimates password strength from length and character classes,
// optionally merged with an external scorer, and builds candidate wordlists
// from personal hints for authorized audits.
//
// Usage:
//
//	pwtool --analyze <password>
//	pwtool --hints alice,rex --years 1990,2000 --out words.txt
//	pwtool analyze --stdin
//	pwtool generate --hints alice --out words.txt
//
// See --help for all available options.
package main

// main is the entry point for pwtool.
func main() {
	Execute()
}
