// Package log provides slog-based logging that never prints secrets.
//
// pwtool handles passwords and password candidates, so every logger it
// creates wraps its handler in a SecureHandler. Attributes whose key names a
// secret (password, candidate, hint, ...) are always masked, and string
// values that look like credentials are masked regardless of key.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("analyzing", "password", pw) // password=***REDACTED***
package log
