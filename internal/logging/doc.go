// Package logging provides a small leveled logger for the spiro and
// playlist commands.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information (skipped tracks, tick counts)
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//
// The level comes from the LOG_LEVEL environment variable, or DEBUG=1.
// SetLevel overrides it, for example from a --verbose flag.
package logging
