// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpConfigLoad Op = "load configuration"
	OpParseArgs  Op = "parse arguments"

	// Curve operations
	OpCurveCreate   Op = "create curve"
	OpSnapshotSave  Op = "save snapshot"
	OpRenderPNG     Op = "render curve"
	OpInterfaceRun  Op = "run interface"
	OpLogFileCreate Op = "open log file"

	// Playlist operations
	OpPlaylistLoad   Op = "load playlist"
	OpCommonWrite    Op = "write common tracks"
	OpDuplicateWrite Op = "write duplicate tracks"
	OpStatsRender    Op = "render track statistics"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
