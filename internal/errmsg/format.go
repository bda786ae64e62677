// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Video metadata
	OpVideoLoad    Op = "load video"
	OpCommentsLoad Op = "load comments"
	OpCommentPost  Op = "post comment"
	OpLikesLoad    Op = "load rating"
	OpLikeToggle   Op = "update rating"
	OpUpNextLoad   Op = "load related videos"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"

	// Persistence
	OpSettingsSave Op = "save player settings"
	OpProgressSave Op = "save watch progress"

	// Initialization
	OpInitialize Op = "initialize application"
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
