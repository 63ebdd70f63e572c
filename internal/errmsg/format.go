// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"

	"github.com/llehouerou/pipctl/internal/pip"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Floating window operations
	OpPipEnter   Op = "enter picture-in-picture"
	OpPipExit    Op = "exit picture-in-picture"
	OpPipUpdate  Op = "update picture-in-picture controls"
	OpPipPresent Op = "show floating window"

	// Session persistence
	OpSessionSave    Op = "save session"
	OpSessionFinish  Op = "record session"
	OpSessionLoad    Op = "load session"
	OpSessionHistory Op = "load session history"

	// Assets
	OpAssetLoad Op = "load control icon"

	// Notifications
	OpNotify Op = "send notification"

	// Initialization
	OpConfigLoad Op = "load config"
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

// FormatResult formats a refused capability check. NoError gives "".
func FormatResult(op Op, r pip.Result) string {
	return Format(op, r.Err())
}
