package core

// Error codes reference
//
// Users can quote a code to support staff. Codes are grouped by category:
//
// File errors (FILE001-FILE099)
//
//	FILE001 - File too large: the upload exceeds UPLOAD_MAX_FILE_SIZE
//	          Patterns: "file too large", "request body too large"
//	FILE002 - Parse error: the reader rejected the file content
//	          Matched by type (*dataset.ParseError); message carries the reader error
//	FILE006 - Unsupported format: extension is not csv, xlsx or xls
//	          Matched by type (*dataset.UnsupportedFormatError)
//
// Upload errors (UPL001-UPL099)
//
//	UPL002 - System busy: every ingestion slot is taken
//	         Patterns: "too many concurrent uploads"
//	UPL004 - Request cancelled
//	         Patterns: "context canceled"
//	UPL005 - Request timeout
//	         Patterns: "context deadline exceeded"
//
// Session errors (SES001-SES099)
//
//	SES001 - Session expired
//	         Patterns: "session not found"
//	SES002 - No dataset loaded
//	         Patterns: "no table loaded"
//
// View and plot errors (VIEW001, PLOT001-PLOT099)
//
//	VIEW001 - Unknown view
//	          Patterns: "view not found"
//	VIEW002 - View failed: the computation itself returned an error
//	          Patterns: "cannot describe"
//	PLOT001 - Invalid chart options
//	          Patterns: "invalid plot"
//	PLOT002 - Nothing to plot
//	          Patterns: "no values to plot"
//
// Availability (MAINT001)
//
//	MAINT001 - Maintenance mode: SITE_MAINTENANCE is on
//	           Matched by ErrMaintenance
//
// Rate limiting (RATE001)
//
//	RATE001 - Too many requests
//	          Patterns: "rate limit"
//
// ERR000 is the fallback. Check the logs for the technical error.
//
// Patterns are matched case-insensitively with strings.Contains after the
// typed checks. The first match wins.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JonMunkholm/explore/internal/dataset"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// ErrMaintenance is reported for every request while the site is in
// maintenance mode.
var ErrMaintenance = errors.New("site under maintenance")

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// File errors
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Upload a smaller file",
			Code:    "FILE001",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Upload a smaller file",
			Code:    "FILE001",
		},
	},

	// Upload errors
	{
		pattern: "too many concurrent uploads",
		msg: UserMessage{
			Message: "System is busy processing other uploads",
			Action:  "Please wait a moment and try again",
			Code:    "UPL002",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "UPL004",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try a smaller file or check your connection",
			Code:    "UPL005",
		},
	},

	// Session errors
	{
		pattern: "session not found",
		msg: UserMessage{
			Message: "Your session has expired",
			Action:  "Reload the page and upload the file again",
			Code:    "SES001",
		},
	},
	{
		pattern: "no table loaded",
		msg: UserMessage{
			Message: "No dataset is loaded",
			Action:  "Upload a CSV or Excel file first",
			Code:    "SES002",
		},
	},

	// View and plot errors
	{
		pattern: "view not found",
		msg: UserMessage{
			Message: "That view is not available for this dataset",
			Action:  "Pick a view from the list",
			Code:    "VIEW001",
		},
	},
	{
		pattern: "cannot describe",
		msg: UserMessage{
			Message: "The dataset has no columns to describe",
			Action:  "Upload a file with at least one column",
			Code:    "VIEW002",
		},
	},
	{
		pattern: "invalid plot",
		msg: UserMessage{
			Message: "The chart options are not valid",
			Action:  "Choose a chart type and columns from the lists",
			Code:    "PLOT001",
		},
	},
	{
		pattern: "no values to plot",
		msg: UserMessage{
			Message: "The selected columns have no values to plot",
			Action:  "Pick columns that contain data",
			Code:    "PLOT002",
		},
	},

	// Rate limiting
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Dataset errors are matched by type and keep their own wording; everything
// else goes through the pattern table, falling back to ERR000.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var unsupported *dataset.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return UserMessage{
			Message: unsupported.Error(),
			Action:  "Upload a file with one of these extensions: " + unsupported.Allowed(),
			Code:    "FILE006",
		}
	}

	var parseErr *dataset.ParseError
	if errors.As(err, &parseErr) {
		return UserMessage{
			Message: "The file could not be read: " + parseErr.Err.Error(),
			Action:  "Check that the file is a valid " + strings.ToUpper(parseErr.Format) + " file",
			Code:    "FILE002",
		}
	}

	if errors.Is(err, ErrMaintenance) {
		return UserMessage{
			Message: "Sorry, the web app is currently under maintenance. Please try again later.",
			Code:    "MAINT001",
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError renders "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to something more specific than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err and keeps the original for logging.
// Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
