// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. When users encounter a parse failure, they can quote the code
// to support staff for faster diagnosis.
//
//	HDR001 - Missing column: a required column could not be resolved
//	         Patterns: "missing required column"
//	HDR002 - Vessel count: fewer than six vessel columns were found
//	         Patterns: "vessel columns"
//	ROW001 - Missing value: a data row is missing a required cell
//	         Patterns: "missing value"
//	ROW002 - Invalid number: a required cell is not numeric
//	         Patterns: "invalid numeric"
//	SEC001 - Section structure: the two blank separator rows are absent
//	         Patterns: "two distinct blank rows"
//	SEC002 - No data: no sample or row survived extraction
//	         Patterns: "no valid data found"
//	FILE001 - Empty file: the input holds no table rows
//	         Patterns: "empty file"
//	ERR000 - Fallback when no pattern matches
//
// Patterns are matched case-insensitively with strings.Contains; the first
// match wins, so keep specific patterns before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // what happened (user-friendly)
	Action  string // what to do about it
	Code    string // error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "missing required column",
		msg: UserMessage{
			Message: "A required column is missing from the file",
			Action:  "Check that the header names match the instrument template",
			Code:    "HDR001",
		},
	},
	{
		pattern: "vessel columns",
		msg: UserMessage{
			Message: "The file does not have enough vessel columns",
			Action:  "Dissolution exports need at least six vessel columns",
			Code:    "HDR002",
		},
	},
	{
		pattern: "missing value",
		msg: UserMessage{
			Message: "A data row is missing a required value",
			Action:  "Open the reported line and fill in or remove the row",
			Code:    "ROW001",
		},
	},
	{
		pattern: "invalid numeric",
		msg: UserMessage{
			Message: "A required value is not a number",
			Action:  "Check the reported line for text in a numeric column",
			Code:    "ROW002",
		},
	},
	{
		pattern: "two distinct blank rows",
		msg: UserMessage{
			Message: "The instrument export is missing its section separators",
			Action:  "Re-export the file from the instrument software without editing it",
			Code:    "SEC001",
		},
	},
	{
		pattern: "no valid data found",
		msg: UserMessage{
			Message: "No usable measurements were found in the file",
			Action:  "Verify the file holds at least one complete sample",
			Code:    "SEC002",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The uploaded file is empty",
			Action:  "Please upload a file with data rows",
			Code:    "FILE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000). Support staff
// should check the logs for the original technical error.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical parse error to a user-friendly message.
// It searches the known patterns case-insensitively and returns the first
// match, falling back to the generic ERR000 message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display, in the form
// "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
