package core

import "fmt"

// ParseError is the single failure type returned by every parse function.
//
// Message is a short headline suitable for a dialog title. Details carries
// the diagnostic text (which column failed, what the header looked like).
// For row-scoped failures, Line is the 1-based index of the offending data
// row — counted over the tokenized table, not over raw file lines — and Raw
// is the row rejoined with the detected delimiter.
//
// Fields are plain text; callers own any markup.
type ParseError struct {
	Message string `json:"message"`
	Details string `json:"details"`
	Line    int    `json:"line,omitempty"`
	Raw     string `json:"raw,omitempty"`
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", e.Message, e.Line, e.Details)
	}
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// formatErr builds a file-level error: the parse attempt as a whole failed
// and no row can be blamed.
func formatErr(message, details string) *ParseError {
	return &ParseError{Message: message, Details: details}
}

// rowErr builds a row-positioned error. line is 1-based over data rows.
func rowErr(message, details string, line int, raw string) *ParseError {
	return &ParseError{Message: message, Details: details, Line: line, Raw: raw}
}

// AsParseError extracts the *ParseError from err, wrapping foreign errors so
// downstream consumers always see the uniform shape. Returns nil for nil.
func AsParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	return &ParseError{Message: "parsing failed", Details: err.Error()}
}
