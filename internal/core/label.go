package core

import (
	"regexp"
	"strings"
)

// Sample labels are free text typed by operators, but in practice they
// follow a loose grammar: an optional method prefix, a trial identifier and
// trailing descriptive text, e.g.
//
//	"M1;ABC12-3D45, milled suspension"
//
// DecomposeLabel takes the label apart in three ordered steps, each
// consuming a prefix and handing the remainder to the next. The steps are
// independent functions so each rule can be tested on its own.
var (
	methodCodePattern = regexp.MustCompile(`^(M[0-9][;,:]?)(.*)`)
	trialSplitPattern = regexp.MustCompile(`([^, ]+)[, ]?(.*)`)
	batchCodePattern  = regexp.MustCompile(`(?i)[A-Z]{3}[0-9]{2}-[0-9][A-Z][0-9]{0,2}`)
)

// DecomposeLabel splits a raw sample label into its sub-fields.
// Pure string processing; it never fails, it just leaves parts empty.
func DecomposeLabel(label string) LabelParts {
	method, rest := extractMethodCode(label)
	trial, form := splitTrial(rest)

	return LabelParts{
		MethodCode:       method,
		Trial:            trial,
		IntermediateForm: form,
		CanonicalBatch:   extractCanonicalBatch(trial),
	}
}

// extractMethodCode strips a leading method marker of the form M<digit>,
// optionally terminated by one of ';', ',', ':'. When no marker is present
// the label passes through unchanged.
func extractMethodCode(label string) (method, rest string) {
	m := methodCodePattern.FindStringSubmatch(label)
	if m == nil {
		return "", label
	}
	return strings.TrimRight(m[1], ";,:"), strings.TrimSpace(m[2])
}

// splitTrial breaks the working label at the first comma or space run:
// the leading token is the trial identifier, everything after it (trimmed)
// is the intermediate-form description.
func splitTrial(s string) (trial, form string) {
	m := trialSplitPattern.FindStringSubmatch(s)
	if m == nil {
		return s, ""
	}
	return m[1], strings.TrimSpace(m[2])
}

// extractCanonicalBatch searches the trial identifier for the canonical
// batch pattern (three letters, two digits, dash, one digit, one letter,
// up to two digits, e.g. ABC12-3D45). Falls back to the trial itself when
// the pattern is absent.
func extractCanonicalBatch(trial string) string {
	if m := batchCodePattern.FindString(trial); m != "" {
		return m
	}
	return trial
}
