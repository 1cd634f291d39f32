package core

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// utf16Decoder expects a byte-order mark, which is what the Mastersizer
// export software writes. Plain UTF-8 CSVs have no BOM, so decoding them
// fails and we fall through to the UTF-8 path.
var utf16Decoder = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)

// DecodeBuffer turns a raw upload buffer into text.
//
// The heuristic is deliberately simple and matches the legacy importer:
// attempt a UTF-16 decode first; if the decoded text is empty or begins with
// a replacement character, treat the buffer as UTF-8 instead. There is no
// further BOM or charset detection.
func DecodeBuffer(raw []byte) string {
	if decoded, err := utf16Decoder.NewDecoder().Bytes(raw); err == nil {
		text := string(decoded)
		if text != "" && !strings.HasPrefix(text, "�") {
			return text
		}
	}
	return strings.TrimPrefix(string(sanitizeUTF8(raw)), "\uFEFF")
}

// sanitizeUTF8 replaces invalid byte sequences with the Unicode replacement
// character so downstream string handling never sees broken encoding.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}

// DetectDelimiter guesses the field delimiter of a plain-text table by
// counting candidate characters in the first line. Ties and all-zero counts
// fall back to comma. Multi-section instrument dumps never go through this
// path; they are always tab-delimited.
func DetectDelimiter(line string) rune {
	commas := strings.Count(line, ",")
	semis := strings.Count(line, ";")
	tabs := strings.Count(line, "\t")

	switch {
	case semis > commas && semis > tabs:
		return ';'
	case tabs > commas && tabs > semis:
		return '\t'
	default:
		return ','
	}
}

// HasMultipleSections reports whether the text contains at least two logical
// sections separated by a blank line, i.e. non-blank content resumes after a
// blank line. Instrument dumps look like this; simple exports do not.
func HasMultipleSections(content string) bool {
	lines := splitLines(content)
	seenContent := false
	seenBlankAfterContent := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if seenContent {
				seenBlankAfterContent = true
			}
			continue
		}
		if seenBlankAfterContent {
			return true
		}
		seenContent = true
	}
	return false
}

// splitLines splits text into lines, tolerating both LF and CRLF endings.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// tokenize splits text into a raw row/column table using the delimiter
// detected from the first line. Rows are not normalized in length; callers
// must tolerate short rows.
func tokenize(content string) ([][]string, rune) {
	lines := splitLines(content)
	delim := ','
	if len(lines) > 0 {
		delim = DetectDelimiter(lines[0])
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.Split(line, string(delim)))
	}
	return rows, delim
}
