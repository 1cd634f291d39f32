package core

import (
	"math"
	"strconv"
	"strings"
)

// cleanCell removes common export artifacts from a cell value:
//   - surrounding whitespace
//   - Excel formula prefix (="value")
//   - stray surrounding quotes
func cleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return strings.TrimSpace(s)
}

// normCell lower-cases a cleaned cell for alias matching.
func normCell(s string) string {
	return strings.ToLower(cleanCell(s))
}

// isEmptyRow reports whether a data row should be skipped silently.
// A row with at most one cell is treated as empty regardless of content;
// delimiter-less stray lines in exports are noise, not data.
func isEmptyRow(row []string) bool {
	if len(row) <= 1 {
		return true
	}
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseFloatCell decodes a numeric cell the way instrument exports write
// them: an optional trailing percent sign is stripped and a comma decimal
// separator is accepted. Returns false for blanks, non-numbers and NaN.
func parseFloatCell(s string) (float64, bool) {
	s = cleanCell(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// joinRow reconstructs the raw line for error reporting by rejoining tokens
// with the detected delimiter.
func joinRow(row []string, delim rune) string {
	return strings.Join(row, string(delim))
}

// cellAt returns the raw cell at index idx, or false when the row is too
// short to have one.
func cellAt(row []string, idx int) (string, bool) {
	if idx < 0 || idx >= len(row) {
		return "", false
	}
	return row[idx], true
}

// optFloat boxes a float for the optional record fields.
func optFloat(v float64) *float64 {
	return &v
}
