package core

import (
	"fmt"
	"strings"
)

// ResolveHeader builds the column index map for one input file.
//
// For each field the aliases are tried in order against every header cell:
// first an exact-match pass, then, only if nothing matched exactly, a
// substring-containment pass. The first hit wins in both passes. Matching is
// case-insensitive and ignores export artifacts (see cleanCell).
//
// A Required field that stays unresolved fails the parse immediately with a
// file-level error naming the field and echoing the full header; optional
// fields are simply left out of the map.
func ResolveHeader(header []string, specs []FieldSpec, delim rune) (ColumnIndexMap, *ParseError) {
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = normCell(h)
	}

	idx := make(ColumnIndexMap, len(specs))
	for _, spec := range specs {
		col := resolveField(cells, spec)
		if col < 0 {
			if spec.Required {
				return nil, formatErr(
					fmt.Sprintf("missing required column %q", spec.Canonical),
					fmt.Sprintf("no header cell matched any alias of %q; header was: %s",
						spec.Canonical, joinRow(header, delim)),
				)
			}
			continue
		}
		idx[spec.Canonical] = col
	}

	return idx, nil
}

// resolveField returns the column index for one field, or -1.
// cells must already be normalized with normCell.
func resolveField(cells []string, spec FieldSpec) int {
	for _, alias := range spec.Aliases {
		for i, cell := range cells {
			if cell == alias {
				return i
			}
		}
	}
	for _, alias := range spec.Aliases {
		if alias == "" {
			continue
		}
		for i, cell := range cells {
			if cell != "" && strings.Contains(cell, alias) {
				return i
			}
		}
	}
	return -1
}
