package core

import (
	"fmt"
	"strings"
)

// ParseDissolution decodes a simple tabular dissolution export: one header
// row, then one row per sampling time point with a reading for every vessel.
//
// The vessel columns are whatever header cells mention "vessel", in column
// order; at least six must be present. Parsing is fail-fast: the first
// malformed data row aborts the parse with a positioned error.
func ParseDissolution(content string) ([]DissolutionRecord, error) {
	rows, delim := tokenize(content)

	headerIdx := firstDataRow(rows)
	if headerIdx < 0 {
		return nil, formatErr("empty file", "the file contains no table rows")
	}
	header := rows[headerIdx]

	idx, perr := ResolveHeader(header, []FieldSpec{timePointField}, delim)
	if perr != nil {
		return nil, perr
	}
	timeCol := idx[timePointField.Canonical]

	vessels := vesselColumns(header)
	if len(vessels) < minVesselColumns {
		return nil, formatErr(
			fmt.Sprintf("expected %d vessel columns, but found %d", minVesselColumns, len(vessels)),
			"header was: "+joinRow(header, delim),
		)
	}

	var records []DissolutionRecord
	for i, row := range rows[headerIdx+1:] {
		line := i + 1
		if isEmptyRow(row) {
			continue
		}
		raw := joinRow(row, delim)

		timePoint, err := requiredFloat(row, timeCol, timePointField.Canonical, line, raw)
		if err != nil {
			return nil, err
		}

		values := make([]float64, 0, len(vessels))
		sum := 0.0
		for n, col := range vessels {
			name := fmt.Sprintf("vessel %d", n+1)
			v, err := requiredFloat(row, col, name, line, raw)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
			sum += v
		}

		records = append(records, DissolutionRecord{
			TimePoint:    timePoint,
			VesselValues: values,
			Average:      sum / float64(len(values)),
		})
	}

	if len(records) == 0 {
		return nil, formatErr("no valid data found", "no data rows were found after the header")
	}
	return records, nil
}

// requiredFloat reads and decodes a mandatory numeric cell, producing the
// positioned row error that aborts simple-format parses.
func requiredFloat(row []string, col int, field string, line int, raw string) (float64, *ParseError) {
	cell, ok := cellAt(row, col)
	if !ok || cleanCell(cell) == "" {
		return 0, rowErr("missing value",
			fmt.Sprintf("no value for column %q (index %d)", field, col),
			line, raw)
	}
	v, ok := parseFloatCell(cell)
	if !ok {
		return 0, rowErr("invalid numeric value",
			fmt.Sprintf("cannot parse %q as a number for column %q", strings.TrimSpace(cell), field),
			line, raw)
	}
	return v, nil
}

// vesselColumns returns the indices of all header cells naming a vessel,
// preserving column order.
func vesselColumns(header []string) []int {
	var cols []int
	for i, cell := range header {
		if strings.Contains(normCell(cell), "vessel") {
			cols = append(cols, i)
		}
	}
	return cols
}

// firstDataRow returns the index of the first non-empty row, or -1.
func firstDataRow(rows [][]string) int {
	for i, row := range rows {
		if !isEmptyRow(row) {
			return i
		}
	}
	return -1
}
