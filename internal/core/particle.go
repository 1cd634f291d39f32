package core

import "fmt"

// ParseParticleSimple decodes a simple tabular particle-size export: one
// header row resolved against the particle alias table, then one row per
// measured batch.
//
// batchId, d10, d50 and d90 are mandatory; span is taken from an explicit
// column when one resolved, otherwise derived as (d90-d10)/d50. All other
// columns are optional and contribute a field only when their cell decodes.
// Like all simple formats this is fail-fast: the first bad row aborts.
func ParseParticleSimple(content string) ([]ParticleRecord, error) {
	rows, delim := tokenize(content)

	headerIdx := firstDataRow(rows)
	if headerIdx < 0 {
		return nil, formatErr("empty file", "the file contains no table rows")
	}

	idx, perr := ResolveHeader(rows[headerIdx], particleFields, delim)
	if perr != nil {
		return nil, perr
	}

	var records []ParticleRecord
	for i, row := range rows[headerIdx+1:] {
		line := i + 1
		if isEmptyRow(row) {
			continue
		}
		raw := joinRow(row, delim)

		rec, err := decodeParticleRow(row, idx, line, raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, formatErr("no valid data found", "no data rows were found after the header")
	}
	return records, nil
}

// decodeParticleRow converts one data row into a ParticleRecord. A row
// either decodes fully or contributes a positioned error; no partial record
// ever escapes.
func decodeParticleRow(row []string, idx ColumnIndexMap, line int, raw string) (ParticleRecord, *ParseError) {
	batchCell, ok := cellAt(row, idx["batchId"])
	if !ok || cleanCell(batchCell) == "" {
		return ParticleRecord{}, rowErr("missing value",
			fmt.Sprintf("row has no value for column %q", "batchId"), line, raw)
	}
	batch := cleanCell(batchCell)

	d10, err := requiredFloat(row, idx["d10"], "d10", line, raw)
	if err != nil {
		return ParticleRecord{}, err
	}
	d50, err := requiredFloat(row, idx["d50"], "d50", line, raw)
	if err != nil {
		return ParticleRecord{}, err
	}
	d90, err := requiredFloat(row, idx["d90"], "d90", line, raw)
	if err != nil {
		return ParticleRecord{}, err
	}

	rec := ParticleRecord{
		BatchID: batch,
		D10:     d10,
		D50:     d50,
		D90:     d90,
		Span:    spanValue(optionalFloat(row, idx, "span"), d10, d50, d90),
	}

	rec.SpecificSurface = optionalFloat(row, idx, "specificSurface")
	rec.Uniformity = optionalFloat(row, idx, "uniformity")
	rec.VolumeMean = optionalFloat(row, idx, "volumeMean")
	rec.SubmicronPercent = optionalFloat(row, idx, "submicronPercent")
	if col, ok := idx["timestamp"]; ok {
		if cell, ok := cellAt(row, col); ok {
			rec.Timestamp = cleanCell(cell)
		}
	}

	applyLabelParts(&rec, DecomposeLabel(batch))
	return rec, nil
}

// optionalFloat decodes an optional numeric column. Unresolved columns,
// short rows and malformed cells all mean "absent", never an error.
func optionalFloat(row []string, idx ColumnIndexMap, field string) *float64 {
	col, ok := idx[field]
	if !ok {
		return nil
	}
	cell, ok := cellAt(row, col)
	if !ok {
		return nil
	}
	v, ok := parseFloatCell(cell)
	if !ok {
		return nil
	}
	return optFloat(v)
}

// spanValue prefers the explicit span column and derives the normalized
// distribution width otherwise.
func spanValue(explicit *float64, d10, d50, d90 float64) float64 {
	if explicit != nil {
		return *explicit
	}
	return (d90 - d10) / d50
}

// applyLabelParts copies label sub-fields onto a record. The batch cell of a
// simple export is often a plain lot number, in which case the decomposition
// yields nothing new and the record is left untouched.
func applyLabelParts(rec *ParticleRecord, parts LabelParts) {
	if parts.MethodCode != "" {
		rec.MethodCode = parts.MethodCode
	}
	if parts.IntermediateForm != "" {
		rec.IntermediateForm = parts.IntermediateForm
	}
	if parts.Trial != "" && parts.Trial != rec.BatchID {
		rec.TrialCode = parts.Trial
	}
}
