package core

import (
	"fmt"
	"log/slog"
	"strings"
)

// maxMeasurementRows bounds the measurement block. The instrument writes at
// most 100 size classes; anything beyond that is trailing junk. This cap is
// part of the observed format, not a tunable.
const maxMeasurementRows = 100

// maxAlternativeSamples is the fixed sample-column count of the alternative
// export layout (columns "File  1" through "File 10").
const maxAlternativeSamples = 10

// ParseParticleMultiSection decodes a Mastersizer-style instrument dump:
// a tab-delimited export holding a transposed metadata block (rows are
// attributes, columns are samples) and a measurement block (size class per
// row, one value column per sample), separated by blank rows.
//
// Two layouts exist in the wild. The standard one is located by its blank
// rows; the alternative one (marked by "File  1"/"File 10" and "Size class"
// cells) has fixed sample columns and is located by attribute names. Both
// share the join and label decomposition.
//
// Unlike the simple formats, failures are isolated per sample: a sample
// column missing one of d10/d50/d90 is logged and skipped, and the parse
// fails only when no sample survives.
func ParseParticleMultiSection(content string) ([]ParticleRecord, error) {
	if isAlternativeLayout(content) {
		return parseAlternativeLayout(content)
	}
	return parseStandardLayout(content)
}

func isAlternativeLayout(content string) bool {
	return strings.Contains(content, "Size class") &&
		(strings.Contains(content, "File  1") || strings.Contains(content, "File 10"))
}

// metadataBlock is the transposed metadata table, indexed attribute→sample.
type metadataBlock struct {
	samples []string            // sample column names, in column order
	names   []string            // normalized attribute names, in row order
	attrs   map[string][]string // normalized attribute name → per-sample cells
}

// curvePoint is one (size class, volume percent) pair of the measurement
// block, per sample.
type curvePoint struct {
	size  float64
	value float64
}

/* ----------------------------------------
	Standard layout
---------------------------------------- */

func parseStandardLayout(content string) ([]ParticleRecord, error) {
	lines := splitLines(content)

	blanks := findBlankRows(lines, 2)
	if len(blanks) < 2 {
		return nil, formatErr("could not locate two distinct blank rows",
			"multi-section exports separate the metadata and measurement blocks with blank rows; check the file format")
	}

	meta, perr := parseMetadataBlock(lines, blanks[0], blanks[1])
	if perr != nil {
		return nil, perr
	}

	curve := parseMeasurementBlock(lines, blanks[1])

	return joinSamples(meta, curve)
}

// findBlankRows scans for blank lines and returns their 1-based line
// numbers, stopping once max have been found. A line counts as blank when it
// is empty after trimming or its first tab-delimited cell is empty — the
// instrument pads separator rows with tabs.
func findBlankRows(lines []string, max int) []int {
	var blanks []int
	for i, line := range lines {
		first, _, _ := strings.Cut(line, "\t")
		if strings.TrimSpace(line) == "" || strings.TrimSpace(first) == "" {
			blanks = append(blanks, i+1)
			if len(blanks) == max {
				break
			}
		}
	}
	return blanks
}

// parseMetadataBlock reads the lines strictly between the two blank rows
// (1-based b1, b2). The first of them is a header whose cells from column 2
// onward name the sample files; each following row holds an attribute name
// in column 1 and one cell per sample.
func parseMetadataBlock(lines []string, b1, b2 int) (*metadataBlock, *ParseError) {
	if b2-b1 < 3 {
		return nil, formatErr("no valid data found",
			fmt.Sprintf("the metadata block between blank rows %d and %d is empty", b1, b2))
	}
	span := lines[b1 : b2-1]

	header := strings.Split(span[0], "\t")
	samples := make([]string, 0, len(header)-1)
	for _, cell := range header[1:] {
		samples = append(samples, cleanCell(cell))
	}

	meta := &metadataBlock{
		samples: samples,
		attrs:   make(map[string][]string, len(span)-1),
	}
	for _, line := range span[1:] {
		cells := strings.Split(line, "\t")
		name := normCell(cells[0])
		if name == "" {
			continue
		}
		if _, dup := meta.attrs[name]; dup {
			continue
		}
		meta.attrs[name] = padCells(cells[1:], len(samples))
		meta.names = append(meta.names, name)
	}

	return meta, nil
}

// parseMeasurementBlock reads the size-class table that begins two lines
// after the second blank row (1-based b2): a header row whose cells from
// column 3 onward repeat the sample names, then at most maxMeasurementRows
// data rows with the size-class label in column 2 and one comma-decimal
// value per sample. A missing or truncated block is not an error; the curve
// only feeds derived fields.
func parseMeasurementBlock(lines []string, b2 int) map[string][]curvePoint {
	headerIdx := b2 + 2 // 0-based index of the 1-based line b2+3
	if headerIdx >= len(lines) {
		return nil
	}

	header := strings.Split(lines[headerIdx], "\t")
	if len(header) < 3 {
		return nil
	}

	curve := make(map[string][]curvePoint)
	taken := 0
	for _, line := range lines[headerIdx+1:] {
		if taken == maxMeasurementRows {
			break
		}
		cells := strings.Split(line, "\t")
		if len(cells) < 3 || strings.TrimSpace(cells[1]) == "" {
			continue
		}
		taken++

		size, ok := parseFloatCell(cells[1])
		if !ok {
			continue
		}
		for col := 2; col < len(cells) && col < len(header); col++ {
			v, ok := parseFloatCell(cells[col])
			if !ok {
				continue
			}
			sample := cleanCell(header[col])
			curve[sample] = append(curve[sample], curvePoint{size: size, value: v})
		}
	}

	return curve
}

/* ----------------------------------------
	Alternative layout
---------------------------------------- */

// parseAlternativeLayout handles the export variant with fixed sample
// columns. Attribute rows are located by name anywhere in the file rather
// than by blank-row position; columns 2..11 hold up to ten sample files.
func parseAlternativeLayout(content string) ([]ParticleRecord, error) {
	lines := splitLines(content)

	meta := &metadataBlock{
		attrs: make(map[string][]string),
	}
	for i := 1; i <= maxAlternativeSamples; i++ {
		meta.samples = append(meta.samples, fmt.Sprintf("file %d", i))
	}

	curve := make(map[string][]curvePoint)
	inMeasurement := false
	taken := 0
	for _, line := range lines {
		cells := strings.Split(line, "\t")
		name := normCell(cells[0])
		if name == "" {
			continue
		}

		if name == "size class" {
			inMeasurement = true
			continue
		}

		if inMeasurement {
			if taken == maxMeasurementRows {
				continue
			}
			size, ok := parseFloatCell(cells[0])
			if !ok {
				continue
			}
			taken++
			for col := 1; col <= maxAlternativeSamples && col < len(cells); col++ {
				v, ok := parseFloatCell(cells[col])
				if !ok {
					continue
				}
				sample := meta.samples[col-1]
				curve[sample] = append(curve[sample], curvePoint{size: size, value: v})
			}
			continue
		}

		if _, dup := meta.attrs[name]; dup {
			continue
		}
		meta.attrs[name] = padCells(cells[1:], maxAlternativeSamples)
		meta.names = append(meta.names, name)
	}

	// Trailing sample columns with no label are layout padding, not samples.
	labels := meta.attrs[attrSampleLabel]
	last := 0
	for i, label := range labels {
		if cleanCell(label) != "" {
			last = i + 1
		}
	}
	if last < len(meta.samples) {
		meta.samples = meta.samples[:last]
	}

	return joinSamples(meta, curve)
}

/* ----------------------------------------
	Join & unpivot
---------------------------------------- */

// joinSamples assembles one ParticleRecord per sample column by joining the
// metadata attributes positionally and decomposing the sample label. Samples
// missing a label or one of the three percentiles are skipped with a logged
// warning; only an empty result is fatal.
func joinSamples(meta *metadataBlock, curve map[string][]curvePoint) ([]ParticleRecord, error) {
	labels := meta.attrs[attrSampleLabel]
	notes := meta.attrs[attrOperatorNote]

	records := make([]ParticleRecord, 0, len(meta.samples))
	for i, sample := range meta.samples {
		label := ""
		if i < len(labels) {
			label = cleanCell(labels[i])
		}
		if label == "" {
			slog.Warn("skipping sample without a label", "sample", sample)
			continue
		}

		d10, ok10 := attrFloat(meta, "d10", i)
		d50, ok50 := attrFloat(meta, "d50", i)
		d90, ok90 := attrFloat(meta, "d90", i)
		if !ok10 || !ok50 || !ok90 {
			slog.Warn("skipping sample with incomplete percentiles",
				"sample", sample, "label", label,
				"d10", ok10, "d50", ok50, "d90", ok90)
			continue
		}

		parts := DecomposeLabel(label)
		rec := ParticleRecord{
			BatchID: parts.CanonicalBatch,
			D10:     d10,
			D50:     d50,
			D90:     d90,
		}
		if rec.BatchID == "" {
			rec.BatchID = label
		}

		if span, ok := attrFloat(meta, "span", i); ok {
			rec.Span = span
		} else {
			rec.Span = (d90 - d10) / d50
		}
		if v, ok := attrFloat(meta, "specificSurface", i); ok {
			rec.SpecificSurface = optFloat(v)
		}
		if v, ok := attrFloat(meta, "uniformity", i); ok {
			rec.Uniformity = optFloat(v)
		}
		if v, ok := attrFloat(meta, "volumeMean", i); ok {
			rec.VolumeMean = optFloat(v)
		}
		if i < len(notes) {
			rec.Timestamp = cleanCell(notes[i])
		}
		if sub, ok := submicronShare(curve[sample]); ok {
			rec.SubmicronPercent = optFloat(sub)
		}

		rec.MethodCode = parts.MethodCode
		if parts.Trial != rec.BatchID {
			rec.TrialCode = parts.Trial
		}
		rec.IntermediateForm = parts.IntermediateForm

		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, formatErr("no valid data found",
			"every sample column was missing its label or one of d10/d50/d90")
	}
	return records, nil
}

// attrFloat resolves a metadata attribute row through the alias table and
// decodes the sample's cell. Absent rows, short rows and malformed cells all
// read as "no value".
func attrFloat(meta *metadataBlock, canonical string, sample int) (float64, bool) {
	var spec FieldSpec
	for _, f := range msAttrFields {
		if f.Canonical == canonical {
			spec = f
			break
		}
	}
	row := resolveField(meta.names, spec)
	if row < 0 {
		return 0, false
	}
	values := meta.attrs[meta.names[row]]
	if sample >= len(values) {
		return 0, false
	}
	return parseFloatCell(values[sample])
}

// submicronShare sums the volume percentages of all size classes strictly
// below 1 µm. Reported only when the sample has curve data at all.
func submicronShare(points []curvePoint) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, p := range points {
		if p.size < 1.0 {
			sum += p.value
		}
	}
	return sum, true
}

// padCells right-pads a cell slice with blanks to the given width.
func padCells(cells []string, width int) []string {
	for len(cells) < width {
		cells = append(cells, "")
	}
	return cells
}
