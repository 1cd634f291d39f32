package core

// FormatGuess identifies which extractor the classifier believes an input
// file belongs to. See DetectFormat.
type FormatGuess int

const (
	FormatUnknown FormatGuess = iota
	FormatDissolution
	FormatParticleSimple
	FormatParticleMultiSection
)

// String returns the registry key for the guess.
func (g FormatGuess) String() string {
	switch g {
	case FormatDissolution:
		return "dissolution"
	case FormatParticleSimple:
		return "particle"
	case FormatParticleMultiSection:
		return "mastersizer"
	default:
		return "unknown"
	}
}

// DissolutionRecord is one time point of a dissolution test. VesselValues
// holds one reading per detected vessel column, in column order. Average is
// always the arithmetic mean of VesselValues.
type DissolutionRecord struct {
	TimePoint    float64   `json:"timePoint"`
	VesselValues []float64 `json:"vesselValues"`
	Average      float64   `json:"average"`
}

// ParticleRecord is one particle-size measurement run. BatchID and the three
// distribution percentiles are always present. Span is read from the source
// when an explicit column exists, otherwise derived as (d90-d10)/d50. All
// remaining fields are populated only when the source yields a value.
//
// Note: d10 <= d50 <= d90 is deliberately NOT enforced; out-of-order
// percentiles pass through unchanged so the report UI can show them.
type ParticleRecord struct {
	BatchID          string   `json:"batchId"`
	D10              float64  `json:"d10"`
	D50              float64  `json:"d50"`
	D90              float64  `json:"d90"`
	Span             float64  `json:"span"`
	SpecificSurface  *float64 `json:"specificSurface,omitempty"`
	Uniformity       *float64 `json:"uniformity,omitempty"`
	VolumeMean       *float64 `json:"volumeMean,omitempty"`
	SubmicronPercent *float64 `json:"submicronPercent,omitempty"`
	Timestamp        string   `json:"timestamp,omitempty"`
	MethodCode       string   `json:"methodCode,omitempty"`
	TrialCode        string   `json:"trialCode,omitempty"`
	IntermediateForm string   `json:"intermediateForm,omitempty"`
}

// LabelParts is the decomposition of a raw instrument sample label.
// See DecomposeLabel for the grammar.
type LabelParts struct {
	MethodCode       string `json:"methodCode,omitempty"`
	Trial            string `json:"trial"`
	IntermediateForm string `json:"intermediateForm"`
	CanonicalBatch   string `json:"canonicalBatch"`
}

// FieldSpec binds a canonical field name to its accepted header aliases.
// Aliases must be lower-cased and trimmed; resolution order matters, so
// more specific aliases should come first.
type FieldSpec struct {
	Canonical string   // canonical field name, e.g. "d50"
	Aliases   []string // accepted header spellings, in priority order
	Required  bool     // unresolved Required fields fail the whole parse
	Numeric   bool     // values are decoded as floats when set
}

// ColumnIndexMap maps canonical field names to zero-based column indices for
// one specific input file. Fields left unresolved are simply absent from the
// map. Built once per parse and never shared.
type ColumnIndexMap map[string]int
