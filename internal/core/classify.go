package core

import "strings"

// particleKeywords are content hints for the simple particle format:
// percentile column names and distribution-percentile notations.
var particleKeywords = []string{"d10", "d50", "d90", "span", "batch", "d(0.", "x(q3"}

// DetectFormat guesses which extractor a file belongs to from a content
// prefix and the filename. Pure string inspection, no I/O.
//
// The checks run in priority order: explicit multi-section markers, then
// dissolution keywords, then particle keywords, then filename hints. When
// nothing matches the guess defaults to the particle path — that default is
// long-standing observed behavior and callers rely on it; resolve ambiguity
// with ParseParticleAuto rather than by changing the fallback.
func DetectFormat(prefix, filename string) FormatGuess {
	p := strings.ToLower(prefix)
	name := strings.ToLower(filename)

	if (strings.Contains(p, "comment 1") || strings.Contains(p, "comment 2")) &&
		strings.Contains(prefix, "\t") {
		return FormatParticleMultiSection
	}

	if strings.Contains(p, "vessel") || strings.Contains(p, "time point") {
		return FormatDissolution
	}

	for _, kw := range particleKeywords {
		if strings.Contains(p, kw) {
			return FormatParticleSimple
		}
	}

	if strings.Contains(name, "diss") {
		return FormatDissolution
	}
	if strings.Contains(name, "part") || strings.Contains(name, "size") || strings.Contains(name, "master") {
		return FormatParticleSimple
	}

	return FormatParticleSimple
}

// ParseParticleAuto decodes particle data without a firm format decision:
// both particle extractors are tried, starting with the classifier's guess.
// The first success wins. When both fail, the failure carrying the longer
// Details string is returned as the more informative of the two — a crude
// but reproducible tie-break that the error-report dialog depends on.
func ParseParticleAuto(content, filename string) ([]ParticleRecord, error) {
	order := []FormatGuess{FormatParticleMultiSection, FormatParticleSimple}
	if DetectFormat(prefixOf(content), filename) == FormatParticleSimple {
		order = []FormatGuess{FormatParticleSimple, FormatParticleMultiSection}
	}

	var best *ParseError
	for _, guess := range order {
		var records []ParticleRecord
		var err error
		switch guess {
		case FormatParticleMultiSection:
			records, err = ParseParticleMultiSection(content)
		default:
			records, err = ParseParticleSimple(content)
		}
		if err == nil {
			return records, nil
		}
		pe := AsParseError(err)
		if best == nil || len(pe.Details) > len(best.Details) {
			best = pe
		}
	}
	return nil, best
}

// classifyPrefixLen is how much of the content the classifier inspects.
// Instrument dumps reveal their markers well within the first few thousand
// characters.
const classifyPrefixLen = 4096

func prefixOf(content string) string {
	if len(content) > classifyPrefixLen {
		return content[:classifyPrefixLen]
	}
	return content
}
