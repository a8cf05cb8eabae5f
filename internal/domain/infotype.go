package domain

import "strings"

// InfoType is the canonical category label under which an answer is stored.
// The literal values match the rows written by earlier versions of the
// product, so they are load-bearing and must not be renamed.
type InfoType string

const (
	InfoStrengths         InfoType = "tags pontos fortes"
	InfoDevelopmentPoints InfoType = "tags pontos desenvolvimento"
	InfoAVDSummary        InfoType = "resumo avd"
	InfoFeedbackOutput    InfoType = "output_feedback"
	InfoPDIOutput         InfoType = "output_pdi"
	InfoCareerObjectives  InfoType = "objetivos de carreira"
	InfoRoleTasks         InfoType = "tarefas cargo (autoavaliação)"
	InfoDiagnostic        InfoType = "diagnostico pdi"
)

// Non-canonical labels that are written but never read back through
// LatestByEmail. Kept as named constants so writers agree on the spelling.
const (
	InfoPDIFormatted InfoType = "output_pdi_formatado"
	InfoCompetency1  InfoType = "Competencia_PDI_1"
	InfoCompetency2  InfoType = "Competencia_PDI_2"
)

// CanonicalInfoTypes lists every type returned by latest-answer reads,
// in presentation order.
var CanonicalInfoTypes = []InfoType{
	InfoStrengths,
	InfoDevelopmentPoints,
	InfoAVDSummary,
	InfoFeedbackOutput,
	InfoPDIOutput,
	InfoCareerObjectives,
	InfoRoleTasks,
	InfoDiagnostic,
}

// NormalizeInfo trims and lowercases a stored information-type label.
// Stored rows are matched against the canonical set after normalization.
func NormalizeInfo(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CanonicalInfo maps a raw stored label to its canonical InfoType.
// Returns false for labels outside the canonical set; callers drop those
// rows silently.
func CanonicalInfo(raw string) (InfoType, bool) {
	norm := NormalizeInfo(raw)
	for _, t := range CanonicalInfoTypes {
		if NormalizeInfo(string(t)) == norm {
			return t, true
		}
	}
	return "", false
}
