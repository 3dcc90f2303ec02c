package model

// Admission competitiveness levels, from most to least competitive. The
// ordering is fixed and used by the competitiveness sort.
const (
	CompetitivenessVeryHigh = "Very High"
	CompetitivenessHigh     = "High"
	CompetitivenessMedium   = "Medium"
	CompetitivenessModerate = "Moderate"
)

// Faculty represents a field of study offered across universities. Faculty
// records are read-only reference data seeded at startup; there is no CRUD
// surface for them. Universities holds plain university names, not ids.
type Faculty struct {
	ID                       int      `json:"id"`
	Name                     string   `json:"name"`
	ArabicName               string   `json:"arabicName"`
	Category                 string   `json:"category"`
	Description              string   `json:"description"`
	Departments              []string `json:"departments"`
	Duration                 string   `json:"duration"` // free text, e.g. "6-7 years"
	Universities             []string `json:"universities"`
	EntryRequirements        string   `json:"entryRequirements"`
	StudentsCount            string   `json:"studentsCount"`
	Accreditation            []string `json:"accreditation"`
	CareerProspects          []string `json:"careerProspects"`
	Icon                     string   `json:"icon"`
	PopularityRank           int      `json:"popularityRank"`
	AdmissionCompetitiveness string   `json:"admissionCompetitiveness"`
}
