package model

// University type values.
const (
	UniversityTypePublic  = "Public"
	UniversityTypePrivate = "Private"
)

// University represents an educational institution in the directory.
//
// JSON tags use the camelCase keys of the durable-storage payload so a blob
// written by an earlier deployment round-trips field for field. Students and
// TuitionRange are free-text strings with incidental digits ("155,000+",
// "EGP 1,500 - 15,000"); comparators that need numbers parse them leniently
// instead of the model forcing a numeric type.
type University struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	ArabicName   string   `json:"arabicName"`
	City         string   `json:"city"`
	Type         string   `json:"type"` // Public or Private
	Founded      int      `json:"founded"`
	Students     string   `json:"students"`
	Ranking      int      `json:"ranking"`
	Image        string   `json:"image"`
	Programs     []string `json:"programs"`
	TuitionRange string   `json:"tuitionRange"`
	Rating       float64  `json:"rating"`
	Description  string   `json:"description"`
	Location     string   `json:"location"` // embeddable map URL
}
