// Package query implements the pure filter/sort engine behind the listing
// endpoints. Every function takes a collection snapshot and returns a new
// slice; the input is never mutated and no state is kept between calls.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/uniinone/uniinone-api/model"
)

// FilterAll is the filter value that matches every record. An empty filter
// behaves the same way.
const FilterAll = "all"

// University sort keys.
const (
	SortUniversityRanking  = "ranking"
	SortUniversityName     = "name"
	SortUniversityStudents = "students"
	SortUniversityFounded  = "founded"
)

// Faculty sort keys.
const (
	SortFacultyPopularity      = "popularity"
	SortFacultyName            = "name"
	SortFacultyDuration        = "duration"
	SortFacultyCompetitiveness = "competitiveness"
)

// competitivenessOrder fixes the total order of admission competitiveness
// levels for sorting. Unknown levels sort last.
var competitivenessOrder = map[string]int{
	model.CompetitivenessVeryHigh: 0,
	model.CompetitivenessHigh:     1,
	model.CompetitivenessMedium:   2,
	model.CompetitivenessModerate: 3,
}

// UniversityQuery describes a filtered, sorted view of the university
// collection. Zero values mean "no filtering" and the default sort.
type UniversityQuery struct {
	Search string
	City   string
	Type   string
	SortBy string
}

// FacultyQuery describes a filtered, sorted view of the faculty list.
type FacultyQuery struct {
	Search   string
	Category string
	SortBy   string
}

// FilterUniversities returns the universities matching q, ordered by the
// selected sort key. A record matches when it passes the text search AND
// every active categorical filter. Sorting is stable: records with equal
// keys keep their input order, which callers rely on.
func FilterUniversities(list []model.University, q UniversityQuery) []model.University {
	out := make([]model.University, 0, len(list))
	for _, u := range list {
		if !matchesUniversity(u, q) {
			continue
		}
		out = append(out, u)
	}

	switch q.SortBy {
	case SortUniversityName:
		c := newCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortUniversityStudents:
		// Descending by the lenient numeric reading of the free-text count.
		sort.SliceStable(out, func(i, j int) bool {
			return LenientInt(out[i].Students) > LenientInt(out[j].Students)
		})
	case SortUniversityFounded:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Founded > out[j].Founded
		})
	default: // ranking ascending
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Ranking < out[j].Ranking
		})
	}
	return out
}

// FilterFaculties returns the faculties matching q, ordered by the selected
// sort key. Same combination and stability rules as FilterUniversities.
func FilterFaculties(list []model.Faculty, q FacultyQuery) []model.Faculty {
	out := make([]model.Faculty, 0, len(list))
	for _, f := range list {
		if !matchesFaculty(f, q) {
			continue
		}
		out = append(out, f)
	}

	switch q.SortBy {
	case SortFacultyName:
		c := newCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortFacultyDuration:
		sort.SliceStable(out, func(i, j int) bool {
			return LeadingInt(out[i].Duration) < LeadingInt(out[j].Duration)
		})
	case SortFacultyCompetitiveness:
		sort.SliceStable(out, func(i, j int) bool {
			return competitivenessRank(out[i].AdmissionCompetitiveness) <
				competitivenessRank(out[j].AdmissionCompetitiveness)
		})
	default: // popularity rank ascending
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PopularityRank < out[j].PopularityRank
		})
	}
	return out
}

func matchesUniversity(u model.University, q UniversityQuery) bool {
	if !filterMatches(q.City, u.City) {
		return false
	}
	if !filterMatches(q.Type, u.Type) {
		return false
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(u.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(u.ArabicName), search) {
		return true
	}
	for _, program := range u.Programs {
		if strings.Contains(strings.ToLower(program), search) {
			return true
		}
	}
	return false
}

func matchesFaculty(f model.Faculty, q FacultyQuery) bool {
	if !filterMatches(q.Category, f.Category) {
		return false
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(f.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(f.ArabicName), search) {
		return true
	}
	if strings.Contains(strings.ToLower(f.Description), search) {
		return true
	}
	for _, dept := range f.Departments {
		if strings.Contains(strings.ToLower(dept), search) {
			return true
		}
	}
	for _, uni := range f.Universities {
		if strings.Contains(strings.ToLower(uni), search) {
			return true
		}
	}
	return false
}

func filterMatches(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

func competitivenessRank(level string) int {
	if rank, ok := competitivenessOrder[level]; ok {
		return rank
	}
	return len(competitivenessOrder)
}

// newCollator builds a fresh English collator per sort. Collators keep
// internal buffers and are not safe for concurrent use, so they are never
// shared between requests.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}
