package store

import "github.com/uniinone/uniinone-api/model"

// FacultyStore serves the faculty reference data. Faculties are seeded once
// and never mutated, so no locking or durability is involved.
type FacultyStore struct {
	list []model.Faculty
}

// NewFacultyStore builds a store over the seed faculty list.
func NewFacultyStore() *FacultyStore {
	return &FacultyStore{list: SeedFaculties()}
}

// List returns a copy of the faculty list in seed order.
func (s *FacultyStore) List() []model.Faculty {
	out := make([]model.Faculty, len(s.list))
	copy(out, s.list)
	return out
}

// GetByID returns the matching faculty, ok=false when absent.
func (s *FacultyStore) GetByID(id int) (model.Faculty, bool) {
	for _, f := range s.list {
		if f.ID == id {
			return f, true
		}
	}
	return model.Faculty{}, false
}
