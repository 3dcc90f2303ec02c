package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/uniinone/uniinone-api/model"
)

// UniversityStore is the single source of truth for the university
// collection. The in-memory slice is authoritative for the running process;
// every successful mutation re-serializes the whole collection to the blob
// store before the mutating call returns, so a reader can never observe the
// memory and durable copies disagreeing. Save failures are logged and the
// in-memory mutation stands (durability is best effort).
//
// Fiber serves requests concurrently, so access is guarded by a RWMutex even
// though the collection is only a few dozen records.
type UniversityStore struct {
	mu   sync.RWMutex
	list []model.University
	blob BlobStore
}

// NewUniversityStore builds a store backed by the given blob store. The
// collection is loaded from durable storage; a missing blob, a broken blob,
// or an empty list all fall back to the seed data. Load problems are logged
// and never surfaced to the caller.
func NewUniversityStore(blob BlobStore) *UniversityStore {
	s := &UniversityStore{blob: blob}

	data, found, err := blob.Load()
	if err != nil {
		log.Printf("Error loading universities from storage: %v", err)
		s.list = SeedUniversities()
		return s
	}
	if !found {
		s.list = SeedUniversities()
		return s
	}

	var loaded []model.University
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("Error parsing stored universities: %v", err)
		s.list = SeedUniversities()
		return s
	}
	if len(loaded) == 0 {
		s.list = SeedUniversities()
		return s
	}
	s.list = loaded
	return s
}

// List returns a copy of the collection in stored order.
func (s *UniversityStore) List() []model.University {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.University, len(s.list))
	copy(out, s.list)
	return out
}

// GetByID returns the matching record. Absence is an ordinary outcome, not
// an error; callers typically redirect when ok is false.
func (s *UniversityStore) GetByID(id int) (model.University, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.list {
		if u.ID == id {
			return u, true
		}
	}
	return model.University{}, false
}

// Add appends the record with a freshly assigned id, ignoring any id on the
// input. The new id is max(existing ids, 0)+1, so it is strictly greater
// than every id present at call time. Returns the stored record.
func (s *UniversityStore) Add(u model.University) model.University {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, existing := range s.list {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u.ID = maxID + 1
	s.list = append(s.list, u)
	s.persist()
	return u
}

// Update replaces the record matching id, forcing the stored id back to id
// regardless of what the payload carries. No-op when id is absent; the
// return value reports whether a record was replaced.
func (s *UniversityStore) Update(id int, u model.University) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.list {
		if s.list[i].ID == id {
			u.ID = id
			s.list[i] = u
			s.persist()
			return true
		}
	}
	return false
}

// Delete removes the record matching id. No-op when absent. Deleted ids are
// not reused by later Adds unless the deleted id was the maximum.
func (s *UniversityStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.list {
		if s.list[i].ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// Snapshot serializes the current collection to the durable blob format.
func (s *UniversityStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.list)
}

// persist writes the whole collection to the blob store. Callers hold the
// write lock.
func (s *UniversityStore) persist() {
	data, err := json.Marshal(s.list)
	if err != nil {
		log.Printf("Error serializing universities: %v", err)
		return
	}
	if err := s.blob.Save(data); err != nil {
		log.Printf("Error saving universities to storage: %v", err)
	}
}
