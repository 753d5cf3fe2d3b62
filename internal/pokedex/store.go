package pokedex

import "sync"

// Store holds the session's roster and the selected id. Ids are positive, so
// a zero selection means none. The roster only grows: filtering produces
// views, never mutations.
type Store struct {
	mu       sync.RWMutex
	records  []Record
	selected int
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// Initialize replaces the roster and clears the selection. Later duplicates of
// an id are dropped so the uniqueness invariant holds for any input.
func (s *Store) Initialize(records []Record) {
	out := make([]Record, 0, len(records))
	seen := make(map[int]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	s.mu.Lock()
	s.records = out
	s.selected = 0
	s.mu.Unlock()
}

// All returns the roster in insertion order. Callers must not modify it.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Len reports the roster size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ByID finds a record by id.
func (s *Store) ByID(id int) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// AddIfAbsent appends r unless a record with the same id is present and
// reports whether it did.
func (s *Store) AddIfAbsent(r Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.records {
		if existing.ID == r.ID {
			return false
		}
	}
	s.records = append(s.records, r)
	return true
}

// Select marks id as the selected record.
func (s *Store) Select(id int) {
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
}

// Selected returns the selected id, if any.
func (s *Store) Selected() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.selected != 0
}

// ClearSelection drops the selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selected = 0
	s.mu.Unlock()
}
