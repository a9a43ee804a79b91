package historystore

import "sync"

// Backend is the injected persistence capability. The store is the only
// component allowed to touch the persisted representation.
type Backend interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Store keeps the ordered in-memory log and mirrors every mutation to the
// backend synchronously. Corrupt or unreadable persisted state degrades to
// an empty log rather than failing.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	entries []Entry
}

func NewStore(backend Backend) *Store {
	s := &Store{backend: backend}
	if backend != nil {
		if rows, err := backend.Load(); err == nil {
			s.entries = rows
		}
	}
	return s
}

// Append inserts the entry at the head of the log and persists the full log.
func (s *Store) Append(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]Entry{e}, s.entries...)
	s.persistLocked()
}

// List returns the entries most-recent-first.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Load returns the stored entry for display. It never mutates the log.
func (s *Store) Load(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Remove deletes the entry with the matching id if present; otherwise it is
// a no-op and the persisted form is left untouched.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// Len reports the current log length.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// persistLocked writes the full log. A failing backend leaves the in-memory
// log authoritative; persistence failures never crash a user action.
func (s *Store) persistLocked() {
	if s.backend == nil {
		return
	}
	rows := make([]Entry, len(s.entries))
	copy(rows, s.entries)
	_ = s.backend.Save(rows)
}
