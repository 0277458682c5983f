package quiz

import "sync"

// sessionEntry pairs a session with its own lock so that operations on
// one session serialize while unrelated sessions proceed in parallel.
type sessionEntry struct {
	mu      sync.Mutex
	session *Session
}

// SessionStore maps opaque session IDs to their current round state.
// It is the only mutable shared state in the engine. Access to a single
// session is exclusive: Acquire hands out the session with its lock
// held, and concurrent callers for the same ID queue behind each other.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{entries: make(map[string]*sessionEntry)}
}

// Acquire returns the session for id with its per-session lock held.
// The caller must call the release func when done. When create is true
// a missing session is created; otherwise ok is false and no lock is
// held.
func (s *SessionStore) Acquire(id string, create bool) (sess *Session, release func(), ok bool) {
	s.mu.Lock()
	entry, found := s.entries[id]
	if !found {
		if !create {
			s.mu.Unlock()
			return nil, nil, false
		}
		entry = &sessionEntry{session: &Session{ID: id}}
		s.entries[id] = entry
	}
	s.mu.Unlock()

	// Taken outside the store lock so a slow round-advance on one
	// session never blocks lookups of other sessions.
	entry.mu.Lock()
	return entry.session, entry.mu.Unlock, true
}

// Delete removes the session for id. Idempotent: deleting an unknown
// ID is a no-op. A holder of the entry lock finishes its operation on
// the detached entry; the next Acquire starts a fresh session.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
