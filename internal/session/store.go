// Session storage. The core engine operates on values passed in and
// returned; the store is the one place session state is retained, behind an
// explicit interface so the API layer can be handed a memory store in tests
// and a SQLite store in production.
package session

import (
	"errors"
	"sync"
	"time"
)

// Sentinel errors surfaced to the API layer.
var (
	ErrNotFound      = errors.New("session: not found")
	ErrUnknownAction = errors.New("session: unknown action id")
	ErrUnaffordable  = errors.New("session: action not affordable")
)

// Store persists sessions. Access to one player's session is serialized by
// the store; the core carries no locking of its own.
type Store interface {
	Get(id string) (*Session, error)
	Put(s *Session) error
	Delete(id string) error

	// Sweep evicts sessions idle longer than maxAge and reports how many
	// were removed.
	Sweep(maxAge time.Duration) (int, error)
}

// MemoryStore is the in-process store used by tests and single-node runs.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) Put(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.UpdatedAt = time.Now()
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) Sweep(maxAge time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}
