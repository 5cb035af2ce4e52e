package sessions

import (
	"context"
	"sync"
	"time"
)

// Repository persists admin sessions keyed by token. Get returns
// (nil, nil) for unknown tokens; expiry is enforced by the service,
// not the repository (except where the backend expires keys itself).
type Repository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// MemoryRepository keeps sessions in a process-local map. Matches the
// single-process deployment model: sessions die with the process, and
// expired entries linger until their next lookup evicts them.
type MemoryRepository struct {
	mu    sync.Mutex
	store map[string]*Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Session)}
}

func (m *MemoryRepository) Create(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	m.store[s.Token] = s
	return nil
}

func (m *MemoryRepository) Get(ctx context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store[token]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, token)
	return nil
}

// Len reports the number of stored sessions, including expired ones
// not yet evicted. Used by tests.
func (m *MemoryRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.store)
}
