package repository

import (
	"context"
	"sync"

	"github.com/apaudel/folio/internal/content"
)

// MemoryRepository is the in-process twin of the Mongo repository,
// used in tests and local development without a database.
type MemoryRepository struct {
	mu     sync.RWMutex
	doc    content.Document
	stored bool

	// when set, all operations fail with this error (test hook for the
	// store-unavailable paths)
	FailWith error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) Get(ctx context.Context) (content.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailWith != nil {
		return content.Document{}, m.FailWith
	}
	if !m.stored {
		return content.Document{}, ErrNotFound
	}
	return m.doc, nil
}

func (m *MemoryRepository) Put(ctx context.Context, doc content.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.doc = doc
	m.stored = true
	return nil
}
