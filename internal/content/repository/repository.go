package repository

import (
	"context"
	"errors"

	"github.com/apaudel/folio/internal/content"
)

var (
	// ErrNotFound means no document has been stored yet. The service
	// reacts by seeding the default document.
	ErrNotFound = errors.New("content document not found")

	// ErrStoreUnavailable means the backing database is missing or
	// unreachable. The API layer maps it to a dedicated message so the
	// operator knows to create/configure the database.
	ErrStoreUnavailable = errors.New("content store unavailable")
)

// Repository persists the singleton content document under a single
// well-known key. Implementations must treat Put as a merge-write:
// fields unknown to this build that already exist in the stored
// document are preserved.
type Repository interface {
	Get(ctx context.Context) (content.Document, error)
	Put(ctx context.Context, doc content.Document) error
}
