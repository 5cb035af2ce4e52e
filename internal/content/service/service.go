package service

import (
	"context"
	"errors"

	"github.com/apaudel/folio/internal/content"
	"github.com/apaudel/folio/internal/content/repository"
)

// ErrValidation is returned when the sanitized document fails the one
// save-time check: a non-empty profile name.
var ErrValidation = errors.New("Profile name is required.")

// Service owns the read/write flow over the singleton content
// document. All writes round-trip through content.Sanitize; reads are
// backfilled with defaults.
type Service struct {
	repo repository.Repository
}

func NewService(r repository.Repository) *Service {
	return &Service{repo: r}
}

// GetContent returns the stored document with defaults applied. On
// first read, when nothing is stored yet, the default document is
// written through and returned as-is.
func (s *Service) GetContent(ctx context.Context) (content.Document, error) {
	doc, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			def := content.DefaultDocument()
			if perr := s.repo.Put(ctx, def); perr != nil {
				return content.Document{}, perr
			}
			return def, nil
		}
		return content.Document{}, err
	}
	return content.WithDefaults(doc), nil
}

// SaveContent sanitizes the raw submission, enforces the profile-name
// invariant, and persists. Concurrent saves race with last-write-wins;
// there is deliberately no conflict detection.
func (s *Service) SaveContent(ctx context.Context, raw map[string]any) (content.Document, error) {
	doc := content.Sanitize(raw)
	if doc.Profile.Name == "" {
		return content.Document{}, ErrValidation
	}
	if err := s.repo.Put(ctx, doc); err != nil {
		return content.Document{}, err
	}
	return doc, nil
}
