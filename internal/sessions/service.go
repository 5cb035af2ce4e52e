package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Service issues, resolves and destroys admin sessions. The signed
// cookie value gates the store lookup: only signature-valid values
// ever reach the repository.
type Service struct {
	repo   Repository
	signer Signer
	ttl    time.Duration

	// now is swappable in tests
	now func() time.Time
}

func NewService(repo Repository, signer Signer, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{repo: repo, signer: signer, ttl: ttl, now: time.Now}
}

// TTL returns the configured session lifetime (cookie Max-Age uses it).
func (s *Service) TTL() time.Duration { return s.ttl }

// Create stores a new session under a cryptographically random
// 32-byte token and returns the signed cookie value.
func (s *Service) Create(ctx context.Context) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	sess := &Session{
		Token:     token,
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", err
	}
	return s.signer.Value(token), nil
}

// Resolve maps a cookie value to its session token, or "" when the
// value is absent, malformed, forged, unknown or expired. Expired
// entries are evicted on the lookup that discovers them.
func (s *Service) Resolve(ctx context.Context, value string) (string, error) {
	token, ok := s.signer.Verify(value)
	if !ok {
		return "", nil
	}
	sess, err := s.repo.Get(ctx, token)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", nil
	}
	if sess.Expired(s.now()) {
		_ = s.repo.Delete(ctx, token)
		return "", nil
	}
	return token, nil
}

// Destroy evicts the session behind a cookie value. Called on logout
// so the raw token stops being valid server-side, not just on the
// client. Unknown or malformed values are a no-op.
func (s *Service) Destroy(ctx context.Context, value string) error {
	token, ok := s.signer.Verify(value)
	if !ok {
		return nil
	}
	return s.repo.Delete(ctx, token)
}
