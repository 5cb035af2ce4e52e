package sessions

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(ttl time.Duration) (*Service, *MemoryRepository, *time.Time) {
	repo := NewMemoryRepository()
	svc := NewService(repo, NewSigner("test-secret"), ttl)
	now := time.Now()
	svc.now = func() time.Time { return now }
	return svc, repo, &now
}

func TestCreateAndResolveSession(t *testing.T) {
	svc, _, _ := newTestService(time.Hour)
	ctx := context.Background()

	value, err := svc.Create(ctx)
	require.NoError(t, err)

	// cookie value is "<64 hex chars>.<64 hex hmac>"
	token, sig, found := strings.Cut(value, ".")
	require.True(t, found)
	require.Len(t, token, 64)
	require.Len(t, sig, 64)

	resolved, err := svc.Resolve(ctx, value)
	require.NoError(t, err)
	require.Equal(t, token, resolved)
}

func TestResolveRejectsUnknownToken(t *testing.T) {
	svc, _, _ := newTestService(time.Hour)
	ctx := context.Background()

	// signature-valid but never created; signature alone is not enough
	value := svc.signer.Value(strings.Repeat("ab", 32))
	resolved, err := svc.Resolve(ctx, value)
	require.NoError(t, err)
	require.Empty(t, resolved)
}

func TestResolveEvictsExpiredSession(t *testing.T) {
	svc, repo, now := newTestService(12 * time.Hour)
	ctx := context.Background()

	value, err := svc.Create(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, repo.Len())

	// 13 hours later the session is gone and the entry evicted
	*now = now.Add(13 * time.Hour)
	resolved, err := svc.Resolve(ctx, value)
	require.NoError(t, err)
	require.Empty(t, resolved)
	require.Equal(t, 0, repo.Len())
}

func TestDestroyEvictsServerSideEntry(t *testing.T) {
	svc, repo, _ := newTestService(time.Hour)
	ctx := context.Background()

	value, err := svc.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Destroy(ctx, value))
	require.Equal(t, 0, repo.Len())

	// the raw token is no longer valid after logout
	resolved, err := svc.Resolve(ctx, value)
	require.NoError(t, err)
	require.Empty(t, resolved)
}

func TestDestroyIgnoresMalformedValue(t *testing.T) {
	svc, _, _ := newTestService(time.Hour)
	require.NoError(t, svc.Destroy(context.Background(), "garbage"))
}
