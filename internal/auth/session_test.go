package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIssueAndVerify(t *testing.T) {
	manager := NewSessionManager("test-secret", time.Hour, NewMemorySessionStore())
	ctx := context.Background()

	token, session, err := manager.Issue(ctx, "ops@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "ops@example.com", session.Email)

	verified, err := manager.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, verified.ID)
	assert.Equal(t, "ops@example.com", verified.Email)
}

func TestSessionVerifyRejectsTamperedToken(t *testing.T) {
	manager := NewSessionManager("test-secret", time.Hour, NewMemorySessionStore())
	other := NewSessionManager("other-secret", time.Hour, NewMemorySessionStore())
	ctx := context.Background()

	token, _, err := other.Issue(ctx, "ops@example.com")
	require.NoError(t, err)

	_, err = manager.Verify(ctx, token)
	assert.Error(t, err)
}

func TestSessionVerifyRejectsGarbage(t *testing.T) {
	manager := NewSessionManager("test-secret", time.Hour, NewMemorySessionStore())

	_, err := manager.Verify(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestSessionRevoke(t *testing.T) {
	manager := NewSessionManager("test-secret", time.Hour, NewMemorySessionStore())
	ctx := context.Background()

	token, _, err := manager.Issue(ctx, "ops@example.com")
	require.NoError(t, err)

	require.NoError(t, manager.Revoke(ctx, token))

	_, err = manager.Verify(ctx, token)
	assert.Error(t, err)
}

func TestSessionExpiredEntryInStore(t *testing.T) {
	store := NewMemorySessionStore()
	manager := NewSessionManager("test-secret", time.Hour, store)
	ctx := context.Background()

	token, session, err := manager.Issue(ctx, "ops@example.com")
	require.NoError(t, err)

	// simulate server-side expiry independent of the token lifetime
	require.NoError(t, store.Delete(ctx, session.ID))

	_, err = manager.Verify(ctx, token)
	assert.Error(t, err)
}
