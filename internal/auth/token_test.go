package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/recipebox-backend/internal/config"
)

func newTestManager(ttl time.Duration) *TokenManager {
	return NewTokenManager(&config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: ttl,
	})
}

func TestIssueAndValidate(t *testing.T) {
	t.Parallel()

	m := newTestManager(time.Hour)
	userID := uuid.New()
	now := time.Now()

	tok, err := m.Issue(userID, now)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := m.Validate(tok, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	m := newTestManager(time.Hour)
	now := time.Now()

	tok, err := m.Issue(uuid.New(), now)
	require.NoError(t, err)

	// One second past expiry
	_, err = m.Validate(tok, now.Add(time.Hour+time.Second))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := newTestManager(time.Hour)
	verifier := NewTokenManager(&config.JWTConfig{
		Secret:         "other-secret",
		AccessTokenTTL: time.Hour,
	})
	now := time.Now()

	tok, err := issuer.Issue(uuid.New(), now)
	require.NoError(t, err)

	_, err = verifier.Validate(tok, now)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()

	m := newTestManager(time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Validate(tok, time.Now())
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", tok)
	}
}

func TestValidate_ValidUntilExpiry(t *testing.T) {
	t.Parallel()

	m := newTestManager(30 * time.Minute)
	userID := uuid.New()
	now := time.Now()

	tok, err := m.Issue(userID, now)
	require.NoError(t, err)

	// Still valid just before expiry
	got, err := m.Validate(tok, now.Add(29*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
