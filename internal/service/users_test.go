package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/recipebox-backend/internal/auth"
	"github.com/recipebox/recipebox-backend/internal/config"
	"github.com/recipebox/recipebox-backend/internal/dto"
	"github.com/recipebox/recipebox-backend/internal/repository"
)

func newUserService() (*UserService, *repository.InMemoryManager) {
	store := repository.NewInMemoryManager()
	tokens := auth.NewTokenManager(&config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
	})
	return NewUserService(store.Users(), store.RefreshTokens(), tokens, 24*time.Hour), store
}

func TestRegister_Success(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "testpass123", Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "A", user.Name)
	assert.NotEqual(t, "testpass123", user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "testpass123", Name: "A"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "otherpass", Name: "B"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// A different email still goes through
	_, err = svc.Register(ctx, dto.RegisterRequest{Email: "b@x.com", Password: "otherpass", Name: "B"})
	assert.NoError(t, err)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, store := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "pw", Name: "A"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// No account must be created on rejection
	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "testpass123", Name: "A"})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "a@x.com", "testpass123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Authenticate(ctx, "a@x.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "ghost@x.com", "testpass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthorize(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()
	now := time.Now()

	user, err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "testpass123", Name: "A"})
	require.NoError(t, err)

	pair, err := svc.IssueTokens(ctx, user, now)
	require.NoError(t, err)

	got, err := svc.Authorize(ctx, pair.Access, now)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Garbled token
	_, err = svc.Authorize(ctx, "garbage", now)
	assert.ErrorIs(t, err, auth.ErrTokenMalformed)

	// Past expiry
	_, err = svc.Authorize(ctx, pair.Access, now.Add(2*time.Hour))
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestAuthorize_UnknownSubject(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()
	now := time.Now()

	tokens := auth.NewTokenManager(&config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour})
	tok, err := tokens.Issue(uuid.New(), now)
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, tok, now)
	assert.ErrorIs(t, err, ErrUnknownSubject)
}

func TestRefresh_RotatesPair(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()
	now := time.Now()

	user, err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "testpass123", Name: "A"})
	require.NoError(t, err)

	pair, err := svc.IssueTokens(ctx, user, now)
	require.NoError(t, err)

	rotated, err := svc.Refresh(ctx, pair.Refresh, now.Add(time.Minute))
	require.NoError(t, err)
	assert.NotEqual(t, pair.Refresh, rotated.Refresh)

	// The consumed token cannot be replayed
	_, err = svc.Refresh(ctx, pair.Refresh, now.Add(2*time.Minute))
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefresh_Expired(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()
	now := time.Now()

	user, err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "testpass123", Name: "A"})
	require.NoError(t, err)

	pair, err := svc.IssueTokens(ctx, user, now)
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, pair.Refresh, now.Add(25*time.Hour))
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestUpdateName(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "testpass123", Name: "A"})
	require.NoError(t, err)

	updated, err := svc.UpdateName(ctx, user, user.ID, "A2")
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Name)
	assert.Equal(t, "a@x.com", updated.Email)

	_, err = svc.UpdateName(ctx, user, uuid.New(), "X")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePassword(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{Email: "a@x.com", Password: "testpass123", Name: "A"})
	require.NoError(t, err)

	_, err = svc.UpdatePassword(ctx, user, user.ID, "newpass456")
	require.NoError(t, err)

	// Old password no longer works, the new one does
	_, err = svc.Authenticate(ctx, "a@x.com", "testpass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "a@x.com", "newpass456")
	assert.NoError(t, err)

	var verr *ValidationError
	_, err = svc.UpdatePassword(ctx, user, user.ID, "pw")
	assert.ErrorAs(t, err, &verr)

	_, err = svc.UpdatePassword(ctx, user, uuid.New(), "newpass456")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindOrCreateByEmail(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	created, err := svc.FindOrCreateByEmail(ctx, "g@x.com", "G")
	require.NoError(t, err)

	found, err := svc.FindOrCreateByEmail(ctx, "g@x.com", "ignored")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "G", found.Name)

	// An account with no usable password cannot log in with one
	_, err = svc.Authenticate(ctx, "g@x.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
