package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipebox/recipebox-backend/internal/auth"
	"github.com/recipebox/recipebox-backend/internal/dto"
	"github.com/recipebox/recipebox-backend/internal/models"
	"github.com/recipebox/recipebox-backend/internal/repository"
)

// MinPasswordLength is the shortest password accepted on registration and
// password change
const MinPasswordLength = 5

// UserService implements account registration, credential checks, token
// issuance and account updates over the user repositories
type UserService struct {
	users         repository.UserRepository
	refreshTokens repository.RefreshTokenRepository
	tokens        *auth.TokenManager
	refreshTTL    time.Duration
}

// NewUserService wires the service to its repositories and token manager
func NewUserService(users repository.UserRepository, refreshTokens repository.RefreshTokenRepository,
	tokens *auth.TokenManager, refreshTTL time.Duration) *UserService {
	return &UserService{
		users:         users,
		refreshTokens: refreshTokens,
		tokens:        tokens,
		refreshTTL:    refreshTTL,
	}
}

// Register creates a new account. Field-shape failures return a
// ValidationError; a taken email returns ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, &ValidationError{Detail: "email is required"}
	}
	if len(req.Password) < MinPasswordLength {
		return nil, &ValidationError{Detail: fmt.Sprintf("password must be at least %d characters", MinPasswordLength)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies an email/password pair. Any failure collapses into
// ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueTokens mints an access token and a fresh persisted refresh token for
// the given user
func (s *UserService) IssueTokens(ctx context.Context, user *models.User, now time.Time) (*dto.TokenResponse, error) {
	access, err := s.tokens.Issue(user.ID, now)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	refresh := uuid.New().String()
	if err := s.refreshTokens.Create(ctx, refresh, user.ID, now.Add(s.refreshTTL)); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{Access: access, Refresh: refresh}, nil
}

// Refresh rotates a token pair: the presented refresh token is consumed and a
// new pair is issued. Unknown and expired tokens are rejected alike.
func (s *UserService) Refresh(ctx context.Context, refreshToken string, now time.Time) (*dto.TokenResponse, error) {
	rt, err := s.refreshTokens.Find(ctx, refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if now.After(rt.ExpiresAt) {
		_ = s.refreshTokens.Delete(ctx, refreshToken)
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, rt.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	if err := s.refreshTokens.Delete(ctx, refreshToken); err != nil {
		return nil, ErrInvalidRefreshToken
	}

	return s.IssueTokens(ctx, user, now)
}

// Authorize resolves a bearer token to the acting user. Token errors pass
// through unchanged; a token whose subject has no account returns
// ErrUnknownSubject.
func (s *UserService) Authorize(ctx context.Context, token string, now time.Time) (*models.User, error) {
	userID, err := s.tokens.Validate(token, now)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}
	return user, nil
}

// List returns all accounts, id ascending
func (s *UserService) List(ctx context.Context, identity *models.User) ([]models.User, error) {
	return s.users.List(ctx)
}

// UpdateName renames the target account
func (s *UserService) UpdateName(ctx context.Context, identity *models.User, targetID uuid.UUID, name string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.Name = name
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdatePassword replaces the target account's password
func (s *UserService) UpdatePassword(ctx context.Context, identity *models.User, targetID uuid.UUID, password string) (*models.User, error) {
	if len(password) < MinPasswordLength {
		return nil, &ValidationError{Detail: fmt.Sprintf("password must be at least %d characters", MinPasswordLength)}
	}

	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// FindOrCreateByEmail returns the account for an externally verified email,
// creating one with no usable password when it does not exist yet. Used by
// the Google sign-in flow.
func (s *UserService) FindOrCreateByEmail(ctx context.Context, email, name string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	user = &models.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
