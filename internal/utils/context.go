package utils

import (
	"context"

	"github.com/recipebox/recipebox-backend/internal/models"
)

// Context key type to avoid collisions
type contextKey string

const identityKey contextKey = "identity"

// WithIdentity returns a context carrying the authenticated user
func WithIdentity(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, identityKey, user)
}

// IdentityFromContext returns the authenticated user set by the auth
// middleware. Handlers pass it on explicitly; nothing below the HTTP layer
// reads it from context.
func IdentityFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(identityKey).(*models.User)
	return user, ok
}
