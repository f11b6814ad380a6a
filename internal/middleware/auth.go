package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/recipebox/recipebox-backend/internal/models"
	"github.com/recipebox/recipebox-backend/internal/utils"
)

// Authorizer resolves a bearer token to the acting user
type Authorizer interface {
	Authorize(ctx context.Context, token string, now time.Time) (*models.User, error)
}

// AuthMiddleware validates bearer tokens in the Authorization header and
// attaches the resolved identity to the request context
type AuthMiddleware struct {
	authorizer Authorizer
	logger     *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authorizer Authorizer, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{authorizer: authorizer, logger: logger}
}

// RequireAuth rejects the request with 401 unless a valid bearer token
// resolves to a known user. Expired, malformed and unknown-subject tokens all
// produce the same response body.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		identity, err := m.authorizer.Authorize(r.Context(), tokenParts[1], time.Now())
		if err != nil {
			m.logger.Warn("token rejected",
				zap.String("path", r.URL.Path),
				zap.Error(err))
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	}
}
