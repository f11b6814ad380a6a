package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/config"
)

var (
	// ErrTokenMalformed is returned when a token cannot be parsed or its
	// signature does not verify against the configured secret.
	ErrTokenMalformed = errors.New("token malformed or signature mismatch")

	// ErrTokenExpired is returned for a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims represents the claims in the access token
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 access tokens. Tokens are
// self-contained: the subject id and expiry travel in the claims and are
// trusted only after the signature is recomputed.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager from the JWT configuration
func NewTokenManager(cfg *config.JWTConfig) *TokenManager {
	return &TokenManager{secret: []byte(cfg.Secret), ttl: cfg.AccessTokenTTL}
}

// TTL returns the access token lifetime
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue generates a signed access token for the given user, valid from now
// until now plus the configured TTL
func (m *TokenManager) Issue(userID uuid.UUID, now time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate verifies a token's signature and expiry against the given clock
// and returns the subject's user id
func (m *TokenManager) Validate(tokenString string, now time.Time) (uuid.UUID, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrTokenMalformed
	}

	if !token.Valid || claims.UserID == uuid.Nil {
		return uuid.Nil, ErrTokenMalformed
	}

	return claims.UserID, nil
}
