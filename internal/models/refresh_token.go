package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is an opaque, persisted credential used to mint new access tokens
type RefreshToken struct {
	Token     string    `json:"token" db:"token"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}
