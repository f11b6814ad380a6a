package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe represents a recipe record owned by a user
type Recipe struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	TimeMinutes int       `json:"time_minutes" db:"time_minutes"`
	Price       float64   `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	Link        string    `json:"link" db:"link"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
