package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/models"
)

// RecipeRepository provides access to stored recipes. Every query is scoped
// by owner id; a recipe owned by someone else is indistinguishable from a
// missing one.
type RecipeRepository interface {
	Insert(ctx context.Context, recipe *models.Recipe) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// PostgresRecipeRepository implements RecipeRepository over DBTX
type PostgresRecipeRepository struct {
	db DBTX
}

// NewPostgresRecipeRepository constructs a repository bound to the given DBTX
func NewPostgresRecipeRepository(db DBTX) *PostgresRecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

func (r *PostgresRecipeRepository) Insert(ctx context.Context, recipe *models.Recipe) error {
	query := `
		INSERT INTO recipes (id, user_id, title, time_minutes, price, description, link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		recipe.ID, recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price,
		recipe.Description, recipe.Link, recipe.CreatedAt, recipe.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRecipeRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	query := `
		SELECT id, user_id, title, time_minutes, price, description, link, created_at, updated_at
		FROM recipes
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	recipes := []models.Recipe{}
	for rows.Next() {
		var recipe models.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.UserID, &recipe.Title, &recipe.TimeMinutes,
			&recipe.Price, &recipe.Description, &recipe.Link,
			&recipe.CreatedAt, &recipe.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return recipes, nil
}

func (r *PostgresRecipeRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Recipe, error) {
	query := `
		SELECT id, user_id, title, time_minutes, price, description, link, created_at, updated_at
		FROM recipes
		WHERE id = $1 AND user_id = $2
	`
	recipe := &models.Recipe{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&recipe.ID, &recipe.UserID, &recipe.Title, &recipe.TimeMinutes,
		&recipe.Price, &recipe.Description, &recipe.Link,
		&recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return recipe, nil
}

func (r *PostgresRecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	query := `
		UPDATE recipes
		SET title = $3, time_minutes = $4, price = $5, description = $6, link = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		recipe.ID, recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price,
		recipe.Description, recipe.Link, recipe.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRecipeRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `
		DELETE FROM recipes
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
