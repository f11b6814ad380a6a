package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/dto"
	"github.com/recipebox/recipebox-backend/internal/models"
	"github.com/recipebox/recipebox-backend/internal/repository"
)

// RecipeService gates every recipe operation on the acting identity. Lookups
// are owner-scoped at the query level, so a recipe owned by someone else
// yields the same ErrNotFound as a missing one.
type RecipeService struct {
	recipes repository.RecipeRepository
}

// NewRecipeService wires the service to its repository
func NewRecipeService(recipes repository.RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

func validateRecipeFields(title string, timeMinutes int, price float64) error {
	if strings.TrimSpace(title) == "" {
		return &RuleError{Detail: "title must not be empty"}
	}
	if timeMinutes < 0 {
		return &RuleError{Detail: "time_minutes must not be negative"}
	}
	if price < 0 {
		return &RuleError{Detail: "price must not be negative"}
	}
	return nil
}

// List returns the identity's recipes, id ascending
func (s *RecipeService) List(ctx context.Context, identity *models.User) ([]models.Recipe, error) {
	return s.recipes.FindByOwner(ctx, identity.ID)
}

// Create validates the payload and persists a new recipe owned by identity
func (s *RecipeService) Create(ctx context.Context, identity *models.User, req dto.CreateRecipeRequest) (*models.Recipe, error) {
	if err := validateRecipeFields(req.Title, req.TimeMinutes, req.Price); err != nil {
		return nil, err
	}

	now := time.Now()
	recipe := &models.Recipe{
		ID:          uuid.New(),
		UserID:      identity.ID,
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Description: req.Description,
		Link:        req.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.recipes.Insert(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Get returns one of the identity's recipes by id
func (s *RecipeService) Get(ctx context.Context, identity *models.User, id uuid.UUID) (*models.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, identity.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// Update applies only the provided fields; absent fields keep their stored
// value. A rejected update leaves the record untouched.
func (s *RecipeService) Update(ctx context.Context, identity *models.User, id uuid.UUID, req dto.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Link != nil {
		recipe.Link = *req.Link
	}

	// Validate the merged record before anything is written
	if err := validateRecipeFields(recipe.Title, recipe.TimeMinutes, recipe.Price); err != nil {
		return nil, err
	}

	recipe.UpdatedAt = time.Now()
	if err := s.recipes.Update(ctx, recipe); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// Delete removes one of the identity's recipes. Deleting an id that no longer
// exists, or never belonged to the identity, reports ErrNotFound.
func (s *RecipeService) Delete(ctx context.Context, identity *models.User, id uuid.UUID) error {
	err := s.recipes.Delete(ctx, identity.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
