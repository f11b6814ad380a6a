package repository

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/models"
)

// InMemoryManager implements Manager with mutex-protected maps. Used by tests
// and for running the server without a database.
type InMemoryManager struct {
	users         *InMemoryUserRepository
	recipes       *InMemoryRecipeRepository
	refreshTokens *InMemoryRefreshTokenRepository
}

// NewInMemoryManager creates an empty in-memory store
func NewInMemoryManager() *InMemoryManager {
	return &InMemoryManager{
		users:         &InMemoryUserRepository{users: map[uuid.UUID]models.User{}},
		recipes:       &InMemoryRecipeRepository{recipes: map[uuid.UUID]models.Recipe{}},
		refreshTokens: &InMemoryRefreshTokenRepository{tokens: map[string]models.RefreshToken{}},
	}
}

func (m *InMemoryManager) Users() UserRepository {
	return m.users
}

func (m *InMemoryManager) Recipes() RecipeRepository {
	return m.recipes
}

func (m *InMemoryManager) RefreshTokens() RefreshTokenRepository {
	return m.refreshTokens
}

func (m *InMemoryManager) Ping(ctx context.Context) error {
	return nil
}

func (m *InMemoryManager) Close() error {
	return nil
}

// InMemoryUserRepository implements UserRepository in memory
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *InMemoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *InMemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryUserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return bytes.Compare(users[i].ID[:], users[j].ID[:]) < 0
	})
	return users, nil
}

func (r *InMemoryUserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

// InMemoryRecipeRepository implements RecipeRepository in memory
type InMemoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]models.Recipe
}

func (r *InMemoryRecipeRepository) Insert(ctx context.Context, recipe *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recipes[recipe.ID] = *recipe
	return nil
}

func (r *InMemoryRecipeRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recipes := []models.Recipe{}
	for _, recipe := range r.recipes {
		if recipe.UserID == ownerID {
			recipes = append(recipes, recipe)
		}
	}
	sort.Slice(recipes, func(i, j int) bool {
		return bytes.Compare(recipes[i].ID[:], recipes[j].ID[:]) < 0
	})
	return recipes, nil
}

func (r *InMemoryRecipeRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recipe, ok := r.recipes[id]
	if !ok || recipe.UserID != ownerID {
		return nil, ErrNotFound
	}
	return &recipe, nil
}

func (r *InMemoryRecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.recipes[recipe.ID]
	if !ok || current.UserID != recipe.UserID {
		return ErrNotFound
	}
	r.recipes[recipe.ID] = *recipe
	return nil
}

func (r *InMemoryRecipeRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	recipe, ok := r.recipes[id]
	if !ok || recipe.UserID != ownerID {
		return ErrNotFound
	}
	delete(r.recipes, id)
	return nil
}

// InMemoryRefreshTokenRepository implements RefreshTokenRepository in memory
type InMemoryRefreshTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]models.RefreshToken
}

func (r *InMemoryRefreshTokenRepository) Create(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = models.RefreshToken{Token: token, UserID: userID, ExpiresAt: expiresAt}
	return nil
}

func (r *InMemoryRefreshTokenRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.tokens[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &rt, nil
}

func (r *InMemoryRefreshTokenRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[token]; !ok {
		return ErrNotFound
	}
	delete(r.tokens, token)
	return nil
}
