package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/recipebox-backend/internal/dto"
	"github.com/recipebox/recipebox-backend/internal/models"
	"github.com/recipebox/recipebox-backend/internal/repository"
)

func newRecipeService() *RecipeService {
	store := repository.NewInMemoryManager()
	return NewRecipeService(store.Recipes())
}

func testUser() *models.User {
	now := time.Now()
	return &models.User{ID: uuid.New(), Email: "a@x.com", Name: "A", CreatedAt: now, UpdatedAt: now}
}

func strPtr(s string) *string    { return &s }
func intPtr(i int) *int          { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestRecipeCreateAndGet_RoundTrip(t *testing.T) {
	svc := newRecipeService()
	ctx := context.Background()
	owner := testUser()

	created, err := svc.Create(ctx, owner, dto.CreateRecipeRequest{
		Title:       "T",
		TimeMinutes: 10,
		Price:       5.0,
		Description: "d",
		Link:        "l",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.TimeMinutes, got.TimeMinutes)
	assert.Equal(t, created.Price, got.Price)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.Link, got.Link)
}

func TestRecipeCreate_Invalid(t *testing.T) {
	svc := newRecipeService()
	ctx := context.Background()
	owner := testUser()

	cases := []dto.CreateRecipeRequest{
		{Title: "", TimeMinutes: 10, Price: 5},
		{Title: "T", TimeMinutes: -1, Price: 5},
		{Title: "T", TimeMinutes: 10, Price: -0.5},
	}
	for _, req := range cases {
		var rerr *RuleError
		_, err := svc.Create(ctx, owner, req)
		assert.ErrorAs(t, err, &rerr, "payload %+v", req)
	}

	recipes, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestRecipeOwnerScoping(t *testing.T) {
	svc := newRecipeService()
	ctx := context.Background()
	alice := testUser()
	bob := testUser()

	recipe, err := svc.Create(ctx, alice, dto.CreateRecipeRequest{Title: "T", TimeMinutes: 10, Price: 5})
	require.NoError(t, err)

	// Bob cannot see, mutate or delete Alice's recipe; the failure mode is
	// always not-found, never forbidden.
	_, err = svc.Get(ctx, bob, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, bob, recipe.ID, dto.UpdateRecipeRequest{Title: strPtr("hijacked")})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, bob, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// And it never shows up in Bob's list
	recipes, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, recipes)

	// Alice still sees the original, untouched
	got, err := svc.Get(ctx, alice, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
}

func TestRecipeUpdate_Partial(t *testing.T) {
	svc := newRecipeService()
	ctx := context.Background()
	owner := testUser()

	recipe, err := svc.Create(ctx, owner, dto.CreateRecipeRequest{Title: "T", TimeMinutes: 10, Price: 5.0})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, recipe.ID, dto.UpdateRecipeRequest{Title: strPtr("T2")})
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, 10, updated.TimeMinutes)
	assert.Equal(t, 5.0, updated.Price)

	updated, err = svc.Update(ctx, owner, recipe.ID, dto.UpdateRecipeRequest{
		TimeMinutes: intPtr(20),
		Price:       floatPtr(7.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, 20, updated.TimeMinutes)
	assert.Equal(t, 7.5, updated.Price)
}

func TestRecipeUpdate_RejectedLeavesRecordUntouched(t *testing.T) {
	svc := newRecipeService()
	ctx := context.Background()
	owner := testUser()

	recipe, err := svc.Create(ctx, owner, dto.CreateRecipeRequest{Title: "T", TimeMinutes: 10, Price: 5.0})
	require.NoError(t, err)

	var rerr *RuleError
	_, err = svc.Update(ctx, owner, recipe.ID, dto.UpdateRecipeRequest{
		Title:       strPtr("T2"),
		TimeMinutes: intPtr(-1),
	})
	require.ErrorAs(t, err, &rerr)

	// Neither field changed
	got, err := svc.Get(ctx, owner, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, 10, got.TimeMinutes)
}

func TestRecipeDelete_RepeatedIsNotFound(t *testing.T) {
	svc := newRecipeService()
	ctx := context.Background()
	owner := testUser()

	recipe, err := svc.Create(ctx, owner, dto.CreateRecipeRequest{Title: "T", TimeMinutes: 10, Price: 5.0})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, recipe.ID))

	_, err = svc.Get(ctx, owner, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, owner, recipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeList_OnlyOwn(t *testing.T) {
	svc := newRecipeService()
	ctx := context.Background()
	alice := testUser()
	bob := testUser()

	_, err := svc.Create(ctx, alice, dto.CreateRecipeRequest{Title: "A1", TimeMinutes: 1, Price: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, dto.CreateRecipeRequest{Title: "A2", TimeMinutes: 2, Price: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, dto.CreateRecipeRequest{Title: "B1", TimeMinutes: 3, Price: 3})
	require.NoError(t, err)

	recipes, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
	for _, r := range recipes {
		assert.Equal(t, alice.ID, r.UserID)
	}
}
