package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/recipebox-backend/internal/models"
)

func newRecipeRepoWithMock(t *testing.T) (*PostgresRecipeRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRecipeRepository(db), mock, db
}

func TestRecipeInsert(t *testing.T) {
	repo, mock, db := newRecipeRepoWithMock(t)
	defer db.Close()

	recipe := &models.Recipe{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "T",
		TimeMinutes: 10,
		Price:       5.0,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	mock.ExpectExec(`INSERT INTO recipes`).
		WithArgs(recipe.ID, recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price,
			recipe.Description, recipe.Link, recipe.CreatedAt, recipe.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), recipe))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeFindByID_ScopedToOwner(t *testing.T) {
	repo, mock, db := newRecipeRepoWithMock(t)
	defer db.Close()

	ownerID := uuid.New()
	recipeID := uuid.New()

	// The owner filter lives in the query itself, so a foreign recipe id
	// produces no rows at all.
	mock.ExpectQuery(`SELECT (.+) FROM recipes\s+WHERE id = \$1 AND user_id = \$2`).
		WithArgs(recipeID, ownerID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), ownerID, recipeID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeFindByOwner(t *testing.T) {
	repo, mock, db := newRecipeRepoWithMock(t)
	defer db.Close()

	ownerID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "time_minutes", "price", "description", "link", "created_at", "updated_at"}).
		AddRow(uuid.New(), ownerID, "T1", 10, 5.0, "", "", now, now).
		AddRow(uuid.New(), ownerID, "T2", 20, 7.5, "d", "l", now, now)

	mock.ExpectQuery(`SELECT (.+) FROM recipes\s+WHERE user_id = \$1\s+ORDER BY id`).
		WithArgs(ownerID).
		WillReturnRows(rows)

	recipes, err := repo.FindByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "T1", recipes[0].Title)
	assert.Equal(t, 20, recipes[1].TimeMinutes)
}

func TestRecipeUpdate_NoRowsIsNotFound(t *testing.T) {
	repo, mock, db := newRecipeRepoWithMock(t)
	defer db.Close()

	recipe := &models.Recipe{ID: uuid.New(), UserID: uuid.New(), Title: "T", UpdatedAt: time.Now()}

	mock.ExpectExec(`UPDATE recipes`).
		WithArgs(recipe.ID, recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price,
			recipe.Description, recipe.Link, recipe.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), recipe)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeDelete(t *testing.T) {
	repo, mock, db := newRecipeRepoWithMock(t)
	defer db.Close()

	ownerID := uuid.New()
	recipeID := uuid.New()

	mock.ExpectExec(`DELETE FROM recipes`).
		WithArgs(recipeID, ownerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), ownerID, recipeID))

	// Second delete finds nothing
	mock.ExpectExec(`DELETE FROM recipes`).
		WithArgs(recipeID, ownerID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), ownerID, recipeID)
	assert.ErrorIs(t, err, ErrNotFound)
}
