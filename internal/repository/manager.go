package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/recipebox/recipebox-backend/internal/migrations"
)

// Manager bundles the repositories sharing one database handle
type Manager interface {
	Users() UserRepository
	Recipes() RecipeRepository
	RefreshTokens() RefreshTokenRepository
	Ping(ctx context.Context) error
	Close() error
}

// PostgresManager implements Manager over a database/sql connection using the
// pgx stdlib driver
type PostgresManager struct {
	db            *sql.DB
	users         UserRepository
	recipes       RecipeRepository
	refreshTokens RefreshTokenRepository
}

// NewPostgresManager opens the database, applies pending migrations and wires
// the repositories
func NewPostgresManager(ctx context.Context, dsn string, maxConns int32) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(int(maxConns))

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &PostgresManager{
		db:            db,
		users:         NewPostgresUserRepository(db),
		recipes:       NewPostgresRecipeRepository(db),
		refreshTokens: NewPostgresRefreshTokenRepository(db),
	}, nil
}

func (m *PostgresManager) Users() UserRepository {
	return m.users
}

func (m *PostgresManager) Recipes() RecipeRepository {
	return m.recipes
}

func (m *PostgresManager) RefreshTokens() RefreshTokenRepository {
	return m.refreshTokens
}

func (m *PostgresManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}
