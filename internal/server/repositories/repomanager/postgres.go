// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/keyfold/keyfold/internal/dbx"
	"github.com/keyfold/keyfold/internal/server/migrations"
	"github.com/keyfold/keyfold/internal/server/repositories/conversations"
	"github.com/keyfold/keyfold/internal/server/repositories/epochmembers"
	"github.com/keyfold/keyfold/internal/server/repositories/epochs"
	"github.com/keyfold/keyfold/internal/server/repositories/members"
	"github.com/keyfold/keyfold/internal/server/repositories/sharedlinks"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Conversations returns a conversations.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Conversations(db dbx.DBTX) conversations.Repository {
	return conversations.NewPostgresRepository(db)
}

// Epochs returns an epochs.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Epochs(db dbx.DBTX) epochs.Repository {
	return epochs.NewPostgresRepository(db)
}

// EpochMembers returns an epochmembers.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) EpochMembers(db dbx.DBTX) epochmembers.Repository {
	return epochmembers.NewPostgresRepository(db)
}

// Members returns a members.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Members(db dbx.DBTX) members.Repository {
	return members.NewPostgresRepository(db)
}

// SharedLinks returns a sharedlinks.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) SharedLinks(db dbx.DBTX) sharedlinks.Repository {
	return sharedlinks.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &PostgresRepositoryManager{}, nil
}
