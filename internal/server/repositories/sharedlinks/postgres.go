package sharedlinks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/dbx"
	"github.com/keyfold/keyfold/internal/server/models"
)

// PostgresRepository implements shared-link storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, link *models.SharedLink) (*models.SharedLink, error) {
	query := `
		INSERT INTO shared_links (link_public_key, display_name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, link.LinkPublicKey, link.DisplayName).
		Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return link, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.SharedLink, error) {
	query := `
		SELECT id, link_public_key, display_name, created_at, revoked_at
		FROM shared_links
		WHERE id = $1
	`

	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) GetByPublicKey(ctx context.Context, linkPublicKey []byte) (*models.SharedLink, error) {
	query := `
		SELECT id, link_public_key, display_name, created_at, revoked_at
		FROM shared_links
		WHERE link_public_key = $1
	`

	return r.getOne(ctx, query, linkPublicKey)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.SharedLink, error) {
	link := &models.SharedLink{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&link.ID, &link.LinkPublicKey, &link.DisplayName, &link.CreatedAt, &link.RevokedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return link, nil
}

// Revoke flips revoked_at exactly once. The WHERE clause makes the flip
// atomic: a second caller matches no row and reports false.
func (r *PostgresRepository) Revoke(ctx context.Context, linkID string) (bool, error) {
	query := `
		UPDATE shared_links SET revoked_at = now()
		WHERE id = $1 AND revoked_at IS NULL
		RETURNING id
	`

	var id string
	err := r.db.QueryRowContext(ctx, query, linkID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}

	return true, nil
}
