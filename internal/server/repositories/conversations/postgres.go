package conversations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/dbx"
	"github.com/keyfold/keyfold/internal/server/models"
)

// PostgresRepository implements conversation storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, conv *models.Conversation) (*models.Conversation, error) {
	query := `
		INSERT INTO conversations (title)
		VALUES ($1)
		RETURNING id, current_epoch, title_epoch_number, created_at
	`

	err := r.db.QueryRowContext(ctx, query, conv.Title).
		Scan(&conv.ID, &conv.CurrentEpoch, &conv.TitleEpochNumber, &conv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return conv, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	query := `
		SELECT id, current_epoch, title, title_epoch_number, created_at
		FROM conversations
		WHERE id = $1
	`

	conv := &models.Conversation{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&conv.ID, &conv.CurrentEpoch, &conv.Title, &conv.TitleEpochNumber, &conv.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return conv, nil
}

func (r *PostgresRepository) GetCurrentEpoch(ctx context.Context, conversationID string) (int64, error) {
	query := `
		SELECT current_epoch FROM conversations
		WHERE id = $1
	`

	var epoch int64
	err := r.db.QueryRowContext(ctx, query, conversationID).Scan(&epoch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return epoch, nil
}

// AdvanceEpoch is the rotation guard: the UPDATE matches a row only while
// current_epoch still equals expectedEpoch, so of two concurrent callers
// exactly one observes an affected row.
func (r *PostgresRepository) AdvanceEpoch(ctx context.Context, conversationID string, expectedEpoch int64) (bool, error) {
	query := `
		UPDATE conversations SET current_epoch = current_epoch + 1
		WHERE id = $1 AND current_epoch = $2
	`

	res, err := r.db.ExecContext(ctx, query, conversationID, expectedEpoch)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *PostgresRepository) UpdateTitle(ctx context.Context, conversationID string, title []byte, titleEpochNumber int64) error {
	query := `
		UPDATE conversations SET title = $1, title_epoch_number = $2
		WHERE id = $3
	`

	res, err := r.db.ExecContext(ctx, query, title, titleEpochNumber, conversationID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
