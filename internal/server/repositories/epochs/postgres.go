package epochs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/dbx"
	"github.com/keyfold/keyfold/internal/server/models"
)

// PostgresRepository implements epoch storage over a dbx.DBTX (*sql.DB or
// *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, epoch *models.Epoch) (*models.Epoch, error) {
	query := `
		INSERT INTO epochs (conversation_id, epoch_number, epoch_public_key, confirmation_hash, chain_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		epoch.ConversationID, epoch.EpochNumber, epoch.EpochPublicKey, epoch.ConfirmationHash, epoch.ChainLink).
		Scan(&epoch.ID, &epoch.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return epoch, nil
}

func (r *PostgresRepository) GetByNumber(ctx context.Context, conversationID string, epochNumber int64) (*models.Epoch, error) {
	query := `
		SELECT id, conversation_id, epoch_number, epoch_public_key, confirmation_hash, chain_link, created_at
		FROM epochs
		WHERE conversation_id = $1 AND epoch_number = $2
	`

	epoch := &models.Epoch{}
	err := r.db.QueryRowContext(ctx, query, conversationID, epochNumber).
		Scan(&epoch.ID, &epoch.ConversationID, &epoch.EpochNumber,
			&epoch.EpochPublicKey, &epoch.ConfirmationHash, &epoch.ChainLink, &epoch.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return epoch, nil
}

func (r *PostgresRepository) ListChainLinks(ctx context.Context, conversationID string, floor int64) ([]models.EpochChainLink, error) {
	query := `
		SELECT epoch_number, chain_link FROM epochs
		WHERE conversation_id = $1 AND epoch_number > $2 AND chain_link IS NOT NULL
		ORDER BY epoch_number ASC
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID, floor)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.EpochChainLink
	for rows.Next() {
		var link models.EpochChainLink
		if err := rows.Scan(&link.EpochNumber, &link.ChainLink); err != nil {
			return nil, err
		}
		result = append(result, link)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) ListConfirmations(ctx context.Context, conversationID string, floor int64) ([]models.EpochConfirmation, error) {
	query := `
		SELECT epoch_number, confirmation_hash FROM epochs
		WHERE conversation_id = $1 AND epoch_number >= $2
		ORDER BY epoch_number ASC
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID, floor)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.EpochConfirmation
	for rows.Next() {
		var c models.EpochConfirmation
		if err := rows.Scan(&c.EpochNumber, &c.ConfirmationHash); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
