package epochmembers

import (
	"context"
	"fmt"

	"github.com/keyfold/keyfold/internal/dbx"
	"github.com/keyfold/keyfold/internal/server/models"
)

// PostgresRepository implements wrap storage over a dbx.DBTX (*sql.DB or
// *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, wrap *models.EpochMember) error {
	query := `
		INSERT INTO epoch_members (epoch_id, member_public_key, wrapped_key, visible_from_epoch)
		VALUES ($1, $2, $3, $4)
	`

	res, err := r.db.ExecContext(ctx, query,
		wrap.EpochID, wrap.MemberPublicKey, wrap.WrappedKey, wrap.VisibleFromEpoch)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, wrap *models.EpochMember) error {
	query := `
		INSERT INTO epoch_members (epoch_id, member_public_key, wrapped_key, visible_from_epoch)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (epoch_id, member_public_key) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query,
		wrap.EpochID, wrap.MemberPublicKey, wrap.WrappedKey, wrap.VisibleFromEpoch); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByMemberKey(ctx context.Context, conversationID string, memberPublicKey []byte) ([]models.EpochWrap, error) {
	query := `
		SELECT e.epoch_number, em.wrapped_key, em.visible_from_epoch
		FROM epoch_members em
		JOIN epochs e ON e.id = em.epoch_id
		WHERE e.conversation_id = $1 AND em.member_public_key = $2
		ORDER BY e.epoch_number ASC
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID, memberPublicKey)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.EpochWrap
	for rows.Next() {
		var wrap models.EpochWrap
		if err := rows.Scan(&wrap.EpochNumber, &wrap.WrappedKey, &wrap.VisibleFromEpoch); err != nil {
			return nil, err
		}
		result = append(result, wrap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) DeleteByEpochNumber(ctx context.Context, conversationID string, epochNumber int64) (int64, error) {
	query := `
		DELETE FROM epoch_members
		WHERE epoch_id IN (
			SELECT id FROM epochs WHERE conversation_id = $1 AND epoch_number = $2
		)
	`

	res, err := r.db.ExecContext(ctx, query, conversationID, epochNumber)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
