package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/dbx"
	"github.com/keyfold/keyfold/internal/server/models"
)

// PostgresRepository implements membership storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, member *models.ConversationMember) (*models.ConversationMember, error) {
	query := `
		INSERT INTO conversation_members (conversation_id, user_id, link_id, member_public_key, privilege, visible_from_epoch)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, joined_at
	`

	err := r.db.QueryRowContext(ctx, query,
		member.ConversationID, member.UserID, member.LinkID,
		member.MemberPublicKey, member.Privilege, member.VisibleFromEpoch).
		Scan(&member.ID, &member.JoinedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return member, nil
}

func (r *PostgresRepository) ListActive(ctx context.Context, conversationID string) ([]*models.ConversationMember, error) {
	query := `
		SELECT id, conversation_id, user_id, link_id, member_public_key, privilege, visible_from_epoch, joined_at, left_at
		FROM conversation_members
		WHERE conversation_id = $1 AND left_at IS NULL
		ORDER BY joined_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ConversationMember
	for rows.Next() {
		var m models.ConversationMember
		if err := rows.Scan(
			&m.ID, &m.ConversationID, &m.UserID, &m.LinkID,
			&m.MemberPublicKey, &m.Privilege, &m.VisibleFromEpoch, &m.JoinedAt, &m.LeftAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) FindActiveByUser(ctx context.Context, conversationID, userID string) (*models.ConversationMember, error) {
	query := `
		SELECT id, conversation_id, user_id, link_id, member_public_key, privilege, visible_from_epoch, joined_at, left_at
		FROM conversation_members
		WHERE conversation_id = $1 AND user_id = $2 AND left_at IS NULL
	`

	return r.findOne(ctx, query, conversationID, userID)
}

func (r *PostgresRepository) FindActiveByLink(ctx context.Context, conversationID, linkID string) (*models.ConversationMember, error) {
	query := `
		SELECT id, conversation_id, user_id, link_id, member_public_key, privilege, visible_from_epoch, joined_at, left_at
		FROM conversation_members
		WHERE conversation_id = $1 AND link_id = $2 AND left_at IS NULL
	`

	return r.findOne(ctx, query, conversationID, linkID)
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, args ...any) (*models.ConversationMember, error) {
	m := &models.ConversationMember{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&m.ID, &m.ConversationID, &m.UserID, &m.LinkID,
		&m.MemberPublicKey, &m.Privilege, &m.VisibleFromEpoch, &m.JoinedAt, &m.LeftAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Close(ctx context.Context, memberID string) error {
	query := `
		UPDATE conversation_members SET left_at = now()
		WHERE id = $1 AND left_at IS NULL
	`

	return r.execOne(ctx, query, memberID)
}

func (r *PostgresRepository) UpdatePrivilege(ctx context.Context, memberID, privilege string) error {
	query := `
		UPDATE conversation_members SET privilege = $1
		WHERE id = $2 AND left_at IS NULL
	`

	return r.execOne(ctx, query, privilege, memberID)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
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
