// Package members declares the repository contract for conversation
// membership records. Rows are soft-closed, never deleted, so the join
// history of a conversation stays auditable.
package members

import (
	"context"

	"github.com/keyfold/keyfold/internal/server/models"
)

// Repository defines storage operations on conversation members.
// Everywhere activity matters, left_at IS NULL is the predicate.
type Repository interface {
	// Create inserts a membership row and returns it with generated id
	// and join timestamp.
	Create(ctx context.Context, member *models.ConversationMember) (*models.ConversationMember, error)

	// ListActive returns the open membership rows of a conversation,
	// ordered by join time.
	ListActive(ctx context.Context, conversationID string) ([]*models.ConversationMember, error)

	// FindActiveByUser returns the open membership row for a user, or a
	// not-found error.
	FindActiveByUser(ctx context.Context, conversationID, userID string) (*models.ConversationMember, error)

	// FindActiveByLink returns the open membership row backed by a shared
	// link, or a not-found error.
	FindActiveByLink(ctx context.Context, conversationID, linkID string) (*models.ConversationMember, error)

	// Close stamps left_at on an open membership row. Closing a row that
	// is already closed or absent returns a not-found error.
	Close(ctx context.Context, memberID string) error

	// UpdatePrivilege changes the privilege of an open membership row.
	UpdatePrivilege(ctx context.Context, memberID, privilege string) error
}
