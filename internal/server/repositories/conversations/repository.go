// Package conversations declares the repository contract for conversation
// rows, including the epoch counter that serializes rotations.
package conversations

import (
	"context"

	"github.com/keyfold/keyfold/internal/server/models"
)

// Repository defines storage operations on conversations.
type Repository interface {
	// Create inserts a conversation with its initial encrypted title.
	// The epoch counter starts at 1.
	Create(ctx context.Context, conv *models.Conversation) (*models.Conversation, error)

	// GetByID returns the conversation or a not-found error.
	GetByID(ctx context.Context, id string) (*models.Conversation, error)

	// GetCurrentEpoch returns only the conversation's epoch counter.
	GetCurrentEpoch(ctx context.Context, conversationID string) (int64, error)

	// AdvanceEpoch conditionally bumps current_epoch from expectedEpoch to
	// expectedEpoch+1. It reports false when the stored value no longer
	// equals expectedEpoch, meaning a concurrent rotation already won.
	AdvanceEpoch(ctx context.Context, conversationID string, expectedEpoch int64) (bool, error)

	// UpdateTitle replaces the encrypted title and the epoch marker
	// recording which epoch key sealed it.
	UpdateTitle(ctx context.Context, conversationID string, title []byte, titleEpochNumber int64) error
}
