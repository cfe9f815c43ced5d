// Package epochs declares the repository contract for epoch rows: one key
// generation per row, immutable once written.
package epochs

import (
	"context"

	"github.com/keyfold/keyfold/internal/server/models"
)

// Repository defines storage operations on epochs.
type Repository interface {
	// Create inserts a new epoch row and returns it with the generated id.
	Create(ctx context.Context, epoch *models.Epoch) (*models.Epoch, error)

	// GetByNumber returns the epoch with the given number in a
	// conversation, or a not-found error.
	GetByNumber(ctx context.Context, conversationID string, epochNumber int64) (*models.Epoch, error)

	// ListChainLinks returns every recorded chain link for epochs strictly
	// above floor, ascending by epoch number. A link on epoch N derives
	// the key of epoch N-1, so the floor epoch's own link is excluded:
	// handing it out would let a member reach one epoch below their floor.
	ListChainLinks(ctx context.Context, conversationID string, floor int64) ([]models.EpochChainLink, error)

	// ListConfirmations returns the confirmation hash of every epoch at or
	// above floor, ascending by epoch number.
	ListConfirmations(ctx context.Context, conversationID string, floor int64) ([]models.EpochConfirmation, error)
}
