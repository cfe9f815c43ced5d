// Package epochmembers declares the repository contract for wraps: each
// row is one member's encrypted copy of one epoch's private key.
package epochmembers

import (
	"context"

	"github.com/keyfold/keyfold/internal/server/models"
)

// Repository defines storage operations on wraps.
type Repository interface {
	// Create inserts a wrap. A duplicate (epoch, member key) pair is an
	// error; rotation never writes the same wrap twice.
	Create(ctx context.Context, wrap *models.EpochMember) error

	// CreateIfAbsent inserts a wrap unless one already exists for the
	// same epoch and member key, in which case the existing wrap is kept.
	CreateIfAbsent(ctx context.Context, wrap *models.EpochMember) error

	// ListByMemberKey returns every wrap a public key holds across all
	// epochs of a conversation, ascending by epoch number.
	ListByMemberKey(ctx context.Context, conversationID string, memberPublicKey []byte) ([]models.EpochWrap, error)

	// DeleteByEpochNumber purges all wraps of the given epoch and returns
	// how many were removed. Run after a rotation against the superseded
	// epoch; once the wraps are gone that epoch's key is only reachable
	// through chain links.
	DeleteByEpochNumber(ctx context.Context, conversationID string, epochNumber int64) (int64, error)
}
