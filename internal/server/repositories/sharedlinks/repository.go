// Package sharedlinks declares the repository contract for invite-link
// identities.
package sharedlinks

import (
	"context"

	"github.com/keyfold/keyfold/internal/server/models"
)

// Repository defines storage operations on shared links.
type Repository interface {
	// Create inserts a link and returns it with the generated id.
	Create(ctx context.Context, link *models.SharedLink) (*models.SharedLink, error)

	// GetByID returns the link or a not-found error.
	GetByID(ctx context.Context, id string) (*models.SharedLink, error)

	// GetByPublicKey returns the link holding the given public key, or a
	// not-found error. Public keys are unique across links.
	GetByPublicKey(ctx context.Context, linkPublicKey []byte) (*models.SharedLink, error)

	// Revoke stamps revoked_at, but only on a link that is still active.
	// It reports false when the link is unknown or already revoked, which
	// callers treat as a no-op rather than an error.
	Revoke(ctx context.Context, linkID string) (bool, error)
}
