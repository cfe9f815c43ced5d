// Package services contains server-side business logic: membership
// resolution, key-chain assembly, epoch rotation, and the shared-link
// lifecycle. This file implements RotationService, which advances a
// conversation to a new key epoch under optimistic concurrency.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keyfold/keyfold/internal/dbx"
	"github.com/keyfold/keyfold/internal/server/models"
	"github.com/keyfold/keyfold/internal/server/repositories/repomanager"
)

// MemberWrap is one member's copy of the new epoch private key, wrapped
// client-side under that member's public key.
type MemberWrap struct {
	MemberPublicKey []byte
	WrappedKey      []byte
}

// RotationParams carries everything a client precomputes for a rotation:
// the new epoch's key material, a link back to the previous epoch, one
// wrap per active member, and the title re-encrypted under the new key.
type RotationParams struct {
	ConversationID      string
	ExpectedEpoch       int64
	NewEpochPublicKey   []byte
	NewConfirmationHash []byte
	NewChainLink        []byte
	MemberWraps         []MemberWrap
	NewEncryptedTitle   []byte
}

// RotationResult identifies the epoch a successful rotation created.
type RotationResult struct {
	NewEpochNumber int64
	NewEpochID     string
}

// RotationService advances conversations from epoch N to N+1. Concurrent
// attempts are serialized by a conditional update on the conversation's
// epoch counter: exactly one caller wins, the rest fail fast with
// StaleEpochError and retry against fresh state.
type RotationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewRotationService constructs a RotationService.
func NewRotationService(db *sql.DB, m repomanager.RepositoryManager) *RotationService {
	return &RotationService{db: db, repomanager: m}
}

// Rotate performs one epoch advance inside the caller's transaction.
// Callers that need no surrounding work should use RotateConversation;
// link revocation passes its own tx so the rotation and the membership
// close land atomically together.
//
// The sequence: win the epoch counter, insert the new epoch row, validate
// the supplied wrap set against active membership, insert the new wraps
// stamped with authoritative visibility, purge the superseded epoch's
// wraps, and re-seal the title.
func (s *RotationService) Rotate(ctx context.Context, tx dbx.DBTX, p RotationParams) (*RotationResult, error) {
	convRepo := s.repomanager.Conversations(tx)
	epochRepo := s.repomanager.Epochs(tx)
	wrapRepo := s.repomanager.EpochMembers(tx)
	memberRepo := s.repomanager.Members(tx)

	won, err := convRepo.AdvanceEpoch(ctx, p.ConversationID, p.ExpectedEpoch)
	if err != nil {
		return nil, err
	}
	if !won {
		actual, err := convRepo.GetCurrentEpoch(ctx, p.ConversationID)
		if err != nil {
			return nil, err
		}
		return nil, &StaleEpochError{CurrentEpoch: actual}
	}

	newNumber := p.ExpectedEpoch + 1
	epoch, err := epochRepo.Create(ctx, &models.Epoch{
		ConversationID:   p.ConversationID,
		EpochNumber:      newNumber,
		EpochPublicKey:   p.NewEpochPublicKey,
		ConfirmationHash: p.NewConfirmationHash,
		ChainLink:        p.NewChainLink,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert new epoch: %w", err)
	}

	active, err := memberRepo.ListActive(ctx, p.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active members: %w", err)
	}

	// visibility is recomputed from the membership table here; the
	// client's claimed floors are never trusted
	visibility := make(map[string]int64, len(active))
	for _, m := range active {
		visibility[string(m.MemberPublicKey)] = m.VisibleFromEpoch
	}

	remaining := make(map[string]struct{}, len(visibility))
	for k := range visibility {
		remaining[k] = struct{}{}
	}
	for _, w := range p.MemberWraps {
		k := string(w.MemberPublicKey)
		if _, ok := remaining[k]; !ok {
			// unknown key, or the same key supplied twice
			return nil, &WrapSetMismatchError{Expected: len(visibility), Provided: len(p.MemberWraps)}
		}
		delete(remaining, k)
	}
	if len(remaining) > 0 {
		return nil, &WrapSetMismatchError{Expected: len(visibility), Provided: len(p.MemberWraps)}
	}

	for _, w := range p.MemberWraps {
		wrap := &models.EpochMember{
			EpochID:          epoch.ID,
			MemberPublicKey:  w.MemberPublicKey,
			WrappedKey:       w.WrappedKey,
			VisibleFromEpoch: visibility[string(w.MemberPublicKey)],
		}
		if err := wrapRepo.Create(ctx, wrap); err != nil {
			return nil, fmt.Errorf("failed to insert wrap: %w", err)
		}
	}

	// the forward-secrecy cutover: once these rows are gone, the old
	// epoch key is reachable only through the new epoch's chain link
	if _, err := wrapRepo.DeleteByEpochNumber(ctx, p.ConversationID, p.ExpectedEpoch); err != nil {
		return nil, fmt.Errorf("failed to purge superseded wraps: %w", err)
	}

	if err := convRepo.UpdateTitle(ctx, p.ConversationID, p.NewEncryptedTitle, newNumber); err != nil {
		return nil, fmt.Errorf("failed to update title: %w", err)
	}

	return &RotationResult{NewEpochNumber: newNumber, NewEpochID: epoch.ID}, nil
}

// RotateConversation runs Rotate in its own transaction.
func (s *RotationService) RotateConversation(ctx context.Context, p RotationParams) (*RotationResult, error) {
	var result *RotationResult
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var rErr error
		result, rErr = s.Rotate(ctx, tx, p)
		return rErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
