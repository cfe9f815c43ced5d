package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/server/models"
	"github.com/keyfold/keyfold/internal/server/repositories/repomanager"
)

// KeyChainService assembles the material a member needs to recover every
// epoch key they are entitled to: their own wraps plus the chain links
// for walking history backward down to their visibility floor.
type KeyChainService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewKeyChainService constructs a KeyChainService.
func NewKeyChainService(db *sql.DB, m repomanager.RepositoryManager) *KeyChainService {
	return &KeyChainService{db: db, repomanager: m}
}

// KeyChain returns the wraps held by memberPublicKey in a conversation,
// the chain links above the member's floor, one confirmation hash per
// reachable epoch, and the current epoch number plus its row id. A key
// that holds no wraps is not a member: common.ErrorNotFound.
//
// The floor is the lowest visible_from_epoch across the member's own
// wraps. Wraps below the floor are filtered out, and chain links are
// returned only for epochs strictly above it, so the earliest key the
// member can derive is the floor epoch's own.
func (s *KeyChainService) KeyChain(ctx context.Context, conversationID string, memberPublicKey []byte) (*models.KeyChain, error) {
	wrapRepo := s.repomanager.EpochMembers(s.db)
	epochRepo := s.repomanager.Epochs(s.db)
	convRepo := s.repomanager.Conversations(s.db)

	wraps, err := wrapRepo.ListByMemberKey(ctx, conversationID, memberPublicKey)
	if err != nil {
		return nil, fmt.Errorf("error listing wraps: %w", err)
	}
	if len(wraps) == 0 {
		return nil, common.ErrorNotFound
	}

	floor := wraps[0].VisibleFromEpoch
	for _, w := range wraps[1:] {
		if w.VisibleFromEpoch < floor {
			floor = w.VisibleFromEpoch
		}
	}

	filtered := make([]models.EpochWrap, 0, len(wraps))
	for _, w := range wraps {
		if w.EpochNumber >= floor {
			filtered = append(filtered, w)
		}
	}

	links, err := epochRepo.ListChainLinks(ctx, conversationID, floor)
	if err != nil {
		return nil, fmt.Errorf("error listing chain links: %w", err)
	}

	confirmations, err := epochRepo.ListConfirmations(ctx, conversationID, floor)
	if err != nil {
		return nil, fmt.Errorf("error listing confirmations: %w", err)
	}

	currentEpoch, err := convRepo.GetCurrentEpoch(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("error reading current epoch: %w", err)
	}

	current, err := epochRepo.GetByNumber(ctx, conversationID, currentEpoch)
	if err != nil {
		return nil, fmt.Errorf("error reading current epoch row: %w", err)
	}

	return &models.KeyChain{
		Wraps:          filtered,
		ChainLinks:     links,
		Confirmations:  confirmations,
		CurrentEpoch:   currentEpoch,
		CurrentEpochID: current.ID,
	}, nil
}
