package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/dbx"
	"github.com/keyfold/keyfold/internal/server/models"
	"github.com/keyfold/keyfold/internal/server/repositories/repomanager"
)

// AddMemberParams describes a user to add to a conversation.
// CurrentEpochID must name the conversation's current epoch row; a stale
// value fails the same way a stale rotation does. WrappedKey is the
// current epoch private key wrapped for the new member's public key.
type AddMemberParams struct {
	ConversationID   string
	UserID           string
	MemberPublicKey  []byte
	Privilege        string
	VisibleFromEpoch int64
	CurrentEpochID   string
	WrappedKey       []byte
}

// AddMemberResult reports the membership id. Created is false when the
// user already held an open membership row, which is returned untouched.
type AddMemberResult struct {
	MemberID string
	Created  bool
}

// RemoveMemberParams describes a membership removal. Rotation carries
// the epoch advance that cuts the removed member's access; its wrap set
// must cover exactly the members that remain.
type RemoveMemberParams struct {
	ConversationID string
	MemberID       string
	Rotation       *RotationParams
}

// RemoveMemberResult reports the outcome. Removed is false when the
// member is not an open member of the conversation.
type RemoveMemberResult struct {
	Removed  bool
	Rotation *RotationResult
}

// MembershipService answers membership questions and manages user
// membership. Link membership changes go through LinkService.
type MembershipService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	rotation    *RotationService
}

// NewMembershipService constructs a MembershipService.
func NewMembershipService(db *sql.DB, m repomanager.RepositoryManager, rotation *RotationService) *MembershipService {
	return &MembershipService{db: db, repomanager: m, rotation: rotation}
}

// ActiveMembers returns the open membership of a conversation as key
// material entries, ordered by join time.
func (s *MembershipService) ActiveMembers(ctx context.Context, conversationID string) ([]models.MemberKey, error) {
	members, err := s.repomanager.Members(s.db).ListActive(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("error listing members: %w", err)
	}

	keys := make([]models.MemberKey, 0, len(members))
	for _, m := range members {
		keys = append(keys, models.MemberKey{
			MemberID:         m.ID,
			Kind:             m.Kind(),
			PublicKey:        m.MemberPublicKey,
			Privilege:        m.Privilege,
			VisibleFromEpoch: m.VisibleFromEpoch,
		})
	}
	return keys, nil
}

// VerifyMembership returns the user's open membership row in a
// conversation, or a not-found error. Handlers call it to authorize
// mutating requests.
func (s *MembershipService) VerifyMembership(ctx context.Context, conversationID, userID string) (*models.ConversationMember, error) {
	return s.repomanager.Members(s.db).FindActiveByUser(ctx, conversationID, userID)
}

// AddMember adds a user to a conversation and installs their wrap for
// the current epoch. Adding is idempotent per user: if the user already
// holds an open membership row, its id is returned untouched.
func (s *MembershipService) AddMember(ctx context.Context, p AddMemberParams) (*AddMemberResult, error) {
	var result *AddMemberResult

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		convRepo := s.repomanager.Conversations(tx)
		epochRepo := s.repomanager.Epochs(tx)
		memberRepo := s.repomanager.Members(tx)
		wrapRepo := s.repomanager.EpochMembers(tx)

		currentEpoch, err := convRepo.GetCurrentEpoch(ctx, p.ConversationID)
		if err != nil {
			return err
		}
		epoch, err := epochRepo.GetByNumber(ctx, p.ConversationID, currentEpoch)
		if err != nil {
			return fmt.Errorf("failed to load current epoch: %w", err)
		}
		if epoch.ID != p.CurrentEpochID {
			return &StaleEpochError{CurrentEpoch: currentEpoch}
		}

		existing, err := memberRepo.FindActiveByUser(ctx, p.ConversationID, p.UserID)
		if err == nil {
			result = &AddMemberResult{MemberID: existing.ID}
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		member, err := memberRepo.Create(ctx, &models.ConversationMember{
			ConversationID:   p.ConversationID,
			UserID:           &p.UserID,
			MemberPublicKey:  p.MemberPublicKey,
			Privilege:        p.Privilege,
			VisibleFromEpoch: p.VisibleFromEpoch,
		})
		if err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}

		wrap := &models.EpochMember{
			EpochID:          epoch.ID,
			MemberPublicKey:  p.MemberPublicKey,
			WrappedKey:       p.WrappedKey,
			VisibleFromEpoch: p.VisibleFromEpoch,
		}
		if err := wrapRepo.CreateIfAbsent(ctx, wrap); err != nil {
			return fmt.Errorf("failed to install wrap: %w", err)
		}

		result = &AddMemberResult{MemberID: member.ID, Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveMember closes a membership row and rotates the conversation in
// the same transaction. Rotation runs after the close, so the supplied
// wrap set is validated against the membership that remains.
func (s *MembershipService) RemoveMember(ctx context.Context, p RemoveMemberParams) (*RemoveMemberResult, error) {
	var result *RemoveMemberResult

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		memberRepo := s.repomanager.Members(tx)

		members, err := memberRepo.ListActive(ctx, p.ConversationID)
		if err != nil {
			return fmt.Errorf("error listing members: %w", err)
		}
		var target *models.ConversationMember
		for _, m := range members {
			if m.ID == p.MemberID {
				target = m
				break
			}
		}
		if target == nil {
			result = &RemoveMemberResult{Removed: false}
			return nil
		}

		if err := memberRepo.Close(ctx, target.ID); err != nil {
			return fmt.Errorf("failed to close membership: %w", err)
		}

		if p.Rotation == nil {
			return ErrRotationRequired
		}
		rp := *p.Rotation
		rp.ConversationID = p.ConversationID
		rotation, err := s.rotation.Rotate(ctx, tx, rp)
		if err != nil {
			return err
		}

		result = &RemoveMemberResult{Removed: true, Rotation: rotation}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
