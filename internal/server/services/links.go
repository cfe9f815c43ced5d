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

// CreateLinkParams describes an invite link to add to a conversation.
// CurrentEpochID must name the conversation's current epoch row; a stale
// value fails the same way a stale rotation does. WrappedKey is the
// current epoch private key wrapped for the link's public key.
type CreateLinkParams struct {
	ConversationID   string
	LinkPublicKey    []byte
	DisplayName      string
	Privilege        string
	VisibleFromEpoch int64
	CurrentEpochID   string
	WrappedKey       []byte
}

// CreateLinkResult reports the link and membership ids. Created is false
// when the link public key already existed and the existing ids were
// returned instead.
type CreateLinkResult struct {
	LinkID   string
	MemberID string
	Created  bool
}

// RevokeLinkParams describes a revocation. Rotation carries the epoch
// advance that cuts the revoked link's access; it may be nil only when
// the caller knows the link holds no membership.
type RevokeLinkParams struct {
	ConversationID string
	LinkID         string
	Rotation       *RotationParams
}

// RevokeLinkResult reports what the revocation did. Revoked is false for
// an unknown or already-revoked link. MemberID is nil when the link had
// no active membership row, in which case no rotation ran.
type RevokeLinkResult struct {
	Revoked  bool
	MemberID *string
	Rotation *RotationResult
}

// ChangeLinkPrivilegeParams describes a privilege change for a link's
// membership.
type ChangeLinkPrivilegeParams struct {
	ConversationID string
	LinkID         string
	NewPrivilege   string
}

// ChangeLinkPrivilegeResult reports the outcome: Changed is false when
// the link does not exist; MemberID is nil when it exists but has no
// active membership row.
type ChangeLinkPrivilegeResult struct {
	Changed  bool
	MemberID *string
}

// LinkService manages invite-link membership: creation, revocation, and
// privilege changes. Revoking a link that holds membership rotates the
// conversation in the same transaction, so recording the removal and
// cutting the key access cannot come apart.
type LinkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	rotation    *RotationService
}

// NewLinkService constructs a LinkService.
func NewLinkService(db *sql.DB, m repomanager.RepositoryManager, rotation *RotationService) *LinkService {
	return &LinkService{db: db, repomanager: m, rotation: rotation}
}

// CreateLink adds an invite link to a conversation and installs its wrap
// for the current epoch. Creation is idempotent on the link public key:
// a duplicate call returns the existing link and member ids untouched.
func (s *LinkService) CreateLink(ctx context.Context, p CreateLinkParams) (*CreateLinkResult, error) {
	var result *CreateLinkResult

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		convRepo := s.repomanager.Conversations(tx)
		epochRepo := s.repomanager.Epochs(tx)
		linkRepo := s.repomanager.SharedLinks(tx)
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

		existing, err := linkRepo.GetByPublicKey(ctx, p.LinkPublicKey)
		if err == nil {
			result = &CreateLinkResult{LinkID: existing.ID}
			member, ferr := memberRepo.FindActiveByLink(ctx, p.ConversationID, existing.ID)
			if ferr == nil {
				result.MemberID = member.ID
			} else if !errors.Is(ferr, common.ErrorNotFound) {
				return ferr
			}
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		link, err := linkRepo.Create(ctx, &models.SharedLink{
			LinkPublicKey: p.LinkPublicKey,
			DisplayName:   p.DisplayName,
		})
		if err != nil {
			return fmt.Errorf("failed to create link: %w", err)
		}

		member, err := memberRepo.Create(ctx, &models.ConversationMember{
			ConversationID:   p.ConversationID,
			LinkID:           &link.ID,
			MemberPublicKey:  p.LinkPublicKey,
			Privilege:        p.Privilege,
			VisibleFromEpoch: p.VisibleFromEpoch,
		})
		if err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}

		wrap := &models.EpochMember{
			EpochID:          epoch.ID,
			MemberPublicKey:  p.LinkPublicKey,
			WrappedKey:       p.WrappedKey,
			VisibleFromEpoch: p.VisibleFromEpoch,
		}
		if err := wrapRepo.CreateIfAbsent(ctx, wrap); err != nil {
			return fmt.Errorf("failed to install wrap: %w", err)
		}

		result = &CreateLinkResult{LinkID: link.ID, MemberID: member.ID, Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RevokeLink revokes a link and, when the link still holds membership,
// closes it and rotates the conversation in the same transaction. A link
// that is unknown or already revoked yields {Revoked: false} without
// error; a link with no membership row is recorded as revoked and no
// rotation runs.
func (s *LinkService) RevokeLink(ctx context.Context, p RevokeLinkParams) (*RevokeLinkResult, error) {
	var result *RevokeLinkResult

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		linkRepo := s.repomanager.SharedLinks(tx)
		memberRepo := s.repomanager.Members(tx)

		revoked, err := linkRepo.Revoke(ctx, p.LinkID)
		if err != nil {
			return err
		}
		if !revoked {
			result = &RevokeLinkResult{Revoked: false}
			return nil
		}

		member, err := memberRepo.FindActiveByLink(ctx, p.ConversationID, p.LinkID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				result = &RevokeLinkResult{Revoked: true}
				return nil
			}
			return err
		}

		if err := memberRepo.Close(ctx, member.ID); err != nil {
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

		result = &RevokeLinkResult{Revoked: true, MemberID: &member.ID, Rotation: rotation}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ChangeLinkPrivilege updates the privilege on a link's membership row.
func (s *LinkService) ChangeLinkPrivilege(ctx context.Context, p ChangeLinkPrivilegeParams) (*ChangeLinkPrivilegeResult, error) {
	var result *ChangeLinkPrivilegeResult

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		linkRepo := s.repomanager.SharedLinks(tx)
		memberRepo := s.repomanager.Members(tx)

		if _, err := linkRepo.GetByID(ctx, p.LinkID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				result = &ChangeLinkPrivilegeResult{Changed: false}
				return nil
			}
			return err
		}

		member, err := memberRepo.FindActiveByLink(ctx, p.ConversationID, p.LinkID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				result = &ChangeLinkPrivilegeResult{Changed: true}
				return nil
			}
			return err
		}

		if err := memberRepo.UpdatePrivilege(ctx, member.ID, p.NewPrivilege); err != nil {
			return fmt.Errorf("failed to update privilege: %w", err)
		}

		result = &ChangeLinkPrivilegeResult{Changed: true, MemberID: &member.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
