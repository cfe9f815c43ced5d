package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keyfold/keyfold/internal/dbx"
	"github.com/keyfold/keyfold/internal/server/models"
	"github.com/keyfold/keyfold/internal/server/repositories/repomanager"
)

// CreateConversationParams carries everything a conversation is born
// with: the title sealed under the epoch-1 key, the creator's identity
// and public key, the epoch-1 public key and confirmation hash, and the
// creator's wrap of the epoch-1 private key.
type CreateConversationParams struct {
	EncryptedTitle    []byte
	CreatorUserID     string
	CreatorPublicKey  []byte
	EpochPublicKey    []byte
	ConfirmationHash  []byte
	CreatorWrappedKey []byte
}

// CreateConversationResult returns the stored conversation and the id
// of its first epoch.
type CreateConversationResult struct {
	Conversation *models.Conversation
	EpochID      string
}

// ConversationService creates conversations and reads their metadata.
type ConversationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewConversationService constructs a ConversationService.
func NewConversationService(db *sql.DB, m repomanager.RepositoryManager) *ConversationService {
	return &ConversationService{db: db, repomanager: m}
}

// Create inserts a conversation together with its first epoch, the
// creator's owner membership and the creator's epoch-1 wrap, in one
// transaction. Epoch 1 carries no chain link: there is nothing before
// it to reach.
func (s *ConversationService) Create(ctx context.Context, p CreateConversationParams) (*CreateConversationResult, error) {
	var result *CreateConversationResult

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		conv, err := s.repomanager.Conversations(tx).Create(ctx, &models.Conversation{Title: p.EncryptedTitle})
		if err != nil {
			return fmt.Errorf("failed to create conversation: %w", err)
		}

		epoch, err := s.repomanager.Epochs(tx).Create(ctx, &models.Epoch{
			ConversationID:   conv.ID,
			EpochNumber:      1,
			EpochPublicKey:   p.EpochPublicKey,
			ConfirmationHash: p.ConfirmationHash,
		})
		if err != nil {
			return fmt.Errorf("failed to create first epoch: %w", err)
		}

		if _, err := s.repomanager.Members(tx).Create(ctx, &models.ConversationMember{
			ConversationID:   conv.ID,
			UserID:           &p.CreatorUserID,
			MemberPublicKey:  p.CreatorPublicKey,
			Privilege:        models.PrivilegeOwner,
			VisibleFromEpoch: 1,
		}); err != nil {
			return fmt.Errorf("failed to create owner membership: %w", err)
		}

		if err := s.repomanager.EpochMembers(tx).Create(ctx, &models.EpochMember{
			EpochID:          epoch.ID,
			MemberPublicKey:  p.CreatorPublicKey,
			WrappedKey:       p.CreatorWrappedKey,
			VisibleFromEpoch: 1,
		}); err != nil {
			return fmt.Errorf("failed to install creator wrap: %w", err)
		}

		result = &CreateConversationResult{Conversation: conv, EpochID: epoch.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns a conversation row, including its encrypted title and the
// epoch number the title was sealed under.
func (s *ConversationService) Get(ctx context.Context, id string) (*models.Conversation, error) {
	return s.repomanager.Conversations(s.db).GetByID(ctx, id)
}
