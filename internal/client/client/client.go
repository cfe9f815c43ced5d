package client

import (
	"context"

	"github.com/keyfold/keyfold/internal/client/models"
)

type Client interface {
	Close() error
	SetAccessToken(token string)
	Ping(ctx context.Context) error
	CreateConversation(ctx context.Context, seed *models.ConversationSeed) (*models.Conversation, error)
	KeyChain(ctx context.Context, conversationID string, memberPublicKey []byte) (*models.KeyChain, error)
	ActiveMembers(ctx context.Context, conversationID string) ([]*models.Member, error)
	Rotate(ctx context.Context, conversationID string, rotation *models.Rotation) (*models.RotationResult, error)
	AddMember(ctx context.Context, conversationID string, member *models.NewMember) (*models.AddMemberResult, error)
	RemoveMember(ctx context.Context, conversationID string, memberID string, rotation *models.Rotation) (*models.RemoveMemberResult, error)
	CreateLink(ctx context.Context, conversationID string, link *models.NewLink) (*models.CreateLinkResult, error)
	RevokeLink(ctx context.Context, conversationID string, linkID string, rotation *models.Rotation) (*models.RevokeLinkResult, error)
	ChangeLinkPrivilege(ctx context.Context, conversationID string, linkID string, newPrivilege string) (*models.ChangeLinkPrivilegeResult, error)
	GetPresignedPutURL(ctx context.Context, conversationID string) (string, string, error)
	GetPresignedGetURL(ctx context.Context, key string) (string, error)
}
