package client

import (
	"context"
	"fmt"
	"time"

	"github.com/keyfold/keyfold/internal/client/models"
	"github.com/keyfold/keyfold/internal/common"
	pb "github.com/keyfold/keyfold/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.KeyFoldServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewKeyFoldClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewKeyFoldServiceClient(conn)
	return nil
}

// SetAccessToken installs the bearer token attached to every call.
func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Message != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) CreateConversation(ctx context.Context, seed *models.ConversationSeed) (*models.Conversation, error) {

	req := &pb.CreateConversationRequest{
		EncryptedTitle:    seed.EncryptedTitle,
		CreatorPublicKey:  seed.CreatorPublicKey,
		EpochPublicKey:    seed.EpochPublicKey,
		ConfirmationHash:  seed.ConfirmationHash,
		CreatorWrappedKey: seed.CreatorWrappedKey,
	}

	resp, err := s.client.CreateConversation(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.Conversation{
		ConversationID: resp.ConversationId,
		CurrentEpoch:   resp.CurrentEpoch,
		EpochID:        resp.EpochId,
	}, nil

}

func (s *GRPCClient) KeyChain(ctx context.Context, conversationID string, memberPublicKey []byte) (*models.KeyChain, error) {

	req := &pb.KeyChainRequest{ConversationId: conversationID, MemberPublicKey: memberPublicKey}

	resp, err := s.client.KeyChain(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	chain := &models.KeyChain{
		CurrentEpoch:     resp.CurrentEpoch,
		CurrentEpochID:   resp.CurrentEpochId,
		EncryptedTitle:   resp.EncryptedTitle,
		TitleEpochNumber: resp.TitleEpochNumber,
	}

	for _, w := range resp.Wraps {
		chain.Wraps = append(chain.Wraps, models.EpochWrap{EpochNumber: w.EpochNumber, WrappedKey: w.WrappedKey, VisibleFromEpoch: w.VisibleFromEpoch})
	}

	for _, l := range resp.ChainLinks {
		chain.ChainLinks = append(chain.ChainLinks, models.EpochChainLink{EpochNumber: l.EpochNumber, ChainLink: l.ChainLink})
	}

	for _, c := range resp.Confirmations {
		chain.Confirmations = append(chain.Confirmations, models.EpochConfirmation{EpochNumber: c.EpochNumber, ConfirmationHash: c.ConfirmationHash})
	}

	return chain, nil
}

func (s *GRPCClient) ActiveMembers(ctx context.Context, conversationID string) ([]*models.Member, error) {

	req := &pb.ActiveMembersRequest{ConversationId: conversationID}

	resp, err := s.client.ActiveMembers(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	members := make([]*models.Member, 0, len(resp.Members))
	for _, m := range resp.Members {
		members = append(members, &models.Member{
			MemberID:         m.MemberId,
			Kind:             m.Kind,
			PublicKey:        m.PublicKey,
			Privilege:        m.Privilege,
			VisibleFromEpoch: m.VisibleFromEpoch,
		})
	}

	return members, nil

}

func rotateRequest(conversationID string, r *models.Rotation) *pb.RotateRequest {
	req := &pb.RotateRequest{
		ConversationId:      conversationID,
		ExpectedEpoch:       r.ExpectedEpoch,
		NewEpochPublicKey:   r.NewEpochPublicKey,
		NewConfirmationHash: r.NewConfirmationHash,
		NewChainLink:        r.NewChainLink,
		NewEncryptedTitle:   r.NewEncryptedTitle,
	}
	for _, w := range r.MemberWraps {
		req.MemberWraps = append(req.MemberWraps, &pb.MemberWrap{MemberPublicKey: w.MemberPublicKey, WrappedKey: w.WrappedKey})
	}
	return req
}

// Rotate advances the conversation to the next epoch. The new epoch's
// private key stays local; only the wrapped copies travel.
func (s *GRPCClient) Rotate(ctx context.Context, conversationID string, rotation *models.Rotation) (*models.RotationResult, error) {

	resp, err := s.client.Rotate(ctx, rotateRequest(conversationID, rotation))
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.RotationResult{NewEpochNumber: resp.NewEpochNumber, NewEpochID: resp.NewEpochId}, nil
}

func (s *GRPCClient) AddMember(ctx context.Context, conversationID string, member *models.NewMember) (*models.AddMemberResult, error) {

	req := &pb.AddMemberRequest{
		ConversationId:   conversationID,
		UserId:           member.UserID,
		MemberPublicKey:  member.PublicKey,
		Privilege:        member.Privilege,
		VisibleFromEpoch: member.VisibleFromEpoch,
		CurrentEpochId:   member.CurrentEpochID,
		WrappedKey:       member.WrappedKey,
	}

	resp, err := s.client.AddMember(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.AddMemberResult{MemberID: resp.MemberId, Created: resp.Created}, nil
}

func (s *GRPCClient) RemoveMember(ctx context.Context, conversationID string, memberID string, rotation *models.Rotation) (*models.RemoveMemberResult, error) {

	req := &pb.RemoveMemberRequest{ConversationId: conversationID, MemberId: memberID}
	if rotation != nil {
		req.Rotation = rotateRequest(conversationID, rotation)
	}

	resp, err := s.client.RemoveMember(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	result := &models.RemoveMemberResult{Removed: resp.Removed}
	if resp.Rotation != nil {
		result.Rotation = &models.RotationResult{NewEpochNumber: resp.Rotation.NewEpochNumber, NewEpochID: resp.Rotation.NewEpochId}
	}

	return result, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) CreateLink(ctx context.Context, conversationID string, link *models.NewLink) (*models.CreateLinkResult, error) {

	req := &pb.CreateLinkRequest{
		ConversationId:   conversationID,
		LinkPublicKey:    link.PublicKey,
		DisplayName:      link.DisplayName,
		Privilege:        link.Privilege,
		VisibleFromEpoch: link.VisibleFromEpoch,
		CurrentEpochId:   link.CurrentEpochID,
		WrappedKey:       link.WrappedKey,
	}

	resp, err := s.client.CreateLink(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.CreateLinkResult{LinkID: resp.LinkId, MemberID: resp.MemberId, Created: resp.Created}, nil
}

func (s *GRPCClient) RevokeLink(ctx context.Context, conversationID string, linkID string, rotation *models.Rotation) (*models.RevokeLinkResult, error) {

	req := &pb.RevokeLinkRequest{ConversationId: conversationID, LinkId: linkID}
	if rotation != nil {
		req.Rotation = rotateRequest(conversationID, rotation)
	}

	resp, err := s.client.RevokeLink(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	result := &models.RevokeLinkResult{Revoked: resp.Revoked, MemberID: resp.MemberId}
	if resp.Rotation != nil {
		result.Rotation = &models.RotationResult{NewEpochNumber: resp.Rotation.NewEpochNumber, NewEpochID: resp.Rotation.NewEpochId}
	}

	return result, nil
}

func (s *GRPCClient) ChangeLinkPrivilege(ctx context.Context, conversationID string, linkID string, newPrivilege string) (*models.ChangeLinkPrivilegeResult, error) {

	req := &pb.ChangeLinkPrivilegeRequest{ConversationId: conversationID, LinkId: linkID, NewPrivilege: newPrivilege}

	resp, err := s.client.ChangeLinkPrivilege(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.ChangeLinkPrivilegeResult{Changed: resp.Changed, MemberID: resp.MemberId}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.FailedPrecondition:
		return common.ErrStaleEpoch
	case codes.InvalidArgument:
		return fmt.Errorf("rejected: %s", st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) GetPresignedPutURL(ctx context.Context, conversationID string) (string, string, error) {
	req := &pb.GetPresignedPutUrlRequest{ConversationId: conversationID}

	resp, err := s.client.GetPresignedPutUrl(ctx, req)
	if err != nil {
		return "", "", s.mapError(err)
	}

	return resp.Key, resp.Url, nil

}

func (s *GRPCClient) GetPresignedGetURL(ctx context.Context, key string) (string, error) {
	req := &pb.GetPresignedGetUrlRequest{Key: key}

	res, err := s.client.GetPresignedGetUrl(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return res.Url, nil

}
