package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/keyfold/keyfold/internal/common"
	pb "github.com/keyfold/keyfold/internal/proto"
	"github.com/keyfold/keyfold/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapServiceError translates service errors into gRPC status codes. The
// typed rotation errors keep their own message on the wire so a client
// can read the current epoch out of a stale-epoch failure.
func mapServiceError(err error) error {
	var stale *services.StaleEpochError
	if errors.As(err, &stale) {
		return status.Error(codes.FailedPrecondition, stale.Error())
	}
	var mismatch *services.WrapSetMismatchError
	if errors.As(err, &mismatch) {
		return status.Error(codes.InvalidArgument, mismatch.Error())
	}
	switch {
	case errors.Is(err, services.ErrRotationRequired):
		return status.Error(codes.InvalidArgument, services.ErrRotationRequired.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.PermissionDenied, "unauthorized")
	}
	return status.Error(codes.Internal, "internal error")
}

// memberOnly converts a failed membership check into the status returned
// to a caller who is not part of the conversation.
func memberOnly(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return status.Error(codes.PermissionDenied, "not a member of this conversation")
	}
	return status.Error(codes.Internal, "internal error")
}

func rotationParamsFromProto(conversationID string, r *pb.RotateRequest) services.RotationParams {
	wraps := make([]services.MemberWrap, 0, len(r.GetMemberWraps()))
	for _, w := range r.GetMemberWraps() {
		wraps = append(wraps, services.MemberWrap{
			MemberPublicKey: w.GetMemberPublicKey(),
			WrappedKey:      w.GetWrappedKey(),
		})
	}
	return services.RotationParams{
		ConversationID:      conversationID,
		ExpectedEpoch:       r.GetExpectedEpoch(),
		NewEpochPublicKey:   r.GetNewEpochPublicKey(),
		NewConfirmationHash: r.GetNewConfirmationHash(),
		NewChainLink:        r.GetNewChainLink(),
		MemberWraps:         wraps,
		NewEncryptedTitle:   r.GetNewEncryptedTitle(),
	}
}

func rotationResultToProto(r *services.RotationResult) *pb.RotateResponse {
	if r == nil {
		return nil
	}
	return &pb.RotateResponse{NewEpochNumber: r.NewEpochNumber, NewEpochId: r.NewEpochID}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Message: "OK"}, nil

}

func (s *GRPCServer) CreateConversation(ctx context.Context, req *pb.CreateConversationRequest) (*pb.CreateConversationResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.conversations.Create(ctx, services.CreateConversationParams{
		EncryptedTitle:    req.GetEncryptedTitle(),
		CreatorUserID:     userID,
		CreatorPublicKey:  req.GetCreatorPublicKey(),
		EpochPublicKey:    req.GetEpochPublicKey(),
		ConfirmationHash:  req.GetConfirmationHash(),
		CreatorWrappedKey: req.GetCreatorWrappedKey(),
	})
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	s.logger.Info(ctx, "Conversation created", "conversation_id", result.Conversation.ID)
	return &pb.CreateConversationResponse{
		ConversationId: result.Conversation.ID,
		CurrentEpoch:   result.Conversation.CurrentEpoch,
		EpochId:        result.EpochID,
	}, nil

}

// KeyChain is keyed on the caller's public key: wraps exist only for
// members, so an unknown conversation and a non-member produce the same
// not-found answer.
func (s *GRPCServer) KeyChain(ctx context.Context, req *pb.KeyChainRequest) (*pb.KeyChainResponse, error) {

	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}

	chain, err := s.keychains.KeyChain(ctx, req.GetConversationId(), req.GetMemberPublicKey())
	if err != nil {
		return nil, mapServiceError(err)
	}

	conv, err := s.conversations.Get(ctx, req.GetConversationId())
	if err != nil {
		return nil, mapServiceError(err)
	}

	resp := &pb.KeyChainResponse{
		CurrentEpoch:     chain.CurrentEpoch,
		CurrentEpochId:   chain.CurrentEpochID,
		EncryptedTitle:   conv.Title,
		TitleEpochNumber: conv.TitleEpochNumber,
	}
	for _, w := range chain.Wraps {
		resp.Wraps = append(resp.Wraps, &pb.EpochWrap{
			EpochNumber:      w.EpochNumber,
			WrappedKey:       w.WrappedKey,
			VisibleFromEpoch: w.VisibleFromEpoch,
		})
	}
	for _, l := range chain.ChainLinks {
		resp.ChainLinks = append(resp.ChainLinks, &pb.EpochChainLink{
			EpochNumber: l.EpochNumber,
			ChainLink:   l.ChainLink,
		})
	}
	for _, c := range chain.Confirmations {
		resp.Confirmations = append(resp.Confirmations, &pb.EpochConfirmation{
			EpochNumber:      c.EpochNumber,
			ConfirmationHash: c.ConfirmationHash,
		})
	}

	return resp, nil

}

func (s *GRPCServer) ActiveMembers(ctx context.Context, req *pb.ActiveMembersRequest) (*pb.ActiveMembersResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.memberships.VerifyMembership(ctx, req.GetConversationId(), userID); err != nil {
		return nil, memberOnly(err)
	}

	members, err := s.memberships.ActiveMembers(ctx, req.GetConversationId())
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	resp := &pb.ActiveMembersResponse{}
	for _, m := range members {
		resp.Members = append(resp.Members, &pb.Member{
			MemberId:         m.MemberID,
			Kind:             string(m.Kind),
			PublicKey:        m.PublicKey,
			Privilege:        m.Privilege,
			VisibleFromEpoch: m.VisibleFromEpoch,
		})
	}

	return resp, nil

}

func (s *GRPCServer) Rotate(ctx context.Context, req *pb.RotateRequest) (*pb.RotateResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.memberships.VerifyMembership(ctx, req.GetConversationId(), userID); err != nil {
		return nil, memberOnly(err)
	}

	result, err := s.rotations.RotateConversation(ctx, rotationParamsFromProto(req.GetConversationId(), req))
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	s.logger.Info(ctx, "Conversation rotated", "conversation_id", req.GetConversationId(), "epoch", result.NewEpochNumber)
	return rotationResultToProto(result), nil

}

func (s *GRPCServer) AddMember(ctx context.Context, req *pb.AddMemberRequest) (*pb.AddMemberResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.memberships.VerifyMembership(ctx, req.GetConversationId(), userID); err != nil {
		return nil, memberOnly(err)
	}

	result, err := s.memberships.AddMember(ctx, services.AddMemberParams{
		ConversationID:   req.GetConversationId(),
		UserID:           req.GetUserId(),
		MemberPublicKey:  req.GetMemberPublicKey(),
		Privilege:        req.GetPrivilege(),
		VisibleFromEpoch: req.GetVisibleFromEpoch(),
		CurrentEpochID:   req.GetCurrentEpochId(),
		WrappedKey:       req.GetWrappedKey(),
	})
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	s.logger.Info(ctx, "Member added", "conversation_id", req.GetConversationId(), "member_id", result.MemberID)
	return &pb.AddMemberResponse{MemberId: result.MemberID, Created: result.Created}, nil

}

func (s *GRPCServer) RemoveMember(ctx context.Context, req *pb.RemoveMemberRequest) (*pb.RemoveMemberResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.memberships.VerifyMembership(ctx, req.GetConversationId(), userID); err != nil {
		return nil, memberOnly(err)
	}

	var rot *services.RotationParams
	if req.GetRotation() != nil {
		p := rotationParamsFromProto(req.GetConversationId(), req.GetRotation())
		rot = &p
	}

	result, err := s.memberships.RemoveMember(ctx, services.RemoveMemberParams{
		ConversationID: req.GetConversationId(),
		MemberID:       req.GetMemberId(),
		Rotation:       rot,
	})
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	s.logger.Info(ctx, "Member removed", "conversation_id", req.GetConversationId(), "member_id", req.GetMemberId())
	return &pb.RemoveMemberResponse{
		Removed:  result.Removed,
		Rotation: rotationResultToProto(result.Rotation),
	}, nil

}

func (s *GRPCServer) CreateLink(ctx context.Context, req *pb.CreateLinkRequest) (*pb.CreateLinkResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.memberships.VerifyMembership(ctx, req.GetConversationId(), userID); err != nil {
		return nil, memberOnly(err)
	}

	result, err := s.links.CreateLink(ctx, services.CreateLinkParams{
		ConversationID:   req.GetConversationId(),
		LinkPublicKey:    req.GetLinkPublicKey(),
		DisplayName:      req.GetDisplayName(),
		Privilege:        req.GetPrivilege(),
		VisibleFromEpoch: req.GetVisibleFromEpoch(),
		CurrentEpochID:   req.GetCurrentEpochId(),
		WrappedKey:       req.GetWrappedKey(),
	})
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	s.logger.Info(ctx, "Link created", "conversation_id", req.GetConversationId(), "link_id", result.LinkID)
	return &pb.CreateLinkResponse{
		LinkId:   result.LinkID,
		MemberId: result.MemberID,
		Created:  result.Created,
	}, nil

}

func (s *GRPCServer) RevokeLink(ctx context.Context, req *pb.RevokeLinkRequest) (*pb.RevokeLinkResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.memberships.VerifyMembership(ctx, req.GetConversationId(), userID); err != nil {
		return nil, memberOnly(err)
	}

	var rot *services.RotationParams
	if req.GetRotation() != nil {
		p := rotationParamsFromProto(req.GetConversationId(), req.GetRotation())
		rot = &p
	}

	result, err := s.links.RevokeLink(ctx, services.RevokeLinkParams{
		ConversationID: req.GetConversationId(),
		LinkID:         req.GetLinkId(),
		Rotation:       rot,
	})
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	resp := &pb.RevokeLinkResponse{
		Revoked:  result.Revoked,
		Rotation: rotationResultToProto(result.Rotation),
	}
	if result.MemberID != nil {
		resp.MemberId = *result.MemberID
	}

	s.logger.Info(ctx, "Link revoked", "conversation_id", req.GetConversationId(), "link_id", req.GetLinkId())
	return resp, nil

}

func (s *GRPCServer) ChangeLinkPrivilege(ctx context.Context, req *pb.ChangeLinkPrivilegeRequest) (*pb.ChangeLinkPrivilegeResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.memberships.VerifyMembership(ctx, req.GetConversationId(), userID); err != nil {
		return nil, memberOnly(err)
	}

	result, err := s.links.ChangeLinkPrivilege(ctx, services.ChangeLinkPrivilegeParams{
		ConversationID: req.GetConversationId(),
		LinkID:         req.GetLinkId(),
		NewPrivilege:   req.GetNewPrivilege(),
	})
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	resp := &pb.ChangeLinkPrivilegeResponse{Changed: result.Changed}
	if result.MemberID != nil {
		resp.MemberId = *result.MemberID
	}

	return resp, nil

}

func (s *GRPCServer) GetPresignedPutUrl(ctx context.Context, req *pb.GetPresignedPutUrlRequest) (*pb.GetPresignedPutUrlResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.memberships.VerifyMembership(ctx, req.GetConversationId(), userID); err != nil {
		return nil, memberOnly(err)
	}

	key, url, err := s.attachments.GetPresignedPutUrl(ctx, req.GetConversationId())
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	return &pb.GetPresignedPutUrlResponse{Key: key, Url: url}, nil

}

// GetPresignedGetUrl authorizes against the conversation named in the
// storage key, which is always conversations/<id>/<object>.
func (s *GRPCServer) GetPresignedGetUrl(ctx context.Context, req *pb.GetPresignedGetUrlRequest) (*pb.GetPresignedGetUrlResponse, error) {

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(req.GetKey(), "/")
	if len(parts) != 3 || parts[0] != "conversations" || parts[1] == "" {
		return nil, status.Error(codes.InvalidArgument, "malformed storage key")
	}
	if _, err := s.memberships.VerifyMembership(ctx, parts[1], userID); err != nil {
		return nil, memberOnly(err)
	}

	url, err := s.attachments.GetPresignedGetUrl(ctx, req.GetKey())
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, mapServiceError(err)
	}

	return &pb.GetPresignedGetUrlResponse{Url: url}, nil

}
