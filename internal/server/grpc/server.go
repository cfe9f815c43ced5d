package grpc

import (
	"context"
	"net"

	"github.com/keyfold/keyfold/internal/logging"
	pb "github.com/keyfold/keyfold/internal/proto"
	"github.com/keyfold/keyfold/internal/server/models"
	"github.com/keyfold/keyfold/internal/server/services"
	"google.golang.org/grpc"
)

// The handler layer codes against these narrow views of the services so
// tests can swap in fakes.

type conversationSvc interface {
	Create(ctx context.Context, p services.CreateConversationParams) (*services.CreateConversationResult, error)
	Get(ctx context.Context, id string) (*models.Conversation, error)
}

type keychainSvc interface {
	KeyChain(ctx context.Context, conversationID string, memberPublicKey []byte) (*models.KeyChain, error)
}

type membershipSvc interface {
	ActiveMembers(ctx context.Context, conversationID string) ([]models.MemberKey, error)
	VerifyMembership(ctx context.Context, conversationID, userID string) (*models.ConversationMember, error)
	AddMember(ctx context.Context, p services.AddMemberParams) (*services.AddMemberResult, error)
	RemoveMember(ctx context.Context, p services.RemoveMemberParams) (*services.RemoveMemberResult, error)
}

type rotationSvc interface {
	RotateConversation(ctx context.Context, p services.RotationParams) (*services.RotationResult, error)
}

type linkSvc interface {
	CreateLink(ctx context.Context, p services.CreateLinkParams) (*services.CreateLinkResult, error)
	RevokeLink(ctx context.Context, p services.RevokeLinkParams) (*services.RevokeLinkResult, error)
	ChangeLinkPrivilege(ctx context.Context, p services.ChangeLinkPrivilegeParams) (*services.ChangeLinkPrivilegeResult, error)
}

type attachmentSvc interface {
	GetPresignedPutUrl(ctx context.Context, conversationID string) (string, string, error)
	GetPresignedGetUrl(ctx context.Context, key string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedKeyFoldServiceServer
	address       string
	conversations conversationSvc
	keychains     keychainSvc
	memberships   membershipSvc
	rotations     rotationSvc
	links         linkSvc
	attachments   attachmentSvc
	logger        logging.Logger
	jwtSecret     []byte
}

func NewGRPCServer(a string, l logging.Logger, cs conversationSvc, ks keychainSvc, ms membershipSvc, rs rotationSvc, ls linkSvc, as attachmentSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		conversations: cs,
		keychains:     ks,
		memberships:   ms,
		rotations:     rs,
		links:         ls,
		attachments:   as,
		jwtSecret:     []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterKeyFoldServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
