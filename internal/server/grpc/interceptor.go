package grpc

import (
	"context"

	"github.com/keyfold/keyfold/internal/common"
	"github.com/keyfold/keyfold/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

// UserIDKey carries the user id extracted from a verified access token.
const UserIDKey ctxKey = "userID"

// accessTokenInterceptor requires a valid access token on every call
// except Ping. The token is minted by the identity service that shares
// the JWT secret with this server.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod != "/keyfold.service.KeyFoldService/Ping" {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, UserIDKey, userID)

	}

	return handler(ctx, req)
}

// userIDFromContext reads the id the interceptor stashed. Its absence
// means the interceptor chain is miswired, not that the caller did
// anything wrong.
func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", status.Error(codes.Internal, "no user id in context")
	}
	return userID, nil
}
