// Package client contains client-side building blocks for KeyFold.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the KeyFold backend: conversation creation, key-chain fetches,
//     epoch rotation, membership and invite-link management, and presigned
//     URL helpers for attachments.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, and maps
//     gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, plus the shared
// common.ErrorNotFound and common.ErrStaleEpoch.
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated otherwise.
// All operations accept context.Context and must honor cancellation/timeouts.
//
// See Also
//
//   - Interface: Client
//   - gRPC impl: GRPCClient
//   - Errors:    ErrUnavailable, ErrUnauthorized
package client
