// Package common defines shared constants and sentinel errors used across
// client and server layers of KeyFold. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Rotation protocol errors. The typed errors in the services package
	// carry the payloads; these sentinels support errors.Is classification.
	ErrStaleEpoch      = errors.New("stale epoch")
	ErrWrapSetMismatch = errors.New("wrap set mismatch")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
