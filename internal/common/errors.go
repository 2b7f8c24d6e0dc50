// Package common defines shared constants and sentinel errors used across
// the visitdesk core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token lifecycle errors. An invalid token is one that does not decrypt
	// to a well-formed payload; an expired one decrypts fine but its
	// expiry timestamp is in the past.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Storage errors never leave the kvstore boundary as Go errors; this
	// sentinel is what domain services report when a write-back was refused.
	ErrStorage = errors.New("storage unavailable")
)
