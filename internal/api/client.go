// Package api defines the remote-backend seam of the core. Today the only
// implementation is an in-process mock with simulated latency; a real
// network client later satisfies the same interface without changing any
// call site.
package api

import (
	"context"

	"github.com/visitdesk/visitdesk/internal/models"
)

// Client is the contract the session service depends on.
//
// Contract:
//   - Authenticate: verify credentials, return the user on match.
//     common.ErrInvalidCredentials on mismatch, never a panic for bad input.
//   - UserByID: resolve an identity; common.ErrNotFound when unknown.
//   - UpdateProfile: merge mutable profile fields, return the updated user.
//   - ResetPassword: trigger the out-of-band reset flow for the account.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	UserByID(ctx context.Context, id string) (models.User, error)
	UpdateProfile(ctx context.Context, id string, patch models.ProfilePatch) (models.User, error)
	ResetPassword(ctx context.Context, email string) error
}
