package services

import (
	"github.com/visitdesk/visitdesk/internal/access"
	"github.com/visitdesk/visitdesk/internal/common"
)

// requirePermission re-asserts authorization at the mutation boundary. The
// UI consults HasPermission for visibility, but a privileged write is never
// allowed through on rendering decisions alone.
func requirePermission(auth Authorizer, permission string) error {
	user, ok := auth.CurrentUser()
	if !ok {
		return common.ErrUnauthorized
	}
	if !access.HasPermission(user, permission) {
		return common.ErrUnauthorized
	}
	return nil
}
