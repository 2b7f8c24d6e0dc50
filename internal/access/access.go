// Package access evaluates authorization decisions from a user's permission
// set and role. Pure functions, no I/O: the same check gates UI affordances
// and is re-asserted at the mutation boundary by the domain services.
package access

import "github.com/visitdesk/visitdesk/internal/models"

// PermissionAll is the wildcard capability.
const PermissionAll = "all"

// The fixed permission vocabulary.
const (
	PermSectors     = "sectors"
	PermDepartments = "departments"
	PermVisitors    = "visitors"
	PermVisits      = "visits"
	PermReports     = "reports"
	PermAudit       = "audit"
)

// HasPermission reports whether the user holds the permission: verbatim
// membership, the admin role, or the "all" wildcard all grant it.
func HasPermission(u models.User, permission string) bool {
	if u.Role == models.RoleAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == permission || p == PermissionAll {
			return true
		}
	}
	return false
}
