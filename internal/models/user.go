package models

import "strings"

// Role is the closed role enumeration.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
)

// User is an identity record. Identity fields are fixed at login time;
// profile fields change only through an explicit UpdateProfile, never by
// direct store mutation. The password never travels on this struct; the
// directory keeps only a salted hash, owned by the API layer.
type User struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	Role        Role              `json:"role"`
	Permissions []string          `json:"permissions"`
	Phone       string            `json:"phone,omitempty"`
	Address     string            `json:"address,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// EmailEquals compares emails case-insensitively.
func (u User) EmailEquals(email string) bool {
	return strings.EqualFold(u.Email, email)
}

// ProfilePatch is a shallow merge of the mutable profile fields: nil pointers
// leave the current value alone.
type ProfilePatch struct {
	Name        *string           `json:"name,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	Address     *string           `json:"address,omitempty"`
	Bio         *string           `json:"bio,omitempty"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// Apply merges the patch into u.
func (p ProfilePatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Preferences != nil {
		u.Preferences = p.Preferences
	}
}
