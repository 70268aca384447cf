package domain

import "time"

// Role classifies a user's permission tier. Capability checks go through the
// methods below rather than ad-hoc flag combinations.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
	RoleDealer Role = "dealer"
)

// ParseRole maps a raw classifier string to a Role. Unknown strings are
// passed through; every capability method returns false for them.
func ParseRole(s string) Role { return Role(s) }

// Known reports whether the role is one of the recognised classifiers.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer, RoleDealer:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool  { return r == RoleAdmin }
func (r Role) IsEditor() bool { return r == RoleEditor }
func (r Role) IsViewer() bool { return r == RoleViewer }

// IsAdminOrEditor gates the back-office management surfaces.
func (r Role) IsAdminOrEditor() bool { return r == RoleAdmin || r == RoleEditor }

// IsDealer reports whether the user belongs to a store rather than staff.
func (r Role) IsDealer() bool { return r == RoleDealer }

// User models the signed-in principal.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Role         Role      `json:"userType"`
	RoleID       *int      `json:"roleId,omitempty"`
	// CanSeePrice defaults to true when the login payload omits it.
	CanSeePrice bool   `json:"canSeePrice"`
	Store       *Store `json:"store,omitempty"`
}

// DisplayName returns "First Last", falling back to the username.
func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
