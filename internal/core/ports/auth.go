package ports

import (
	"context"

	"github.com/evamobilya/dealer-client/internal/core/domain"
)

// UserPayload mirrors the login response user object. Optional fields stay
// pointers so the session manager can tell "omitted" from "false".
type UserPayload struct {
	ID           int64         `json:"id"`
	Username     string        `json:"username"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	IsActive     bool          `json:"isActive"`
	CreatedAt    string        `json:"createdAt"`
	ProfileImage string        `json:"profileImage"`
	UserType     string        `json:"userType"`
	RoleID       *int          `json:"roleId"`
	CanSeePrice  *bool         `json:"canSeePrice"`
	Store        *domain.Store `json:"store"`
}

// LoginPayload is the data object of a successful login envelope.
type LoginPayload struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// AuthGateway binds the remote auth endpoints.
type AuthGateway interface {
	// Login exchanges credentials for a token and identity. A rejected
	// login surfaces as a *domain.APIError carrying the server message.
	Login(ctx context.Context, username, password string) (*LoginPayload, error)
	// Logout invalidates the token server-side, returning the server
	// message when one is provided.
	Logout(ctx context.Context, token string) (string, error)
}
