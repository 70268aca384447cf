package api

import (
	"context"
	"net/http"

	"github.com/evamobilya/dealer-client/internal/core/ports"
)

// AuthAPI implements ports.AuthGateway.
type AuthAPI struct {
	c *Client
}

func NewAuthAPI(c *Client) *AuthAPI { return &AuthAPI{c: c} }

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *AuthAPI) Login(ctx context.Context, username, password string) (*ports.LoginPayload, error) {
	var payload ports.LoginPayload
	_, err := a.c.do(ctx, "auth_login", http.MethodPost, "/api/auth/login", "", loginRequest{Username: username, Password: password}, &payload)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

func (a *AuthAPI) Logout(ctx context.Context, token string) (string, error) {
	return a.c.do(ctx, "auth_logout", http.MethodPost, "/api/auth/logout", token, nil, nil)
}
