package upstream

import (
	"context"
	"net/http"

	"pixelmart/internal/domain/entity"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is what the API returns on login/register: the user record
// plus the bearer token the gateway keeps for subsequent calls.
type AuthResponse struct {
	User  entity.User `json:"user"`
	Token string      `json:"token"`
}

type UpdateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, "", http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, "", http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProfile(ctx context.Context, token string) (*entity.User, error) {
	var out entity.User
	if err := c.doJSON(ctx, token, http.MethodGet, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*entity.User, error) {
	var out entity.User
	if err := c.doJSON(ctx, token, http.MethodPut, "/users/me", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
