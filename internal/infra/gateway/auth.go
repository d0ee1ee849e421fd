package gateway

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"Address,omitempty"`
}

type userResponse struct {
	User *UserDTO `json:"user"`
}

// Login exchanges credentials for the session cookies; the server sets them
// on this client's jar, nothing token-shaped is returned to callers.
func (c *Client) Login(ctx context.Context, username, password string) (*UserDTO, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/login", nil, loginRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserDTO, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPost, "/api/users", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Me(ctx context.Context) (*UserDTO, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}
