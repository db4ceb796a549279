package api

import (
	"context"
	"net/http"

	"github.com/vreeburg/warehouse-dashboard/internal/mapper"
)

// Session is a successful login response.
type Session struct {
	Token string     `json:"token"`
	User  mapper.Raw `json:"user"`
}

// Verification is the server's judgment of a stored token.
type Verification struct {
	Valid bool       `json:"valid"`
	User  mapper.Raw `json:"user"`
}

// Login exchanges credentials for a bearer token. The token is stored
// on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var session Session
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &session, false); err != nil {
		return Session{}, err
	}
	c.token = session.Token
	return session, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil, false)
}

func (c *Client) VerifyToken(ctx context.Context, token string) (Verification, error) {
	var v Verification
	body := map[string]string{"token": token}
	if err := c.do(ctx, http.MethodPost, "/auth/verify", body, &v, false); err != nil {
		return Verification{}, err
	}
	return v, nil
}
