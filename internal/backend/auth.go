package backend

import (
	"context"
	"net/http"

	"healthease/internal/model"
)

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token" validate:"required"`
	User  *model.User `json:"user" validate:"required"`
}

type verifyResponse struct {
	User *model.User `json:"user" validate:"required"`
}

// Login exchanges credentials for a session. A success response without a token
// or with an unknown role is reported as KindMalformed.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Session, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := c.check(http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &model.Session{Token: resp.Token, User: *resp.User}, nil
}

// Register creates an account and returns the backend's confirmation message.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var resp messageBody
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Verify resolves the user behind token.
func (c *Client) Verify(ctx context.Context, token string) (*model.User, error) {
	var resp verifyResponse
	if err := c.do(ctx, http.MethodGet, "/auth/verify", token, nil, &resp); err != nil {
		return nil, err
	}
	if err := c.check(http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}
