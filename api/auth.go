package api

import (
	"context"
	"fmt"
	"net/http"

	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/jrsteele09/go-storefront-client/internal/utils"
	"github.com/jrsteele09/go-storefront-client/users"
	"github.com/rs/zerolog/log"
)

const (
	pathLogin    = "/auth/login"
	pathRegister = "/auth/register"
)

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}

// Registration is the payload for /auth/register. Role defaults to client.
// AuthToken, when set, is sent as the bearer credential so an admin can
// create privileged accounts.
type Registration struct {
	Name      string          `validate:"required"`
	Email     string          `validate:"required,email"`
	Password  string          `validate:"required"`
	Role      *users.RoleType `validate:"omitempty,oneof=client admin"`
	AuthToken string
}

type registrationBody struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Role     users.RoleType `json:"role"`
}

type RegisterResponse struct {
	Message string      `json:"message,omitempty"`
	User    *users.User `json:"user,omitempty"`
	Token   string      `json:"token,omitempty"`
}

// Login authenticates and, on success, saves token and user as the current
// session. A success response without both fields is returned together with
// an ErrInvalidSession error and nothing is saved.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	if err := validateStruct(creds); err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := c.Do(ctx, http.MethodPost, pathLogin, creds, &resp); err != nil {
		return nil, fmt.Errorf("[Client.Login] %w", err)
	}
	if resp.Token == "" || resp.User == nil {
		return &resp, apperrors.Wrapf(apperrors.ErrInvalidSession, "[Client.Login] response missing token or user")
	}
	if err := c.sessions.Save(ctx, resp.Token, resp.User); err != nil {
		return &resp, fmt.Errorf("[Client.Login] save session: %w", err)
	}
	log.Info().Str("user_id", resp.User.ID.String()).Str("role", string(resp.User.Role)).Msg("logged in")
	return &resp, nil
}

// Register creates an account. It does not log the new user in.
func (c *Client) Register(ctx context.Context, reg Registration) (*RegisterResponse, error) {
	if err := validateStruct(reg); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, pathRegister, registrationBody{
		Name:     reg.Name,
		Email:    reg.Email,
		Password: reg.Password,
		Role:     utils.ValueOr(reg.Role, users.RoleClient),
	})
	if err != nil {
		return nil, err
	}
	if tok := bearer(reg.AuthToken); tok != nil {
		tok.SetAuthHeader(req)
	}

	var resp RegisterResponse
	if err := c.send(req, &resp); err != nil {
		return nil, fmt.Errorf("[Client.Register] %w", err)
	}
	return &resp, nil
}
