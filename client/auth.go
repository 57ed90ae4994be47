package client

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"khatapro-client/models"
	"khatapro-client/session"
	"khatapro-client/storage"
)

// Login authenticates with phone number and password. Persisting the
// session is baked into this method, not left to the caller: on
// success the token, business id and user profile land in the store
// and a session-established event is published.
//
// A 2xx response without a token is treated as a failure; the backend
// has returned such bodies before.
func (c *Client) Login(ctx context.Context, phoneNumber, password string) (models.AuthResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/auth/login", models.LoginRequest{
		PhoneNumber: phoneNumber,
		Password:    password,
	})
	if err != nil {
		return models.AuthResponse{}, err
	}
	auth, err := decode[models.AuthResponse](raw)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if auth.Token == "" {
		return models.AuthResponse{}, ErrNoToken
	}

	userData, err := json.Marshal(auth.Business)
	if err != nil {
		userData = nil
	}
	c.sessions.Establish(ctx, auth.Token, auth.BusinessID, string(userData), session.ReasonLogin)
	return auth, nil
}

// Register creates a business account. Unlike Login it deliberately
// does NOT persist the returned token: the onboarding flow holds the
// response and persists via CompleteSetup once setup finishes.
func (c *Client) Register(ctx context.Context, businessName, phoneNumber, password string) (models.AuthResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, "/api/auth/register", models.RegisterRequest{
		BusinessName: businessName,
		PhoneNumber:  phoneNumber,
		Password:     password,
	})
	if err != nil {
		return models.AuthResponse{}, err
	}
	return decode[models.AuthResponse](raw)
}

// CompleteSetup persists a registration's credentials and marks
// onboarding done. This is the deferred half of Register.
func (c *Client) CompleteSetup(ctx context.Context, auth models.AuthResponse) {
	userData, err := json.Marshal(auth.Business)
	if err != nil {
		userData = nil
	}
	c.sessions.Establish(ctx, auth.Token, auth.BusinessID, string(userData), session.ReasonSetup)
	if err := c.store.Set(ctx, storage.KeySetupCompleted, "true"); err != nil {
		c.logger.Warn("failed to persist setup flag", zap.Error(err))
	}
}

// Logout tells the server to drop the session, then clears local
// state whether or not that call worked. Logout is locally effective
// offline.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		c.logger.Warn("server logout failed, clearing local session anyway", zap.Error(err))
	}
	c.sessions.Clear(ctx, session.ReasonLogout)
	return nil
}
