package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"khatapro-client/config"
	"khatapro-client/session"
	"khatapro-client/storage"
)

// Client is the single HTTP client for the KhataPro backend. It is
// injected everywhere it is needed; there is no package-level
// instance.
type Client struct {
	baseURL     string
	http        *http.Client
	store       storage.Store
	sessions    *session.Manager
	logger      *zap.Logger
	downloadDir string
}

func New(cfg *config.Config, store storage.Store, sessions *session.Manager, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.API.Timeout,
			// Redirects are errors here, not something to follow: the
			// backend never legitimately redirects an API call.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		store:       store,
		sessions:    sessions,
		logger:      logger,
		downloadDir: cfg.Storage.DownloadDir,
	}
}

// envelope is the backend's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do performs one JSON request and returns the data payload. There is
// exactly one attempt per call; retrying is the caller's business.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req)
}

// send attaches the auth header, executes the request and applies the
// shared response handling (2xx-only success, 401 invalidation).
func (c *Client) send(req *http.Request) (json.RawMessage, error) {
	c.attachToken(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return c.unwrap(req.Context(), resp.StatusCode, raw)
}

// attachToken reads the token from the store before every outgoing
// request. An absent token or a failed read sends the request
// unauthenticated; login and register work exactly that way.
func (c *Client) attachToken(req *http.Request) {
	token, err := c.store.Get(req.Context(), storage.KeyAuthToken)
	if err != nil || token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func (c *Client) unwrap(ctx context.Context, status int, raw []byte) (json.RawMessage, error) {
	var env envelope
	// Tolerate non-envelope bodies: message stays empty, data falls
	// back to the raw body.
	_ = json.Unmarshal(raw, &env)

	if status < 200 || status > 299 {
		if status == http.StatusUnauthorized && isTokenInvalidMessage(env.Message) {
			c.logger.Info("session invalidated by server", zap.String("message", env.Message))
			c.sessions.Invalidate(ctx)
		}
		return nil, &APIError{StatusCode: status, Message: env.Message, Body: raw}
	}
	if env.Data != nil {
		return env.Data, nil
	}
	return raw, nil
}

// isTokenInvalidMessage decides whether a 401 means the stored session
// is dead. A 401 for any other reason (wrong password at login, say)
// must leave stored session data alone, because this check runs for
// every request including login attempts.
func isTokenInvalidMessage(message string) bool {
	m := strings.ToLower(message)
	if !strings.Contains(m, "token") {
		return false
	}
	return strings.Contains(m, "invalid") || strings.Contains(m, "expired")
}

// decode unmarshals a data payload into a typed record.
func decode[T any](raw json.RawMessage) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
