package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/escalatorhq/escalator-cli/internal/client/credentials"
	"github.com/escalatorhq/escalator-cli/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the payload of a successful login or refresh.
type Session struct {
	AccessToken  string         `json:"access"`
	RefreshToken string         `json:"refresh"`
	User         models.Usuario `json:"user"`
}

// SessionInfo describes the locally stored session. Authenticated is a
// presence check only: the token may have expired server-side, which is
// healed lazily by the refresh flow on the next request.
type SessionInfo struct {
	Authenticated bool
	Username      string
	ExpiresAt     time.Time
}

// Login exchanges credentials for a token pair via POST /token/ and
// persists the session. Tokens are written before the user record so an
// interrupted write still leaves a usable token pair behind.
//
// Login bypasses the refresh-and-retry pipeline: a 401 here means bad
// credentials, not an expired session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, &UnknownError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token/", bytes.NewReader(payload))
	if err != nil {
		return nil, &UnknownError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(body, "invalid credentials")}
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, &UnknownError{Err: fmt.Errorf("failed to decode login response: %w", err)}
	}

	if err := c.storeSession(ctx, &session); err != nil {
		return nil, &UnknownError{Err: fmt.Errorf("failed to persist session: %w", err)}
	}

	c.log.Info(ctx, "login succeeded", "username", session.User.Username)
	return &session, nil
}

// storeSession writes the session fields in token-then-user order.
func (c *Client) storeSession(ctx context.Context, s *Session) error {
	if err := c.store.Set(ctx, credentials.KeyAccessToken, s.AccessToken); err != nil {
		return err
	}
	if err := c.store.Set(ctx, credentials.KeyRefreshToken, s.RefreshToken); err != nil {
		return err
	}
	userData, err := json.Marshal(s.User)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, credentials.KeyUserData, string(userData))
}

// Logout removes the stored session. Best effort: storage failures are
// logged and swallowed, so logout always succeeds from the caller's
// perspective.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.Remove(ctx, credentials.SessionKeys...); err != nil {
		c.log.Warn(ctx, "failed to remove stored session on logout", "error", err)
	}
	return nil
}

// IsAuthenticated reports whether an access token is currently stored. It
// does not validate the token against the server.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	token, err := c.store.Get(ctx, credentials.KeyAccessToken)
	if err != nil {
		c.log.Warn(ctx, "failed to read access token", "error", err)
		return false
	}
	return token != ""
}

// CurrentUser returns the cached user record, or nil when none is stored
// or the cached payload is unreadable.
func (c *Client) CurrentUser(ctx context.Context) (*models.Usuario, error) {
	data, err := c.store.Get(ctx, credentials.KeyUserData)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}
	var user models.Usuario
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

// RefreshSession forces a token refresh outside the lazy 401 flow. On
// failure the stored session is cleared and ErrSessionExpired is returned.
func (c *Client) RefreshSession(ctx context.Context) error {
	if err := c.refreshAccessToken(ctx); err != nil {
		c.log.Warn(ctx, "manual token refresh failed, dropping session", "error", err)
		c.clearSession(ctx)
		return ErrSessionExpired
	}
	return nil
}

// SessionInfo inspects the stored session. The access token's expiry is
// read with an unverified JWT parse: the server remains the authority on
// validity, this is for display only.
func (c *Client) SessionInfo(ctx context.Context) (*SessionInfo, error) {
	token, err := c.store.Get(ctx, credentials.KeyAccessToken)
	if err != nil {
		return nil, err
	}

	info := &SessionInfo{}
	if token == "" {
		return info, nil
	}
	info.Authenticated = true

	if user, err := c.CurrentUser(ctx); err == nil && user != nil {
		info.Username = user.Username
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			info.ExpiresAt = exp.Time
		}
	}
	return info, nil
}
