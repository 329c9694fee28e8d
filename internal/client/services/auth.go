package services

import (
	"context"

	"github.com/escalatorhq/escalator-cli/internal/client/api"
	"github.com/escalatorhq/escalator-cli/internal/client/models"
)

// SessionAPI is the session surface of the low-level client used by
// AuthService. *api.Client satisfies it.
type SessionAPI interface {
	Login(ctx context.Context, username, password string) (*api.Session, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) (*models.Usuario, error)
	RefreshSession(ctx context.Context) error
	SessionInfo(ctx context.Context) (*api.SessionInfo, error)
}

// AuthService handles the login/logout lifecycle for the CLI.
type AuthService struct {
	api SessionAPI
}

func NewAuthService(api SessionAPI) *AuthService {
	return &AuthService{api: api}
}

// Login authenticates and returns the signed-in user. The token pair and
// user record are persisted by the underlying client.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Usuario, error) {
	session, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	user := session.User
	return &user, nil
}

// Logout drops the stored session. Always succeeds.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.api.Logout(ctx)
}

// IsAuthenticated reports whether an access token is stored locally.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	return s.api.IsAuthenticated(ctx)
}

// CurrentUser returns the cached user record, nil when logged out.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.Usuario, error) {
	return s.api.CurrentUser(ctx)
}

// Refresh forces a token refresh ahead of expiry.
func (s *AuthService) Refresh(ctx context.Context) error {
	return s.api.RefreshSession(ctx)
}

// SessionInfo describes the stored session for status display.
func (s *AuthService) SessionInfo(ctx context.Context) (*api.SessionInfo, error) {
	return s.api.SessionInfo(ctx)
}
