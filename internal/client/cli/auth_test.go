package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escalatorhq/escalator-cli/internal/client/api"
	"github.com/escalatorhq/escalator-cli/internal/client/models"
	"github.com/escalatorhq/escalator-cli/internal/client/services"
	"github.com/escalatorhq/escalator-cli/internal/logging"
)

type fakeSessionAPI struct {
	loginUser string
	loginPass string
	loginErr  error
	session   *api.Session

	loggedOut bool
	authed    bool
	user      *models.Usuario
	info      *api.SessionInfo
}

func (f *fakeSessionAPI) Login(ctx context.Context, username, password string) (*api.Session, error) {
	f.loginUser, f.loginPass = username, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeSessionAPI) Logout(ctx context.Context) error {
	f.loggedOut = true
	return nil
}

func (f *fakeSessionAPI) IsAuthenticated(ctx context.Context) bool { return f.authed }

func (f *fakeSessionAPI) CurrentUser(ctx context.Context) (*models.Usuario, error) {
	return f.user, nil
}

func (f *fakeSessionAPI) RefreshSession(ctx context.Context) error { return nil }

func (f *fakeSessionAPI) SessionInfo(ctx context.Context) (*api.SessionInfo, error) {
	return f.info, nil
}

func stubInputs(t *testing.T, username, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	var lines []string
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func newTestApp(f *fakeSessionAPI) *App {
	return &App{
		auth:   services.NewAuthService(f),
		log:    logging.Nop(),
		reader: bufio.NewReader(strings.NewReader("")),
	}
}

func TestLogin_Success(t *testing.T) {
	stubInputs(t, "maria.silva", "s3cret")
	out := captureOutput(t)

	fake := &fakeSessionAPI{
		session: &api.Session{User: models.Usuario{Username: "maria.silva"}},
	}
	a := newTestApp(fake)

	err := a.Login(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "maria.silva", fake.loginUser)
	assert.Equal(t, "s3cret", fake.loginPass)
	require.NotEmpty(t, *out)
	assert.Contains(t, (*out)[len(*out)-1], "Welcome, maria.silva!")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	stubInputs(t, "maria.silva", "wrong")
	out := captureOutput(t)

	fake := &fakeSessionAPI{
		loginErr: &api.APIError{Status: 401, Message: "invalid credentials"},
	}
	a := newTestApp(fake)

	err := a.Login(context.Background())
	require.Error(t, err)
	require.NotEmpty(t, *out)
	assert.Contains(t, (*out)[len(*out)-1], "invalid credentials")
}

func TestLogout(t *testing.T) {
	out := captureOutput(t)

	fake := &fakeSessionAPI{}
	a := newTestApp(fake)

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, fake.loggedOut)
	require.NotEmpty(t, *out)
	assert.Contains(t, (*out)[0], "Logged out")
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		info *api.SessionInfo
		want string
	}{
		{
			name: "not logged in",
			info: &api.SessionInfo{},
			want: "Not logged in",
		},
		{
			name: "logged in with expiry",
			info: &api.SessionInfo{
				Authenticated: true,
				Username:      "admin",
				ExpiresAt:     time.Now().Add(time.Hour),
			},
			want: "Logged in as: admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(t)

			a := newTestApp(&fakeSessionAPI{info: tt.info})
			require.NoError(t, a.Status(context.Background()))

			require.NotEmpty(t, *out)
			assert.Contains(t, (*out)[0], tt.want)
		})
	}
}

func TestReportError_SessionExpired(t *testing.T) {
	out := captureOutput(t)

	a := newTestApp(&fakeSessionAPI{})
	a.reportError(api.ErrSessionExpired)

	require.NotEmpty(t, *out)
	assert.Contains(t, (*out)[0], "please login again")
}
