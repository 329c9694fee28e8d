package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/escalatorhq/escalator-cli/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for a username and password and authenticates
// against the API. On success the token pair and user record are persisted
// locally, so the session survives restarts.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, username, password)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			printlnFn("Login failed:", apiErr.Message)
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.Username))
	return nil
}

// Logout drops the stored session. The device id is kept so repeated
// punches from this install stay correlated.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Status prints the current session: who is signed in and when the access
// token expires. Expiry here is informational; an expired token is renewed
// automatically on the next request.
func (a *App) Status(ctx context.Context) error {
	info, err := a.auth.SessionInfo(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to read session info", "error", err)
		return err
	}

	if !info.Authenticated {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn("Logged in as:", info.Username)
	if !info.ExpiresAt.IsZero() {
		printlnFn("Access token expires at:", info.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

// reportError prints a command failure, translating an expired session
// into a hint to log in again.
func (a *App) reportError(err error) {
	if errors.Is(err, api.ErrSessionExpired) {
		printlnFn("Session expired, please login again")
		return
	}
	printlnFn("Error:", err.Error())
}
