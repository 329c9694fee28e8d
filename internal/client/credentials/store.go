// Package credentials persists the authenticated session (tokens and the
// cached user record) in a local key-value store. The API client re-reads
// tokens per request instead of caching them in memory, so the store is the
// single owner of session state.
package credentials

import (
	"context"

	"github.com/google/uuid"
)

// Logical keys used by the client.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUserData     = "user_data"
	KeyDeviceID     = "device_id"
)

// SessionKeys are the keys that make up one session. They are written on
// login and cleared together on logout or irrecoverable refresh failure.
// KeyDeviceID is deliberately not included: it survives logout.
var SessionKeys = []string{KeyAccessToken, KeyRefreshToken, KeyUserData}

// Store is the persistent key-value store backing the session.
//
// Contract:
//   - Get returns "" with a nil error for an absent key.
//   - Set overwrites (last writer wins).
//   - Remove deletes the given keys; missing keys are not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
}

// DeviceID returns this install's stable device identifier, generating and
// persisting one on first use. It is attached to punch registrations so the
// server can spot duplicate submissions from the same device.
func DeviceID(ctx context.Context, s Store) (string, error) {
	id, err := s.Get(ctx, KeyDeviceID)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := s.Set(ctx, KeyDeviceID, id); err != nil {
		return "", err
	}
	return id, nil
}
