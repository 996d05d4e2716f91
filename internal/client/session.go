package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/workshift-app/workshift-go/internal/domain/user"
)

// Session is the persisted login state: the bearer token plus the profile it
// was issued for. Presence of both means authenticated; expiry is left to
// the server to enforce.
type Session struct {
	Token string       `json:"token"`
	User  user.Profile `json:"user"`
}

func (s *Session) IsAuthenticated() bool {
	return s.Token != "" && s.User.UserID != ""
}

// SessionStore reads and writes the session file under the user config dir.
type SessionStore struct {
	path string
}

func NewSessionStore() (*SessionStore, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config dir: %w", err)
	}
	return &SessionStore{
		path: filepath.Join(configDir, "workshift", "session.json"),
	}, nil
}

// NewSessionStoreAt uses an explicit file path instead of the default
// location.
func NewSessionStoreAt(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Save writes the session, creating the parent directory if needed. The
// file is user-only since it holds a bearer token.
func (s *SessionStore) Save(session Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads the session once at startup. A missing file is a valid
// logged-out state, returned as an empty session.
func (s *SessionStore) Load() (Session, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return Session{}, fmt.Errorf("failed to decode session file: %w", err)
	}
	return session, nil
}

// Clear removes the session file. Clearing an absent session is a no-op.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
