package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The store keeps two independent entries, mirroring the hm_token and
// hm_user keys the web client uses in local storage.
const (
	tokenFile = "hm_token"
	userFile  = "hm_user.json"
)

// Store persists the session as two files under a state directory
// (typically ~/.hiremind). A stored token is trusted until the backend
// rejects it; there is no client-side expiry.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created lazily
// on the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the persisted session. Any missing or malformed entry is
// treated as "no session": Load returns (nil, nil) and clears nothing.
func (s *Store) Load() (*Session, error) {
	tokenBytes, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read token: %w", err)
	}

	userBytes, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read user: %w", err)
	}

	token := strings.TrimSpace(string(tokenBytes))
	var user User
	if token == "" || json.Unmarshal(userBytes, &user) != nil || user.Email == "" {
		// Malformed entries are absent, not errors.
		return nil, nil
	}

	return &Session{Token: token, User: user}, nil
}

// Save writes both entries. The token file is user-readable only.
func (s *Store) Save(sess *Session) error {
	if !sess.Valid() {
		return fmt.Errorf("refusing to save invalid session")
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(sess.Token), 0600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}

	data, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), data, 0644); err != nil {
		return fmt.Errorf("write user: %w", err)
	}

	return nil
}

// Clear removes both entries unconditionally. Missing files are not errors.
func (s *Store) Clear() error {
	var errs []error
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
