// ABOUTME: Persistent bearer-token store for admin and user sessions
// ABOUTME: File-backed equivalent of the browser back-office's token storage

package token

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SessionType identifies which class of account a stored token belongs to
type SessionType string

const (
	SessionAdmin SessionType = "admin"
	SessionUser  SessionType = "user"
	SessionNone  SessionType = ""
)

// credentials is the on-disk shape of the token store
type credentials struct {
	AdminToken string `json:"admin_token,omitempty"`
	UserToken  string `json:"user_token,omitempty"`
}

// Store reads and writes bearer tokens under a single credentials file.
// At most one session of each type is held; the admin token is the only
// one the console acts on, the user slot exists so a mismatched session
// can be detected and cleared rather than silently used.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewStore creates a token store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// AdminToken returns the stored admin bearer token, or "" if absent
func (s *Store) AdminToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().AdminToken
}

// UserToken returns the stored regular-user token, or "" if absent
func (s *Store) UserToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().UserToken
}

// SaveAdminToken persists an admin bearer token, replacing any previous one
func (s *Store) SaveAdminToken(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := s.load()
	creds.AdminToken = tok
	return s.save(creds)
}

// SaveUserToken persists a regular-user bearer token
func (s *Store) SaveUserToken(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := s.load()
	creds.UserToken = tok
	return s.save(creds)
}

// IsAdminTokenValid decodes the stored admin token's expiry claim locally.
// False on missing, malformed, or expired tokens. No network call.
func (s *Store) IsAdminTokenValid() bool {
	tok := s.AdminToken()
	if tok == "" {
		return false
	}

	claims, err := DecodeClaims(tok)
	if err != nil {
		return false
	}
	return !claims.Expired(s.now())
}

// SessionType reports which session kind is active. The admin slot wins
// when both are present, mirroring the back-office's precedence.
func (s *Store) SessionType() SessionType {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := s.load()
	switch {
	case creds.AdminToken != "":
		return SessionAdmin
	case creds.UserToken != "":
		return SessionUser
	default:
		return SessionNone
	}
}

// LogoutAll clears every stored token for every session type.
// Idempotent: safe to call when nothing is stored.
func (s *Store) LogoutAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to remove credentials file", "path", s.path, "error", err)
	}
}

// load reads the credentials file. A missing or corrupted file is treated
// as an empty store, never surfaced as an error to the caller.
func (s *Store) load() credentials {
	var creds credentials

	data, err := os.ReadFile(s.path)
	if err != nil {
		return creds
	}
	if err := json.Unmarshal(data, &creds); err != nil {
		slog.Debug("ignoring corrupted credentials file", "path", s.path, "error", err)
		return credentials{}
	}
	return creds
}

func (s *Store) save(creds credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
