// Package session keeps the admin authentication token: in memory for the
// transport to attach to requests, and on disk so a restart does not force a
// new login. The token is opaque to the console except for its JWT expiry
// claim, which is read without signature verification (verification is the
// server's job).
package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/common"
)

// Store holds the current admin token. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
	email string
}

type fileState struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// NewStore returns a Store persisting to path. An existing session file is
// loaded eagerly; a missing or unreadable file simply leaves the store empty.
func NewStore(path string) *Store {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var fs fileState
	if err := json.Unmarshal(data, &fs); err != nil {
		return s
	}
	s.token = fs.Token
	s.email = fs.Email
	return s
}

// Set stores the token and owning email and persists them to the session
// file with owner-only permissions.
func (s *Store) Set(token, email string) error {
	s.mu.Lock()
	s.token = token
	s.email = email
	s.mu.Unlock()

	data, err := json.Marshal(fileState{Token: token, Email: email})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Token returns the current token, or "" when not logged in.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Email returns the email the session was opened for.
func (s *Store) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// Clear wipes the in-memory token and removes the session file.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.email = ""
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ExpiresAt reports the token's exp claim. Tokens without a parseable exp
// claim return common.ErrNoSession when empty, or a zero time with nil error
// (no expiry known) otherwise.
func (s *Store) ExpiresAt() (time.Time, error) {
	tok := s.Token()
	if tok == "" {
		return time.Time{}, common.ErrNoSession
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return time.Time{}, nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}

// Valid reports whether a token is present and not past its expiry.
func (s *Store) Valid(now time.Time) bool {
	exp, err := s.ExpiresAt()
	if err != nil {
		return false
	}
	if exp.IsZero() {
		return true
	}
	return now.Before(exp)
}
