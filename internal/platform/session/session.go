// Package session holds the console's process-wide session state: the
// bearer token for the upstream platform API and the identity extracted
// from it. The lifecycle is explicit (Init, Set, Clear) and the state is
// persisted to local storage under a configurable key prefix, so the
// upstream client receives the current session through an injected store
// instead of ambient globals.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// Session is the persisted session value.
type Session struct {
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the token carried an exp claim that has passed.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Store owns the current session. All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	current *Session

	dir    string
	prefix string
	log    zerolog.Logger
}

// NewStore creates a store persisting under dir with the given key prefix.
func NewStore(dir, prefix string, log zerolog.Logger) *Store {
	if prefix == "" {
		prefix = "caredash"
	}
	return &Store{dir: dir, prefix: prefix, log: log.With().Str("component", "session").Logger()}
}

func (st *Store) file() string {
	return filepath.Join(st.dir, st.prefix+".session")
}

// Init loads any persisted session. A missing file is not an error; a
// corrupt one is discarded with a warning so the console starts logged out
// rather than failing.
func (st *Store) Init() error {
	data, err := os.ReadFile(st.file())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session state: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		st.log.Warn().Err(err).Msg("discarding corrupt session state")
		return st.Clear()
	}
	st.mu.Lock()
	st.current = &s
	st.mu.Unlock()
	return nil
}

// Set installs a new token, extracting identity claims from it, and
// persists the result. The token is not cryptographically verified here --
// the upstream backend issued it and remains the authority; the claims are
// only used for display.
func (st *Store) Set(token string) error {
	s := Session{Token: token}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err == nil {
		if sub, err := claims.GetSubject(); err == nil {
			s.Subject = sub
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			s.ExpiresAt = exp.Time
		}
		if v, ok := claims["name"].(string); ok {
			s.Name = v
		}
		if v, ok := claims["email"].(string); ok {
			s.Email = v
		}
		if v, ok := claims["role"].(string); ok {
			s.Role = v
		}
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	if err := os.MkdirAll(st.dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(st.file(), data, 0o600); err != nil {
		return fmt.Errorf("persist session state: %w", err)
	}

	st.mu.Lock()
	st.current = &s
	st.mu.Unlock()
	return nil
}

// Current returns the active session, if any.
func (st *Store) Current() (Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.current == nil {
		return Session{}, false
	}
	return *st.current, true
}

// Clear drops the session from memory and local storage. Called on logout
// and on any upstream 401.
func (st *Store) Clear() error {
	st.mu.Lock()
	st.current = nil
	st.mu.Unlock()
	if err := os.Remove(st.file()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session state: %w", err)
	}
	return nil
}
