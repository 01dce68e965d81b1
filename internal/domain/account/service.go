// Package account handles the console operator's own session: signing in
// against the upstream auth endpoint, signing out, and reporting the
// current identity.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/caredash/caredash/internal/platform/session"
	"github.com/caredash/caredash/internal/platform/upstream"
)

type Service struct {
	up       *upstream.Client
	sessions *session.Store
	log      zerolog.Logger
}

func NewService(up *upstream.Client, sessions *session.Store, log zerolog.Logger) *Service {
	return &Service{up: up, sessions: sessions, log: log.With().Str("component", "account").Logger()}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login validates the credentials, exchanges them upstream for a token and
// installs it in the session store. Input problems come back as
// ValidationError naming the offending field, for inline display.
func (s *Service) Login(ctx context.Context, email, password string) (session.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return session.Session{}, &upstream.ValidationError{Field: "email", Message: "email is required"}
	}
	if !strings.Contains(email, "@") {
		return session.Session{}, &upstream.ValidationError{Field: "email", Message: "enter a valid email address"}
	}
	if password == "" {
		return session.Session{}, &upstream.ValidationError{Field: "password", Message: "password is required"}
	}

	var resp loginResponse
	if err := s.up.PostJSON(ctx, "login", "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return session.Session{}, err
	}
	if resp.Token == "" {
		return session.Session{}, fmt.Errorf("upstream login returned no token")
	}

	if err := s.sessions.Set(resp.Token); err != nil {
		return session.Session{}, err
	}
	s.log.Info().Str("email", email).Msg("signed in")

	current, _ := s.sessions.Current()
	return current, nil
}

// Logout clears the stored session.
func (s *Service) Logout(ctx context.Context) error {
	s.log.Info().Msg("signed out")
	return s.sessions.Clear()
}

// Whoami returns the current session identity.
func (s *Service) Whoami() (session.Session, bool) {
	return s.sessions.Current()
}
