// Package auth gates the dashboard flows. The credential check sits
// behind a small Verifier interface so it can be swapped without
// touching flow logic; the default is a single configured
// username/password pair. Logins are tracked as opaque tokens in an
// in-memory session set with no expiry.
package auth

import (
	"crypto/subtle"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned by Login on a failed check.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Verifier checks a credential pair.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticVerifier accepts exactly one configured pair.
type StaticVerifier struct {
	Username string
	Password string
}

func (v StaticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.Password)) == 1
	return userOK && passOK
}

// Service issues and checks session tokens.
type Service struct {
	verifier Verifier

	mu       sync.RWMutex
	sessions map[string]struct{}
}

// NewService builds a Service around the given Verifier.
func NewService(v Verifier) *Service {
	return &Service{
		verifier: v,
		sessions: make(map[string]struct{}),
	}
}

// Login verifies the credentials and returns a new session token.
func (s *Service) Login(username, password string) (string, error) {
	if !s.verifier.Verify(username, password) {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = struct{}{}
	s.mu.Unlock()
	return token, nil
}

// Valid reports whether the token belongs to a live session.
func (s *Service) Valid(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[token]
	return ok
}

// Logout drops the session. Unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
