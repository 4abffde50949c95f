// Package session models the single terminal session: one slot that is
// either anonymous or holds the authenticated user. The session is an
// injected value, never a package global, so a later move to multiple
// concurrent sessions does not require a redesign.
package session

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/dkarpov/teller/internal/bank"
	"github.com/dkarpov/teller/internal/domain"
)

type Session struct {
	mu   sync.Mutex
	user *domain.User
}

func New() *Session {
	return &Session{}
}

// Login authenticates against the bank and, on success, makes the user the
// active one. On failure the session keeps its previous state.
func (s *Session) Login(b *bank.Bank, userID int, pin string) (*domain.User, error) {
	user := b.Authenticate(userID, pin)
	if user == nil {
		return nil, fmt.Errorf("login: %w", domain.ErrAuthenticationFailed)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	zap.L().Info("user logged in", zap.Int("user_id", user.ID))
	return user, nil
}

// Logout returns the session to anonymous unconditionally.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Current returns the active user, if any.
func (s *Session) Current() (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.user != nil
}
