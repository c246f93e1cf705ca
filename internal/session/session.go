// Package session tracks the signed-in user for the lifetime of the program.
package session

import (
	"fmt"
	"sync"

	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/shared"
)

// Session holds at most one signed-in user. The zero value is signed out.
type Session struct {
	mu   sync.RWMutex
	user *models.User
}

// New returns a signed-out session.
func New() *Session {
	return &Session{}
}

// Login replaces the current user.
func (s *Session) Login(user *models.User) error {
	if user == nil {
		return fmt.Errorf("%w: user is required", shared.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return nil
}

// Logout clears the current user. Logging out twice is a no-op.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// CurrentUser returns the signed-in user or [shared.ErrNotLoggedIn].
func (s *Session) CurrentUser() (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, shared.ErrNotLoggedIn
	}
	return s.user, nil
}

func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
