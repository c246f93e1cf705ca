package session

import (
	"errors"
	"testing"

	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/shared"
)

func TestSession(t *testing.T) {
	t.Run("starts signed out", func(t *testing.T) {
		s := New()
		if s.LoggedIn() {
			t.Fatal("new session should be signed out")
		}
		if _, err := s.CurrentUser(); !errors.Is(err, shared.ErrNotLoggedIn) {
			t.Errorf("expected ErrNotLoggedIn, got %v", err)
		}
	})

	t.Run("Login & Logout", func(t *testing.T) {
		s := New()
		user := models.NewUser(1, "ana@example.com", "Ana")

		if err := s.Login(user); err != nil {
			t.Fatalf("failed to login: %v", err)
		}
		if !s.LoggedIn() {
			t.Error("expected session to be signed in")
		}

		current, err := s.CurrentUser()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if current != user {
			t.Error("expected the logged in user")
		}

		s.Logout()
		s.Logout()
		if s.LoggedIn() {
			t.Error("expected session to be signed out")
		}
	})

	t.Run("Login replaces user", func(t *testing.T) {
		s := New()
		_ = s.Login(models.NewUser(1, "ana@example.com", "Ana"))
		bo := models.NewUser(2, "bo@example.com", "Bo")
		_ = s.Login(bo)

		current, _ := s.CurrentUser()
		if current != bo {
			t.Error("expected the second user to replace the first")
		}
	})

	t.Run("Login nil", func(t *testing.T) {
		if err := New().Login(nil); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}
