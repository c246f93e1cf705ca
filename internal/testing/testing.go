// package testing contains shared testing utilities
package testing

import (
	"database/sql"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/repositories"
	"github.com/desertthunder/playharmony/internal/shared"
)

// NewTestDB creates an in-memory SQLite database with migrations applied, closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// NewTestStore returns a [repositories.Store] over a fresh in-memory database.
func NewTestStore(t *testing.T) *repositories.Store {
	t.Helper()
	return repositories.NewStore(NewTestDB(t))
}

// MustCreateUser inserts a user with the given email and name.
func MustCreateUser(t *testing.T, store *repositories.Store, email, name string) *models.User {
	t.Helper()
	user := models.NewUser(0, email, name)
	if err := store.Users.Create(user); err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

// MustCreateSong inserts a song with the given title and author.
func MustCreateSong(t *testing.T, store *repositories.Store, title, author string) *models.Song {
	t.Helper()
	song := models.NewSong(0, title, author)
	if err := store.Songs.Create(song); err != nil {
		t.Fatalf("failed to create song %s: %v", title, err)
	}
	return song
}

// MustCreatePlaylist inserts a playlist owned by user.
func MustCreatePlaylist(t *testing.T, store *repositories.Store, user *models.User, name string) *models.Playlist {
	t.Helper()
	playlist := models.NewPlaylist(0, user.ID(), name)
	if err := store.Playlists.Create(playlist); err != nil {
		t.Fatalf("failed to create playlist %s: %v", name, err)
	}
	return playlist
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
