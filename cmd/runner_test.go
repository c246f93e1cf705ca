package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playharmony/internal/repositories"
	"github.com/desertthunder/playharmony/internal/shared"
	tu "github.com/desertthunder/playharmony/internal/testing"
)

// newTestRunner returns a runner over an in-memory store writing to a buffer.
func newTestRunner(t *testing.T) (*Runner, *repositories.Store, *bytes.Buffer) {
	t.Helper()
	store := tu.NewTestStore(t)
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Store:  store,
		Output: output,
		Logger: shared.NewLogger(&bytes.Buffer{}),
	})
	return runner, store, output
}

// runCLI runs args against the full command tree with a config file that does not exist.
func runCLI(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	missing := filepath.Join(t.TempDir(), "missing.toml")
	argv := append([]string{"playharmony", "--config", missing}, args...)
	return newApp(r).Run(context.Background(), argv)
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			store := tu.NewTestStore(t)

			runner := NewRunner(RunnerOpts{
				Config:     config,
				ConfigPath: "/test/path/config.toml",
				Store:      store,
				Logger:     logger,
				Output:     output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}

			got, err := runner.Store()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != store {
				t.Error("expected the provided store")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("Store opens the configured database once", func(t *testing.T) {
		config := shared.DefaultConfig()
		config.Database.Path = filepath.Join(t.TempDir(), "test.db")
		runner := NewRunner(RunnerOpts{Config: config, Output: &bytes.Buffer{}})
		defer runner.Close()

		first, err := runner.Store()
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		second, err := runner.Store()
		if err != nil {
			t.Fatalf("failed to reuse store: %v", err)
		}
		if first != second {
			t.Error("expected the store to be cached")
		}

		tu.AssertFileExists(t, config.Database.Path)

		if err := runner.Close(); err != nil {
			t.Errorf("unexpected close error: %v", err)
		}
		if err := runner.Close(); err != nil {
			t.Errorf("second close should be a no-op, got %v", err)
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if output.String() != expected {
				t.Errorf("expected %q, got %q", expected, output.String())
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			// channels cannot be marshaled to JSON
			err := runner.writeJSON(make(chan int), false)
			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		want := []string{"setup", "users", "songs", "playlists", "tui"}
		if len(commands) != len(want) {
			t.Fatalf("expected %d commands, got %d", len(want), len(commands))
		}
		for i, cmd := range commands {
			if cmd == nil {
				t.Fatalf("command at index %d is nil", i)
			}
			if cmd.Name != want[i] {
				t.Errorf("command %d: expected %s, got %s", i, want[i], cmd.Name)
			}
		}
	})
}

func TestConfigure(t *testing.T) {
	t.Run("missing file keeps defaults", func(t *testing.T) {
		runner, _, _ := newTestRunner(t)
		if err := runCLI(t, runner, "songs", "list"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if runner.config.Database.Path != shared.DefaultConfig().Database.Path {
			t.Errorf("expected default database path, got %s", runner.config.Database.Path)
		}
	})

	t.Run("loads file and log level", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		content := "[database]\npath = \"" + filepath.Join(dir, "x.db") + "\"\n\n[log]\nlevel = \"debug\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		runner, _, _ := newTestRunner(t)
		err := newApp(runner).Run(context.Background(), []string{"playharmony", "--config", path, "songs", "list"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if runner.configPath != path {
			t.Errorf("expected config path %s, got %s", path, runner.configPath)
		}
		if runner.config.Log.Level != "debug" {
			t.Errorf("expected debug level, got %s", runner.config.Log.Level)
		}
		if runner.logger.GetLevel() != log.DebugLevel {
			t.Errorf("expected logger at debug, got %v", runner.logger.GetLevel())
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[log]\nlevel = \"loud\"\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		runner, _, _ := newTestRunner(t)
		err := newApp(runner).Run(context.Background(), []string{"playharmony", "--config", path, "songs", "list"})
		if !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestSetupCommands(t *testing.T) {
	t.Run("config then database", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.toml")

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output, Logger: shared.NewLogger(&bytes.Buffer{})})
		defer runner.Close()

		err := newApp(runner).Run(context.Background(), []string{"playharmony", "--config", configPath, "setup", "config"})
		if err != nil {
			t.Fatalf("setup config failed: %v", err)
		}
		tu.AssertFileExists(t, configPath)

		runner.config.Database.Path = filepath.Join(dir, "app.db")
		if err := runner.SetupDatabase(context.Background(), nil); err != nil {
			t.Fatalf("setup database failed: %v", err)
		}
		tu.AssertFileExists(t, runner.config.Database.Path)

		if err := runner.SetupStatus(context.Background(), nil); err != nil {
			t.Fatalf("setup status failed: %v", err)
		}
		if !strings.Contains(output.String(), "0000  applied") {
			t.Errorf("expected applied migration in status, got:\n%s", output.String())
		}
	})

	t.Run("config refuses to overwrite", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[ui]\nlocale = \"es\"\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		runner, _, _ := newTestRunner(t)
		err := newApp(runner).Run(context.Background(), []string{"playharmony", "--config", configPath, "setup", "config"})
		if err == nil {
			t.Fatal("expected error for existing config file")
		}
	})
}

func TestUserCommands(t *testing.T) {
	t.Run("add list remove", func(t *testing.T) {
		runner, store, output := newTestRunner(t)

		if err := runCLI(t, runner, "users", "add", "--name", "Ana", "--surname", "Lopez", "--email", "ana@example.com", "--role", "teacher"); err != nil {
			t.Fatalf("users add failed: %v", err)
		}
		if err := runCLI(t, runner, "users", "add", "--name", "Bo", "--email", "bo@example.com"); err != nil {
			t.Fatalf("users add failed: %v", err)
		}
		if !strings.Contains(output.String(), "Created user #1 Ana Lopez <ana@example.com>") {
			t.Errorf("unexpected output:\n%s", output.String())
		}

		output.Reset()
		if err := runCLI(t, runner, "users", "list", "--role", "teacher", "--json"); err != nil {
			t.Fatalf("users list failed: %v", err)
		}

		var views []userView
		if err := json.Unmarshal(output.Bytes(), &views); err != nil {
			t.Fatalf("invalid JSON output: %v\n%s", err, output.String())
		}
		if len(views) != 1 || views[0].Email != "ana@example.com" || views[0].Role != "teacher" {
			t.Errorf("unexpected users: %+v", views)
		}

		if err := runCLI(t, runner, "users", "remove", "--email", "bo@example.com"); err != nil {
			t.Fatalf("users remove failed: %v", err)
		}
		users, _ := store.Users.List(map[string]any{})
		if len(users) != 1 {
			t.Errorf("expected 1 remaining user, got %d", len(users))
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		runner, store, _ := newTestRunner(t)
		tu.MustCreateUser(t, store, "ana@example.com", "Ana")

		err := runCLI(t, runner, "users", "add", "--name", "Ana", "--email", "ana@example.com")
		if !errors.Is(err, shared.ErrAlreadyExists) {
			t.Errorf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		runner, _, _ := newTestRunner(t)
		err := runCLI(t, runner, "users", "add", "--name", "Ana", "--email", "ana@example.com", "--role", "janitor")
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("remove needs one selector", func(t *testing.T) {
		runner, _, _ := newTestRunner(t)

		if err := runCLI(t, runner, "users", "remove"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
		if err := runCLI(t, runner, "users", "remove", "--id", "x", "--email", "a@b.co"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestSongCommands(t *testing.T) {
	runner, store, output := newTestRunner(t)

	if err := runCLI(t, runner, "songs", "add", "--title", "Clair de Lune", "--author", "Debussy", "--date", "1905"); err != nil {
		t.Fatalf("songs add failed: %v", err)
	}
	tu.MustCreateSong(t, store, "Gymnopedie", "Satie")

	output.Reset()
	if err := runCLI(t, runner, "songs", "list", "--query", "lune"); err != nil {
		t.Fatalf("songs list failed: %v", err)
	}
	if !strings.Contains(output.String(), "Songs (1)") || !strings.Contains(output.String(), "Clair de Lune") {
		t.Errorf("unexpected output:\n%s", output.String())
	}

	output.Reset()
	if err := runCLI(t, runner, "songs", "list", "--limit", "1"); err != nil {
		t.Fatalf("songs list failed: %v", err)
	}
	if strings.Contains(output.String(), "Gymnopedie") {
		t.Errorf("expected --limit to truncate, got:\n%s", output.String())
	}

	songs, _ := store.Songs.List(map[string]any{"author": "satie"})
	if err := runCLI(t, runner, "songs", "remove", "--id", songs[0].ID()); err != nil {
		t.Fatalf("songs remove failed: %v", err)
	}
	if err := runCLI(t, runner, "songs", "remove", "--id", songs[0].ID()); !errors.Is(err, shared.ErrNotFound) {
		t.Errorf("expected ErrNotFound removing twice, got %v", err)
	}
}

func TestPlaylistCommands(t *testing.T) {
	runner, store, output := newTestRunner(t)
	user := tu.MustCreateUser(t, store, "ana@example.com", "Ana")
	song := tu.MustCreateSong(t, store, "Clair de Lune", "Debussy")

	if err := runCLI(t, runner, "playlists", "create", "--email", "ana@example.com", "--name", "Study"); err != nil {
		t.Fatalf("playlists create failed: %v", err)
	}

	playlists, err := store.Playlists.List(map[string]any{"user_id": user.ID()})
	if err != nil || len(playlists) != 1 {
		t.Fatalf("expected one playlist, got %d (%v)", len(playlists), err)
	}
	id := playlists[0].ID()

	if err := runCLI(t, runner, "playlists", "add-song", "--id", id, "--song", song.ID()); err != nil {
		t.Fatalf("add-song failed: %v", err)
	}
	if err := runCLI(t, runner, "pl", "add-song", "--id", id, "--song", song.ID()); !errors.Is(err, shared.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
	if err := runCLI(t, runner, "pl", "add-song", "--id", id, "--song", "missing"); !errors.Is(err, shared.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown song, got %v", err)
	}

	output.Reset()
	if err := runCLI(t, runner, "playlists", "list", "--email", "ana@example.com"); err != nil {
		t.Fatalf("playlists list failed: %v", err)
	}
	if !strings.Contains(output.String(), "Study") || !strings.Contains(output.String(), "1 songs") {
		t.Errorf("unexpected output:\n%s", output.String())
	}

	base := filepath.Join(t.TempDir(), "study")
	if err := runCLI(t, runner, "playlists", "export", "--id", id, "--format", "md", "--output", base); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(tu.MustReadFile(t, base+".md"), "1. Debussy - Clair de Lune") {
		t.Error("export missing song line")
	}

	if err := runCLI(t, runner, "playlists", "remove-song", "--id", id, "--song", song.ID()); err != nil {
		t.Fatalf("remove-song failed: %v", err)
	}
	if songs, _ := store.Playlists.Songs(id); len(songs) != 0 {
		t.Errorf("expected empty playlist, got %d songs", len(songs))
	}

	dir := filepath.Join(t.TempDir(), "all")
	output.Reset()
	if err := runCLI(t, runner, "playlists", "export-all", "--email", "ana@example.com", "--format", "csv", "--dir", dir); err != nil {
		t.Fatalf("export-all failed: %v", err)
	}
	if !strings.Contains(output.String(), "1 exported, 0 failed") {
		t.Errorf("unexpected export-all output:\n%s", output.String())
	}
	tu.AssertFileExists(t, filepath.Join(dir, id+"_songs.csv"))
	tu.AssertFileExists(t, filepath.Join(dir, "export_manifest.json"))
}
