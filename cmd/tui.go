package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/playharmony/internal/i18n"
	"github.com/desertthunder/playharmony/internal/nav"
	"github.com/desertthunder/playharmony/internal/session"
	"github.com/desertthunder/playharmony/internal/shared"
	"github.com/desertthunder/playharmony/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	if level, err := shared.ParseLogLevel(r.config.Log.Level); err == nil {
		shared.SetLogLevel(fileLogger, level)
	}
	r.SetLogger(fileLogger)

	store, err := r.Store()
	if err != nil {
		return err
	}

	locale := cmd.String("locale")
	if locale == "" {
		locale = r.config.UI.Locale
	}
	loc, err := i18n.New(locale)
	if err != nil {
		return err
	}

	app, err := ui.New(ui.Options{
		Users:     store.Users,
		Songs:     store.Songs,
		Playlists: store.Playlists,
		Session:   session.New(),
		Localizer: loc,
		Logger:    fileLogger,
	})
	if errors.Is(err, nav.ErrAlreadyBound) {
		fileLogger.Fatal("viewport already has a navigation controller", "error", err)
	}
	if err != nil {
		return err
	}

	fileLogger.Info("starting TUI", "locale", loc.Locale(), "database", r.config.Database.Path)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
