package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/shared"
	"github.com/urfave/cli/v3"
)

type songView struct {
	ID       string `json:"id"`
	Sequence int    `json:"sequence"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Date     string `json:"date,omitempty"`
	Photo    string `json:"photo,omitempty"`
}

func newSongView(s *models.Song) songView {
	return songView{
		ID:       s.ID(),
		Sequence: s.Sequence(),
		Title:    s.Title(),
		Author:   s.Author(),
		Date:     s.Date(),
		Photo:    s.Photo(),
	}
}

// SongsList prints the catalog, optionally filtered by author or a search query.
func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	store, err := r.Store()
	if err != nil {
		return err
	}

	songs, err := store.Songs.List(map[string]any{
		"author": cmd.String("author"),
		"query":  cmd.String("query"),
	})
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}
	songs = limit(songs, int(cmd.Int("limit")), r.config.UI.PageSize)

	if cmd.Bool("json") {
		views := make([]songView, len(songs))
		for i, s := range songs {
			views[i] = newSongView(s)
		}
		return r.writeJSON(views, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Songs (%d)", len(songs)))
	for _, s := range songs {
		r.writePlain("#%-4d %-32s %-24s %s\n", s.Sequence(), s.Title(), s.Author(), s.Date())
	}
	return nil
}

// SongsAdd creates a song from flags.
func (r *Runner) SongsAdd(ctx context.Context, cmd *cli.Command) error {
	store, err := r.Store()
	if err != nil {
		return err
	}

	song := models.NewSong(0, cmd.String("title"), cmd.String("author"))
	song.SetDate(cmd.String("date"))
	song.SetPhoto(cmd.String("photo"))

	if err := store.Songs.Create(song); err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}

	r.logger.Info("song created", "id", song.ID(), "title", song.Title())
	r.writePlain("✓ Created song #%d %s - %s (%s)\n", song.Sequence(), song.Author(), song.Title(), song.ID())
	return nil
}

// SongsRemove soft-deletes a song.
func (r *Runner) SongsRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")
	if id == "" {
		return fmt.Errorf("%w: --id", shared.ErrMissingArgument)
	}

	store, err := r.Store()
	if err != nil {
		return err
	}

	if err := store.Songs.Delete(id); err != nil {
		return fmt.Errorf("failed to remove song: %w", err)
	}

	r.logger.Info("song removed", "id", id)
	r.writePlain("✓ Removed song %s\n", id)
	return nil
}
