package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/playharmony/internal/formatter"
	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/shared"
	"github.com/desertthunder/playharmony/internal/tasks"
	"github.com/urfave/cli/v3"
)

type playlistView struct {
	ID        string     `json:"id"`
	Sequence  int        `json:"sequence"`
	Name      string     `json:"name"`
	Favourite bool       `json:"favourite"`
	Songs     []songView `json:"songs"`
}

func newPlaylistView(p *models.Playlist) playlistView {
	songs := make([]songView, len(p.Songs()))
	for i, s := range p.Songs() {
		songs[i] = newSongView(s)
	}
	return playlistView{
		ID:        p.ID(),
		Sequence:  p.Sequence(),
		Name:      p.Name(),
		Favourite: p.Favourite(),
		Songs:     songs,
	}
}

// PlaylistsList prints the playlists owned by --email.
func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	store, err := r.Store()
	if err != nil {
		return err
	}

	owner, err := store.Users.GetByEmail(cmd.String("email"))
	if err != nil {
		return err
	}

	playlists, err := store.Playlists.List(map[string]any{"user_id": owner.ID()})
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	for _, p := range playlists {
		songs, err := store.Playlists.Songs(p.ID())
		if err != nil {
			return fmt.Errorf("failed to load songs of %s: %w", p.ID(), err)
		}
		p.SetSongs(songs)
	}

	if cmd.Bool("json") {
		views := make([]playlistView, len(playlists))
		for i, p := range playlists {
			views[i] = newPlaylistView(p)
		}
		return r.writeJSON(views, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Playlists of %s (%d)", owner.FullName(), len(playlists)))
	for _, p := range playlists {
		name := p.Name()
		if p.Favourite() {
			name = "★ " + name
		}
		r.writePlain("#%-4d %-32s %3d songs  %s\n", p.Sequence(), name, p.SongCount(), p.ID())
	}
	return nil
}

// PlaylistsCreate creates a playlist for --email.
func (r *Runner) PlaylistsCreate(ctx context.Context, cmd *cli.Command) error {
	store, err := r.Store()
	if err != nil {
		return err
	}

	owner, err := store.Users.GetByEmail(cmd.String("email"))
	if err != nil {
		return err
	}

	playlist := models.NewPlaylist(0, owner.ID(), cmd.String("name"))
	if err := store.Playlists.Create(playlist); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	r.logger.Info("playlist created", "id", playlist.ID(), "user", owner.ID())
	r.writePlain("✓ Created playlist %s (%s)\n", playlist.Name(), playlist.ID())
	return nil
}

// PlaylistsAddSong appends --song to playlist --id.
func (r *Runner) PlaylistsAddSong(ctx context.Context, cmd *cli.Command) error {
	playlistID, songID := cmd.String("id"), cmd.String("song")
	if playlistID == "" || songID == "" {
		return fmt.Errorf("%w: --id and --song", shared.ErrMissingArgument)
	}

	store, err := r.Store()
	if err != nil {
		return err
	}

	if _, err := store.Songs.Get(songID); err != nil {
		return err
	}
	if err := store.Playlists.AddSong(playlistID, songID); err != nil {
		return err
	}

	r.logger.Info("song added", "playlist", playlistID, "song", songID)
	r.writePlain("✓ Added song %s to playlist %s\n", songID, playlistID)
	return nil
}

// PlaylistsRemoveSong removes --song from playlist --id.
func (r *Runner) PlaylistsRemoveSong(ctx context.Context, cmd *cli.Command) error {
	playlistID, songID := cmd.String("id"), cmd.String("song")
	if playlistID == "" || songID == "" {
		return fmt.Errorf("%w: --id and --song", shared.ErrMissingArgument)
	}

	store, err := r.Store()
	if err != nil {
		return err
	}

	if err := store.Playlists.RemoveSong(playlistID, songID); err != nil {
		return err
	}

	r.writePlain("✓ Removed song %s from playlist %s\n", songID, playlistID)
	return nil
}

// PlaylistsExport writes a playlist to CSV, Markdown or text files.
func (r *Runner) PlaylistsExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	store, err := r.Store()
	if err != nil {
		return err
	}

	playlist, err := store.Playlists.Get(cmd.String("id"))
	if err != nil {
		return err
	}

	owner, err := store.Users.Get(playlist.UserID())
	if err != nil {
		r.logger.Warn("playlist owner not found", "user", playlist.UserID(), "error", err)
		owner = nil
	}

	result, err := formatter.Write(playlist, owner, format, cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("playlist exported", "id", playlist.ID(), "format", format, "files", len(result.Files))
	for _, f := range result.Files {
		r.writePlain("✓ Wrote %s\n", f)
	}
	return nil
}

// PlaylistsExportAll exports every playlist owned by --email into --dir.
func (r *Runner) PlaylistsExportAll(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	store, err := r.Store()
	if err != nil {
		return err
	}

	owner, err := store.Users.GetByEmail(cmd.String("email"))
	if err != nil {
		return err
	}

	playlists, err := store.Playlists.List(map[string]any{"user_id": owner.ID()})
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}
	if len(playlists) == 0 {
		r.writePlain("No playlists to export for %s\n", owner.Email())
		return nil
	}

	ids := make([]string, len(playlists))
	for i, p := range playlists {
		ids[i] = p.ID()
	}

	progress := make(chan tasks.ProgressUpdate, len(ids)+2)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Debug(update.Message, "phase", update.Phase)
		}
	}()

	exporter := tasks.NewExporter(store.Playlists, store.Users, r.logger)
	result, err := exporter.BulkExport(ctx, progress, ids, tasks.BulkExportOpts{
		Format:     format,
		OutputDir:  cmd.String("dir"),
		NumWorkers: int(cmd.Int("workers")),
	})
	close(progress)
	<-done
	if err != nil {
		return err
	}

	r.writePlainHeader(fmt.Sprintf("Export of %s", owner.FullName()))
	for _, res := range result.Results {
		if res.Success {
			r.writePlain("✓ %-32s %d files\n", res.PlaylistName, len(res.Files))
		} else {
			r.writePlain("✗ %-32s %s\n", res.PlaylistName, res.ErrorText)
		}
	}
	r.writePlainln("%d exported, %d failed. Manifest: %s", result.SuccessfulExports, result.FailedExports, result.ManifestPath)
	return nil
}
