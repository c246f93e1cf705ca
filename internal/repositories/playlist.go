package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/shared"
)

// playlistColumns includes the number of active songs so listings need no per-playlist query.
const playlistColumns = `id, sequence, user_id, name, favourite, created_at, updated_at, deleted_at,
	(SELECT COUNT(*) FROM playlist_songs ps JOIN songs s ON s.id = ps.song_id
	 WHERE ps.playlist_id = playlists.id AND s.deleted_at IS NULL) AS song_count`

// PlaylistRepository implements models.Repository[*models.Playlist] and manages playlist membership.
//
// Handles playlist CRUD operations with soft delete support and per-user lookups.
type PlaylistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new PlaylistRepository with the given database connection
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create inserts a new playlist into the database with generated ID and sequence
func (r *PlaylistRepository) Create(playlist *models.Playlist) error {
	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "playlists")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()

	query := `
		INSERT INTO playlists (id, sequence, user_id, name, favourite, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, playlist.UserID(), playlist.Name(), playlist.Favourite(), playlist.CreatedAt(), playlist.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert playlist: %w", err)
	}

	playlist.SetID(id)
	playlist.SetSequence(sequence)
	return nil
}

// Get retrieves a playlist by ID with its songs, excluding soft-deleted playlists
func (r *PlaylistRepository) Get(id string) (*models.Playlist, error) {
	playlist, err := scanPlaylist(r.db.QueryRow(`SELECT `+playlistColumns+` FROM playlists WHERE id = ? AND deleted_at IS NULL`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: playlist %s", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	songs, err := r.Songs(id)
	if err != nil {
		return nil, err
	}
	playlist.SetSongs(songs)

	return playlist, nil
}

// Favourites returns the user's favourites playlist, creating it on first use.
func (r *PlaylistRepository) Favourites(userID string) (*models.Playlist, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE user_id = ? AND favourite = 1 AND deleted_at IS NULL`

	playlist, err := scanPlaylist(r.db.QueryRow(query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		playlist = models.NewFavourites(userID)
		if err := r.Create(playlist); err != nil {
			return nil, fmt.Errorf("failed to create favourites: %w", err)
		}
		return playlist, nil
	}
	if err != nil {
		return nil, err
	}

	songs, err := r.Songs(playlist.ID())
	if err != nil {
		return nil, err
	}
	playlist.SetSongs(songs)

	return playlist, nil
}

// Update renames an existing playlist
func (r *PlaylistRepository) Update(playlist *models.Playlist) error {
	if err := playlist.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()

	result, err := r.db.Exec(`UPDATE playlists SET name = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`, playlist.Name(), now, playlist.ID())
	if err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}

	if err := expectOne(result, fmt.Errorf("%w: playlist %s", shared.ErrNotFound, playlist.ID())); err != nil {
		return err
	}

	playlist.SetUpdatedAt(now)
	return nil
}

// Delete soft-deletes a playlist by ID
func (r *PlaylistRepository) Delete(id string) error {
	result, err := r.db.Exec(`UPDATE playlists SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	return expectOne(result, fmt.Errorf("%w: playlist %s", shared.ErrNotFound, id))
}

// List retrieves all playlists matching the given criteria, excluding soft-deleted playlists.
//
// Supported criteria: "user_id" (string) and "favourite" (bool). Songs are not loaded.
func (r *PlaylistRepository) List(criteria map[string]any) ([]*models.Playlist, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE deleted_at IS NULL`
	args := []any{}

	if userID, ok := criteria["user_id"].(string); ok && userID != "" {
		query += " AND user_id = ?"
		args = append(args, userID)
	}

	if favourite, ok := criteria["favourite"].(bool); ok {
		query += " AND favourite = ?"
		args = append(args, favourite)
	}

	query += " ORDER BY favourite DESC, sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []*models.Playlist
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return playlists, nil
}

// AddSong appends a song to the end of a playlist.
func (r *PlaylistRepository) AddSong(playlistID, songID string) error {
	query := `
		INSERT INTO playlist_songs (playlist_id, song_id, position, added_at)
		SELECT ?, ?, COALESCE(MAX(position), 0) + 1, ? FROM playlist_songs WHERE playlist_id = ?
	`

	if _, err := r.db.Exec(query, playlistID, songID, time.Now(), playlistID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: song %s already in playlist %s", shared.ErrAlreadyExists, songID, playlistID)
		}
		return fmt.Errorf("failed to add song to playlist: %w", err)
	}

	return nil
}

// RemoveSong removes a song from a playlist.
func (r *PlaylistRepository) RemoveSong(playlistID, songID string) error {
	result, err := r.db.Exec(`DELETE FROM playlist_songs WHERE playlist_id = ? AND song_id = ?`, playlistID, songID)
	if err != nil {
		return fmt.Errorf("failed to remove song from playlist: %w", err)
	}

	return expectOne(result, fmt.Errorf("%w: song %s in playlist %s", shared.ErrNotFound, songID, playlistID))
}

// Songs lists the active songs of a playlist in insertion order.
func (r *PlaylistRepository) Songs(playlistID string) ([]*models.Song, error) {
	query := `
		SELECT s.id, s.sequence, s.title, s.author, s.date, s.photo, s.created_at, s.updated_at, s.deleted_at
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		WHERE ps.playlist_id = ? AND s.deleted_at IS NULL
		ORDER BY ps.position ASC
	`

	rows, err := r.db.Query(query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist songs: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows)
}

// scanPlaylist scans a row selected with playlistColumns into a [models.Playlist]
func scanPlaylist(row scanner) (*models.Playlist, error) {
	var (
		id        string
		sequence  int
		userID    string
		name      string
		favourite bool
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
		songCount int
	)

	err := row.Scan(&id, &sequence, &userID, &name, &favourite, &createdAt, &updatedAt, &deletedAt, &songCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan playlist: %w", err)
	}

	playlist := models.NewPlaylist(sequence, userID, name)
	playlist.SetID(id)
	playlist.SetFavourite(favourite)
	playlist.SetSongCount(songCount)
	playlist.SetCreatedAt(createdAt)
	playlist.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		playlist.SetDeletedAt(&deletedAt.Time)
	}

	return playlist, nil
}
