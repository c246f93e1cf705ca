package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/shared"
)

const songColumns = `id, sequence, title, author, date, photo, created_at, updated_at, deleted_at`

// SongRepository implements [models.Repository] for [models.Song] persistence.
type SongRepository struct {
	db *sql.DB
}

// NewSongRepository creates a new SongRepository with the given database connection
func NewSongRepository(db *sql.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Create inserts a new song into the database with generated ID and sequence
func (r *SongRepository) Create(song *models.Song) error {
	if err := song.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "songs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()

	query := `
		INSERT INTO songs (id, sequence, title, author, date, photo, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, song.Title(), song.Author(), song.Date(), song.Photo(), song.CreatedAt(), song.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert song: %w", err)
	}

	song.SetID(id)
	song.SetSequence(sequence)
	return nil
}

// Get retrieves a song by ID, excluding soft-deleted songs
func (r *SongRepository) Get(id string) (*models.Song, error) {
	song, err := scanSong(r.db.QueryRow(`SELECT `+songColumns+` FROM songs WHERE id = ? AND deleted_at IS NULL`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: song %s", shared.ErrNotFound, id)
	}
	return song, err
}

// Update modifies an existing song in the database
func (r *SongRepository) Update(song *models.Song) error {
	if err := song.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()

	query := `
		UPDATE songs
		SET title = ?, author = ?, date = ?, photo = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, song.Title(), song.Author(), song.Date(), song.Photo(), now, song.ID())
	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}

	if err := expectOne(result, fmt.Errorf("%w: song %s", shared.ErrNotFound, song.ID())); err != nil {
		return err
	}

	song.SetUpdatedAt(now)
	return nil
}

// Delete soft-deletes a song by ID.
//
// The song disappears from every playlist listing since those exclude deleted songs.
func (r *SongRepository) Delete(id string) error {
	result, err := r.db.Exec(`UPDATE songs SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	return expectOne(result, fmt.Errorf("%w: song %s", shared.ErrNotFound, id))
}

// List retrieves all songs matching the given criteria, excluding soft-deleted songs.
//
// Supported criteria: "author" (exact, case-insensitive) and "query" (substring of title or author).
func (r *SongRepository) List(criteria map[string]any) ([]*models.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE deleted_at IS NULL`
	args := []any{}

	if author, ok := criteria["author"].(string); ok && author != "" {
		query += " AND author = ? COLLATE NOCASE"
		args = append(args, shared.NormalizeText(author))
	}

	if q, ok := criteria["query"].(string); ok && q != "" {
		like := "%" + shared.NormalizeText(q) + "%"
		query += " AND (title LIKE ? OR author LIKE ?)"
		args = append(args, like, like)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows)
}

func collectSongs(rows *sql.Rows) ([]*models.Song, error) {
	var songs []*models.Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return songs, nil
}

// scanSong scans a row selected with songColumns into a [models.Song]
func scanSong(row scanner) (*models.Song, error) {
	var (
		id        string
		sequence  int
		title     string
		author    string
		date      string
		photo     string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := row.Scan(&id, &sequence, &title, &author, &date, &photo, &createdAt, &updatedAt, &deletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan song: %w", err)
	}

	song := models.NewSong(sequence, title, author)
	song.SetID(id)
	song.SetDate(date)
	song.SetPhoto(photo)
	song.SetCreatedAt(createdAt)
	song.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		song.SetDeletedAt(&deletedAt.Time)
	}

	return song, nil
}
