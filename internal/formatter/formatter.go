// package formatter provides functions to export playlist data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
	FormatText     Format = "txt"
)

// ParseFormat accepts csv, md/markdown and txt/text.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "csv":
		return FormatCSV, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "txt", "text", "":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, s)
}

// Metadata is the JSON summary written next to a CSV export.
type Metadata struct {
	ID        string    `json:"id"`
	Sequence  int       `json:"sequence"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner"`
	Favourite bool      `json:"favourite"`
	Songs     int       `json:"songs"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExportToCSV converts a playlist's songs to CSV format with columns: Position, ID, Title, Author, Date
func ExportToCSV(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "ID", "Title", "Author", "Date"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, song := range playlist.Songs() {
		record := []string{
			strconv.Itoa(i + 1),
			song.ID(),
			song.Title(),
			song.Author(),
			song.Date(),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist to Markdown. owner may be nil.
func ExportToMarkdown(playlist *models.Playlist, owner *models.User) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", playlist.Name())

	if owner != nil {
		fmt.Fprintf(&buf, "**Owner**: %s <%s>\n", owner.FullName(), owner.Email())
	}
	fmt.Fprintf(&buf, "**Songs**: %d\n\n", playlist.SongCount())

	buf.WriteString("## Songs\n\n")
	for i, song := range playlist.Songs() {
		datePart := ""
		if song.Date() != "" {
			datePart = fmt.Sprintf(" (%s)", song.Date())
		}
		fmt.Fprintf(&buf, "%d. %s - %s%s\n", i+1, song.Author(), song.Title(), datePart)
		if song.Photo() != "" {
			fmt.Fprintf(&buf, "   ![%s](%s)\n", song.Title(), song.Photo())
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a playlist to plain text format
func ExportToText(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Playlist: %s\n", playlist.Name())
	fmt.Fprintf(&buf, "Songs: %d\n\n", playlist.SongCount())

	for i, song := range playlist.Songs() {
		fmt.Fprintf(&buf, "%d. %s - %s\n", i+1, song.Author(), song.Title())
	}

	return buf.Bytes(), nil
}

// ToMetadataJSON generates a JSON representation of playlist metadata (without songs)
func ToMetadataJSON(playlist *models.Playlist, owner *models.User) ([]byte, error) {
	meta := Metadata{
		ID:        playlist.ID(),
		Sequence:  playlist.Sequence(),
		Name:      playlist.Name(),
		Owner:     playlist.UserID(),
		Favourite: playlist.Favourite(),
		Songs:     playlist.SongCount(),
		CreatedAt: playlist.CreatedAt(),
		UpdatedAt: playlist.UpdatedAt(),
	}
	if owner != nil {
		meta.Owner = owner.Email()
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return data, nil
}

// ExportResult lists the files written by [Write].
type ExportResult struct {
	Files []string
}

// Write exports playlist in format under base, a file path without extension.
//
// Defaults to the playlist ID as base. CSV exports also write {base}_metadata.json.
func Write(playlist *models.Playlist, owner *models.User, format Format, base string) (*ExportResult, error) {
	if base == "" {
		base = playlist.ID()
	}

	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	result := &ExportResult{}

	var (
		data []byte
		path string
		err  error
	)
	switch format {
	case FormatCSV:
		data, err = ExportToCSV(playlist)
		path = base + "_songs.csv"
	case FormatMarkdown:
		data, err = ExportToMarkdown(playlist, owner)
		path = base + ".md"
	case FormatText:
		data, err = ExportToText(playlist)
		path = base + "_songs.txt"
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s: %w", format, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s file: %w", format, err)
	}
	result.Files = append(result.Files, path)

	if format == FormatCSV {
		metadataJSON, err := ToMetadataJSON(playlist, owner)
		if err != nil {
			return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
		}

		metadataFile := base + "_metadata.json"
		if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
			return nil, fmt.Errorf("failed to write metadata file: %w", err)
		}
		result.Files = append(result.Files, metadataFile)
	}

	return result, nil
}
