package formatter

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/shared"
	th "github.com/desertthunder/playharmony/internal/testing"
)

func testPlaylist() (*models.Playlist, *models.User) {
	owner := models.NewUser(1, "ana@example.com", "Ana")
	owner.SetSurname("Lopez")
	owner.SetID("user1")

	first := models.NewSong(1, "Clair de Lune", "Debussy")
	first.SetID("song1")
	first.SetDate("1905")
	first.SetPhoto("covers/clair.png")

	second := models.NewSong(2, "Gymnopedie No. 1", "Satie")
	second.SetID("song2")

	playlist := models.NewPlaylist(7, owner.ID(), "Study, Vol. 1")
	playlist.SetID("test123")
	playlist.SetSongs([]*models.Song{first, second})
	return playlist, owner
}

func TestExporters(t *testing.T) {
	playlist, owner := testPlaylist()

	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(playlist)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
		}
		if lines[0] != "Position,ID,Title,Author,Date" {
			t.Errorf("CSV missing headers, got: %s", lines[0])
		}
		if lines[1] != "1,song1,Clair de Lune,Debussy,1905" {
			t.Errorf("unexpected first row: %s", lines[1])
		}
		if !strings.HasPrefix(lines[2], "2,song2,") {
			t.Errorf("songs should keep playlist order, got: %s", lines[2])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		t.Run("with owner", func(t *testing.T) {
			data, err := ExportToMarkdown(playlist, owner)
			if err != nil {
				t.Fatalf("ExportToMarkdown failed: %v", err)
			}

			output := string(data)
			for _, want := range []string{
				"# Study, Vol. 1",
				"**Owner**: Ana Lopez <ana@example.com>",
				"**Songs**: 2",
				"1. Debussy - Clair de Lune (1905)",
				"![Clair de Lune](covers/clair.png)",
				"2. Satie - Gymnopedie No. 1\n",
			} {
				if !strings.Contains(output, want) {
					t.Errorf("Markdown missing %q, got:\n%s", want, output)
				}
			}
		})

		t.Run("without owner", func(t *testing.T) {
			data, err := ExportToMarkdown(playlist, nil)
			if err != nil {
				t.Fatalf("ExportToMarkdown failed: %v", err)
			}
			if strings.Contains(string(data), "**Owner**") {
				t.Error("Markdown should omit the owner line")
			}
		})
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(playlist)
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "Playlist: Study, Vol. 1\nSongs: 2\n\n") {
			t.Errorf("unexpected text header:\n%s", output)
		}
		if !strings.Contains(output, "2. Satie - Gymnopedie No. 1") {
			t.Errorf("text missing second song")
		}
	})

	t.Run("ToMetadataJSON", func(t *testing.T) {
		data, err := ToMetadataJSON(playlist, owner)
		if err != nil {
			t.Fatalf("ToMetadataJSON failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{`"id": "test123"`, `"owner": "ana@example.com"`, `"songs": 2`, `"sequence": 7`} {
			if !strings.Contains(output, want) {
				t.Errorf("metadata missing %s, got:\n%s", want, output)
			}
		}
	})
}

func TestParseFormat(t *testing.T) {
	tc := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "csv", want: FormatCSV},
		{in: "md", want: FormatMarkdown},
		{in: "markdown", want: FormatMarkdown},
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tc {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	playlist, owner := testPlaylist()

	t.Run("CSV with default path", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		result, err := Write(playlist, owner, FormatCSV, "")
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		if len(result.Files) != 2 {
			t.Fatalf("expected songs and metadata files, got %v", result.Files)
		}
		if result.Files[0] != "test123_songs.csv" || result.Files[1] != "test123_metadata.json" {
			t.Errorf("unexpected files: %v", result.Files)
		}

		for _, f := range result.Files {
			th.AssertFileExists(t, f)
		}
		if !strings.Contains(th.MustReadFile(t, result.Files[0]), "Clair de Lune") {
			t.Error("CSV missing song data")
		}
	})

	t.Run("Markdown with custom path", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "exports", "study")

		result, err := Write(playlist, owner, FormatMarkdown, base)
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		if len(result.Files) != 1 || result.Files[0] != base+".md" {
			t.Fatalf("unexpected files: %v", result.Files)
		}
		if !strings.Contains(th.MustReadFile(t, result.Files[0]), "# Study, Vol. 1") {
			t.Error("Markdown file missing title")
		}
	})

	t.Run("Text", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "study")

		result, err := Write(playlist, nil, FormatText, base)
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		th.AssertFileExists(t, base+"_songs.txt")
		if len(result.Files) != 1 {
			t.Errorf("expected one file, got %v", result.Files)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Write(playlist, nil, Format("xml"), filepath.Join(t.TempDir(), "study"))
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}
