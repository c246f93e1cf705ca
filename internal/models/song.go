package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/playharmony/internal/shared"
)

// Song is a track in the library catalogue.
type Song struct {
	record
	title  string
	author string
	date   string
	photo  string
}

// NewSong creates a song with the given title and author.
func NewSong(sequence int, title, author string) *Song {
	return &Song{
		record: newRecord(sequence),
		title:  shared.NormalizeText(title),
		author: shared.NormalizeText(author),
	}
}

func (s *Song) Title() string  { return s.title }
func (s *Song) Author() string { return s.author }
func (s *Song) Date() string   { return s.date }
func (s *Song) Photo() string  { return s.photo }

func (s *Song) SetTitle(title string)   { s.title = shared.NormalizeText(title) }
func (s *Song) SetAuthor(author string) { s.author = shared.NormalizeText(author) }
func (s *Song) SetDate(date string)     { s.date = strings.TrimSpace(date) }
func (s *Song) SetPhoto(photo string)   { s.photo = strings.TrimSpace(photo) }

// Validate checks that title and author are present.
func (s *Song) Validate() error {
	if s.title == "" {
		return fmt.Errorf("%w: title is required", shared.ErrInvalidInput)
	}
	if s.author == "" {
		return fmt.Errorf("%w: author is required", shared.ErrInvalidInput)
	}
	return nil
}
