package models

import (
	"fmt"

	"github.com/desertthunder/playharmony/internal/shared"
)

// FavouritesName is the name of the playlist created for each user's favourite songs.
const FavouritesName = "Favourites"

// Playlist is an ordered collection of songs owned by a user.
//
// Songs are loaded separately through the playlist repository. Listing playlists only fills in the count.
type Playlist struct {
	record
	userID    string
	name      string
	favourite bool
	songs     []*Song
	songCount int
}

// NewPlaylist creates an empty playlist owned by userID.
func NewPlaylist(sequence int, userID, name string) *Playlist {
	return &Playlist{
		record: newRecord(sequence),
		userID: userID,
		name:   shared.NormalizeText(name),
	}
}

// NewFavourites creates the favourites playlist for userID.
func NewFavourites(userID string) *Playlist {
	p := NewPlaylist(0, userID, FavouritesName)
	p.favourite = true
	return p
}

func (p *Playlist) UserID() string  { return p.userID }
func (p *Playlist) Name() string    { return p.name }
func (p *Playlist) Favourite() bool { return p.favourite }
func (p *Playlist) Songs() []*Song  { return p.songs }
func (p *Playlist) SongCount() int  { return p.songCount }

func (p *Playlist) SetName(name string)         { p.name = shared.NormalizeText(name) }
func (p *Playlist) SetFavourite(favourite bool) { p.favourite = favourite }
func (p *Playlist) SetSongCount(n int)          { p.songCount = n }

// SetSongs replaces the loaded songs and the count with them.
func (p *Playlist) SetSongs(songs []*Song) {
	p.songs = songs
	p.songCount = len(songs)
}

// Validate checks the owner and name.
func (p *Playlist) Validate() error {
	if p.userID == "" {
		return fmt.Errorf("%w: playlist owner is required", shared.ErrInvalidInput)
	}
	if p.name == "" {
		return fmt.Errorf("%w: playlist name is required", shared.ErrInvalidInput)
	}
	return nil
}
