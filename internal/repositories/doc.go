// Package repositories implements SQLite persistence for all domain entities.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
// All repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [UserRepository] : User account persistence with email-based lookups
//   - [SongRepository] : Song catalogue with author and title filters
//   - [PlaylistRepository] : Playlists and their ordered song membership, including per-user favourites
//
// [Store] bundles the three repositories over one connection and is what the CLI and the TUI screens receive.
//
// Lookups that match nothing return errors wrapping shared.ErrNotFound; duplicate emails and duplicate playlist
// entries return errors wrapping shared.ErrAlreadyExists.
package repositories
