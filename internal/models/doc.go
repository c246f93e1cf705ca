// Package models defines domain entities and persistence interfaces for the PlayHarmony media library.
//
// Persistent entities:
//   - [User] : Students, teachers and admins, identified by email
//   - [Song] : Catalogue entries with title, author and release date
//   - [Playlist] : Ordered song collections owned by a user, including the per-user favourites list
//
// All entities embed a record providing ID, sequence, timestamps and soft delete support, and implement the
// [Model] interface. The [Repository] interface defines standard CRUD operations for database access.
package models
