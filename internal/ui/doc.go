// Package ui implements the interactive terminal interface on top of bubbletea.
//
// [App] is the root model. It stacks a [Header], the screen currently shown by the
// navigation viewport and a help bar. Screens never switch each other directly; they
// call the shared [nav.Controller] held in [Env]:
//  1. [Lobby] : Root menu, rebuilt each time the history empties
//  2. [Login] : Sign in by email
//  3. [UserList] and [UserForm] : Manage users
//  4. [SongList] and [SongForm] : Manage the song catalog
//  5. [PlaylistList], [PlaylistForm], [PlaylistDetail] and [SongPicker] : Manage the signed-in user's playlists
//
// Forms finish with Clear followed by Push of their list so that back never returns into a
// submitted form. Screens that implement [nav.Activator] reload when a screen above them is popped.
//
// Global keys (esc, ctrl+l, ctrl+o, ctrl+c) are handled by [App]; everything else goes to the visible screen.
package ui
