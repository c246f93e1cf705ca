// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}

func limitFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "limit",
		Usage: "Maximum number of rows to print (defaults to ui.page_size)",
	}
}

// setupCommand prepares configuration and the database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and database",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write the example configuration to --config",
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Create the database and run migrations",
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Revert the latest migration",
				Action: r.SetupRollback,
			},
			{
				Name:   "status",
				Usage:  "Show applied migrations",
				Action: r.SetupStatus,
			},
		},
	}
}

// usersCommand handles user management
func usersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Manage users",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List users",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "role",
						Usage: "Only users with this role (student, teacher, admin)",
					},
					limitFlag(),
				}, jsonFlags()...),
				Action: r.UsersList,
			},
			{
				Name:  "add",
				Usage: "Create a user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "First name", Required: true},
					&cli.StringFlag{Name: "email", Usage: "Email address", Required: true},
					&cli.StringFlag{Name: "surname", Usage: "Surname"},
					&cli.StringFlag{Name: "category", Usage: "Free-form category"},
					&cli.StringFlag{Name: "photo", Usage: "Path to a profile photo"},
					&cli.StringFlag{Name: "role", Usage: "student, teacher or admin", Value: "student"},
				},
				Action: r.UsersAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a user by ID or email",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "User ID"},
					&cli.StringFlag{Name: "email", Usage: "User email"},
				},
				Action: r.UsersRemove,
			},
		},
	}
}

// songsCommand handles the song catalog
func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "Manage the song catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List songs",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "author", Usage: "Only songs by this author"},
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Search titles and authors"},
					limitFlag(),
				}, jsonFlags()...),
				Action: r.SongsList,
			},
			{
				Name:  "add",
				Usage: "Create a song",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "Song title", Required: true},
					&cli.StringFlag{Name: "author", Usage: "Song author", Required: true},
					&cli.StringFlag{Name: "date", Usage: "Release date or year"},
					&cli.StringFlag{Name: "photo", Usage: "Path to a cover image"},
				},
				Action: r.SongsAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a song",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "Song ID", Required: true},
				},
				Action: r.SongsRemove,
			},
		},
	}
}

// playlistsCommand handles playlists
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pl"},
		Usage:   "Manage playlists",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List a user's playlists",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "Owner email", Required: true},
				}, jsonFlags()...),
				Action: r.PlaylistsList,
			},
			{
				Name:  "create",
				Usage: "Create a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "Owner email", Required: true},
					&cli.StringFlag{Name: "name", Usage: "Playlist name", Required: true},
				},
				Action: r.PlaylistsCreate,
			},
			{
				Name:  "add-song",
				Usage: "Append a song to a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "Playlist ID", Required: true},
					&cli.StringFlag{Name: "song", Usage: "Song ID", Required: true},
				},
				Action: r.PlaylistsAddSong,
			},
			{
				Name:  "remove-song",
				Usage: "Remove a song from a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "Playlist ID", Required: true},
					&cli.StringFlag{Name: "song", Usage: "Song ID", Required: true},
				},
				Action: r.PlaylistsRemoveSong,
			},
			{
				Name:  "export",
				Usage: "Export a playlist to csv, md or txt",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "Playlist ID", Required: true},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "csv, md or txt", Value: "txt"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output path without extension (defaults to the playlist ID)"},
				},
				Action: r.PlaylistsExport,
			},
			{
				Name:  "export-all",
				Usage: "Export every playlist of a user concurrently",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "Owner email", Required: true},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "csv, md or txt", Value: "txt"},
					&cli.StringFlag{Name: "dir", Aliases: []string{"o"}, Usage: "Output directory (defaults to playlists_export_{epoch})"},
					&cli.IntFlag{Name: "workers", Usage: "Concurrent writers", Value: 4},
				},
				Action: r.PlaylistsExportAll,
			},
		},
	}
}

// tuiCommand launches the terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Launch the interactive terminal UI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "locale",
				Usage: "UI language (en, es); defaults to ui.locale",
			},
		},
		Action: r.TUI,
	}
}
