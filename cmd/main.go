package main

import (
	"context"
	"os"

	"github.com/desertthunder/playharmony/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{Logger: logger})
	defer runner.Close()

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		runner.Close()
		logger.Fatalf("application error: %v", err)
	}
}

// newApp builds the root command. Without a subcommand it launches the TUI.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "playharmony",
		Usage:    "Manage users, songs and playlists from the terminal",
		Version:  "0.1.0",
		Flags:    []cli.Flag{configFlag()},
		Before:   r.Configure,
		Action:   r.TUI,
		Commands: r.register(),
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
		Sources: cli.EnvVars("PLAYHARMONY_CONFIG"),
	}
}
