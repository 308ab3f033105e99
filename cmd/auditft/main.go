package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/ftgrandparis/auditft/internal/backend"
	"github.com/ftgrandparis/auditft/internal/cli"
	"github.com/ftgrandparis/auditft/internal/config"
	"github.com/ftgrandparis/auditft/internal/poller"
	"github.com/ftgrandparis/auditft/internal/store"
	"github.com/ftgrandparis/auditft/internal/submit"
	"github.com/ftgrandparis/auditft/internal/webhook"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Erreur : %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	// State path: env var or default ~/.auditft/state.db
	statePath := cfg.StatePath
	if statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		statePath = filepath.Join(home, ".auditft", "state.db")
	}

	database, err := store.OpenDB(statePath)
	if err != nil {
		return fmt.Errorf("opening state database: %w", err)
	}
	defer database.Close()

	st := store.New(database, log)
	client := backend.NewClient(cfg.BackendURL, cfg.BackendKey, log)
	hooks := webhook.New(cfg.SubmissionWebhookURL, cfg.ContactWebhookURL, log)

	app := &cli.App{
		Config:   cfg,
		Backend:  client,
		Store:    st,
		Pipeline: submit.New(client, hooks, st, log),
		Poller:   poller.New(client, cfg.PollInterval, cfg.PollTimeout, log),
		Log:      log,
	}

	// Detect interactive terminal for the form-driven commands.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
