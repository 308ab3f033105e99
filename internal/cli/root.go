// Package cli implements the auditft terminal commands: the interactive
// audit wizard and the follow-up commands around generation and contact.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ftgrandparis/auditft/internal/backend"
	"github.com/ftgrandparis/auditft/internal/config"
	"github.com/ftgrandparis/auditft/internal/poller"
	"github.com/ftgrandparis/auditft/internal/store"
	"github.com/ftgrandparis/auditft/internal/submit"
)

// App holds references to everything the CLI commands operate on.
type App struct {
	Config   *config.Config
	Backend  *backend.Client
	Store    *store.Store
	Pipeline *submit.Pipeline
	Poller   *poller.Poller
	Log      zerolog.Logger

	// IsInteractive reports whether stdin is a terminal; the wizard and
	// other form-driven commands refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "auditft" command and registers all
// subcommands against the provided App. Running the bare command starts
// the audit wizard.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "auditft",
		Short: "Audit entrepreneurial French Tech Grand Paris",
		Long: "Réalisez votre audit entrepreneurial : un questionnaire guidé, " +
			"des recommandations personnalisées et un rapport complet.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWizard(cmd.Context(), app)
		},
	}

	root.AddCommand(
		newResumeCmd(app),
		newDetailsCmd(app),
		newWaitCmd(app),
		newRecommendationsCmd(app),
		newContactCmd(app),
		newResetCmd(app),
	)

	return root
}
