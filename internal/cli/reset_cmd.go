package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ftgrandparis/auditft/internal/cli/formatter"
)

// newResetCmd discards the saved in-progress audit.
func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Supprimer l'audit en cours et repartir de zéro",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if !app.Store.HasWizard(ctx) {
				fmt.Println(formatter.Dim("Aucun audit en cours."))
				return nil
			}

			if app.IsInteractive() {
				confirm := false
				if err := confirmForm("Supprimer définitivement vos réponses en cours ?", &confirm).Run(); err != nil || !confirm {
					return nil
				}
			}

			if err := app.Store.ClearWizard(ctx); err != nil {
				return fmt.Errorf("clearing saved audit: %w", err)
			}
			fmt.Println(formatter.Success("Audit supprimé. Relancez auditft pour recommencer."))
			return nil
		},
	}
}
