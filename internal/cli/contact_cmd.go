package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ftgrandparis/auditft/internal/cli/formatter"
)

// newContactCmd flags a submitted audit for a callback from the team.
func newContactCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "contact <référence>",
		Short: "Demander à être recontacté par l'équipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]

			if app.IsInteractive() {
				want := true
				if err := confirmForm("Demander à être recontacté pour ce dossier ?", &want).Run(); err != nil || !want {
					return nil
				}
			}

			if err := app.Pipeline.RequestContact(cmd.Context(), projectID); err != nil {
				return err
			}
			fmt.Println(formatter.Success("C'est noté, un membre de l'équipe vous recontactera."))
			return nil
		},
	}
}
