package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ftgrandparis/auditft/internal/cli/formatter"
	"github.com/ftgrandparis/auditft/internal/wizard"
)

// newResumeCmd picks a saved audit back up without the resume prompt.
func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Reprendre l'audit là où vous en étiez",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if !app.IsInteractive() {
				return errNotInteractive
			}
			if !app.Store.HasWizard(ctx) {
				fmt.Println(formatter.Dim("Aucun audit en cours. Lancez auditft pour commencer."))
				return nil
			}
			st := app.Store.LoadWizard(ctx)
			return runWizardFrom(ctx, app, wizard.Restore(st.Answers, st.StepIndex))
		},
	}
}
