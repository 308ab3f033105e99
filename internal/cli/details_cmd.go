package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ftgrandparis/auditft/internal/cli/formatter"
	"github.com/ftgrandparis/auditft/internal/domain"
	"github.com/ftgrandparis/auditft/internal/form"
)

// newDetailsCmd runs the deep-dive form for an already submitted audit.
func newDetailsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "details <référence>",
		Short: "Répondre aux questions approfondies de votre audit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return errNotInteractive
			}
			return runDetailsFlow(cmd.Context(), app, args[0], "")
		},
	}
}

// runDetailsFlow collects and submits the supplementary answers, then
// offers to follow the generation live.
func runDetailsFlow(ctx context.Context, app *App, projectID, email string) error {
	if m := app.Store.Marker(ctx, projectID); m != nil {
		fmt.Println(formatter.Success("Vos réponses approfondies sont déjà enregistrées."))
		follow := true
		if err := confirmForm("Suivre la génération de vos recommandations ?", &follow).Run(); err != nil || !follow {
			return nil
		}
		return runWait(ctx, app, projectID)
	}

	sup := &domain.SupplementaryAnswers{}
	for {
		if err := supplementaryForm(&email, sup).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println(formatter.Dim("Questions interrompues. Reprenez avec : auditft details " + projectID))
				return nil
			}
			return err
		}

		var failed bool
		if !strings.Contains(email, "@") {
			fmt.Println(formatter.Failure("Une adresse email valide est requise"))
			failed = true
		}
		for _, e := range form.ValidateSupplementary(sup) {
			fmt.Println(formatter.Failure(e.Message))
			failed = true
		}
		if !failed {
			break
		}
	}

	stop := formatter.StartSpinner("Enregistrement de vos réponses…")
	err := app.Pipeline.SubmitSupplementary(ctx, projectID, email, sup)
	stop()
	if err != nil {
		fmt.Println(formatter.Failure("L'enregistrement a échoué, réessayez avec : auditft details " + projectID))
		return err
	}
	fmt.Println(formatter.Success("Merci ! La génération de vos recommandations démarre."))

	follow := true
	if err := confirmForm("Suivre la génération en direct ? (environ 2 minutes)", &follow).Run(); err != nil || !follow {
		fmt.Println(formatter.Dim("Suivez-la plus tard avec : auditft wait " + projectID))
		return nil
	}
	return runWait(ctx, app, projectID)
}
