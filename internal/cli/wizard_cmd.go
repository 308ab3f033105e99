package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ftgrandparis/auditft/internal/cli/formatter"
	"github.com/ftgrandparis/auditft/internal/store"
	"github.com/ftgrandparis/auditft/internal/submit"
	"github.com/ftgrandparis/auditft/internal/wizard"
)

// errNotInteractive is returned by form-driven commands outside a terminal.
var errNotInteractive = errors.New("cette commande nécessite un terminal interactif")

// Navigation choices shown after each completed step form.
const (
	navContinue = "continue"
	navBack     = "back"
	navQuit     = "quit"
)

// runWizard drives the audit wizard from resume prompt to submission and
// the results flow. Progress is saved after every step, so an interrupt or
// a crash never loses answers.
func runWizard(ctx context.Context, app *App) error {
	if !app.IsInteractive() {
		return errNotInteractive
	}

	m, err := restoreOrStart(ctx, app)
	if err != nil {
		return err
	}
	return runWizardFrom(ctx, app, m)
}

// runWizardFrom walks the machine from its current position to submission.
func runWizardFrom(ctx context.Context, app *App, m *wizard.Machine) error {
	for {
		step := m.Current()
		fmt.Println()
		fmt.Println(formatter.StepHeader(m.Index(), len(m.VisibleSteps()), step.Title))

		if err := stepForm(step.ID, m.Answers).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				saveProgress(ctx, app, m)
				fmt.Println(formatter.Dim("Audit interrompu. Vos réponses sont sauvegardées, relancez auditft pour reprendre."))
				return nil
			}
			return err
		}

		// Answers may have changed which steps exist.
		m.Reclamp()
		saveProgress(ctx, app, m)

		switch askNavigation(m.Index() > 0) {
		case navQuit:
			fmt.Println(formatter.Dim("Vos réponses sont sauvegardées, relancez auditft pour reprendre."))
			return nil
		case navBack:
			m.Previous()
			continue
		}

		errs, done := m.Next()
		if len(errs) > 0 {
			for _, e := range errs {
				fmt.Println(formatter.Failure(e.Message))
			}
			continue
		}
		if done {
			break
		}
	}

	stop := formatter.StartSpinner("Envoi de votre audit…")
	result, err := app.Pipeline.Submit(ctx, m.Answers)
	stop()
	if err != nil {
		fmt.Println(formatter.Failure("L'envoi a échoué. Vos réponses restent sauvegardées, réessayez plus tard."))
		return err
	}

	return runResultsFlow(ctx, app, m.Answers.Email, result)
}

// restoreOrStart offers to resume a saved session when one exists.
func restoreOrStart(ctx context.Context, app *App) (*wizard.Machine, error) {
	if !app.Store.HasWizard(ctx) {
		return wizard.New(), nil
	}

	resume := true
	if err := confirmForm("Un audit est en cours. Reprendre là où vous en étiez ?", &resume).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, errors.New("audit interrompu")
		}
		return nil, err
	}
	if !resume {
		if err := app.Store.ClearWizard(ctx); err != nil {
			app.Log.Warn().Err(err).Msg("clearing saved wizard state")
		}
		return wizard.New(), nil
	}
	st := app.Store.LoadWizard(ctx)
	return wizard.Restore(st.Answers, st.StepIndex), nil
}

func saveProgress(ctx context.Context, app *App, m *wizard.Machine) {
	err := app.Store.SaveWizard(ctx, &store.WizardState{Answers: m.Answers, StepIndex: m.Index()})
	if err != nil {
		app.Log.Warn().Err(err).Msg("saving wizard progress")
	}
}

// askNavigation asks what to do after a completed step form. Aborting the
// prompt counts as save-and-quit.
func askNavigation(canGoBack bool) string {
	options := []huh.Option[string]{
		huh.NewOption("Continuer", navContinue),
	}
	if canGoBack {
		options = append(options, huh.NewOption("← Étape précédente", navBack))
	}
	options = append(options, huh.NewOption("Sauvegarder et quitter", navQuit))

	choice := navContinue
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(options...).
				Value(&choice),
		),
	).WithTheme(auditHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return navQuit
	}
	return choice
}

// runResultsFlow prints the submission outcome: a stage-appropriate
// summary, then one call to action. Validated members are offered the
// deep-dive questions feeding the recommendation generation; everyone else
// a callback from the team.
func runResultsFlow(ctx context.Context, app *App, email string, result *submit.Result) error {
	fmt.Println()
	fmt.Println(formatter.Success("Votre audit a bien été envoyé."))
	fmt.Printf("%s %s\n", formatter.Dim("Référence de votre dossier :"), formatter.Bold(result.ProjectID))

	if !result.WebhookDelivered {
		fmt.Println(formatter.Warning("Le traitement automatique n'a pas pu être déclenché. Nos équipes prendront le relais."))
	}

	fmt.Println()
	if result.EarlyStage {
		fmt.Println("Votre projet est en phase de lancement : c'est le bon moment pour structurer les fondations.")
	} else {
		fmt.Println("Votre projet est déjà bien avancé : l'audit met l'accent sur l'accélération.")
	}

	if result.ValidatedMember {
		fmt.Println(formatter.Success("Adhésion French Tech Grand Paris confirmée."))
		want := true
		err := confirmForm("Quelques questions de plus permettent de générer vos recommandations personnalisées. Continuer ?", &want).Run()
		if err != nil || !want {
			fmt.Println(formatter.Dim("Vous pourrez approfondir plus tard avec : auditft details " + result.ProjectID))
			return nil
		}
		return runDetailsFlow(ctx, app, result.ProjectID, email)
	}

	want := true
	if err := confirmForm("Souhaitez-vous être recontacté par un membre de l'équipe ?", &want).Run(); err != nil || !want {
		return nil
	}
	if err := app.Pipeline.RequestContact(ctx, result.ProjectID); err != nil {
		fmt.Println(formatter.Failure("La demande de contact a échoué, réessayez avec : auditft contact " + result.ProjectID))
		return err
	}
	fmt.Println(formatter.Success("C'est noté, un membre de l'équipe vous recontactera."))
	return nil
}
