package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ftgrandparis/auditft/internal/cli/formatter"
	"github.com/ftgrandparis/auditft/internal/poller"
)

// newWaitCmd follows the recommendation generation of a project until both
// artifacts are ready.
func newWaitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wait <référence>",
		Short: "Suivre la génération de vos recommandations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return runWaitPlain(cmd.Context(), app, args[0])
			}
			return runWait(cmd.Context(), app, args[0])
		},
	}
}

// runWait re-fires the generation webhook if the last run never managed to,
// then watches the status until completion, timeout, or the user leaves.
func runWait(ctx context.Context, app *App, projectID string) error {
	app.Pipeline.EnsureNotified(ctx, projectID)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newWaitModel(projectID, app.Poller.Watch(watchCtx, projectID), cancel)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("running generation watch: %w", err)
	}

	w := final.(waitModel)
	switch {
	case w.completed:
		if err := app.Store.ClearMarker(ctx, projectID); err != nil {
			app.Log.Warn().Err(err).Str("project_id", projectID).Msg("clearing generation marker")
		}
		fmt.Println(formatter.Success("Vos recommandations sont prêtes !"))
		fmt.Println(formatter.Dim("Consultez-les avec : auditft recommendations " + projectID))
	case w.timedOut:
		fmt.Println(formatter.Warning("La génération prend plus de temps que prévu. Relancez auditft wait " + projectID + " dans quelques minutes."))
	default:
		fmt.Println(formatter.Dim("Suivi interrompu. Reprenez avec : auditft wait " + projectID))
	}
	return nil
}

// runWaitPlain is the non-interactive variant used outside a terminal: no
// live view, just a blocking wait and a final line.
func runWaitPlain(ctx context.Context, app *App, projectID string) error {
	app.Pipeline.EnsureNotified(ctx, projectID)

	if _, err := app.Poller.Await(ctx, projectID); err != nil {
		if errors.Is(err, poller.ErrTimeout) {
			fmt.Println("Génération toujours en cours, relancez auditft wait " + projectID + " plus tard.")
		}
		return err
	}
	if err := app.Store.ClearMarker(ctx, projectID); err != nil {
		app.Log.Warn().Err(err).Str("project_id", projectID).Msg("clearing generation marker")
	}
	fmt.Println("Recommandations prêtes : auditft recommendations " + projectID)
	return nil
}

type waitEventMsg poller.Event

// waitClosedMsg signals that the watch channel closed without a terminal
// event, which happens on context cancellation.
type waitClosedMsg struct{}

// waitModel is the live view of a generation watch.
type waitModel struct {
	projectID string
	events    <-chan poller.Event
	cancel    context.CancelFunc

	spin        spinner.Model
	profileDone bool
	pdfDone     bool
	completed   bool
	timedOut    bool
	quitting    bool
}

func newWaitModel(projectID string, events <-chan poller.Event, cancel context.CancelFunc) waitModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return waitModel{
		projectID: projectID,
		events:    events,
		cancel:    cancel,
		spin:      sp,
	}
}

// waitForEvent relays the next poller event into the program.
func waitForEvent(events <-chan poller.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return waitClosedMsg{}
		}
		return waitEventMsg(ev)
	}
}

func (m waitModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForEvent(m.events))
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case waitEventMsg:
		switch poller.Event(msg).Kind {
		case poller.KindProfileReady:
			m.profileDone = true
		case poller.KindPDFReady:
			m.pdfDone = true
		case poller.KindCompleted:
			m.profileDone = true
			m.pdfDone = true
			m.completed = true
			return m, tea.Quit
		case poller.KindTimedOut:
			m.timedOut = true
			return m, tea.Quit
		}
		return m, waitForEvent(m.events)

	case waitClosedMsg:
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m waitModel) View() string {
	if m.quitting || m.completed || m.timedOut {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.Header("Génération en cours"))
	b.WriteString("\n")
	frame := m.spin.View()
	b.WriteString(formatter.ArtifactLine("Profil client", m.profileDone, frame))
	b.WriteString("\n")
	b.WriteString(formatter.ArtifactLine("Rapport PDF", m.pdfDone, frame))
	b.WriteString("\n\n")
	b.WriteString(formatter.Dim("q pour quitter, le suivi peut reprendre à tout moment"))
	b.WriteString("\n")
	return b.String()
}
