package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ftgrandparis/auditft/internal/backend"
	"github.com/ftgrandparis/auditft/internal/cli/formatter"
)

// newRecommendationsCmd displays the generated client profile and
// recommendations, optionally downloading the PDF report.
func newRecommendationsCmd(app *App) *cobra.Command {
	var pdfPath string

	cmd := &cobra.Command{
		Use:   "recommendations <référence>",
		Short: "Consulter vos recommandations personnalisées",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID := args[0]

			stop := formatter.StartSpinner("Récupération de vos recommandations…")
			art, err := app.Backend.Artifacts(cmd.Context(), projectID)
			stop()
			if errors.Is(err, backend.ErrNotFound) {
				fmt.Println(formatter.Warning("Pas encore de recommandations pour ce dossier. Suivez la génération avec : auditft wait " + projectID))
				return nil
			}
			if err != nil {
				return fmt.Errorf("fetching recommendations: %w", err)
			}

			fmt.Println(renderArtifacts(art))

			if pdfPath == "" {
				return nil
			}
			if art.PDFFileURL == "" {
				fmt.Println(formatter.Warning("Le rapport PDF n'est pas encore disponible."))
				return nil
			}
			data, err := app.Backend.FetchPDF(cmd.Context(), art.PDFFileURL)
			if err != nil {
				return fmt.Errorf("downloading report: %w", err)
			}
			if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Println(formatter.Success("Rapport enregistré : " + pdfPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "télécharger le rapport PDF vers ce fichier")
	return cmd
}

// profileSections maps display labels to profile field accessors, in
// display order.
var profileSections = []struct {
	label string
	value func(p *backend.ClientProfile) string
}{
	{"Identité", func(p *backend.ClientProfile) string { return p.Identite }},
	{"Contexte personnel", func(p *backend.ClientProfile) string { return p.ContextePersonnel }},
	{"Motivations & valeurs", func(p *backend.ClientProfile) string { return p.MotivationsValeurs }},
	{"Défis & frustrations", func(p *backend.ClientProfile) string { return p.DefisFrustrations }},
	{"Comportement d'achat", func(p *backend.ClientProfile) string { return p.ComportementAchat }},
	{"Présence digitale", func(p *backend.ClientProfile) string { return p.PresenceDigitale }},
	{"Stratégies marketing", func(p *backend.ClientProfile) string { return p.StrategiesMarketing }},
	{"Approche de vente", func(p *backend.ClientProfile) string { return p.ApprocheVente }},
}

// renderArtifacts formats the generated profile and recommendation text.
func renderArtifacts(art *backend.Artifacts) string {
	var b strings.Builder

	if art.ProfileClient != nil {
		b.WriteString(formatter.Header("Votre profil client type"))
		b.WriteString("\n")
		for _, s := range profileSections {
			text := strings.TrimSpace(s.value(art.ProfileClient))
			if text == "" {
				continue
			}
			b.WriteString("\n")
			b.WriteString(formatter.Bold(s.label))
			b.WriteString("\n")
			b.WriteString(text)
			b.WriteString("\n")
		}
	}

	if rec := strings.TrimSpace(art.Recommandations); rec != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatter.Header("Nos recommandations"))
		b.WriteString("\n\n")
		b.WriteString(rec)
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return formatter.Dim("Les recommandations sont en cours de préparation.")
	}
	return b.String()
}
