package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ftgrandparis/auditft/internal/backend"
)

func TestRenderArtifacts_FullPayload(t *testing.T) {
	out := renderArtifacts(&backend.Artifacts{
		ProfileClient: &backend.ClientProfile{
			Identite:          "Fondatrice de TPE, 35-45 ans",
			DefisFrustrations: "Manque de temps pour la prospection",
		},
		Recommandations: "Concentrez-vous sur un canal d'acquisition unique.",
	})

	assert.Contains(t, out, "Identité")
	assert.Contains(t, out, "Fondatrice de TPE")
	assert.Contains(t, out, "Défis & frustrations")
	assert.Contains(t, out, "Concentrez-vous sur un canal")
	// Empty sections are skipped entirely.
	assert.NotContains(t, out, "Comportement d'achat")
}

func TestRenderArtifacts_RecommendationsOnly(t *testing.T) {
	out := renderArtifacts(&backend.Artifacts{Recommandations: "Validez votre marché."})
	assert.Contains(t, out, "Validez votre marché.")
	assert.NotContains(t, out, "profil client type")
}

func TestRenderArtifacts_EmptyPayload(t *testing.T) {
	out := renderArtifacts(&backend.Artifacts{})
	assert.Contains(t, out, "en cours de préparation")
}
