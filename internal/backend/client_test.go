package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ftgrandparis/auditft/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertResponse_WireFormat(t *testing.T) {
	var got []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/form-responses", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", zerolog.Nop())
	rec := NewResponseRecord("p-1", &domain.Answers{
		IsAdherent:   domain.AnswerYes,
		AdherentCode: "ftgp-adh-2025",
		HasProject:   domain.AnswerYes,
		ProjectName:  "Borne",
		Stage:        domain.StageIdea,
		Motivations:  []string{domain.MotivationReseau},
		CreationDate: "2024-03-15",
		UserCount:    "12",
	})
	require.NoError(t, c.InsertResponse(context.Background(), rec))

	require.Len(t, got, 1)
	row := got[0]
	assert.Equal(t, "p-1", row["project_id"])
	assert.Equal(t, "Borne", row["nom_projet"])
	assert.Equal(t, `["reseau"]`, row["motivations_french_tech"])
	assert.Equal(t, "15/03/2024", row["date_creation"])
	assert.Equal(t, float64(12), row["nombre_utilisateurs"])
	assert.Equal(t, true, row["adherent_valide"])
	assert.Equal(t, true, row["early_stage"])
	// Unselected multi-selects are NULL, not "".
	assert.Nil(t, row["reseau_communaute"])
}

func TestUpdateAskContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/v1/form-responses", r.URL.Path)
		assert.Equal(t, "eq.p-1", r.URL.Query().Get("project_id"))

		var patch map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, map[string]any{"ask_contact": true}, patch)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", zerolog.Nop())
	require.NoError(t, c.UpdateAskContact(context.Background(), "p-1"))
}

func TestGenerationStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/statut_generation", r.URL.Path)
		assert.Equal(t, "PDF,profile_client", r.URL.Query().Get("select"))
		assert.Equal(t, "eq.p-1", r.URL.Query().Get("project_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"PDF":"Terminé","profile_client":"en cours"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", zerolog.Nop())
	status, err := c.GenerationStatus(context.Background(), "p-1")
	require.NoError(t, err)
	assert.True(t, status.PDFDone())
	assert.False(t, status.ProfileDone())
}

func TestGenerationStatus_AbsentRowIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", zerolog.Nop())
	_, err := c.GenerationStatus(context.Background(), "p-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArtifacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/generation_ia", r.URL.Path)
		assert.Equal(t, "profile_client,recommandations_client,pdf_file_url", r.URL.Query().Get("select"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"profile_client": {"identite": "Artisan indépendant", "approche_vente": "Directe"},
			"recommandations_client": "Ciblez les marchés locaux.",
			"pdf_file_url": "https://files.test/p-1.pdf"
		}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", zerolog.Nop())
	artifacts, err := c.Artifacts(context.Background(), "p-1")
	require.NoError(t, err)
	require.NotNil(t, artifacts.ProfileClient)
	assert.Equal(t, "Artisan indépendant", artifacts.ProfileClient.Identite)
	assert.Equal(t, "Ciblez les marchés locaux.", artifacts.Recommandations)
	assert.Equal(t, "https://files.test/p-1.pdf", artifacts.PDFFileURL)
}

func TestInsertResponse_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"duplicate key"}`, http.StatusConflict)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", zerolog.Nop())
	err := c.InsertResponse(context.Background(), NewResponseRecord("p-1", &domain.Answers{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
}

func TestFetchPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", zerolog.Nop())
	data, err := c.FetchPDF(context.Background(), srv.URL+"/p-1.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), data)
}
