package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ftgrandparis/auditft/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, zerolog.Nop()), db
}

func TestWizardState_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	answers := &domain.Answers{
		IsAdherent:  domain.AnswerYes,
		HasProject:  domain.AnswerYes,
		ProjectName: "Borne",
		Motivations: []string{domain.MotivationReseau, domain.MotivationFormation},
		Email:       "lina.moreau@example.fr",
	}
	require.NoError(t, s.SaveWizard(ctx, &WizardState{Answers: answers, StepIndex: 3}))

	loaded := s.LoadWizard(ctx)
	assert.Equal(t, *answers, *loaded.Answers)
	assert.Equal(t, 3, loaded.StepIndex)
	assert.True(t, s.HasWizard(ctx))
}

func TestWizardState_AbsentReturnsDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	loaded := s.LoadWizard(ctx)
	assert.Equal(t, domain.Answers{}, *loaded.Answers)
	assert.Equal(t, 0, loaded.StepIndex)
	assert.False(t, s.HasWizard(ctx))
}

func TestWizardState_CorruptPayloadFallsBack(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	_, err := db.Exec(
		`INSERT INTO wizard_state (id, version, answers, step_index, updated_at)
		 VALUES ('current', 1, '{not json', 2, '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	loaded := s.LoadWizard(ctx)
	assert.Equal(t, domain.Answers{}, *loaded.Answers)
	assert.Equal(t, 0, loaded.StepIndex)
}

func TestWizardState_VersionMismatchFallsBack(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	_, err := db.Exec(
		`INSERT INTO wizard_state (id, version, answers, step_index, updated_at)
		 VALUES ('current', 99, '{"projectName":"Borne"}', 4, '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	loaded := s.LoadWizard(ctx)
	assert.Equal(t, domain.Answers{}, *loaded.Answers)
	assert.Equal(t, 0, loaded.StepIndex)
}

func TestClearWizard(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveWizard(ctx, &WizardState{
		Answers: &domain.Answers{ProjectName: "Borne"}, StepIndex: 1,
	}))
	require.NoError(t, s.ClearWizard(ctx))

	assert.False(t, s.HasWizard(ctx))
	loaded := s.LoadWizard(ctx)
	assert.Equal(t, domain.Answers{}, *loaded.Answers)
}

func TestGenerationMarker_Lifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.Nil(t, s.Marker(ctx, "p-1"))

	require.NoError(t, s.SaveMarker(ctx, &GenerationMarker{
		ProjectID: "p-1",
		Answers:   &domain.Answers{Email: "lina.moreau@example.fr"},
	}))

	m := s.Marker(ctx, "p-1")
	require.NotNil(t, m)
	assert.False(t, m.NotificationSent)
	assert.Equal(t, "lina.moreau@example.fr", m.Answers.Email)
	assert.False(t, m.CreatedAt.IsZero())

	require.NoError(t, s.MarkNotified(ctx, "p-1"))
	m = s.Marker(ctx, "p-1")
	require.NotNil(t, m)
	assert.True(t, m.NotificationSent)

	require.NoError(t, s.ClearMarker(ctx, "p-1"))
	assert.Nil(t, s.Marker(ctx, "p-1"))
}
