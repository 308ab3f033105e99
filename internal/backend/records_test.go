package backend

import (
	"testing"

	"github.com/ftgrandparis/auditft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponseRecord_NullsForAbsentOptionals(t *testing.T) {
	rec := NewResponseRecord("p-1", &domain.Answers{HasProject: domain.AnswerNo})

	assert.Nil(t, rec.MotivationsFrenchTech)
	assert.Nil(t, rec.DateCreation)
	assert.Nil(t, rec.NombreUtilisateurs)
	assert.Nil(t, rec.MontantLeve)
	assert.False(t, rec.AdherentValide)
	// "No project" forces early stage even without a stage answer.
	assert.True(t, rec.EarlyStage)
}

func TestNewResponseRecord_EncodesSelections(t *testing.T) {
	rec := NewResponseRecord("p-1", &domain.Answers{
		Motivations:          []string{domain.MotivationAccompagnement, domain.MotivationFormation},
		FormationCompetences: []string{"pitcher"},
		AmountRaised:         "150000",
	})

	require.NotNil(t, rec.MotivationsFrenchTech)
	assert.Equal(t, `["accompagnement","formation"]`, *rec.MotivationsFrenchTech)
	require.NotNil(t, rec.FormationCompetences)
	assert.Equal(t, `["pitcher"]`, *rec.FormationCompetences)
	require.NotNil(t, rec.MontantLeve)
	assert.Equal(t, 150000, *rec.MontantLeve)
}

func TestParseCount_RejectsGarbage(t *testing.T) {
	assert.Nil(t, parseCount("douze"))
	assert.Nil(t, parseCount("-4"))
	assert.Nil(t, parseCount(""))
	require.NotNil(t, parseCount(" 7 "))
	assert.Equal(t, 7, *parseCount(" 7 "))
}
