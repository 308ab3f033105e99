package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatedMember(t *testing.T) {
	tests := []struct {
		name     string
		adherent string
		code     string
		want     bool
	}{
		{"exact code", AnswerYes, "FTGP-ADH-2025", true},
		{"lowercase code", AnswerYes, "ftgp-adh-2025", true},
		{"mixed case with whitespace", AnswerYes, "  FtGp-AdH-2025 ", true},
		{"wrong code", AnswerYes, "FTGP-ADH-2024", false},
		{"empty code", AnswerYes, "", false},
		{"claim no with valid code", AnswerNo, "FTGP-ADH-2025", false},
		{"no claim at all", "", "FTGP-ADH-2025", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Answers{IsAdherent: tt.adherent, AdherentCode: tt.code}
			assert.Equal(t, tt.want, a.ValidatedMember())
		})
	}
}

func TestEarlyStage(t *testing.T) {
	tests := []struct {
		name       string
		hasProject string
		stage      string
		want       bool
	}{
		{"idea", AnswerYes, StageIdea, true},
		{"mvp", AnswerYes, StageMVP, true},
		{"prototype", AnswerYes, StagePrototype, true},
		{"market", AnswerYes, StageMarket, false},
		{"scaling", AnswerYes, StageScaling, false},
		{"no project overrides stage", AnswerNo, StageScaling, true},
		{"no project without stage", AnswerNo, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Answers{HasProject: tt.hasProject, Stage: tt.stage}
			assert.Equal(t, tt.want, a.EarlyStage())
		})
	}
}

func TestFormatCreationDate(t *testing.T) {
	got := FormatCreationDate("2024-03-15")
	if assert.NotNil(t, got) {
		assert.Equal(t, "15/03/2024", *got)
	}

	assert.Nil(t, FormatCreationDate(""))
	assert.Nil(t, FormatCreationDate("   "))
	assert.Nil(t, FormatCreationDate("15/03/2024"))
	assert.Nil(t, FormatCreationDate("not-a-date"))
}

func TestHasMotivation(t *testing.T) {
	a := Answers{Motivations: []string{MotivationReseau, MotivationFormation}}
	assert.True(t, a.HasMotivation(MotivationFormation))
	assert.False(t, a.HasMotivation(MotivationFinancement))

	var empty Answers
	assert.False(t, empty.HasMotivation(MotivationReseau))
}
