package wizard

import (
	"testing"

	"github.com/ftgrandparis/auditft/internal/domain"
	"github.com/ftgrandparis/auditft/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_BlockedByValidation(t *testing.T) {
	m := New()
	// Membership step requires an answer.
	errs, done := m.Next()
	require.NotEmpty(t, errs)
	assert.False(t, done)
	assert.Equal(t, 0, m.Index())
}

func TestNext_AdvancesOnValidStep(t *testing.T) {
	m := New()
	m.Answers.IsAdherent = domain.AnswerNo

	errs, done := m.Next()
	require.Empty(t, errs)
	assert.False(t, done)
	assert.Equal(t, 1, m.Index())
	assert.Equal(t, form.StepGeneral, m.Current().ID)
}

func TestPrevious_NoOpAtZero(t *testing.T) {
	m := New()
	m.Previous()
	assert.Equal(t, 0, m.Index())

	m.Answers.IsAdherent = domain.AnswerYes
	_, _ = m.Next()
	require.Equal(t, 1, m.Index())
	m.Previous()
	assert.Equal(t, 0, m.Index())
	m.Previous()
	assert.Equal(t, 0, m.Index())
}

func TestReclamp_WhenBranchingShrinksVisibleList(t *testing.T) {
	a := &domain.Answers{
		IsAdherent:  domain.AnswerNo,
		HasProject:  domain.AnswerYes,
		Motivations: []string{domain.MotivationAccompagnement},
	}
	m := Restore(a, 7) // contact, last of the 8 visible steps
	require.Equal(t, form.StepContact, m.Current().ID)

	// Flipping the project answer hides legal/product/finance.
	a.HasProject = domain.AnswerNo
	m.Reclamp()
	assert.Equal(t, len(m.VisibleSteps())-1, m.Index())
	assert.Equal(t, form.StepContact, m.Current().ID)
}

func TestRestore_ClampsOutOfRangeIndex(t *testing.T) {
	a := &domain.Answers{IsAdherent: domain.AnswerNo}
	m := Restore(a, 42)
	assert.Equal(t, len(m.VisibleSteps())-1, m.Index())

	m = Restore(a, -3)
	assert.Equal(t, 0, m.Index())
}

func TestWalkToCompletion(t *testing.T) {
	m := New()
	a := m.Answers
	a.IsAdherent = domain.AnswerYes
	a.AdherentCode = "FTGP-ADH-2025"
	a.HasProject = domain.AnswerNo
	a.Motivations = []string{domain.MotivationReseau}
	a.FirstName = "Lina"
	a.LastName = "Moreau"
	a.Email = "lina.moreau@example.fr"
	a.Phone = "0612345678"

	// membership → general → motivations → contact
	for i := 0; i < 3; i++ {
		errs, done := m.Next()
		require.Empty(t, errs)
		require.False(t, done)
	}
	assert.True(t, m.IsLast())
	errs, done := m.Next()
	require.Empty(t, errs)
	assert.True(t, done)
	assert.Equal(t, form.StepContact, m.Current().ID)
}

func TestReset(t *testing.T) {
	m := New()
	m.Answers.IsAdherent = domain.AnswerYes
	_, _ = m.Next()
	require.Equal(t, 1, m.Index())

	m.Reset()
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, domain.Answers{}, *m.Answers)
}
