package form

import (
	"testing"

	"github.com/ftgrandparis/auditft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func stepIDs(steps []Step) []string {
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	return ids
}

func TestVisibleSteps_AllBranchesOn(t *testing.T) {
	a := &domain.Answers{
		HasProject:  domain.AnswerYes,
		Motivations: []string{domain.MotivationAccompagnement},
	}
	assert.Equal(t, []string{
		StepMembership, StepGeneral, StepMotivations, StepBudget,
		StepLegal, StepProduct, StepFinance, StepContact,
	}, stepIDs(VisibleSteps(a)))
}

func TestVisibleSteps_NoProject(t *testing.T) {
	a := &domain.Answers{
		HasProject:  domain.AnswerNo,
		Motivations: []string{domain.MotivationReseau},
	}
	assert.Equal(t, []string{
		StepMembership, StepGeneral, StepMotivations, StepContact,
	}, stepIDs(VisibleSteps(a)))
}

func TestVisibleSteps_BudgetRequiresTrainingOrSupport(t *testing.T) {
	a := &domain.Answers{
		HasProject:  domain.AnswerYes,
		Motivations: []string{domain.MotivationFormation},
	}
	assert.Contains(t, stepIDs(VisibleSteps(a)), StepBudget)

	a.Motivations = []string{domain.MotivationFinancement, domain.MotivationVisibilite}
	assert.NotContains(t, stepIDs(VisibleSteps(a)), StepBudget)
}

// The visible subsequence must preserve static order and never include a
// step whose predicate is false, for every branching combination.
func TestVisibleSteps_OrderPreserved(t *testing.T) {
	pos := make(map[string]int, len(Steps))
	for i, s := range Steps {
		pos[s.ID] = i
	}

	motivationSets := [][]string{
		nil,
		{domain.MotivationReseau},
		{domain.MotivationAccompagnement},
		{domain.MotivationFormation, domain.MotivationFinancement},
	}
	for _, hasProject := range []string{"", domain.AnswerYes, domain.AnswerNo} {
		for _, motivations := range motivationSets {
			a := &domain.Answers{HasProject: hasProject, Motivations: motivations}
			visible := VisibleSteps(a)

			last := -1
			for _, s := range visible {
				assert.Greater(t, pos[s.ID], last, "static order violated")
				last = pos[s.ID]
				if s.Visible != nil {
					assert.True(t, s.Visible(a), "step %s visible with false predicate", s.ID)
				}
			}
		}
	}
}
