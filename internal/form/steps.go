package form

import "github.com/ftgrandparis/auditft/internal/domain"

// Step identifiers, in static order.
const (
	StepMembership  = "membership"
	StepGeneral     = "general"
	StepMotivations = "motivations"
	StepBudget      = "budget"
	StepLegal       = "legal"
	StepProduct     = "product"
	StepFinance     = "finance"
	StepContact     = "contact"
)

// Step is one wizard step. Visible decides, from the current answers, whether
// the step appears in the flow; a nil predicate means always visible.
type Step struct {
	ID      string
	Title   string
	Visible func(a *domain.Answers) bool
}

// Steps is the static ordered step sequence. Filtering by the visibility
// predicates always preserves this relative order.
var Steps = []Step{
	{ID: StepMembership, Title: "Adhésion French Tech"},
	{ID: StepGeneral, Title: "Informations générales"},
	{ID: StepMotivations, Title: "Vos motivations détaillées"},
	{
		ID:    StepBudget,
		Title: "Budget et disponibilités",
		Visible: func(a *domain.Answers) bool {
			return a.HasMotivation(domain.MotivationAccompagnement) ||
				a.HasMotivation(domain.MotivationFormation)
		},
	},
	{
		ID:      StepLegal,
		Title:   "Administratif & Légal",
		Visible: projectOnly,
	},
	{
		ID:      StepProduct,
		Title:   "Produit & Service",
		Visible: projectOnly,
	},
	{
		ID:      StepFinance,
		Title:   "Financement & Équipe",
		Visible: projectOnly,
	},
	{ID: StepContact, Title: "Informations de contact"},
}

func projectOnly(a *domain.Answers) bool {
	return a.DeclaresProject()
}

// VisibleSteps returns the subsequence of Steps whose predicates hold for the
// given answers.
func VisibleSteps(a *domain.Answers) []Step {
	out := make([]Step, 0, len(Steps))
	for _, s := range Steps {
		if s.Visible == nil || s.Visible(a) {
			out = append(out, s)
		}
	}
	return out
}
