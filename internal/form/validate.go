package form

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/ftgrandparis/auditft/internal/domain"
)

// FieldError is a validation failure for a single field of a step.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// StepRule validates one step's field subset against the full answer set.
// Conditional required-ness (fields required only under certain branch
// answers) lives inside each rule rather than in a merged static schema.
type StepRule func(a *domain.Answers) []FieldError

// Rules maps step IDs to their validation rule.
var Rules = map[string]StepRule{
	StepMembership:  validateMembership,
	StepGeneral:     validateGeneral,
	StepMotivations: validateMotivations,
	StepBudget:      validateBudget,
	StepLegal:       validateLegal,
	StepProduct:     validateProduct,
	StepFinance:     validateFinance,
	StepContact:     validateContact,
}

// Validate runs the rule registered for the given step ID. Steps without a
// rule validate trivially.
func Validate(stepID string, a *domain.Answers) []FieldError {
	rule, ok := Rules[stepID]
	if !ok {
		return nil
	}
	return rule(a)
}

// ValidateAll validates every step currently visible for the answers,
// returning all errors found. Used by the final submit.
func ValidateAll(a *domain.Answers) []FieldError {
	var errs []FieldError
	for _, s := range VisibleSteps(a) {
		errs = append(errs, Validate(s.ID, a)...)
	}
	return errs
}

func validateMembership(a *domain.Answers) []FieldError {
	var errs []FieldError
	if a.IsAdherent == "" {
		errs = append(errs, FieldError{"isAdherent", "Ce champ est requis"})
	}
	// The code itself is optional even for claimed members; an unmatched
	// code simply leaves the member unvalidated.
	return errs
}

func validateGeneral(a *domain.Answers) []FieldError {
	var errs []FieldError
	if a.HasProject == "" {
		errs = append(errs, FieldError{"hasProject", "Ce champ est requis"})
	}
	if a.DeclaresProject() {
		if len(strings.TrimSpace(a.ProjectName)) < 2 {
			errs = append(errs, FieldError{"projectName", "Le nom du projet est requis"})
		}
		if a.Sector == "" {
			errs = append(errs, FieldError{"sector", "Le secteur d'activité est requis"})
		}
		if a.Stage == "" {
			errs = append(errs, FieldError{"stage", "Le stade de développement est requis"})
		} else if !domain.ValidStages[a.Stage] {
			errs = append(errs, FieldError{"stage", "Stade de développement inconnu"})
		}
	}
	if len(a.Motivations) == 0 {
		errs = append(errs, FieldError{"motivations", "Veuillez sélectionner au moins une motivation"})
	}
	for _, m := range a.Motivations {
		if !domain.ValidMotivations[m] {
			errs = append(errs, FieldError{"motivations", "Motivation inconnue: " + m})
		}
	}
	return errs
}

// All detailed motivation lists are optional.
func validateMotivations(a *domain.Answers) []FieldError { return nil }

// Budget and availability are optional even when the step is shown.
func validateBudget(a *domain.Answers) []FieldError { return nil }

func validateLegal(a *domain.Answers) []FieldError {
	if !a.DeclaresProject() {
		return nil
	}
	var errs []FieldError
	if a.CompanyCreated == "" {
		errs = append(errs, FieldError{"companyCreated", "Ce champ est requis"})
	}
	if a.CreationDate != "" {
		if _, err := time.Parse("2006-01-02", strings.TrimSpace(a.CreationDate)); err != nil {
			errs = append(errs, FieldError{"creationDate", "Format attendu: AAAA-MM-JJ"})
		}
	}
	if a.IntellectualProperty == "" {
		errs = append(errs, FieldError{"intellectualProperty", "Ce champ est requis"})
	}
	return errs
}

func validateProduct(a *domain.Answers) []FieldError {
	if !a.DeclaresProject() {
		return nil
	}
	var errs []FieldError
	if len(strings.TrimSpace(a.ProjectDescription)) < 10 {
		errs = append(errs, FieldError{"projectDescription", "Veuillez fournir une description d'au moins 10 caractères"})
	}
	if len(strings.TrimSpace(a.ProductDescription)) < 10 {
		errs = append(errs, FieldError{"productDescription", "Veuillez fournir une description d'au moins 10 caractères"})
	}
	if a.HasUsers == "" {
		errs = append(errs, FieldError{"hasUsers", "Ce champ est requis"})
	}
	if a.HasUsers == domain.AnswerYes && a.UserCount != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(a.UserCount)); err != nil || n < 0 {
			errs = append(errs, FieldError{"userCount", "Entrez un nombre valide"})
		}
	}
	return errs
}

func validateFinance(a *domain.Answers) []FieldError {
	if !a.DeclaresProject() {
		return nil
	}
	var errs []FieldError
	if a.Fundraising == "" {
		errs = append(errs, FieldError{"fundraising", "Ce champ est requis"})
	}
	if a.Fundraising == domain.AnswerYes && a.AmountRaised != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(a.AmountRaised)); err != nil || n < 0 {
			errs = append(errs, FieldError{"amountRaised", "Entrez un montant valide"})
		}
	}
	if a.TeamSize == "" {
		errs = append(errs, FieldError{"teamSize", "Ce champ est requis"})
	}
	return errs
}

func validateContact(a *domain.Answers) []FieldError {
	var errs []FieldError
	if len(strings.TrimSpace(a.FirstName)) < 2 {
		errs = append(errs, FieldError{"firstName", "Le prénom est requis"})
	}
	if len(strings.TrimSpace(a.LastName)) < 2 {
		errs = append(errs, FieldError{"lastName", "Le nom est requis"})
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(a.Email)); err != nil {
		errs = append(errs, FieldError{"email", "Email invalide"})
	}
	if len(digitsOnly(a.Phone)) < 10 {
		errs = append(errs, FieldError{"phone", "Le numéro de téléphone est requis"})
	}
	return errs
}

// ValidateSupplementary checks the second, deep-dive form.
func ValidateSupplementary(s *domain.SupplementaryAnswers) []FieldError {
	var errs []FieldError
	if len(strings.TrimSpace(s.Clients)) < 10 {
		errs = append(errs, FieldError{"clients", "Veuillez décrire vos clients cibles (au moins 10 caractères)"})
	}
	if len(strings.TrimSpace(s.Problem)) < 10 {
		errs = append(errs, FieldError{"problem", "Veuillez décrire le problème que vous résolvez (au moins 10 caractères)"})
	}
	return errs
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
