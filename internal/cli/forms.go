package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/ftgrandparis/auditft/internal/domain"
	"github.com/ftgrandparis/auditft/internal/form"
)

// yesNoOptions are the plain binary choices.
var yesNoOptions = []huh.Option[string]{
	huh.NewOption("Oui", domain.AnswerYes),
	huh.NewOption("Non", domain.AnswerNo),
}

// yesNoProgressOptions add the "in progress" middle ground used by the
// company-creation and fundraising questions.
var yesNoProgressOptions = []huh.Option[string]{
	huh.NewOption("Oui", domain.AnswerYes),
	huh.NewOption("Non", domain.AnswerNo),
	huh.NewOption("En cours", domain.AnswerInProgress),
}

// stepForm builds the interactive form for one wizard step, bound directly
// to the answer fields. Step-level rules in internal/form stay the single
// source of truth for what is required; the forms only gate formats that
// would garble the display (nothing today).
func stepForm(stepID string, a *domain.Answers) *huh.Form {
	var groups []*huh.Group
	switch stepID {
	case form.StepMembership:
		groups = membershipGroups(a)
	case form.StepGeneral:
		groups = generalGroups(a)
	case form.StepMotivations:
		groups = motivationGroups(a)
	case form.StepBudget:
		groups = budgetGroups(a)
	case form.StepLegal:
		groups = legalGroups(a)
	case form.StepProduct:
		groups = productGroups(a)
	case form.StepFinance:
		groups = financeGroups(a)
	case form.StepContact:
		groups = contactGroups(a)
	}
	return huh.NewForm(groups...).WithTheme(auditHuhTheme()).WithShowHelp(false)
}

func membershipGroups(a *domain.Answers) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Êtes-vous adhérent French Tech Grand Paris ?").
				Options(yesNoOptions...).
				Value(&a.IsAdherent),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Votre code adhérent").
				Placeholder("FTGP-ADH-XXXX").
				Value(&a.AdherentCode),
		).WithHideFunc(func() bool { return a.IsAdherent != domain.AnswerYes }),
	}
}

func generalGroups(a *domain.Answers) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Avez-vous un projet entrepreneurial ?").
				Options(yesNoProgressOptions...).
				Value(&a.HasProject),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Nom du projet").
				Value(&a.ProjectName),
			huh.NewSelect[string]().
				Title("Secteur d'activité").
				Options(
					huh.NewOption("Fintech", domain.SectorFintech),
					huh.NewOption("Healthtech", domain.SectorHealthtech),
					huh.NewOption("Edtech", domain.SectorEdtech),
					huh.NewOption("Intelligence artificielle", domain.SectorAI),
					huh.NewOption("SaaS", domain.SectorSaaS),
					huh.NewOption("E-commerce", domain.SectorEcommerce),
					huh.NewOption("Autre", domain.SectorOther),
				).
				Value(&a.Sector),
			huh.NewSelect[string]().
				Title("Stade de développement").
				Options(
					huh.NewOption("Idée", domain.StageIdea),
					huh.NewOption("Prototype", domain.StagePrototype),
					huh.NewOption("MVP", domain.StageMVP),
					huh.NewOption("Sur le marché", domain.StageMarket),
					huh.NewOption("En croissance", domain.StageScaling),
				).
				Value(&a.Stage),
		).WithHideFunc(func() bool { return !a.DeclaresProject() }),
		huh.NewGroup(
			huh.NewInput().
				Title("Précisez votre secteur").
				Value(&a.SectorOther),
		).WithHideFunc(func() bool {
			return !a.DeclaresProject() || a.Sector != domain.SectorOther
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Site web (optionnel)").
				Placeholder("https://").
				Value(&a.Website),
		).WithHideFunc(func() bool {
			return !a.DeclaresProject() ||
				(a.Stage != domain.StageMarket && a.Stage != domain.StageScaling)
		}),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Qu'attendez-vous de la French Tech ?").
				Options(
					huh.NewOption("Accompagnement personnalisé", domain.MotivationAccompagnement),
					huh.NewOption("Réseau & communauté", domain.MotivationReseau),
					huh.NewOption("Formation & compétences", domain.MotivationFormation),
					huh.NewOption("Financement & business", domain.MotivationFinancement),
					huh.NewOption("Ressources & support", domain.MotivationRessources),
					huh.NewOption("Visibilité & opportunités", domain.MotivationVisibilite),
				).
				Value(&a.Motivations),
		),
	}
}

// motivationGroups shows one detail multi-select per motivation family
// picked on the general step.
func motivationGroups(a *domain.Answers) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Accompagnement : quels besoins ?").
				Options(
					huh.NewOption("Mentorat par un entrepreneur", "mentorat"),
					huh.NewOption("Suivi individuel", "suivi-individuel"),
					huh.NewOption("Ateliers collectifs", "ateliers-collectifs"),
					huh.NewOption("Mise en relation experts", "mise-en-relation"),
				).
				Value(&a.AccompagnementProject),
		).WithHideFunc(func() bool { return !a.HasMotivation(domain.MotivationAccompagnement) }),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Réseau : quelles attentes ?").
				Options(
					huh.NewOption("Événements de networking", "evenements"),
					huh.NewOption("Rencontres entre entrepreneurs", "rencontres-entrepreneurs"),
					huh.NewOption("Communauté en ligne", "communaute-en-ligne"),
					huh.NewOption("Partenariats", "partenariats"),
				).
				Value(&a.ReseauCommunaute),
		).WithHideFunc(func() bool { return !a.HasMotivation(domain.MotivationReseau) }),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Formation : quelles compétences ?").
				Options(
					huh.NewOption("Pitcher son projet", "pitcher"),
					huh.NewOption("Construire un business plan", "business-plan"),
					huh.NewOption("Marketing digital", "marketing-digital"),
					huh.NewOption("Lever des fonds", "levee-de-fonds"),
					huh.NewOption("Aspects juridiques", "juridique"),
				).
				Value(&a.FormationCompetences),
		).WithHideFunc(func() bool { return !a.HasMotivation(domain.MotivationFormation) }),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Financement : quels leviers ?").
				Options(
					huh.NewOption("Subventions publiques", "subventions"),
					huh.NewOption("Investisseurs / VC", "investisseurs"),
					huh.NewOption("Business angels", "business-angels"),
					huh.NewOption("Prêts d'honneur", "prets-honneur"),
				).
				Value(&a.FinancementBusiness),
		).WithHideFunc(func() bool { return !a.HasMotivation(domain.MotivationFinancement) }),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Ressources : quels supports ?").
				Options(
					huh.NewOption("Espaces de travail", "espaces-travail"),
					huh.NewOption("Outils numériques", "outils-numeriques"),
					huh.NewOption("Documentation & guides", "documentation"),
					huh.NewOption("Support technique", "support-technique"),
				).
				Value(&a.RessourcesSupport),
		).WithHideFunc(func() bool { return !a.HasMotivation(domain.MotivationRessources) }),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Visibilité : quelles opportunités ?").
				Options(
					huh.NewOption("Concours & prix", "concours"),
					huh.NewOption("Presse & médias", "presse-media"),
					huh.NewOption("Salons & événements", "salons"),
					huh.NewOption("Mise en avant par le réseau", "mise-en-avant"),
				).
				Value(&a.VisibiliteOpportunites),
		).WithHideFunc(func() bool { return !a.HasMotivation(domain.MotivationVisibilite) }),
	}
}

func budgetGroups(a *domain.Answers) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Budget annuel pour la formation / l'accompagnement").
				Options(
					huh.NewOption("Moins de 500 €", "moins-500"),
					huh.NewOption("500 à 1 000 €", "500-1000"),
					huh.NewOption("1 000 à 3 000 €", "1000-3000"),
					huh.NewOption("Plus de 3 000 €", "plus-3000"),
				).
				Value(&a.BudgetFormation),
			huh.NewSelect[string]().
				Title("Disponibilité mensuelle").
				Options(
					huh.NewOption("Quelques heures", "quelques-heures"),
					huh.NewOption("1 à 2 jours", "1-2-jours"),
					huh.NewOption("Plus de 2 jours", "plus-2-jours"),
				).
				Value(&a.Disponibilite),
		),
	}
}

func legalGroups(a *domain.Answers) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Votre société est-elle créée ?").
				Options(yesNoProgressOptions...).
				Value(&a.CompanyCreated),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Forme juridique").
				Options(
					huh.NewOption("SAS", "sas"),
					huh.NewOption("SASU", "sasu"),
					huh.NewOption("SARL", "sarl"),
					huh.NewOption("EURL", "eurl"),
					huh.NewOption("Micro-entreprise", "micro-entreprise"),
					huh.NewOption("Association", "association"),
					huh.NewOption("Autre", "autre"),
				).
				Value(&a.LegalForm),
			huh.NewInput().
				Title("Date de création (AAAA-MM-JJ)").
				Placeholder("2024-03-15").
				Value(&a.CreationDate),
		).WithHideFunc(func() bool { return a.CompanyCreated != domain.AnswerYes }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Propriété intellectuelle").
				Options(
					huh.NewOption("Brevet déposé", "brevet"),
					huh.NewOption("Marque déposée", "marque"),
					huh.NewOption("Dépôt en cours", "en-cours"),
					huh.NewOption("Aucune", "aucune"),
				).
				Value(&a.IntellectualProperty),
		),
	}
}

func productGroups(a *domain.Answers) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewText().
				Title("Décrivez votre projet").
				Placeholder("Le problème adressé, la solution, le marché visé…").
				Value(&a.ProjectDescription),
			huh.NewText().
				Title("Décrivez votre produit ou service").
				Value(&a.ProductDescription),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Avez-vous des utilisateurs ?").
				Options(yesNoOptions...).
				Value(&a.HasUsers),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Combien d'utilisateurs ?").
				Placeholder("120").
				Value(&a.UserCount),
		).WithHideFunc(func() bool { return a.HasUsers != domain.AnswerYes }),
	}
}

func financeGroups(a *domain.Answers) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Avez-vous levé des fonds ?").
				Options(yesNoProgressOptions...).
				Value(&a.Fundraising),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Montant levé (en euros)").
				Placeholder("150000").
				Value(&a.AmountRaised),
		).WithHideFunc(func() bool { return a.Fundraising == domain.AnswerNo || a.Fundraising == "" }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Taille de l'équipe").
				Options(
					huh.NewOption("Je suis seul(e)", "1"),
					huh.NewOption("2 à 3 personnes", "2-3"),
					huh.NewOption("4 à 10 personnes", "4-10"),
					huh.NewOption("Plus de 10 personnes", "plus-10"),
				).
				Value(&a.TeamSize),
		),
	}
}

func contactGroups(a *domain.Answers) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewInput().Title("Prénom").Value(&a.FirstName),
			huh.NewInput().Title("Nom").Value(&a.LastName),
			huh.NewInput().Title("Email").Placeholder("vous@exemple.fr").Value(&a.Email),
			huh.NewInput().Title("Téléphone").Placeholder("06 12 34 56 78").Value(&a.Phone),
		),
	}
}

// supplementaryForm collects the deep-dive answers shown to early-stage
// projects. The email is asked only when not already known.
func supplementaryForm(email *string, s *domain.SupplementaryAnswers) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Email utilisé lors de l'audit").
				Value(email),
		).WithHideFunc(func() bool { return *email != "" }),
		huh.NewGroup(
			huh.NewText().
				Title("Qui sont vos clients cibles ?").
				Placeholder("Profil, secteur, taille…").
				Value(&s.Clients),
			huh.NewText().
				Title("Quel problème résolvez-vous pour eux ?").
				Value(&s.Problem),
			huh.NewText().
				Title("Autre chose à nous partager ? (optionnel)").
				Value(&s.AdditionalInfo),
		),
	}
	return huh.NewForm(groups...).WithTheme(auditHuhTheme()).WithShowHelp(false)
}

// confirmForm is a single yes/no question.
func confirmForm(title string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Oui").
				Negative("Non").
				Value(value),
		),
	).WithTheme(auditHuhTheme()).WithShowHelp(false)
}
