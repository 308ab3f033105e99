package domain

// Answers holds everything collected by the audit wizard. Fields are flat and
// individually optional; per-step rules in internal/form decide what is
// required at each point of the flow. Multi-select fields are string slices.
type Answers struct {
	// Membership
	IsAdherent   string `json:"isAdherent"`
	AdherentCode string `json:"adherentCode"`

	// General
	HasProject  string   `json:"hasProject"`
	ProjectName string   `json:"projectName"`
	Sector      string   `json:"sector"`
	SectorOther string   `json:"sectorOther"`
	Stage       string   `json:"stage"`
	Website     string   `json:"website"`
	Motivations []string `json:"motivations"`

	// Detailed motivations, one list per selected motivation family
	AccompagnementProject []string `json:"accompagnementProject"`
	ReseauCommunaute      []string `json:"reseauCommunaute"`
	FormationCompetences  []string `json:"formationCompetences"`
	FinancementBusiness   []string `json:"financementBusiness"`
	RessourcesSupport     []string `json:"ressourcesSupport"`
	VisibiliteOpportunites []string `json:"visibiliteOpportunites"`

	// Budget & availability
	BudgetFormation string `json:"budgetFormation"`
	Disponibilite   string `json:"disponibilite"`

	// Legal
	CompanyCreated        string `json:"companyCreated"`
	LegalForm             string `json:"legalForm"`
	CreationDate          string `json:"creationDate"` // YYYY-MM-DD as entered
	IntellectualProperty  string `json:"intellectualProperty"`

	// Product & service
	ProjectDescription string `json:"projectDescription"`
	ProductDescription string `json:"productDescription"`
	HasUsers           string `json:"hasUsers"`
	UserCount          string `json:"userCount"`

	// Financing & team
	Fundraising  string `json:"fundraising"`
	AmountRaised string `json:"amountRaised"`
	TeamSize     string `json:"teamSize"`

	// Contact
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// SupplementaryAnswers holds the second, deep-dive form submitted after the
// initial audit, keyed server-side by the project identifier.
type SupplementaryAnswers struct {
	Clients        string `json:"clients"`
	Problem        string `json:"problem"`
	AdditionalInfo string `json:"additional_info"`
}

// HasMotivation reports whether the given motivation family was selected.
func (a *Answers) HasMotivation(value string) bool {
	for _, m := range a.Motivations {
		if m == value {
			return true
		}
	}
	return false
}

// DeclaresProject reports whether the user declared an active project.
func (a *Answers) DeclaresProject() bool {
	return a.HasProject == AnswerYes
}
