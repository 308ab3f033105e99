package backend

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ftgrandparis/auditft/internal/domain"
)

// ResponseRecord is the row inserted into the primary response table. Column
// names match the hosted schema; multi-select answers are stored as JSON
// text, absent optional values as NULL.
type ResponseRecord struct {
	ProjectID string `json:"project_id"`

	EstAdherent  string `json:"est_adherent"`
	CodeAdherent string `json:"code_adherent"`
	AProjet      string `json:"a_projet"`

	NomProjet          string `json:"nom_projet"`
	SecteurActivite    string `json:"secteur_activite"`
	SecteurAutre       string `json:"secteur_autre"`
	StadeDeveloppement string `json:"stade_developpement"`
	SiteWeb            string `json:"site_web"`

	MotivationsFrenchTech  *string `json:"motivations_french_tech"`
	AccompagnementProjet   *string `json:"accompagnement_projet"`
	ReseauCommunaute       *string `json:"reseau_communaute"`
	FormationCompetences   *string `json:"formation_competences"`
	FinancementBusiness    *string `json:"financement_business"`
	RessourcesSupport      *string `json:"ressources_support"`
	VisibiliteOpportunites *string `json:"visibilite_opportunites"`

	BudgetFormation string `json:"budget_formation"`
	Disponibilite   string `json:"disponibilite"`

	EntrepriseCreee         string  `json:"entreprise_creee"`
	FormeJuridique          string  `json:"forme_juridique"`
	DateCreation            *string `json:"date_creation"`
	ProprieteIntellectuelle string  `json:"propriete_intellectuelle"`

	DescriptionProjet           string `json:"description_projet"`
	DescriptionProduitsServices string `json:"description_produits_services"`
	AUtilisateurs               string `json:"a_utilisateurs"`
	NombreUtilisateurs          *int   `json:"nombre_utilisateurs"`

	LeveeFonds   string `json:"levee_fonds"`
	MontantLeve  *int   `json:"montant_leve"`
	TailleEquipe string `json:"taille_equipe"`

	Prenom    string `json:"prenom"`
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`

	AdherentValide bool `json:"adherent_valide"`
	EarlyStage     bool `json:"early_stage"`
}

// NewResponseRecord flattens validated answers into the backend row,
// computing the derived booleans and reformatting the creation date.
func NewResponseRecord(projectID string, a *domain.Answers) *ResponseRecord {
	return &ResponseRecord{
		ProjectID: projectID,

		EstAdherent:  a.IsAdherent,
		CodeAdherent: a.AdherentCode,
		AProjet:      a.HasProject,

		NomProjet:          a.ProjectName,
		SecteurActivite:    a.Sector,
		SecteurAutre:       a.SectorOther,
		StadeDeveloppement: a.Stage,
		SiteWeb:            a.Website,

		MotivationsFrenchTech:  encodeList(a.Motivations),
		AccompagnementProjet:   encodeList(a.AccompagnementProject),
		ReseauCommunaute:       encodeList(a.ReseauCommunaute),
		FormationCompetences:   encodeList(a.FormationCompetences),
		FinancementBusiness:    encodeList(a.FinancementBusiness),
		RessourcesSupport:      encodeList(a.RessourcesSupport),
		VisibiliteOpportunites: encodeList(a.VisibiliteOpportunites),

		BudgetFormation: a.BudgetFormation,
		Disponibilite:   a.Disponibilite,

		EntrepriseCreee:         a.CompanyCreated,
		FormeJuridique:          a.LegalForm,
		DateCreation:            domain.FormatCreationDate(a.CreationDate),
		ProprieteIntellectuelle: a.IntellectualProperty,

		DescriptionProjet:           a.ProjectDescription,
		DescriptionProduitsServices: a.ProductDescription,
		AUtilisateurs:               a.HasUsers,
		NombreUtilisateurs:          parseCount(a.UserCount),

		LeveeFonds:   a.Fundraising,
		MontantLeve:  parseCount(a.AmountRaised),
		TailleEquipe: a.TeamSize,

		Prenom:    a.FirstName,
		Nom:       a.LastName,
		Email:     a.Email,
		Telephone: a.Phone,

		AdherentValide: a.ValidatedMember(),
		EarlyStage:     a.EarlyStage(),
	}
}

// SupplementaryRecord is the row inserted for the second, deep-dive form.
type SupplementaryRecord struct {
	ProjectID      string `json:"project_id"`
	Email          string `json:"email"`
	Clients        string `json:"clients"`
	Problem        string `json:"problem"`
	AdditionalInfo string `json:"additional_info"`
}

// GenerationStatus holds the per-artifact status flags set by the external
// generation workflow.
type GenerationStatus struct {
	PDF           string `json:"PDF"`
	ProfileClient string `json:"profile_client"`
}

// PDFDone reports whether the PDF artifact is ready.
func (s *GenerationStatus) PDFDone() bool {
	return s != nil && s.PDF == domain.GenerationDone
}

// ProfileDone reports whether the client profile artifact is ready.
func (s *GenerationStatus) ProfileDone() bool {
	return s != nil && s.ProfileClient == domain.GenerationDone
}

// ClientProfile is the structured profile produced by the generation
// workflow.
type ClientProfile struct {
	Identite             string `json:"identite"`
	ContextePersonnel    string `json:"contexte_personnel"`
	MotivationsValeurs   string `json:"motivations_valeurs"`
	DefisFrustrations    string `json:"defis_frustrations"`
	ComportementAchat    string `json:"comportement_achat"`
	PresenceDigitale     string `json:"presence_digitale"`
	StrategiesMarketing  string `json:"strategies_marketing"`
	ApprocheVente        string `json:"approche_vente"`
}

// Artifacts is the generated payload row, read-only from this client.
type Artifacts struct {
	ProfileClient   *ClientProfile `json:"profile_client"`
	Recommandations string         `json:"recommandations_client"`
	PDFFileURL      string         `json:"pdf_file_url"`
}

func encodeList(values []string) *string {
	if values == nil {
		return nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}

func parseCount(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
