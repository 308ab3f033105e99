package domain

// Generic yes/no/in-progress answer values used by several select fields.
const (
	AnswerYes        = "yes"
	AnswerNo         = "no"
	AnswerInProgress = "inProgress"
)

// Development stage values.
const (
	StageIdea      = "idea"
	StagePrototype = "prototype"
	StageMVP       = "mvp"
	StageMarket    = "market"
	StageScaling   = "scaling"
)

// ValidStages is the canonical set of accepted stage values.
var ValidStages = map[string]bool{
	StageIdea: true, StagePrototype: true, StageMVP: true,
	StageMarket: true, StageScaling: true,
}

// earlyStages are the stages considered "early" for the results branching.
var earlyStages = map[string]bool{
	StageIdea: true, StageMVP: true, StagePrototype: true,
}

// Sector values.
const (
	SectorFintech    = "fintech"
	SectorHealthtech = "healthtech"
	SectorEdtech     = "edtech"
	SectorAI         = "ai"
	SectorSaaS       = "saas"
	SectorEcommerce  = "ecommerce"
	SectorOther      = "other"
)

// Motivation family values driving the detailed motivations step and the
// budget step's visibility.
const (
	MotivationAccompagnement = "accompagnement"
	MotivationReseau         = "reseau"
	MotivationFormation      = "formation"
	MotivationFinancement    = "financement"
	MotivationRessources     = "ressources"
	MotivationVisibilite     = "visibilite"
)

// ValidMotivations is the canonical set of accepted motivation families.
var ValidMotivations = map[string]bool{
	MotivationAccompagnement: true, MotivationReseau: true,
	MotivationFormation: true, MotivationFinancement: true,
	MotivationRessources: true, MotivationVisibilite: true,
}

// Artifact identifies one externally generated recommendation artifact.
type Artifact string

const (
	ArtifactProfile Artifact = "profile_client"
	ArtifactPDF     Artifact = "PDF"
)

// GenerationDone is the sentinel written by the generation workflow when an
// artifact is ready. Any other value, or an absent row, means still pending.
const GenerationDone = "Terminé"
