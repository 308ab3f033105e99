package domain

import (
	"strings"
	"time"
)

// adherentCode is the program's membership code for the current campaign.
// Matching is case-insensitive and ignores surrounding whitespace.
const adherentCode = "FTGP-ADH-2025"

// ValidatedMember reports whether the self-reported membership claim is
// confirmed by the campaign code. A "no" claim is never validated, whatever
// the code field contains.
func (a *Answers) ValidatedMember() bool {
	if a.IsAdherent != AnswerYes {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(a.AdherentCode), adherentCode)
}

// EarlyStage reports whether the project counts as early stage for the
// results branching. Declaring no active project always counts as early,
// regardless of any leftover stage answer.
func (a *Answers) EarlyStage() bool {
	if a.HasProject == AnswerNo {
		return true
	}
	return earlyStages[a.Stage]
}

// FormatCreationDate converts a wizard date (YYYY-MM-DD) to the DD/MM/YYYY
// layout the backend expects. An empty or unparseable input returns nil so
// the column is stored as NULL rather than an empty string.
func FormatCreationDate(date string) *string {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	out := t.Format("02/01/2006")
	return &out
}
