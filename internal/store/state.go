// Package store persists wizard progress and generation markers to a local
// SQLite database, the durable-storage analog of the hosted form's browser
// storage. Reads fail soft: absent or corrupt state yields empty defaults so
// the wizard can always start.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ftgrandparis/auditft/internal/domain"
	"github.com/rs/zerolog"
)

// stateVersion tags the persisted answer payload. Bump when the Answers
// shape changes incompatibly; restored state from another version falls back
// to defaults instead of silently corrupting the form.
const stateVersion = 1

// WizardState is the resumable snapshot of a wizard session.
type WizardState struct {
	Answers   *domain.Answers
	StepIndex int
}

// GenerationMarker records that artifact generation is in flight for a
// project, including whether the workflow webhook was already notified, so a
// resumed wait never re-fires it.
type GenerationMarker struct {
	ProjectID        string
	Answers          *domain.Answers
	NotificationSent bool
	CreatedAt        time.Time
}

// Store reads and writes local state. A single process is the only writer;
// no cross-process coordination is attempted.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// New wraps an open state database.
func New(db *sql.DB, log zerolog.Logger) *Store {
	return &Store{db: db, log: log.With().Str("component", "store").Logger()}
}

// LoadWizard returns the saved wizard state, or an empty default when none is
// saved or the saved payload is unreadable. Corruption is logged, never
// surfaced: losing a draft beats blocking the form.
func (s *Store) LoadWizard(ctx context.Context) *WizardState {
	empty := &WizardState{Answers: &domain.Answers{}}

	var version, stepIndex int
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT version, answers, step_index FROM wizard_state WHERE id = 'current'`,
	).Scan(&version, &payload, &stepIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return empty
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("reading wizard state, starting fresh")
		return empty
	}

	if version != stateVersion {
		s.log.Warn().Int("saved", version).Int("want", stateVersion).
			Msg("wizard state from another version, starting fresh")
		return empty
	}

	var answers domain.Answers
	if err := json.Unmarshal([]byte(payload), &answers); err != nil {
		s.log.Warn().Err(err).Msg("corrupt wizard state, starting fresh")
		return empty
	}
	if stepIndex < 0 {
		stepIndex = 0
	}
	return &WizardState{Answers: &answers, StepIndex: stepIndex}
}

// HasWizard reports whether a resumable session is saved.
func (s *Store) HasWizard(ctx context.Context) bool {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wizard_state`).Scan(&n)
	return err == nil && n > 0
}

// SaveWizard mirrors the current answers and step index. Called on every
// answer or step change.
func (s *Store) SaveWizard(ctx context.Context, state *WizardState) error {
	payload, err := json.Marshal(state.Answers)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO wizard_state (id, version, answers, step_index, updated_at)
		 VALUES ('current', ?, ?, ?, ?)`,
		stateVersion, string(payload), state.StepIndex, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving wizard state: %w", err)
	}
	return nil
}

// ClearWizard removes the saved session. Called after a successful final
// submission and on explicit reset.
func (s *Store) ClearWizard(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM wizard_state`); err != nil {
		return fmt.Errorf("clearing wizard state: %w", err)
	}
	return nil
}

// SaveMarker records that generation is in progress for a project.
func (s *Store) SaveMarker(ctx context.Context, m *GenerationMarker) error {
	payload, err := json.Marshal(m.Answers)
	if err != nil {
		return fmt.Errorf("encoding marker answers: %w", err)
	}
	created := m.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO generation_markers (project_id, answers, notification_sent, created_at)
		 VALUES (?, ?, ?, ?)`,
		m.ProjectID, string(payload), boolToInt(m.NotificationSent), created.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving generation marker: %w", err)
	}
	return nil
}

// Marker returns the generation marker for a project, or nil when none
// exists or the stored payload is unreadable.
func (s *Store) Marker(ctx context.Context, projectID string) *GenerationMarker {
	var payload, created string
	var notified int
	err := s.db.QueryRowContext(ctx,
		`SELECT answers, notification_sent, created_at FROM generation_markers WHERE project_id = ?`,
		projectID,
	).Scan(&payload, &notified, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("project_id", projectID).Msg("reading generation marker")
		return nil
	}

	var answers domain.Answers
	if err := json.Unmarshal([]byte(payload), &answers); err != nil {
		s.log.Warn().Err(err).Str("project_id", projectID).Msg("corrupt generation marker")
		return nil
	}
	m := &GenerationMarker{
		ProjectID:        projectID,
		Answers:          &answers,
		NotificationSent: notified != 0,
	}
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		m.CreatedAt = t
	}
	return m
}

// MarkNotified flips the notification-sent flag for a project's marker.
func (s *Store) MarkNotified(ctx context.Context, projectID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE generation_markers SET notification_sent = 1 WHERE project_id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("marking notification sent: %w", err)
	}
	return nil
}

// ClearMarker removes a project's generation marker once its artifacts have
// all completed.
func (s *Store) ClearMarker(ctx context.Context, projectID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM generation_markers WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing generation marker: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
