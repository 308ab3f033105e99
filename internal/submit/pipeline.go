// Package submit runs the ordered submission flows: backend write first,
// local state cleanup, then best-effort webhook notification. A failed
// backend write halts the flow; a failed webhook never does.
package submit

import (
	"context"
	"fmt"

	"github.com/ftgrandparis/auditft/internal/backend"
	"github.com/ftgrandparis/auditft/internal/domain"
	"github.com/ftgrandparis/auditft/internal/form"
	"github.com/ftgrandparis/auditft/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Backend is the subset of backend operations the pipeline writes through.
type Backend interface {
	InsertResponse(ctx context.Context, rec *backend.ResponseRecord) error
	InsertSupplementary(ctx context.Context, rec *backend.SupplementaryRecord) error
	UpdateAskContact(ctx context.Context, projectID string) error
}

// Notifier is the webhook surface used by the pipeline.
type Notifier interface {
	Submitted(ctx context.Context, rec *backend.ResponseRecord) error
	SupplementarySubmitted(ctx context.Context, projectID string) error
	ContactRequested(ctx context.Context, projectID string) error
}

// StateStore is the local persistence surface used by the pipeline.
type StateStore interface {
	ClearWizard(ctx context.Context) error
	SaveMarker(ctx context.Context, m *store.GenerationMarker) error
	Marker(ctx context.Context, projectID string) *store.GenerationMarker
	MarkNotified(ctx context.Context, projectID string) error
}

// Result is what a completed initial submission hands to the results flow.
type Result struct {
	ProjectID        string
	EarlyStage       bool
	ValidatedMember  bool
	WebhookDelivered bool
}

// Pipeline executes the submission flows.
type Pipeline struct {
	backend Backend
	hooks   Notifier
	state   StateStore
	log     zerolog.Logger

	newID func() string
}

// New wires a Pipeline.
func New(b Backend, hooks Notifier, state StateStore, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		backend: b,
		hooks:   hooks,
		state:   state,
		log:     log.With().Str("component", "submit").Logger(),
		newID:   uuid.NewString,
	}
}

// Submit runs the initial-audit submission: generate the project identifier,
// insert the flattened record, clear the resumable session, then notify the
// workflow. The insert must succeed before anything else happens; the
// webhook result is reported but never blocks.
func (p *Pipeline) Submit(ctx context.Context, answers *domain.Answers) (*Result, error) {
	if errs := form.ValidateAll(answers); len(errs) > 0 {
		return nil, fmt.Errorf("answers failed validation: %v", errs[0])
	}

	projectID := p.newID()
	rec := backend.NewResponseRecord(projectID, answers)

	if err := p.backend.InsertResponse(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving audit responses: %w", err)
	}

	if err := p.state.ClearWizard(ctx); err != nil {
		p.log.Warn().Err(err).Msg("clearing wizard state after submit")
	}

	result := &Result{
		ProjectID:        projectID,
		EarlyStage:       rec.EarlyStage,
		ValidatedMember:  rec.AdherentValide,
		WebhookDelivered: true,
	}
	if err := p.hooks.Submitted(ctx, rec); err != nil {
		p.log.Warn().Err(err).Str("project_id", projectID).Msg("submission webhook failed")
		result.WebhookDelivered = false
	}
	return result, nil
}

// SubmitSupplementary stores the deep-dive answers, records the generation
// marker, and notifies the workflow exactly once. The marker's
// notification-sent flag makes a resumed wait skip the webhook.
func (p *Pipeline) SubmitSupplementary(ctx context.Context, projectID, email string, answers *domain.SupplementaryAnswers) error {
	if projectID == "" {
		return fmt.Errorf("missing project identifier")
	}
	if errs := form.ValidateSupplementary(answers); len(errs) > 0 {
		return fmt.Errorf("answers failed validation: %v", errs[0])
	}

	rec := &backend.SupplementaryRecord{
		ProjectID:      projectID,
		Email:          email,
		Clients:        answers.Clients,
		Problem:        answers.Problem,
		AdditionalInfo: answers.AdditionalInfo,
	}
	if err := p.backend.InsertSupplementary(ctx, rec); err != nil {
		return fmt.Errorf("saving supplementary responses: %w", err)
	}

	if err := p.state.SaveMarker(ctx, &store.GenerationMarker{
		ProjectID: projectID,
		Answers:   &domain.Answers{Email: email},
	}); err != nil {
		p.log.Warn().Err(err).Str("project_id", projectID).Msg("saving generation marker")
	}

	p.EnsureNotified(ctx, projectID)
	return nil
}

// EnsureNotified fires the generation webhook for a project unless the
// marker shows it already went out. Safe to call again after a reload of
// the wait flow.
func (p *Pipeline) EnsureNotified(ctx context.Context, projectID string) {
	if m := p.state.Marker(ctx, projectID); m != nil && m.NotificationSent {
		return
	}
	if err := p.hooks.SupplementarySubmitted(ctx, projectID); err != nil {
		p.log.Warn().Err(err).Str("project_id", projectID).Msg("generation webhook failed")
		return
	}
	if err := p.state.MarkNotified(ctx, projectID); err != nil {
		p.log.Warn().Err(err).Str("project_id", projectID).Msg("marking notification sent")
	}
}

// RequestContact flags the project for a callback and notifies the
// workflow. The backend update is the action that matters; a webhook
// failure is logged only.
func (p *Pipeline) RequestContact(ctx context.Context, projectID string) error {
	if projectID == "" {
		return fmt.Errorf("missing project identifier")
	}
	if err := p.backend.UpdateAskContact(ctx, projectID); err != nil {
		return fmt.Errorf("recording contact request: %w", err)
	}
	if err := p.hooks.ContactRequested(ctx, projectID); err != nil {
		p.log.Warn().Err(err).Str("project_id", projectID).Msg("contact webhook failed")
	}
	return nil
}
