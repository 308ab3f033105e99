// Package webhook notifies the workflow-automation endpoint about form
// events. Deliveries are best-effort: callers log failures and keep going,
// the workflow never gates the user's flow.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ftgrandparis/auditft/internal/backend"
	"github.com/rs/zerolog"
)

// Notifier posts JSON payloads to the configured workflow webhooks.
type Notifier struct {
	submissionURL string
	contactURL    string
	http          *http.Client
	log           zerolog.Logger
}

// New creates a Notifier for the submission and contact-request endpoints.
func New(submissionURL, contactURL string, log zerolog.Logger) *Notifier {
	return &Notifier{
		submissionURL: submissionURL,
		contactURL:    contactURL,
		http:          &http.Client{Timeout: 10 * time.Second},
		log:           log.With().Str("component", "webhook").Logger(),
	}
}

// Submitted announces a completed initial audit, carrying the full flattened
// record so the workflow can start generation without a backend read.
func (n *Notifier) Submitted(ctx context.Context, rec *backend.ResponseRecord) error {
	return n.post(ctx, n.submissionURL, rec)
}

// SupplementarySubmitted announces that the deep-dive form was stored for
// the given project.
func (n *Notifier) SupplementarySubmitted(ctx context.Context, projectID string) error {
	return n.post(ctx, n.submissionURL, map[string]string{"projectId": projectID})
}

// ContactRequested announces a contact request for the given project.
func (n *Notifier) ContactRequested(ctx context.Context, projectID string) error {
	return n.post(ctx, n.contactURL, map[string]string{"projectId": projectID})
}

func (n *Notifier) post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
