// Package backend talks to the hosted row store over its PostgREST-style
// REST interface: insert, update and select on named tables, plus the blob
// fetch for the generated PDF.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	tableResponses     = "form-responses"
	tableSupplementary = "second_form_responses"
	tableStatus        = "statut_generation"
	tableArtifacts     = "generation_ia"
)

// Client is a thin REST client over the hosted backend.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a backend client for the given base URL and API key.
func NewClient(baseURL, apiKey string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
		log: log.With().Str("component", "backend").Logger(),
	}
}

// InsertResponse creates the project row for a completed audit.
func (c *Client) InsertResponse(ctx context.Context, rec *ResponseRecord) error {
	return c.insert(ctx, tableResponses, []*ResponseRecord{rec})
}

// InsertSupplementary stores the second-form answers for a project.
func (c *Client) InsertSupplementary(ctx context.Context, rec *SupplementaryRecord) error {
	return c.insert(ctx, tableSupplementary, []*SupplementaryRecord{rec})
}

// UpdateAskContact flips the contact-request flag on the project row.
func (c *Client) UpdateAskContact(ctx context.Context, projectID string) error {
	return c.update(ctx, tableResponses,
		map[string]any{"ask_contact": true},
		map[string]string{"project_id": projectID})
}

// GenerationStatus reads the per-artifact status flags for a project.
// Returns ErrNotFound while the generation workflow has not written its
// status row yet.
func (c *Client) GenerationStatus(ctx context.Context, projectID string) (*GenerationStatus, error) {
	var status GenerationStatus
	err := c.selectOne(ctx, tableStatus,
		[]string{"PDF", "profile_client"},
		map[string]string{"project_id": projectID},
		&status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Artifacts reads the generated payloads for a project.
func (c *Client) Artifacts(ctx context.Context, projectID string) (*Artifacts, error) {
	var artifacts Artifacts
	err := c.selectOne(ctx, tableArtifacts,
		[]string{"profile_client", "recommandations_client", "pdf_file_url"},
		map[string]string{"project_id": projectID},
		&artifacts)
	if err != nil {
		return nil, err
	}
	return &artifacts, nil
}

// FetchPDF downloads the generated PDF from its storage URL.
func (c *Client) FetchPDF(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching pdf: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading pdf body: %w", err)
	}
	return data, nil
}

func (c *Client) insert(ctx context.Context, table string, rows any) error {
	body, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding %s rows: %w", table, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, table, nil, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	return c.do(req, nil)
}

func (c *Client) update(ctx context.Context, table string, patch any, filter map[string]string) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encoding %s patch: %w", table, err)
	}

	req, err := c.newRequest(ctx, http.MethodPatch, table, filterQuery(filter), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	return c.do(req, nil)
}

// selectOne reads the first row matching the filter into dst. An empty
// result set maps to ErrNotFound.
func (c *Client) selectOne(ctx context.Context, table string, columns []string, filter map[string]string, dst any) error {
	query := filterQuery(filter)
	query.Set("select", strings.Join(columns, ","))

	req, err := c.newRequest(ctx, http.MethodGet, table, query, nil)
	if err != nil {
		return err
	}

	var rows []json.RawMessage
	if err := c.do(req, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s: %w", table, ErrNotFound)
	}
	if err := json.Unmarshal(rows[0], dst); err != nil {
		return fmt.Errorf("decoding %s row: %w", table, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, table string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, dst); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func filterQuery(filter map[string]string) url.Values {
	query := url.Values{}
	for column, value := range filter {
		query.Set(column, "eq."+value)
	}
	return query
}
