// Package config loads runtime configuration from AUDITFT_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting. Defaults target the hosted program
// backend and workflow; tests and self-hosted deployments override them.
type Config struct {
	// Hosted data backend (PostgREST-style REST over the row store).
	BackendURL string `env:"AUDITFT_BACKEND_URL"`
	BackendKey string `env:"AUDITFT_BACKEND_KEY"`

	// Workflow-automation webhooks.
	SubmissionWebhookURL string `env:"AUDITFT_WEBHOOK_SUBMISSION" envDefault:"https://n8n.srv906204.hstgr.cloud/webhook/formulaire-french-tech-idea"`
	ContactWebhookURL    string `env:"AUDITFT_WEBHOOK_CONTACT" envDefault:"https://n8n.srv906204.hstgr.cloud/webhook/formulaire-1-french-tech-recontact"`

	// Local state database; empty means ~/.auditft/state.db.
	StatePath string `env:"AUDITFT_STATE_PATH"`

	// Generation polling.
	PollInterval time.Duration `env:"AUDITFT_POLL_INTERVAL" envDefault:"3s"`
	PollTimeout  time.Duration `env:"AUDITFT_POLL_TIMEOUT" envDefault:"5m"`

	LogLevel string `env:"AUDITFT_LOG_LEVEL" envDefault:"warn"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
