// Package poller watches the generation status of a project until both
// artifacts are ready or the watch times out. One watch loop runs per
// project; cancelling the context stops it.
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/ftgrandparis/auditft/internal/backend"
	"github.com/rs/zerolog"
)

// ErrTimeout is returned by Await when the deadline passes before both
// artifacts are ready.
var ErrTimeout = errors.New("generation did not finish in time")

// StatusReader is the backend surface the poller reads from.
type StatusReader interface {
	GenerationStatus(ctx context.Context, projectID string) (*backend.GenerationStatus, error)
	Artifacts(ctx context.Context, projectID string) (*backend.Artifacts, error)
}

// EventKind identifies what a watch event reports.
type EventKind int

const (
	// KindProfileReady fires once when the client profile finishes.
	KindProfileReady EventKind = iota
	// KindPDFReady fires once when the report PDF finishes.
	KindPDFReady
	// KindCompleted fires when both artifacts are done; it carries them.
	KindCompleted
	// KindTimedOut fires when the deadline passes before completion.
	KindTimedOut
)

// Event is a single observation from a watch loop.
type Event struct {
	Kind      EventKind
	Artifacts *backend.Artifacts
}

// Poller runs status watch loops against a reader.
type Poller struct {
	reader   StatusReader
	interval time.Duration
	timeout  time.Duration
	log      zerolog.Logger
}

// New creates a Poller checking every interval, giving up after timeout.
func New(reader StatusReader, interval, timeout time.Duration, log zerolog.Logger) *Poller {
	return &Poller{
		reader:   reader,
		interval: interval,
		timeout:  timeout,
		log:      log.With().Str("component", "poller").Logger(),
	}
}

// Watch polls the project's generation status and streams events on the
// returned channel. The first check happens immediately, so a generation
// that already finished completes without waiting a full interval. The
// channel closes after KindCompleted, KindTimedOut, or context
// cancellation. Read errors are logged and retried on the next tick.
func (p *Poller) Watch(ctx context.Context, projectID string) <-chan Event {
	events := make(chan Event, 4)

	go func() {
		defer close(events)

		deadline := time.NewTimer(p.timeout)
		defer deadline.Stop()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		var profileSeen, pdfSeen bool

		check := func() bool {
			status, err := p.reader.GenerationStatus(ctx, projectID)
			if err != nil {
				// An absent status row just means generation has not
				// started writing yet.
				if !errors.Is(err, backend.ErrNotFound) {
					p.log.Warn().Err(err).Str("project_id", projectID).Msg("status check failed")
				}
				return false
			}
			if status.ProfileDone() && !profileSeen {
				profileSeen = true
				if !p.emit(ctx, events, Event{Kind: KindProfileReady}) {
					return true
				}
			}
			if status.PDFDone() && !pdfSeen {
				pdfSeen = true
				if !p.emit(ctx, events, Event{Kind: KindPDFReady}) {
					return true
				}
			}
			if !profileSeen || !pdfSeen {
				return false
			}

			artifacts, err := p.reader.Artifacts(ctx, projectID)
			if err != nil {
				p.log.Warn().Err(err).Str("project_id", projectID).Msg("fetching artifacts failed")
			}
			p.emit(ctx, events, Event{Kind: KindCompleted, Artifacts: artifacts})
			return true
		}

		if check() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-deadline.C:
				p.log.Warn().Str("project_id", projectID).Dur("timeout", p.timeout).Msg("generation watch timed out")
				p.emit(ctx, events, Event{Kind: KindTimedOut})
				return
			case <-ticker.C:
				if check() {
					return
				}
			}
		}
	}()

	return events
}

// Await is the synchronous form of Watch for non-interactive callers: it
// blocks until completion and returns the artifacts, ErrTimeout on the
// deadline, or the context error on cancellation.
func (p *Poller) Await(ctx context.Context, projectID string) (*backend.Artifacts, error) {
	for ev := range p.Watch(ctx, projectID) {
		switch ev.Kind {
		case KindCompleted:
			return ev.Artifacts, nil
		case KindTimedOut:
			return nil, ErrTimeout
		}
	}
	return nil, ctx.Err()
}

// emit reports false when the context died before the event was accepted.
func (p *Poller) emit(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
