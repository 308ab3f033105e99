// Package wizard holds the step state machine driving the audit form: one
// state per visible-step index, Next/Previous transitions gated by the
// per-step validation rules, and re-clamping of the index whenever a
// branching answer changes the set of visible steps.
package wizard

import (
	"github.com/ftgrandparis/auditft/internal/domain"
	"github.com/ftgrandparis/auditft/internal/form"
)

// Machine tracks the wizard position over the dynamically visible steps.
// Answers are mutated in place by the form layer between transitions.
type Machine struct {
	Answers *domain.Answers
	index   int
}

// New returns a machine at step 0 with empty answers.
func New() *Machine {
	return &Machine{Answers: &domain.Answers{}}
}

// Restore returns a machine positioned at the saved index, clamped into the
// visible range recomputed from the saved answers.
func Restore(answers *domain.Answers, index int) *Machine {
	if answers == nil {
		answers = &domain.Answers{}
	}
	m := &Machine{Answers: answers, index: index}
	m.Reclamp()
	return m
}

// VisibleSteps returns the steps currently visible for the answers.
func (m *Machine) VisibleSteps() []form.Step {
	return form.VisibleSteps(m.Answers)
}

// Index returns the current position within the visible subsequence.
func (m *Machine) Index() int { return m.index }

// Current returns the active step.
func (m *Machine) Current() form.Step {
	return m.VisibleSteps()[m.index]
}

// IsLast reports whether the active step is the final visible step.
func (m *Machine) IsLast() bool {
	return m.index == len(m.VisibleSteps())-1
}

// Reclamp re-derives the index against the current visible list. Answer
// changes can shrink the list (a previously visible step disappears); the
// index is clamped to the last valid position. Call after any change to a
// branching-relevant answer.
func (m *Machine) Reclamp() {
	if m.index < 0 {
		m.index = 0
	}
	if max := len(m.VisibleSteps()) - 1; m.index > max {
		m.index = max
	}
}

// Next validates the active step. On failure it returns the field errors and
// stays put. On success it advances to the next visible step, or reports
// done=true when the active step was the last one.
func (m *Machine) Next() (errs []form.FieldError, done bool) {
	m.Reclamp()
	errs = form.Validate(m.Current().ID, m.Answers)
	if len(errs) > 0 {
		return errs, false
	}
	if m.IsLast() {
		return nil, true
	}
	m.index++
	return nil, false
}

// Previous steps back one visible step; a no-op at index 0.
func (m *Machine) Previous() {
	m.Reclamp()
	if m.index > 0 {
		m.index--
	}
}

// Reset returns the machine to step 0 with fresh default answers. Callers
// are responsible for confirming with the user and clearing persisted state.
func (m *Machine) Reset() {
	*m.Answers = domain.Answers{}
	m.index = 0
}
