package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftgrandparis/auditft/internal/poller"
)

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestWaitModel_ArtifactEventsUpdateProgress(t *testing.T) {
	m := newWaitModel("p-1", nil, func() {})

	next, cmd := m.Update(waitEventMsg(poller.Event{Kind: poller.KindProfileReady}))
	m = next.(waitModel)
	assert.True(t, m.profileDone)
	assert.False(t, m.pdfDone)
	assert.False(t, isQuit(t, cmd))

	next, cmd = m.Update(waitEventMsg(poller.Event{Kind: poller.KindPDFReady}))
	m = next.(waitModel)
	assert.True(t, m.pdfDone)
	assert.False(t, isQuit(t, cmd))
}

func TestWaitModel_CompletionQuits(t *testing.T) {
	m := newWaitModel("p-1", nil, func() {})

	next, cmd := m.Update(waitEventMsg(poller.Event{Kind: poller.KindCompleted}))
	m = next.(waitModel)
	assert.True(t, m.completed)
	assert.True(t, m.profileDone)
	assert.True(t, m.pdfDone)
	assert.True(t, isQuit(t, cmd))
	assert.Empty(t, m.View())
}

func TestWaitModel_TimeoutQuits(t *testing.T) {
	m := newWaitModel("p-1", nil, func() {})

	next, cmd := m.Update(waitEventMsg(poller.Event{Kind: poller.KindTimedOut}))
	m = next.(waitModel)
	assert.True(t, m.timedOut)
	assert.False(t, m.completed)
	assert.True(t, isQuit(t, cmd))
}

func TestWaitModel_QuitKeyCancelsWatch(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	var cancelled bool
	m := newWaitModel("p-1", nil, func() { cancelled = true; cancel() })

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(waitModel)
	assert.True(t, m.quitting)
	assert.True(t, cancelled)
	assert.True(t, isQuit(t, cmd))
}

func TestWaitModel_ClosedChannelQuits(t *testing.T) {
	events := make(chan poller.Event)
	close(events)
	m := newWaitModel("p-1", events, func() {})

	msg := waitForEvent(events)()
	require.IsType(t, waitClosedMsg{}, msg)
	_, cmd := m.Update(msg)
	assert.True(t, isQuit(t, cmd))
}

func TestWaitModel_ViewShowsBothArtifacts(t *testing.T) {
	m := newWaitModel("p-1", nil, func() {})
	view := m.View()
	assert.Contains(t, view, "Profil client")
	assert.Contains(t, view, "Rapport PDF")
}
