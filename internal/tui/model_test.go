package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/demosh/demosh/internal/interp"
	"github.com/demosh/demosh/internal/logging"
	"github.com/demosh/demosh/internal/session"
	"github.com/demosh/demosh/internal/vfs"
)

func newTestModel() Model {
	st := session.New("user", "root", "android", "/home/user")
	return NewModel(st, vfs.DefaultTree(), interp.New(logging.NewNullLogger()))
}

func typeLine(m Model, line string) Model {
	for _, r := range line {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(m Model, key tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(Model)
}

func TestModel_EnterDispatches(t *testing.T) {
	m := newTestModel()
	m = typeLine(m, "mkdir notes")
	m = press(m, tea.KeyEnter)

	_, ok := m.Tree().Lookup("/home/user/notes")
	require.True(t, ok)
	require.Empty(t, m.input.Value())
	require.Len(t, m.st.Transcript, 1) // the command record; mkdir has no output
}

func TestModel_CtrlCAbortsInput(t *testing.T) {
	m := newTestModel()
	m = typeLine(m, "mkdi")
	m = press(m, tea.KeyCtrlC)

	require.Empty(t, m.input.Value())
	require.Len(t, m.st.Transcript, 1)
	require.Equal(t, "mkdi^C", m.st.Transcript[0].Text)
	// The aborted line was never dispatched or remembered.
	require.Empty(t, m.st.History)
}

func TestModel_HistoryNavigation(t *testing.T) {
	m := newTestModel()
	m = typeLine(m, "pwd")
	m = press(m, tea.KeyEnter)
	m = typeLine(m, "whoami")
	m = press(m, tea.KeyEnter)

	m = press(m, tea.KeyUp)
	require.Equal(t, "whoami", m.input.Value())
	m = press(m, tea.KeyUp)
	require.Equal(t, "pwd", m.input.Value())
	// Saturates at the oldest entry.
	m = press(m, tea.KeyUp)
	require.Equal(t, "pwd", m.input.Value())

	m = press(m, tea.KeyDown)
	require.Equal(t, "whoami", m.input.Value())
	// Past the newest: input clears, recall mode ends.
	m = press(m, tea.KeyDown)
	require.Empty(t, m.input.Value())
	require.False(t, m.st.Recalling())
}

func TestModel_CtrlDQuits(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestModel_ViewShowsPromptAndTranscript(t *testing.T) {
	m := newTestModel()
	m = typeLine(m, "echo hi")
	m = press(m, tea.KeyEnter)

	view := m.View()
	require.Contains(t, view, "user@android:~$")
	require.Contains(t, view, "echo hi")
	require.Contains(t, view, "hi")
}

func TestRenderRecord_ErrorStyling(t *testing.T) {
	plain := RenderRecord(session.Output("ok"))
	require.Equal(t, "ok", plain)

	errLine := RenderRecord(session.ErrorLine("bad"))
	require.Contains(t, errLine, "bad")

	cmd := RenderRecord(session.Record{Kind: session.RecordCommand, Prompt: "p$ ", Text: "ls"})
	require.True(t, strings.HasSuffix(cmd, "ls"))
}
