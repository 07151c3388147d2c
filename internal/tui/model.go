// Package tui renders the simulated shell session in the terminal and
// forwards line-edit events to the interpreter. It owns no session
// semantics: every submitted line goes through interp.Execute and the
// view is a pure function of the session transcript.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/demosh/demosh/internal/interp"
	"github.com/demosh/demosh/internal/session"
	"github.com/demosh/demosh/internal/vfs"
)

// Model is the bubbletea model for the terminal view.
type Model struct {
	st    *session.State
	tree  vfs.Tree
	in    *interp.Interp
	input textinput.Model
	keys  KeyMap

	width  int
	height int
}

// NewModel wires a session, a tree revision, and an interpreter into a
// terminal view. The session prompt is rendered by the view itself, so
// the input component carries no prompt of its own.
func NewModel(st *session.State, tree vfs.Tree, in *interp.Interp) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 512
	ti.Focus()

	return Model{
		st:    st,
		tree:  tree,
		in:    in,
		input: ti,
		keys:  DefaultKeyMap(),
	}
}

// Tree returns the current filesystem revision, for inspection in tests.
func (m Model) Tree() vfs.Tree { return m.tree }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Interrupt):
			// Abort the current input line: record it with the ^C
			// marker, never dispatch it.
			m.st.AppendInterrupted(m.input.Value())
			m.st.ResetRecall()
			m.input.SetValue("")
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			m.tree, _ = m.in.Execute(m.st, m.tree, m.input.Value())
			m.input.SetValue("")
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if line, ok := m.st.RecallPrev(); ok {
				m.input.SetValue(line)
				m.input.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, m.keys.Next):
			if line, ok := m.st.RecallNext(); ok {
				m.input.SetValue(line)
				m.input.CursorEnd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(BannerStyle.Render(Banner))
	b.WriteString("\n")

	for _, rec := range m.st.Transcript {
		b.WriteString(RenderRecord(rec))
		b.WriteString("\n")
	}

	b.WriteString(PromptStyle.Render(m.st.Prompt()))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.keys.HelpText()))

	return b.String()
}

// RenderRecord renders one transcript record as a styled line.
func RenderRecord(rec session.Record) string {
	if rec.Kind == session.RecordCommand {
		return PromptStyle.Render(rec.Prompt) + rec.Text
	}
	if rec.IsErr {
		return ErrorStyle.Render(rec.Text)
	}
	if strings.HasSuffix(rec.Text, "/") {
		return DirStyle.Render(rec.Text)
	}
	return rec.Text
}

// Run starts the terminal view and blocks until the user quits.
func Run(st *session.State, tree vfs.Tree, in *interp.Interp) error {
	p := tea.NewProgram(NewModel(st, tree, in))
	_, err := p.Run()
	return err
}
