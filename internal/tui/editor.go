package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/note"
)

// EditorModel is the Bubble Tea model for editing note text. The textarea
// refuses input beyond note.MaxContentLength characters.
//
// Keys: ctrl+s saves and exits, esc and ctrl+c abandon the edit.
type EditorModel struct {
	path string

	area      textarea.Model
	saved     bool
	cancelled bool
}

// NewEditorModel creates an editor for path pre-filled with content.
func NewEditorModel(path, content string) *EditorModel {
	area := textarea.New()
	area.CharLimit = note.MaxContentLength
	area.ShowLineNumbers = false
	area.Placeholder = "Type your note..."
	area.SetWidth(72)
	area.SetHeight(16)
	area.SetValue(content)
	area.Focus()

	return &EditorModel{
		path: path,
		area: area,
	}
}

// Init implements [tea.Model].
func (m *EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements [tea.Model].
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// leave room for the page frame
		m.area.SetWidth(max(msg.Width-8, 20))
		m.area.SetHeight(max(msg.Height-10, 3))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			m.saved = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *EditorModel) View() string {
	var b strings.Builder
	b.WriteString(m.area.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d characters", utf8.RuneCountInString(m.area.Value()), note.MaxContentLength)))

	return renderPage("EDIT "+fitText(m.path, pathWidth), b.String(), "ctrl+s: save │ esc: discard")
}

// Result returns the edited text, or [ErrCancelled] if the edit was
// abandoned.
func (m *EditorModel) Result() (string, error) {
	if m.cancelled || !m.saved {
		return "", ErrCancelled
	}
	return m.area.Value(), nil
}
