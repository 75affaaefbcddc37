// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
)

const pathWidth = 48

// PasswordModel is the Bubble Tea model for a single masked password input.
// enter submits whatever was typed (an empty password is allowed); esc and
// ctrl+c cancel.
type PasswordModel struct {
	title string
	info  string

	input     textinput.Model
	errMsg    string
	submitted bool
	cancelled bool
}

// NewPasswordModel creates a focused [PasswordModel]. info is shown under the
// title (e.g. the attempt counter); errMsg is the previous failure, if any.
func NewPasswordModel(title, info, errMsg string) *PasswordModel {
	return &PasswordModel{
		title:  title,
		info:   info,
		errMsg: errMsg,
		input:  newPasswordInput("password"),
	}
}

func newPasswordInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = crypto.MaxPasswordLength
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	in.Focus()
	return in
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *PasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *PasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *PasswordModel) View() string {
	var b strings.Builder
	if m.info != "" {
		b.WriteString(infoStyle.Render(m.info))
		b.WriteString("\n\n")
	}
	b.WriteString("Password │ ")
	b.WriteString(m.input.View())

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage(m.title, b.String(), "enter: confirm │ esc: cancel")
}

// Result returns the typed password, or [ErrCancelled].
func (m *PasswordModel) Result() (string, error) {
	if m.cancelled || !m.submitted {
		return "", ErrCancelled
	}
	return m.input.Value(), nil
}

// NewNotePasswordModel asks for the password of a note that does not exist
// yet. The password has to be typed twice.
type NewNotePasswordModel struct {
	title string

	inputs    []textinput.Model
	focus     int
	errMsg    string
	submitted bool
	cancelled bool
}

// NewNewNotePasswordModel creates the two-field password form for path.
func NewNewNotePasswordModel(path string) *NewNotePasswordModel {
	confirm := newPasswordInput("repeat password")
	confirm.Blur()

	return &NewNotePasswordModel{
		title:  "NEW NOTE " + fitText(path, pathWidth),
		inputs: []textinput.Model{newPasswordInput("password"), confirm},
	}
}

// Init implements [tea.Model].
func (m *NewNotePasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - esc, ctrl+c  : cancel.
//   - tab/shift+tab: switch field.
//   - enter        : move to the confirmation field, or submit when both
//     fields match.
func (m *NewNotePasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "tab", "shift+tab":
			m.switchFocus()
			return m, nil
		case "enter":
			if m.focus == 0 {
				m.switchFocus()
				return m, nil
			}
			if m.inputs[0].Value() != m.inputs[1].Value() {
				m.errMsg = "passwords do not match"
				m.inputs[1].SetValue("")
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *NewNotePasswordModel) View() string {
	var b strings.Builder
	b.WriteString("Password │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nRepeat   │ ")
	b.WriteString(m.inputs[1].View())

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage(m.title, b.String(), "tab: next field │ enter: confirm │ esc: cancel")
}

// Result returns the confirmed password, or [ErrCancelled].
func (m *NewNotePasswordModel) Result() (string, error) {
	if m.cancelled || !m.submitted {
		return "", ErrCancelled
	}
	return m.inputs[0].Value(), nil
}

func (m *NewNotePasswordModel) switchFocus() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func attemptInfo(attempt, max int) string {
	if max <= 1 {
		return ""
	}
	return fmt.Sprintf("Attempt %d of %d", attempt, max)
}
