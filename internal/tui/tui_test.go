package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/note"
)

func typeText(t *testing.T, m tea.Model, text string) tea.Model {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// ── PasswordModel ───────────────────────────────────────────────────────────

func TestPasswordModel_Submit(t *testing.T) {
	m := NewPasswordModel("OPEN a.note", "Attempt 1 of 3", "")
	typeText(t, m, "s3cret")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(t, cmd))

	pw, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
}

func TestPasswordModel_EmptyPasswordAllowed(t *testing.T) {
	m := NewPasswordModel("OPEN a.note", "", "")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	pw, err := m.Result()
	require.NoError(t, err)
	assert.Empty(t, pw)
}

func TestPasswordModel_Cancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewPasswordModel("OPEN a.note", "", "")
		typeText(t, m, "abc")

		_, cmd := m.Update(tea.KeyMsg{Type: key})
		assert.True(t, isQuit(t, cmd))

		_, err := m.Result()
		assert.ErrorIs(t, err, ErrCancelled)
	}
}

func TestPasswordModel_NotFinishedIsCancelled(t *testing.T) {
	m := NewPasswordModel("OPEN a.note", "", "")
	_, err := m.Result()
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestPasswordModel_ViewMasksInput(t *testing.T) {
	m := NewPasswordModel("OPEN a.note", "Attempt 2 of 3", "wrong password")
	typeText(t, m, "hunter2")

	view := m.View()
	assert.NotContains(t, view, "hunter2")
	assert.Contains(t, view, "Attempt 2 of 3")
	assert.Contains(t, view, "wrong password")
}

// ── NewNotePasswordModel ────────────────────────────────────────────────────

func TestNewNotePasswordModel_Match(t *testing.T) {
	m := NewNewNotePasswordModel("/tmp/new.note")
	typeText(t, m, "pw")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, isQuit(t, cmd), "first enter moves to the confirmation field")

	typeText(t, m, "pw")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(t, cmd))

	pw, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, "pw", pw)
}

func TestNewNotePasswordModel_Mismatch(t *testing.T) {
	m := NewNewNotePasswordModel("/tmp/new.note")
	typeText(t, m, "pw")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(t, m, "px")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, isQuit(t, cmd))
	assert.Equal(t, "passwords do not match", m.errMsg)
	assert.Empty(t, m.inputs[1].Value())

	_, err := m.Result()
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestNewNotePasswordModel_Cancel(t *testing.T) {
	m := NewNewNotePasswordModel("/tmp/new.note")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	_, err := m.Result()
	assert.ErrorIs(t, err, ErrCancelled)
}

// ── EditorModel ─────────────────────────────────────────────────────────────

func TestEditorModel_SaveKeepsPrefilledContent(t *testing.T) {
	m := NewEditorModel("/tmp/a.note", "hello")
	typeText(t, m, " world")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, isQuit(t, cmd))

	text, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestEditorModel_Discard(t *testing.T) {
	m := NewEditorModel("/tmp/a.note", "hello")
	typeText(t, m, "!!")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(t, cmd))

	_, err := m.Result()
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestEditorModel_CharLimit(t *testing.T) {
	m := NewEditorModel("/tmp/a.note", strings.Repeat("x", note.MaxContentLength))
	typeText(t, m, "y")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	text, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, note.MaxContentLength, len([]rune(text)))
	assert.NotContains(t, text, "y")
}

func TestEditorModel_ViewShowsCounter(t *testing.T) {
	m := NewEditorModel("/tmp/a.note", "abc")
	assert.Contains(t, m.View(), "3/1000 characters")
}

func TestEditorModel_WindowResize(t *testing.T) {
	m := NewEditorModel("/tmp/a.note", "")
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 30, m.area.Height())
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, ".../c.note", fitText("/a/b/c.note", 10))
	assert.Equal(t, "ote", fitText("/a/b/c.note", 3))
	assert.Equal(t, "unchanged", fitText("unchanged", 0))
}

func TestAttemptInfo(t *testing.T) {
	assert.Equal(t, "Attempt 2 of 3", attemptInfo(2, 3))
	assert.Empty(t, attemptInfo(1, 1))
}
