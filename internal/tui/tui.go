// Package tui holds the interactive terminal screens of notekeeper: masked
// password prompts and the note editor.
package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// TUI runs Bubble Tea programs against a terminal. Screens render to the
// configured output (stderr by default) so stdout stays free for note
// content.
type TUI struct {
	in     io.Reader
	out    io.Writer
	logger *logger.Logger
}

// Option configures a [TUI].
type Option func(*TUI)

// WithInput sets the program input.
func WithInput(r io.Reader) Option {
	return func(t *TUI) { t.in = r }
}

// WithOutput sets where screens are rendered.
func WithOutput(w io.Writer) Option {
	return func(t *TUI) { t.out = w }
}

// New returns a TUI reading from stdin and rendering to stderr.
func New(logger *logger.Logger, opts ...Option) *TUI {
	t := &TUI{in: os.Stdin, out: os.Stderr, logger: logger}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// PromptPassword implements [service.PasswordPrompter].
func (t *TUI) PromptPassword(ctx context.Context, req service.PromptRequest) (string, error) {
	errMsg := ""
	if req.LastError != nil {
		errMsg = req.LastError.Error()
	}

	model := NewPasswordModel("OPEN "+fitText(req.Path, pathWidth), attemptInfo(req.Attempt, req.MaxAttempts), errMsg)
	final, err := t.run(ctx, model, false)
	if err != nil {
		return "", err
	}

	result, ok := final.(*PasswordModel)
	if !ok {
		return "", ErrUnexpectedModel
	}
	return result.Result()
}

// NewNotePassword asks for the password of a note about to be created.
func (t *TUI) NewNotePassword(ctx context.Context, path string) (string, error) {
	final, err := t.run(ctx, NewNewNotePasswordModel(path), false)
	if err != nil {
		return "", err
	}

	result, ok := final.(*NewNotePasswordModel)
	if !ok {
		return "", ErrUnexpectedModel
	}
	return result.Result()
}

// Edit opens the editor on content and returns the text the user saved.
func (t *TUI) Edit(ctx context.Context, path, content string) (string, error) {
	final, err := t.run(ctx, NewEditorModel(path, content), true)
	if err != nil {
		return "", err
	}

	result, ok := final.(*EditorModel)
	if !ok {
		return "", ErrUnexpectedModel
	}
	return result.Result()
}

func (t *TUI) run(ctx context.Context, model tea.Model, altScreen bool) (tea.Model, error) {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.run").Msg("terminal UI failed")
		return nil, err
	}
	return final, nil
}
