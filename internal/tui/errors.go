package tui

import "errors"

var (
	// ErrCancelled is returned when the user leaves a prompt or the editor
	// with esc or ctrl+c.
	ErrCancelled = errors.New("cancelled by user")

	// ErrUnexpectedModel means the program returned a model of another type.
	ErrUnexpectedModel = errors.New("unexpected terminal UI model")
)
