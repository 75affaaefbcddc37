package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// startSpinner shows message with a spinner on w while slow work (key
// derivation) runs. Nothing is drawn in verbose mode or when w is not a
// terminal. The returned function stops the spinner and must always be
// called.
func (a *App) startSpinner(w io.Writer, message string) func() {
	f, ok := w.(*os.File)
	if a.verbose || !ok || !isatty.IsTerminal(f.Fd()) {
		a.logger.Debug().Str("func", "*App.startSpinner").Msg(message)
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	if err := s.Color("cyan"); err != nil {
		a.logger.Warn().Err(err).Msg("failed to set spinner color")
	}

	s.Start()
	return s.Stop
}
