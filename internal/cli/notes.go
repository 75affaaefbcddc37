package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-keeper/internal/tui"
)

func (a *App) newOpenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Decrypt a note and print it to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, _, err := a.openNote(cmd, args[0])
			if err != nil {
				return err
			}

			_, err = io.WriteString(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func (a *App) newEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <path>",
		Short: "Open or create a note in the editor and save it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var content, password string
			_, err := os.Stat(path)
			switch {
			case err == nil:
				content, password, err = a.openNote(cmd, path)
			case errors.Is(err, fs.ErrNotExist):
				password, err = a.newNotePassword(cmd, path)
			default:
				err = fmt.Errorf("stat note %s: %w", path, err)
			}
			if err != nil {
				return err
			}

			edited, err := a.ui.Edit(cmd.Context(), path, content)
			if errors.Is(err, tui.ErrCancelled) {
				fmt.Fprintln(cmd.ErrOrStderr(), warningLine("Changes to %s discarded", Path.Sprint(path)))
				return nil
			}
			if err != nil {
				return err
			}

			if err := a.saveNote(cmd, path, password, edited); err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), successLine("Saved %s", Path.Sprint(path)))
			return nil
		},
	}
}

func (a *App) newWriteCommand() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "write <path>",
		Short: "Encrypt text from --text or stdin into a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if !cmd.Flags().Changed("text") {
				// stdin is consumed by the text, nothing is left for a prompt
				if !a.passwordGiven(cmd) {
					return ErrPasswordRequired
				}
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}

			password, err := a.newNotePassword(cmd, path)
			if err != nil {
				return err
			}

			if err := a.saveNote(cmd, path, password, text); err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), successLine("Saved %s", Path.Sprint(path)))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Note text (stdin is read when omitted)")
	return cmd
}

func (a *App) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a note with its recent and catalog entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if err := a.svc.Delete(cmd.Context(), path); err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), successLine("Deleted %s", Path.Sprint(path)))
			return nil
		},
	}
}

// openNote decrypts path with --password when given, otherwise through the
// interactive prompt.
func (a *App) openNote(cmd *cobra.Command, path string) (content, password string, err error) {
	if !a.passwordGiven(cmd) {
		return a.svc.OpenInteractive(cmd.Context(), path, a.ui)
	}

	stop := a.startSpinner(cmd.ErrOrStderr(), "Decrypting "+path+"...")
	content, err = a.svc.Open(cmd.Context(), path, a.password)
	stop()

	return content, a.password, err
}

// newNotePassword returns --password when given, otherwise asks for a new
// password twice.
func (a *App) newNotePassword(cmd *cobra.Command, path string) (string, error) {
	if a.passwordGiven(cmd) {
		return a.password, nil
	}
	return a.ui.NewNotePassword(cmd.Context(), path)
}

func (a *App) saveNote(cmd *cobra.Command, path, password, content string) error {
	stop := a.startSpinner(cmd.ErrOrStderr(), "Encrypting "+path+"...")
	defer stop()

	return a.svc.Save(cmd.Context(), path, password, content)
}
