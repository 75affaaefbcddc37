package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
)

const defaultPasswordLength = 16

func (a *App) newGenpassCommand() *cobra.Command {
	var (
		length  int
		classes string
		copyOut bool
	)

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := crypto.ParseSymbolClasses(classes)
			if err != nil {
				return err
			}

			password, err := a.svc.GeneratePassword(length, set)
			if err != nil {
				return err
			}

			if !copyOut {
				fmt.Fprintln(cmd.OutOrStdout(), password)
				return nil
			}

			if err := a.clipboard(password); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), successLine("Password copied to clipboard"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", defaultPasswordLength, "Password length")
	cmd.Flags().StringVar(&classes, "classes", "all", "Comma-separated symbol classes: lower, upper, digits, symbols, all")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the password to the clipboard instead of printing it")

	return cmd
}
