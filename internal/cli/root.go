package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-keeper/internal/config"
)

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "notekeeper",
		Short: "Password-protected encrypted notes",
		Long: `notekeeper stores short text notes in AES-256 encrypted files,
each protected by its own password, and remembers the notes you used last.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	a.flags = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&a.password, "password", "", "Note password (skips the interactive prompt)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level and disable the spinner")

	root.AddCommand(
		a.newOpenCommand(),
		a.newEditCommand(),
		a.newWriteCommand(),
		a.newRecentCommand(),
		a.newDeleteCommand(),
		a.newCatalogCommand(),
		a.newGenpassCommand(),
		a.newVersionCommand(),
	)

	return root
}
