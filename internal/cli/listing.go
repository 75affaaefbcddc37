package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04:05"

func (a *App) newRecentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently used notes, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := a.svc.Recent(cmd.Context())
			if err != nil {
				return err
			}

			if len(paths) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), hintLine("No recent notes"))
				return nil
			}

			for i, path := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", Muted.Sprintf("%d", i), path)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <index>",
		Short: "Forget the recent note at index (0 is the most recent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil || index < 0 {
				return fmt.Errorf("%w: %q", ErrInvalidIndex, args[0])
			}

			if err := a.svc.RemoveRecent(cmd.Context(), index); err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), successLine("Removed entry %d from recent notes", index))
			return nil
		},
	})

	return cmd
}

func (a *App) newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List catalogued notes with sizes and timestamps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.svc.Catalog(cmd.Context())
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), hintLine("Catalog is empty"))
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tSIZE\tCREATED\tUPDATED\tLAST OPENED")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
					e.Path, e.SizeBytes, formatTime(e.CreatedAt), formatTime(e.UpdatedAt), formatTimePtr(e.LastOpenedAt))
			}
			return tw.Flush()
		},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return formatTime(*t)
}
