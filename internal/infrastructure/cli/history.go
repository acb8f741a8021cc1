package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hc12r/filipeX/internal/app"
)

const defaultHistoryLimit = 20

func newHistoryCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent REPL entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := container.History.Recent(limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No history recorded yet.")
				return nil
			}
			for _, rec := range records {
				marker := " "
				if rec.IsError {
					marker = "!"
				}
				fmt.Fprintf(out, "%-18s %s [%s] %s\n",
					humanize.Time(rec.Timestamp), marker, shortSession(rec.Session), rec.Source)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "Max entries to show")
	return cmd
}

func shortSession(session string) string {
	if len(session) > 8 {
		return session[:8]
	}
	return session
}
