package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/VentureBot_Go/internal/event"
)

func newDeadLettersCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "deadletters <file>",
		Short: "List events the publisher dead-lettered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			defer f.Close()

			entries, err := event.ReadDeadLetters(f)
			if err != nil {
				return err
			}
			if entries == nil {
				entries = []event.DeadLetterEntry{}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, entries)
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s %-22s attempts=%d", e.Timestamp.Format("2006-01-02T15:04:05Z"), e.Event.Type, e.Attempts)
				if id := e.TurnID(); id != "" {
					fmt.Fprintf(out, " turn=%s", id)
				}
				if e.LastError != "" {
					fmt.Fprintf(out, " error=%q", e.LastError)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%d dead-lettered event(s)\n", len(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}
