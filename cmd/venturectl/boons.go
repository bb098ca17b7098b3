package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/VentureBot_Go/internal/boon"
	"github.com/osse101/VentureBot_Go/internal/domain"
)

type parseReport struct {
	Boons    []domain.Boon   `json:"boons"`
	Rejected []boon.Rejected `json:"rejected"`
}

func newBoonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boons",
		Short: "Inspect boon text",
	}
	cmd.AddCommand(newBoonsParseCmd())
	return cmd
}

func newBoonsParseCmd() *cobra.Command {
	var asJSON, strict bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse boon text from a file or stdin and report dropped lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			boons, rejected := boon.ParseWithReport(string(data))
			if boons == nil {
				boons = []domain.Boon{}
			}
			if rejected == nil {
				rejected = []boon.Rejected{}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if err := printJSON(out, parseReport{Boons: boons, Rejected: rejected}); err != nil {
					return err
				}
			} else {
				for _, b := range boons {
					fmt.Fprintf(out, "%d. %s (%d gp) window=%s limit=%s", b.Index, b.Name, b.Cost, b.Window, limitText(b.Limit))
					if b.Group != "" {
						fmt.Fprintf(out, " group=%s", b.Group)
					}
					if b.Reward != "" {
						fmt.Fprintf(out, " reward=%s", b.Reward)
					}
					fmt.Fprintln(out)
				}
				for _, r := range rejected {
					fmt.Fprintf(out, "line %d dropped: %s (%s)\n", r.Line, r.Reason, r.Text)
				}
			}

			if strict && len(rejected) > 0 {
				return fmt.Errorf("%d boon line(s) rejected", len(rejected))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the parse report as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any line is rejected")
	return cmd
}

func limitText(limit int) string {
	if limit <= 0 {
		return "unlimited"
	}
	return fmt.Sprint(limit)
}
