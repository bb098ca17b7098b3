package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/VentureBot_Go/internal/dice"
)

func newLadderCmd() *cobra.Command {
	var shift int

	cmd := &cobra.Command{
		Use:   "ladder [die]",
		Short: "Show the die ladder, or where a die lands after a shift",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, strings.Join(dice.Ladder(), " < "))
				return nil
			}

			die := strings.ToLower(strings.TrimSpace(args[0]))
			if !dice.Valid(die) {
				return fmt.Errorf("unknown die %q, expected one of %s", args[0], strings.Join(dice.Ladder(), ", "))
			}
			shifted := dice.Shift(die, shift)
			fmt.Fprintf(out, "%s %+d -> %s (%s, max %d)\n", die, shift, shifted, dice.Formula(shifted), dice.Sides(shifted))
			return nil
		},
	}

	cmd.Flags().IntVar(&shift, "shift", 0, "Steps to move along the ladder; clamps at both ends")
	return cmd
}
