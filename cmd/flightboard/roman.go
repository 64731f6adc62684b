package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ijuttt/flightboard/internal/numeral"
)

func newRomanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roman <number>...",
		Short: "Print numbers as Roman numerals, as the cycle counter does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("%q is not a number", arg)
				}
				r, err := numeral.Roman(n)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", n, r)
			}
			return nil
		},
	}
}
