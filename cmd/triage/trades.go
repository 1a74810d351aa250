package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTradesCmd(get func() *engines) *cobra.Command {
	return &cobra.Command{
		Use:   "trades",
		Short: "List trades and their problem ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range get().estimator.Trades() {
				fmt.Fprintf(w, "%s\t%s\n", t.ID, t.Name)
				for _, p := range t.Problems {
					fmt.Fprintf(w, "  %s\t%s (%s)\n", p.ID, p.Name, p.UrgencyHint)
				}
			}
			return w.Flush()
		},
	}
}
