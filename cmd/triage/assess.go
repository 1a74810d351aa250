package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"emergency-triage/internal/model"
)

func newAssessCmd(get func() *engines) *cobra.Command {
	var tradeID, problemID, urgency string

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Estimate priority, cost and wait for a selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, ok := get().estimator.Assess(tradeID, problemID, model.Urgency(urgency))

			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "Selection not recognised, showing a general estimate.")
			}
			fmt.Fprintf(out, "Priority:  %d/10\n", result.PriorityScore)
			fmt.Fprintf(out, "Cost:      £%d - £%d\n", result.EstimatedCost.Min, result.EstimatedCost.Max)
			fmt.Fprintf(out, "Wait:      %s\n", result.EstimatedWaitTime)
			fmt.Fprintf(out, "Action:    %s\n", result.RecommendedAction)
			return nil
		},
	}

	cmd.Flags().StringVar(&tradeID, "trade", "", "trade id, e.g. plumber")
	cmd.Flags().StringVar(&problemID, "problem", "", "problem id, e.g. burst-pipe")
	cmd.Flags().StringVar(&urgency, "urgency", string(model.UrgencySameDay), "emergency | same-day | next-day | scheduled")
	_ = cmd.MarkFlagRequired("trade")
	_ = cmd.MarkFlagRequired("problem")
	return cmd
}
