package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rentcheck_backend/internal/wws/rules"
)

func newRulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List embedded rule set years and summarize the selected one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService(cmd.ErrOrStderr(), 1)
			if err != nil {
				return err
			}
			summary := svc.Rules()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Embedded years\t%v\n", rules.Years())
			fmt.Fprintf(tw, "Selected\t%d (from %s)\n", summary.Year, summary.EffectiveFrom)
			fmt.Fprintf(tw, "Liberalized at\t%.0f points\n", summary.LiberalizationPoints)
			fmt.Fprintf(tw, "Cap exemption rent\t%s\n", summary.CapExemptionRent.StringFixed(2))
			fmt.Fprintf(tw, "Rent table\t%d-%d points, %s-%s\n",
				summary.RentTable.MinPoints, summary.RentTable.MaxPoints,
				summary.RentTable.MinRent.StringFixed(2), summary.RentTable.MaxRent.StringFixed(2))
			return tw.Flush()
		},
	}
}
