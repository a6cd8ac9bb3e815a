package main

import (
	"github.com/spf13/cobra"
)

func newFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit channel attribution and print credit per channel",
		Long: `Fit computes channel credit from the journeys and values.

By default both the order-agnostic (--unordered) and the position-aware
(--ordered) fits run. Pass one of the flags to run only that mode.`,
		Example: `  attribute fit --journeys journeys.csv --values values.csv
  attribute fit --ordered --format json --config attribution.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ordered, _ := cmd.Flags().GetBool("ordered")
			unordered, _ := cmd.Flags().GetBool("unordered")
			if !ordered && !unordered {
				ordered, unordered = true, true
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}

			rep := newReport(s.engine)
			if unordered {
				if err := s.engine.Fit(); err != nil {
					return err
				}
				if err := rep.addUnordered(s.engine, s.table); err != nil {
					return err
				}
			}
			if ordered {
				if err := s.engine.FitOrdered(); err != nil {
					return err
				}
				if err := rep.addOrdered(s.engine); err != nil {
					return err
				}
			}
			s.log.Info("fit complete", "ordered", ordered, "unordered", unordered)

			return rep.write(cmd.OutOrStdout(), s.cfg.Output.Format)
		},
	}

	cmd.Flags().Bool("ordered", false, "Run only the position-aware fit")
	cmd.Flags().Bool("unordered", false, "Run only the order-agnostic fit")

	return cmd
}
