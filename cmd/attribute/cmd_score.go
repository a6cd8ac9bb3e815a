package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/attribution/journey"
	"github.com/katalvlaran/attribution/shapley"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score journeys against fitted attribution",
		Long: `Score fits the required mode and scores either a single journey
(--journey "0,1,,2") or every row of a journey CSV (--table file.csv).

Ordered scoring (default) sums position-specific credit. --unordered sums the
credit of each distinct channel once.`,
		Example: `  attribute score --journeys j.csv --values v.csv --journey "0,2"
  attribute score --journeys j.csv --values v.csv --table new.csv --unordered`,
		RunE: func(cmd *cobra.Command, args []string) error {
			single, _ := cmd.Flags().GetString("journey")
			tablePath, _ := cmd.Flags().GetString("table")
			unordered, _ := cmd.Flags().GetBool("unordered")
			if (single == "") == (tablePath == "") {
				return errors.New("exactly one of --journey or --table is required")
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}

			mode := shapley.Ordered
			fit := s.engine.FitOrdered
			if unordered {
				mode = shapley.Unordered
				fit = s.engine.Fit
			}
			if err := fit(); err != nil {
				return err
			}

			var targets *journey.Table
			if single != "" {
				targets, err = journey.ReadCSV(strings.NewReader(single), journey.WithMissingTokens(s.cfg.Input.MissingTokens...))
			} else {
				targets, err = readFile(tablePath, func(f *os.File) (*journey.Table, error) {
					return journey.ReadCSV(f, s.cfg.ReadOptions()...)
				})
			}
			if err != nil {
				return fmt.Errorf("reading journeys to score: %w", err)
			}

			scores, err := s.engine.ScoreTable(targets, mode)
			if err != nil {
				return err
			}
			s.log.Info("scored journeys", "mode", mode, "count", len(scores))

			rep := newReport(s.engine)
			rep.Mode = mode.String()
			rep.Scores = scores

			return rep.write(cmd.OutOrStdout(), s.cfg.Output.Format)
		},
	}

	cmd.Flags().String("journey", "", "Single journey as comma-separated channel ids")
	cmd.Flags().String("table", "", "CSV of journeys to score, one per row")
	cmd.Flags().Bool("unordered", false, "Score against order-agnostic credit")

	return cmd
}
