package main

import (
	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		rf             retirementFlags
		from, to, step decimal.Decimal
		workers        int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare retirement outcomes across a range of expected returns",
		Example: `  finplan sweep --from 4 --to 8 --step 0.5
  finplan sweep --monthly 1000 --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := rf.input(cmd, a.now())
			if err != nil {
				return err
			}
			rates, err := calculation.RateRange(from, to, step)
			if err != nil {
				return err
			}
			a.logger(cmd).Infof("sweeping %d return rates on %d workers", len(rates), workers)
			results, err := calculation.SweepReturnRates(cmd.Context(), in, rates, workers)
			if err != nil {
				return err
			}
			return a.render(cmd, output.SweepReport(results, a.now()))
		},
	}

	rf.register(cmd)
	decimalFlag(cmd, &from, "from", decimal.NewFromInt(3), "Lowest expected return in percent")
	decimalFlag(cmd, &to, "to", decimal.NewFromInt(10), "Highest expected return in percent")
	decimalFlag(cmd, &step, "step", decimal.NewFromInt(1), "Increment between returns in percent")
	cmd.Flags().IntVar(&workers, "workers", calculation.DefaultSweepWorkers, "Projections to run concurrently")
	return cmd
}
