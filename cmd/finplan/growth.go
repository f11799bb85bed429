package main

import (
	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newGrowthCmd(a *app) *cobra.Command {
	var (
		in     domain.ProjectionInput
		target decimal.Decimal
	)

	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Project compound growth of savings with periodic contributions",
		Example: `  finplan growth --principal 1000 --contribution 100 --rate 5 --years 10
  finplan growth --frequency 4 --target 25000 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc := domain.Scenario{Name: "Growth", Growth: &domain.GrowthScenario{ProjectionInput: in}}
			if cmd.Flags().Changed("target") {
				t := target
				sc.Growth.Target = &t
			}
			return a.runScenario(cmd, "Savings Growth Projection", sc)
		},
	}

	decimalFlag(cmd, &in.Principal, "principal", decimal.NewFromInt(1000), "Starting balance")
	decimalFlag(cmd, &in.PeriodicContribution, "contribution", decimal.NewFromInt(100), "Contribution added every compounding period")
	decimalFlag(cmd, &in.AnnualRatePercent, "rate", decimal.NewFromInt(5), "Annual interest rate in percent")
	cmd.Flags().IntVar(&in.Years, "years", 10, "Number of years to project")
	cmd.Flags().IntVar(&in.CompoundingFrequency, "frequency", domain.CompoundMonthly, "Compounding periods per year (1, 2, 4, 12, 365)")
	decimalFlag(cmd, &target, "target", decimal.Zero, "Report the first year the balance reaches this amount")
	return cmd
}
