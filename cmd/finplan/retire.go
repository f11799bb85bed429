package main

import (
	"github.com/rpgo/finplan/internal/domain"
	"github.com/spf13/cobra"
)

func newRetireCmd(a *app) *cobra.Command {
	var rf retirementFlags

	cmd := &cobra.Command{
		Use:   "retire",
		Short: "Project savings through accumulation and retirement withdrawals",
		Example: `  finplan retire
  finplan retire --current-age 40 --monthly 1500 --return 6 --format console-verbose
  finplan retire --birth-date 1985-04-02 --format pdf --output plan.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := rf.input(cmd, a.now())
			if err != nil {
				return err
			}
			return a.runScenario(cmd, "Retirement Projection", domain.Scenario{Name: "Retirement", Retirement: &in})
		},
	}
	rf.register(cmd)
	return cmd
}
