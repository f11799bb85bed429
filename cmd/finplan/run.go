package main

import (
	"fmt"

	"github.com/rpgo/finplan/internal/config"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <config.yaml>",
		Short: "Run every scenario in a YAML configuration file",
		Example: `  finplan example-config plan.yaml
  finplan run plan.yaml --format html --output plan.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			parser.Now = a.now
			cfg, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.logger(cmd).Infof("loaded %d scenarios from %s", len(cfg.Scenarios), args[0])
			return a.runConfiguration(cmd, cfg)
		},
	}
}

func newExampleConfigCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config <file>",
		Short: "Write an example scenario configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
			return nil
		},
	}
}
