package main

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/config"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/internal/output"
	"github.com/spf13/cobra"
)

// app carries the persistent flags shared by every command.
type app struct {
	format string
	output string
	locale string
	debug  bool

	settings config.Settings
	now      func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:   "finplan",
		Short: "Savings growth, retirement and budget projections",
		Long: "finplan projects compound savings growth, a two-phase retirement plan and a\n" +
			"monthly budget. Results are estimates for illustration only.",
		SilenceUsage:      true,
		PersistentPreRunE: a.loadSettings,
	}

	root.PersistentFlags().StringVarP(&a.format, "format", "f", "console", "Output format (console, console-verbose, csv, detailed-csv, json, yaml, html, pdf)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Write the report to this file instead of stdout")
	root.PersistentFlags().StringVar(&a.locale, "locale", output.DefaultLocale, "Locale for currency display")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Log per-period calculation detail")

	root.AddCommand(
		newGrowthCmd(a),
		newRetireCmd(a),
		newBudgetCmd(a),
		newRunCmd(a),
		newSweepCmd(a),
		newExampleConfigCmd(a),
		newInteractiveCmd(a),
		newSettingsCmd(a),
	)
	return root
}

// loadSettings fills format and locale from the settings file unless set on the command line.
func (a *app) loadSettings(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings()
	if err != nil {
		pterm.Warning.WithWriter(cmd.ErrOrStderr()).Printfln("%v; using defaults", err)
		s = config.DefaultSettings()
	}
	a.settings = s

	if !cmd.Flags().Changed("format") && s.General.DefaultFormat != "" {
		a.format = s.General.DefaultFormat
	}
	if !cmd.Flags().Changed("locale") && s.General.Locale != "" {
		a.locale = s.General.Locale
	}
	return nil
}

func (a *app) logger(cmd *cobra.Command) calculation.Logger {
	return newPtermLogger(cmd.ErrOrStderr(), a.debug)
}

// render writes the report to --output when given, otherwise to the command's stdout.
func (a *app) render(cmd *cobra.Command, report *domain.Report) error {
	if a.output != "" {
		path, err := output.GenerateReport(report, a.format, a.locale, a.output)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", path)
		return nil
	}
	return output.RenderReport(cmd.OutOrStdout(), report, a.format, a.locale)
}

// runScenario runs one ad hoc scenario through the engine and renders it.
func (a *app) runScenario(cmd *cobra.Command, title string, scenario domain.Scenario) error {
	return a.runConfiguration(cmd, &domain.Configuration{Name: title, Scenarios: []domain.Scenario{scenario}})
}

func (a *app) runConfiguration(cmd *cobra.Command, cfg *domain.Configuration) error {
	engine := calculation.NewCalculationEngine()
	engine.Debug = a.debug
	engine.SetLogger(a.logger(cmd))

	report, err := engine.RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return a.render(cmd, report)
}
