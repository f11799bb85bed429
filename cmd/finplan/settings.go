package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rpgo/finplan/internal/config"
	"github.com/rpgo/finplan/internal/output"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change saved defaults",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the saved settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				key := config.GetAPIKey(a.settings)
				masked := "(not set)"
				if key != "" {
					masked = config.MaskAPIKey(key)
				}
				file := config.SettingsPath()
				if !config.SettingsExist() {
					file += " (not created, showing defaults)"
				}
				data := pterm.TableData{
					{"Setting", "Value"},
					{"File", file},
					{"Locale", a.settings.General.Locale},
					{"Default format", a.settings.General.DefaultFormat},
					{"API key", masked},
				}
				out, err := pterm.DefaultTable.WithHasHeader().WithBoxed().
					WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
					WithData(data).Srender()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set-key <key>",
			Short: "Save an API key (" + config.APIKeyEnv + " overrides it)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a.settings.Assistant.APIKey = args[0]
				return a.saveSettings(cmd, "API key "+config.MaskAPIKey(args[0]))
			},
		},
		&cobra.Command{
			Use:   "set-locale <tag>",
			Short: "Save the locale used for currency display",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tag, err := language.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid locale %q: %w", args[0], err)
				}
				a.settings.General.Locale = tag.String()
				return a.saveSettings(cmd, "locale "+tag.String())
			},
		},
		&cobra.Command{
			Use:   "set-format <name>",
			Short: "Save the default output format",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := output.NewFormatter(args[0], a.settings.General.Locale)
				if err != nil {
					return err
				}
				a.settings.General.DefaultFormat = f.Name()
				return a.saveSettings(cmd, "default format "+f.Name())
			},
		},
	)
	return cmd
}

func (a *app) saveSettings(cmd *cobra.Command, what string) error {
	if err := config.SaveSettings(a.settings); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", what, config.SettingsPath())
	return nil
}
