package cli

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"FitBuddyGo/models"
)

func newSettingsCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show local preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := deps.Store.Settings()
			table := uitable.New()
			table.AddRow("Language", string(settings.Language))
			table.AddRow("Theme", string(settings.Theme))
			table.AddRow("Unit", string(settings.Unit))
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.AddCommand(newSettingsSetCommand(deps))
	return cmd
}

func newSettingsSetCommand(deps *Deps) *cobra.Command {
	var language, theme, unit string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update local preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := deps.Store.Settings()

			if cmd.Flags().Changed("language") {
				l := models.Language(language)
				if !l.IsValid() {
					return fmt.Errorf("invalid language %q, expected en or zh", language)
				}
				settings.Language = l
			}
			if cmd.Flags().Changed("theme") {
				t := models.Theme(theme)
				if !t.IsValid() {
					return fmt.Errorf("invalid theme %q, expected light, dark or system", theme)
				}
				settings.Theme = t
			}
			if cmd.Flags().Changed("unit") {
				u := models.Unit(unit)
				if !u.IsValid() {
					return fmt.Errorf("invalid unit %q, expected metric or imperial", unit)
				}
				settings.Unit = u
			}

			if err := deps.Store.SaveSettings(settings); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "en|zh")
	cmd.Flags().StringVar(&theme, "theme", "", "light|dark|system")
	cmd.Flags().StringVar(&unit, "unit", "", "metric|imperial")
	return cmd
}
