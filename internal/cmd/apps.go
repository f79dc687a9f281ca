package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jpfaraco/colorguru/internal/config"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Manage the apps export --open can use",
	Long: `Manage the apps available to export --open.

Only apps from the built-in list can be used; the command each one runs
is never read from the config file.

Examples:
  colorguru apps                  # List apps
  colorguru apps enable inkscape  # Enable an app
  colorguru apps disable vscode   # Disable an app
  colorguru apps default zed      # Use zed when --open has no value`,
	RunE: runAppsList,
}

var appsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List apps with enabled/disabled status",
	Args:  cobra.NoArgs,
	RunE:  runAppsList,
}

var appsEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Enable an app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAppEnabled(cmd, args[0], true)
	},
}

var appsDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Disable an app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAppEnabled(cmd, args[0], false)
	},
}

var appsDefaultCmd = &cobra.Command{
	Use:   "default [id]",
	Short: "Get or set the app used by export --open",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			app, ok := appConfig.GetApp("")
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No enabled apps.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", app.ID, app.Name)
			return nil
		}
		if _, ok := appConfig.GetApp(args[0]); !ok {
			return fmt.Errorf("app %q is not enabled", args[0])
		}
		cfg := appConfig
		cfg.Opener = args[0]
		if err := saveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		appConfig = cfg
		fmt.Fprintf(cmd.OutOrStdout(), "Default app set to %q.\n", args[0])
		return nil
	},
}

func runAppsList(cmd *cobra.Command, args []string) error {
	if outputJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(appConfig.Apps)
	}
	if len(appConfig.Apps) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No apps configured.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tENABLED\tCOMMAND")
	for _, app := range appConfig.Apps {
		enabled := "no"
		if app.Enabled {
			enabled = "yes"
		}
		if app.ID == appConfig.Opener {
			enabled += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", app.ID, app.Name, enabled, strings.Join(app.Exec, " "))
	}
	return w.Flush()
}

func setAppEnabled(cmd *cobra.Command, id string, enabled bool) error {
	cfg := appConfig
	cfg.Apps = append([]config.AppConfig(nil), appConfig.Apps...)
	found := false
	for i := range cfg.Apps {
		if cfg.Apps[i].ID == id {
			cfg.Apps[i].Enabled = enabled
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown app %q", id)
	}
	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	appConfig = cfg

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "App %q %s.\n", id, state)
	return nil
}

func init() {
	appsCmd.AddCommand(appsListCmd)
	appsCmd.AddCommand(appsEnableCmd)
	appsCmd.AddCommand(appsDisableCmd)
	appsCmd.AddCommand(appsDefaultCmd)
	appsCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON")
}
