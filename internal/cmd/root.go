// Package cmd provides the CLI commands for colorguru.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpfaraco/colorguru/internal/applog"
	"github.com/jpfaraco/colorguru/internal/cli"
	"github.com/jpfaraco/colorguru/internal/config"
	"github.com/jpfaraco/colorguru/internal/i18n"
)

// global flags
var (
	logPath    string
	configPath string
	noColor    bool
	outputJSON bool
)

// appConfig is loaded once per invocation before any command runs.
var appConfig = config.Default()

// rootCmd is the root command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "colorguru",
	Short: "Generate accessible color palettes from eased HSL ramps",
	Long: `colorguru builds color palettes by moving hue, saturation and brightness
between two endpoints along easing curves, and scores every color against
WCAG contrast levels.

Running without a subcommand prints the palette from your configuration.

Commands:
  generate  Print a palette with contrast scores
  export    Write CSS, JSON, text, SVG or PNG
  graph     Plot hue, saturation, brightness and luminance per step
  report    Accessibility report with perceptual step sizes
  curves    List the easing curves
  contrast  Contrast ratio between two colors
  convert   Show a color as hex, RGB and HSL
  watch     Re-render whenever a palette file changes

Examples:
  colorguru                                  # default palette
  colorguru -n 9 --hue-start 200 --hue-end 320
  colorguru export -f css -o palette.css
  colorguru report --palette brand.toml`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return applog.Log.Close() },
	RunE:               runGenerate,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup opens the debug log, loads .env files and the config, and selects
// the display language.
func setup(cmd *cobra.Command, args []string) error {
	if logPath != "" {
		if err := applog.Init(logPath); err != nil {
			return fmt.Errorf("open log: %w", err)
		}
	}
	if err := config.LoadEnv(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg

	i18n.Init(i18n.ResolveLocale(cfg.Language))
	applog.Log.Debug("command start", "cmd", cmd.CommandPath(), "lang", i18n.Current())
	return nil
}

func loadConfig() (config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

func saveConfig(cfg config.Config) error {
	if configPath != "" {
		return config.SaveTo(configPath, cfg)
	}
	return config.Save(cfg)
}

func configFile() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.Path()
}

// newOutput honors --no-color, NO_COLOR and the config's color setting.
func newOutput(cmd *cobra.Command) *cli.Output {
	color := appConfig.Color && !noColor && os.Getenv("NO_COLOR") == ""
	return cli.NewOutput(cmd.OutOrStdout(), color)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write debug log to file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $COLORGURU_HOME/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	addPaletteFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(curvesCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(appsCmd)
	rootCmd.AddCommand(languageCmd)
	rootCmd.AddCommand(versionCmd)
}
