package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jpfaraco/colorguru/internal/cli"
	"github.com/jpfaraco/colorguru/internal/i18n"
)

var (
	languagePick bool
	languageList bool
)

var languageCmd = &cobra.Command{
	Use:   "language [lang]",
	Short: "Get or set the display language",
	Long: `Get or set the display language. Use a BCP 47 tag (e.g., en, pt-BR, zh).
$COLORGURU_LANG overrides the configured language.

Examples:
  colorguru language          # show current language
  colorguru language --list   # list supported languages
  colorguru language pt-BR    # set to Portuguese (Brazil)
  colorguru language --pick   # choose interactively`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		langs := i18n.Languages()

		if languageList {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tENGLISH")
			for _, l := range langs {
				marker := ""
				if l.Code == i18n.Current() {
					marker = " *"
				}
				fmt.Fprintf(w, "%s%s\t%s\t%s\n", l.Code, marker, l.Name, l.English)
			}
			return w.Flush()
		}

		var lang string
		switch {
		case len(args) == 1:
			lang = args[0]
		case languagePick:
			items := make([]cli.PickItem, len(langs))
			for i, l := range langs {
				items[i] = cli.PickItem{ID: l.Code, Name: l.Name, Desc: l.English}
			}
			picked, err := cli.Pick(newOutput(cmd), i18n.T("language.label", "Language"), items, i18n.Current())
			if err != nil || picked == "" {
				return err
			}
			lang = picked
		default:
			fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("language.current", "Current language: %s", i18n.Current()))
			if configured := appConfig.ResolveLanguage(); configured != "" {
				if _, ok := i18n.Supported(configured); ok {
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("language.configured", "Configured: %s (not supported, using fallback)", configured))
			}
			return nil
		}

		code, ok := i18n.Supported(lang)
		if !ok {
			return fmt.Errorf("unsupported language %q (see colorguru language --list)", lang)
		}
		cfg := appConfig
		cfg.Language = code
		if err := saveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		appConfig = cfg
		i18n.Init(code)
		fmt.Fprintln(cmd.OutOrStdout(), i18n.Tf("language.set", "Language set to: %s", code))
		return nil
	},
}

func init() {
	languageCmd.Flags().BoolVar(&languagePick, "pick", false, "choose from a list")
	languageCmd.Flags().BoolVar(&languageList, "list", false, "list supported languages")
}
