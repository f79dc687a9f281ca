package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jpfaraco/colorguru/internal/cli"
	"github.com/jpfaraco/colorguru/internal/palette"
)

var reportMarkdown bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Accessibility report with perceptual step sizes",
	Long: `Summarize the palette: WCAG levels against white and black, CIELAB
lightness, and the CIEDE2000 difference between neighbouring steps.

Examples:
  colorguru report
  colorguru report --markdown > palette.md`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolvePalette(cmd)
		if err != nil {
			return err
		}
		md := cli.ReportMarkdown(palette.Generate(cfg), cfg)
		out := newOutput(cmd)
		if reportMarkdown {
			return out.Print(md)
		}
		rendered, err := cli.RenderMarkdown(md, out.Width(), out.Color())
		if err != nil {
			return err
		}
		return out.Print(rendered)
	},
}

func init() {
	addPaletteFlags(reportCmd)
	reportCmd.Flags().BoolVar(&reportMarkdown, "markdown", false, "print raw Markdown")
}
