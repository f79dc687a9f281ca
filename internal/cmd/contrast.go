package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/jpfaraco/colorguru/internal/cli"
	"github.com/jpfaraco/colorguru/internal/colormath"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Contrast ratio between two colors",
	Long: `Print the WCAG contrast ratio between two hex colors.

Examples:
  colorguru contrast "#333" "#FAFAFA"
  colorguru contrast 1a1a1a ffffff --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputJSON {
			fg, err := colormath.HexToRGB(args[0])
			if err != nil {
				return err
			}
			bg, err := colormath.HexToRGB(args[1])
			if err != nil {
				return err
			}
			ratio := colormath.ContrastRatio(fg, bg)
			return json.NewEncoder(cmd.OutOrStdout()).Encode(struct {
				Foreground string          `json:"foreground"`
				Background string          `json:"background"`
				Ratio      float64         `json:"ratio"`
				Level      colormath.Level `json:"level"`
			}{colormath.RGBToHex(fg), colormath.RGBToHex(bg), ratio, colormath.WCAGLevel(ratio, false)})
		}

		s, err := cli.Contrast(args[0], args[1])
		if err != nil {
			return err
		}
		return newOutput(cmd).Print(s)
	},
}

func init() {
	contrastCmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
}
