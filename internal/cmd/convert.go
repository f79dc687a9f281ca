package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/jpfaraco/colorguru/internal/cli"
	"github.com/jpfaraco/colorguru/internal/colormath"
)

type colorInfo struct {
	Hex       string        `json:"hex"`
	RGB       colormath.RGB `json:"rgb"`
	HSL       colormath.HSL `json:"hsl"`
	Luminance float64       `json:"luminance"`
}

var convertCmd = &cobra.Command{
	Use:   "convert <hex>...",
	Short: "Show colors as hex, RGB and HSL",
	Long: `Convert hex colors (#RGB or #RRGGBB, with or without #) to RGB and HSL,
with relative luminance and contrast against white and black.

Examples:
  colorguru convert "#3366CC"
  colorguru convert f00 0f0 00f --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputJSON {
			list := make([]colorInfo, 0, len(args))
			for _, a := range args {
				rgb, err := colormath.HexToRGB(a)
				if err != nil {
					return err
				}
				list = append(list, colorInfo{
					Hex:       colormath.RGBToHex(rgb),
					RGB:       rgb,
					HSL:       colormath.RGBToHSL(rgb),
					Luminance: colormath.Luminance(rgb),
				})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		}

		out := newOutput(cmd)
		for i, a := range args {
			s, err := cli.ColorDetails(a)
			if err != nil {
				return err
			}
			if i > 0 {
				s = "\n" + s
			}
			if err := out.Print(s); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
}
