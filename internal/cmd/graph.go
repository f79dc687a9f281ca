package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jpfaraco/colorguru/internal/cli"
	"github.com/jpfaraco/colorguru/internal/palette"
)

var graphChannel string

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Plot each channel per step",
	Long: `Plot hue, saturation, brightness and luminance for every step as bars
drawn in the step's own color.

Examples:
  colorguru graph                 # all channels
  colorguru graph -c luminance
  colorguru graph -c satbri --sat-curve Linear`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		channels := cli.Channels()
		if graphChannel != "" {
			ch, err := cli.ParseChannel(graphChannel)
			if err != nil {
				return err
			}
			channels = []cli.Channel{ch}
		}

		cfg, err := resolvePalette(cmd)
		if err != nil {
			return err
		}
		res := palette.Generate(cfg)
		out := newOutput(cmd)
		for i, ch := range channels {
			if i > 0 {
				if err := out.Println(""); err != nil {
					return err
				}
			}
			if err := out.Print(cli.Graph(res, ch, out.Width())); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	addPaletteFlags(graphCmd)
	graphCmd.Flags().StringVarP(&graphChannel, "channel", "c", "", "hue|saturation|brightness|luminance|satbri (default all)")
}
