package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpfaraco/colorguru/internal/applog"
	"github.com/jpfaraco/colorguru/internal/cli"
	"github.com/jpfaraco/colorguru/internal/config"
	"github.com/jpfaraco/colorguru/internal/export"
	"github.com/jpfaraco/colorguru/internal/i18n"
	"github.com/jpfaraco/colorguru/internal/palette"
)

var (
	genStrip    bool
	genImage    bool
	genProtocol string
	genSave     string
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Print a palette with contrast scores",
	Long: `Generate a palette and print each color with its HSL values and its
contrast against white and black text.

Settings come from the config's [palette] table, then --palette, then flags.

Examples:
  colorguru generate
  colorguru generate -n 7 --bri-curve "Sine - EaseInOut"
  colorguru generate --pin "#3366CC" --pin-at 4
  colorguru generate --image           # inline PNG in kitty or sixel terminals
  colorguru generate --json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolvePalette(cmd)
	if err != nil {
		return err
	}
	res := palette.Generate(cfg)
	out := newOutput(cmd)

	if genSave != "" {
		if err := config.SavePalette(genSave, cfg); err != nil {
			return fmt.Errorf("save palette: %w", err)
		}
		applog.Log.Info("saved palette", "path", genSave)
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.Tf("palette.saved", "Saved palette to %s", genSave))
	}

	if outputJSON {
		s, err := export.JSON(res, cfg)
		if err != nil {
			return err
		}
		return out.Println(s)
	}

	if genStrip {
		if !out.Color() {
			return out.Println(strings.Join(res.Hexes(), " "))
		}
		return out.Println(cli.Strip(res, 4))
	}

	if err := out.Print(cli.Swatches(res)); err != nil {
		return err
	}
	if genImage {
		return printImage(cmd, out, res)
	}
	return nil
}

// printImage writes the palette PNG inline. Auto-detection only runs on a
// terminal; an explicit --protocol always writes the sequence.
func printImage(cmd *cobra.Command, out *cli.Output, res palette.Result) error {
	g, err := cli.ParseGraphics(genProtocol)
	if err != nil {
		return err
	}
	if g == cli.GraphicsAuto {
		if !out.TTY() {
			applog.Log.Debug("skipping inline image on a non-terminal")
			return nil
		}
		g = cli.DetectGraphics(os.Getenv)
	}
	if g == cli.GraphicsNone {
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("generate.noGraphics", "This terminal does not support inline images; try colorguru export -f png."))
		return nil
	}

	seq, err := cli.InlineImage(res, appConfig.PNG, g, out.Width())
	if err != nil {
		return err
	}
	// Escape sequences go to the raw writer so they are not stripped.
	_, err = fmt.Fprintln(out.Writer(), seq)
	return err
}

func init() {
	addPaletteFlags(generateCmd)
	generateCmd.Flags().BoolVar(&outputJSON, "json", false, "output palette as JSON")
	generateCmd.Flags().BoolVar(&genStrip, "strip", false, "print a single line of color cells")
	generateCmd.Flags().BoolVar(&genImage, "image", false, "show the palette as an inline image")
	generateCmd.Flags().StringVar(&genProtocol, "protocol", "auto", "inline image protocol (auto|kitty|sixel|none)")
	generateCmd.Flags().StringVar(&genSave, "save", "", "write the resolved settings to a palette file")
}
