package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpfaraco/colorguru/internal/applog"
	"github.com/jpfaraco/colorguru/internal/cli"
	"github.com/jpfaraco/colorguru/internal/export"
	"github.com/jpfaraco/colorguru/internal/i18n"
	"github.com/jpfaraco/colorguru/internal/palette"
)

// Special --open values.
const (
	openDefault = "default"
	openPick    = "pick"
)

var (
	exportFormat    string
	exportOutput    string
	exportNoNumbers bool
	exportNoHash    bool
	exportLabels    bool
	exportScale     int
	exportSwatch    int
	exportGap       int
	exportOpen      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the palette as CSS, JSON, text, SVG or PNG",
	Long: `Export the palette in one of the supported formats:

  css   :root custom properties (--color-0, --color-1, ...)
  json  settings and colors with accessibility data
  text  one hex per line, optionally numbered
  svg   a row of 40px swatches
  png   a row of swatches, optionally labelled

Text formats go to stdout unless -o is given. PNG needs -o, or is written
to color-palette.png.

Examples:
  colorguru export -f css
  colorguru export -f text --no-numbers --no-hash
  colorguru export -f png --labels --png-scale 2 -o palette.png
  colorguru export -f svg --open             # write and open with the default app
  colorguru export -f svg --open=pick        # choose the app interactively`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	cfg, err := resolvePalette(cmd)
	if err != nil {
		return err
	}
	res := palette.Generate(cfg)
	opts := exportOptions(cmd)

	path := exportOutput
	if path == "" && (format.Binary() || cmd.Flags().Changed("open")) {
		path = format.DefaultFilename()
	}

	if path == "" || path == "-" {
		if format.Binary() && newOutput(cmd).TTY() {
			return errors.New("refusing to write PNG to a terminal; use -o")
		}
		return export.Write(cmd.OutOrStdout(), format, res, cfg, opts)
	}

	if err := writeExport(path, format, res, cfg, opts); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), i18n.Tf("export.saved", "Saved %s", path))

	if cmd.Flags().Changed("open") {
		return openExport(cmd, path, exportOpen)
	}
	return nil
}

// exportOptions starts from the config and applies the flags that were set.
func exportOptions(cmd *cobra.Command) export.Options {
	opts := export.Options{Text: appConfig.Text, PNG: appConfig.PNG, Now: time.Now()}
	f := cmd.Flags()
	if f.Changed("no-numbers") {
		opts.Text.NoNumbers = exportNoNumbers
	}
	if f.Changed("no-hash") {
		opts.Text.NoHash = exportNoHash
	}
	if f.Changed("labels") {
		opts.PNG.Labels = exportLabels
	}
	if f.Changed("png-scale") {
		opts.PNG.Scale = exportScale
	}
	if f.Changed("swatch") {
		opts.PNG.Swatch = exportSwatch
	}
	if f.Changed("gap") {
		opts.PNG.Gap = exportGap
	}
	return opts
}

func writeExport(path string, format export.Format, res palette.Result, cfg palette.Config, opts export.Options) error {
	defer applog.Log.Timed("export " + string(format))()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.Write(f, format, res, cfg, opts); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// openExport launches an app on the written file. id is an app ID,
// openDefault for the configured opener, or openPick for a picker.
func openExport(cmd *cobra.Command, path, id string) error {
	switch id {
	case openDefault, "":
		id = ""
	case openPick:
		picked, err := pickApp(cmd)
		if err != nil || picked == "" {
			return err
		}
		id = picked
	}

	app, ok := appConfig.GetApp(id)
	if !ok {
		if id == "" {
			return errors.New("no enabled apps; see colorguru apps")
		}
		return fmt.Errorf("app %q is not enabled; see colorguru apps", id)
	}
	c, err := app.Command(path)
	if err != nil {
		return err
	}
	if err := c.Start(); err != nil {
		return fmt.Errorf("open with %s: %w", app.Name, err)
	}
	applog.Log.Info("opened export", "app", app.ID, "path", path)
	fmt.Fprintln(cmd.ErrOrStderr(), i18n.Tf("export.opened", "Opened with %s", app.Name))
	return c.Process.Release()
}

func pickApp(cmd *cobra.Command) (string, error) {
	var items []cli.PickItem
	for _, a := range appConfig.Apps {
		if a.Enabled {
			items = append(items, cli.PickItem{ID: a.ID, Name: a.Name, Desc: strings.Join(a.Exec, " ")})
		}
	}
	if len(items) == 0 {
		return "", errors.New("no enabled apps; see colorguru apps")
	}
	return cli.Pick(newOutput(cmd), i18n.T("export.openWith", "Open with"), items, appConfig.Opener)
}

func init() {
	addPaletteFlags(exportCmd)
	f := exportCmd.Flags()
	f.StringVarP(&exportFormat, "format", "f", string(export.FormatCSS), "output format (css|json|text|svg|png)")
	f.StringVarP(&exportOutput, "output", "o", "", "output file (default stdout, - for stdout)")
	f.BoolVar(&exportNoNumbers, "no-numbers", false, "text: omit the N. prefix")
	f.BoolVar(&exportNoHash, "no-hash", false, "text: omit the leading #")
	f.BoolVar(&exportLabels, "labels", false, "png: draw the hex on each swatch")
	f.IntVar(&exportScale, "png-scale", 1, "png: pixel scale factor")
	f.IntVar(&exportSwatch, "swatch", 0, "png: swatch size in pixels (default 40, 56 with labels)")
	f.IntVar(&exportGap, "gap", 0, "png: gap between swatches (default 8, negative for none)")
	f.StringVar(&exportOpen, "open", "", "open the written file with an app ID, \"default\" or \"pick\"")
	f.Lookup("open").NoOptDefVal = openDefault
}
