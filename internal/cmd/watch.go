package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/jpfaraco/colorguru/internal/applog"
	"github.com/jpfaraco/colorguru/internal/cli"
	"github.com/jpfaraco/colorguru/internal/config"
	"github.com/jpfaraco/colorguru/internal/export"
	"github.com/jpfaraco/colorguru/internal/i18n"
	"github.com/jpfaraco/colorguru/internal/palette"
)

var (
	watchFormat string
	watchOutput string
)

var watchCmd = &cobra.Command{
	Use:   "watch <palette.toml>",
	Short: "Re-render whenever a palette file changes",
	Long: `Watch a palette file and print the palette again each time it is saved.
With -o the export is rewritten on every change as well.

Examples:
  colorguru watch brand.toml
  colorguru watch brand.toml -f css -o brand.css`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(watchFormat)
		if err != nil {
			return err
		}
		w, err := cli.NewWatcher(args[0], 0)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := newOutput(cmd)
		render := func(path string) {
			if err := renderWatched(out, path, format); err != nil {
				applog.Log.Warn("watch render failed", "path", path, "error", err)
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		}
		render(w.Path())
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.Tf("watch.watching", "Watching %s (Ctrl+C to stop)", w.Path()))
		return w.Run(ctx, render)
	},
}

func renderWatched(out *cli.Output, path string, format export.Format) error {
	cfg, err := config.LoadPalette(path, appConfig.Palette)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		applog.Log.Warn("palette outside editor ranges", "error", err)
	}
	res := palette.Generate(cfg)

	if out.TTY() {
		if _, err := fmt.Fprint(out.Writer(), ansi.EraseEntireScreen+ansi.CursorHomePosition); err != nil {
			return err
		}
	}
	if err := out.Print(cli.Swatches(res)); err != nil {
		return err
	}
	if watchOutput == "" {
		return nil
	}
	opts := export.Options{Text: appConfig.Text, PNG: appConfig.PNG, Now: time.Now()}
	return writeExport(watchOutput, format, res, cfg, opts)
}

func init() {
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", string(export.FormatCSS), "export format used with -o")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "rewrite this export on every change")
}
