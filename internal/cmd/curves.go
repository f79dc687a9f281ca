package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jpfaraco/colorguru/internal/cli"
	"github.com/jpfaraco/colorguru/internal/easing"
)

const (
	sparkSamples = 16
	curvePoints  = 11
	curveBar     = 40
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

var curvesCmd = &cobra.Command{
	Use:   "curves [name]",
	Short: "List the easing curves",
	Long: `List the easing curves with their cubic-bezier presets, or plot one
curve when a name is given.

Examples:
  colorguru curves
  colorguru curves "Back - EaseOut"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return plotCurve(cmd, args[0])
		}

		type curveInfo struct {
			Name   string        `json:"name"`
			Bezier easing.Bezier `json:"bezier"`
		}
		if outputJSON {
			var list []curveInfo
			for _, name := range easing.Names() {
				b, _ := easing.Preset(name)
				list = append(list, curveInfo{Name: name, Bezier: b})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPRESET\tSHAPE")
		for _, c := range easing.Curves() {
			b, ok := easing.Preset(c.Name)
			preset := "-"
			if ok {
				preset = "cubic-bezier(" + b.String() + ")"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, preset, Sparkline(c.Func, sparkSamples))
		}
		return w.Flush()
	},
}

// Sparkline samples f at n points across [0,1]. Values outside [0,1] are
// drawn at the nearest edge.
func Sparkline(f easing.Func, n int) string {
	if n < 2 {
		n = 2
	}
	var b strings.Builder
	top := len(sparkRunes) - 1
	for i := 0; i < n; i++ {
		y := f(float64(i) / float64(n-1))
		idx := cli.BarLength(y, 1, top)
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

func plotCurve(cmd *cobra.Command, name string) error {
	f, ok := easing.Lookup(name)
	if !ok {
		b, err := easing.ParseBezier(name)
		if err != nil {
			return fmt.Errorf("unknown curve %q", name)
		}
		f = b.Func()
	}

	out := newOutput(cmd)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", name)
	for i := 0; i < curvePoints; i++ {
		t := float64(i) / float64(curvePoints-1)
		y := f(t)
		fmt.Fprintf(&b, "%4.1f %7.3f %s\n", t, y, strings.Repeat("█", cli.BarLength(y, 1, curveBar)))
	}
	return out.Print(b.String())
}

func init() {
	curvesCmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
}
