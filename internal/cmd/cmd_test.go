package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jpfaraco/colorguru/internal/cli"
	"github.com/jpfaraco/colorguru/internal/config"
	"github.com/jpfaraco/colorguru/internal/export"
)

// setupHome points the config directory at a fresh temp dir and pins the
// language so output does not depend on the machine's locale.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLang, "en")
	t.Setenv("NO_COLOR", "1")
	return home
}

// resetFlags restores every flag to its default so runs do not leak into
// each other through the package-level flag variables.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	appConfig = config.Default()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		args = []string{} // nil makes cobra read os.Args
	}
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, stderr, err := run(t, args...)
	if err != nil {
		t.Fatalf("colorguru %s: %v\n%s", strings.Join(args, " "), err, stderr)
	}
	return out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// grayArgs produce a linear gray ramp from black to white.
var grayArgs = []string{"--sat-start", "0", "--sat-end", "0", "--bri-start", "0", "--bri-end", "100", "--bri-curve", "Linear"}

func TestRootPrintsDefaultPalette(t *testing.T) {
	setupHome(t)
	out := mustRun(t)
	if !strings.Contains(out, "Total Colors: 11") {
		t.Errorf("root output missing header:\n%s", out)
	}
	if n := strings.Count(out, "hsl("); n != 11 {
		t.Errorf("root printed %d colors, want 11", n)
	}
}

func TestGenerateStrip(t *testing.T) {
	setupHome(t)
	out := mustRun(t, append([]string{"generate", "-n", "5", "--strip"}, grayArgs...)...)
	if got, want := strings.TrimSpace(out), "#000000 #404040 #808080 #BFBFBF #FFFFFF"; got != want {
		t.Errorf("generate --strip = %q, want %q", got, want)
	}
}

func TestGenerateJSON(t *testing.T) {
	setupHome(t)
	out := mustRun(t, "generate", "--json", "-n", "4")
	var doc struct {
		Settings struct {
			Steps int `json:"steps"`
		} `json:"settings"`
		Colors []struct {
			Hex string `json:"hex"`
		} `json:"colors"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("generate --json output is not JSON: %v\n%s", err, out)
	}
	if doc.Settings.Steps != 4 || len(doc.Colors) != 4 {
		t.Errorf("steps %d, colors %d, want 4 and 4", doc.Settings.Steps, len(doc.Colors))
	}
}

func TestPaletteLayering(t *testing.T) {
	home := setupHome(t)
	writeFile(t, filepath.Join(home, "config.toml"), "[palette]\nsteps = 5\n")
	paletteFile := filepath.Join(t.TempDir(), "p.toml")
	writeFile(t, paletteFile, "steps = 7\n")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"config", nil, 5},
		{"palette file", []string{"-p", paletteFile}, 7},
		{"flag wins", []string{"-p", paletteFile, "-n", "9"}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustRun(t, append([]string{"generate", "--strip"}, tt.args...)...)
			if n := len(strings.Fields(out)); n != tt.want {
				t.Errorf("got %d colors, want %d", n, tt.want)
			}
		})
	}
}

func TestPaletteFlagErrors(t *testing.T) {
	setupHome(t)
	tests := [][]string{
		{"generate", "--hue-curve", "Nope"},
		{"generate", "--sat-bezier", "1,2,3"},
		{"generate", "--pin", "#12"},
		{"generate", "--pin-at", "2"},
		{"generate", "-n", "40", "--strict"},
		{"generate", "-p", filepath.Join(t.TempDir(), "missing.toml")},
	}
	for _, args := range tests {
		if _, _, err := run(t, args...); err == nil {
			t.Errorf("colorguru %s: want error", strings.Join(args, " "))
		}
	}
}

func TestOutOfRangeIsLenientWithoutStrict(t *testing.T) {
	setupHome(t)
	out := mustRun(t, "generate", "-n", "25", "--strip")
	if n := len(strings.Fields(out)); n != 25 {
		t.Errorf("got %d colors, want 25", n)
	}
}

func TestPinAt(t *testing.T) {
	setupHome(t)
	out := mustRun(t, append([]string{"generate", "-n", "5", "--strip", "--pin", "f00", "--pin-at", "1"}, grayArgs...)...)
	if got := strings.Fields(out); got[0] != "#FF0000" || got[4] != "#FFFFFF" {
		t.Errorf("pinned strip = %v", got)
	}
}

func TestGenerateSave(t *testing.T) {
	setupHome(t)
	path := filepath.Join(t.TempDir(), "saved.toml")
	mustRun(t, "generate", "-n", "6", "--hue-bezier", "0.1,0.2,0.3,0.4", "--save", path)

	cfg, err := config.LoadPalette(path, config.Default().Palette)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Steps != 6 || cfg.Hue.Custom == nil || cfg.Hue.Custom.X2 != 0.3 {
		t.Errorf("saved palette = %+v", cfg)
	}
}

func TestPresetsFlag(t *testing.T) {
	setupHome(t)
	path := filepath.Join(t.TempDir(), "saved.toml")
	mustRun(t, "generate", "--presets", "--save", path)
	cfg, err := config.LoadPalette(path, config.Default().Palette)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Brightness.Custom == nil {
		t.Error("--presets left brightness without a bezier")
	}
}

func TestExportToStdout(t *testing.T) {
	setupHome(t)
	out := mustRun(t, append([]string{"export", "-f", "css", "-n", "3"}, grayArgs...)...)
	want := ":root {\n  --color-0: #000000;\n  --color-1: #808080;\n  --color-2: #FFFFFF;\n}"
	if !strings.HasPrefix(out, want) {
		t.Errorf("export css =\n%s\nwant prefix\n%s", out, want)
	}

	out = mustRun(t, append([]string{"export", "-f", "txt", "-n", "3", "--no-numbers", "--no-hash"}, grayArgs...)...)
	if got := strings.Fields(out); len(got) != 3 || got[1] != "808080" {
		t.Errorf("export text = %q", out)
	}
}

func TestExportTextOptionsFromConfig(t *testing.T) {
	home := setupHome(t)
	writeFile(t, filepath.Join(home, "config.toml"), "[text]\nno_hash = true\n")
	out := mustRun(t, append([]string{"export", "-f", "text", "-n", "3"}, grayArgs...)...)
	if strings.Contains(out, "#") {
		t.Errorf("config no_hash ignored: %q", out)
	}
	out = mustRun(t, append([]string{"export", "-f", "text", "-n", "3", "--no-hash=false"}, grayArgs...)...)
	if !strings.Contains(out, "#808080") {
		t.Errorf("--no-hash=false did not override config: %q", out)
	}
}

func TestExportPNGFile(t *testing.T) {
	setupHome(t)
	path := filepath.Join(t.TempDir(), "p.png")
	_, stderr, err := run(t, "export", "-f", "png", "--labels", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("export png did not write a PNG")
	}
	if !strings.Contains(stderr, "Saved "+path) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestExportErrors(t *testing.T) {
	setupHome(t)
	if _, _, err := run(t, "export", "-f", "gif"); err == nil {
		t.Error("export -f gif: want error")
	}
	path := filepath.Join(t.TempDir(), "p.css")
	if _, _, err := run(t, "export", "-o", path, "--open=no-such-app"); err == nil {
		t.Error("export --open with an unknown app: want error")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export file not written before open: %v", err)
	}
}

func TestGraphCommand(t *testing.T) {
	setupHome(t)
	out := mustRun(t, "graph", "-c", "luminance", "-n", "4")
	if !strings.HasPrefix(out, "Luminance\n") || strings.Count(out, "\n") != 5 {
		t.Errorf("graph -c luminance =\n%s", out)
	}
	all := mustRun(t, "graph", "-n", "3")
	for _, title := range []string{"Hue", "Saturation", "Brightness", "Luminance", "Saturation × Brightness"} {
		if !strings.Contains(all, title+"\n") {
			t.Errorf("graph missing %q", title)
		}
	}
	if _, _, err := run(t, "graph", "-c", "alpha"); err == nil {
		t.Error("graph -c alpha: want error")
	}
}

func TestReportCommand(t *testing.T) {
	setupHome(t)
	out := mustRun(t, "report", "--markdown", "-n", "3")
	if !strings.HasPrefix(out, "# Palette report") || !strings.Contains(out, "| # | Hex |") {
		t.Errorf("report --markdown =\n%s", out)
	}
	rendered := mustRun(t, "report", "-n", "3")
	if !strings.Contains(rendered, "Palette report") {
		t.Errorf("report was not rendered:\n%s", rendered)
	}
}

func TestCurvesCommand(t *testing.T) {
	setupHome(t)
	out := mustRun(t, "curves")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 26 {
		t.Fatalf("curves printed %d lines, want 26", len(lines))
	}
	if !strings.Contains(out, "cubic-bezier(0.68,-0.6,0.32,1.6)") {
		t.Error("curves missing the Back - EaseInOut preset")
	}

	var list []map[string]any
	if err := json.Unmarshal([]byte(mustRun(t, "curves", "--json")), &list); err != nil || len(list) != 25 {
		t.Errorf("curves --json: %d entries, %v", len(list), err)
	}

	plot := mustRun(t, "curves", "Linear")
	if n := strings.Count(plot, "\n"); n != 12 {
		t.Errorf("curve plot has %d lines, want 12", n)
	}
	if _, _, err := run(t, "curves", "Nope"); err == nil {
		t.Error("curves Nope: want error")
	}
	if _, _, err := run(t, "curves", "0.42,0,0.58,1"); err != nil {
		t.Errorf("curves with a bezier: %v", err)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(func(t float64) float64 { return t }, 8); got != "▁▂▃▄▅▆▇█" {
		t.Errorf("Sparkline(linear) = %q", got)
	}
	if got := Sparkline(func(float64) float64 { return 2 }, 3); got != "███" {
		t.Errorf("Sparkline(overshoot) = %q", got)
	}
}

func TestContrastAndConvert(t *testing.T) {
	setupHome(t)
	if out := mustRun(t, "contrast", "#000", "#fff"); !strings.Contains(out, "21.00:1") {
		t.Errorf("contrast =\n%s", out)
	}
	var c struct {
		Ratio float64 `json:"ratio"`
		Level string  `json:"level"`
	}
	if err := json.Unmarshal([]byte(mustRun(t, "contrast", "#000", "#fff", "--json")), &c); err != nil || c.Level != "AAA" {
		t.Errorf("contrast --json = %+v, %v", c, err)
	}
	if _, _, err := run(t, "contrast", "#000"); err == nil {
		t.Error("contrast with one color: want error")
	}

	var colors []colorInfo
	if err := json.Unmarshal([]byte(mustRun(t, "convert", "f00", "#00FF00", "--json")), &colors); err != nil {
		t.Fatal(err)
	}
	if len(colors) != 2 || colors[0].Hex != "#FF0000" || colors[1].HSL.H != 120 {
		t.Errorf("convert --json = %+v", colors)
	}
	if out := mustRun(t, "convert", "#3366CC"); !strings.Contains(out, "rgb(51, 102, 204)") {
		t.Errorf("convert =\n%s", out)
	}
	if _, _, err := run(t, "convert", "nothex"); err == nil {
		t.Error("convert nothex: want error")
	}
}

func TestConfigCommands(t *testing.T) {
	home := setupHome(t)
	path := filepath.Join(home, "config.toml")

	if got := strings.TrimSpace(mustRun(t, "config", "path")); got != path {
		t.Errorf("config path = %q, want %q", got, path)
	}

	mustRun(t, "config", "init")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config init did not write %s: %v", path, err)
	}
	if _, _, err := run(t, "config", "init"); err == nil {
		t.Error("second config init: want error")
	}
	mustRun(t, "config", "init", "--force")

	out := mustRun(t, "config", "show")
	if !strings.Contains(out, "[palette]") || !strings.Contains(out, "steps = 11") {
		t.Errorf("config show =\n%s", out)
	}
	var cfg config.Config
	if err := json.Unmarshal([]byte(mustRun(t, "config", "show", "--json")), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Palette.Steps != 11 || !cfg.Color {
		t.Errorf("config show --json = %+v", cfg)
	}
}

func TestConfigFlag(t *testing.T) {
	setupHome(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[palette]\nsteps = 4\n")
	out := mustRun(t, "--config", path, "generate", "--strip")
	if n := len(strings.Fields(out)); n != 4 {
		t.Errorf("--config palette gave %d colors, want 4", n)
	}
}

func TestInvalidConfig(t *testing.T) {
	home := setupHome(t)
	writeFile(t, filepath.Join(home, "config.toml"), "steps = [")
	if _, _, err := run(t, "generate"); err == nil {
		t.Error("generate with a broken config: want error")
	}
}

func TestLanguageCommand(t *testing.T) {
	home := setupHome(t)

	if out := mustRun(t, "language"); !strings.Contains(out, "Current language: en") {
		t.Errorf("language = %q", out)
	}
	if out := mustRun(t, "language", "--list"); !strings.Contains(out, "pt-br") || !strings.Contains(out, "Português") {
		t.Errorf("language --list =\n%s", out)
	}

	mustRun(t, "language", "es-MX")
	cfg, err := config.LoadFrom(filepath.Join(home, "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Language != "es" {
		t.Errorf("saved language = %q, want es", cfg.Language)
	}

	if _, _, err := run(t, "language", "xx"); err == nil {
		t.Error("language xx: want error")
	}
	if _, _, err := run(t, "language", "--pick"); err == nil {
		t.Error("language --pick without a terminal: want error")
	}
}

func TestAppsCommands(t *testing.T) {
	home := setupHome(t)
	writeFile(t, filepath.Join(home, "config.toml"), "[[apps]]\nid = \"vscode\"\nenabled = true\n\n[[apps]]\nid = \"evil\"\nexec = [\"rm\", \"-rf\"]\nenabled = true\n")

	out := mustRun(t, "apps")
	if !strings.Contains(out, "vscode") || strings.Contains(out, "evil") {
		t.Errorf("apps =\n%s", out)
	}
	if out := mustRun(t, "apps", "default"); !strings.HasPrefix(out, "vscode") {
		t.Errorf("apps default = %q", out)
	}

	mustRun(t, "apps", "default", "vscode")
	mustRun(t, "apps", "disable", "vscode")
	cfg, err := config.LoadFrom(filepath.Join(home, "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Opener != "vscode" || len(cfg.Apps) != 1 || cfg.Apps[0].Enabled {
		t.Errorf("saved config = %+v", cfg)
	}
	if _, _, err := run(t, "apps", "default", "vscode"); err == nil {
		t.Error("apps default with a disabled app: want error")
	}
	if _, _, err := run(t, "apps", "enable", "evil"); err == nil {
		t.Error("apps enable evil: want error")
	}

	var apps []config.AppConfig
	if err := json.Unmarshal([]byte(mustRun(t, "apps", "list", "--json")), &apps); err != nil || len(apps) != 1 {
		t.Errorf("apps list --json = %v, %v", apps, err)
	}
}

func TestVersionCommand(t *testing.T) {
	setupHome(t)
	if out := mustRun(t, "version"); !strings.HasPrefix(out, "colorguru ") {
		t.Errorf("version = %q", out)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(mustRun(t, "version", "--json")), &info); err != nil || info["name"] != "colorguru" {
		t.Errorf("version --json = %v, %v", info, err)
	}
}

func TestRenderWatched(t *testing.T) {
	setupHome(t)
	resetFlags(rootCmd)
	appConfig = config.Default()
	dir := t.TempDir()
	palettePath := filepath.Join(dir, "p.toml")
	writeFile(t, palettePath, "steps = 3\n")

	watchOutput = filepath.Join(dir, "p.css")
	defer func() { watchOutput = "" }()

	var buf bytes.Buffer
	if err := renderWatched(cli.NewPlainOutput(&buf, 80), palettePath, export.FormatCSS); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Total Colors: 3") {
		t.Errorf("watch output =\n%s", buf.String())
	}
	css, err := os.ReadFile(watchOutput)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(css), "--color-") != 3 {
		t.Errorf("watch export =\n%s", css)
	}

	writeFile(t, palettePath, "steps = [")
	if err := renderWatched(cli.NewPlainOutput(&buf, 80), palettePath, export.FormatCSS); err == nil {
		t.Error("renderWatched with a broken file: want error")
	}
}
