package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpfaraco/colorguru/internal/easing"
	"github.com/jpfaraco/colorguru/internal/palette"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if !cfg.Color {
		t.Error("Color should default to true")
	}
	if cfg.Palette.Steps != 11 || cfg.Palette.Hue.Start != 180 {
		t.Errorf("Palette = %+v, want palette.DefaultConfig()", cfg.Palette)
	}
	for _, app := range cfg.Apps {
		if !app.Enabled || app.ID == "" || len(app.Exec) == 0 {
			t.Errorf("default app %+v is not well-formed", app)
		}
	}
}

func TestDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	got, err := Dir()
	if err != nil || got != dir {
		t.Errorf("Dir() = %q, %v; want %q", got, err, dir)
	}
	p, err := Path()
	if err != nil || p != filepath.Join(dir, "config.toml") {
		t.Errorf("Path() = %q, %v", p, err)
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Palette != palette.DefaultConfig() || !cfg.Color {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
	if p, _ := Path(); fileExists(p) {
		t.Error("Load() wrote a config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())

	idx := 4
	cfg := Default()
	cfg.Language = "pt-br"
	cfg.Color = false
	cfg.Text.NoHash = true
	cfg.Palette.Steps = 7
	cfg.Palette.Hue.LongPath = true
	cfg.Palette.Saturation.Rate = 1.25
	cfg.Palette.Brightness.Custom = &easing.Bezier{X1: 0.4, Y1: 0, X2: 0.2, Y2: 1}
	cfg.Palette.PinnedColor = "#aabbcc"
	cfg.Palette.PinnedIndex = &idx

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got.Language != "pt-br" || got.Color || !got.Text.NoHash {
		t.Errorf("top-level fields = %q/%v/%+v", got.Language, got.Color, got.Text)
	}
	p := got.Palette
	if p.Steps != 7 || !p.Hue.LongPath || p.Saturation.Rate != 1.25 || p.PinnedColor != "#aabbcc" {
		t.Errorf("palette = %+v", p)
	}
	if p.PinnedIndex == nil || *p.PinnedIndex != 4 {
		t.Errorf("PinnedIndex = %v, want 4", p.PinnedIndex)
	}
	if p.Brightness.Custom == nil || *p.Brightness.Custom != *cfg.Palette.Brightness.Custom {
		t.Errorf("Brightness.Custom = %v", p.Brightness.Custom)
	}
	if p.Hue.Curve != easing.Default {
		t.Errorf("Hue.Curve = %q", p.Hue.Curve)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "language = \"ja\"\n\n[palette]\nsteps = 5\n\n[palette.hue]\nend = 300\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Language != "ja" || cfg.Palette.Steps != 5 || cfg.Palette.Hue.End != 300 {
		t.Errorf("LoadFrom() = %+v", cfg)
	}
	if cfg.Palette.Hue.Start != 180 || cfg.Palette.Brightness.End != 20 || !cfg.Color {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("steps = [oops"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("LoadFrom(bad) error = %v", err)
	}
}

func TestLoadPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand.toml")
	data := `steps = 9
pinnedColor = "#FF8800"

[hue]
start = 200
end = 320
curve = "Sine - EaseInOut"
longPath = true

[saturation]
rate = 0.5

[brightness.custom]
x1 = 0.1
y1 = 0.2
x2 = 0.3
y2 = 0.4
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPalette(path, palette.DefaultConfig())
	if err != nil {
		t.Fatalf("LoadPalette() error: %v", err)
	}
	want := palette.DefaultConfig()
	want.Steps = 9
	want.PinnedColor = "#FF8800"
	want.Hue.Start, want.Hue.End, want.Hue.Curve, want.Hue.LongPath = 200, 320, "Sine - EaseInOut", true
	want.Saturation.Rate = 0.5
	want.Brightness.Custom = &easing.Bezier{X1: 0.1, Y1: 0.2, X2: 0.3, Y2: 0.4}

	if cfg.Brightness.Custom == nil || *cfg.Brightness.Custom != *want.Brightness.Custom {
		t.Fatalf("Brightness.Custom = %v", cfg.Brightness.Custom)
	}
	cfg.Brightness.Custom, want.Brightness.Custom = nil, nil
	if cfg != want {
		t.Errorf("LoadPalette() = %+v\nwant %+v", cfg, want)
	}

	out := filepath.Join(t.TempDir(), "copy.toml")
	if err := SavePalette(out, cfg); err != nil {
		t.Fatalf("SavePalette() error: %v", err)
	}
	back, err := LoadPalette(out, palette.Config{})
	if err != nil || back != cfg {
		t.Errorf("SavePalette round trip = %+v, %v", back, err)
	}

	if _, err := LoadPalette(filepath.Join(t.TempDir(), "missing.toml"), want); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadPalette(missing) error = %v, want ErrNotExist", err)
	}
}

func TestLoadPaletteKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand.toml")
	data := `pinnedIndex = 5

[hue.custom]
x1 = 0.9
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	idx := 2
	base := palette.DefaultConfig()
	base.Hue.Custom = &easing.Bezier{X1: 0.1, Y1: 0.2, X2: 0.3, Y2: 0.4}
	base.PinnedIndex = &idx

	cfg, err := LoadPalette(path, base)
	if err != nil {
		t.Fatalf("LoadPalette() error: %v", err)
	}
	if cfg.PinnedIndex == nil || *cfg.PinnedIndex != 5 {
		t.Errorf("PinnedIndex = %v, want 5", cfg.PinnedIndex)
	}
	if cfg.Hue.Custom == nil || *cfg.Hue.Custom != (easing.Bezier{X1: 0.9, Y1: 0.2, X2: 0.3, Y2: 0.4}) {
		t.Errorf("Hue.Custom = %v, want 0.9,0.2,0.3,0.4", cfg.Hue.Custom)
	}
	if *base.Hue.Custom != (easing.Bezier{X1: 0.1, Y1: 0.2, X2: 0.3, Y2: 0.4}) || idx != 2 {
		t.Errorf("base changed: Hue.Custom = %v, PinnedIndex = %d", base.Hue.Custom, idx)
	}

	// A second file without those keys falls back to base again.
	other := filepath.Join(t.TempDir(), "plain.toml")
	if err := os.WriteFile(other, []byte("steps = 7\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadPalette(other, base)
	if err != nil {
		t.Fatalf("LoadPalette() error: %v", err)
	}
	if *cfg.PinnedIndex != 2 || cfg.Hue.Custom.X1 != 0.1 {
		t.Errorf("reload = pinnedIndex %d, hue x1 %v, want 2, 0.1", *cfg.PinnedIndex, cfg.Hue.Custom.X1)
	}
}

func TestResolveLanguage(t *testing.T) {
	cfg := Config{Language: "fr"}
	t.Setenv(EnvLang, "")
	if got := cfg.ResolveLanguage(); got != "fr" {
		t.Errorf("ResolveLanguage() = %q, want fr", got)
	}
	t.Setenv(EnvLang, "de")
	if got := cfg.ResolveLanguage(); got != "de" {
		t.Errorf("ResolveLanguage() with env = %q, want de", got)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("COLORGURU_LANG=hi\nCOLORGURU_TEST_KEEP=file\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLang, "")
	os.Unsetenv(EnvLang)
	t.Setenv("COLORGURU_TEST_KEEP", "env")

	if err := LoadEnv(envFile, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}
	if got := os.Getenv(EnvLang); got != "hi" {
		t.Errorf("%s = %q, want hi", EnvLang, got)
	}
	if got := os.Getenv("COLORGURU_TEST_KEEP"); got != "env" {
		t.Errorf("existing variable overwritten: %q", got)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
