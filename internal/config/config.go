// Package config provides application configuration management for colorguru.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jpfaraco/colorguru/internal/applog"
	"github.com/jpfaraco/colorguru/internal/export"
	"github.com/jpfaraco/colorguru/internal/palette"
)

// Environment variables read by colorguru.
const (
	EnvHome = "COLORGURU_HOME" // overrides ~/.colorguru
	EnvLang = "COLORGURU_LANG" // overrides the configured language
)

// ErrNoHome is returned when neither COLORGURU_HOME nor a user home
// directory is available.
var ErrNoHome = errors.New("no home directory for colorguru config")

// Config holds the colorguru configuration.
type Config struct {
	Language string             `toml:"language" json:"language"`                 // UI language, e.g. "pt-br"; empty follows the locale
	Color    bool               `toml:"color" json:"color"`                       // Colored terminal output
	Opener   string             `toml:"opener,omitempty" json:"opener,omitempty"` // App ID used by export --open
	Palette  palette.Config     `toml:"palette" json:"palette"`                   // Defaults for every palette command
	Text     export.TextOptions `toml:"text" json:"text"`                         // Plain text export options
	PNG      export.PNGOptions  `toml:"png" json:"png"`                           // PNG export options
	Apps     []AppConfig        `toml:"apps,omitempty" json:"apps,omitempty"`     // Apps allowed for export --open
}

// Default returns a configuration with all defaults set.
func Default() Config {
	return Config{
		Color:   true,
		Palette: palette.DefaultConfig(),
		Apps:    DefaultApps(),
	}
}

// Dir returns the colorguru directory: $COLORGURU_HOME or ~/.colorguru.
func Dir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("%w: %v", ErrNoHome, err)
	}
	return filepath.Join(home, ".colorguru"), nil
}

// Path returns the path to the main config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file. A missing file yields Default().
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path on top of Default(), so keys absent
// from the file keep their default values.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	warnUndecoded(path, md)

	// Exec always comes from the trusted list, never from disk.
	cfg.Apps = validateApps(cfg.Apps)
	return cfg, nil
}

// Save writes cfg to the config path, creating the directory if needed.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes cfg as TOML to path.
func SaveTo(path string, cfg Config) error {
	return writeTOML(path, cfg)
}

// ResolveLanguage returns $COLORGURU_LANG when set, else c.Language.
func (c Config) ResolveLanguage() string {
	if lang := os.Getenv(EnvLang); lang != "" {
		return lang
	}
	return c.Language
}

// LoadEnv loads KEY=value pairs from the given .env files, or from
// ./.env and <Dir>/.env when none are given. Variables already set in the
// environment win. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
		if dir, err := Dir(); err == nil {
			files = append(files, filepath.Join(dir, ".env"))
		}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil {
			applog.Log.Debug("loaded env file", "path", f)
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// LoadPalette reads a palette file on top of base. base itself is left
// untouched.
//
// A palette file holds the fields of a palette.Config at the top level:
//
//	steps = 9
//	[hue]
//	start = 200
//	end = 320
//	curve = "Sine - EaseInOut"
func LoadPalette(path string, base palette.Config) (palette.Config, error) {
	cfg := base.Clone()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("load palette %s: %w", path, err)
	}
	warnUndecoded(path, md)
	return cfg, nil
}

// SavePalette writes a palette file that LoadPalette reads back.
func SavePalette(path string, cfg palette.Config) error {
	return writeTOML(path, cfg)
}

func writeTOML(path string, v any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}

func warnUndecoded(path string, md toml.MetaData) {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	applog.Log.Warn("unknown config keys", "path", path, "keys", strings.Join(names, ","))
}
