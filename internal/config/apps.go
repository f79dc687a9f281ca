package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// AppConfig defines an application that can open an exported palette.
type AppConfig struct {
	ID      string   `toml:"id" json:"id"`                         // Short identifier (e.g., "files", "inkscape")
	Name    string   `toml:"name" json:"name"`                     // Display name
	Exec    []string `toml:"exec,omitempty" json:"exec,omitempty"` // Command and args; {} is replaced with path
	Enabled bool     `toml:"enabled" json:"enabled"`               // Whether this app is enabled
}

// BuildCommand returns the command and args with {} replaced by path.
// If no {} placeholder exists, path is appended as the last argument.
// The path is passed to exec.Command directly, never through a shell.
func (a AppConfig) BuildCommand(path string) (string, []string) {
	if len(a.Exec) == 0 {
		return "", nil
	}

	cmd := a.Exec[0]
	args := make([]string, 0, len(a.Exec))

	hasPlaceholder := false
	for _, arg := range a.Exec[1:] {
		if arg == "{}" {
			args = append(args, path)
			hasPlaceholder = true
		} else {
			args = append(args, arg)
		}
	}
	if !hasPlaceholder {
		args = append(args, path)
	}
	return cmd, args
}

// Command prepares the app to open path. path is made absolute first.
func (a AppConfig) Command(path string) (*exec.Cmd, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, err
	}
	name, args := a.BuildCommand(abs)
	if name == "" {
		return nil, fmt.Errorf("app %q has no command", a.ID)
	}
	return exec.Command(name, args...), nil
}

// DefaultApps returns the platform file opener followed by editors and
// image tools found in PATH.
func DefaultApps() []AppConfig {
	return filterAvailable(append(platformApps(), commonApps()...))
}

func commonApps() []AppConfig {
	return []AppConfig{
		{ID: "vscode", Name: "VS Code", Exec: []string{"code", "{}"}, Enabled: checkCommandExists("code")},
		{ID: "zed", Name: "Zed", Exec: []string{"zed", "{}"}, Enabled: checkCommandExists("zed")},
		{ID: "sublime", Name: "Sublime Text", Exec: []string{"subl", "{}"}, Enabled: checkCommandExists("subl")},
		{ID: "inkscape", Name: "Inkscape", Exec: []string{"inkscape", "{}"}, Enabled: checkCommandExists("inkscape")},
		{ID: "gimp", Name: "GIMP", Exec: []string{"gimp", "{}"}, Enabled: checkCommandExists("gimp")},
	}
}

func filterAvailable(apps []AppConfig) []AppConfig {
	out := make([]AppConfig, 0, len(apps))
	for _, a := range apps {
		if a.Enabled {
			out = append(out, a)
		}
	}
	return out
}

func checkCommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// validateApps keeps only apps whose ID is in the trusted list. Exec
// always comes from the trusted entry; the user's Enabled choice and
// order are preserved. An empty list yields the defaults.
func validateApps(apps []AppConfig) []AppConfig {
	trusted := make(map[string]AppConfig)
	for _, a := range append(platformApps(), commonApps()...) {
		trusted[a.ID] = a
	}
	if len(apps) == 0 {
		return DefaultApps()
	}

	out := make([]AppConfig, 0, len(apps))
	for _, a := range apps {
		t, ok := trusted[a.ID]
		if !ok {
			continue
		}
		t.Enabled = a.Enabled
		out = append(out, t)
	}
	return out
}

// GetApp returns an enabled app by ID. An empty id selects c.Opener, or
// the first enabled app when no opener is configured.
func (c Config) GetApp(id string) (AppConfig, bool) {
	if id == "" {
		id = c.Opener
	}
	for _, a := range c.Apps {
		if !a.Enabled {
			continue
		}
		if id == "" || a.ID == id {
			return a, true
		}
	}
	return AppConfig{}, false
}

// EnabledApps returns the IDs of all enabled apps.
func (c Config) EnabledApps() []string {
	var ids []string
	for _, a := range c.Apps {
		if a.Enabled {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
