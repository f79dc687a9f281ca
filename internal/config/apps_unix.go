//go:build linux || freebsd || openbsd || netbsd

package config

func platformApps() []AppConfig {
	return []AppConfig{
		{ID: "open", Name: "Default app", Exec: []string{"xdg-open", "{}"}, Enabled: checkCommandExists("xdg-open")},
	}
}
