//go:build darwin

package config

func platformApps() []AppConfig {
	return []AppConfig{
		{ID: "open", Name: "Default app", Exec: []string{"open", "{}"}, Enabled: true},
		{ID: "preview", Name: "Preview", Exec: []string{"open", "-a", "Preview", "{}"}, Enabled: true},
	}
}
