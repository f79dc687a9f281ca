//go:build windows

package config

func platformApps() []AppConfig {
	return []AppConfig{
		{ID: "open", Name: "Default app", Exec: []string{"cmd", "/c", "start", "", "{}"}, Enabled: true},
		{ID: "paint", Name: "Paint", Exec: []string{"mspaint", "{}"}, Enabled: true},
	}
}
