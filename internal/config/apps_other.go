//go:build !darwin && !windows && !linux && !freebsd && !openbsd && !netbsd

package config

func platformApps() []AppConfig { return nil }
