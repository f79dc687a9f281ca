// Package i18n provides localized labels for colorguru.
//
// Usage:
//
//	i18n.Init("pt-br")                                   // at startup
//	i18n.T("palette.hue", "Hue")                         // simple string
//	i18n.Tf("export.written", "Wrote %s", path)          // with fmt args
//	i18n.Tn("palette.colors", "{{.Count}} color", "{{.Count}} colors", n) // plural
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

//go:embed locales/*.toml
var localeFS embed.FS

// EnvLang overrides every other language source.
const EnvLang = "COLORGURU_LANG"

// Language is a selectable UI language.
type Language struct {
	Code    string // file name and config value, e.g. "pt-br"
	Name    string // name in the language itself
	English string // name in English
}

var languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Español"},
	{Code: "fr", Name: "Français"},
	{Code: "de", Name: "Deutsch"},
	{Code: "pt-br", Name: "Português (BR)"},
	{Code: "zh", Name: "中文"},
	{Code: "ja", Name: "日本語"},
	{Code: "hi", Name: "हिन्दी"},
	{Code: "ru", Name: "Русский"},
}

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   = "en"
	mu        sync.RWMutex

	matcher = language.NewMatcher(tags())
)

func tags() []language.Tag {
	out := make([]language.Tag, len(languages))
	for i, l := range languages {
		out[i] = language.Make(l.Code)
	}
	return out
}

// Init loads the embedded locales and selects lang. Unsupported languages
// fall back to English. Safe to call again after a config change.
func Init(lang string) {
	mu.Lock()
	defer mu.Unlock()

	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, _ := localeFS.ReadDir("locales")
	for _, e := range entries {
		_, _ = bundle.LoadMessageFileFS(localeFS, "locales/"+e.Name())
	}

	current = "en"
	if code, ok := Supported(lang); ok {
		current = code
	}
	localizer = i18n.NewLocalizer(bundle, lang, "en")
}

// Current returns the code of the active language.
func Current() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Languages lists the supported languages in menu order.
func Languages() []Language {
	out := make([]Language, len(languages))
	namer := display.English.Languages()
	for i, l := range languages {
		l.English = namer.Name(language.Make(l.Code))
		out[i] = l
	}
	return out
}

// Supported maps a BCP 47 or POSIX tag onto a supported language code.
func Supported(lang string) (string, bool) {
	lang = normalizeLocale(strings.TrimSpace(lang))
	if lang == "" {
		return "", false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return languages[idx].Code, true
}

// T returns the localized string for the given message ID.
// The defaultMsg is the English text and the fallback.
func T(id string, defaultMsg string) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l == nil {
		return defaultMsg
	}

	s, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: defaultMsg,
		},
	})
	if err != nil {
		return defaultMsg
	}
	return s
}

// Tf returns the localized string with fmt.Sprintf-style formatting.
func Tf(id string, defaultMsg string, args ...any) string {
	return fmt.Sprintf(T(id, defaultMsg), args...)
}

// Tn returns the localized string with pluralization.
// one/other use go template syntax with {{.Count}}.
func Tn(id string, one string, other string, count int) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l == nil {
		return pluralFallback(one, other, count)
	}

	s, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			One:   one,
			Other: other,
		},
		PluralCount:  count,
		TemplateData: map[string]int{"Count": count},
	})
	if err != nil {
		return pluralFallback(one, other, count)
	}
	return s
}

func pluralFallback(one, other string, count int) string {
	msg := other
	if count == 1 {
		msg = one
	}
	return strings.ReplaceAll(msg, "{{.Count}}", fmt.Sprint(count))
}

// ResolveLocale determines the active locale.
// Priority: COLORGURU_LANG > configLang > LC_ALL > LANG > "en"
func ResolveLocale(configLang string) string {
	if v := os.Getenv(EnvLang); v != "" {
		return v
	}
	if configLang != "" {
		return configLang
	}
	for _, env := range []string{"LC_ALL", "LANG"} {
		if v := os.Getenv(env); v != "" && v != "C" && v != "POSIX" {
			return normalizeLocale(v)
		}
	}
	return "en"
}

// normalizeLocale converts POSIX locale format to BCP 47.
// e.g., "zh_CN.UTF-8" -> "zh-CN", "en_US" -> "en-US"
func normalizeLocale(posix string) string {
	if i := strings.IndexAny(posix, ".@"); i >= 0 {
		posix = posix[:i]
	}
	return strings.ReplaceAll(posix, "_", "-")
}
