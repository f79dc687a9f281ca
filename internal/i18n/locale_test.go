package i18n

import (
	"testing"
)

func TestChineseLocale(t *testing.T) {
	Init("zh")

	tests := []struct {
		id     string
		def    string
		wantZh string
	}{
		{"palette.hue", "Hue", "色相"},
		{"palette.saturation", "Saturation", "饱和度"},
		{"palette.brightness", "Brightness", "亮度"},
		{"export.title", "Export Palette", "导出调色板"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := T(tt.id, tt.def)
			if got != tt.wantZh {
				t.Errorf("T(%q) = %q, want %q", tt.id, got, tt.wantZh)
			}
		})
	}
}

func TestLocaleSwitch(t *testing.T) {
	Init("en")
	if got := T("palette.hue", "Hue"); got != "Hue" {
		t.Errorf("English palette.hue = %q, want %q", got, "Hue")
	}

	Init("pt-BR")
	if got := T("palette.hue", "Hue"); got != "Matiz" {
		t.Errorf("Portuguese palette.hue = %q, want %q", got, "Matiz")
	}
	if Current() != "pt-br" {
		t.Errorf("Current() = %q, want pt-br", Current())
	}

	Init("en")
	if got := T("palette.hue", "Hue"); got != "Hue" {
		t.Errorf("English palette.hue after switch = %q, want %q", got, "Hue")
	}
}

func TestUntranslatedKeyFallsBack(t *testing.T) {
	Init("ja")

	got := T("some.untranslated.key", "English fallback")
	if got != "English fallback" {
		t.Errorf("untranslated key = %q, want %q", got, "English fallback")
	}
}

func TestEveryLanguageTranslatesTitle(t *testing.T) {
	defer Init("en")
	for _, l := range Languages() {
		Init(l.Code)
		got := T("export.title", "Export Palette")
		if l.Code != "en" && got == "Export Palette" {
			t.Errorf("%s: export.title not translated", l.Code)
		}
		if got == "" {
			t.Errorf("%s: export.title empty", l.Code)
		}
	}
}
