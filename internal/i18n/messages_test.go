package i18n

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// loadMessages parses every embedded locale the way Init does and returns
// the "other" text per message ID, keyed by language code.
func loadMessages(t *testing.T) map[string]map[string]string {
	t.Helper()
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		t.Fatalf("reading embedded locales: %v", err)
	}

	out := make(map[string]map[string]string)
	for _, e := range entries {
		path := "locales/" + e.Name()
		data, err := localeFS.ReadFile(path)
		if err != nil {
			t.Fatalf("reading %s: %v", path, err)
		}
		mf, err := i18n.ParseMessageFileBytes(data, path, map[string]i18n.UnmarshalFunc{"toml": toml.Unmarshal})
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}

		code := strings.TrimSuffix(e.Name(), ".toml")
		if mf.Tag != language.Make(code) {
			t.Errorf("%s: parsed tag %v, want %s", path, mf.Tag, code)
		}
		msgs := make(map[string]string, len(mf.Messages))
		for _, m := range mf.Messages {
			msgs[m.ID] = m.Other
		}
		out[code] = msgs
	}
	return out
}

func TestLocaleFilesMatchLanguages(t *testing.T) {
	all := loadMessages(t)
	if len(all) != len(Languages()) {
		t.Errorf("%d locale files, %d languages", len(all), len(Languages()))
	}
	for _, l := range Languages() {
		if _, ok := all[l.Code]; !ok {
			t.Errorf("no locale file for %s", l.Code)
		}
	}
}

var formatVerb = regexp.MustCompile(`%[sdvgf]`)

func TestLocalesTranslateEveryMessage(t *testing.T) {
	all := loadMessages(t)
	en := all["en"]
	if len(en) == 0 {
		t.Fatal("en.toml has no messages")
	}

	for code, msgs := range all {
		t.Run(code, func(t *testing.T) {
			for id, want := range en {
				got, ok := msgs[id]
				switch {
				case !ok:
					t.Errorf("missing %s", id)
				case strings.TrimSpace(got) == "":
					t.Errorf("%s is empty", id)
				case len(formatVerb.FindAllString(got, -1)) != len(formatVerb.FindAllString(want, -1)):
					t.Errorf("%s = %q, verbs differ from %q", id, got, want)
				}
			}
			for id := range msgs {
				if _, ok := en[id]; !ok {
					t.Errorf("%s not in en.toml", id)
				}
			}
		})
	}
}

// usedID matches literal message IDs passed to i18n.T, Tf and Tn.
var usedID = regexp.MustCompile(`\bi18n\.T[fn]?\("([a-zA-Z0-9]+(?:\.[a-zA-Z0-9]+)+)"`)

func TestCLIMessagesDefined(t *testing.T) {
	en := loadMessages(t)["en"]

	var files []string
	for _, dir := range []string{"../cli", "../cmd"} {
		matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		files = append(files, matches...)
	}

	used := make(map[string]bool)
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		data, err := os.ReadFile(f)
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range usedID.FindAllSubmatch(data, -1) {
			used[string(m[1])] = true
		}
	}

	for _, prefix := range []string{"palette.", "wcag.", "report."} {
		found := false
		for id := range used {
			if strings.HasPrefix(id, prefix) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no %s* messages used by the CLI", prefix)
		}
	}
	for id := range used {
		if en[id] == "" {
			t.Errorf("%s used by the CLI but not defined in en.toml", id)
		}
	}
}
