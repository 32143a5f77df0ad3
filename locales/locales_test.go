package locales

import "testing"

func TestGetAvailableLanguages(t *testing.T) {
	langs := GetAvailableLanguages()

	want := map[string]bool{"en": false, "cs": false}
	for _, lang := range langs {
		if _, ok := want[lang]; ok {
			want[lang] = true
		}
	}
	for lang, found := range want {
		if !found {
			t.Errorf("language %q missing from %v", lang, langs)
		}
	}
}

func TestLoadTranslations(t *testing.T) {
	for _, lang := range []string{"en", "cs"} {
		t.Run(lang, func(t *testing.T) {
			if err := LoadTranslations(lang); err != nil {
				t.Fatalf("LoadTranslations(%q): %v", lang, err)
			}
			if got := Translate("main.app.title"); got == "" {
				t.Error("Translate returned an empty string for a known key")
			}
		})
	}

	if err := LoadTranslations("xx"); err == nil {
		t.Error("LoadTranslations accepted an unknown language")
	}
}

func TestTranslateFallsBackToKey(t *testing.T) {
	if err := LoadTranslations("en"); err != nil {
		t.Fatalf("LoadTranslations: %v", err)
	}

	const key = "no.such.translation.key"
	if got := Translate(key); got != key {
		t.Errorf("Translate(%q) = %q, want the key itself", key, got)
	}
}
