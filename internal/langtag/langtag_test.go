package langtag

import "testing"

func TestParseReply(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantText  string
		wantLang  Lang
		wantFound bool
	}{
		{
			name:      "malayalam marker on own line",
			raw:       "നന്ദി, ഇതാണ് ഉത്തരം.\n[lang:ml]",
			wantText:  "നന്ദി, ഇതാണ് ഉത്തരം.",
			wantLang:  Malayalam,
			wantFound: true,
		},
		{
			name:      "english marker on own line",
			raw:       "Use neem oil spray.\n[lang:en]",
			wantText:  "Use neem oil spray.",
			wantLang:  English,
			wantFound: true,
		},
		{
			name:      "marker on same line as text",
			raw:       "Hi there [lang:en]",
			wantText:  "Hi there",
			wantLang:  English,
			wantFound: true,
		},
		{
			name:      "marker with trailing content after it",
			raw:       "Answer.\n[lang:ml] (tag)",
			wantText:  "Answer.\n (tag)",
			wantLang:  Malayalam,
			wantFound: true,
		},
		{
			name:     "no marker defaults to english unchanged",
			raw:      "Plain reply with no tag.",
			wantText: "Plain reply with no tag.",
			wantLang: English,
		},
		{
			name:      "trailing blank lines are skipped",
			raw:       "Answer.\n[lang:ml]\n\n",
			wantText:  "Answer.",
			wantLang:  Malayalam,
			wantFound: true,
		},
		{
			name:     "marker only in middle line does not match",
			raw:      "Answer [lang:ml] here.\nMore text.",
			wantText: "Answer [lang:ml] here.\nMore text.",
			wantLang: English,
		},
		{
			name:     "empty reply",
			raw:      "",
			wantText: "",
			wantLang: English,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, lang, found := ParseReply(tt.raw)
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if lang != tt.wantLang {
				t.Errorf("lang = %q, want %q", lang, tt.wantLang)
			}
			if found != tt.wantFound {
				t.Errorf("found = %v, want %v", found, tt.wantFound)
			}
		})
	}
}

func TestDetectTyped(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Lang
	}{
		{"english sentence", "How do I protect banana plants from pests?", English},
		{"malayalam sentence", "വാഴയുടെ കീടങ്ങളെ എങ്ങനെ തടയാം?", Malayalam},
		{"empty input falls back to english", "", English},
		{"digits fall back to english", "12345", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectTyped(tt.text); got != tt.want {
				t.Errorf("DetectTyped(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
