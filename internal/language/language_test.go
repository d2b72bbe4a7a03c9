package language_test

import (
	"testing"

	"tmdbkit/internal/language"
)

func TestToISO2(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"eng", "en"},
		{"spa", "es"},
		{"deu", "de"},
		{"jpn", "ja"},
		{"english", "en"},
		{"Portuguese", "pt"},
		{"", ""},
		{"not a language", ""},
	}
	for _, tt := range tests {
		if got := language.ToISO2(tt.input); got != tt.expected {
			t.Errorf("ToISO2(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"fr", "French"},
		{"ja", "Japanese"},
		{"zz-unknown", "ZZ-UNKNOWN"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := language.DisplayName(tt.input); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"en":         "en",
		"en-us":      "en-US",
		"de_DE":      "de-DE",
		" fr ":       "fr",
		"pt_br":      "pt-BR",
		"german":     "de",
		"spanish-MX": "es-MX",
	}
	for input, want := range cases {
		got, err := language.Normalize(input)
		if err != nil {
			t.Fatalf("Normalize(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
	if _, err := language.Normalize("not a language"); err == nil {
		t.Fatalf("expected error for invalid language")
	}
}

func TestNormalizeRegion(t *testing.T) {
	got, err := language.NormalizeRegion("gb")
	if err != nil || got != "GB" {
		t.Fatalf("NormalizeRegion(gb) = %q, %v", got, err)
	}
	if _, err := language.NormalizeRegion("nowhere"); err == nil {
		t.Fatalf("expected error for invalid region")
	}
}
