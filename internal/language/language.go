package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// common lists the languages accepted by English name as well as by code.
var common = []string{
	"en", "es", "fr", "de", "it", "pt", "ja", "ko", "zh", "ru",
	"ar", "hi", "nl", "pl", "sv", "da", "no", "fi",
}

var byWord map[string]string

func init() {
	namer := display.English.Languages()
	byWord = make(map[string]string, len(common))
	for _, code := range common {
		base := language.MustParseBase(code)
		byWord[strings.ToLower(namer.Name(base))] = code
	}
}

// ToISO2 converts a 2- or 3-letter code or an English language name to ISO
// 639-1. Unrecognized input returns "".
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if iso, ok := byWord[code]; ok {
		return iso
	}
	base, err := language.ParseBase(code)
	if err != nil {
		return ""
	}
	return base.String()
}

// DisplayName returns the English name for a language code. Unknown codes are
// returned upper-cased.
func DisplayName(code string) string {
	iso := ToISO2(code)
	if iso == "" {
		return strings.ToUpper(strings.TrimSpace(code))
	}
	name := display.English.Languages().Name(language.MustParseBase(iso))
	if name == "" {
		return strings.ToUpper(iso)
	}
	return name
}

// Normalize canonicalizes a language setting to the ISO 639-1 code with an
// optional upper-case ISO 3166-1 region ("pt_br" -> "pt-BR"). Empty input
// stays empty so the API default applies.
func Normalize(value string) (string, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), "_", "-")
	if value == "" {
		return "", nil
	}
	primary, rest, hasRegion := strings.Cut(value, "-")
	if iso := ToISO2(primary); iso != "" {
		value = iso
		if hasRegion {
			value += "-" + rest
		}
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", value, err)
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return "", fmt.Errorf("unknown language %q", value)
	}
	region, regionConfidence := tag.Region()
	if regionConfidence != language.Exact {
		return base.String(), nil
	}
	return base.String() + "-" + region.String(), nil
}

// NormalizeRegion canonicalizes an ISO 3166-1 alpha-2 region code.
func NormalizeRegion(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	region, err := language.ParseRegion(value)
	if err != nil {
		return "", fmt.Errorf("parse region %q: %w", value, err)
	}
	return region.String(), nil
}
